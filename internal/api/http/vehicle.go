package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/MysticHqra/Rydio/internal/domain"
	"github.com/MysticHqra/Rydio/internal/service"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type VehicleHandler struct {
	vehicleSvc service.VehicleService
	bookingSvc service.BookingService
}

func NewVehicleHandler(vehicleSvc service.VehicleService, bookingSvc service.BookingService) *VehicleHandler {
	return &VehicleHandler{vehicleSvc: vehicleSvc, bookingSvc: bookingSvc}
}

func (h *VehicleHandler) Add(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFromContext(r.Context())
	var vehicle domain.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&vehicle); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if err := h.vehicleSvc.AddVehicle(r.Context(), actor, &vehicle); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, vehicle)
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid vehicle id"})
		return
	}

	vehicle, err := h.vehicleSvc.GetVehicle(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid vehicle id"})
		return
	}

	var vehicle domain.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&vehicle); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	vehicle.ID = id

	if err := h.vehicleSvc.UpdateVehicle(r.Context(), actor, &vehicle); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vehicle)
}

func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid vehicle id"})
		return
	}

	if err := h.vehicleSvc.DeleteVehicle(r.Context(), actor, id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	vehicles, count, err := h.vehicleSvc.ListVehicles(r.Context(), page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, pagedResponse{Items: vehicles, TotalCount: count, Page: page, PageSize: pageSize})
}

func (h *VehicleHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFromContext(r.Context())
	page, pageSize := pagination(r)
	vehicles, count, err := h.vehicleSvc.ListMyVehicles(r.Context(), actor, page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, pagedResponse{Items: vehicles, TotalCount: count, Page: page, PageSize: pageSize})
}

func (h *VehicleHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.VehicleFilter{
		VehicleType: domain.VehicleType(q.Get("type")),
		FuelType:    domain.FuelType(q.Get("fuel_type")),
		Location:    q.Get("location"),
		Status:      domain.VehicleStatus(q.Get("status")),
	}
	if v := q.Get("min_seats"); v != "" {
		seats, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid min_seats"})
			return
		}
		filter.MinSeatCount = int32(seats)
	}
	if v := q.Get("max_daily_rate"); v != "" {
		rate, err := decimal.NewFromString(v)
		if err != nil {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid max_daily_rate"})
			return
		}
		filter.MaxDailyRate = &rate
	}

	page, pageSize := pagination(r)
	vehicles, count, err := h.vehicleSvc.SearchVehicles(r.Context(), filter, page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, pagedResponse{Items: vehicles, TotalCount: count, Page: page, PageSize: pageSize})
}

type availabilityResponse struct {
	VehicleID int64     `json:"vehicle_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Available bool      `json:"available"`
}

func (h *VehicleHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid vehicle id"})
		return
	}

	start, err := time.Parse(time.RFC3339, r.URL.Query().Get("start"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid start date"})
		return
	}
	end, err := time.Parse(time.RFC3339, r.URL.Query().Get("end"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid end date"})
		return
	}

	available, err := h.bookingSvc.CheckAvailability(r.Context(), id, start, end)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, availabilityResponse{VehicleID: id, StartDate: start, EndDate: end, Available: available})
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[name], 10, 64)
}

func pagination(r *http.Request) (page, pageSize int32) {
	page, pageSize = 1, 20
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil && n > 0 {
			page = int32(n)
		}
	}
	if v := r.URL.Query().Get("page_size"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 32); err == nil && n > 0 && n <= 100 {
			pageSize = int32(n)
		}
	}
	return page, pageSize
}
