package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/MysticHqra/Rydio/internal/domain"
	"github.com/MysticHqra/Rydio/internal/service"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type BookingHandler struct {
	bookingSvc service.BookingService
}

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

type createBookingRequest struct {
	VehicleID       int64            `json:"vehicle_id"`
	StartDate       time.Time        `json:"start_date"`
	EndDate         time.Time        `json:"end_date"`
	PickupLocation  string           `json:"pickup_location"`
	ReturnLocation  string           `json:"return_location"`
	SecurityDeposit *decimal.Decimal `json:"security_deposit,omitempty"`
	Notes           string           `json:"notes"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFromContext(r.Context())
	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	input := service.CreateBookingInput{
		VehicleID:       req.VehicleID,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		PickupLocation:  req.PickupLocation,
		ReturnLocation:  req.ReturnLocation,
		SecurityDeposit: req.SecurityDeposit,
		Notes:           req.Notes,
	}

	booking, err := h.bookingSvc.CreateBooking(r.Context(), actor, input)
	if errors.Is(err, domain.ErrDuplicateReference) {
		// Same-second reference collision; one resubmit regenerates it.
		booking, err = h.bookingSvc.CreateBooking(r.Context(), actor, input)
	}
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingSvc.GetBooking(r.Context(), actor, id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) GetByReference(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFromContext(r.Context())
	reference := mux.Vars(r)["reference"]

	booking, err := h.bookingSvc.GetBookingByReference(r.Context(), actor, reference)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFromContext(r.Context())
	page, pageSize := pagination(r)

	bookings, count, err := h.bookingSvc.ListMyBookings(r.Context(), actor, page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, pagedResponse{Items: bookings, TotalCount: count, Page: page, PageSize: pageSize})
}

func (h *BookingHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFromContext(r.Context())
	page, pageSize := pagination(r)

	bookings, count, err := h.bookingSvc.ListAllBookings(r.Context(), actor, page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, pagedResponse{Items: bookings, TotalCount: count, Page: page, PageSize: pageSize})
}

type updateBookingRequest struct {
	PickupLocation *string `json:"pickup_location,omitempty"`
	ReturnLocation *string `json:"return_location,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

func (h *BookingHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid booking id"})
		return
	}

	var req updateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	booking, err := h.bookingSvc.UpdateBooking(r.Context(), actor, id, service.UpdateBookingInput{
		PickupLocation: req.PickupLocation,
		ReturnLocation: req.ReturnLocation,
		Notes:          req.Notes,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, booking)
}

type cancelBookingRequest struct {
	Reason string `json:"reason"`
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid booking id"})
		return
	}

	var req cancelBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	booking, err := h.bookingSvc.CancelBooking(r.Context(), actor, id, req.Reason)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingSvc.ConfirmBooking(r.Context(), actor, id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) Activate(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingSvc.ActivateBooking(r.Context(), actor, id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, booking)
}

type completeBookingRequest struct {
	LateFee       decimal.Decimal `json:"late_fee"`
	DamageCharges decimal.Decimal `json:"damage_charges"`
}

func (h *BookingHandler) Complete(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid booking id"})
		return
	}

	var req completeBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	booking, err := h.bookingSvc.CompleteBooking(r.Context(), actor, id, req.LateFee, req.DamageCharges)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, booking)
}
