package http

import (
	"encoding/json"
	"net/http"

	"github.com/MysticHqra/Rydio/internal/domain"
	"github.com/MysticHqra/Rydio/internal/service"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type PaymentHandler struct {
	paymentSvc service.PaymentService
}

func NewPaymentHandler(paymentSvc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

type processPaymentRequest struct {
	BookingID     int64                `json:"booking_id"`
	Amount        decimal.Decimal      `json:"amount"`
	PaymentType   domain.PaymentType   `json:"payment_type"`
	PaymentMethod domain.PaymentMethod `json:"payment_method"`
	Notes         string               `json:"notes"`
}

func (h *PaymentHandler) Process(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFromContext(r.Context())
	var req processPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	payment, err := h.paymentSvc.ProcessPayment(r.Context(), actor, service.PaymentInput{
		BookingID:     req.BookingID,
		Amount:        req.Amount,
		PaymentType:   req.PaymentType,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, payment)
}

type refundRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason"`
}

func (h *PaymentHandler) Refund(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid payment id"})
		return
	}

	var req refundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	payment, err := h.paymentSvc.ProcessRefund(r.Context(), actor, id, req.Amount, req.Reason)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, payment)
}

func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFromContext(r.Context())
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid payment id"})
		return
	}

	payment, err := h.paymentSvc.GetPayment(r.Context(), actor, id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, payment)
}

func (h *PaymentHandler) GetByTransactionID(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFromContext(r.Context())
	txnID := mux.Vars(r)["transaction_id"]

	payment, err := h.paymentSvc.GetPaymentByTransactionID(r.Context(), actor, txnID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, payment)
}

func (h *PaymentHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFromContext(r.Context())
	page, pageSize := pagination(r)

	payments, count, err := h.paymentSvc.ListMyPayments(r.Context(), actor, page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, pagedResponse{Items: payments, TotalCount: count, Page: page, PageSize: pageSize})
}

func (h *PaymentHandler) ListByStatus(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFromContext(r.Context())
	status := domain.PaymentStatus(r.URL.Query().Get("status"))
	if status == "" {
		status = domain.PaymentStatusPending
	}

	payments, err := h.paymentSvc.ListPaymentsByStatus(r.Context(), actor, status)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, payments)
}

func (h *PaymentHandler) ListForBooking(w http.ResponseWriter, r *http.Request) {
	actor, _ := actorFromContext(r.Context())
	bookingID, err := pathID(r, "booking_id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid booking id"})
		return
	}

	payments, err := h.paymentSvc.ListBookingPayments(r.Context(), actor, bookingID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, payments)
}
