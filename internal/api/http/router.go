package http

import (
	"database/sql"
	"net/http"

	"github.com/MysticHqra/Rydio/internal/security"
	"github.com/MysticHqra/Rydio/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter wires all API routes. Public routes need no token, the
// /api/v1 subtree requires a valid bearer token and /api/v1/admin
// additionally requires the ADMIN role.
func NewRouter(
	db *sql.DB,
	tokens security.TokenManager,
	authSvc service.AuthService,
	vehicleSvc service.VehicleService,
	bookingSvc service.BookingService,
	paymentSvc service.PaymentService,
) *mux.Router {
	authHandler := NewAuthHandler(authSvc)
	vehicleHandler := NewVehicleHandler(vehicleSvc, bookingSvc)
	bookingHandler := NewBookingHandler(bookingSvc)
	paymentHandler := NewPaymentHandler(paymentSvc)
	healthHandler := NewHealthHandler(db)

	router := mux.NewRouter()
	router.Use(RequestIDMiddleware)
	router.Use(LoggingMiddleware)

	router.HandleFunc("/health", healthHandler.Health).Methods(http.MethodGet)

	// Public routes
	public := router.PathPrefix("/api/v1").Subrouter()
	public.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	public.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	public.HandleFunc("/vehicles", vehicleHandler.List).Methods(http.MethodGet)
	public.HandleFunc("/vehicles/search", vehicleHandler.Search).Methods(http.MethodGet)
	public.HandleFunc("/vehicles/{id:[0-9]+}", vehicleHandler.Get).Methods(http.MethodGet)
	public.HandleFunc("/vehicles/{id:[0-9]+}/availability", vehicleHandler.CheckAvailability).Methods(http.MethodGet)

	// Authenticated routes
	authed := router.PathPrefix("/api/v1").Subrouter()
	authed.Use(AuthMiddleware(tokens))
	authed.HandleFunc("/profile", authHandler.GetProfile).Methods(http.MethodGet)
	authed.HandleFunc("/profile", authHandler.UpdateProfile).Methods(http.MethodPut)
	authed.HandleFunc("/vehicles/mine", vehicleHandler.ListMine).Methods(http.MethodGet)

	authed.HandleFunc("/bookings", bookingHandler.Create).Methods(http.MethodPost)
	authed.HandleFunc("/bookings", bookingHandler.ListMine).Methods(http.MethodGet)
	authed.HandleFunc("/bookings/reference/{reference}", bookingHandler.GetByReference).Methods(http.MethodGet)
	authed.HandleFunc("/bookings/{id:[0-9]+}", bookingHandler.Get).Methods(http.MethodGet)
	authed.HandleFunc("/bookings/{id:[0-9]+}", bookingHandler.Update).Methods(http.MethodPut)
	authed.HandleFunc("/bookings/{id:[0-9]+}/cancel", bookingHandler.Cancel).Methods(http.MethodPost)

	authed.HandleFunc("/payments", paymentHandler.Process).Methods(http.MethodPost)
	authed.HandleFunc("/payments", paymentHandler.ListMine).Methods(http.MethodGet)
	authed.HandleFunc("/payments/transaction/{transaction_id}", paymentHandler.GetByTransactionID).Methods(http.MethodGet)
	authed.HandleFunc("/payments/{id:[0-9]+}", paymentHandler.Get).Methods(http.MethodGet)
	authed.HandleFunc("/bookings/{booking_id:[0-9]+}/payments", paymentHandler.ListForBooking).Methods(http.MethodGet)

	// Admin routes
	admin := router.PathPrefix("/api/v1/admin").Subrouter()
	admin.Use(AuthMiddleware(tokens))
	admin.Use(AdminOnlyMiddleware)
	admin.HandleFunc("/vehicles", vehicleHandler.Add).Methods(http.MethodPost)
	admin.HandleFunc("/vehicles/{id:[0-9]+}", vehicleHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/vehicles/{id:[0-9]+}", vehicleHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/bookings", bookingHandler.ListAll).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id:[0-9]+}/confirm", bookingHandler.Confirm).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{id:[0-9]+}/activate", bookingHandler.Activate).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{id:[0-9]+}/complete", bookingHandler.Complete).Methods(http.MethodPost)
	admin.HandleFunc("/payments", paymentHandler.ListByStatus).Methods(http.MethodGet)
	admin.HandleFunc("/payments/{id:[0-9]+}/refund", paymentHandler.Refund).Methods(http.MethodPost)

	return router
}
