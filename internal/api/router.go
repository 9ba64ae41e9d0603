package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	applyVerificationHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/apply_verification"
	createBookingHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/create_booking"
	createServiceHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/create_service"
	deleteServiceHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/delete_service"
	getAvailableSlotsHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/get_booking"
	getClientBookingsHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/get_client_bookings"
	getProfessionalBookingsHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/get_professional_bookings"
	getProfessionalReviewsHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/get_professional_reviews"
	getProfessionalServicesHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/get_professional_services"
	getScheduleHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/get_schedule"
	getServiceHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/get_service"
	getServiceCategoriesHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/get_service_categories"
	getVerificationsHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/get_verifications"
	listProfessionalsHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/list_professionals"
	listServicesHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/list_services"
	reviewVerificationHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/review_verification"
	submitReviewHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/submit_review"
	updateBookingStatusHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/update_booking_status"
	updateScheduleHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/update_schedule"
	updateServiceHandler "github.com/m04kA/SMC-BeautyBooking/internal/api/handlers/update_service"
	"github.com/m04kA/SMC-BeautyBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BeautyBooking/pkg/metrics"
)

// Handlers набор HTTP обработчиков сервиса
type Handlers struct {
	GetSchedule             *getScheduleHandler.Handler
	UpdateSchedule          *updateScheduleHandler.Handler
	GetAvailableSlots       *getAvailableSlotsHandler.Handler
	CreateBooking           *createBookingHandler.Handler
	GetBooking              *getBookingHandler.Handler
	UpdateBookingStatus     *updateBookingStatusHandler.Handler
	SubmitReview            *submitReviewHandler.Handler
	GetClientBookings       *getClientBookingsHandler.Handler
	GetProfessionalBookings *getProfessionalBookingsHandler.Handler
	GetProfessionalReviews  *getProfessionalReviewsHandler.Handler
	GetProfessionalServices *getProfessionalServicesHandler.Handler
	GetService              *getServiceHandler.Handler
	ListServices            *listServicesHandler.Handler
	GetServiceCategories    *getServiceCategoriesHandler.Handler
	ListProfessionals       *listProfessionalsHandler.Handler
	CreateService           *createServiceHandler.Handler
	UpdateService           *updateServiceHandler.Handler
	DeleteService           *deleteServiceHandler.Handler
	ApplyVerification       *applyVerificationHandler.Handler
	GetVerifications        *getVerificationsHandler.Handler
	ReviewVerification      *reviewVerificationHandler.Handler
}

// RouterConfig middleware и служебные маршруты
// nil Metrics выключает метрики, nil RateLimiter выключает лимит, nil Logger выключает журнал запросов
type RouterConfig struct {
	Metrics     *metrics.Metrics
	MetricsPath string
	RateLimiter *middleware.RateLimiter
	Logger      middleware.Logger
}

// NewRouter собирает маршруты /api/v1
func NewRouter(h Handlers, cfg RouterConfig) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	if cfg.Logger != nil {
		r.Use(middleware.Logging(cfg.Logger))
	}

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(cfg.Metrics, cfg.Metrics.ServiceName()))
		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.MetricsPath, promhttp.Handler()).Methods(http.MethodGet)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	if cfg.RateLimiter != nil {
		api.Use(cfg.RateLimiter.Middleware)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/professionals", h.ListProfessionals.Handle).Methods(http.MethodGet)
	api.HandleFunc("/professionals/{professionalId}/schedule", h.GetSchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/professionals/{professionalId}/available-slots", h.GetAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/professionals/{professionalId}/services", h.GetProfessionalServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/professionals/{professionalId}/reviews", h.GetProfessionalReviews.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", h.ListServices.Handle).Methods(http.MethodGet)
	// categories регистрируется раньше {serviceId}
	api.HandleFunc("/services/categories", h.GetServiceCategories.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}", h.GetService.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID и X-User-Role)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Расписание ---
	protected.HandleFunc("/professionals/{professionalId}/schedule", h.UpdateSchedule.Handle).Methods(http.MethodPut)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", h.CreateBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", h.GetBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/status", h.UpdateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/review", h.SubmitReview.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/clients/{clientId}/bookings", h.GetClientBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/professionals/{professionalId}/bookings", h.GetProfessionalBookings.Handle).Methods(http.MethodGet)

	// --- Каталог услуг ---
	protected.HandleFunc("/services", h.CreateService.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/services/{serviceId}", h.UpdateService.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/services/{serviceId}", h.DeleteService.Handle).Methods(http.MethodDelete)

	// --- Верификация мастеров ---
	protected.HandleFunc("/verifications", h.ApplyVerification.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/admin/verifications", h.GetVerifications.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/admin/verifications/{professionalId}", h.ReviewVerification.Handle).Methods(http.MethodPatch)

	return r
}
