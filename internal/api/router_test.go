package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BeautyBooking/internal/api"
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
	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-BeautyBooking/internal/notifications"
	bookingsService "github.com/m04kA/SMC-BeautyBooking/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-BeautyBooking/internal/service/catalog"
	reviewsService "github.com/m04kA/SMC-BeautyBooking/internal/service/reviews"
	scheduleService "github.com/m04kA/SMC-BeautyBooking/internal/service/schedule"
	verificationService "github.com/m04kA/SMC-BeautyBooking/internal/service/verification"
	createBookingUC "github.com/m04kA/SMC-BeautyBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-BeautyBooking/internal/usecase/get_available_slots"
	submitReviewUC "github.com/m04kA/SMC-BeautyBooking/internal/usecase/submit_review"
	"github.com/m04kA/SMC-BeautyBooking/pkg/logger"
	"github.com/m04kA/SMC-BeautyBooking/pkg/metrics"
)

var (
	pro    = &domain.Actor{UserID: "pro-1", Role: domain.RoleProfessional}
	client = &domain.Actor{UserID: "client-1", Role: domain.RoleClient}
	other  = &domain.Actor{UserID: "client-2", Role: domain.RoleClient}
	admin  = &domain.Actor{UserID: "admin-1", Role: domain.RoleAdmin}
)

func newRouter(t *testing.T) *mux.Router {
	t.Helper()
	log := logger.NewNop()
	m := metrics.NewWithRegistry(prometheus.NewRegistry(), "test")

	bookings := memory.NewBookingRepository()
	schedules := memory.NewScheduleRepository()
	catalog := memory.NewCatalogRepository()
	reviews := memory.NewReviewRepository()
	profiles := memory.NewVerificationRepository()
	tx := memory.NewTxManager()

	dispatcher := notifications.NewDispatcher(notifications.NewLogPublisher(log), notifications.Config{Workers: 1, QueueSize: 64}, m, log)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = dispatcher.Close(ctx)
	})

	bookingSvc := bookingsService.NewService(bookings, tx, dispatcher, m, time.UTC, log)
	scheduleSvc := scheduleService.NewService(schedules, bookings, tx, time.UTC, log)
	catalogSvc := catalogService.NewService(catalog, log)
	reviewSvc := reviewsService.NewService(reviews, log)
	verificationSvc := verificationService.NewService(profiles, tx, dispatcher, log)

	createBooking := createBookingUC.NewUseCase(bookings, schedules, catalog, tx, dispatcher, m, 30, time.UTC, log)
	getSlots := getAvailableSlotsUC.NewUseCase(schedules, bookings, catalog, 30, time.UTC, log)
	submitReview := submitReviewUC.NewUseCase(bookings, reviews, tx, dispatcher, log)

	return api.NewRouter(api.Handlers{
		GetSchedule:             getScheduleHandler.NewHandler(scheduleSvc, log),
		UpdateSchedule:          updateScheduleHandler.NewHandler(scheduleSvc, log),
		GetAvailableSlots:       getAvailableSlotsHandler.NewHandler(getSlots, log),
		CreateBooking:           createBookingHandler.NewHandler(createBooking, log),
		GetBooking:              getBookingHandler.NewHandler(bookingSvc, log),
		UpdateBookingStatus:     updateBookingStatusHandler.NewHandler(bookingSvc, log),
		SubmitReview:            submitReviewHandler.NewHandler(submitReview, log),
		GetClientBookings:       getClientBookingsHandler.NewHandler(bookingSvc, log),
		GetProfessionalBookings: getProfessionalBookingsHandler.NewHandler(bookingSvc, log),
		GetProfessionalReviews:  getProfessionalReviewsHandler.NewHandler(reviewSvc, log),
		GetProfessionalServices: getProfessionalServicesHandler.NewHandler(catalogSvc, log),
		GetService:              getServiceHandler.NewHandler(catalogSvc, log),
		ListServices:            listServicesHandler.NewHandler(catalogSvc, log),
		GetServiceCategories:    getServiceCategoriesHandler.NewHandler(catalogSvc, log),
		ListProfessionals:       listProfessionalsHandler.NewHandler(verificationSvc, log),
		CreateService:           createServiceHandler.NewHandler(catalogSvc, log),
		UpdateService:           updateServiceHandler.NewHandler(catalogSvc, log),
		DeleteService:           deleteServiceHandler.NewHandler(catalogSvc, log),
		ApplyVerification:       applyVerificationHandler.NewHandler(verificationSvc, log),
		GetVerifications:        getVerificationsHandler.NewHandler(verificationSvc, log),
		ReviewVerification:      reviewVerificationHandler.NewHandler(verificationSvc, log),
	}, api.RouterConfig{Metrics: m, MetricsPath: "/metrics", Logger: log})
}

func do(t *testing.T, r http.Handler, method, path string, actor *domain.Actor, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if actor != nil {
		req.Header.Set(middleware.HeaderUserID, actor.UserID)
		req.Header.Set(middleware.HeaderUserRole, string(actor.Role))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst), rec.Body.String())
}

// nextMonday первый понедельник не раньше чем через неделю
func nextMonday() string {
	d := time.Now().UTC().AddDate(0, 0, 7)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format(domain.DateFormat)
}

type slotsBody struct {
	Slots []struct {
		StartTime string `json:"startTime"`
	} `json:"slots"`
}

func startTimes(b slotsBody) []string {
	out := make([]string, 0, len(b.Slots))
	for _, s := range b.Slots {
		out = append(out, s.StartTime)
	}
	return out
}

func TestRouter_BookingLifecycle(t *testing.T) {
	r := newRouter(t)
	monday := nextMonday()

	// мастер публикует услугу
	rec := do(t, r, http.MethodPost, "/api/v1/services", pro, map[string]interface{}{
		"name": "Gel Manicure", "price": "35.50", "durationMinutes": 60, "category": "Gel/Acrylic",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var service struct {
		ID string `json:"id"`
	}
	decode(t, rec, &service)

	rec = do(t, r, http.MethodGet, "/api/v1/professionals/pro-1/available-slots?date="+monday+"&durationMinutes=60", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var slots slotsBody
	decode(t, rec, &slots)
	assert.Len(t, slots.Slots, 15)

	booking := map[string]interface{}{
		"professionalId": "pro-1", "serviceId": service.ID, "bookingDate": monday, "startTime": "10:00",
	}
	rec = do(t, r, http.MethodPost, "/api/v1/bookings", client, booking)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		ID           string `json:"id"`
		Status       string `json:"status"`
		EndTime      string `json:"endTime"`
		ServicePrice string `json:"servicePrice"`
		EventID      string `json:"eventId"`
	}
	decode(t, rec, &created)
	assert.Equal(t, "confirmed", created.Status)
	assert.Equal(t, "11:00", created.EndTime)
	assert.Equal(t, "35.5", created.ServicePrice)
	assert.NotEmpty(t, created.EventID)

	rec = do(t, r, http.MethodPost, "/api/v1/bookings", other, booking)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, r, http.MethodGet, "/api/v1/professionals/pro-1/available-slots?date="+monday+"&serviceId="+service.ID, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	slots = slotsBody{}
	decode(t, rec, &slots)
	starts := startTimes(slots)
	assert.Len(t, starts, 12)
	assert.Contains(t, starts, "09:00")
	assert.Contains(t, starts, "11:00")
	assert.NotContains(t, starts, "09:30")
	assert.NotContains(t, starts, "10:00")
	assert.NotContains(t, starts, "10:30")

	bookingPath := "/api/v1/bookings/" + created.ID
	assert.Equal(t, http.StatusForbidden, do(t, r, http.MethodGet, bookingPath, other, nil).Code)
	assert.Equal(t, http.StatusOK, do(t, r, http.MethodGet, bookingPath, client, nil).Code)
	assert.Equal(t, http.StatusOK, do(t, r, http.MethodGet, bookingPath, pro, nil).Code)

	review := map[string]interface{}{"rating": 5, "comment": "Excelente trabajo, muy detallista", "tags": []string{"Puntual"}}
	rec = do(t, r, http.MethodPost, bookingPath+"/review", client, review)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, r, http.MethodPatch, bookingPath+"/status", client, map[string]string{"status": "completed"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = do(t, r, http.MethodPatch, bookingPath+"/status", pro, map[string]string{"status": "completed"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec = do(t, r, http.MethodPatch, bookingPath+"/status", pro, map[string]string{"status": "cancelled"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, r, http.MethodPost, bookingPath+"/review", other, review)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = do(t, r, http.MethodPost, bookingPath+"/review", client, review)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = do(t, r, http.MethodPost, bookingPath+"/review", client, review)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, r, http.MethodGet, "/api/v1/professionals/pro-1/reviews", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var reviews struct {
		Summary struct {
			Count         int     `json:"count"`
			AverageRating float64 `json:"averageRating"`
		} `json:"summary"`
	}
	decode(t, rec, &reviews)
	assert.Equal(t, 1, reviews.Summary.Count)
	assert.Equal(t, 5.0, reviews.Summary.AverageRating)

	rec = do(t, r, http.MethodGet, "/api/v1/clients/client-1/bookings?view=past", client, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var history struct {
		Bookings []struct {
			ID       string `json:"id"`
			Reviewed bool   `json:"reviewed"`
		} `json:"bookings"`
		Summary struct {
			Completed  int    `json:"completed"`
			TotalSpent string `json:"totalSpent"`
		} `json:"summary"`
	}
	decode(t, rec, &history)
	require.Len(t, history.Bookings, 1)
	assert.True(t, history.Bookings[0].Reviewed)
	assert.Equal(t, 1, history.Summary.Completed)
	assert.Equal(t, "35.5", history.Summary.TotalSpent)

	assert.Equal(t, http.StatusForbidden, do(t, r, http.MethodGet, "/api/v1/clients/client-1/bookings", other, nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodGet, "/api/v1/clients/client-1/bookings?view=later", client, nil).Code)

	rec = do(t, r, http.MethodGet, "/api/v1/professionals/pro-1/bookings?includeInactive=true&date="+monday, pro, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var agenda struct {
		Bookings []json.RawMessage `json:"bookings"`
	}
	decode(t, rec, &agenda)
	assert.Len(t, agenda.Bookings, 1)
}

func TestRouter_ScheduleEdits(t *testing.T) {
	r := newRouter(t)

	rec := do(t, r, http.MethodGet, "/api/v1/professionals/pro-1/schedule", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var schedule struct {
		IsDefault bool `json:"isDefault"`
		Schedule  struct {
			Monday struct {
				Enabled   bool   `json:"enabled"`
				StartTime string `json:"startTime"`
			} `json:"monday"`
		} `json:"schedule"`
	}
	decode(t, rec, &schedule)
	assert.True(t, schedule.IsDefault)
	assert.True(t, schedule.Schedule.Monday.Enabled)
	assert.Equal(t, "09:00", schedule.Schedule.Monday.StartTime)

	day := func(enabled bool, start, end string) map[string]interface{} {
		return map[string]interface{}{"enabled": enabled, "startTime": start, "endTime": end}
	}
	week := map[string]interface{}{
		"monday": day(false, "09:00", "17:00"), "tuesday": day(true, "10:00", "18:00"),
		"wednesday": day(true, "10:00", "18:00"), "thursday": day(true, "10:00", "18:00"),
		"friday": day(true, "10:00", "18:00"), "saturday": day(false, "09:00", "17:00"),
		"sunday": day(false, "09:00", "17:00"),
	}

	assert.Equal(t, http.StatusUnauthorized, do(t, r, http.MethodPut, "/api/v1/professionals/pro-1/schedule", nil, map[string]interface{}{"schedule": week}).Code)
	assert.Equal(t, http.StatusForbidden, do(t, r, http.MethodPut, "/api/v1/professionals/pro-1/schedule", client, map[string]interface{}{"schedule": week}).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPut, "/api/v1/professionals/pro-1/schedule", pro, map[string]interface{}{}).Code)

	rec = do(t, r, http.MethodPut, "/api/v1/professionals/pro-1/schedule", pro, map[string]interface{}{"schedule": week})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(t, r, http.MethodGet, "/api/v1/professionals/pro-1/available-slots?date="+nextMonday()+"&durationMinutes=60", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var slots slotsBody
	decode(t, rec, &slots)
	assert.Empty(t, slots.Slots)

	week["tuesday"] = day(true, "18:00", "10:00")
	rec = do(t, r, http.MethodPut, "/api/v1/professionals/pro-1/schedule", pro, map[string]interface{}{"schedule": week})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, r, http.MethodPut, "/api/v1/professionals/pro-1/schedule", pro, map[string]interface{}{"reset": true})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_Verification(t *testing.T) {
	r := newRouter(t)

	apply := map[string]interface{}{"name": "Ana Lopez", "email": "ana@example.com", "specialties": []string{"Manicure"}}
	assert.Equal(t, http.StatusForbidden, do(t, r, http.MethodPost, "/api/v1/verifications", client, apply).Code)
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/api/v1/verifications", pro, apply).Code)
	assert.Equal(t, http.StatusConflict, do(t, r, http.MethodPost, "/api/v1/verifications", pro, apply).Code)

	assert.Equal(t, http.StatusForbidden, do(t, r, http.MethodGet, "/api/v1/admin/verifications", pro, nil).Code)

	rec := do(t, r, http.MethodGet, "/api/v1/admin/verifications?status=pending", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Profiles []struct {
			ProfessionalID string `json:"professionalId"`
		} `json:"profiles"`
		Stats struct {
			Pending int `json:"pending"`
			Total   int `json:"total"`
		} `json:"stats"`
	}
	decode(t, rec, &list)
	require.Len(t, list.Profiles, 1)
	assert.Equal(t, "pro-1", list.Profiles[0].ProfessionalID)
	assert.Equal(t, 1, list.Stats.Pending)

	path := "/api/v1/admin/verifications/pro-1"
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPatch, path, admin, map[string]string{"status": "rejected"}).Code)
	require.Equal(t, http.StatusOK, do(t, r, http.MethodPatch, path, admin, map[string]string{"status": "approved"}).Code)
	assert.Equal(t, http.StatusConflict, do(t, r, http.MethodPatch, path, admin, map[string]string{"status": "rejected", "reason": "late"}).Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodPatch, "/api/v1/admin/verifications/pro-9", admin, map[string]string{"status": "approved"}).Code)
}

func TestRouter_Browse(t *testing.T) {
	r := newRouter(t)

	for _, body := range []map[string]interface{}{
		{"name": "Gel Manicure", "description": "Long lasting polish", "price": "35", "durationMinutes": 60, "category": "Gel/Acrylic"},
		{"name": "Spa Pedicure", "price": "20", "durationMinutes": 45, "category": "Pedicure"},
	} {
		require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/api/v1/services", pro, body).Code)
	}

	type serviceList struct {
		Services []struct {
			Name string `json:"name"`
		} `json:"services"`
	}

	rec := do(t, r, http.MethodGet, "/api/v1/services", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var all serviceList
	decode(t, rec, &all)
	assert.Len(t, all.Services, 2)

	rec = do(t, r, http.MethodGet, "/api/v1/services?category=Gel%2FAcrylic&q=POLISH", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var found serviceList
	decode(t, rec, &found)
	require.Len(t, found.Services, 1)
	assert.Equal(t, "Gel Manicure", found.Services[0].Name)

	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodGet, "/api/v1/services?category=Haircut", nil, nil).Code)

	rec = do(t, r, http.MethodGet, "/api/v1/services/categories", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var categories struct {
		Categories []string `json:"categories"`
	}
	decode(t, rec, &categories)
	assert.Contains(t, categories.Categories, "Spa Treatment")

	apply := map[string]interface{}{"name": "Lucía", "email": "lucia@example.com", "specialties": []string{"Nail Art"}}
	require.Equal(t, http.StatusCreated, do(t, r, http.MethodPost, "/api/v1/verifications", pro, apply).Code)

	rec = do(t, r, http.MethodGet, "/api/v1/professionals", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var professionals struct {
		Professionals []struct {
			ProfessionalID string `json:"professionalId"`
			Email          string `json:"email"`
		} `json:"professionals"`
	}
	decode(t, rec, &professionals)
	assert.Empty(t, professionals.Professionals)

	require.Equal(t, http.StatusOK, do(t, r, http.MethodPatch, "/api/v1/admin/verifications/pro-1", admin, map[string]string{"status": "approved"}).Code)

	rec = do(t, r, http.MethodGet, "/api/v1/professionals?status=approved", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &professionals)
	require.Len(t, professionals.Professionals, 1)
	assert.Equal(t, "pro-1", professionals.Professionals[0].ProfessionalID)
	assert.Empty(t, professionals.Professionals[0].Email)

	assert.Equal(t, http.StatusForbidden, do(t, r, http.MethodGet, "/api/v1/professionals?status=pending", nil, nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodGet, "/api/v1/professionals?status=archived", nil, nil).Code)
}

func TestRouter_CatalogAndInfra(t *testing.T) {
	r := newRouter(t)

	rec := do(t, r, http.MethodPost, "/api/v1/services", pro, map[string]interface{}{
		"name": "Pedicure Spa", "price": "20", "durationMinutes": 45, "category": "Pedicure",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var service struct {
		ID string `json:"id"`
	}
	decode(t, rec, &service)
	path := "/api/v1/services/" + service.ID

	assert.Equal(t, http.StatusForbidden, do(t, r, http.MethodPut, path, &domain.Actor{UserID: "pro-2", Role: domain.RoleProfessional},
		map[string]interface{}{"name": "Stolen"}).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodPut, path, pro, map[string]interface{}{"durationMinutes": 0}).Code)
	assert.Equal(t, http.StatusOK, do(t, r, http.MethodPut, path, pro, map[string]interface{}{"price": "25.00"}).Code)

	rec = do(t, r, http.MethodGet, "/api/v1/professionals/pro-1/services", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Services []struct {
			Price string `json:"price"`
		} `json:"services"`
	}
	decode(t, rec, &list)
	require.Len(t, list.Services, 1)
	assert.Equal(t, "25", list.Services[0].Price)

	assert.Equal(t, http.StatusOK, do(t, r, http.MethodGet, path, nil, nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, r, http.MethodGet, "/api/v1/services/not-a-uuid", nil, nil).Code)

	assert.Equal(t, http.StatusNoContent, do(t, r, http.MethodDelete, path, pro, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodDelete, path, pro, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, r, http.MethodGet, path, nil, nil).Code)

	// без заголовков идентификации защищённые маршруты недоступны
	rec = do(t, r, http.MethodPost, "/api/v1/bookings", nil, map[string]string{})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.HeaderRequestID))

	assert.Equal(t, http.StatusOK, do(t, r, http.MethodGet, "/metrics", nil, nil).Code)
}
