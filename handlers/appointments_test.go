package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"chairbook/middleware"
	"chairbook/models"
	"chairbook/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type stubBooking struct {
	err      error
	gotUser  string
	gotReq   models.AppointmentRequest
	deleteID string
}

func (s *stubBooking) CreateAppointment(_ context.Context, userID string, req models.AppointmentRequest) (*models.Appointment, error) {
	s.gotUser, s.gotReq = userID, req
	if s.err != nil {
		return nil, s.err
	}
	return &models.Appointment{ID: "new", Client: userID, Date: req.Date, Time: req.Time, Services: req.Services}, nil
}

func (s *stubBooking) GetAppointment(_ context.Context, id string) (*models.Appointment, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Appointment{ID: id}, nil
}

func (s *stubBooking) ListAppointments(context.Context) ([]models.Appointment, error) {
	return []models.Appointment{{ID: "a1"}}, s.err
}

func (s *stubBooking) ListByUser(_ context.Context, userID string) ([]models.Appointment, error) {
	return []models.Appointment{{ID: "a1", Client: userID}}, s.err
}

func (s *stubBooking) EditAppointment(_ context.Context, userID, id string, req models.AppointmentRequest) (*models.Appointment, error) {
	s.gotUser, s.gotReq = userID, req
	if s.err != nil {
		return nil, s.err
	}
	return &models.Appointment{ID: id, Client: userID}, nil
}

func (s *stubBooking) DeleteAppointment(_ context.Context, userID, id string) error {
	s.gotUser, s.deleteID = userID, id
	return s.err
}

func newAppointmentRouter(svc booking.AppointmentService) *gin.Engine {
	h := NewAppointmentHandler(svc, zap.NewNop())
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(middleware.UserIDKey, "u1"); c.Next() })
	r.POST("/create-appointment", h.CreateAppointment)
	r.GET("/get-appointment/:id", h.GetAppointment)
	r.PUT("/edit-appointment/:id", h.EditAppointment)
	r.DELETE("/delete-appointment/:id", h.DeleteAppointment)
	return r
}

func send(r *gin.Engine, method, url string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateAppointmentHandler(t *testing.T) {
	svc := &stubBooking{}
	r := newAppointmentRouter(svc)

	w := send(r, http.MethodPost, "/create-appointment", map[string]any{
		"date": "2026-10-19", "time": "3:00 PM", "services": []string{"cut"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body)
	}
	if svc.gotUser != "u1" || svc.gotReq.Time != "3:00 PM" {
		t.Fatalf("service called with %s %+v", svc.gotUser, svc.gotReq)
	}
	var body struct {
		Error       bool               `json:"error"`
		Appointment models.Appointment `json:"appointment"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.Error || body.Appointment.ID != "new" {
		t.Fatalf("unexpected body %s", w.Body)
	}

	if w := send(r, http.MethodPost, "/create-appointment", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("empty body: status %d", w.Code)
	}
}

func TestAppointmentHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{fmt.Errorf("%w: no services", booking.ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("%w: service x", booking.ErrNotFound), http.StatusNotFound},
		{booking.ErrForbidden, http.StatusForbidden},
		{fmt.Errorf("%w: overlaps", booking.ErrSlotUnavailable), http.StatusConflict},
		{booking.ErrLockTimeout, http.StatusServiceUnavailable},
		{fmt.Errorf("mongo down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		r := newAppointmentRouter(&stubBooking{err: tt.err})
		w := send(r, http.MethodPost, "/create-appointment", map[string]any{"date": "2026-10-19", "time": "15:00", "services": []string{"cut"}})
		if w.Code != tt.status {
			t.Fatalf("%v: status %d, want %d", tt.err, w.Code, tt.status)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body["error"] != true {
			t.Fatalf("%v: unexpected body %s", tt.err, w.Body)
		}
	}
}

func TestEditAndDeleteAppointmentHandlers(t *testing.T) {
	svc := &stubBooking{}
	r := newAppointmentRouter(svc)

	if w := send(r, http.MethodPut, "/edit-appointment/a1", map[string]any{}); w.Code != http.StatusBadRequest {
		t.Fatalf("empty edit: status %d", w.Code)
	}
	if w := send(r, http.MethodPut, "/edit-appointment/a1", map[string]any{"note": "late"}); w.Code != http.StatusOK {
		t.Fatalf("edit: status %d", w.Code)
	}
	if svc.gotReq.Note == nil || *svc.gotReq.Note != "late" {
		t.Fatalf("note not passed through: %+v", svc.gotReq)
	}

	if w := send(r, http.MethodDelete, "/delete-appointment/a9", nil); w.Code != http.StatusOK {
		t.Fatalf("delete: status %d", w.Code)
	}
	if svc.deleteID != "a9" || svc.gotUser != "u1" {
		t.Fatalf("delete called with %s by %s", svc.deleteID, svc.gotUser)
	}
}
