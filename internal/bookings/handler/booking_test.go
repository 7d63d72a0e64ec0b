package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "wanderbook/pkg/errors"
	"wanderbook/pkg/logger"
	"wanderbook/pkg/model"

	"github.com/julienschmidt/httprouter"
)

const prefix = "/api/custom-packages"

type mockBookingService struct {
	createFunc       func(ctx context.Context, input *model.BookingInput) (*model.Booking, error)
	getAllFunc       func(ctx context.Context) ([]*model.Booking, error)
	getByIDFunc      func(ctx context.Context, id string) (*model.Booking, error)
	updateStatusFunc func(ctx context.Context, id string, status string) (*model.Booking, error)
	deleteFunc       func(ctx context.Context, id string) error
}

func (m *mockBookingService) Create(ctx context.Context, input *model.BookingInput) (*model.Booking, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, input)
	}
	return &model.Booking{}, nil
}

func (m *mockBookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return &model.Booking{ID: id}, nil
}

func (m *mockBookingService) GetAll(ctx context.Context) ([]*model.Booking, error) {
	if m.getAllFunc != nil {
		return m.getAllFunc(ctx)
	}
	return []*model.Booking{}, nil
}

func (m *mockBookingService) UpdateStatus(ctx context.Context, id string, status string) (*model.Booking, error) {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return &model.Booking{ID: id, Status: model.BookingStatus(status)}, nil
}

func (m *mockBookingService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Code    string          `json:"code"`
	Data    json.RawMessage `json:"data"`
}

func serve(svc *mockBookingService, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	router := httprouter.New()
	NewBookingHandler(svc, logger.NewNop()).RegisterRoutes(router, prefix)

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, prefix+path, nil)
	} else {
		req = httptest.NewRequest(method, prefix+path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestCreate(t *testing.T) {
	var received *model.BookingInput
	svc := &mockBookingService{
		createFunc: func(ctx context.Context, input *model.BookingInput) (*model.Booking, error) {
			received = input
			return &model.Booking{ID: "b1", Status: model.BookingPending, TotalPrice: 35}, nil
		},
	}

	body := `{"customerName":"Wanjiru","email":"w@example.com","phoneNumber":"+254712345678",
		"travelDate":"2026-12-20","selectedOptions":{"A":{"_id":"o1","name":"x","price":"10"},"B":{"_id":"o2","name":"y","price":25}},
		"totalPrice":"35"}`

	w, env := serve(svc, http.MethodPost, "/bookings", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if !env.Success {
		t.Error("expected success=true")
	}
	if received == nil || len(received.SelectedOptions) != 2 {
		t.Fatalf("unexpected decoded input %+v", received)
	}
	if a := received.SelectedOptions["A"]; !a.Price.Valid || a.Price.Decimal.String() != "10" {
		t.Errorf("expected string option price to be coerced, got %+v", a.Price)
	}
	if received.AdditionalNotes != nil {
		t.Error("omitted notes should decode as nil")
	}
	if !received.TotalPrice.Valid || received.TotalPrice.Decimal.String() != "35" {
		t.Errorf("expected string total to be coerced, got %+v", received.TotalPrice)
	}
}

func TestCreate_MalformedBody(t *testing.T) {
	w, env := serve(&mockBookingService{}, http.MethodPost, "/bookings", `{"customerName":`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if env.Success || env.Message == "" {
		t.Errorf("expected failure envelope with message, got %+v", env)
	}
}

func TestUpdateStatus(t *testing.T) {
	tests := []struct {
		name        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{"approved", nil, http.StatusOK, "Booking status updated to approved"},
		{"invalid id", apperrors.InvalidID("booking", "xyz"), http.StatusBadRequest, "Invalid booking ID"},
		{"invalid status", apperrors.Validation("Invalid status value", nil), http.StatusBadRequest, "Invalid status value"},
		{"not found", apperrors.NotFoundWithID("Booking", "b1"), http.StatusNotFound, "Booking not found"},
		{"unexpected", apperrors.Internal("Failed to update booking status", nil), http.StatusInternalServerError, "Failed to update booking status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID, gotStatus string
			svc := &mockBookingService{
				updateStatusFunc: func(ctx context.Context, id string, status string) (*model.Booking, error) {
					gotID, gotStatus = id, status
					if tt.serviceErr != nil {
						return nil, tt.serviceErr
					}
					return &model.Booking{ID: id, Status: model.BookingStatus(status)}, nil
				},
			}

			w, env := serve(svc, http.MethodPut, "/bookings/b1", `{"status":"approved"}`)
			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, w.Code)
			}
			if env.Message != tt.wantMessage {
				t.Errorf("expected message %q, got %q", tt.wantMessage, env.Message)
			}
			if env.Success != (tt.serviceErr == nil) {
				t.Errorf("unexpected success flag %v", env.Success)
			}
			if gotID != "b1" || gotStatus != "approved" {
				t.Errorf("service received id=%q status=%q", gotID, gotStatus)
			}
			if tt.serviceErr == nil && len(env.Data) == 0 {
				t.Error("expected updated booking in data")
			}
		})
	}
}

func TestGetAllAndGetByID(t *testing.T) {
	svc := &mockBookingService{
		getAllFunc: func(ctx context.Context) ([]*model.Booking, error) {
			return []*model.Booking{{ID: "b2"}, {ID: "b1"}}, nil
		},
	}

	w, env := serve(svc, http.MethodGet, "/bookings", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var list []model.Booking
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatalf("failed to decode data: %v", err)
	}
	if len(list) != 2 || list[0].ID != "b2" {
		t.Errorf("unexpected list %+v", list)
	}

	w, env = serve(svc, http.MethodGet, "/bookings/b9", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var one model.Booking
	if err := json.Unmarshal(env.Data, &one); err != nil {
		t.Fatalf("failed to decode data: %v", err)
	}
	if one.ID != "b9" {
		t.Errorf("expected b9, got %s", one.ID)
	}
}

func TestDelete(t *testing.T) {
	svc := &mockBookingService{
		deleteFunc: func(ctx context.Context, id string) error {
			if id == "missing" {
				return apperrors.NotFoundWithID("Booking", id)
			}
			return nil
		},
	}

	w, env := serve(svc, http.MethodDelete, "/bookings/b1", "")
	if w.Code != http.StatusOK || !env.Success {
		t.Errorf("expected 200 success, got %d %+v", w.Code, env)
	}

	w, _ = serve(svc, http.MethodDelete, "/bookings/missing", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
