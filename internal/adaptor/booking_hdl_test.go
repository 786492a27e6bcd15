package adaptor_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"garatge-booking/internal/adaptor"
	"garatge-booking/internal/dto/request"
	"garatge-booking/internal/dto/response"
	"garatge-booking/internal/usecase"
	"garatge-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubBookingService returns canned results so the handler's status
// mapping and redirects can be exercised without the real flow.
type stubBookingService struct {
	createResp *response.ReservationResponse
	createErr  error
	cancelErr  error
}

func (s *stubBookingService) ListResources(context.Context, string) ([]response.ResourceResponse, error) {
	return nil, nil
}

func (s *stubBookingService) GetAvailability(context.Context, string) (*response.AvailabilityResponse, error) {
	return &response.AvailabilityResponse{}, nil
}

func (s *stubBookingService) CreateReservation(context.Context, *request.CreateReservationRequest) (*response.ReservationResponse, error) {
	return s.createResp, s.createErr
}

func (s *stubBookingService) CancelReservation(context.Context, string) error {
	return s.cancelErr
}

func handlerConfig() *utils.Config {
	return &utils.Config{
		Booking: utils.BookingConfig{
			CancelSuccessURL: "https://garatgeestacio.test/cancellacio-exitosa",
			CancelErrorURL:   "https://garatgeestacio.test/cancellacio-error",
		},
	}
}

func newBookingHandler(svc usecase.BookingService) *adaptor.BookingHandler {
	return adaptor.NewBookingHandler(svc, handlerConfig(), zap.NewNop())
}

func postJSON(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestCreateReservation_Returns201(t *testing.T) {
	h := newBookingHandler(&stubBookingService{
		createResp: &response.ReservationResponse{ID: "abc", Status: "pending", TotalPrice: 150},
	})

	rec := postJSON(t, h.CreateReservation, `{"resource_id":"x"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Message)
}

func TestCreateReservation_MalformedBody(t *testing.T) {
	h := newBookingHandler(&stubBookingService{})

	rec := postJSON(t, h.CreateReservation, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateReservation_ErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"validation", &usecase.ValidationError{Msg: "bad input"}, http.StatusBadRequest},
		{"scheduling", &usecase.SchedulingError{Msg: "too soon"}, http.StatusBadRequest},
		{"conflict", &usecase.ConflictError{Msg: "dates taken"}, http.StatusConflict},
		{"not found", &usecase.NotFoundError{Msg: "no resource"}, http.StatusNotFound},
		{"persistence", &usecase.PersistenceError{Op: "create", Err: assert.AnError}, http.StatusInternalServerError},
		{"upstream", &usecase.UpstreamError{Service: "upload", Err: assert.AnError}, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newBookingHandler(&stubBookingService{createErr: tc.err})

			rec := postJSON(t, h.CreateReservation, `{"resource_id":"x"}`)

			assert.Equal(t, tc.code, rec.Code)
		})
	}
}

func TestCancelReservation_RedirectsToSuccessPage(t *testing.T) {
	h := newBookingHandler(&stubBookingService{})

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/cancel?token=abcd", nil)
	rec := httptest.NewRecorder()
	h.CancelReservation(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "https://garatgeestacio.test/cancellacio-exitosa", rec.Header().Get("Location"))
}

func TestCancelReservation_MissingTokenRedirectsToErrorPage(t *testing.T) {
	h := newBookingHandler(&stubBookingService{})

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/cancel", nil)
	rec := httptest.NewRecorder()
	h.CancelReservation(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "https://garatgeestacio.test/cancellacio-error?reason=invalid_token", rec.Header().Get("Location"))
}

func TestCancelReservation_UnknownTokenRedirectsWithReason(t *testing.T) {
	h := newBookingHandler(&stubBookingService{cancelErr: &usecase.NotFoundError{Msg: "gone"}})

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/cancel?token=abcd", nil)
	rec := httptest.NewRecorder()
	h.CancelReservation(rec, req)

	assert.Equal(t, "https://garatgeestacio.test/cancellacio-error?reason=not_found", rec.Header().Get("Location"))
}

func TestListResources_RequiresKind(t *testing.T) {
	h := newBookingHandler(&stubBookingService{})

	req := httptest.NewRequest(http.MethodGet, "/api/resources", nil)
	rec := httptest.NewRecorder()
	h.ListResources(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAvailability_RequiresResourceID(t *testing.T) {
	h := newBookingHandler(&stubBookingService{})

	req := httptest.NewRequest(http.MethodGet, "/api/availability", nil)
	rec := httptest.NewRecorder()
	h.GetAvailability(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
