package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/repository"
)

// fakeBookingStore is an in-memory BookingStore recording what the handlers
// asked for.
type fakeBookingStore struct {
	bookings    []model.Booking
	nextID      uint64
	listLimit   int
	summaries   []repository.BookingSummary
	stats       repository.DashboardStats
	createErr   error
	updateErr   error
	updatedID   uint64
	updatedTo   string
}

func (f *fakeBookingStore) Create(_ context.Context, b *model.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	b.ID = f.nextID
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeBookingStore) ListRecent(_ context.Context, limit int) ([]repository.BookingSummary, error) {
	f.listLimit = limit
	return f.summaries, nil
}

func (f *fakeBookingStore) UpdateStatus(_ context.Context, id uint64, status string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedID = id
	f.updatedTo = status
	return nil
}

func (f *fakeBookingStore) Stats(_ context.Context) (repository.DashboardStats, error) {
	return f.stats, nil
}

// callBooking runs a booking handler with the authenticated email already in
// context, the way the cookie middleware leaves it.
func callBooking(t *testing.T, h echo.HandlerFunc, method, target, body, email string, params ...string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	if email != "" {
		c.Set("email", email)
		c.Set("role", model.RoleGuest)
	}
	for i := 0; i+1 < len(params); i += 2 {
		c.SetParamNames(params[i])
		c.SetParamValues(params[i+1])
	}
	require.NoError(t, h(c))
	return rec
}

const bookingBody = `{"first_name":"A","last_name":"B","email":"a@b.com","phone":"123","room_type":"deluxe","people":2,"check_in":"2024-01-01","duration":3}`

func TestCreateBookingDerivesCheckOut(t *testing.T) {
	store := &fakeBookingStore{}
	h := NewBookingHandler(testConfig(), store)

	rec := callBooking(t, h.Create, http.MethodPost, "/hotel_booking", bookingBody, "owner@b.com")

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "2024-01-04", body["check_out"])
	assert.Equal(t, float64(1), body["booking_id"])

	require.Len(t, store.bookings, 1)
	b := store.bookings[0]
	assert.Equal(t, model.StatusPending, b.Status)
	assert.Equal(t, "owner@b.com", b.UserEmail)
	assert.Equal(t, 3, b.Duration)
}

func TestCreateBookingValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing phone", `{"first_name":"A","last_name":"B","email":"a@b.com","room_type":"deluxe","people":2,"check_in":"2024-01-01","duration":3}`},
		{"zero people", `{"first_name":"A","last_name":"B","email":"a@b.com","phone":"123","room_type":"deluxe","people":0,"check_in":"2024-01-01","duration":3}`},
		{"bad date", `{"first_name":"A","last_name":"B","email":"a@b.com","phone":"123","room_type":"deluxe","people":2,"check_in":"01/01/2024","duration":3}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewBookingHandler(testConfig(), &fakeBookingStore{})
			rec := callBooking(t, h.Create, http.MethodPost, "/hotel_booking", tc.body, "owner@b.com")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCreateBookingWithoutIdentity(t *testing.T) {
	h := NewBookingHandler(testConfig(), &fakeBookingStore{})
	rec := callBooking(t, h.Create, http.MethodPost, "/hotel_booking", bookingBody, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateBookingStorageFailure(t *testing.T) {
	store := &fakeBookingStore{createErr: context.DeadlineExceeded}
	h := NewBookingHandler(testConfig(), store)

	rec := callBooking(t, h.Create, http.MethodPost, "/hotel_booking", bookingBody, "owner@b.com")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to create booking", decodeBody(t, rec)["message"])
}

func TestListRecentBookingsCapsAtTen(t *testing.T) {
	store := &fakeBookingStore{summaries: []repository.BookingSummary{
		{ID: 2, GuestName: "A B", CheckIn: "2024-01-01", CheckOut: "2024-01-04", Status: "pending"},
		{ID: 1, GuestName: "C D", CheckIn: "2024-01-02", CheckOut: "2024-01-03", Status: "confirmed"},
	}}
	h := NewBookingHandler(testConfig(), store)

	rec := callBooking(t, h.List, http.MethodGet, "/admin/bookings", "", "admin@hotel.com")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 10, store.listLimit)

	var out []repository.BookingSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 2)
	assert.Equal(t, "A B", out[0].GuestName)
}

func TestUpdateStatus(t *testing.T) {
	store := &fakeBookingStore{}
	h := NewBookingHandler(testConfig(), store)

	rec := callBooking(t, h.UpdateStatus, http.MethodPut, "/admin/bookings/7/status",
		`{"status":"confirmed"}`, "admin@hotel.com", "id", "7")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(7), body["booking_id"])
	assert.Equal(t, "confirmed", body["new_status"])
	assert.Equal(t, uint64(7), store.updatedID)
	assert.Equal(t, "confirmed", store.updatedTo)
}

func TestUpdateStatusRejectsInvalidValue(t *testing.T) {
	h := NewBookingHandler(testConfig(), &fakeBookingStore{})

	for _, body := range []string{`{"status":"archived"}`, `{"status":""}`, `{}`} {
		rec := callBooking(t, h.UpdateStatus, http.MethodPut, "/admin/bookings/7/status",
			body, "admin@hotel.com", "id", "7")
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestUpdateStatusUnknownBooking(t *testing.T) {
	store := &fakeBookingStore{updateErr: repository.ErrBookingNotFound}
	h := NewBookingHandler(testConfig(), store)

	rec := callBooking(t, h.UpdateStatus, http.MethodPut, "/admin/bookings/999/status",
		`{"status":"confirmed"}`, "admin@hotel.com", "id", "999")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Booking not found", decodeBody(t, rec)["message"])
}

func TestUpdateStatusBadID(t *testing.T) {
	h := NewBookingHandler(testConfig(), &fakeBookingStore{})
	rec := callBooking(t, h.UpdateStatus, http.MethodPut, "/admin/bookings/abc/status",
		`{"status":"confirmed"}`, "admin@hotel.com", "id", "abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDashboardStats(t *testing.T) {
	store := &fakeBookingStore{stats: repository.DashboardStats{
		TotalBookings:     12,
		ConfirmedBookings: 5,
		PendingBookings:   4,
		ActiveGuests:      3,
		AvailableRooms:    8,
		TotalRooms:        20,
	}}
	h := NewBookingHandler(testConfig(), store)

	rec := callBooking(t, h.Stats, http.MethodGet, "/admin/dashboard/stats", "", "admin@hotel.com")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(12), body["totalBookings"])
	assert.Equal(t, float64(5), body["confirmedBookings"])
	assert.Equal(t, float64(4), body["pendingBookings"])
	assert.Equal(t, float64(3), body["activeGuests"])
	assert.Equal(t, float64(8), body["availableRooms"])
	assert.Equal(t, float64(20), body["totalRooms"])
}
