package handler

import (
	"context"  // context with timeout for DB calls
	"errors"   // errors.Is comparisons against repository sentinels
	"net/http" // HTTP status codes
	"strconv"  // parsing path parameters
	"time"     // date parsing and timeouts

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/hotel-reservation/internal/config"
	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/queue"
	"github.com/iliyamo/hotel-reservation/internal/repository"
	queue_publisher "github.com/iliyamo/hotel-reservation/internal/service"
)

// BookingStore is the slice of the booking repository the handlers need.
// *repository.BookingRepo satisfies it; tests substitute an in-memory fake.
type BookingStore interface {
	Create(ctx context.Context, b *model.Booking) error
	ListRecent(ctx context.Context, limit int) ([]repository.BookingSummary, error)
	UpdateStatus(ctx context.Context, id uint64, status string) error
	Stats(ctx context.Context) (repository.DashboardStats, error)
}

// BookingHandler groups the booking endpoints: guest-facing creation plus
// the admin dashboard surface.  Authentication and role checks happen in
// middleware; handlers read the verified email from the request context.
type BookingHandler struct {
	Cfg      config.Config
	Bookings BookingStore
}

func NewBookingHandler(cfg config.Config, bookings BookingStore) *BookingHandler {
	return &BookingHandler{Cfg: cfg, Bookings: bookings}
}

// recentBookingsLimit caps the admin list at the newest entries the
// dashboard actually renders.
const recentBookingsLimit = 10

type createBookingReq struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	RoomType  string `json:"room_type"`
	People    int    `json:"people"`
	CheckIn   string `json:"check_in"` // YYYY-MM-DD
	Duration  int    `json:"duration"` // days
}

// Create handles POST /hotel_booking.  The booking is inserted with status
// pending and owned by the authenticated account; the response carries the
// generated id and the derived check-out date (check-in + duration days).
func (h *BookingHandler) Create(c echo.Context) error {
	userEmail, _ := c.Get("email").(string)
	if userEmail == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid token data"})
	}

	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
	}
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Phone == "" ||
		req.RoomType == "" || req.People <= 0 || req.CheckIn == "" || req.Duration <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "All fields are required"})
	}
	checkIn, err := time.Parse("2006-01-02", req.CheckIn)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid check_in date"})
	}

	b := model.Booking{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		RoomType:  req.RoomType,
		People:    req.People,
		CheckIn:   checkIn,
		Duration:  req.Duration,
		Status:    model.StatusPending,
		UserEmail: userEmail,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Bookings.Create(ctx, &b); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to create booking"})
	}

	if h.Cfg.EventsEnabled {
		// Best effort: a broker outage must never fail the booking.
		_ = queue_publisher.PublishBookingCreated(ctx, queue.BookingCreatedEvent{
			BookingID: b.ID,
			GuestName: b.FirstName + " " + b.LastName,
			RoomType:  b.RoomType,
			People:    b.People,
			CheckIn:   b.CheckIn.Format("2006-01-02"),
			CheckOut:  b.CheckOut().Format("2006-01-02"),
			UserEmail: b.UserEmail,
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":    "Booking created successfully",
		"booking_id": b.ID,
		"check_out":  b.CheckOut().Format("2006-01-02"),
	})
}

// List handles GET /admin/bookings and returns the 10 most recent bookings
// for the dashboard.
func (h *BookingHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	bookings, err := h.Bookings.ListRecent(ctx, recentBookingsLimit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to fetch bookings"})
	}
	return c.JSON(http.StatusOK, bookings)
}

type updateStatusReq struct {
	Status string `json:"status"`
}

// UpdateStatus handles PUT /admin/bookings/:id/status.  Any of the four
// valid states may be set regardless of the current one.
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid booking id"})
	}
	var req updateStatusReq
	if err := c.Bind(&req); err != nil || !model.ValidStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid status provided"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Bookings.UpdateStatus(ctx, id, req.Status); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to update booking status"})
	}

	if h.Cfg.EventsEnabled {
		_ = queue_publisher.PublishBookingStatusChanged(ctx, queue.BookingStatusChangedEvent{
			BookingID: id,
			NewStatus: req.Status,
			ChangedAt: time.Now().UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":    "Booking status updated successfully",
		"booking_id": id,
		"new_status": req.Status,
	})
}

// Stats handles GET /admin/dashboard/stats.
func (h *BookingHandler) Stats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	stats, err := h.Bookings.Stats(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to fetch dashboard stats"})
	}
	return c.JSON(http.StatusOK, stats)
}
