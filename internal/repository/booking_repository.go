package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// BookingRepo provides CRUD operations for hotel bookings and the aggregate
// queries behind the admin dashboard.  Check-out dates are always derived
// from check_in plus duration; they are never stored.  All timestamp fields
// are assumed to be stored in UTC.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// Create inserts a new booking inside a transaction and populates the
// generated ID on the provided record.  The transaction is rolled back on
// any failure so a half-written booking never becomes visible.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	const q = `INSERT INTO bookings
		(first_name, last_name, email, phone, room_type, people, check_in, duration, status, user_email)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, q,
		b.FirstName, b.LastName, b.Email, b.Phone, b.RoomType, b.People,
		b.CheckIn.Format("2006-01-02"), b.Duration, b.Status, b.UserEmail)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	b.ID = uint64(id)
	return tx.Commit()
}

// BookingSummary is the admin-facing view of a booking.  Dates are
// pre-formatted so the handler can return rows as-is: check_in and the
// derived check_out as YYYY-MM-DD, created_at as RFC 3339.
type BookingSummary struct {
	ID        uint64 `json:"id"`
	GuestName string `json:"guest_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	RoomType  string `json:"room_type"`
	People    int    `json:"people"`
	CheckIn   string `json:"check_in"`
	Duration  int    `json:"duration"`
	CheckOut  string `json:"check_out"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// ListRecent returns the most recently created bookings, newest first,
// capped at limit.  The guest name is the first and last name joined for
// display on the dashboard.
func (r *BookingRepo) ListRecent(ctx context.Context, limit int) ([]BookingSummary, error) {
	const q = `SELECT
			b.id,
			CONCAT(b.first_name, ' ', b.last_name) AS guest_name,
			b.email,
			b.phone,
			b.room_type,
			b.people,
			b.check_in,
			b.duration,
			DATE_ADD(b.check_in, INTERVAL b.duration DAY) AS check_out,
			b.status,
			b.created_at
		FROM bookings b
		ORDER BY b.created_at DESC
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]BookingSummary, 0, limit)
	for rows.Next() {
		var s BookingSummary
		var checkIn, checkOut, createdAt time.Time
		if err := rows.Scan(&s.ID, &s.GuestName, &s.Email, &s.Phone, &s.RoomType,
			&s.People, &checkIn, &s.Duration, &checkOut, &s.Status, &createdAt); err != nil {
			return nil, err
		}
		s.CheckIn = checkIn.Format("2006-01-02")
		s.CheckOut = checkOut.Format("2006-01-02")
		s.CreatedAt = createdAt.Format(time.RFC3339)
		out = append(out, s)
	}
	return out, rows.Err()
}

// UpdateStatus sets the status of a booking unconditionally; any of the four
// states may follow any other.  Returns ErrBookingNotFound when the id does
// not exist.  An update that leaves the row unchanged reports zero affected
// rows on MySQL, so existence is re-checked before deciding it was a miss.
func (r *BookingRepo) UpdateStatus(ctx context.Context, id uint64, status string) error {
	res, err := r.db.ExecContext(ctx, "UPDATE bookings SET status=? WHERE id=?", status, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		return nil
	}
	var exists uint64
	err = r.db.QueryRowContext(ctx, "SELECT id FROM bookings WHERE id=? LIMIT 1", id).Scan(&exists)
	if err == sql.ErrNoRows {
		return ErrBookingNotFound
	}
	return err
}

// DashboardStats aggregates the counters shown on the admin dashboard.
// ActiveGuests counts distinct guest emails whose confirmed stay window
// (check_in through check_in + duration) covers today.
type DashboardStats struct {
	TotalBookings     int `json:"totalBookings"`
	ConfirmedBookings int `json:"confirmedBookings"`
	PendingBookings   int `json:"pendingBookings"`
	ActiveGuests      int `json:"activeGuests"`
	AvailableRooms    int `json:"availableRooms"`
	TotalRooms        int `json:"totalRooms"`
}

// Stats runs the three aggregate queries behind the dashboard and combines
// the results.
func (r *BookingRepo) Stats(ctx context.Context) (DashboardStats, error) {
	var st DashboardStats
	err := r.db.QueryRowContext(ctx, `SELECT
			COUNT(*) AS total_bookings,
			COALESCE(SUM(status = 'confirmed'), 0) AS confirmed_bookings,
			COALESCE(SUM(status = 'pending'), 0) AS pending_bookings
		FROM bookings`).Scan(&st.TotalBookings, &st.ConfirmedBookings, &st.PendingBookings)
	if err != nil {
		return DashboardStats{}, err
	}

	err = r.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT email)
		FROM bookings
		WHERE status = 'confirmed'
		  AND check_in <= CURDATE()
		  AND DATE_ADD(check_in, INTERVAL duration DAY) >= CURDATE()`).Scan(&st.ActiveGuests)
	if err != nil {
		return DashboardStats{}, err
	}

	err = r.db.QueryRowContext(ctx, `SELECT
			(SELECT COUNT(*) FROM rooms WHERE status = 'available') AS available_rooms,
			(SELECT COUNT(*) FROM rooms) AS total_rooms`).Scan(&st.AvailableRooms, &st.TotalRooms)
	if err != nil {
		return DashboardStats{}, err
	}
	return st, nil
}
