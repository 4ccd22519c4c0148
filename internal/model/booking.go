package model

import "time"

// Booking status values.  A new booking always starts as pending and the
// status update endpoint may move it to any of the four values; there is no
// enforced ordering between them.  Bookings are never deleted.
const (
    StatusPending   = "pending"
    StatusConfirmed = "confirmed"
    StatusCancelled = "cancelled"
    StatusCompleted = "completed"
)

// ValidStatus reports whether s is one of the four allowed booking states.
func ValidStatus(s string) bool {
    switch s {
    case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
        return true
    }
    return false
}

// Booking records a guest's stay request as stored in the `bookings`
// table.  The check-out date is never stored; it is always derived from
// CheckIn plus Duration at read time.
//
// Fields:
//  ID        – primary key identifier.
//  FirstName – guest's given name as entered on the booking form.
//  LastName  – guest's family name.
//  Email     – guest contact email.
//  Phone     – guest contact phone number.
//  RoomType  – requested room category.
//  People    – size of the party.
//  CheckIn   – first day of the stay.
//  Duration  – length of the stay in days.
//  Status    – booking state (pending, confirmed, cancelled, completed).
//  UserEmail – email of the authenticated account that created the booking.
//  CreatedAt – creation timestamp.
type Booking struct {
    ID        uint64    // bookings.id
    FirstName string    // bookings.first_name
    LastName  string    // bookings.last_name
    Email     string    // bookings.email
    Phone     string    // bookings.phone
    RoomType  string    // bookings.room_type
    People    int       // bookings.people
    CheckIn   time.Time // bookings.check_in
    Duration  int       // bookings.duration (days)
    Status    string    // bookings.status
    UserEmail string    // bookings.user_email
    CreatedAt time.Time // bookings.created_at
}

// CheckOut derives the departure date from the check-in date and the stay
// duration in days.
func (b Booking) CheckOut() time.Time {
    return b.CheckIn.AddDate(0, 0, b.Duration)
}

// Room mirrors a row of the `rooms` table.  Only the status column matters
// to this service: the dashboard counts available rooms against the total.
//
// Fields:
//  ID     – primary key identifier.
//  Number – human readable room number.
//  Type   – room category matching bookings.room_type.
//  Status – availability flag ('available' or 'occupied').
type Room struct {
    ID     uint64 // rooms.id
    Number string // rooms.number
    Type   string // rooms.type
    Status string // rooms.status
}
