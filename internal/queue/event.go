// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published when a guest submits a new booking.
// It contains enough information for downstream consumers to log, notify, or
// trigger analytics without querying the primary database.
type BookingCreatedEvent struct {
    BookingID uint64 `json:"booking_id"`
    GuestName string `json:"guest_name"`
    RoomType  string `json:"room_type"`
    People    int    `json:"people"`
    CheckIn   string `json:"check_in"`
    CheckOut  string `json:"check_out"`
    UserEmail string `json:"user_email"`
    CreatedAt string `json:"created_at"`
}

// BookingStatusChangedEvent is published when an admin moves a booking to a
// new status.
type BookingStatusChangedEvent struct {
    BookingID uint64 `json:"booking_id"`
    NewStatus string `json:"new_status"`
    ChangedAt string `json:"changed_at"`
}
