package model

import (
	"testing"
	"time"
)

func TestBookingCheckOut(t *testing.T) {
	checkIn := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	b := Booking{CheckIn: checkIn, Duration: 3}

	got := b.CheckOut().Format("2006-01-02")
	if got != "2024-01-04" {
		t.Errorf("CheckOut() = %v, want 2024-01-04", got)
	}
}

func TestBookingCheckOutCrossesMonth(t *testing.T) {
	checkIn := time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)
	b := Booking{CheckIn: checkIn, Duration: 2}

	// 2024 is a leap year.
	got := b.CheckOut().Format("2006-01-02")
	if got != "2024-03-01" {
		t.Errorf("CheckOut() = %v, want 2024-03-01", got)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted} {
		if !ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "Pending", "archived", "CONFIRMED"} {
		if ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true, want false", s)
		}
	}
}
