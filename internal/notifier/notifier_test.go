package notifier

import (
	"strings"
	"testing"

	"github.com/ryancast1/reservations/internal/models"
)

func TestSubject(t *testing.T) {
	res := models.Reservation{
		GuestName: "Dana",
		Room:      models.RoomMain,
		CheckIn:   "2025-01-05",
		CheckOut:  "2025-01-08",
	}
	want := "New Booking: Dana in Main Guest Room"
	if got := Subject(res); got != want {
		t.Errorf("Subject() = %q, want %q", got, want)
	}
}

func TestBody(t *testing.T) {
	res := models.Reservation{
		GuestName: "Dana",
		Room:      models.RoomMain,
		CheckIn:   "2025-01-05",
		CheckOut:  "2025-01-08",
	}
	body := Body(res)

	for _, want := range []string{
		"Guest: Dana",
		"Check-in: Sun, January 5, 2025",
		"Check-out: Wed, January 8, 2025",
		"Length: 3 nights",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
}

func TestBodySingleNight(t *testing.T) {
	res := models.Reservation{
		GuestName: "Evan",
		Room:      models.RoomTwo,
		CheckIn:   "2025-02-01",
		CheckOut:  "2025-02-02",
	}
	if body := Body(res); !strings.Contains(body, "Length: 1 night\n") {
		t.Errorf("expected singular night label:\n%s", body)
	}
}

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Error("expected error for missing API key")
	}
	if _, err := New(Config{APIKey: "key", ToEmail: "owner@example.com"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
