package keyring

import (
	"testing"

	gokeyring "github.com/zalando/go-keyring"
)

func TestSetAndGetPasscode(t *testing.T) {
	// Use mock keyring for testing
	gokeyring.MockInit()

	err := SetPasscode("4812")
	if err != nil {
		t.Fatalf("SetPasscode() failed: %v", err)
	}

	retrieved, err := GetPasscode()
	if err != nil {
		t.Fatalf("GetPasscode() failed: %v", err)
	}

	if retrieved != "4812" {
		t.Errorf("GetPasscode() = %q, want %q", retrieved, "4812")
	}
}

func TestSetPasscodeEmpty(t *testing.T) {
	gokeyring.MockInit()

	err := SetPasscode("")
	if err == nil {
		t.Error("SetPasscode(\"\") should return an error")
	}
}

func TestGetPasscodeNotFound(t *testing.T) {
	gokeyring.MockInit()

	// Ensure nothing is stored
	_ = DeletePasscode()

	_, err := GetPasscode()
	if err != ErrNotFound {
		t.Errorf("GetPasscode() error = %v, want %v", err, ErrNotFound)
	}
}

func TestDeletePasscode(t *testing.T) {
	gokeyring.MockInit()

	err := SetPasscode("4812")
	if err != nil {
		t.Fatalf("SetPasscode() failed: %v", err)
	}

	err = DeletePasscode()
	if err != nil {
		t.Fatalf("DeletePasscode() failed: %v", err)
	}

	// Verify it's gone
	_, err = GetPasscode()
	if err != ErrNotFound {
		t.Errorf("After DeletePasscode(), GetPasscode() error = %v, want %v", err, ErrNotFound)
	}
}

func TestDeletePasscodeNotFound(t *testing.T) {
	gokeyring.MockInit()

	_ = DeletePasscode()

	err := DeletePasscode()
	if err != ErrNotFound {
		t.Errorf("DeletePasscode() error = %v, want %v", err, ErrNotFound)
	}
}

func TestIsAvailable(t *testing.T) {
	gokeyring.MockInit()

	available := IsAvailable()
	// In mock mode, keyring should be available
	if !available {
		t.Error("IsAvailable() = false, want true in mock mode")
	}
}
