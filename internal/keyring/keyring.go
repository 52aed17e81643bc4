package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/ryancast1/reservations/internal/constants"
)

var (
	// ErrNotFound is returned when no secret is stored in the keyring
	ErrNotFound = errors.New("secret not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetPasscode retrieves the admin passcode from the OS keyring.
// Returns ErrNotFound if no passcode has been set.
func GetPasscode() (string, error) {
	passcode, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		// Wrap other keyring errors as unavailable
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return passcode, nil
}

// SetPasscode stores the admin passcode in the OS keyring.
func SetPasscode(passcode string) error {
	if passcode == "" {
		return errors.New("passcode cannot be empty")
	}
	err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, passcode)
	if err != nil {
		return fmt.Errorf("failed to store passcode in keyring: %w", err)
	}
	return nil
}

// DeletePasscode removes the admin passcode from the OS keyring.
func DeletePasscode() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete passcode from keyring: %w", err)
	}
	return nil
}

// IsAvailable checks if the OS keyring is available on the current system.
// This is a best-effort check and may not catch all failure scenarios.
func IsAvailable() bool {
	// Try to perform a read operation to test availability
	// We don't care about the result, just whether the operation succeeds or fails
	_, err := keyring.Get(constants.AppName, "test-availability")
	// If the error is ErrNotFound, the keyring is available but empty
	// Any other error likely indicates the keyring is not available
	return err == nil || err == keyring.ErrNotFound
}
