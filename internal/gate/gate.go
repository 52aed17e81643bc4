// Package gate guards mutating flows (blockouts, edits, deletes) behind
// the shared admin passcode. Booking itself is not gated. A successful
// unlock is remembered for a short session window via a marker file so
// the user is not re-prompted on every command.
package gate

import (
	"crypto/subtle"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/ryancast1/reservations/internal/constants"
	"github.com/ryancast1/reservations/internal/keyring"
)

// ErrBadPasscode is returned when the entered passcode does not match.
var ErrBadPasscode = errors.New("incorrect passcode")

// Validator authorizes a mutating action. Implementations may prompt the
// user interactively.
type Validator interface {
	Require() error
}

// PasscodeGate validates against the passcode stored in the OS keyring.
// If no passcode has been set, the gate is open.
type PasscodeGate struct {
	configDir string
	ttl       time.Duration
	prompt    func() (string, error)
}

// New creates a PasscodeGate whose unlock marker lives in configDir.
// ttlMin of zero or less falls back to the default session length.
func New(configDir string, ttlMin int) *PasscodeGate {
	if ttlMin <= 0 {
		ttlMin = constants.UnlockTTLMin
	}
	return &PasscodeGate{
		configDir: configDir,
		ttl:       time.Duration(ttlMin) * time.Minute,
		prompt:    promptPasscode,
	}
}

// Require ensures the caller is authorized, prompting for the passcode if
// the current session is not already unlocked.
func (g *PasscodeGate) Require() error {
	stored, err := keyring.GetPasscode()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			// No passcode configured, nothing to enforce
			return nil
		}
		return err
	}

	if g.sessionUnlocked() {
		return nil
	}

	entered, err := g.prompt()
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare([]byte(entered), []byte(stored)) != 1 {
		return ErrBadPasscode
	}
	return g.writeMarker()
}

// Unlock validates the passcode directly without prompting and starts a
// session on success.
func (g *PasscodeGate) Unlock(passcode string) error {
	stored, err := keyring.GetPasscode()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil
		}
		return err
	}
	if subtle.ConstantTimeCompare([]byte(passcode), []byte(stored)) != 1 {
		return ErrBadPasscode
	}
	return g.writeMarker()
}

// Lock ends the current session immediately.
func (g *PasscodeGate) Lock() error {
	err := os.Remove(g.markerPath())
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (g *PasscodeGate) markerPath() string {
	return filepath.Join(g.configDir, constants.UnlockMarkerName)
}

// sessionUnlocked reports whether the marker file exists and is younger
// than the TTL. Stale markers are cleaned up on sight.
func (g *PasscodeGate) sessionUnlocked() bool {
	info, err := os.Stat(g.markerPath())
	if err != nil {
		return false
	}
	if time.Since(info.ModTime()) > g.ttl {
		_ = os.Remove(g.markerPath())
		return false
	}
	return true
}

func (g *PasscodeGate) writeMarker() error {
	if err := os.MkdirAll(g.configDir, 0700); err != nil {
		return err
	}
	return os.WriteFile(g.markerPath(), []byte(time.Now().Format(time.RFC3339)+"\n"), 0600)
}

func promptPasscode() (string, error) {
	var entered string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Passcode").
				Description("This action requires the admin passcode").
				EchoMode(huh.EchoModePassword).
				Value(&entered),
		),
	)
	if err := form.Run(); err != nil {
		return "", err
	}
	return entered, nil
}

// Open is a Validator that always authorizes, for flows where no
// passcode gating applies.
type Open struct{}

func (Open) Require() error { return nil }
