package system

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/ryancast1/reservations/internal/cli"
	"github.com/ryancast1/reservations/internal/gate"
	"github.com/ryancast1/reservations/internal/keyring"
)

// PasscodeSetCmd stores the admin passcode in the OS keyring
type PasscodeSetCmd struct{}

func (cmd *PasscodeSetCmd) Run(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		return errors.New("OS keyring is not available on this system")
	}

	// Changing an existing passcode requires the current one
	if _, err := keyring.GetPasscode(); err == nil {
		if err := ctx.Gate.Require(); err != nil {
			return err
		}
	}

	var passcode, confirm string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("New passcode").
				Description("Digits only, at least 4").
				EchoMode(huh.EchoModePassword).
				Value(&passcode).
				Validate(validatePasscode),
			huh.NewInput().
				Title("Confirm passcode").
				EchoMode(huh.EchoModePassword).
				Value(&confirm),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}
	if passcode != confirm {
		return errors.New("passcodes do not match")
	}

	if err := keyring.SetPasscode(passcode); err != nil {
		return fmt.Errorf("failed to store passcode in keyring: %w", err)
	}

	fmt.Println("✓ Passcode stored in OS keyring")
	fmt.Println("  Blockouts, edits, and deletions now require it")
	return nil
}

// PasscodeClearCmd removes the admin passcode from the OS keyring
type PasscodeClearCmd struct{}

func (cmd *PasscodeClearCmd) Run(ctx *cli.Context) error {
	if err := ctx.Gate.Require(); err != nil {
		return err
	}

	err := keyring.DeletePasscode()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no passcode is set")
		}
		return fmt.Errorf("failed to delete passcode from keyring: %w", err)
	}

	fmt.Println("✓ Passcode removed, gated commands no longer prompt")
	return nil
}

// UnlockCmd starts an unlock session up front so the following gated
// commands do not prompt
type UnlockCmd struct{}

func (cmd *UnlockCmd) Run(ctx *cli.Context) error {
	pg, ok := ctx.Gate.(*gate.PasscodeGate)
	if !ok {
		return nil
	}

	if _, err := keyring.GetPasscode(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("No passcode is set; gated commands do not prompt.")
			return nil
		}
		return err
	}

	var passcode string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Passcode").
				EchoMode(huh.EchoModePassword).
				Value(&passcode),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	if err := pg.Unlock(passcode); err != nil {
		return err
	}
	fmt.Println("Session unlocked.")
	return nil
}

// LockCmd ends the current unlock session immediately
type LockCmd struct{}

func (cmd *LockCmd) Run(ctx *cli.Context) error {
	pg, ok := ctx.Gate.(*gate.PasscodeGate)
	if !ok {
		return nil
	}
	if err := pg.Lock(); err != nil {
		return fmt.Errorf("failed to lock session: %w", err)
	}
	fmt.Println("Session locked.")
	return nil
}

func validatePasscode(s string) error {
	if len(s) < 4 {
		return errors.New("passcode must be at least 4 digits")
	}
	if _, err := strconv.Atoi(s); err != nil {
		return errors.New("passcode must be numeric")
	}
	return nil
}
