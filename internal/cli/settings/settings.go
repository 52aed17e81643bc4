package settings

import (
	"fmt"

	"github.com/ryancast1/reservations/internal/cli"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	NotificationsEnabled *bool   `help:"Enable or disable booking notification emails."`
	NotificationEmail    *string `help:"Recipient address for booking notifications."`
	NotificationFrom     *string `help:"Sender address for booking notifications."`
	UnlockTTLMin         *int    `help:"Minutes an unlocked session stays valid." name:"unlock-ttl-min"`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Notifications Enabled: %v\n", settings.NotificationsEnabled)
		fmt.Printf("  Notification Email:    %s\n", settings.NotificationEmail)
		fmt.Printf("  Notification From:     %s\n", settings.NotificationFrom)
		fmt.Printf("  Unlock Session TTL:    %d min\n", settings.UnlockTTLMin)
		return nil
	}

	updated := false
	if c.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *c.NotificationsEnabled
		updated = true
	}
	if c.NotificationEmail != nil {
		settings.NotificationEmail = *c.NotificationEmail
		updated = true
	}
	if c.NotificationFrom != nil {
		settings.NotificationFrom = *c.NotificationFrom
		updated = true
	}
	if c.UnlockTTLMin != nil {
		if *c.UnlockTTLMin < 1 {
			return fmt.Errorf("unlock TTL must be at least 1 minute")
		}
		settings.UnlockTTLMin = *c.UnlockTTLMin
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
