package postgres

import (
	"fmt"

	"github.com/ryancast1/reservations/internal/constants"
	"github.com/ryancast1/reservations/internal/models"
)

func defaultSettings() models.Settings {
	return models.Settings{
		NotificationsEnabled: true,
		UnlockTTLMin:         constants.UnlockTTLMin,
	}
}

func (s *Store) GetSettings() (models.Settings, error) {
	if s.db == nil {
		return models.Settings{}, fmt.Errorf("database not loaded")
	}
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case "notifications_enabled":
			settings.NotificationsEnabled = value == "true"
		case "notification_email":
			settings.NotificationEmail = value
		case "notification_from":
			settings.NotificationFrom = value
		case "unlock_ttl_min":
			if _, err := fmt.Sscanf(value, "%d", &settings.UnlockTTLMin); err != nil {
				return models.Settings{}, fmt.Errorf("parsing unlock_ttl_min: %w", err)
			}
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, err
	}

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	if s.db == nil {
		return fmt.Errorf("database not loaded")
	}
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	pairs := map[string]string{
		"notifications_enabled": fmt.Sprintf("%t", settings.NotificationsEnabled),
		"notification_email":    settings.NotificationEmail,
		"notification_from":     settings.NotificationFrom,
		"unlock_ttl_min":        fmt.Sprintf("%d", settings.UnlockTTLMin),
	}
	for key, value := range pairs {
		if _, err := stmt.Exec(key, value); err != nil {
			return err
		}
	}

	return tx.Commit()
}
