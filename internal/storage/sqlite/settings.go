package sqlite

import (
	"fmt"

	"github.com/ryancast1/reservations/internal/models"
)

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

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec("notifications_enabled", fmt.Sprintf("%t", settings.NotificationsEnabled)); err != nil {
		return err
	}
	if _, err := stmt.Exec("notification_email", settings.NotificationEmail); err != nil {
		return err
	}
	if _, err := stmt.Exec("notification_from", settings.NotificationFrom); err != nil {
		return err
	}
	if _, err := stmt.Exec("unlock_ttl_min", fmt.Sprintf("%d", settings.UnlockTTLMin)); err != nil {
		return err
	}

	return tx.Commit()
}
