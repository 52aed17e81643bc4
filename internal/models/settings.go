package models

// Settings represents application-wide settings
type Settings struct {
	NotificationsEnabled bool   `json:"notifications_enabled"` // whether new-booking emails are sent
	NotificationEmail    string `json:"notification_email"`    // recipient of new-booking emails
	NotificationFrom     string `json:"notification_from"`     // sender address for new-booking emails
	UnlockTTLMin         int    `json:"unlock_ttl_min"`        // minutes an admin unlock stays valid
}
