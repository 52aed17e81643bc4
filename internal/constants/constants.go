package constants

const (
	AppName            = "reservations"
	DefaultKeyringUser = "admin-passcode"
	DefaultConfigPath  = "~/.config/reservations/reservations.db"
	Version            = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// HumanDateFormat is used anywhere a date is shown to a person, e.g. "Mon, January 5, 2025"
	HumanDateFormat = "Mon, January 2, 2006"

	// BlockedGuestName is the sentinel guest name stored on blockout records
	BlockedGuestName = "Blocked"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "reservations-"
	BackupFileSuffix = ".db"

	// Gate constants
	UnlockMarkerName = "unlocked"
	UnlockTTLMin     = 30

	// Notifier constants
	NotifySubjectPrefix = "New Booking"
	NotifyTimeoutSec    = 5
)
