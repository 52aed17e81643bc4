package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/ryancast1/reservations/internal/booking"
	"github.com/ryancast1/reservations/internal/cli"
	"github.com/ryancast1/reservations/internal/cli/backups"
	"github.com/ryancast1/reservations/internal/cli/bookings"
	calendarcmd "github.com/ryancast1/reservations/internal/cli/calendar"
	"github.com/ryancast1/reservations/internal/cli/settings"
	"github.com/ryancast1/reservations/internal/cli/system"
	"github.com/ryancast1/reservations/internal/constants"
	"github.com/ryancast1/reservations/internal/gate"
	"github.com/ryancast1/reservations/internal/logger"
	"github.com/ryancast1/reservations/internal/notifier"
	"github.com/ryancast1/reservations/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database file path or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded in the connection string. Use environment variables or .pgpass instead." type:"string" default:"~/.config/reservations/reservations.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init     system.InitCmd          `cmd:"" help:"Initialize reservation storage."`
	Migrate  system.MigrateCmd       `cmd:"" help:"Run database migrations."`
	Doctor   system.DoctorCmd        `cmd:"" help:"Run health checks and diagnostics."`
	Tui      system.TuiCmd           `cmd:"" help:"Launch the interactive calendar." default:"1"`
	Calendar calendarcmd.CalendarCmd `cmd:"" help:"Print a month's occupancy grid."`
	Book     bookings.BookCmd        `cmd:"" help:"Book a room for a guest."`
	Block    bookings.BlockCmd       `cmd:"" help:"Block out all rooms for a date range."`
	List     bookings.ListCmd        `cmd:"" help:"List reservations."`
	Show     bookings.ShowCmd        `cmd:"" help:"Show one reservation in detail."`
	Edit     bookings.EditCmd        `cmd:"" help:"Edit an existing reservation."`
	Delete   bookings.DeleteCmd      `cmd:"" help:"Delete a reservation."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
	Passcode struct {
		Set   system.PasscodeSetCmd   `cmd:"" help:"Set or change the admin passcode."`
		Clear system.PasscodeClearCmd `cmd:"" help:"Remove the admin passcode."`
	} `cmd:"" help:"Manage the admin passcode."`
	Unlock   system.UnlockCmd     `cmd:"" help:"Start an unlock session so gated commands do not prompt."`
	Lock     system.LockCmd       `cmd:"" help:"End the current unlock session."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
}

func main() {
	// Best effort, a missing .env file is fine
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Vacation property room reservations and blockout calendar"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	// Initialize storage based on config format
	var store storage.Provider
	var configDir string
	if storage.IsPostgresConnString(CLI.Config) {
		if storage.HasEmbeddedCredentials(CLI.Config) {
			fmt.Fprintf(os.Stderr, "❌ Error: PostgreSQL connection strings with embedded credentials are NOT allowed.\n")
			fmt.Fprintf(os.Stderr, "       Use environment variables or a .pgpass file and pass the connection string without a password.\n")
			os.Exit(1)
		}
		store = storage.NewPostgresStore(CLI.Config)
		configDir = defaultConfigDir()
	} else {
		path := expandPath(CLI.Config)
		store = storage.NewSQLiteStore(path)
		configDir = filepath.Dir(path)
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	appCtx := &cli.Context{Store: store}

	// Load the store before running the command (init handles its own setup)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	// Gate and notifier read stored settings, so they come after Load.
	appCtx.Gate = gateForStore(store, configDir)
	appCtx.Bookings = booking.New(store, mailerForStore(store))

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// gateForStore builds the passcode gate, honoring the stored session TTL
// when settings are readable.
func gateForStore(store storage.Provider, configDir string) *gate.PasscodeGate {
	ttl := 0
	if s, err := store.GetSettings(); err == nil {
		ttl = s.UnlockTTLMin
	}
	return gate.New(configDir, ttl)
}

// mailerForStore builds the booking notifier from the environment and
// stored settings. Returns nil when notifications are unconfigured, the
// booking service treats that as notifications off.
func mailerForStore(store storage.Provider) booking.Notifier {
	s, err := store.GetSettings()
	if err != nil {
		s.NotificationsEnabled = false
	}
	mailer, err := notifier.NewFromSettings(s)
	if err != nil {
		logger.Debug("Booking notifications disabled", "reason", err)
		return nil
	}
	return mailer
}

func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

func defaultConfigDir() string {
	return filepath.Dir(expandPath(constants.DefaultConfigPath))
}
