package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server   ServerConfig
	Sheets   SheetsConfig
	Schedule ScheduleConfig
	Auth     AuthConfig
	Weather  WeatherConfig
	Snapshot SnapshotConfig
	MongoDB  MongoDBConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// SheetsConfig contains configuration required to interact with Google Sheets.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// ScheduleConfig carries the clock-in estimator's business constants.
// These encode operational policy, not physics, so every one of them
// is overridable from the environment.
type ScheduleConfig struct {
	Timezone            string
	VolumeRateMinutes   float64
	VolumeRateDozens    float64
	UngradedRateMinutes float64
	WeekdayLatestHour   int
	WeekendLatestHour   int
	NextDayRolloverHour int
}

// AuthConfig holds the staff PIN roster and session options.
type AuthConfig struct {
	// StaffRoster maps a staff member's display name to the bcrypt
	// hash of their four digit PIN.
	StaffRoster     map[string]string
	SessionTTLHours int
}

// WeatherConfig pins the forecast location for the dashboard widget.
type WeatherConfig struct {
	Latitude  string
	Longitude string
	BaseURL   string
}

// SnapshotConfig holds the nightly archive job settings.
type SnapshotConfig struct {
	CronSchedule string
}

// MongoDBConfig holds settings for the snapshot archive store.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	roster, err := parseStaffRoster(os.Getenv("STAFF_JSON"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_ID"),
		},
		Schedule: ScheduleConfig{
			Timezone:            getenvWithDefault("BUSINESS_TIMEZONE", "America/New_York"),
			VolumeRateMinutes:   getenvFloat("VOLUME_RATE_MINUTES", 5),
			VolumeRateDozens:    getenvFloat("VOLUME_RATE_DOZENS", 8.5),
			UngradedRateMinutes: getenvFloat("UNGRADED_RATE_MINUTES", 5),
			WeekdayLatestHour:   getenvInt("WEEKDAY_LATEST_HOUR", 14),
			WeekendLatestHour:   getenvInt("WEEKEND_LATEST_HOUR", 11),
			NextDayRolloverHour: getenvInt("NEXT_DAY_ROLLOVER_HOUR", 17),
		},
		Auth: AuthConfig{
			StaffRoster:     roster,
			SessionTTLHours: getenvInt("SESSION_TTL_HOURS", 24),
		},
		Weather: WeatherConfig{
			Latitude:  os.Getenv("WEATHER_LAT"),
			Longitude: os.Getenv("WEATHER_LON"),
			BaseURL:   getenvWithDefault("WEATHER_BASE_URL", "https://api.open-meteo.com"),
		},
		Snapshot: SnapshotConfig{
			CronSchedule: getenvWithDefault("SNAPSHOT_CRON_SCHEDULE", "0 20 * * *"),
		},
		MongoDB: MongoDBConfig{
			URI:    os.Getenv("MONGODB_URI"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "crabhouse"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if c.Sheets.CredentialsPath == "" {
		return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH must be provided")
	}

	if c.Sheets.SpreadsheetID == "" {
		return errors.New("GOOGLE_SHEET_ID must be provided")
	}

	if c.Schedule.Timezone == "" {
		return errors.New("BUSINESS_TIMEZONE must be provided")
	}

	switch {
	case c.Schedule.VolumeRateDozens <= 0:
		return errors.New("VOLUME_RATE_DOZENS must be positive")
	case c.Schedule.VolumeRateMinutes < 0:
		return errors.New("VOLUME_RATE_MINUTES must not be negative")
	case c.Schedule.UngradedRateMinutes < 0:
		return errors.New("UNGRADED_RATE_MINUTES must not be negative")
	}

	if c.Schedule.NextDayRolloverHour < 0 || c.Schedule.NextDayRolloverHour > 23 {
		return errors.New("NEXT_DAY_ROLLOVER_HOUR must be an hour of day")
	}

	if len(c.Auth.StaffRoster) == 0 {
		return errors.New("STAFF_JSON must contain at least one staff entry")
	}

	if c.Snapshot.CronSchedule == "" {
		return errors.New("SNAPSHOT_CRON_SCHEDULE must be provided")
	}

	return nil
}

func parseStaffRoster(raw string) (map[string]string, error) {
	if raw == "" {
		return nil, nil
	}

	roster := make(map[string]string)
	if err := json.Unmarshal([]byte(raw), &roster); err != nil {
		return nil, fmt.Errorf("failed parsing STAFF_JSON: %w", err)
	}

	return roster, nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getenvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
