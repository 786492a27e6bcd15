package utils

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Booking    BookingConfig
	Email      EmailConfig
	Calendar   CalendarConfig
	Cloudinary CloudinaryConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
	// BaseURL is the public origin used in cancellation links.
	BaseURL string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

type BookingConfig struct {
	// MinLeadDays is the minimum advance for workshop appointments.
	MinLeadDays int
	// WorkshopSlots are the bookable HH:MM times per day.
	WorkshopSlots    []string
	CancelSuccessURL string
	CancelErrorURL   string
}

type EmailConfig struct {
	APIKey     string
	From       string
	AdminEmail string
}

type CalendarConfig struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	CalendarID   string
	TimeZone     string
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("APP_BASE_URL", "http://localhost:8080")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("REDIS_ENABLED", false)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("BOOKING_MIN_LEAD_DAYS", 3)
	viper.SetDefault("WORKSHOP_SLOTS", "09:00,10:00,11:00,12:00,15:00,16:00,17:00")
	viper.SetDefault("CANCEL_SUCCESS_URL", "/cancellation/success")
	viper.SetDefault("CANCEL_ERROR_URL", "/cancellation/error")
	viper.SetDefault("CALENDAR_TIMEZONE", "Europe/Madrid")
	viper.SetDefault("CLOUDINARY_FOLDER", "workshop_appointments")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
			BaseURL: viper.GetString("APP_BASE_URL"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Redis: RedisConfig{
			Enabled:  viper.GetBool("REDIS_ENABLED"),
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASS"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Booking: BookingConfig{
			MinLeadDays:      viper.GetInt("BOOKING_MIN_LEAD_DAYS"),
			WorkshopSlots:    splitSlots(viper.GetString("WORKSHOP_SLOTS")),
			CancelSuccessURL: viper.GetString("CANCEL_SUCCESS_URL"),
			CancelErrorURL:   viper.GetString("CANCEL_ERROR_URL"),
		},
		Email: EmailConfig{
			APIKey:     viper.GetString("RESEND_API_KEY"),
			From:       viper.GetString("EMAIL_FROM"),
			AdminEmail: viper.GetString("ADMIN_EMAIL"),
		},
		Calendar: CalendarConfig{
			ClientID:     viper.GetString("GOOGLE_CLIENT_ID"),
			ClientSecret: viper.GetString("GOOGLE_CLIENT_SECRET"),
			RefreshToken: viper.GetString("GOOGLE_REFRESH_TOKEN"),
			CalendarID:   viper.GetString("GOOGLE_CALENDAR_ID"),
			TimeZone:     viper.GetString("CALENDAR_TIMEZONE"),
		},
		Cloudinary: CloudinaryConfig{
			CloudName: viper.GetString("CLOUDINARY_CLOUD_NAME"),
			APIKey:    viper.GetString("CLOUDINARY_API_KEY"),
			APISecret: viper.GetString("CLOUDINARY_API_SECRET"),
			Folder:    viper.GetString("CLOUDINARY_FOLDER"),
		},
	}

	return config, nil
}

func splitSlots(s string) []string {
	var slots []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			slots = append(slots, part)
		}
	}
	return slots
}
