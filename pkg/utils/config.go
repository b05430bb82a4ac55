package utils

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Notify   NotifyConfig
	Payment  PaymentConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string

	// Upper bound for one booking's store round-trips.
	BookingTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type NotifyConfig struct {
	BatchSize   int
	SendTimeout time.Duration
	BatchDelay  time.Duration

	// Confirmation mail worker pool.
	Workers   int
	QueueSize int
}

type PaymentConfig struct {
	TmnCode    string
	HashSecret string
	GatewayURL string
	ReturnURL  string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("BOOKING_TIMEOUT_SECONDS", 15)
	viper.SetDefault("NOTIFY_BATCH_SIZE", 5)
	viper.SetDefault("NOTIFY_SEND_TIMEOUT_SECONDS", 8)
	viper.SetDefault("NOTIFY_BATCH_DELAY_MS", 500)
	viper.SetDefault("NOTIFY_WORKERS", 2)
	viper.SetDefault("NOTIFY_QUEUE_SIZE", 64)
	viper.SetDefault("SMTP_PORT", 587)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:           viper.GetString("APP_NAME"),
			Port:           viper.GetString("PORT"),
			Debug:          viper.GetBool("DEBUG"),
			LogPath:        viper.GetString("LOG_PATH"),
			BookingTimeout: time.Duration(viper.GetInt("BOOKING_TIMEOUT_SECONDS")) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		SMTP: SMTPConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			From:     viper.GetString("EMAIL_FROM"),
		},
		Notify: NotifyConfig{
			BatchSize:   viper.GetInt("NOTIFY_BATCH_SIZE"),
			SendTimeout: time.Duration(viper.GetInt("NOTIFY_SEND_TIMEOUT_SECONDS")) * time.Second,
			BatchDelay:  time.Duration(viper.GetInt("NOTIFY_BATCH_DELAY_MS")) * time.Millisecond,
			Workers:     viper.GetInt("NOTIFY_WORKERS"),
			QueueSize:   viper.GetInt("NOTIFY_QUEUE_SIZE"),
		},
		Payment: PaymentConfig{
			TmnCode:    viper.GetString("VNP_TMN_CODE"),
			HashSecret: viper.GetString("VNP_HASH_SECRET"),
			GatewayURL: viper.GetString("VNP_URL"),
			ReturnURL:  viper.GetString("VNP_RETURN_URL"),
		},
	}

	return config, nil
}
