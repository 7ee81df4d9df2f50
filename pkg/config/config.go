package config

import (
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// DB
	DatabaseDSN string `envconfig:"DATABASE_DSN" default:"database.db"`

	// Network
	HTTPAddr      string `envconfig:"HTTP_ADDR" default:":3000"`
	PublicBaseURL string `envconfig:"PUBLIC_BASE_URL" default:"http://localhost:3000"`

	// Attachments
	UploadDir string `envconfig:"UPLOAD_DIR" default:"uploads"`

	// RabbitMQ for publishing booking events; empty disables publishing
	RabbitURL       string `envconfig:"RABBIT_URL"`
	BookingExchange string `envconfig:"BOOKING_EXCHANGE" default:"booking.exchange"`

	// Tracing
	OtelEnabled bool `envconfig:"OTEL_ENABLED" default:"false"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
