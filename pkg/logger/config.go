package logger

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	FormatJSON = "json"
	FormatText = "text"
)

type Config struct {
	Level       string `envconfig:"LOGGER_LEVEL" default:"info"`
	Format      string `envconfig:"LOGGER_FORMAT" default:"json"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"marketplace"`
	WithSource  bool   `envconfig:"LOGGER_WITH_SOURCE" default:"false"`
}

func (c Config) Validate(ctx context.Context) error {
	return c.ValidateWithContext(ctx)
}

// ValidateWithContext accepts level and format in any letter case.
func (c Config) ValidateWithContext(ctx context.Context) error {
	c.Level = strings.ToLower(c.Level)
	c.Format = strings.ToLower(c.Format)

	return validation.ValidateStructWithContext(ctx, &c,
		validation.Field(&c.Level, validation.Required, validation.In(LevelDebug, LevelInfo, LevelWarn, LevelError)),
		validation.Field(&c.Format, validation.Required, validation.In(FormatJSON, FormatText)),
	)
}
