package service

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	defaultPageSize = 24
	maxPageSize     = 100
)

type Config struct {
	CatalogCacheTTL  time.Duration `envconfig:"CATALOG_CACHE_TTL" default:"30s"`
	ErrorLogCapacity int           `envconfig:"ERROR_LOG_CAPACITY" default:"100"`
	DefaultPageSize  int           `envconfig:"DEFAULT_PAGE_SIZE" default:"24"`
}

func (c Config) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, &c,
		validation.Field(&c.CatalogCacheTTL, validation.Min(time.Duration(0))),
		validation.Field(&c.ErrorLogCapacity, validation.Required, validation.Min(1)),
		validation.Field(&c.DefaultPageSize, validation.Min(0), validation.Max(maxPageSize)),
	)
}

func (c Config) pageSize() int {
	if c.DefaultPageSize <= 0 {
		return defaultPageSize
	}
	return c.DefaultPageSize
}
