package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger embeds slog and satisfies chi's middleware.LoggerInterface.
type Logger struct {
	*slog.Logger
}

func New(ctx context.Context, cfg *Config) (*Logger, error) {
	return NewWithWriter(ctx, cfg, os.Stdout)
}

func NewWithWriter(ctx context.Context, cfg *Config, w io.Writer) (*Logger, error) {
	if err := cfg.Validate(ctx); err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: cfg.WithSource,
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case FormatText:
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	base := slog.New(handler).With("service", cfg.ServiceName)
	return &Logger{base}, nil
}

func (a *Logger) Print(v ...any) {
	a.Logger.Info(fmt.Sprint(v...))
}

func (a *Logger) Printf(format string, v ...any) {
	a.Logger.Info(fmt.Sprintf(format, v...))
}

func (a *Logger) Println(v ...any) {
	a.Logger.Info(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}
