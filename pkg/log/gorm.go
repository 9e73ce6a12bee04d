package log

import (
	"github.com/rs/zerolog"
)

// GormWriter adapts a zerolog logger to gorm's logger.Writer interface so
// SQL traces land in the structured log stream.
type GormWriter struct {
	logger zerolog.Logger
}

// NewGormWriter returns a writer tagged with component=gorm.
func NewGormWriter(logger zerolog.Logger) *GormWriter {
	return &GormWriter{logger: logger.With().Str("component", "gorm").Logger()}
}

// Printf implements gorm.io/gorm/logger.Writer.
func (w *GormWriter) Printf(format string, args ...interface{}) {
	w.logger.Debug().Msgf(format, args...)
}
