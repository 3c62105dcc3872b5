package gormstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/workboard-api/internal/platform/logger"
	"github.com/phrazzld/workboard-api/internal/redact"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// slowQueryThreshold is the duration above which a statement is logged at WARN.
const slowQueryThreshold = 200 * time.Millisecond

// GormLogger adapts gorm's logger interface to slog. It prefers the logger
// carried by the statement's context so query logs share the request's
// trace_id.
type GormLogger struct {
	logger *slog.Logger
	level  gormlogger.LogLevel
}

var _ gormlogger.Interface = (*GormLogger)(nil)

// NewGormLogger creates a GormLogger that logs warnings and errors.
func NewGormLogger(l *slog.Logger) *GormLogger {
	if l == nil {
		l = slog.Default()
	}
	return &GormLogger{logger: l, level: gormlogger.Warn}
}

// LogMode implements gormlogger.Interface.
func (g *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *g
	clone.level = level
	return &clone
}

// Info implements gormlogger.Interface.
func (g *GormLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if g.level >= gormlogger.Info {
		g.from(ctx).InfoContext(ctx, fmt.Sprintf(msg, args...))
	}
}

// Warn implements gormlogger.Interface.
func (g *GormLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if g.level >= gormlogger.Warn {
		g.from(ctx).WarnContext(ctx, fmt.Sprintf(msg, args...))
	}
}

// Error implements gormlogger.Interface.
func (g *GormLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if g.level >= gormlogger.Error {
		g.from(ctx).ErrorContext(ctx, redact.String(fmt.Sprintf(msg, args...)))
	}
}

// Trace implements gormlogger.Interface. Statement text is redacted because
// gorm interpolates bound values into it.
func (g *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	log := g.from(ctx)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		// Constraint violations surface as client errors, so they stay at DEBUG.
		_, rows := fc()
		log.DebugContext(ctx, "query failed",
			slog.String("error", redact.Error(err)),
			slog.Int64("rows", rows),
			slog.Duration("elapsed", elapsed))
	case elapsed > slowQueryThreshold && g.level >= gormlogger.Warn:
		sql, rows := fc()
		log.WarnContext(ctx, "slow query",
			slog.String("sql", redact.String(sql)),
			slog.Int64("rows", rows),
			slog.Duration("elapsed", elapsed))
	case g.level >= gormlogger.Info:
		_, rows := fc()
		log.DebugContext(ctx, "query executed",
			slog.Int64("rows", rows),
			slog.Duration("elapsed", elapsed))
	}
}

func (g *GormLogger) from(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, g.logger)
}
