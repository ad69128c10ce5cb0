package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ishwor/authcookbook/logger"
)

// gormLogger bridges GORM's logger interface to the service logger.
type gormLogger struct {
	log           *logger.Logger
	slowThreshold time.Duration
}

func newGormLogger(log *logger.Logger, slowThreshold time.Duration) gormlogger.Interface {
	return &gormLogger{log: log, slowThreshold: slowThreshold}
}

// LogMode is a no-op: levels are controlled by the service logger.
func (g *gormLogger) LogMode(gormlogger.LogLevel) gormlogger.Interface {
	return g
}

func (g *gormLogger) Info(_ context.Context, msg string, args ...interface{}) {
	g.log.Info(fmt.Sprintf(msg, args...))
}

func (g *gormLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	g.log.Warn(fmt.Sprintf(msg, args...))
}

func (g *gormLogger) Error(_ context.Context, msg string, args ...interface{}) {
	g.log.Error(fmt.Sprintf(msg, args...))
}

// Trace logs slow queries and unexpected errors. Record-not-found and
// duplicate-key are normal outcomes, not errors.
func (g *gormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, gorm.ErrDuplicatedKey):
		sql, rows := fc()
		g.log.Error("Query failed", map[string]interface{}{
			"error":       err.Error(),
			"sql":         sql,
			"rows":        rows,
			"duration_ms": elapsed.Milliseconds(),
		})
	case g.slowThreshold > 0 && elapsed > g.slowThreshold:
		sql, rows := fc()
		g.log.Warn("Slow query", map[string]interface{}{
			"sql":         sql,
			"rows":        rows,
			"duration_ms": elapsed.Milliseconds(),
		})
	}
}
