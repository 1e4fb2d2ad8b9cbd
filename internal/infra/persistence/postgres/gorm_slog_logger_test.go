package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"trucktrace/config"
	deliverycontext "trucktrace/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newBufferedGormLogger(cfg *config.Config) (*gormSlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg).(*gormSlogLogger), buf
}

func TestGormSlogLogger_SlowThresholdFromConfig(t *testing.T) {
	cfg := &config.Config{Database: &config.DatabaseConfig{SlowQueryThreshold: time.Millisecond}}
	l, buf := newBufferedGormLogger(cfg)
	assert.Equal(t, time.Millisecond, l.slowThreshold)

	l.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) {
		return "SELECT 1", 1
	}, nil)
	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	l, buf := newBufferedGormLogger(nil)
	assert.Equal(t, defaultGormSlowThreshold, l.slowThreshold)

	sql := func() (string, int64) { return "SELECT * FROM users", 0 }
	l.Trace(context.Background(), time.Now(), sql, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now(), sql, errors.New("connection reset"))
	assert.Contains(t, buf.String(), "GORM query failed")
}

func TestGormSlogLogger_SkipsDuplicateKeyErrors(t *testing.T) {
	l, buf := newBufferedGormLogger(nil)

	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "INSERT INTO favorites", 0
	}, gorm.ErrDuplicatedKey)
	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	l, _ := newBufferedGormLogger(&config.Config{Database: &config.DatabaseConfig{SlowQueryThreshold: time.Millisecond}})

	requestBuf := &bytes.Buffer{}
	requestLogger := slog.New(slog.NewTextHandler(requestBuf, nil)).With(slog.String("request_id", "req-7"))
	ctx := deliverycontext.WithLogger(context.Background(), requestLogger)

	l.Trace(ctx, time.Now().Add(-time.Second), func() (string, int64) { return "SELECT 1", 1 }, nil)
	assert.Contains(t, requestBuf.String(), "request_id=req-7")
	assert.Contains(t, requestBuf.String(), "GORM slow query")
}

func TestGormSlogLogger_LogModeSilences(t *testing.T) {
	l, buf := newBufferedGormLogger(nil)

	l.LogMode(gormlogger.Silent).Error(context.Background(), "boom %d", 1)
	assert.Empty(t, buf.String())

	l.Warn(context.Background(), "slow pool %s", "main")
	assert.Contains(t, buf.String(), "slow pool main")
}
