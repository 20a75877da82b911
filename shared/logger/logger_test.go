package logger_test

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"atrium/config"
	"atrium/shared/logger"
)

func TestSetLogLevel(t *testing.T) {
	logger.InitLogger()

	cfg := &config.Config{}
	cfg.Server.LogLevel = "warn"

	logger.SetLogLevel(cfg)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	cfg.Server.LogLevel = "not-a-level"
	logger.SetLogLevel(cfg)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	logger.InitLogger()

	assert.NotPanics(t, func() {
		logger.ErrorWithStack(errors.New("boom"))
	})
}
