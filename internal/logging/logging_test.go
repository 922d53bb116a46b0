package logging

import (
	"testing"

	"github.com/phuslu/log"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, log.WarnLevel, ParseLevel(" warning "))
	assert.Equal(t, log.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, log.InfoLevel, ParseLevel("info"))
	assert.Equal(t, log.InfoLevel, ParseLevel("chatty"))
}

func TestSetup(t *testing.T) {
	Setup("warn")
	assert.Equal(t, log.WarnLevel, log.DefaultLogger.Level)
}
