package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"gotest.tools/v3/assert"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "diario.log")

	logger, closer, err := New(path, "info")
	assert.NilError(t, err)

	logger.WithField("entries", 14).Info("catalog loaded")
	logger.Debug("hidden")
	assert.NilError(t, closer.Close())

	data, err := os.ReadFile(path)
	assert.NilError(t, err)
	out := string(data)
	assert.Assert(t, strings.Contains(out, "catalog loaded"))
	assert.Assert(t, strings.Contains(out, "entries=14"))
	assert.Assert(t, !strings.Contains(out, "hidden"))
}

func TestNew_DefaultsToWarn(t *testing.T) {
	logger, closer, err := New("", "")
	assert.NilError(t, err)
	defer closer.Close()

	assert.Equal(t, logger.GetLevel(), logrus.WarnLevel)
}

func TestNew_InvalidLevel(t *testing.T) {
	_, _, err := New("", "loud")
	assert.ErrorContains(t, err, "log level")
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("nothing to see")
}
