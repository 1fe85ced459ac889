package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/on-the-ground/behavior_testkit/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	s, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), s)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "testkit.yaml")
	content := "system_name: orders\nmailbox_capacity: 8\nlog:\n  level: debug\n  format: json\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("TESTKIT_LOG_LEVEL", "warn")

	s, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "orders", s.SystemName)
	assert.Equal(t, 8, s.MailboxCapacity)
	assert.Equal(t, "warn", s.Log.Level)
	assert.Equal(t, "json", s.Log.Format)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("TESTKIT_LOG_FORMAT", "xml")

	_, err := config.Load("")
	assert.ErrorIs(t, err, config.ErrInvalidSettings)
}

func TestNormalize(t *testing.T) {
	s := config.Settings{MailboxCapacity: -3}.Normalize()
	assert.Equal(t, config.Default(), s)
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	s := config.Settings{
		SystemName:      "a/b",
		MailboxCapacity: 0,
		Log:             config.LogSettings{Level: "loud", Format: "xml"},
	}

	err := s.Validate()
	require.ErrorIs(t, err, config.ErrInvalidSettings)
	msg := err.Error()
	assert.Contains(t, msg, "system name")
	assert.Contains(t, msg, "mailbox capacity")
	assert.Contains(t, msg, "loud")
	assert.Contains(t, msg, "log format")
}

func TestValidate_Default(t *testing.T) {
	assert.NoError(t, config.Default().Validate())
}
