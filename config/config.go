// Package config loads the settings of a test actor system from an optional
// file and TESTKIT_ prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/on-the-ground/behavior_testkit/shared/log"
)

const (
	DefaultSystemName      = "testkit"
	DefaultMailboxCapacity = 1000
	DefaultLogLevel        = "info"
	DefaultLogFormat       = log.FormatConsole
)

var ErrInvalidSettings = errors.New("invalid settings")

// Settings configures a stub actor system.
type Settings struct {
	SystemName      string      `mapstructure:"system_name"`
	MailboxCapacity int         `mapstructure:"mailbox_capacity"`
	Log             LogSettings `mapstructure:"log"`
}

type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func Default() Settings {
	return Settings{
		SystemName:      DefaultSystemName,
		MailboxCapacity: DefaultMailboxCapacity,
		Log: LogSettings{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// Normalize fills unset or non-positive values with their defaults.
func (s Settings) Normalize() Settings {
	if s.SystemName == "" {
		s.SystemName = DefaultSystemName
	}
	if s.MailboxCapacity <= 0 {
		s.MailboxCapacity = DefaultMailboxCapacity
	}
	if s.Log.Level == "" {
		s.Log.Level = DefaultLogLevel
	}
	if s.Log.Format == "" {
		s.Log.Format = DefaultLogFormat
	}
	return s
}

// Validate reports every problem found, not only the first one.
func (s Settings) Validate() error {
	var errs error
	if s.SystemName == "" || strings.ContainsAny(s.SystemName, "/$") {
		errs = multierr.Append(errs, fmt.Errorf("system name %q must be non-empty and free of '/' and '$'", s.SystemName))
	}
	if s.MailboxCapacity <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("mailbox capacity must be positive, got %d", s.MailboxCapacity))
	}
	if _, err := log.ParseLevel(s.Log.Level); err != nil {
		errs = multierr.Append(errs, err)
	}
	if s.Log.Format != log.FormatConsole && s.Log.Format != log.FormatJSON {
		errs = multierr.Append(errs, fmt.Errorf("log format %q must be %q or %q", s.Log.Format, log.FormatConsole, log.FormatJSON))
	}
	if errs != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, errs)
	}
	return nil
}

// Load reads settings from path, when given, then applies environment
// overrides. The file format follows its extension (yaml, json, toml).
func Load(path string) (Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(delimiter, "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault(KeySystemName, def.SystemName)
	v.SetDefault(KeyMailboxCapacity, def.MailboxCapacity)
	v.SetDefault(KeyLogLevel, def.Log.Level)
	v.SetDefault(KeyLogFormat, def.Log.Format)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode config: %w", err)
	}
	s = s.Normalize()
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}
