package config

const (
	delimiter = "."

	// EnvPrefix prefixes environment overrides, e.g. TESTKIT_LOG_LEVEL.
	EnvPrefix = "TESTKIT"

	KeySystemName      = "system_name"
	KeyMailboxCapacity = "mailbox_capacity"

	KeyLogPrefix = "log"
	KeyLogLevel  = KeyLogPrefix + delimiter + "level"
	KeyLogFormat = KeyLogPrefix + delimiter + "format"
)
