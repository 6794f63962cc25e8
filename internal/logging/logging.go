package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.lepovirta.org/boundq/internal/envvar"
)

// Config controls the global zerolog setup.
type Config struct {
	Format     string     `json:"format"`
	Level      string     `json:"level"`
	FieldNames FieldNames `json:"fieldNames"`
	TimeFormat string     `json:"timeFormat"`
}

type FieldNames struct {
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
	Level     string `json:"level"`
}

func (this *Config) FromEnv(appName string, envVars envvar.Vars) {
	this.Level = envVars.GetForApp(appName, "LOG_LEVEL")
	this.Format = envVars.GetForApp(appName, "LOG_FORMAT")
	this.TimeFormat = envVars.GetForAppOr(appName, "LOG_TIME_FORMAT", zerolog.TimeFormatUnix)
	this.FieldNames.FromEnv(appName, envVars)
}

func (this *FieldNames) FromEnv(appName string, envVars envvar.Vars) {
	this.Timestamp = envVars.GetForAppOr(appName, "LOG_FIELD_TIMESTAMP", zerolog.TimestampFieldName)
	this.Message = envVars.GetForAppOr(appName, "LOG_FIELD_MESSAGE", zerolog.MessageFieldName)
	this.Level = envVars.GetForAppOr(appName, "LOG_FIELD_LEVEL", zerolog.LevelFieldName)
}

// SetupGlobal builds the application logger, installs it as the
// default context logger and as the global logger, and returns it.
func (this *Config) SetupGlobal(appName string, outStream io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = this.TimeFormat
	zerolog.TimestampFieldName = this.FieldNames.Timestamp
	zerolog.MessageFieldName = this.FieldNames.Message
	zerolog.LevelFieldName = this.FieldNames.Level

	level, levelErr := parseLevel(this.Level)
	zerolog.SetGlobalLevel(level)

	output, formatOk := formatOutput(this.Format, outStream)
	logger := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("app", appName).
		Logger()
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger

	if levelErr != nil {
		logger.Warn().Err(levelErr).Msgf("unknown log level %s", this.Level)
	}
	if !formatOk {
		logger.Warn().Msgf("unknown log format: %s", this.Format)
	}
	logger.Debug().Msg("global logging setup done")
	return logger
}

func parseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zerolog.InfoLevel, err
	}
	return level, nil
}

// formatOutput falls back to JSON output for unknown formats.
func formatOutput(format string, outStream io.Writer) (io.Writer, bool) {
	switch strings.ToLower(format) {
	case "json", "":
		return outStream, true
	case "pretty":
		return zerolog.ConsoleWriter{Out: outStream, NoColor: true}, true
	default:
		return outStream, false
	}
}
