// Package config resolves tabledb settings from flags, TABLEDB_* environment
// variables and defaults, in that order of precedence.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/leengari/tabledb/internal/logging"
	"github.com/leengari/tabledb/internal/storage/remote"
	"github.com/leengari/tabledb/internal/store"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "TABLEDB"

const (
	KeyFile                 = "file"
	KeyLogLevel             = "log-level"
	KeySeqURL               = "seq-url"
	KeyAtomicDump           = "atomic-dump"
	KeyAllowDuplicateTables = "allow-duplicate-tables"
	KeyS3Region             = "s3-region"
	KeyS3Endpoint           = "s3-endpoint"
	KeyS3AccessKey          = "s3-access-key"
	KeyS3SecretKey          = "s3-secret-key"
)

// DefaultFile is the dump location used when none is configured
const DefaultFile = "tabledb.txt"

// Config holds every resolved setting
type Config struct {
	File                 string
	LogLevel             slog.Level
	SeqURL               string
	AtomicDump           bool
	AllowDuplicateTables bool
	S3                   remote.S3Config
}

// RegisterFlags adds a flag for every setting
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String(KeyFile, DefaultFile, "dump location: a path, s3://bucket/key, or http(s):// URL for reads")
	flags.String(KeyLogLevel, "info", "log level (debug, info, warn, error)")
	flags.String(KeySeqURL, "", "Seq server URL for log shipping")
	flags.Bool(KeyAtomicDump, false, "write dumps to a temp file and rename into place")
	flags.Bool(KeyAllowDuplicateTables, false, "allow tables that share a name")
	flags.String(KeyS3Region, "", "S3 region")
	flags.String(KeyS3Endpoint, "", "S3-compatible endpoint URL")
	flags.String(KeyS3AccessKey, "", "S3 access key")
	flags.String(KeyS3SecretKey, "", "S3 secret key")
}

// InitEnv makes v read TABLEDB_* variables, with dashes mapped to underscores
func InitEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// Load resolves a Config from v
func Load(v *viper.Viper) (Config, error) {
	v.SetDefault(KeyFile, DefaultFile)
	v.SetDefault(KeyLogLevel, "info")

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString(KeyLogLevel))); err != nil {
		return Config{}, fmt.Errorf("invalid %s %q: %w", KeyLogLevel, v.GetString(KeyLogLevel), err)
	}

	file := v.GetString(KeyFile)
	if file == "" {
		return Config{}, fmt.Errorf("%s must not be empty", KeyFile)
	}

	return Config{
		File:                 file,
		LogLevel:             level,
		SeqURL:               v.GetString(KeySeqURL),
		AtomicDump:           v.GetBool(KeyAtomicDump),
		AllowDuplicateTables: v.GetBool(KeyAllowDuplicateTables),
		S3: remote.S3Config{
			Region:    v.GetString(KeyS3Region),
			Endpoint:  v.GetString(KeyS3Endpoint),
			AccessKey: v.GetString(KeyS3AccessKey),
			SecretKey: v.GetString(KeyS3SecretKey),
		},
	}, nil
}

// LoggingOptions maps the config onto logger setup
func (c Config) LoggingOptions() logging.Options {
	return logging.Options{Level: c.LogLevel, SeqURL: c.SeqURL}
}

// StoreOptions maps the config onto store construction
func (c Config) StoreOptions(logger *slog.Logger) store.Options {
	return store.Options{
		AllowDuplicateTables: c.AllowDuplicateTables,
		AtomicDump:           c.AtomicDump,
		Logger:               logger,
	}
}
