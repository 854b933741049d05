/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"dirpx.dev/dresult/mapper"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment variables read by Load
// (DRESULT_LOCALE, DRESULT_LOG_LEVEL, ...).
const EnvPrefix = "DRESULT"

// ConfigName is the file name, without extension, searched by Load.
const ConfigName = "dresult"

// ErrInvalidConfig wraps validation failures of a loaded configuration.
var ErrInvalidConfig = errors.New("dresult: invalid configuration")

// Config is the configuration of the dresult command.
type Config struct {
	// Locale is the locale messages are resolved in.
	Locale string `mapstructure:"locale" validate:"required,bcp47_language_tag"`

	// Catalogs are directories of <locale>.toml|.yaml catalog files. They
	// are searched before the builtin catalog.
	Catalogs []string `mapstructure:"catalogs" validate:"dive,required"`

	// Format restricts which catalog files are loaded.
	Format string `mapstructure:"format" validate:"oneof=auto toml yaml"`

	// Database is an optional sqlite DSN of a message table, searched after
	// the catalogs.
	Database string `mapstructure:"database"`

	// Table is the message table name.
	Table string `mapstructure:"table" validate:"required"`

	// Rules are extra status mapper prefix rules.
	Rules []mapper.Rule `mapstructure:"rules" validate:"dive"`

	LogLevel string `mapstructure:"log_level" validate:"oneof=trace debug info warn error"`
	Console  bool   `mapstructure:"console"`
}

var validate = validator.New()

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("locale", "en")
	v.SetDefault("catalogs", []string{})
	v.SetDefault("format", "auto")
	v.SetDefault("database", "")
	v.SetDefault("table", "dresult_messages")
	v.SetDefault("log_level", "warn")
	v.SetDefault("console", true)
}

// Load reads the configuration.
//
// Sources, lowest precedence first: defaults, the config file, DRESULT_*
// environment variables, then flags. When neither file nor $DRESULT_CONFIG
// names a file, "dresult.toml" (or .yaml) is searched in the working
// directory and in $HOME/.config/dresult; a missing file is not an error.
func Load(v *viper.Viper, file string, flags *pflag.FlagSet) (*Config, error) {
	SetDefaults(v)

	if file == "" {
		file = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(ConfigName)
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/dresult")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// bindFlags binds every flag to the key of the same name, dashes turned
// into underscores (--log-level sets log_level). Flags without a key are
// skipped.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err != nil || !v.IsSet(key) {
			return
		}
		if bindErr := v.BindPFlag(key, f); bindErr != nil {
			err = fmt.Errorf("failed to bind flag %q: %w", f.Name, bindErr)
		}
	})
	return err
}
