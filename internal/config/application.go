package config

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"strings"

	"github.com/adrg/xdg"
	"github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/anchore/fmri/fmri"
	"github.com/anchore/fmri/internal"
	"github.com/anchore/fmri/internal/format"
)

var ErrApplicationConfigNotFound = fmt.Errorf("application config not found")

var errMultipleProfilers = errors.New("only one of dev.profile-cpu and dev.profile-mem may be enabled")

type defaultValueLoader interface {
	loadDefaultValues(*viper.Viper)
}

type parser interface {
	parseConfigValues() error
}

// CliOnlyOptions are options that can only be given on the command line, never from a config file.
type CliOnlyOptions struct {
	ConfigPath string
	Verbosity  int
}

type Application struct {
	ConfigPath         string         `yaml:",omitempty" json:"configPath"`                                                         // the location where the application config was read from (either from -c or discovered while loading)
	Verbosity          uint           `yaml:"verbosity,omitempty" json:"verbosity" mapstructure:"verbosity"`                        // -v, the verbosity level
	Output             string         `yaml:"output" json:"output" mapstructure:"output"`                                           // -o, the presenter hint string to use for report formatting
	OutputTemplateFile string         `yaml:"output-template-file" json:"output-template-file" mapstructure:"output-template-file"` // -t, the template file to use when output is "template"
	File               string         `yaml:"file" json:"file" mapstructure:"file"`                                                 // --file, read identifiers from this file
	Publisher          string         `yaml:"publisher" json:"publisher" mapstructure:"publisher"`                                  // --publisher, applied to identifiers that do not name one
	Quiet              bool           `yaml:"quiet" json:"quiet" mapstructure:"quiet"`                                              // -q, indicates to not show any logging output to stderr
	CheckForAppUpdate  bool           `yaml:"check-for-app-update" json:"check-for-app-update" mapstructure:"check-for-app-update"` // whether to check for an application update on start up or not
	CliOptions         CliOnlyOptions `yaml:"-" json:"-"`
	Sort               sorting        `yaml:"sort" json:"sort" mapstructure:"sort"`
	Log                logging        `yaml:"log" json:"log" mapstructure:"log"`
	Dev                development    `yaml:"dev" json:"dev" mapstructure:"dev"`

	// parsed values
	OutputFormat     format.Format   `yaml:"-" json:"-"`
	DefaultPublisher *fmri.Publisher `yaml:"-" json:"-"`
}

func newApplicationConfig(v *viper.Viper, cliOpts CliOnlyOptions) *Application {
	config := &Application{
		CliOptions: cliOpts,
	}
	config.loadDefaultValues(v)

	return config
}

func LoadApplicationConfig(v *viper.Viper, cliOpts CliOnlyOptions) (*Application, error) {
	// the user may not have a config, and this is OK, we can use the default config + default cobra cli values instead
	config := newApplicationConfig(v, cliOpts)

	if err := readConfig(v, cliOpts.ConfigPath); err != nil && !errors.Is(err, ErrApplicationConfigNotFound) {
		return nil, err
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}
	config.ConfigPath = v.ConfigFileUsed()

	if err := config.parseConfigValues(); err != nil {
		return nil, fmt.Errorf("invalid application config: %w", err)
	}

	return config, nil
}

// loadDefaultValues loads the default configuration values into the viper instance (before the config values are read and parsed).
func (cfg Application) loadDefaultValues(v *viper.Viper) {
	// set the default values for primitive fields in this struct
	v.SetDefault("output", format.TextFormat.String())
	v.SetDefault("output-template-file", "")
	v.SetDefault("file", "")
	v.SetDefault("publisher", "")
	v.SetDefault("quiet", false)
	v.SetDefault("check-for-app-update", false)

	// for each field in the configuration struct, see if the field implements the defaultValueLoader interface and invoke it if it does
	value := reflect.ValueOf(cfg)
	for i := 0; i < value.NumField(); i++ {
		// note: the defaultValueLoader method receiver is NOT a pointer receiver.
		if loadable, ok := value.Field(i).Interface().(defaultValueLoader); ok {
			// the field implements defaultValueLoader, call it
			loadable.loadDefaultValues(v)
		}
	}
}

func (cfg *Application) parseConfigValues() error {
	// parse application config options
	for _, optionFn := range []func() error{
		cfg.parseLogLevelOption,
		cfg.parseOutputOption,
		cfg.parsePublisherOption,
	} {
		if err := optionFn(); err != nil {
			return err
		}
	}

	// parse nested config options
	// for each field in the configuration struct, see if the field implements the parser interface
	// note: the app config is a pointer, so we need to grab the elements explicitly (to traverse the address)
	value := reflect.ValueOf(cfg).Elem()
	for i := 0; i < value.NumField(); i++ {
		// note: since the interface method of parser is a pointer receiver we need to get the value of the field as a pointer.
		if parsable, ok := value.Field(i).Addr().Interface().(parser); ok {
			// the field implements parser, call it
			if err := parsable.parseConfigValues(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (cfg *Application) parseLogLevelOption() error {
	switch {
	case cfg.Quiet:
		// quiet trumps all other logging options, including a log file
		cfg.Log.LevelOpt = logrus.PanicLevel
	case cfg.CliOptions.Verbosity > 0:
		cfg.Log.LevelOpt = levelFromVerbosity(cfg.CliOptions.Verbosity)
		cfg.Verbosity = uint(cfg.CliOptions.Verbosity)
	case cfg.Log.Level != "":
		lvl, err := logrus.ParseLevel(strings.ToLower(cfg.Log.Level))
		if err != nil {
			return fmt.Errorf("bad log level configured (%q): %w", cfg.Log.Level, err)
		}
		cfg.Log.LevelOpt = lvl
		if lvl >= logrus.InfoLevel {
			cfg.Verbosity = 1
		}
	default:
		cfg.Log.LevelOpt = logrus.WarnLevel
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = cfg.Log.LevelOpt.String()
	}
	return nil
}

func levelFromVerbosity(verbosity int) logrus.Level {
	switch {
	case verbosity == 1:
		return logrus.InfoLevel
	case verbosity == 2:
		return logrus.DebugLevel
	case verbosity >= 3:
		return logrus.TraceLevel
	default:
		return logrus.WarnLevel
	}
}

func (cfg *Application) parseOutputOption() error {
	f := format.Parse(cfg.Output)
	if f == format.UnknownFormat {
		return fmt.Errorf("bad --output value '%s', options=%v", cfg.Output, format.AvailableFormats)
	}
	if f == format.TemplateFormat && cfg.OutputTemplateFile == "" {
		return fmt.Errorf("the %s output format requires --template", format.TemplateFormat)
	}
	cfg.OutputFormat = f
	return nil
}

func (cfg *Application) parsePublisherOption() error {
	if cfg.Publisher == "" {
		return nil
	}
	p, err := fmri.NewPublisher(cfg.Publisher)
	if err != nil {
		return fmt.Errorf("bad --publisher value: %w", err)
	}
	cfg.DefaultPublisher = &p
	return nil
}

func (cfg Application) String() string {
	// yaml is pretty human friendly (at least when compared to json)
	appCfgStr, err := yaml.Marshal(&cfg)

	if err != nil {
		return err.Error()
	}

	return string(appCfgStr)
}

// readConfig attempts to read the given config path from disk or discover an alternate store location
func readConfig(v *viper.Viper, configPath string) error {
	var err error
	v.AutomaticEnv()
	v.SetEnvPrefix(internal.ApplicationName)
	// allow for nested options to be specified via environment variables
	// e.g. sort.newest-only = FMRI_SORT_NEWEST_ONLY
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// use explicitly the given user config
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("unable to read application config=%q : %w", configPath, err)
		}
		// don't fall through to other options if the config path was explicitly provided
		return nil
	}

	// start searching for valid configs in order...

	// 1. look for .<appname>.yaml (in the current directory)
	v.AddConfigPath(".")
	v.SetConfigName("." + internal.ApplicationName)
	if err = v.ReadInConfig(); err == nil {
		return nil
	} else if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return fmt.Errorf("unable to parse config=%q: %w", v.ConfigFileUsed(), err)
	}

	// 2. look for .<appname>/config.yaml (in the current directory)
	v.AddConfigPath("." + internal.ApplicationName)
	v.SetConfigName("config")
	if err = v.ReadInConfig(); err == nil {
		return nil
	} else if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return fmt.Errorf("unable to parse config=%q: %w", v.ConfigFileUsed(), err)
	}

	// 3. look for ~/.<appname>.yaml
	home, err := homedir.Dir()
	if err == nil {
		v.AddConfigPath(home)
		v.SetConfigName("." + internal.ApplicationName)
		if err = v.ReadInConfig(); err == nil {
			return nil
		} else if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("unable to parse config=%q: %w", v.ConfigFileUsed(), err)
		}
	}

	// 4. look for <appname>/config.yaml in xdg locations (starting with xdg home config dir, then moving upwards)
	v.AddConfigPath(path.Join(xdg.ConfigHome, internal.ApplicationName))
	for _, dir := range xdg.ConfigDirs {
		v.AddConfigPath(path.Join(dir, internal.ApplicationName))
	}
	v.SetConfigName("config")
	if err = v.ReadInConfig(); err == nil {
		return nil
	} else if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return fmt.Errorf("unable to parse config=%q: %w", v.ConfigFileUsed(), err)
	}

	return ErrApplicationConfigNotFound
}
