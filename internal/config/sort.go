package config

import "github.com/spf13/viper"

// sorting controls how the sort command orders and filters identifiers.
type sorting struct {
	NewestOnly bool `yaml:"newest-only" json:"newest-only" mapstructure:"newest-only"` // keep only the newest version of every package
	Reverse    bool `yaml:"reverse" json:"reverse" mapstructure:"reverse"`             // newest first
	Unique     bool `yaml:"unique" json:"unique" mapstructure:"unique"`                // drop exact repeats
}

func (cfg sorting) loadDefaultValues(v *viper.Viper) {
	v.SetDefault("sort.newest-only", false)
	v.SetDefault("sort.reverse", false)
	v.SetDefault("sort.unique", false)
}
