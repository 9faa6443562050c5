// Package config loads the settings spec.md §6 enumerates as the
// detector's external configuration surface, using Viper the way the
// teacher pack's indexer service does.
package config

import (
	"fmt"
	"regexp"

	"github.com/spf13/viper"

	"github.com/Automattic/elasticsearch-langdetect/detect"
)

// Settings is the Viper-unmarshalable shape of spec.md §6's configuration
// options. Build a detect.Config from it with ToDetectConfig.
type Settings struct {
	Languages      []string          `mapstructure:"LANGUAGES"`
	ProfileVariant string            `mapstructure:"PROFILE_VARIANT"`
	NumTrials      int               `mapstructure:"NUMBER_OF_TRIALS"`
	Alpha          float64           `mapstructure:"ALPHA"`
	AlphaWidth     float64           `mapstructure:"ALPHA_WIDTH"`
	IterationLimit int               `mapstructure:"ITERATION_LIMIT"`
	ProbThreshold  float64           `mapstructure:"PROB_THRESHOLD"`
	ConvThreshold  float64           `mapstructure:"CONV_THRESHOLD"`
	BaseFreq       int               `mapstructure:"BASE_FREQ"`
	Pattern        string            `mapstructure:"PATTERN"`
	Max            int               `mapstructure:"MAX"`
	Map            map[string]string `mapstructure:"MAP"`
	LogLevel       string            `mapstructure:"LOG_LEVEL"`
}

// Load reads Settings from the environment, layering over spec.md §6's
// documented defaults. Callers that want file-based configuration too can
// call viper.SetConfigFile/viper.ReadInConfig before Load; Load itself only
// sets defaults and reads the environment, matching the teacher's
// viper.AutomaticEnv idiom.
func Load() (*Settings, error) {
	d := detect.DefaultConfig()

	viper.SetDefault("LANGUAGES", []string{"en", "fr", "de", "es"})
	viper.SetDefault("PROFILE_VARIANT", "profile")
	viper.SetDefault("NUMBER_OF_TRIALS", d.NumTrials)
	viper.SetDefault("ALPHA", d.Alpha)
	viper.SetDefault("ALPHA_WIDTH", d.AlphaWidth)
	viper.SetDefault("ITERATION_LIMIT", d.IterationLimit)
	viper.SetDefault("PROB_THRESHOLD", d.ProbThreshold)
	viper.SetDefault("CONV_THRESHOLD", d.ConvThreshold)
	viper.SetDefault("BASE_FREQ", d.BaseFreq)
	viper.SetDefault("PATTERN", "")
	viper.SetDefault("MAX", 0)
	viper.SetDefault("MAP", map[string]string{})
	viper.SetDefault("LOG_LEVEL", "info")

	viper.AutomaticEnv()

	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal settings: %w", err)
	}
	return &s, nil
}

// ToDetectConfig builds a detect.Config from Settings, compiling Pattern
// into a *regexp.Regexp when non-empty.
func (s *Settings) ToDetectConfig() (detect.Config, error) {
	cfg := detect.Config{
		NumTrials:      s.NumTrials,
		Alpha:          s.Alpha,
		AlphaWidth:     s.AlphaWidth,
		IterationLimit: s.IterationLimit,
		ProbThreshold:  s.ProbThreshold,
		ConvThreshold:  s.ConvThreshold,
		BaseFreq:       s.BaseFreq,
		Max:            s.Max,
	}
	if s.Pattern != "" {
		// Anchored so MatchString behaves like Java's Matcher.matches() (the
		// whole input must match), not Matcher.find() — LangdetectService.java
		// uses filterPattern.matcher(text).matches() for admission.
		re, err := regexp.Compile(`\A(?:` + s.Pattern + `)\z`)
		if err != nil {
			return detect.Config{}, fmt.Errorf("config: invalid pattern %q: %w", s.Pattern, err)
		}
		cfg.Pattern = re
	}
	return cfg, nil
}
