// Package config defines the data structures related to configuration and
// includes functions for loading the config and resolving scenarios into
// projection inputs.
package config

import (
	"fmt"
	"io"

	"github.com/iwvelando/lcoe-forecast/pkg/location"
	"github.com/iwvelando/lcoe-forecast/pkg/mathutil"
	"github.com/iwvelando/lcoe-forecast/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for lcoe-forecast.
type Configuration struct {
	Common    Common            `yaml:"common"`
	Scenarios []Scenario        `yaml:"scenarios"`
	Locations []location.Preset `yaml:"locations,omitempty"`
	Logging   LoggingConfig     `yaml:"logging,omitempty"`
	Output    OutputConfig      `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// Common holds the parameters shared between all scenarios.
type Common struct {
	Location   string     `yaml:"location,omitempty"`
	Parameters Parameters `yaml:"parameters,omitempty"`
}

// Scenario is one installation to project. Its parameters override the
// common ones and its location overrides the common location.
type Scenario struct {
	Name       string     `yaml:"name"`
	Active     bool       `yaml:"active"`
	Location   string     `yaml:"location,omitempty"`
	Parameters Parameters `yaml:"parameters,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// LocationTable returns the built-in presets overlaid with the presets
// declared in the configuration.
func (conf *Configuration) LocationTable() (*location.Table, error) {
	return location.DefaultTable().Merge(conf.Locations)
}

// ScenarioLocation returns the location key that applies to s.
func (conf *Configuration) ScenarioLocation(s Scenario) string {
	if s.Location != "" {
		return s.Location
	}
	return conf.Common.Location
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (conf *Configuration) ValidateConfiguration() []string {
	var warnings []string

	table, err := conf.LocationTable()
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("Location presets are invalid, using built-in presets: %v", err))
		table = location.DefaultTable()
	}

	known := make(map[string]struct{})
	for _, key := range table.Keys() {
		known[key] = struct{}{}
	}

	var scenarios []validation.ScenarioConfig
	for _, scenario := range conf.Scenarios {
		key := conf.ScenarioLocation(scenario)
		sc := validation.ScenarioConfig{
			Name:     scenario.Name,
			Active:   scenario.Active,
			Location: location.NormalizeKey(key),
		}

		if scenario.Active {
			in, err := conf.Common.Parameters.Resolve(key, scenario.Parameters, table)
			if err != nil {
				// Unknown locations are reported by the validator; check the
				// remaining parameters without the preset.
				in, _ = conf.Common.Parameters.Resolve("", scenario.Parameters, table)
			}
			sc.Parameters = validation.ParameterConfig{
				IncentivesPercent:           mathutil.FractionToPercent(in.IncentiveFraction),
				DegradationPercent:          mathutil.FractionToPercent(in.DegradationRate),
				DiscountPercent:             mathutil.FractionToPercent(in.DiscountRate),
				ElectricityInflationPercent: mathutil.FractionToPercent(in.ElectricityInflationRate),
				LifetimeYears:               in.SystemLifetimeYears,
				AnnualProduction:            in.AnnualProductionYear1,
				SystemSize:                  in.SystemSizeKW,
			}
		}
		scenarios = append(scenarios, sc)
	}

	validator := validation.ConfigValidator{
		Scenarios:      scenarios,
		KnownLocations: known,
	}
	return append(warnings, validator.ValidateAll()...)
}
