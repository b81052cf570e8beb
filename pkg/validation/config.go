// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/lcoe-forecast/pkg/constants"
)

// ParameterConfig carries the resolved, user-facing parameters of a scenario.
// Rates are percentages as written in the configuration file.
type ParameterConfig struct {
	IncentivesPercent           float64
	DegradationPercent          float64
	DiscountPercent             float64
	ElectricityInflationPercent float64
	LifetimeYears               int
	AnnualProduction            float64
	SystemSize                  float64
}

// ScenarioConfig is the part of a scenario the validator looks at.
type ScenarioConfig struct {
	Name       string
	Active     bool
	Location   string
	Parameters ParameterConfig
}

// ConfigValidator produces warnings for configurations that load fine but
// are probably not what the user meant.
type ConfigValidator struct {
	Scenarios      []ScenarioConfig
	KnownLocations map[string]struct{}
}

// ValidateAll validates the entire configuration and returns warnings
func (cv *ConfigValidator) ValidateAll() []string {
	var warnings []string

	active := 0
	for _, scenario := range cv.Scenarios {
		if !scenario.Active {
			continue
		}
		active++

		if warning := ValidateLocation(scenario.Name, scenario.Location, cv.KnownLocations); warning != "" {
			warnings = append(warnings, warning)
		}
		warnings = append(warnings, ValidateParameterRanges(scenario.Name, scenario.Parameters)...)
	}

	if active == 0 {
		warnings = append(warnings, "No active scenarios - nothing will be projected")
	}

	return warnings
}

// ValidateLocation warns when a scenario references a preset that does not exist.
func ValidateLocation(scenarioName, key string, known map[string]struct{}) string {
	if key == "" {
		return ""
	}
	if _, ok := known[key]; ok {
		return ""
	}
	return fmt.Sprintf("Scenario '%s' references unknown location '%s'", scenarioName, key)
}

// ValidateParameterRanges flags values outside the range typical of
// residential and commercial installations.
func ValidateParameterRanges(scenarioName string, p ParameterConfig) []string {
	var warnings []string

	if p.IncentivesPercent >= constants.PercentageMultiplier {
		warnings = append(warnings, fmt.Sprintf("Scenario '%s' incentives cover the whole system cost (%.1f%%)",
			scenarioName, p.IncentivesPercent))
	}
	if p.DegradationPercent > constants.SuspiciousDegradationPercent {
		warnings = append(warnings, fmt.Sprintf("Scenario '%s' degradation rate is unusually high (%.2f%% > %.2f%%)",
			scenarioName, p.DegradationPercent, constants.SuspiciousDegradationPercent))
	}
	if p.DiscountPercent > constants.SuspiciousDiscountPercent {
		warnings = append(warnings, fmt.Sprintf("Scenario '%s' discount rate is unusually high (%.2f%% > %.2f%%)",
			scenarioName, p.DiscountPercent, constants.SuspiciousDiscountPercent))
	}
	if p.DiscountPercent < 0 {
		warnings = append(warnings, fmt.Sprintf("Scenario '%s' has a negative discount rate (%.2f%%)",
			scenarioName, p.DiscountPercent))
	}
	if p.ElectricityInflationPercent < 0 {
		warnings = append(warnings, fmt.Sprintf("Scenario '%s' assumes falling electricity prices (%.2f%%)",
			scenarioName, p.ElectricityInflationPercent))
	}
	if p.LifetimeYears > constants.SuspiciousLifetimeYears {
		warnings = append(warnings, fmt.Sprintf("Scenario '%s' system lifetime is unusually long (%d > %d years)",
			scenarioName, p.LifetimeYears, constants.SuspiciousLifetimeYears))
	}
	if p.AnnualProduction == 0 && p.SystemSize == 0 {
		warnings = append(warnings, fmt.Sprintf("Scenario '%s' has neither annual production nor system size - production cannot be estimated",
			scenarioName))
	}

	return warnings
}
