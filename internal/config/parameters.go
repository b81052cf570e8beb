package config

import (
	"fmt"

	"github.com/iwvelando/lcoe-forecast/pkg/constants"
	"github.com/iwvelando/lcoe-forecast/pkg/lcoe"
	"github.com/iwvelando/lcoe-forecast/pkg/location"
	"github.com/iwvelando/lcoe-forecast/pkg/mathutil"
)

// Parameters are the user-facing projection parameters. Rates are written as
// percentages (incentives: 30 means 30%). Nil fields are unset so that a
// scenario only overrides what it names.
type Parameters struct {
	SystemSize           *float64 `yaml:"systemSize,omitempty" json:"systemSize,omitempty"`                     // kW
	SystemCost           *float64 `yaml:"systemCost,omitempty" json:"systemCost,omitempty"`                     // gross, before incentives
	Incentives           *float64 `yaml:"incentives,omitempty" json:"incentives,omitempty"`                     // %
	AnnualProduction     *float64 `yaml:"annualProduction,omitempty" json:"annualProduction,omitempty"`         // kWh, first year
	SystemLife           *int     `yaml:"systemLife,omitempty" json:"systemLife,omitempty"`                     // years
	DegradationRate      *float64 `yaml:"degradationRate,omitempty" json:"degradationRate,omitempty"`           // %
	DiscountRate         *float64 `yaml:"discountRate,omitempty" json:"discountRate,omitempty"`                 // %
	MaintenanceCost      *float64 `yaml:"maintenanceCost,omitempty" json:"maintenanceCost,omitempty"`           // per year
	ElectricityRate      *float64 `yaml:"electricityRate,omitempty" json:"electricityRate,omitempty"`           // per kWh, first year
	ElectricityInflation *float64 `yaml:"electricityInflation,omitempty" json:"electricityInflation,omitempty"` // %
}

// applyTo copies the set fields into in, converting percentages to fractions.
func (p Parameters) applyTo(in *lcoe.Input) {
	if p.SystemSize != nil {
		in.SystemSizeKW = *p.SystemSize
	}
	if p.SystemCost != nil {
		in.GrossSystemCost = *p.SystemCost
	}
	if p.Incentives != nil {
		in.IncentiveFraction = mathutil.PercentToFraction(*p.Incentives)
	}
	if p.AnnualProduction != nil {
		in.AnnualProductionYear1 = *p.AnnualProduction
	}
	if p.SystemLife != nil {
		in.SystemLifetimeYears = *p.SystemLife
	}
	if p.DegradationRate != nil {
		in.DegradationRate = mathutil.PercentToFraction(*p.DegradationRate)
	}
	if p.DiscountRate != nil {
		in.DiscountRate = mathutil.PercentToFraction(*p.DiscountRate)
	}
	if p.MaintenanceCost != nil {
		in.AnnualMaintenanceCost = *p.MaintenanceCost
	}
	if p.ElectricityRate != nil {
		in.ElectricityRateYear1 = *p.ElectricityRate
	}
	if p.ElectricityInflation != nil {
		in.ElectricityInflationRate = mathutil.PercentToFraction(*p.ElectricityInflation)
	}
}

// Resolve builds a projection input from p, the preset for locationKey and
// the overrides, in that order of precedence (overrides win). When no
// production is given it is estimated from the system size and the
// location's irradiance, or the custom preset's when no location is set.
func (p Parameters) Resolve(locationKey string, overrides Parameters, table *location.Table) (lcoe.Input, error) {
	if table == nil {
		table = location.DefaultTable()
	}

	in := lcoe.Input{SystemLifetimeYears: constants.DefaultLifetimeYears}
	p.applyTo(&in)

	preset, havePreset := table.Lookup(location.CustomKey)
	if locationKey != "" {
		var ok bool
		preset, ok = table.Lookup(locationKey)
		if !ok {
			return lcoe.Input{}, fmt.Errorf("unknown location %q", locationKey)
		}
		havePreset = true
		preset.Apply(&in)
	}

	overrides.applyTo(&in)

	if havePreset {
		preset.FillProduction(&in)
	}
	return in, nil
}

// Float64 returns a pointer to v, for building Parameters in code.
func Float64(v float64) *float64 {
	return &v
}

// Int returns a pointer to v, for building Parameters in code.
func Int(v int) *int {
	return &v
}
