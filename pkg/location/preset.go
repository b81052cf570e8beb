// Package location holds the static table of location presets used to
// pre-fill projection inputs. The projection engine does not depend on it.
package location

import (
	"fmt"
	"sort"
	"strings"

	"github.com/iwvelando/lcoe-forecast/pkg/lcoe"
)

// CustomKey is the preset used when no location is selected.
const CustomKey = "custom"

// Preset describes the solar resource and tariff of a location.
type Preset struct {
	Key                    string  `json:"key" yaml:"key" mapstructure:"key"`
	DisplayName            string  `json:"name" yaml:"name" mapstructure:"name"`
	IrradianceKWhPerKWYear float64 `json:"irradiance" yaml:"irradiance" mapstructure:"irradiance"`
	IncentiveFraction      float64 `json:"incentives" yaml:"incentives" mapstructure:"incentives"`
	ElectricityRate        float64 `json:"electricityRate" yaml:"electricityRate" mapstructure:"electricityRate"`
}

// EstimateProduction returns the first-year production of a system of the
// given size at this location.
func (p Preset) EstimateProduction(systemSizeKW float64) float64 {
	return systemSizeKW * p.IrradianceKWhPerKWYear
}

// Apply pre-fills the incentive and electricity rate of in.
func (p Preset) Apply(in *lcoe.Input) {
	in.IncentiveFraction = p.IncentiveFraction
	in.ElectricityRateYear1 = p.ElectricityRate
}

// FillProduction estimates the first-year production of in from its system
// size when no production is set. It reports whether an estimate was made.
func (p Preset) FillProduction(in *lcoe.Input) bool {
	if in.AnnualProductionYear1 != 0 || in.SystemSizeKW <= 0 {
		return false
	}
	in.AnnualProductionYear1 = p.EstimateProduction(in.SystemSizeKW)
	return true
}

// Validate checks that a preset can be used to fill an input.
func (p Preset) Validate() error {
	if strings.TrimSpace(p.Key) == "" {
		return fmt.Errorf("location preset key cannot be empty")
	}
	if p.IrradianceKWhPerKWYear <= 0 {
		return fmt.Errorf("location %s: irradiance must be positive, got %v", p.Key, p.IrradianceKWhPerKWYear)
	}
	if p.IncentiveFraction < 0 || p.IncentiveFraction >= 1 {
		return fmt.Errorf("location %s: incentives must be in [0, 1), got %v", p.Key, p.IncentiveFraction)
	}
	if p.ElectricityRate <= 0 {
		return fmt.Errorf("location %s: electricity rate must be positive, got %v", p.Key, p.ElectricityRate)
	}
	return nil
}

// Table is an immutable set of presets keyed by Preset.Key.
type Table struct {
	presets map[string]Preset
}

// NewTable builds a table from presets, rejecting invalid or duplicate keys.
func NewTable(presets []Preset) (*Table, error) {
	t := &Table{presets: make(map[string]Preset, len(presets))}
	for _, p := range presets {
		p.Key = NormalizeKey(p.Key)
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, exists := t.presets[p.Key]; exists {
			return nil, fmt.Errorf("duplicate location preset %s", p.Key)
		}
		if p.DisplayName == "" {
			p.DisplayName = p.Key
		}
		t.presets[p.Key] = p
	}
	return t, nil
}

// DefaultTable returns the built-in presets.
func DefaultTable() *Table {
	t, err := NewTable(defaultPresets)
	if err != nil {
		panic(fmt.Sprintf("invalid built-in location presets: %v", err))
	}
	return t
}

// Merge returns a new table where overrides replace or extend the presets of t.
func (t *Table) Merge(overrides []Preset) (*Table, error) {
	merged := make(map[string]Preset, len(t.presets)+len(overrides))
	for k, p := range t.presets {
		merged[k] = p
	}

	seen := make(map[string]struct{}, len(overrides))
	for _, p := range overrides {
		p.Key = NormalizeKey(p.Key)
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[p.Key]; dup {
			return nil, fmt.Errorf("duplicate location preset %s", p.Key)
		}
		seen[p.Key] = struct{}{}
		if p.DisplayName == "" {
			p.DisplayName = p.Key
		}
		merged[p.Key] = p
	}
	return &Table{presets: merged}, nil
}

// Lookup returns the preset for key. Keys are case-insensitive.
func (t *Table) Lookup(key string) (Preset, bool) {
	p, ok := t.presets[NormalizeKey(key)]
	return p, ok
}

// Keys returns the preset keys in sorted order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.presets))
	for k := range t.presets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Presets returns every preset ordered by key.
func (t *Table) Presets() []Preset {
	keys := t.Keys()
	presets := make([]Preset, 0, len(keys))
	for _, k := range keys {
		presets = append(presets, t.presets[k])
	}
	return presets
}

// NormalizeKey lower-cases and trims a preset key.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

var defaultPresets = []Preset{
	{Key: "phoenix", DisplayName: "Phoenix, AZ", IrradianceKWhPerKWYear: 2300, IncentiveFraction: 0.26, ElectricityRate: 0.13},
	{Key: "seattle", DisplayName: "Seattle, WA", IrradianceKWhPerKWYear: 1350, IncentiveFraction: 0.36, ElectricityRate: 0.11},
	{Key: "boston", DisplayName: "Boston, MA", IrradianceKWhPerKWYear: 1600, IncentiveFraction: 0.46, ElectricityRate: 0.22},
	{Key: "miami", DisplayName: "Miami, FL", IrradianceKWhPerKWYear: 2000, IncentiveFraction: 0.26, ElectricityRate: 0.12},
	{Key: "denver", DisplayName: "Denver, CO", IrradianceKWhPerKWYear: 1950, IncentiveFraction: 0.36, ElectricityRate: 0.13},
	{Key: "austin", DisplayName: "Austin, TX", IrradianceKWhPerKWYear: 1900, IncentiveFraction: 0.26, ElectricityRate: 0.11},
	{Key: CustomKey, DisplayName: "Custom Location", IrradianceKWhPerKWYear: 1800, IncentiveFraction: 0.26, ElectricityRate: 0.14},
}
