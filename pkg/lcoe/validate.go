package lcoe

import (
	"fmt"

	"github.com/iwvelando/lcoe-forecast/pkg/constants"
	"github.com/iwvelando/lcoe-forecast/pkg/mathutil"
)

// Validate checks the input eagerly and returns the first violation as an
// *InvalidInputError. No value is clamped.
func Validate(in Input) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"systemSizeKW", in.SystemSizeKW},
		{"grossSystemCost", in.GrossSystemCost},
		{"incentiveFraction", in.IncentiveFraction},
		{"annualProductionYear1", in.AnnualProductionYear1},
		{"degradationRate", in.DegradationRate},
		{"discountRate", in.DiscountRate},
		{"annualMaintenanceCost", in.AnnualMaintenanceCost},
		{"electricityRateYear1", in.ElectricityRateYear1},
		{"electricityInflationRate", in.ElectricityInflationRate},
	}
	for _, f := range fields {
		if !mathutil.IsFinite(f.value) {
			return invalid(f.name, f.value, "must be finite")
		}
	}

	lifetime := in.SystemLifetimeYears
	if lifetime < 1 {
		return invalid("systemLifetimeYears", float64(lifetime), "must be at least 1 year")
	}
	if lifetime > constants.MaxLifetimeYears {
		return invalid("systemLifetimeYears", float64(lifetime),
			fmt.Sprintf("must not exceed %d years", constants.MaxLifetimeYears))
	}

	switch {
	case in.SystemSizeKW < 0:
		return invalid("systemSizeKW", in.SystemSizeKW, "must not be negative")
	case in.GrossSystemCost <= 0:
		return invalid("grossSystemCost", in.GrossSystemCost, "must be positive")
	case in.IncentiveFraction < 0 || in.IncentiveFraction >= 1:
		return invalid("incentiveFraction", in.IncentiveFraction, "must be in [0, 1)")
	case in.AnnualProductionYear1 <= 0:
		return invalid("annualProductionYear1", in.AnnualProductionYear1, "must be positive")
	case in.DegradationRate < 0 || in.DegradationRate >= 1:
		return invalid("degradationRate", in.DegradationRate, "must be in [0, 1)")
	case in.DiscountRate <= -1:
		return invalid("discountRate", in.DiscountRate, "must be greater than -1")
	case in.AnnualMaintenanceCost < 0:
		return invalid("annualMaintenanceCost", in.AnnualMaintenanceCost, "must not be negative")
	case in.ElectricityRateYear1 <= 0:
		return invalid("electricityRateYear1", in.ElectricityRateYear1, "must be positive")
	case in.ElectricityInflationRate < -1:
		return invalid("electricityInflationRate", in.ElectricityInflationRate, "must be at least -1")
	}

	if net := in.NetSystemCost(); net <= 0 {
		return invalid("netSystemCost", net, "must be positive")
	}
	return nil
}
