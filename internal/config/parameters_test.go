package config

import (
	"testing"

	"github.com/iwvelando/lcoe-forecast/pkg/constants"
	"github.com/iwvelando/lcoe-forecast/pkg/location"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commonParameters() Parameters {
	return Parameters{
		SystemSize:           Float64(6),
		SystemCost:           Float64(18000),
		Incentives:           Float64(30),
		SystemLife:           Int(25),
		DegradationRate:      Float64(0.5),
		DiscountRate:         Float64(4),
		MaintenanceCost:      Float64(150),
		ElectricityRate:      Float64(0.13),
		ElectricityInflation: Float64(2),
	}
}

func TestResolveConvertsPercentages(t *testing.T) {
	in, err := commonParameters().Resolve("", Parameters{AnnualProduction: Float64(9000)}, nil)
	require.NoError(t, err)

	assert.InDelta(t, 6, in.SystemSizeKW, 1e-12)
	assert.InDelta(t, 18000, in.GrossSystemCost, 1e-12)
	assert.InDelta(t, 0.30, in.IncentiveFraction, 1e-12)
	assert.InDelta(t, 9000, in.AnnualProductionYear1, 1e-12)
	assert.Equal(t, 25, in.SystemLifetimeYears)
	assert.InDelta(t, 0.005, in.DegradationRate, 1e-12)
	assert.InDelta(t, 0.04, in.DiscountRate, 1e-12)
	assert.InDelta(t, 150, in.AnnualMaintenanceCost, 1e-12)
	assert.InDelta(t, 0.13, in.ElectricityRateYear1, 1e-12)
	assert.InDelta(t, 0.02, in.ElectricityInflationRate, 1e-12)
	assert.InDelta(t, 12600, in.NetSystemCost(), 1e-9)
}

func TestResolveDefaultLifetime(t *testing.T) {
	in, err := Parameters{}.Resolve("", Parameters{}, nil)
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultLifetimeYears, in.SystemLifetimeYears)
	assert.Zero(t, in.AnnualProductionYear1, "no system size means no estimate")
}

func TestResolveLocationPrecedence(t *testing.T) {
	table := location.DefaultTable()

	t.Run("preset replaces common values", func(t *testing.T) {
		in, err := commonParameters().Resolve("boston", Parameters{}, table)
		require.NoError(t, err)
		assert.InDelta(t, 0.46, in.IncentiveFraction, 1e-12)
		assert.InDelta(t, 0.22, in.ElectricityRateYear1, 1e-12)
		assert.InDelta(t, 6*1600, in.AnnualProductionYear1, 1e-9)
	})

	t.Run("scenario overrides replace preset values", func(t *testing.T) {
		in, err := commonParameters().Resolve("boston", Parameters{
			Incentives:      Float64(10),
			ElectricityRate: Float64(0.25),
		}, table)
		require.NoError(t, err)
		assert.InDelta(t, 0.10, in.IncentiveFraction, 1e-12)
		assert.InDelta(t, 0.25, in.ElectricityRateYear1, 1e-12)
	})

	t.Run("estimate uses the overriding system size", func(t *testing.T) {
		in, err := commonParameters().Resolve("phoenix", Parameters{SystemSize: Float64(8)}, table)
		require.NoError(t, err)
		assert.InDelta(t, 8*2300, in.AnnualProductionYear1, 1e-9)
	})

	t.Run("explicit production is kept", func(t *testing.T) {
		in, err := commonParameters().Resolve("phoenix", Parameters{AnnualProduction: Float64(7000)}, table)
		require.NoError(t, err)
		assert.InDelta(t, 7000, in.AnnualProductionYear1, 1e-9)
	})

	t.Run("custom preset estimates without a location", func(t *testing.T) {
		in, err := commonParameters().Resolve("", Parameters{}, table)
		require.NoError(t, err)
		assert.InDelta(t, 6*1800, in.AnnualProductionYear1, 1e-9)
		assert.InDelta(t, 0.30, in.IncentiveFraction, 1e-12, "custom preset only supplies irradiance")
	})

	t.Run("unknown location", func(t *testing.T) {
		_, err := commonParameters().Resolve("atlantis", Parameters{}, table)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "atlantis")
	})
}
