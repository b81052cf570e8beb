package chart

import (
	"testing"

	"github.com/iwvelando/lcoe-forecast/pkg/lcoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromResult(t *testing.T) {
	result, err := lcoe.ComputeProjection(lcoe.Input{
		GrossSystemCost:       10000,
		AnnualProductionYear1: 5000,
		SystemLifetimeYears:   3,
		DiscountRate:          0.05,
		ElectricityRateYear1:  0.2,
	})
	require.NoError(t, err)

	data := FromResult(result)

	assert.Equal(t, []int{1, 2, 3}, data.LCOE.Labels)
	assert.Equal(t, []int{1, 2, 3}, data.Savings.Labels)
	assert.Equal(t, "Levelized Cost of Electricity Over Time", data.LCOE.Title)
	assert.Equal(t, "Projected Savings Over Time", data.Savings.Title)

	require.Len(t, data.LCOE.Datasets, 1)
	require.Len(t, data.Savings.Datasets, 2)

	lcoeValues := data.LCOE.Datasets[0].Values
	yearly := data.Savings.Datasets[0]
	cumulative := data.Savings.Datasets[1]
	assert.Equal(t, KindBar, yearly.Kind)
	assert.Equal(t, KindLine, cumulative.Kind)
	assert.Equal(t, "y1", cumulative.Axis)

	for i, rec := range result.Years {
		assert.Equal(t, rec.LCOEToDate, lcoeValues[i])
		assert.Equal(t, rec.DiscountedSavings, yearly.Values[i])
		assert.Equal(t, rec.CumulativeDiscountedSavings, cumulative.Values[i])
	}
	assert.Equal(t, result.FinalLCOE, lcoeValues[len(lcoeValues)-1])
}

func TestFromResultLabelsIndependent(t *testing.T) {
	result, err := lcoe.ComputeProjection(lcoe.Input{
		GrossSystemCost:       10000,
		AnnualProductionYear1: 5000,
		SystemLifetimeYears:   2,
		ElectricityRateYear1:  0.2,
	})
	require.NoError(t, err)

	data := FromResult(result)
	data.LCOE.Labels[0] = 99
	assert.Equal(t, 1, data.Savings.Labels[0])
}

func TestFromEmptyResult(t *testing.T) {
	data := FromResult(lcoe.Result{})
	assert.Empty(t, data.LCOE.Labels)
	assert.Empty(t, data.Savings.Datasets[0].Values)
}
