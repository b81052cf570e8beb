// Package lcoe computes the levelized cost of electricity and the discounted
// savings of a solar installation over its lifetime.
package lcoe

import (
	"math"

	"github.com/iwvelando/lcoe-forecast/pkg/constants"
	"github.com/iwvelando/lcoe-forecast/pkg/mathutil"
	"go.uber.org/zap"
)

// Input holds the technical and financial parameters of one projection.
// Rates are fractions (0.04 means 4%).
type Input struct {
	SystemSizeKW             float64 `json:"systemSizeKW" yaml:"systemSizeKW"`
	GrossSystemCost          float64 `json:"grossSystemCost" yaml:"grossSystemCost"`
	IncentiveFraction        float64 `json:"incentiveFraction" yaml:"incentiveFraction"`
	AnnualProductionYear1    float64 `json:"annualProductionYear1" yaml:"annualProductionYear1"`
	SystemLifetimeYears      int     `json:"systemLifetimeYears" yaml:"systemLifetimeYears"`
	DegradationRate          float64 `json:"degradationRate" yaml:"degradationRate"`
	DiscountRate             float64 `json:"discountRate" yaml:"discountRate"`
	AnnualMaintenanceCost    float64 `json:"annualMaintenanceCost" yaml:"annualMaintenanceCost"`
	ElectricityRateYear1     float64 `json:"electricityRateYear1" yaml:"electricityRateYear1"`
	ElectricityInflationRate float64 `json:"electricityInflationRate" yaml:"electricityInflationRate"`
}

// NetSystemCost is the upfront cost after incentives.
func (in Input) NetSystemCost() float64 {
	return in.GrossSystemCost * (1 - in.IncentiveFraction)
}

// YearRecord captures the present-value quantities of a single year.
type YearRecord struct {
	Year                        int     `json:"year"`
	ProductionKWh               float64 `json:"productionKWh"`
	DiscountFactor              float64 `json:"discountFactor"`
	DiscountedEnergyKWh         float64 `json:"discountedEnergyKWh"`
	DiscountedMaintenanceCost   float64 `json:"discountedMaintenanceCost"`
	ElectricityRate             float64 `json:"electricityRate"`
	DiscountedSavings           float64 `json:"discountedSavings"`
	CumulativeDiscountedSavings float64 `json:"cumulativeDiscountedSavings"`
	LCOEToDate                  float64 `json:"lcoeToDate"`
}

// Result is the outcome of a projection.
//
// PaybackYear keeps the historical sentinel: it equals the lifetime when the
// threshold is never crossed. PaybackReached tells the two cases apart.
type Result struct {
	NetSystemCost            float64      `json:"netSystemCost"`
	FinalLCOE                float64      `json:"finalLCOE"`
	PaybackYear              int          `json:"paybackYear"`
	PaybackReached           bool         `json:"paybackReached"`
	TotalDiscountedSavings   float64      `json:"totalDiscountedSavings"`
	TotalDiscountedEnergyKWh float64      `json:"totalDiscountedEnergyKWh"`
	TotalDiscountedCost      float64      `json:"totalDiscountedCost"`
	ROIPercent               float64      `json:"roiPercent"`
	Years                    []YearRecord `json:"years"`
}

// LCOEPoint is one entry of the LCOE trajectory.
type LCOEPoint struct {
	Year int     `json:"year"`
	LCOE float64 `json:"lcoe"`
}

// SavingsPoint is one entry of the savings trajectory.
type SavingsPoint struct {
	Year              int     `json:"year"`
	YearlySavings     float64 `json:"yearlySavings"`
	CumulativeSavings float64 `json:"cumulativeSavings"`
}

// LCOESeries returns the trailing LCOE for every year.
func (r Result) LCOESeries() []LCOEPoint {
	series := make([]LCOEPoint, 0, len(r.Years))
	for _, rec := range r.Years {
		series = append(series, LCOEPoint{Year: rec.Year, LCOE: rec.LCOEToDate})
	}
	return series
}

// SavingsSeries returns the discounted and cumulative savings for every year.
func (r Result) SavingsSeries() []SavingsPoint {
	series := make([]SavingsPoint, 0, len(r.Years))
	for _, rec := range r.Years {
		series = append(series, SavingsPoint{
			Year:              rec.Year,
			YearlySavings:     rec.DiscountedSavings,
			CumulativeSavings: rec.CumulativeDiscountedSavings,
		})
	}
	return series
}

// ComputeProjection runs the year-by-year simulation. It is a pure function
// of its input and is safe to call concurrently.
func ComputeProjection(in Input) (Result, error) {
	if err := Validate(in); err != nil {
		return Result{}, err
	}

	netSystemCost := in.NetSystemCost()
	lifetime := in.SystemLifetimeYears

	totalDiscountedEnergy := 0.0
	// The upfront net cost is incurred at year 0 and is not discounted.
	totalDiscountedCost := netSystemCost
	cumulativeSavings := 0.0
	paybackYear := lifetime
	paybackReached := false

	years := make([]YearRecord, 0, lifetime)
	for y := 1; y <= lifetime; y++ {
		production := in.AnnualProductionYear1 * math.Pow(1-in.DegradationRate, float64(y-1))
		discountFactor := 1 / math.Pow(1+in.DiscountRate, float64(y))

		discountedEnergy := production * discountFactor
		totalDiscountedEnergy += discountedEnergy

		discountedMaintenance := in.AnnualMaintenanceCost * discountFactor
		totalDiscountedCost += discountedMaintenance

		rate := in.ElectricityRateYear1 * math.Pow(1+in.ElectricityInflationRate, float64(y-1))
		discountedSavings := production * rate * discountFactor
		cumulativeSavings += discountedSavings

		if !paybackReached && cumulativeSavings >= netSystemCost {
			paybackYear = y
			paybackReached = true
		}

		if totalDiscountedEnergy == 0 {
			return Result{}, invalid("annualProductionYear1", in.AnnualProductionYear1,
				"discounted energy is zero, LCOE is undefined")
		}

		years = append(years, YearRecord{
			Year:                        y,
			ProductionKWh:               production,
			DiscountFactor:              discountFactor,
			DiscountedEnergyKWh:         discountedEnergy,
			DiscountedMaintenanceCost:   discountedMaintenance,
			ElectricityRate:             rate,
			DiscountedSavings:           discountedSavings,
			CumulativeDiscountedSavings: cumulativeSavings,
			LCOEToDate:                  totalDiscountedCost / totalDiscountedEnergy,
		})
	}

	finalLCOE := totalDiscountedCost / totalDiscountedEnergy
	roi := (cumulativeSavings - netSystemCost) / netSystemCost * constants.PercentageMultiplier

	for _, check := range []struct {
		field string
		value float64
	}{
		{"finalLCOE", finalLCOE},
		{"totalDiscountedSavings", cumulativeSavings},
		{"roiPercent", roi},
	} {
		if !mathutil.IsFinite(check.value) {
			return Result{}, invalid(check.field, check.value, "projection produced a non-finite result")
		}
	}

	return Result{
		NetSystemCost:            netSystemCost,
		FinalLCOE:                finalLCOE,
		PaybackYear:              paybackYear,
		PaybackReached:           paybackReached,
		TotalDiscountedSavings:   cumulativeSavings,
		TotalDiscountedEnergyKWh: totalDiscountedEnergy,
		TotalDiscountedCost:      totalDiscountedCost,
		ROIPercent:               roi,
		Years:                    years,
	}, nil
}

// Engine wraps ComputeProjection with logging.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates a new projection engine.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Project validates the input and computes the projection.
func (e *Engine) Project(in Input) (Result, error) {
	result, err := ComputeProjection(in)
	if err != nil {
		e.logger.Debug("projection rejected",
			zap.String("op", "lcoe.Project"),
			zap.Error(err),
		)
		return Result{}, err
	}

	e.logger.Debug("projection computed",
		zap.String("op", "lcoe.Project"),
		zap.Int("years", in.SystemLifetimeYears),
		zap.Float64("lcoe", result.FinalLCOE),
		zap.Int("paybackYear", result.PaybackYear),
		zap.Bool("paybackReached", result.PaybackReached),
		zap.Float64("roiPercent", result.ROIPercent),
	)
	return result, nil
}
