// Package output provides utilities for formatting and displaying projection results.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/lcoe-forecast/internal/forecast"
	"github.com/iwvelando/lcoe-forecast/pkg/chart"
	"github.com/iwvelando/lcoe-forecast/pkg/format"
	"github.com/iwvelando/lcoe-forecast/pkg/lcoe"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat writes a human-readable summary and year table per scenario.
func PrettyFormat(w io.Writer, results []forecast.Projection) {
	p := message.NewPrinter(language.English)
	for i, result := range results {
		r := result.Result
		_, _ = fmt.Fprintf(w, "--- Results for scenario %s ---\n", result.Name)
		if result.Location != nil {
			_, _ = p.Fprintf(w, "Location:          %s (%.0f kWh/kW/year)\n",
				result.Location.DisplayName, result.Location.IrradianceKWhPerKWYear)
		}
		_, _ = fmt.Fprintf(w, "Net system cost:   %s\n", format.Currency(r.NetSystemCost))
		_, _ = fmt.Fprintf(w, "LCOE:              %s\n", format.RatePerKWh(r.FinalLCOE))
		_, _ = fmt.Fprintf(w, "Payback period:    %s\n",
			format.Payback(r.PaybackYear, r.PaybackReached, result.Input.SystemLifetimeYears))
		_, _ = fmt.Fprintf(w, "Total savings:     %s\n", format.Currency(r.TotalDiscountedSavings))
		_, _ = fmt.Fprintf(w, "ROI:               %s\n", format.Percent(r.ROIPercent))
		_, _ = fmt.Fprintf(w, "\n")
		_, _ = fmt.Fprintf(w, "Year | Production kWh | Rate $/kWh | Discounted Savings | Cumulative Savings | LCOE To Date\n")
		_, _ = fmt.Fprintf(w, "____ | ______________ | __________ | __________________ | __________________ | ____________\n")
		for _, rec := range r.Years {
			_, _ = p.Fprintf(w, "%4d | %14.0f | %10.4f | %18s | %18s | %s\n",
				rec.Year,
				rec.ProductionKWh,
				rec.ElectricityRate,
				format.Currency(rec.DiscountedSavings),
				format.Currency(rec.CumulativeDiscountedSavings),
				format.RatePerKWh(rec.LCOEToDate),
			)
		}
		if i < len(results)-1 {
			_, _ = fmt.Fprintf(w, "\n")
		}
	}
}

var csvHeader = []string{
	"scenario",
	"year",
	"production_kwh",
	"discount_factor",
	"electricity_rate",
	"discounted_energy_kwh",
	"discounted_maintenance",
	"discounted_savings",
	"cumulative_savings",
	"lcoe_to_date",
}

// CsvFormat writes one row per scenario and year.
func CsvFormat(w io.Writer, results []forecast.Projection) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, result := range results {
		for _, rec := range result.Result.Years {
			row := []string{
				result.Name,
				strconv.Itoa(rec.Year),
				formatFloat(rec.ProductionKWh, 2),
				formatFloat(rec.DiscountFactor, 6),
				formatFloat(rec.ElectricityRate, 4),
				formatFloat(rec.DiscountedEnergyKWh, 2),
				formatFloat(rec.DiscountedMaintenanceCost, 2),
				formatFloat(rec.DiscountedSavings, 2),
				formatFloat(rec.CumulativeDiscountedSavings, 2),
				formatFloat(rec.LCOEToDate, 4),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// CsvString returns the CSV rendering of results.
func CsvString(results []forecast.Projection) string {
	var buf bytes.Buffer
	if err := CsvFormat(&buf, results); err != nil {
		return ""
	}
	return buf.String()
}

// ScenarioReport is the machine-readable rendering of one projection.
type ScenarioReport struct {
	Name     string      `json:"name"`
	Location string      `json:"location,omitempty"`
	Input    lcoe.Input  `json:"input"`
	Result   lcoe.Result `json:"result"`
	Chart    chart.Data  `json:"chart"`
}

// Reports converts projections into their JSON shape.
func Reports(results []forecast.Projection) []ScenarioReport {
	reports := make([]ScenarioReport, 0, len(results))
	for _, result := range results {
		report := ScenarioReport{
			Name:   result.Name,
			Input:  result.Input,
			Result: result.Result,
			Chart:  chart.FromResult(result.Result),
		}
		if result.Location != nil {
			report.Location = result.Location.Key
		}
		reports = append(reports, report)
	}
	return reports
}

// JSONFormat writes the projections as an indented JSON array.
func JSONFormat(w io.Writer, results []forecast.Projection) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Reports(results))
}

func formatFloat(v float64, places int) string {
	return strconv.FormatFloat(v, 'f', places, 64)
}
