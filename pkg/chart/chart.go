// Package chart shapes projection results into the two time-series charts
// shown next to the summary: the LCOE trajectory and the savings trajectory.
package chart

import "github.com/iwvelando/lcoe-forecast/pkg/lcoe"

// Chart kinds understood by renderers.
const (
	KindLine = "line"
	KindBar  = "bar"
)

// Dataset is a single plotted series.
type Dataset struct {
	Label  string    `json:"label"`
	Kind   string    `json:"kind"`
	Axis   string    `json:"axis"`
	Values []float64 `json:"values"`
}

// Chart is a titled set of datasets sharing the year axis.
type Chart struct {
	Title    string    `json:"title"`
	XAxis    string    `json:"xAxis"`
	YAxis    string    `json:"yAxis"`
	Y1Axis   string    `json:"y1Axis,omitempty"`
	Labels   []int     `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Data holds both charts of a projection.
type Data struct {
	LCOE    Chart `json:"lcoe"`
	Savings Chart `json:"savings"`
}

// FromResult builds chart data from a projection result.
func FromResult(result lcoe.Result) Data {
	n := len(result.Years)
	labels := make([]int, 0, n)
	lcoeValues := make([]float64, 0, n)
	yearly := make([]float64, 0, n)
	cumulative := make([]float64, 0, n)

	for _, point := range result.LCOESeries() {
		labels = append(labels, point.Year)
		lcoeValues = append(lcoeValues, point.LCOE)
	}
	for _, point := range result.SavingsSeries() {
		yearly = append(yearly, point.YearlySavings)
		cumulative = append(cumulative, point.CumulativeSavings)
	}

	return Data{
		LCOE: Chart{
			Title:  "Levelized Cost of Electricity Over Time",
			XAxis:  "Year",
			YAxis:  "$/kWh",
			Labels: labels,
			Datasets: []Dataset{
				{Label: "LCOE ($/kWh)", Kind: KindLine, Axis: "y", Values: lcoeValues},
			},
		},
		Savings: Chart{
			Title:  "Projected Savings Over Time",
			XAxis:  "Year",
			YAxis:  "Yearly Savings ($)",
			Y1Axis: "Cumulative Savings ($)",
			// Both charts share the year labels.
			Labels: append([]int(nil), labels...),
			Datasets: []Dataset{
				{Label: "Yearly Savings", Kind: KindBar, Axis: "y", Values: yearly},
				{Label: "Cumulative Savings", Kind: KindLine, Axis: "y1", Values: cumulative},
			},
		},
	}
}
