package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/iwvelando/lcoe-forecast/internal/forecast"
	"github.com/iwvelando/lcoe-forecast/pkg/lcoe"
	"github.com/iwvelando/lcoe-forecast/pkg/location"
)

func testProjections(t *testing.T) []forecast.Projection {
	t.Helper()

	reference := lcoe.Input{
		SystemSizeKW:             6,
		GrossSystemCost:          18000,
		IncentiveFraction:        0.30,
		AnnualProductionYear1:    9000,
		SystemLifetimeYears:      25,
		DegradationRate:          0.005,
		DiscountRate:             0.04,
		AnnualMaintenanceCost:    150,
		ElectricityRateYear1:     0.13,
		ElectricityInflationRate: 0.02,
	}
	expensive := reference
	expensive.GrossSystemCost = 40000
	expensive.SystemLifetimeYears = 3

	var projections []forecast.Projection
	for _, tc := range []struct {
		name string
		in   lcoe.Input
	}{
		{"reference", reference},
		{"expensive", expensive},
	} {
		result, err := lcoe.ComputeProjection(tc.in)
		if err != nil {
			t.Fatalf("ComputeProjection() error = %v", err)
		}
		projections = append(projections, forecast.Projection{Name: tc.name, Input: tc.in, Result: result})
	}

	phoenix, _ := location.DefaultTable().Lookup("phoenix")
	projections[0].Location = &phoenix
	return projections
}

func TestPrettyFormat(t *testing.T) {
	var buf bytes.Buffer
	PrettyFormat(&buf, testProjections(t))
	output := buf.String()

	for _, want := range []string{
		"--- Results for scenario reference ---",
		"--- Results for scenario expensive ---",
		"Location:          Phoenix, AZ",
		"Net system cost:   $12,600.00",
		"LCOE:              $0.112/kWh",
		"Payback period:    13 years",
		"Total savings:     $21,305.42",
		"ROI:               69.1%",
		"Payback period:    not reached within 3 years",
		"Year | Production kWh | Rate $/kWh | Discounted Savings | Cumulative Savings | LCOE To Date",
		"$1,125.00",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("PrettyFormat output missing %q", want)
		}
	}

	if strings.Count(output, "Location:") != 1 {
		t.Errorf("expected a location line only for the scenario with a location")
	}
}

func TestCsvFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := CsvFormat(&buf, testProjections(t)); err != nil {
		t.Fatalf("CsvFormat() error = %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse CSV output: %v", err)
	}

	// header + 25 reference years + 3 expensive years
	if len(records) != 1+25+3 {
		t.Fatalf("expected 29 records, got %d", len(records))
	}
	if strings.Join(records[0], ",") != strings.Join(csvHeader, ",") {
		t.Errorf("unexpected header %v", records[0])
	}

	first := records[1]
	if first[0] != "reference" || first[1] != "1" {
		t.Errorf("unexpected first row %v", first)
	}
	if first[2] != "9000.00" {
		t.Errorf("expected production 9000.00, got %s", first[2])
	}
	if first[7] != "1125.00" {
		t.Errorf("expected discounted savings 1125.00, got %s", first[7])
	}
	if first[9] != "1.4727" {
		t.Errorf("expected LCOE to date 1.4727, got %s", first[9])
	}

	last := records[len(records)-1]
	if last[0] != "expensive" || last[1] != "3" {
		t.Errorf("unexpected last row %v", last)
	}
}

func TestCsvString(t *testing.T) {
	out := CsvString(testProjections(t))
	if !strings.HasPrefix(out, "scenario,year,") {
		t.Errorf("unexpected CSV prefix: %q", out[:20])
	}
	if CsvString(nil) != strings.Join(csvHeader, ",")+"\n" {
		t.Errorf("expected only the header for no projections")
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := JSONFormat(&buf, testProjections(t)); err != nil {
		t.Fatalf("JSONFormat() error = %v", err)
	}

	var reports []ScenarioReport
	if err := json.Unmarshal(buf.Bytes(), &reports); err != nil {
		t.Fatalf("failed to decode JSON output: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}
	if reports[0].Location != "phoenix" {
		t.Errorf("expected phoenix location, got %q", reports[0].Location)
	}
	if reports[0].Result.PaybackYear != 13 || !reports[0].Result.PaybackReached {
		t.Errorf("unexpected payback %d/%v", reports[0].Result.PaybackYear, reports[0].Result.PaybackReached)
	}
	if len(reports[0].Chart.LCOE.Labels) != 25 {
		t.Errorf("expected 25 chart labels, got %d", len(reports[0].Chart.LCOE.Labels))
	}
	if reports[1].Result.PaybackReached {
		t.Errorf("expected payback not reached for the expensive scenario")
	}
}
