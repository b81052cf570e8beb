package testutil

import (
	"testing"

	"github.com/iwvelando/lcoe-forecast/internal/forecast"
	"github.com/iwvelando/lcoe-forecast/pkg/lcoe"
)

func TestFindProjection(t *testing.T) {
	results := []forecast.Projection{
		{Name: "reference", Result: lcoe.Result{FinalLCOE: 0.11}},
		{Name: "phoenix estimate", Result: lcoe.Result{FinalLCOE: 0.08}},
		{Name: "scenario with spaces & symbols!", Result: lcoe.Result{FinalLCOE: 0.05}},
	}

	tests := []struct {
		name     string
		lookup   string
		expected float64
		found    bool
	}{
		{"first", "reference", 0.11, true},
		{"second", "phoenix estimate", 0.08, true},
		{"special characters", "scenario with spaces & symbols!", 0.05, true},
		{"case sensitive", "Reference", 0, false},
		{"missing", "boston", 0, false},
		{"empty name", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindProjection(results, tt.lookup)
			if !tt.found {
				if got != nil {
					t.Errorf("FindProjection(%q) = %+v, expected nil", tt.lookup, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("FindProjection(%q) returned nil", tt.lookup)
			}
			if got.Result.FinalLCOE != tt.expected {
				t.Errorf("FindProjection(%q).Result.FinalLCOE = %v, expected %v", tt.lookup, got.Result.FinalLCOE, tt.expected)
			}
		})
	}
}

func TestFindProjectionEmptyResults(t *testing.T) {
	if got := FindProjection(nil, "reference"); got != nil {
		t.Errorf("FindProjection() with nil results should return nil, got %v", got)
	}
	if got := FindProjection([]forecast.Projection{}, "reference"); got != nil {
		t.Errorf("FindProjection() with empty results should return nil, got %v", got)
	}
}

func TestFindProjectionReturnsPointer(t *testing.T) {
	results := []forecast.Projection{{Name: "reference"}}

	found := FindProjection(results, "reference")
	if found != &results[0] {
		t.Fatalf("FindProjection() should return pointer to original element")
	}

	found.Result.PaybackYear = 7
	if results[0].Result.PaybackYear != 7 {
		t.Errorf("Modifying through returned pointer should modify original")
	}
}

func TestFindProjectionWithDuplicateNames(t *testing.T) {
	results := []forecast.Projection{
		{Name: "duplicate", Result: lcoe.Result{PaybackYear: 1}},
		{Name: "duplicate", Result: lcoe.Result{PaybackYear: 2}},
	}

	found := FindProjection(results, "duplicate")
	if found == nil || found.Result.PaybackYear != 1 {
		t.Errorf("FindProjection() should return the first match, got %+v", found)
	}
}

func TestFindYear(t *testing.T) {
	result := lcoe.Result{Years: []lcoe.YearRecord{
		{Year: 1, ProductionKWh: 9000},
		{Year: 2, ProductionKWh: 8955},
	}}

	if rec := FindYear(result, 2); rec == nil || rec.ProductionKWh != 8955 {
		t.Errorf("FindYear(2) = %+v, expected production 8955", rec)
	}
	for _, year := range []int{0, 3, -1} {
		if rec := FindYear(result, year); rec != nil {
			t.Errorf("FindYear(%d) = %+v, expected nil", year, rec)
		}
	}
}
