// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/lcoe-forecast/internal/forecast"
	"github.com/iwvelando/lcoe-forecast/pkg/lcoe"
)

// FindProjection finds a projection by scenario name in the results slice.
// Returns a pointer to the projection if found, nil otherwise.
func FindProjection(results []forecast.Projection, name string) *forecast.Projection {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}

// FindYear returns the record for the given year of a projection result,
// or nil when the year is outside the lifetime.
func FindYear(result lcoe.Result, year int) *lcoe.YearRecord {
	if year < 1 || year > len(result.Years) {
		return nil
	}
	rec := result.Years[year-1]
	return &rec
}
