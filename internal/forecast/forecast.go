// Package forecast runs the projection engine over every active scenario of
// a configuration.
package forecast

import (
	"fmt"

	"github.com/iwvelando/lcoe-forecast/internal/config"
	"github.com/iwvelando/lcoe-forecast/pkg/lcoe"
	"github.com/iwvelando/lcoe-forecast/pkg/location"
	"go.uber.org/zap"
)

// Projection holds the resolved input and the result of one scenario.
type Projection struct {
	Name     string
	Location *location.Preset
	Input    lcoe.Input
	Result   lcoe.Result
}

// GetProjections processes the projections for all active scenarios.
func GetProjections(logger *zap.Logger, conf config.Configuration) ([]Projection, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	table, err := conf.LocationTable()
	if err != nil {
		return nil, fmt.Errorf("failed to build location presets: %w", err)
	}

	engine := lcoe.NewEngine(logger)

	var results []Projection
	for _, scenario := range conf.Scenarios {
		if !scenario.Active {
			logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", scenario.Name),
				zap.String("op", "forecast.GetProjections"),
			)
			continue
		}

		key := conf.ScenarioLocation(scenario)
		in, err := conf.Common.Parameters.Resolve(key, scenario.Parameters, table)
		if err != nil {
			return results, fmt.Errorf("scenario %s: %w", scenario.Name, err)
		}

		result, err := engine.Project(in)
		if err != nil {
			return results, fmt.Errorf("scenario %s: %w", scenario.Name, err)
		}

		projection := Projection{
			Name:   scenario.Name,
			Input:  in,
			Result: result,
		}
		if key != "" {
			if preset, ok := table.Lookup(key); ok {
				projection.Location = &preset
			}
		}

		logger.Debug("scenario projected",
			zap.String("op", "forecast.GetProjections"),
			zap.String("scenario", scenario.Name),
			zap.String("location", key),
			zap.Float64("lcoe", result.FinalLCOE),
		)
		results = append(results, projection)
	}

	return results, nil
}
