package engine

import (
	"errors"
	"fmt"

	"github.com/sketchcoach/sketchcoach/internal/dimension"
	"github.com/sketchcoach/sketchcoach/internal/geometry"
)

// Config is fixed for the lifetime of an Engine.
type Config struct {
	GridStep           float64 `json:"gridStep"`
	CenterSnapDistance float64 `json:"centerSnapDistance"`
	AxisSnapDistance   float64 `json:"axisSnapDistance"`
	MinDrawMagnitude   float64 `json:"minDrawMagnitude"`
	CenteringTolerance float64 `json:"centeringTolerance"`
	EdgeThickness      float64 `json:"edgeThickness"`

	Target dimension.Target `json:"target"`

	// UnitScale converts entered values to canvas units. Targets stay in
	// entered units.
	UnitScale float64 `json:"unitScale"`

	// Surface bounds shapes when it has a non-zero size.
	Surface geometry.Rect `json:"surface"`

	// RequireDrawArm gates drawing behind ArmDraw.
	RequireDrawArm bool `json:"requireDrawArm"`
}

func DefaultConfig() Config {
	return Config{
		GridStep:           10,
		CenterSnapDistance: 24,
		AxisSnapDistance:   16,
		MinDrawMagnitude:   6,
		CenteringTolerance: 0.01,
		EdgeThickness:      20,
		Target: dimension.Target{
			RectA:    60,
			RectB:    30,
			Diameter: 10,
			Epsilon:  0.01,
		},
		UnitScale: 1,
	}
}

// Validate rejects configurations the engine cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.GridStep <= 0 {
		errs = append(errs, fmt.Errorf("grid step must be positive, got %v", c.GridStep))
	}
	if c.Target.Epsilon <= 0 {
		errs = append(errs, fmt.Errorf("match epsilon must be positive, got %v", c.Target.Epsilon))
	}
	if c.CenteringTolerance <= 0 {
		errs = append(errs, fmt.Errorf("centering tolerance must be positive, got %v", c.CenteringTolerance))
	}
	if c.UnitScale <= 0 {
		errs = append(errs, fmt.Errorf("unit scale must be positive, got %v", c.UnitScale))
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"center snap distance", c.CenterSnapDistance},
		{"axis snap distance", c.AxisSnapDistance},
		{"min draw magnitude", c.MinDrawMagnitude},
		{"edge thickness", c.EdgeThickness},
		{"surface width", c.Surface.Width},
		{"surface height", c.Surface.Height},
	} {
		if f.v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %v", f.name, f.v))
		}
	}
	return errors.Join(errs...)
}

func (c Config) hasSurface() bool {
	return !c.Surface.IsEmpty()
}
