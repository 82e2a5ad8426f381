package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/sketchcoach/sketchcoach/internal/dimension"
	"github.com/sketchcoach/sketchcoach/internal/engine"
	"github.com/sketchcoach/sketchcoach/internal/geometry"
)

type Config struct {
	Port           int           `envconfig:"PORT" default:"8080"`
	JWTSecret      string        `envconfig:"JWT_SECRET" default:"dev-secret-change-in-production"`
	TokenTTL       time.Duration `envconfig:"TOKEN_TTL" default:"24h"`
	AllowedOrigins []string      `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`

	Sketch
}

// Sketch holds the tutorial settings. Sizes are in canvas units.
type Sketch struct {
	GridStep           float64 `envconfig:"SKETCH_GRID_STEP" default:"10"`
	CenterSnapDistance float64 `envconfig:"SKETCH_CENTER_SNAP_DISTANCE" default:"24"`
	AxisSnapDistance   float64 `envconfig:"SKETCH_AXIS_SNAP_DISTANCE" default:"16"`
	MinDrawMagnitude   float64 `envconfig:"SKETCH_MIN_DRAW_MAGNITUDE" default:"6"`
	CenteringTolerance float64 `envconfig:"SKETCH_CENTERING_TOLERANCE" default:"0.01"`
	EdgeThickness      float64 `envconfig:"SKETCH_EDGE_THICKNESS" default:"20"`
	TargetRectA        float64 `envconfig:"SKETCH_TARGET_RECT_A" default:"60"`
	TargetRectB        float64 `envconfig:"SKETCH_TARGET_RECT_B" default:"30"`
	TargetCircle       float64 `envconfig:"SKETCH_TARGET_CIRCLE" default:"10"`
	MatchEpsilon       float64 `envconfig:"SKETCH_MATCH_EPSILON" default:"0.01"`
	UnitScale          float64 `envconfig:"SKETCH_UNIT_SCALE" default:"1"`
	SurfaceWidth       float64 `envconfig:"SKETCH_SURFACE_WIDTH" default:"0"`
	SurfaceHeight      float64 `envconfig:"SKETCH_SURFACE_HEIGHT" default:"0"`
	RequireDrawArm     bool    `envconfig:"SKETCH_REQUIRE_DRAW_ARM" default:"false"`
	FollowupAnswer     string  `envconfig:"SKETCH_FOLLOWUP_ANSWER"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Engine converts the tutorial settings to an engine configuration. The
// surface, when set, is centered on the canvas origin.
func (c *Config) Engine() engine.Config {
	s := c.Sketch
	return engine.Config{
		GridStep:           s.GridStep,
		CenterSnapDistance: s.CenterSnapDistance,
		AxisSnapDistance:   s.AxisSnapDistance,
		MinDrawMagnitude:   s.MinDrawMagnitude,
		CenteringTolerance: s.CenteringTolerance,
		EdgeThickness:      s.EdgeThickness,
		Target: dimension.Target{
			RectA:    s.TargetRectA,
			RectB:    s.TargetRectB,
			Diameter: s.TargetCircle,
			Epsilon:  s.MatchEpsilon,
		},
		UnitScale:      s.UnitScale,
		Surface:        geometry.Rect{Width: s.SurfaceWidth, Height: s.SurfaceHeight},
		RequireDrawArm: s.RequireDrawArm,
	}
}
