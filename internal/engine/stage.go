package engine

import "fmt"

// Stage is one phase of the tutorial. Stages only move forward, except on Reset.
type Stage int

const (
	StageDrawRectangle Stage = iota
	StageCenterRectangle
	StageDrawCircle
	StageCenterCircle
	StageAwaitDimensionConfirm
	StageDimensionRectangle
	StageDimensionCircle
	StageDone
)

var stageNames = [...]string{
	"DrawRectangle",
	"CenterRectangle",
	"DrawCircle",
	"CenterCircle",
	"AwaitDimensionConfirm",
	"DimensionRectangle",
	"DimensionCircle",
	"Done",
}

var stageStatus = [...]string{
	"Draw a rectangle",
	"Drag the rectangle to the center",
	"Draw a circle",
	"Drag the circle to the center of the rectangle",
	"Press Dimensions to start dimensioning",
	"Click a rectangle edge and enter its length",
	"Click the circle and enter its diameter",
	"The sketch is fully defined",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("Stage(%d)", int(s))
	}
	return stageNames[s]
}

// Status is the message shown on the renderer's status line.
func (s Stage) Status() string {
	if s < 0 || int(s) >= len(stageStatus) {
		return ""
	}
	return stageStatus[s]
}

func (s Stage) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Stage) UnmarshalText(b []byte) error {
	v, err := ParseStage(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseStage is the inverse of Stage.String.
func ParseStage(name string) (Stage, error) {
	for i, n := range stageNames {
		if n == name {
			return Stage(i), nil
		}
	}
	return 0, fmt.Errorf("unknown stage %q", name)
}
