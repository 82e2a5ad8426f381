package engine

// Checklist steps, numbered from 1.
const (
	StepRectangleDrawn = iota + 1
	StepRectangleCentered
	StepCircleDrawn
	StepCircleCentered
	StepRectangleDimensioned
	StepCircleDimensioned
)

// Progress records which checklist steps are complete. Index 0 is step 1.
type Progress [6]bool

// Completed returns the number of completed steps.
func (p Progress) Completed() int {
	n := 0
	for _, done := range p {
		if done {
			n++
		}
	}
	return n
}

// markStep completes step and emits step.completed the first time.
func (e *Engine) markStep(step int) {
	if step < 1 || step > len(e.progress) || e.progress[step-1] {
		return
	}
	e.progress[step-1] = true
	e.emit(Event{Type: EventStepCompleted, Step: step})
}
