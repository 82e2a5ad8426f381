package engine

import (
	"github.com/sketchcoach/sketchcoach/internal/dialog"
	"github.com/sketchcoach/sketchcoach/internal/document"
	"github.com/sketchcoach/sketchcoach/internal/typeid"
)

type EventType string

const (
	EventStageChanged   EventType = "stage.changed"
	EventShapeCreated   EventType = "shape.created"
	EventShapeUpdated   EventType = "shape.updated"
	EventShapeDestroyed EventType = "shape.destroyed"
	EventDraftChanged   EventType = "draft.changed"
	EventDraftDiscarded EventType = "draft.discarded"
	EventHighlight      EventType = "highlight"
	EventDialogOpened   EventType = "dialog.opened"
	EventDialogClosed   EventType = "dialog.closed"
	EventStepCompleted  EventType = "step.completed"
	EventSessionDone    EventType = "session.done"
)

// Event is a notification for the render collaborator. Only the fields relevant
// to Type are set.
type Event struct {
	ID    string    `json:"id"`
	Type  EventType `json:"type"`
	Stage Stage     `json:"stage"`

	From      *Stage          `json:"from,omitempty"`
	Status    string          `json:"status,omitempty"`
	Shape     *document.Shape `json:"shape,omitempty"`
	Highlight *Highlight      `json:"highlight,omitempty"`
	Dialog    *dialog.Request `json:"dialog,omitempty"`
	Step      int             `json:"step,omitempty"`
}

type subscriber struct {
	id int
	fn func(Event)
}

// Subscribe registers fn for every event the engine emits. The returned func
// removes the subscription.
func (e *Engine) Subscribe(fn func(Event)) (unsubscribe func()) {
	e.nextSubID++
	id := e.nextSubID
	e.subscribers = append(e.subscribers, subscriber{id: id, fn: fn})

	return func() {
		for i, s := range e.subscribers {
			if s.id == id {
				e.subscribers = append(e.subscribers[:i], e.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (e *Engine) emit(ev Event) {
	ev.ID = typeid.NewEventID()
	ev.Stage = e.stage
	e.dirty = true

	subs := make([]subscriber, len(e.subscribers))
	copy(subs, e.subscribers)
	for _, s := range subs {
		s.fn(ev)
	}
}
