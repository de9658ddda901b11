package engine

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/rsnake/core"
	"github.com/lixenwraith/rsnake/render"
)

// RecordingRenderer is a Renderer for tests that keeps a copy of every frame drawn
type RecordingRenderer struct {
	Size   core.Bounds
	Frames [][]core.Cell
	Bodies []render.Slot
	Leads  []render.Slot
}

// NewRecordingRenderer creates a recording renderer with fixed bounds
func NewRecordingRenderer(rows, cols int) *RecordingRenderer {
	return &RecordingRenderer{Size: core.Bounds{Rows: rows, Cols: cols}}
}

// Bounds returns the configured size
func (r *RecordingRenderer) Bounds() core.Bounds {
	return r.Size
}

// RenderFrame records the cells and the slots in use
func (r *RecordingRenderer) RenderFrame(cells []core.Cell, palette *render.Palette) {
	frame := make([]core.Cell, len(cells))
	copy(frame, cells)
	r.Frames = append(r.Frames, frame)
	r.Bodies = append(r.Bodies, palette.Body)
	r.Leads = append(r.Leads, palette.Lead)
}

// QueuedEvents is an EventSource for tests backed by a slice; each TryEvent pops one
type QueuedEvents struct {
	events []tcell.Event
}

// NewQueuedEvents creates a queue pre-filled with events
func NewQueuedEvents(events ...tcell.Event) *QueuedEvents {
	return &QueuedEvents{events: events}
}

// Push appends an event
func (q *QueuedEvents) Push(ev tcell.Event) {
	q.events = append(q.events, ev)
}

// Len returns the number of events still queued
func (q *QueuedEvents) Len() int {
	return len(q.events)
}

// TryEvent pops the oldest event or returns nil
func (q *QueuedEvents) TryEvent() tcell.Event {
	if len(q.events) == 0 {
		return nil
	}
	ev := q.events[0]
	q.events = q.events[1:]
	return ev
}
