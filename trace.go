package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"zoom-anything/gesture"
)

// Trace event kinds. The trace records the gesture input stream, never the
// transform state: replay re-derives every value through the engine.
const (
	evPinchBegin  = "pinch_begin"
	evPinchUpdate = "pinch_update"
	evPinchEnd    = "pinch_end"
	evPanBegin    = "pan_begin"
	evPanUpdate   = "pan_update"
	evPanEnd      = "pan_end"
	evDoubleTap   = "double_tap"
)

// TraceEvent is one recorded gesture callback, stamped with its offset from
// the session start.
type TraceEvent struct {
	AtMs     int64   `yaml:"at_ms"`
	Kind     string  `yaml:"kind"`
	Pointers int     `yaml:"pointers,omitempty"`
	Factor   float64 `yaml:"factor,omitempty"`
	DX       float64 `yaml:"dx,omitempty"`
	DY       float64 `yaml:"dy,omitempty"`
	VX       float64 `yaml:"vx,omitempty"`
	VY       float64 `yaml:"vy,omitempty"`
	X        float64 `yaml:"x,omitempty"`
	Y        float64 `yaml:"y,omitempty"`
	OK       bool    `yaml:"ok,omitempty"`
}

// TraceFile is the on-disk session format.
type TraceFile struct {
	SessionID  string       `yaml:"session_id"`
	CreatedAt  time.Time    `yaml:"created_at"`
	ContainerW float64      `yaml:"container_w"`
	ContainerH float64      `yaml:"container_h"`
	ContentW   float64      `yaml:"content_w"`
	ContentH   float64      `yaml:"content_h"`
	Events     []TraceEvent `yaml:"events"`
}

// Recorder implements gesture.Target: it timestamps each event, appends it
// to the trace, and forwards to the wrapped target. The clock starts on the
// first event.
type Recorder struct {
	target gesture.Target
	clock  func() time.Time

	started bool
	start   time.Time
	trace   TraceFile
}

// NewRecorder creates a recorder; call Wrap before use to set the
// forwarding target.
func NewRecorder() *Recorder {
	return &Recorder{clock: time.Now}
}

// Wrap sets the target events are forwarded to.
func (r *Recorder) Wrap(target gesture.Target) {
	r.target = target
}

// SetSizes records the sizes the session ran under, for replay context.
func (r *Recorder) SetSizes(containerW, containerH, contentW, contentH float64) {
	r.trace.ContainerW = containerW
	r.trace.ContainerH = containerH
	r.trace.ContentW = contentW
	r.trace.ContentH = contentH
}

// Empty reports whether nothing was recorded.
func (r *Recorder) Empty() bool {
	return len(r.trace.Events) == 0
}

func (r *Recorder) record(e TraceEvent) {
	now := r.clock()
	if !r.started {
		r.started = true
		r.start = now
	}
	e.AtMs = now.Sub(r.start).Milliseconds()
	r.trace.Events = append(r.trace.Events, e)
}

func (r *Recorder) PinchBegin(pointers int) {
	r.record(TraceEvent{Kind: evPinchBegin, Pointers: pointers})
	r.target.PinchBegin(pointers)
}

func (r *Recorder) PinchUpdate(pointers int, factor float64) {
	r.record(TraceEvent{Kind: evPinchUpdate, Pointers: pointers, Factor: factor})
	r.target.PinchUpdate(pointers, factor)
}

func (r *Recorder) PinchEnd(pointers int, factor float64) {
	r.record(TraceEvent{Kind: evPinchEnd, Pointers: pointers, Factor: factor})
	r.target.PinchEnd(pointers, factor)
}

func (r *Recorder) PanBegin() {
	r.record(TraceEvent{Kind: evPanBegin})
	r.target.PanBegin()
}

func (r *Recorder) PanUpdate(dx, dy float64) {
	r.record(TraceEvent{Kind: evPanUpdate, DX: dx, DY: dy})
	r.target.PanUpdate(dx, dy)
}

func (r *Recorder) PanEnd(dx, dy, vx, vy float64) {
	r.record(TraceEvent{Kind: evPanEnd, DX: dx, DY: dy, VX: vx, VY: vy})
	r.target.PanEnd(dx, dy, vx, vy)
}

func (r *Recorder) DoubleTap(x, y float64, ok bool) {
	r.record(TraceEvent{Kind: evDoubleTap, X: x, Y: y, OK: ok})
	r.target.DoubleTap(x, y, ok)
}

// Save writes the trace with a fresh session id.
func (r *Recorder) Save(filename string) error {
	r.trace.SessionID = uuid.NewString()
	r.trace.CreatedAt = time.Now().UTC()

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create trace: %w", err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(&r.trace); err != nil {
		return fmt.Errorf("encode trace: %w", err)
	}
	return enc.Close()
}

// LoadTrace reads a trace file.
func LoadTrace(filename string) (*TraceFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read trace: %w", err)
	}
	var tf TraceFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parse trace: %w", err)
	}
	return &tf, nil
}

// Replayer feeds recorded events into a target as their timestamps come due
// against the supplied clock. Feed is cheap to call every frame.
type Replayer struct {
	trace  *TraceFile
	target gesture.Target

	started bool
	start   time.Time
	next    int
}

func NewReplayer(trace *TraceFile, target gesture.Target) *Replayer {
	return &Replayer{trace: trace, target: target}
}

// Done reports whether every event has been delivered.
func (p *Replayer) Done() bool {
	return p.next >= len(p.trace.Events)
}

// Feed delivers every event due at or before now, in recorded order.
func (p *Replayer) Feed(now time.Time) {
	if !p.started {
		p.started = true
		p.start = now
	}
	elapsed := now.Sub(p.start).Milliseconds()
	for p.next < len(p.trace.Events) && p.trace.Events[p.next].AtMs <= elapsed {
		p.dispatch(p.trace.Events[p.next])
		p.next++
	}
}

func (p *Replayer) dispatch(e TraceEvent) {
	switch e.Kind {
	case evPinchBegin:
		p.target.PinchBegin(e.Pointers)
	case evPinchUpdate:
		p.target.PinchUpdate(e.Pointers, e.Factor)
	case evPinchEnd:
		p.target.PinchEnd(e.Pointers, e.Factor)
	case evPanBegin:
		p.target.PanBegin()
	case evPanUpdate:
		p.target.PanUpdate(e.DX, e.DY)
	case evPanEnd:
		p.target.PanEnd(e.DX, e.DY, e.VX, e.VY)
	case evDoubleTap:
		p.target.DoubleTap(e.X, e.Y, e.OK)
	}
}
