// Package script drives a viewport headlessly from Starlark scenario files.
//
// A scenario feeds size reports and gesture events into the engine on a
// synthetic clock and asserts on the resulting transform, so interaction
// sequences can be exercised and checked without a window.
package script

import (
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"go.starlark.net/starlark"

	"zoom-anything/viewport"
)

// settleMaxTicks bounds settle() so a scenario can't spin forever if an
// animation never finishes.
const settleMaxTicks = 1000

// frameStep is the synthetic clock advance used by settle().
const frameStep = 16 * time.Millisecond

// Run executes the scenario at path against vp. Engine time starts at zero
// and only advances through tick() and settle() builtins. A failed
// expectation aborts the scenario and is returned as an error.
func Run(path string, vp *viewport.Viewport, logger *log.Logger) error {
	s := &session{vp: vp, now: time.Unix(0, 0), logger: logger}

	thread := &starlark.Thread{
		Name:  path,
		Print: func(_ *starlark.Thread, msg string) { logger.Info(msg) },
	}

	if _, err := starlark.ExecFile(thread, path, nil, s.builtins()); err != nil {
		return fmt.Errorf("scenario %s: %w", path, err)
	}
	return nil
}

// session is one scenario run: the engine under test plus its clock.
type session struct {
	vp     *viewport.Viewport
	now    time.Time
	logger *log.Logger
}

func (s *session) builtins() starlark.StringDict {
	return starlark.StringDict{
		"container":          starlark.NewBuiltin("container", s.container),
		"content":            starlark.NewBuiltin("content", s.content),
		"pinch_begin":        starlark.NewBuiltin("pinch_begin", s.pinchBegin),
		"pinch":              starlark.NewBuiltin("pinch", s.pinch),
		"pinch_end":          starlark.NewBuiltin("pinch_end", s.pinchEnd),
		"pan_begin":          starlark.NewBuiltin("pan_begin", s.panBegin),
		"pan":                starlark.NewBuiltin("pan", s.pan),
		"pan_end":            starlark.NewBuiltin("pan_end", s.panEnd),
		"double_tap":         starlark.NewBuiltin("double_tap", s.doubleTap),
		"tick":               starlark.NewBuiltin("tick", s.tick),
		"settle":             starlark.NewBuiltin("settle", s.settle),
		"expect_scale":       starlark.NewBuiltin("expect_scale", s.expectScale),
		"expect_translation": starlark.NewBuiltin("expect_translation", s.expectTranslation),
	}
}

func (s *session) container(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var w, h float64
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "w", &w, "h", &h); err != nil {
		return nil, err
	}
	s.vp.SetContainerSize(w, h)
	return starlark.None, nil
}

func (s *session) content(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var w, h float64
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "w", &w, "h", &h); err != nil {
		return nil, err
	}
	s.vp.SetContentSize(w, h)
	return starlark.None, nil
}

func (s *session) pinchBegin(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs); err != nil {
		return nil, err
	}
	s.vp.PinchBegin(2)
	return starlark.None, nil
}

func (s *session) pinch(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var factor float64
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "factor", &factor); err != nil {
		return nil, err
	}
	s.vp.PinchUpdate(2, factor)
	return starlark.None, nil
}

func (s *session) pinchEnd(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var factor float64
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "factor", &factor); err != nil {
		return nil, err
	}
	s.vp.PinchEnd(2, factor)
	return starlark.None, nil
}

func (s *session) panBegin(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs); err != nil {
		return nil, err
	}
	s.vp.PanBegin()
	return starlark.None, nil
}

func (s *session) pan(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var dx, dy float64
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "dx", &dx, "dy", &dy); err != nil {
		return nil, err
	}
	s.vp.PanUpdate(dx, dy)
	return starlark.None, nil
}

func (s *session) panEnd(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var dx, dy, vx, vy float64
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "dx", &dx, "dy", &dy, "vx?", &vx, "vy?", &vy); err != nil {
		return nil, err
	}
	s.vp.PanEnd(dx, dy, vx, vy)
	return starlark.None, nil
}

func (s *session) doubleTap(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x, y float64
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "x?", &x, "y?", &y); err != nil {
		return nil, err
	}
	s.vp.DoubleTap(x, y, true)
	return starlark.None, nil
}

func (s *session) tick(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var ms int
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "ms", &ms); err != nil {
		return nil, err
	}
	s.now = s.now.Add(time.Duration(ms) * time.Millisecond)
	s.vp.Tick(s.now)
	return starlark.None, nil
}

// settle ticks the synthetic clock until no animation is in flight.
func (s *session) settle(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs); err != nil {
		return nil, err
	}
	for i := 0; s.vp.Animating(); i++ {
		if i >= settleMaxTicks {
			return nil, fmt.Errorf("settle: animation still running after %d ticks", settleMaxTicks)
		}
		s.vp.Tick(s.now)
		s.now = s.now.Add(frameStep)
	}
	return starlark.None, nil
}

// expectScale asserts on the live scale.
func (s *session) expectScale(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var want float64
	tol := 1e-6
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "v", &want, "tol?", &tol); err != nil {
		return nil, err
	}
	if got := s.vp.Scale(); math.Abs(got-want) > tol {
		return nil, fmt.Errorf("expect_scale: got %g, want %g (tol %g)", got, want, tol)
	}
	s.logger.Debugf("scale ok: %g", want)
	return starlark.None, nil
}

// expectTranslation asserts on the live translation.
func (s *session) expectTranslation(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var wantX, wantY float64
	tol := 1e-6
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "x", &wantX, "y", &wantY, "tol?", &tol); err != nil {
		return nil, err
	}
	gotX, gotY := s.vp.Translation()
	if math.Abs(gotX-wantX) > tol || math.Abs(gotY-wantY) > tol {
		return nil, fmt.Errorf("expect_translation: got (%g, %g), want (%g, %g) (tol %g)", gotX, gotY, wantX, wantY, tol)
	}
	s.logger.Debugf("translation ok: (%g, %g)", wantX, wantY)
	return starlark.None, nil
}
