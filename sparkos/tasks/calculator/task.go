package calculator

import (
	"sparkcalc/hal"
	"sparkcalc/sparkos/calc"
	"sparkcalc/sparkos/client/logger"
	"sparkcalc/sparkos/kernel"
	"sparkcalc/sparkos/proto"

	"tinygo.org/x/tinyterm"
)

// Task drives a calc.Session from the keyboard, the pointer and its
// endpoint, and draws it to the framebuffer after every accepted key.
type Task struct {
	disp   hal.Display
	in     hal.Input
	ep     kernel.Capability
	logCap kernel.Capability

	fb hal.Framebuffer
	d  *fbDisplay
	w  int
	h  int

	tape       *tinyterm.Terminal
	tapeRegion *regionDisplay
	tapeCols   int

	session calc.Session
	focus   int
}

func New(disp hal.Display, in hal.Input, ep kernel.Capability, logCap kernel.Capability) *Task {
	focus, _ := buttonIndex(calc.KeyEquals)
	return &Task{
		disp:    disp,
		in:      in,
		ep:      ep,
		logCap:  logCap,
		session: calc.NewSession(),
		focus:   focus,
	}
}

// Session returns the current calculator state.
func (t *Task) Session() calc.Session { return t.session }

func (t *Task) Run(ctx *kernel.Context) {
	ch, ok := ctx.RecvChan(t.ep)
	if !ok {
		return
	}
	if t.disp == nil {
		return
	}
	t.fb = t.disp.Framebuffer()
	if t.fb == nil || !t.initRender() {
		return
	}

	var keys <-chan hal.KeyEvent
	var pointer <-chan hal.PointerEvent
	if t.in != nil {
		if kbd := t.in.Keyboard(); kbd != nil {
			keys = kbd.Events()
		}
		if p := t.in.Pointer(); p != nil {
			pointer = p.Events()
		}
	}

	logger.Log(ctx, t.logCap, "calc: ready")
	t.render()

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if proto.Kind(msg.Kind) == proto.MsgAppShutdown {
				logger.Log(ctx, t.logCap, "calc: shutdown")
				return
			}
			if !t.handleMessage(ctx, msg) {
				continue
			}

		case ev := <-keys:
			if !t.handleKey(ctx, ev) {
				continue
			}

		case ev := <-pointer:
			if !t.handlePointer(ctx, ev) {
				continue
			}
		}
		t.render()
	}
}

// handleMessage applies one endpoint message and reports whether the
// session changed.
func (t *Task) handleMessage(ctx *kernel.Context, msg kernel.Message) bool {
	switch proto.Kind(msg.Kind) {
	case proto.MsgAppControl:
		on, ok := proto.DecodeAppControlPayload(msg.Payload())
		if !ok {
			return false
		}
		if on {
			return t.press(ctx, calc.KeyOn)
		}
		return t.press(ctx, calc.KeyOff)

	case proto.MsgCalcPress:
		sym, ok := proto.DecodeCalcPressPayload(msg.Payload())
		if !ok {
			logger.Log(ctx, t.logCap, "calc: malformed press payload")
			return false
		}
		return t.press(ctx, sym)
	}
	return false
}

func (t *Task) handleKey(ctx *kernel.Context, ev hal.KeyEvent) bool {
	a := keyAction(ev)
	switch a.kind {
	case actionPress:
		if i, ok := buttonIndex(a.symbol); ok {
			t.focus = i
		}
		return t.press(ctx, a.symbol)
	case actionFocus:
		t.focus = moveFocus(t.focus, a.dx, a.dy)
		return true
	case actionActivate:
		return t.press(ctx, keypad[t.focus].label)
	}
	return false
}

func (t *Task) handlePointer(ctx *kernel.Context, ev hal.PointerEvent) bool {
	if !ev.Press {
		return false
	}
	i, ok := hitTest(ev.X, ev.Y)
	if !ok {
		return false
	}
	t.focus = i
	return t.press(ctx, keypad[i].label)
}

// logRetryTicks bounds how long a calculation record waits for room in the
// logger queue.
const logRetryTicks = 30

// press feeds one keypad symbol to the session and logs its outcome.
func (t *Task) press(ctx *kernel.Context, sym string) bool {
	if !calc.IsKey(sym) {
		logger.Logf(ctx, t.logCap, "calc: unknown key %q", sym)
		return false
	}

	prev := t.session
	t.session = t.session.Press(sym)

	for _, rec := range t.session.History()[len(prev.History()):] {
		_ = logger.LogRetry(ctx, t.logCap, "calc: "+rec, logRetryTicks)
	}
	if err := t.session.Err(); err != nil {
		_ = logger.LogRetry(ctx, t.logCap, "calc: error: "+err.Error(), logRetryTicks)
	}
	if t.session.Off() != prev.Off() {
		if t.session.Off() {
			logger.Log(ctx, t.logCap, "calc: power off")
		} else {
			logger.Log(ctx, t.logCap, "calc: power on")
		}
	}
	return true
}
