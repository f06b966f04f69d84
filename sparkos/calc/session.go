package calc

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Keypad symbols handled by the session in addition to the registry symbols.
const (
	KeyPoint     = "."
	KeyPi        = "π"
	KeyEquals    = "="
	KeyClear     = "C"
	KeyDelete    = "DEL"
	KeyMemAdd    = "M+"
	KeyMemSub    = "M-"
	KeyMemRecall = "MR"
	KeyMemClear  = "MC"
	KeyOn        = "ON"
	KeyOff       = "OFF"
)

// HistorySize is the number of records shown in the history panel.
const HistorySize = 5

// ErrorText replaces the display after a failed evaluation.
const ErrorText = "Error"

// State is the derived input state of a Session.
type State uint8

const (
	StateIdle State = iota
	StateEntering
	StatePendingSecondOperand
	StateError
	StateOff
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEntering:
		return "entering"
	case StatePendingSecondOperand:
		return "pending"
	case StateError:
		return "error"
	case StateOff:
		return "off"
	default:
		return "unknown"
	}
}

type keyKind uint8

const (
	keyDigit keyKind = iota + 1
	keyPoint
	keyPi
	keyBinary
	keyUnary
	keyEquals
	keyClear
	keyDelete
	keyMemAdd
	keyMemSub
	keyMemRecall
	keyMemClear
	keyOn
	keyOff
)

var controlKeys = map[string]keyKind{
	KeyPoint:     keyPoint,
	KeyEquals:    keyEquals,
	KeyClear:     keyClear,
	KeyDelete:    keyDelete,
	KeyMemAdd:    keyMemAdd,
	KeyMemSub:    keyMemSub,
	KeyMemRecall: keyMemRecall,
	KeyMemClear:  keyMemClear,
	KeyOn:        keyOn,
	KeyOff:       keyOff,
}

func classify(sym string) (keyKind, Tag, bool) {
	if len(sym) == 1 && sym[0] >= '0' && sym[0] <= '9' {
		return keyDigit, TagInvalid, true
	}
	if k, ok := controlKeys[sym]; ok {
		return k, TagInvalid, true
	}
	t, ok := Lookup(sym)
	if !ok {
		return 0, TagInvalid, false
	}
	switch {
	case t == PiConstant:
		return keyPi, t, true
	case t.IsBinary():
		return keyBinary, t, true
	default:
		return keyUnary, t, true
	}
}

// IsKey reports whether sym is a keypad symbol the session understands.
func IsKey(sym string) bool {
	_, _, ok := classify(sym)
	return ok
}

type pendingOp struct {
	first float64
	tag   Tag
	set   bool
}

// Session is the calculator input state: display text, pending binary
// operation, memory register and history log.
//
// A Session is a value. Press returns the next state and leaves the
// receiver untouched, so a zero Session is ready to use (powered on, empty).
type Session struct {
	display    string
	annotation string
	pending    pendingOp
	memory     float64
	history    []string
	hidden     bool
	off        bool
	errored    bool
	err        error
}

// NewSession returns an empty, powered-on session.
func NewSession() Session { return Session{} }

// Press applies one keypad symbol and returns the resulting session.
//
// Unknown symbols are a wiring defect and panic with *UnknownOperationError.
func (s Session) Press(sym string) Session {
	kind, tag, ok := classify(sym)
	if !ok {
		panic(&UnknownOperationError{Symbol: sym})
	}
	s.err = nil

	if s.off {
		if kind == keyOn {
			s.off = false
		}
		return s
	}

	switch kind {
	case keyDigit:
		s.beginEntry()
		s.display += sym
	case keyPoint:
		s.beginEntry()
		if !strings.Contains(s.display, KeyPoint) {
			s.display += KeyPoint
		}
	case keyPi:
		s.beginEntry()
		v, _ := EvaluateUnary(0, PiConstant)
		s.display = FormatOperand(v)
	case keyBinary:
		s.pressBinary(tag)
	case keyUnary:
		s.pressUnary(tag)
	case keyEquals:
		s.pressEquals()
	case keyClear:
		s.clear()
	case keyDelete:
		s.pressDelete()
	case keyMemAdd, keyMemSub:
		s.pressMemory(kind == keyMemAdd)
	case keyMemRecall:
		s.errored = false
		s.display = FormatResult(s.memory)
		s.annotation = "MR (" + s.display + ")"
	case keyMemClear:
		s.memory = 0
		s.annotation = "MC (0)"
	case keyOff:
		s.clear()
		s.off = true
		s.hidden = true
	case keyOn:
	}
	return s
}

// PressAll applies each symbol in order.
func (s Session) PressAll(syms ...string) Session {
	for _, sym := range syms {
		s = s.Press(sym)
	}
	return s
}

func (s *Session) beginEntry() {
	if s.errored {
		s.errored = false
		s.display = ""
		s.annotation = ""
	}
}

func (s *Session) hasOperand() bool {
	return s.display != "" && !s.errored
}

func (s *Session) pressBinary(t Tag) {
	if !s.hasOperand() {
		return
	}
	v, err := ParseOperand(s.display)
	if err != nil {
		s.fail(err)
		return
	}
	s.pending = pendingOp{first: v, tag: t, set: true}
	s.display = ""
	s.annotation = t.Label(FormatOperand(v))
}

func (s *Session) pressEquals() {
	if !s.hasOperand() || !s.pending.set {
		return
	}
	p := s.pending
	second, err := ParseOperand(s.display)
	if err != nil {
		s.fail(err)
		return
	}
	r, err := EvaluateBinary(p.first, second, p.tag)
	s.pending = pendingOp{}
	if err != nil {
		s.fail(err)
		return
	}
	res := FormatResult(r)
	s.display = res
	s.annotation = ""
	s.record(FormatOperand(p.first) + " " + p.tag.String() + " " + FormatOperand(second) + " = " + res)
}

func (s *Session) pressUnary(t Tag) {
	if !s.hasOperand() {
		return
	}
	x, err := ParseOperand(s.display)
	if err != nil {
		s.fail(err)
		return
	}
	r, err := EvaluateUnary(x, t)
	if err != nil {
		s.fail(err)
		return
	}
	res := FormatResult(r)
	label := t.Label(FormatOperand(x))
	s.display = res
	s.annotation = label
	s.record(label + " = " + res)
}

func (s *Session) pressDelete() {
	if s.errored {
		s.clearEntry()
		return
	}
	if s.display == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(s.display)
	s.display = s.display[:len(s.display)-size]
	if !s.pending.set {
		s.annotation = ""
	}
}

func (s *Session) pressMemory(add bool) {
	if !s.hasOperand() {
		return
	}
	v, err := ParseOperand(s.display)
	if err != nil {
		s.fail(err)
		return
	}
	if add {
		s.memory += v
		s.annotation = "M+ (" + FormatResult(s.memory) + ")"
		return
	}
	s.memory -= v
	s.annotation = "M- (" + FormatResult(s.memory) + ")"
}

func (s *Session) clearEntry() {
	s.errored = false
	s.display = ""
	s.annotation = ""
}

func (s *Session) clear() {
	s.clearEntry()
	s.pending = pendingOp{}
}

func (s *Session) fail(err error) {
	s.err = err
	s.errored = true
	s.display = ErrorText
	s.annotation = Message(err)
}

func (s *Session) record(rec string) {
	// Clip so sessions derived from the same parent never share appends.
	s.history = append(slices.Clip(s.history), rec)
	s.hidden = false
}

// Display returns the display field text.
func (s Session) Display() string { return s.display }

// Annotation returns the line shown above the display: the pending
// operation, the last unary label, a memory note or an error message.
func (s Session) Annotation() string { return s.annotation }

// Memory returns the memory register.
func (s Session) Memory() float64 { return s.memory }

// Pending returns the stored first operand and tag, if any.
func (s Session) Pending() (first float64, t Tag, ok bool) {
	return s.pending.first, s.pending.tag, s.pending.set
}

// Off reports whether the calculator is powered off.
func (s Session) Off() bool { return s.off }

// Err returns the error raised by the last Press, if any.
func (s Session) Err() error { return s.err }

// State derives the input state.
func (s Session) State() State {
	switch {
	case s.off:
		return StateOff
	case s.errored:
		return StateError
	case s.display != "":
		return StateEntering
	case s.pending.set:
		return StatePendingSecondOperand
	default:
		return StateIdle
	}
}

// History returns every record of the session, oldest first.
func (s Session) History() []string {
	return slices.Clone(s.history)
}

// Recent returns the last HistorySize records for the history panel, oldest
// first. The panel is blank after a power-off until the next record.
func (s Session) Recent() []string {
	if s.hidden {
		return nil
	}
	visible := s.history
	if len(visible) > HistorySize {
		visible = visible[len(visible)-HistorySize:]
	}
	return slices.Clone(visible)
}
