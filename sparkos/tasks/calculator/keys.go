package calculator

import (
	"sparkcalc/hal"
	"sparkcalc/sparkos/calc"
)

type actionKind uint8

const (
	actionNone actionKind = iota
	actionPress
	actionFocus
	actionActivate
)

type action struct {
	kind   actionKind
	symbol string
	dx, dy int
}

// runeSymbols maps typed characters to keypad symbols. Letters are
// mnemonic shortcuts for the function keys.
var runeSymbols = map[rune]string{
	'.': calc.KeyPoint,
	',': calc.KeyPoint,
	'+': "+",
	'-': "-",
	'*': "x",
	'/': "/",
	'^': "x^y",
	'%': "mod",
	'!': "x!",
	'=': calc.KeyEquals,
	'p': calc.KeyPi,
	's': "sin",
	'c': "cos",
	't': "tan",
	'l': "log",
	'n': "ln",
	'e': "e",
	'r': "√",
	'q': "x²",
	'i': "1/x",
	'a': "|x|",
	'm': "mod",
	'~': "+/-",
	'E': "10^x",
}

var codeSymbols = map[hal.KeyCode]string{
	hal.KeyEnter:     calc.KeyEquals,
	hal.KeyBackspace: calc.KeyDelete,
	hal.KeyDelete:    calc.KeyDelete,
	hal.KeyEscape:    calc.KeyClear,
	hal.KeyF1:        calc.KeyMemAdd,
	hal.KeyF2:        calc.KeyMemSub,
	hal.KeyF3:        calc.KeyMemRecall,
	hal.KeyHome:      calc.KeyOn,
	hal.KeyEnd:       calc.KeyOff,
}

// keyAction translates a keyboard event. Releases are ignored.
func keyAction(ev hal.KeyEvent) action {
	if !ev.Press {
		return action{}
	}

	switch ev.Code {
	case hal.KeyUp:
		return action{kind: actionFocus, dy: -1}
	case hal.KeyDown:
		return action{kind: actionFocus, dy: 1}
	case hal.KeyLeft:
		return action{kind: actionFocus, dx: -1}
	case hal.KeyRight:
		return action{kind: actionFocus, dx: 1}
	case hal.KeyTab:
		return action{kind: actionActivate}
	case hal.KeyUnknown:
	default:
		if sym, ok := codeSymbols[ev.Code]; ok {
			return action{kind: actionPress, symbol: sym}
		}
		return action{}
	}

	r := ev.Rune
	switch {
	case r >= '0' && r <= '9':
		return action{kind: actionPress, symbol: string(r)}
	case r == ' ':
		return action{kind: actionActivate}
	case r == '\n' || r == '\r':
		return action{kind: actionPress, symbol: calc.KeyEquals}
	}
	if sym, ok := runeSymbols[r]; ok {
		return action{kind: actionPress, symbol: sym}
	}
	return action{}
}
