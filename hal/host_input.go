package hal

// hostKeyboard and hostPointer are fed by the window backend (poll) or by
// the headless runner (inject).

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) inject(ev KeyEvent) bool {
	select {
	case k.ch <- ev:
		return true
	default:
		return false
	}
}

type hostPointer struct {
	ch chan PointerEvent

	down bool
}

func newHostPointer() *hostPointer {
	return &hostPointer{ch: make(chan PointerEvent, 16)}
}

func (p *hostPointer) Events() <-chan PointerEvent { return p.ch }

func (p *hostPointer) inject(ev PointerEvent) bool {
	select {
	case p.ch <- ev:
		return true
	default:
		return false
	}
}

// scriptEvent maps one headless script rune to a key event.
//
// '\n' is Enter, '\b' is Backspace and 0x1b is Escape; every other rune is
// text input.
func scriptEvent(r rune) KeyEvent {
	switch r {
	case '\n', '\r':
		return KeyEvent{Code: KeyEnter, Press: true}
	case '\b':
		return KeyEvent{Code: KeyBackspace, Press: true}
	case 0x1b:
		return KeyEvent{Code: KeyEscape, Press: true}
	default:
		return KeyEvent{Press: true, Rune: r}
	}
}
