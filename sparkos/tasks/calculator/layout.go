package calculator

import "sparkcalc/sparkos/calc"

type buttonStyle uint8

const (
	styleDigit buttonStyle = iota
	styleOperator
	styleFunction
	styleClear
	styleMemory
	stylePower
)

type button struct {
	label string
	col   int
	row   int
	style buttonStyle
}

const (
	gridCols = 5
	gridRows = 8

	cellW = 64
	cellH = 40

	// keypadTop leaves room for the annotation, the display field and the
	// history tape.
	keypadTop = 156
	cellInset = 2
)

// keypad mirrors the desktop calculator's button grid. The last row carries
// the power keys next to the memory keys.
var keypad = []button{
	{calc.KeyClear, 0, 0, styleClear},
	{calc.KeyDelete, 1, 0, styleClear},
	{"10^x", 2, 0, styleFunction},
	{calc.KeyPi, 3, 0, styleFunction},
	{"x^y", 4, 0, styleOperator},

	{"|x|", 0, 1, styleFunction},
	{"x²", 1, 1, styleFunction},
	{"1/x", 2, 1, styleFunction},
	{"√", 3, 1, styleFunction},
	{"-", 4, 1, styleOperator},

	{"sin", 0, 2, styleFunction},
	{"cos", 1, 2, styleFunction},
	{"tan", 2, 2, styleFunction},
	{"x", 3, 2, styleOperator},
	{"/", 4, 2, styleOperator},

	{"7", 0, 3, styleDigit},
	{"8", 1, 3, styleDigit},
	{"9", 2, 3, styleDigit},
	{"log", 3, 3, styleFunction},
	{"+", 4, 3, styleOperator},

	{"4", 0, 4, styleDigit},
	{"5", 1, 4, styleDigit},
	{"6", 2, 4, styleDigit},
	{"ln", 3, 4, styleFunction},
	{"x!", 4, 4, styleFunction},

	{"1", 0, 5, styleDigit},
	{"2", 1, 5, styleDigit},
	{"3", 2, 5, styleDigit},
	{"e", 3, 5, styleFunction},
	{"mod", 4, 5, styleOperator},

	{calc.KeyPoint, 0, 6, styleDigit},
	{"0", 1, 6, styleDigit},
	{"+/-", 2, 6, styleFunction},
	{calc.KeyMemAdd, 3, 6, styleMemory},
	{calc.KeyEquals, 4, 6, styleOperator},

	{calc.KeyMemSub, 0, 7, styleMemory},
	{calc.KeyMemRecall, 1, 7, styleMemory},
	{calc.KeyMemClear, 2, 7, styleMemory},
	{calc.KeyOn, 3, 7, stylePower},
	{calc.KeyOff, 4, 7, stylePower},
}

func (b button) rect() (x, y, w, h int) {
	return b.col*cellW + cellInset, keypadTop + b.row*cellH + cellInset, cellW - 2*cellInset, cellH - 2*cellInset
}

// hitTest returns the keypad index under (x, y). Presses on the gap between
// two buttons miss.
func hitTest(x, y int) (int, bool) {
	for i, b := range keypad {
		bx, by, bw, bh := b.rect()
		if x >= bx && x < bx+bw && y >= by && y < by+bh {
			return i, true
		}
	}
	return -1, false
}

func buttonAt(col, row int) (int, bool) {
	for i, b := range keypad {
		if b.col == col && b.row == row {
			return i, true
		}
	}
	return -1, false
}

func buttonIndex(label string) (int, bool) {
	for i, b := range keypad {
		if b.label == label {
			return i, true
		}
	}
	return -1, false
}

// moveFocus steps the focus ring by (dx, dy) grid cells, wrapping at the
// keypad edges.
func moveFocus(focus, dx, dy int) int {
	if focus < 0 || focus >= len(keypad) {
		return 0
	}
	b := keypad[focus]
	col := (b.col + dx + gridCols) % gridCols
	row := (b.row + dy + gridRows) % gridRows
	if i, ok := buttonAt(col, row); ok {
		return i
	}
	return focus
}
