package proto

import "unicode/utf8"

// MaxKeySymbolBytes bounds a MsgCalcPress payload.
const MaxKeySymbolBytes = 16

// CalcPressPayload encodes a keypad symbol ("7", "sin", "M+") for MsgCalcPress.
func CalcPressPayload(symbol string) ([]byte, bool) {
	if symbol == "" || len(symbol) > MaxKeySymbolBytes || !utf8.ValidString(symbol) {
		return nil, false
	}
	return []byte(symbol), true
}

// DecodeCalcPressPayload decodes a MsgCalcPress payload.
func DecodeCalcPressPayload(b []byte) (symbol string, ok bool) {
	if len(b) == 0 || len(b) > MaxKeySymbolBytes || !utf8.Valid(b) {
		return "", false
	}
	return string(b), true
}
