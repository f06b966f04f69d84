package calculator

import (
	"image/color"
	"strings"
	"unicode/utf8"

	"sparkcalc/hal"
	"sparkcalc/sparkos/calc"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

var (
	colorBG        = color.RGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}
	colorFG        = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	colorDim       = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
	colorField     = color.RGBA{R: 0xf4, G: 0xf4, B: 0xe8, A: 0xff}
	colorFieldOff  = color.RGBA{R: 0x3a, G: 0x3a, B: 0x36, A: 0xff}
	colorFieldText = color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}
	colorErrorText = color.RGBA{R: 0xc0, G: 0x10, B: 0x10, A: 0xff}
	colorTapeBG    = color.RGBA{R: 0, G: 0, B: 0, A: 0xff}
	colorFocus     = color.RGBA{R: 0xff, G: 0xc8, B: 0x30, A: 0xff}
)

var buttonColors = [...]struct{ bg, fg color.RGBA }{
	styleDigit:    {color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff}, colorFG},
	styleOperator: {color.RGBA{R: 0x5a, G: 0x5a, B: 0x66, A: 0xff}, colorFG},
	styleFunction: {color.RGBA{R: 0x30, G: 0x30, B: 0x38, A: 0xff}, colorFG},
	styleClear:    {color.RGBA{R: 0xd0, G: 0x20, B: 0x20, A: 0xff}, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
	styleMemory:   {color.RGBA{R: 0x20, G: 0x40, B: 0xd0, A: 0xff}, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
	stylePower:    {color.RGBA{R: 0x20, G: 0x70, B: 0x30, A: 0xff}, colorFG},
}

// Screen regions above the keypad.
const (
	marginX = 4

	annotationBaseline = 16

	fieldY = 22
	fieldH = 40

	tapeY          = 68
	tapeH          = keypadTop - tapeY - 4
	tapeFontHeight = 12
	tapeFontOffset = 9
)

// The bundled fonts are 7-bit; keypad symbols outside ASCII are spelled out.
var asciiText = strings.NewReplacer("√", "sqrt", "²", "^2", "π", "pi")

type fbDisplay struct {
	fb hal.Framebuffer
}

func newFBDisplay(fb hal.Framebuffer) *fbDisplay {
	return &fbDisplay{fb: fb}
}

func (d *fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}

	pixel := rgb565From888(c.R, c.G, c.B)
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d *fbDisplay) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *fbDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return nil
	}

	w := d.fb.Width()
	h := d.fb.Height()

	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	pixel := rgb565From888(c.R, c.G, c.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)

	stride := d.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
	return nil
}

func (d *fbDisplay) SetScroll(line int16) {
	_ = line
}

func (d *fbDisplay) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

// regionDisplay exposes a clipped sub-rectangle of the framebuffer as its own
// display so the history terminal cannot draw over the keypad.
type regionDisplay struct {
	base *fbDisplay
	x, y int16
	w, h int16
}

func (r *regionDisplay) Size() (x, y int16) { return r.w, r.h }

func (r *regionDisplay) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || x >= r.w || y < 0 || y >= r.h {
		return
	}
	r.base.SetPixel(r.x+x, r.y+y, c)
}

// Display is a no-op; the task presents the whole frame once.
func (r *regionDisplay) Display() error { return nil }

func (r *regionDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	x0 := int16(clampInt(int(x), 0, int(r.w)))
	y0 := int16(clampInt(int(y), 0, int(r.h)))
	x1 := int16(clampInt(int(x)+int(width), 0, int(r.w)))
	y1 := int16(clampInt(int(y)+int(height), 0, int(r.h)))
	if x0 >= x1 || y0 >= y1 {
		return nil
	}
	return r.base.FillRectangle(r.x+x0, r.y+y0, x1-x0, y1-y0, c)
}

func (r *regionDisplay) SetScroll(line int16) {
	_ = line
}

func (r *regionDisplay) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (t *Task) initRender() bool {
	t.d = newFBDisplay(t.fb)
	t.w, t.h = t.fb.Width(), t.fb.Height()
	if t.w <= 0 || t.h <= 0 {
		return false
	}

	t.tapeRegion = &regionDisplay{
		base: t.d,
		x:    marginX,
		y:    tapeY,
		w:    int16(t.w - 2*marginX),
		h:    tapeH,
	}
	t.tape = tinyterm.NewTerminal(t.tapeRegion)

	_, outboxWidth := tinyfont.LineWidth(&proggy.TinySZ8pt7b, "0")
	if outboxWidth == 0 {
		return false
	}
	t.tapeCols = int(t.tapeRegion.w) / int(outboxWidth)
	return true
}

func (t *Task) render() {
	if t.d == nil {
		return
	}
	_ = t.d.FillRectangle(0, 0, int16(t.w), int16(t.h), colorBG)

	t.drawAnnotation()
	t.drawField()
	t.drawTape()
	t.drawKeypad()

	_ = t.d.Display()
}

func (t *Task) drawAnnotation() {
	if t.session.Off() {
		return
	}
	s := asciiText.Replace(t.session.Annotation())
	tinyfont.WriteLine(t.d, &proggy.TinySZ8pt7b, marginX, annotationBaseline, s, colorDim)
}

// drawField draws the display value right-aligned. Values wider than the
// field keep their rightmost digits.
func (t *Task) drawField() {
	fieldW := int16(t.w - 2*marginX)
	if t.session.Off() {
		_ = t.d.FillRectangle(marginX, fieldY, fieldW, fieldH, colorFieldOff)
		return
	}
	_ = t.d.FillRectangle(marginX, fieldY, fieldW, fieldH, colorField)

	s := asciiText.Replace(t.session.Display())
	if s == "" {
		return
	}
	fg := colorFieldText
	if t.session.Err() != nil {
		fg = colorErrorText
	}

	font := &freemono.Bold12pt7b
	maxW := uint32(fieldW - 8)
	_, w := tinyfont.LineWidth(font, s)
	for w > maxW && len(s) > 1 {
		_, size := utf8.DecodeRuneInString(s)
		s = s[size:]
		_, w = tinyfont.LineWidth(font, s)
	}
	x := marginX + fieldW - 4 - int16(w)
	tinyfont.WriteLine(t.d, font, x, fieldY+fieldH-12, s, fg)
}

// drawTape writes the visible history records into the tape terminal,
// oldest first.
func (t *Task) drawTape() {
	_ = t.tapeRegion.FillRectangle(0, 0, t.tapeRegion.w, t.tapeRegion.h, colorTapeBG)
	t.tape.Configure(&tinyterm.Config{
		Font:              &proggy.TinySZ8pt7b,
		FontHeight:        tapeFontHeight,
		FontOffset:        tapeFontOffset,
		UseSoftwareScroll: true,
	})

	recent := t.session.Recent()
	var sb strings.Builder
	for i, rec := range recent {
		if i > 0 {
			sb.WriteString("\r\n")
		}
		sb.WriteString(clipRunes(asciiText.Replace(rec), t.tapeCols-1))
	}
	if sb.Len() > 0 {
		_, _ = t.tape.Write([]byte(sb.String()))
	}
}

func (t *Task) drawKeypad() {
	off := t.session.Off()
	for i, b := range keypad {
		x, y, w, h := b.rect()
		c := buttonColors[b.style]
		bg, fg := c.bg, c.fg
		if off && b.label != calc.KeyOn {
			bg, fg = colorBG, colorDim
		}
		if i == t.focus {
			_ = t.d.FillRectangle(int16(x-cellInset), int16(y-cellInset), int16(w+2*cellInset), int16(h+2*cellInset), colorFocus)
		}
		_ = t.d.FillRectangle(int16(x), int16(y), int16(w), int16(h), bg)

		label := asciiText.Replace(b.label)
		font := &freemono.Regular9pt7b
		_, lw := tinyfont.LineWidth(font, label)
		lx := int16(x) + (int16(w)-int16(lw))/2
		tinyfont.WriteLine(t.d, font, lx, int16(y+h/2+5), label, fg)
	}
}

func clipRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for count := 0; count < n; count++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i]
}
