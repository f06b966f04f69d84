package calc

// Tag identifies one calculator operation.
type Tag uint8

const (
	TagInvalid Tag = iota

	// Binary family.
	Add
	Subtract
	Multiply
	Divide
	Modulus
	Power

	// Unary family.
	Sine
	Cosine
	Tangent
	Log10
	NaturalLog
	ExpBaseE
	Square
	Reciprocal
	SquareRoot
	Negate
	Factorial
	PiConstant
	TenPower
	AbsoluteValue

	tagCount
)

// Family partitions tags by operand count.
type Family uint8

const (
	FamilyNone Family = iota
	FamilyBinary
	FamilyUnary
)

func (f Family) String() string {
	switch f {
	case FamilyBinary:
		return "binary"
	case FamilyUnary:
		return "unary"
	default:
		return "none"
	}
}

type opInfo struct {
	name   string
	symbol string
	family Family
	// label renders the annotation text for an operand already formatted
	// with FormatOperand.
	label func(x string) string
}

var ops = [tagCount]opInfo{
	Add:      {name: "ADD", symbol: "+", family: FamilyBinary},
	Subtract: {name: "SUBTRACT", symbol: "-", family: FamilyBinary},
	Multiply: {name: "MULTIPLY", symbol: "x", family: FamilyBinary},
	Divide:   {name: "DIVIDE", symbol: "/", family: FamilyBinary},
	Modulus:  {name: "MODULUS", symbol: "mod", family: FamilyBinary},
	Power:    {name: "POWER", symbol: "x^y", family: FamilyBinary},

	Sine:          {name: "SIN", symbol: "sin", family: FamilyUnary, label: func(x string) string { return "sin(" + x + ")" }},
	Cosine:        {name: "COS", symbol: "cos", family: FamilyUnary, label: func(x string) string { return "cos(" + x + ")" }},
	Tangent:       {name: "TAN", symbol: "tan", family: FamilyUnary, label: func(x string) string { return "tan(" + x + ")" }},
	Log10:         {name: "LOG", symbol: "log", family: FamilyUnary, label: func(x string) string { return "log(" + x + ")" }},
	NaturalLog:    {name: "LN", symbol: "ln", family: FamilyUnary, label: func(x string) string { return "ln(" + x + ")" }},
	ExpBaseE:      {name: "EXP", symbol: "e", family: FamilyUnary, label: func(x string) string { return "e^" + x }},
	Square:        {name: "SQUARE", symbol: "x²", family: FamilyUnary, label: func(x string) string { return "(" + x + ")²" }},
	Reciprocal:    {name: "RECIPROCAL", symbol: "1/x", family: FamilyUnary, label: func(x string) string { return "1/" + x }},
	SquareRoot:    {name: "SQRT", symbol: "√", family: FamilyUnary, label: func(x string) string { return "√" + x }},
	Negate:        {name: "NEGATE", symbol: "+/-", family: FamilyUnary, label: func(x string) string { return "(-" + x + ")" }},
	Factorial:     {name: "FACTORIAL", symbol: "x!", family: FamilyUnary, label: func(x string) string { return x + "!" }},
	PiConstant:    {name: "PI", symbol: "π", family: FamilyUnary, label: func(string) string { return "π" }},
	TenPower:      {name: "TEN_POWER", symbol: "10^x", family: FamilyUnary, label: func(x string) string { return "10^" + x }},
	AbsoluteValue: {name: "ABSOLUTE", symbol: "|x|", family: FamilyUnary, label: func(x string) string { return "|" + x + "|" }},
}

var bySymbol = func() map[string]Tag {
	m := make(map[string]Tag, len(ops))
	for i := Tag(1); i < tagCount; i++ {
		m[ops[i].symbol] = i
	}
	return m
}()

func (t Tag) valid() bool { return t > TagInvalid && t < tagCount }

// String returns the stable upper-case name used in history records.
func (t Tag) String() string {
	if !t.valid() {
		return "INVALID"
	}
	return ops[t].name
}

// Symbol returns the keypad symbol for the tag.
func (t Tag) Symbol() string {
	if !t.valid() {
		return ""
	}
	return ops[t].symbol
}

func (t Tag) Family() Family {
	if !t.valid() {
		return FamilyNone
	}
	return ops[t].family
}

func (t Tag) IsBinary() bool { return t.Family() == FamilyBinary }
func (t Tag) IsUnary() bool  { return t.Family() == FamilyUnary }

// Label renders the annotation for the tag applied to x.
//
// Binary tags render the pending form "x <symbol>".
func (t Tag) Label(x string) string {
	if !t.valid() {
		panic(&UnsupportedOperationError{Tag: t})
	}
	info := ops[t]
	if info.family == FamilyBinary {
		return x + " " + info.symbol
	}
	return info.label(x)
}

// Lookup maps a keypad symbol to its tag.
func Lookup(symbol string) (Tag, bool) {
	t, ok := bySymbol[symbol]
	return t, ok
}

// MustLookup is like Lookup but panics on unknown symbols.
func MustLookup(symbol string) Tag {
	t, ok := bySymbol[symbol]
	if !ok {
		panic(&UnknownOperationError{Symbol: symbol})
	}
	return t
}

// Tags returns every tag of the family in declaration order.
func Tags(f Family) []Tag {
	var out []Tag
	for i := Tag(1); i < tagCount; i++ {
		if ops[i].family == f {
			out = append(out, i)
		}
	}
	return out
}
