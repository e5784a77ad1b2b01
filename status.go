package softfloat

// RoundingMode selects how an infinitely precise result is rounded
// onto the destination format's representable grid.
type RoundingMode int

const (
	RoundNearestEven RoundingMode = iota
	RoundDown
	RoundUp
	RoundToZero
)

func (m RoundingMode) String() string {
	switch m {
	case RoundNearestEven:
		return "nearest_even"
	case RoundDown:
		return "downward"
	case RoundUp:
		return "upward"
	case RoundToZero:
		return "toward_zero"
	default:
		return "unknown_rounding_mode"
	}
}

// TininessMode selects when a subnormal result is classified as tiny
// for the purpose of raising Underflow.
type TininessMode int

const (
	TininessAfterRounding TininessMode = iota
	TininessBeforeRounding
)

// RoundingPrecision constrains the significand width of an Extended
// result to 32, 64, or 80 bits while the result stays packed in the
// 80-bit container. Float32/Float64 operations ignore it.
type RoundingPrecision int

const (
	Precision32 RoundingPrecision = 32
	Precision64 RoundingPrecision = 64
	Precision80 RoundingPrecision = 80
)

// Exception is a sticky IEEE-754 exception flag. Bit positions match
// the x87 status word's exception bits (IE, DE, ZE, OE, UE, PE).
type Exception uint8

const (
	Invalid Exception = 1 << iota
	Denormal
	DivideByZero
	Overflow
	Underflow
	Inexact
)

func (e Exception) String() string {
	names := [...]struct {
		bit  Exception
		name string
	}{
		{Invalid, "invalid"},
		{Denormal, "denormal"},
		{DivideByZero, "divide_by_zero"},
		{Overflow, "overflow"},
		{Underflow, "underflow"},
		{Inexact, "inexact"},
	}
	s := ""
	for _, n := range names {
		if e&n.bit != 0 {
			if s != "" {
				s += "|"
			}
			s += n.name
		}
	}
	if s == "" {
		return "none"
	}
	return s
}

// Status carries the rounding configuration and the sticky exception
// register for a sequence of operations. The caller owns it; the core
// never clears flags on its own.
type Status struct {
	Rounding             RoundingMode
	RoundingPrecision    RoundingPrecision
	Tininess             TininessMode
	FlushUnderflowToZero bool
	Exceptions           Exception
}

// NewStatus returns a Status reset the way hardware FPUs reset:
// round to nearest-even, full extended precision, tininess detected
// after rounding, flush-to-zero disabled, no flags set.
func NewStatus() *Status {
	return &Status{
		Rounding:          RoundNearestEven,
		RoundingPrecision: Precision80,
		Tininess:          TininessAfterRounding,
	}
}

func (s *Status) raise(e Exception) {
	s.Exceptions |= e
}

// Raise ORs additional exception flags into the sticky register.
func (s *Status) Raise(e Exception) { s.raise(e) }

// Test reports whether every flag in e is currently set.
func (s *Status) Test(e Exception) bool { return s.Exceptions&e == e }

// Clear zeroes the sticky exception register. The core never calls
// this itself.
func (s *Status) Clear() { s.Exceptions = 0 }

// Class identifies the IEEE-754 variant a value belongs to. A value
// belongs to exactly one class at any instant.
type Class int

const (
	ClassPositiveZero Class = iota
	ClassNegativeZero
	ClassPositiveInf
	ClassNegativeInf
	ClassDenormal
	ClassNormal
	ClassQuietNaN
	ClassSignalingNaN
)

func (c Class) String() string {
	switch c {
	case ClassPositiveZero:
		return "positive_zero"
	case ClassNegativeZero:
		return "negative_zero"
	case ClassPositiveInf:
		return "positive_inf"
	case ClassNegativeInf:
		return "negative_inf"
	case ClassDenormal:
		return "denormal"
	case ClassNormal:
		return "normalized"
	case ClassQuietNaN:
		return "quiet_nan"
	case ClassSignalingNaN:
		return "signaling_nan"
	default:
		return "unknown_class"
	}
}

// IsNaN reports whether c is either NaN variant.
func (c Class) IsNaN() bool { return c == ClassQuietNaN || c == ClassSignalingNaN }
