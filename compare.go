package softfloat

// L5: relational operators, translated from the float32_eq/lt/le and
// floatx80_* comparison family in original_source/bochs/cpu/softfloat.cc.
//
// The "quiet" variants never raise Invalid for a quiet NaN operand (only
// a signaling one); the non-quiet eq/lt/le variants raise Invalid for
// either NaN kind, per IEEE 754's predicate vs. signaling-predicate
// distinction.

// -- Float32 --

func denormalFloat32(a Float32) bool { return ClassifyFloat32(a) == ClassDenormal }

// Eq32 reports whether a == b, raising Invalid if either is any NaN.
func Eq32(a, b Float32, s *Status) bool {
	if isNaNFloat32(a) || isNaNFloat32(b) {
		s.raise(Invalid)
		return false
	}
	if denormalFloat32(a) || denormalFloat32(b) {
		s.raise(Denormal)
	}
	return eqFloat32Bits(a, b)
}

// EqSignaling32 reports whether a == b, raising Invalid if either is
// any NaN.
func EqSignaling32(a, b Float32, s *Status) bool {
	if isNaNFloat32(a) || isNaNFloat32(b) {
		s.raise(Invalid)
		return false
	}
	if denormalFloat32(a) || denormalFloat32(b) {
		s.raise(Denormal)
	}
	return eqFloat32Bits(a, b)
}

func eqFloat32Bits(a, b Float32) bool {
	return uint32(a) == uint32(b) || (uint32(a)|uint32(b))<<1 == 0
}

// Lt32 reports whether a < b, raising Invalid if either is any NaN.
func Lt32(a, b Float32, s *Status) bool {
	if isNaNFloat32(a) || isNaNFloat32(b) {
		s.raise(Invalid)
		return false
	}
	if denormalFloat32(a) || denormalFloat32(b) {
		s.raise(Denormal)
	}
	return ltFloat32Bits(a, b)
}

// LtQuiet32 reports whether a < b, raising Invalid only for a
// signaling NaN operand.
func LtQuiet32(a, b Float32, s *Status) bool {
	if IsSignalingNaNFloat32(a) || IsSignalingNaNFloat32(b) {
		s.raise(Invalid)
		return false
	}
	if isNaNFloat32(a) || isNaNFloat32(b) {
		return false
	}
	if denormalFloat32(a) || denormalFloat32(b) {
		s.raise(Denormal)
	}
	return ltFloat32Bits(a, b)
}

func ltFloat32Bits(a, b Float32) bool {
	aSign, bSign := float32Sign(a), float32Sign(b)
	if aSign != bSign {
		return aSign != 0 && (uint32(a)|uint32(b))<<1 != 0
	}
	if aSign != 0 {
		return uint32(a) > uint32(b)
	}
	return uint32(a) < uint32(b)
}

// Le32 reports whether a <= b, raising Invalid if either is any NaN.
func Le32(a, b Float32, s *Status) bool {
	if isNaNFloat32(a) || isNaNFloat32(b) {
		s.raise(Invalid)
		return false
	}
	if denormalFloat32(a) || denormalFloat32(b) {
		s.raise(Denormal)
	}
	return leFloat32Bits(a, b)
}

// LeQuiet32 reports whether a <= b, raising Invalid only for a
// signaling NaN operand.
func LeQuiet32(a, b Float32, s *Status) bool {
	if IsSignalingNaNFloat32(a) || IsSignalingNaNFloat32(b) {
		s.raise(Invalid)
		return false
	}
	if isNaNFloat32(a) || isNaNFloat32(b) {
		return false
	}
	if denormalFloat32(a) || denormalFloat32(b) {
		s.raise(Denormal)
	}
	return leFloat32Bits(a, b)
}

func leFloat32Bits(a, b Float32) bool {
	aSign, bSign := float32Sign(a), float32Sign(b)
	if aSign != bSign {
		return aSign != 0 || (uint32(a)|uint32(b))<<1 == 0
	}
	if aSign != 0 {
		return uint32(a) >= uint32(b)
	}
	return uint32(a) <= uint32(b)
}

// Unordered32 reports whether a or b is any NaN, without raising Invalid.
func Unordered32(a, b Float32, s *Status) bool {
	if isNaNFloat32(a) || isNaNFloat32(b) {
		return true
	}
	if denormalFloat32(a) || denormalFloat32(b) {
		s.raise(Denormal)
	}
	return false
}

// Compare32 returns -1, 0, or 1 per a's relation to b, and a third
// return value reporting unordered (any NaN operand); raises Invalid
// for any NaN operand.
func Compare32(a, b Float32, s *Status) (cmp int, unordered bool) {
	if isNaNFloat32(a) || isNaNFloat32(b) {
		s.raise(Invalid)
		return 0, true
	}
	if denormalFloat32(a) || denormalFloat32(b) {
		s.raise(Denormal)
	}
	return compare32Ordered(a, b), false
}

// CompareQuiet32 is Compare32 but raises Invalid only for a signaling
// NaN operand.
func CompareQuiet32(a, b Float32, s *Status) (cmp int, unordered bool) {
	if IsSignalingNaNFloat32(a) || IsSignalingNaNFloat32(b) {
		s.raise(Invalid)
		return 0, true
	}
	if isNaNFloat32(a) || isNaNFloat32(b) {
		return 0, true
	}
	if denormalFloat32(a) || denormalFloat32(b) {
		s.raise(Denormal)
	}
	return compare32Ordered(a, b), false
}

func compare32Ordered(a, b Float32) int {
	switch {
	case eqFloat32Bits(a, b):
		return 0
	case ltFloat32Bits(a, b):
		return -1
	default:
		return 1
	}
}

// -- Float64 --

func denormalFloat64(a Float64) bool { return ClassifyFloat64(a) == ClassDenormal }

// Eq64 reports whether a == b, raising Invalid if either is any NaN.
func Eq64(a, b Float64, s *Status) bool {
	if isNaNFloat64(a) || isNaNFloat64(b) {
		s.raise(Invalid)
		return false
	}
	if denormalFloat64(a) || denormalFloat64(b) {
		s.raise(Denormal)
	}
	return eqFloat64Bits(a, b)
}

// EqSignaling64 reports whether a == b, raising Invalid if either is
// any NaN.
func EqSignaling64(a, b Float64, s *Status) bool {
	if isNaNFloat64(a) || isNaNFloat64(b) {
		s.raise(Invalid)
		return false
	}
	if denormalFloat64(a) || denormalFloat64(b) {
		s.raise(Denormal)
	}
	return eqFloat64Bits(a, b)
}

func eqFloat64Bits(a, b Float64) bool {
	return uint64(a) == uint64(b) || (uint64(a)|uint64(b))<<1 == 0
}

// Lt64 reports whether a < b, raising Invalid if either is any NaN.
func Lt64(a, b Float64, s *Status) bool {
	if isNaNFloat64(a) || isNaNFloat64(b) {
		s.raise(Invalid)
		return false
	}
	if denormalFloat64(a) || denormalFloat64(b) {
		s.raise(Denormal)
	}
	return ltFloat64Bits(a, b)
}

// LtQuiet64 reports whether a < b, raising Invalid only for a
// signaling NaN operand.
func LtQuiet64(a, b Float64, s *Status) bool {
	if IsSignalingNaNFloat64(a) || IsSignalingNaNFloat64(b) {
		s.raise(Invalid)
		return false
	}
	if isNaNFloat64(a) || isNaNFloat64(b) {
		return false
	}
	if denormalFloat64(a) || denormalFloat64(b) {
		s.raise(Denormal)
	}
	return ltFloat64Bits(a, b)
}

func ltFloat64Bits(a, b Float64) bool {
	aSign, bSign := float64Sign(a), float64Sign(b)
	if aSign != bSign {
		return aSign != 0 && (uint64(a)|uint64(b))<<1 != 0
	}
	if aSign != 0 {
		return uint64(a) > uint64(b)
	}
	return uint64(a) < uint64(b)
}

// Le64 reports whether a <= b, raising Invalid if either is any NaN.
func Le64(a, b Float64, s *Status) bool {
	if isNaNFloat64(a) || isNaNFloat64(b) {
		s.raise(Invalid)
		return false
	}
	if denormalFloat64(a) || denormalFloat64(b) {
		s.raise(Denormal)
	}
	return leFloat64Bits(a, b)
}

// LeQuiet64 reports whether a <= b, raising Invalid only for a
// signaling NaN operand.
func LeQuiet64(a, b Float64, s *Status) bool {
	if IsSignalingNaNFloat64(a) || IsSignalingNaNFloat64(b) {
		s.raise(Invalid)
		return false
	}
	if isNaNFloat64(a) || isNaNFloat64(b) {
		return false
	}
	if denormalFloat64(a) || denormalFloat64(b) {
		s.raise(Denormal)
	}
	return leFloat64Bits(a, b)
}

func leFloat64Bits(a, b Float64) bool {
	aSign, bSign := float64Sign(a), float64Sign(b)
	if aSign != bSign {
		return aSign != 0 || (uint64(a)|uint64(b))<<1 == 0
	}
	if aSign != 0 {
		return uint64(a) >= uint64(b)
	}
	return uint64(a) <= uint64(b)
}

// Unordered64 reports whether a or b is any NaN, without raising Invalid.
func Unordered64(a, b Float64, s *Status) bool {
	if isNaNFloat64(a) || isNaNFloat64(b) {
		return true
	}
	if denormalFloat64(a) || denormalFloat64(b) {
		s.raise(Denormal)
	}
	return false
}

// Compare64 returns -1, 0, or 1 per a's relation to b, and a third
// return value reporting unordered (any NaN operand); raises Invalid
// for any NaN operand.
func Compare64(a, b Float64, s *Status) (cmp int, unordered bool) {
	if isNaNFloat64(a) || isNaNFloat64(b) {
		s.raise(Invalid)
		return 0, true
	}
	if denormalFloat64(a) || denormalFloat64(b) {
		s.raise(Denormal)
	}
	return compare64Ordered(a, b), false
}

// CompareQuiet64 is Compare64 but raises Invalid only for a signaling
// NaN operand.
func CompareQuiet64(a, b Float64, s *Status) (cmp int, unordered bool) {
	if IsSignalingNaNFloat64(a) || IsSignalingNaNFloat64(b) {
		s.raise(Invalid)
		return 0, true
	}
	if isNaNFloat64(a) || isNaNFloat64(b) {
		return 0, true
	}
	if denormalFloat64(a) || denormalFloat64(b) {
		s.raise(Denormal)
	}
	return compare64Ordered(a, b), false
}

func compare64Ordered(a, b Float64) int {
	switch {
	case eqFloat64Bits(a, b):
		return 0
	case ltFloat64Bits(a, b):
		return -1
	default:
		return 1
	}
}

// -- Extended --

func denormalExtended(a Extended) bool { return ClassifyExtended(a) == ClassDenormal }

// EqExtended reports whether a == b, raising Invalid if either is any NaN.
func EqExtended(a, b Extended, s *Status) bool {
	if isNaNExtended(a) || isNaNExtended(b) {
		s.raise(Invalid)
		return false
	}
	if denormalExtended(a) || denormalExtended(b) {
		s.raise(Denormal)
	}
	return eqExtendedBits(a, b)
}

// EqSignalingExtended reports whether a == b, raising Invalid if either
// is any NaN.
func EqSignalingExtended(a, b Extended, s *Status) bool {
	if isNaNExtended(a) || isNaNExtended(b) {
		s.raise(Invalid)
		return false
	}
	if denormalExtended(a) || denormalExtended(b) {
		s.raise(Denormal)
	}
	return eqExtendedBits(a, b)
}

func eqExtendedBits(a, b Extended) bool {
	if a.Mant == b.Mant && a.SignExp == b.SignExp {
		return true
	}
	return a.Mant == 0 && b.Mant == 0 && (a.SignExp|b.SignExp)<<1 == 0
}

// LtExtended reports whether a < b, raising Invalid if either is any NaN.
func LtExtended(a, b Extended, s *Status) bool {
	if isNaNExtended(a) || isNaNExtended(b) {
		s.raise(Invalid)
		return false
	}
	if denormalExtended(a) || denormalExtended(b) {
		s.raise(Denormal)
	}
	return ltExtendedOrdered(a, b)
}

// LtQuietExtended reports whether a < b, raising Invalid only for a
// signaling NaN operand.
func LtQuietExtended(a, b Extended, s *Status) bool {
	if IsSignalingNaNExtended(a) || IsSignalingNaNExtended(b) {
		s.raise(Invalid)
		return false
	}
	if isNaNExtended(a) || isNaNExtended(b) {
		return false
	}
	if denormalExtended(a) || denormalExtended(b) {
		s.raise(Denormal)
	}
	return ltExtendedOrdered(a, b)
}

// LeExtended reports whether a <= b, raising Invalid if either is any NaN.
func LeExtended(a, b Extended, s *Status) bool {
	if isNaNExtended(a) || isNaNExtended(b) {
		s.raise(Invalid)
		return false
	}
	if denormalExtended(a) || denormalExtended(b) {
		s.raise(Denormal)
	}
	cmp := compareExtendedOrdered(a, b)
	return cmp <= 0
}

// LeQuietExtended reports whether a <= b, raising Invalid only for a
// signaling NaN operand.
func LeQuietExtended(a, b Extended, s *Status) bool {
	if IsSignalingNaNExtended(a) || IsSignalingNaNExtended(b) {
		s.raise(Invalid)
		return false
	}
	if isNaNExtended(a) || isNaNExtended(b) {
		return false
	}
	if denormalExtended(a) || denormalExtended(b) {
		s.raise(Denormal)
	}
	return compareExtendedOrdered(a, b) <= 0
}

// UnorderedExtended reports whether a or b is any NaN, without raising
// Invalid.
func UnorderedExtended(a, b Extended, s *Status) bool {
	if isNaNExtended(a) || isNaNExtended(b) {
		return true
	}
	if denormalExtended(a) || denormalExtended(b) {
		s.raise(Denormal)
	}
	return false
}

// CompareExtended returns -1, 0, or 1 per a's relation to b, and a
// third return value reporting unordered (any NaN operand); raises
// Invalid for any NaN operand.
func CompareExtended(a, b Extended, s *Status) (cmp int, unordered bool) {
	if isNaNExtended(a) || isNaNExtended(b) {
		s.raise(Invalid)
		return 0, true
	}
	if denormalExtended(a) || denormalExtended(b) {
		s.raise(Denormal)
	}
	return compareExtendedOrdered(a, b), false
}

// CompareQuietExtended is CompareExtended but raises Invalid only for
// a signaling NaN operand.
func CompareQuietExtended(a, b Extended, s *Status) (cmp int, unordered bool) {
	if IsSignalingNaNExtended(a) || IsSignalingNaNExtended(b) {
		s.raise(Invalid)
		return 0, true
	}
	if isNaNExtended(a) || isNaNExtended(b) {
		return 0, true
	}
	if denormalExtended(a) || denormalExtended(b) {
		s.raise(Denormal)
	}
	return compareExtendedOrdered(a, b), false
}

func ltExtendedOrdered(a, b Extended) bool {
	return compareExtendedOrdered(a, b) < 0
}

// compareExtendedOrdered assumes neither operand is a NaN. It compares
// sign, then biased exponent, then mantissa, mirroring the ordering the
// single/double comparisons get directly from their packed words —
// Extended keeps sign and magnitude in separate fields, so there is no
// single packed-word compare to borrow.
func compareExtendedOrdered(a, b Extended) int {
	aSign, bSign := extendedSign(a), extendedSign(b)
	aZero := extendedExp(a) == 0 && a.Mant == 0
	bZero := extendedExp(b) == 0 && b.Mant == 0
	if aZero && bZero {
		return 0
	}
	if aSign != bSign {
		if aZero && bZero {
			return 0
		}
		if aSign != 0 {
			return -1
		}
		return 1
	}
	aExp, bExp := extendedExp(a), extendedExp(b)
	var mag int
	switch {
	case aExp != bExp:
		if aExp < bExp {
			mag = -1
		} else {
			mag = 1
		}
	case a.Mant == b.Mant:
		mag = 0
	case a.Mant < b.Mant:
		mag = -1
	default:
		mag = 1
	}
	if aSign != 0 {
		return -mag
	}
	return mag
}
