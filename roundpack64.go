package softfloat

// L3: double-precision round-and-pack, translated from
// roundAndPackFloat64 in original_source/bochs/cpu/softfloat.cc. zSig
// carries the 53-bit significand (implicit bit at bit 62) followed by
// 10 guard/round/sticky bits. exp is one less than the result's biased
// exponent: the implicit bit is added into the exponent field when the
// result is packed, so a rounding carry out of the significand bumps
// the exponent.

func roundAndPackFloat64(sign uint64, exp int32, sig uint64, s *Status) Float64 {
	roundNearestEven := s.Rounding == RoundNearestEven
	roundIncrement := uint64(0x200)
	if !roundNearestEven {
		switch s.Rounding {
		case RoundToZero:
			roundIncrement = 0
		default:
			roundIncrement = 0x3FF
			if sign != 0 {
				if s.Rounding == RoundUp {
					roundIncrement = 0
				}
			} else if s.Rounding == RoundDown {
				roundIncrement = 0
			}
		}
	}
	roundBits := sig & 0x3FF
	if uint32(exp) >= 0x7FD {
		if exp > 0x7FD || (exp == 0x7FD && int64(sig+roundIncrement) < 0) {
			s.raise(Overflow | Inexact)
			result := packFloat64(sign, 0x7FF, 0)
			if roundIncrement == 0 {
				result--
			}
			return result
		}
		if exp < 0 {
			isTiny := s.Tininess == TininessBeforeRounding || exp < -1 || sig+roundIncrement < 0x8000000000000000
			sig = shift64RightJamming(sig, uint(-exp))
			exp = 0
			roundBits = sig & 0x3FF
			if isTiny && roundBits != 0 {
				s.raise(Underflow)
				if s.FlushUnderflowToZero {
					s.raise(Inexact)
					return packFloat64(sign, 0, 0)
				}
			}
		}
	}
	if roundBits != 0 {
		s.raise(Inexact)
	}
	sig = (sig + roundIncrement) >> 10
	if roundNearestEven && roundBits^0x200 == 0 {
		sig &^= 1
	}
	if sig == 0 {
		exp = 0
	}
	return Float64(sign<<63 + uint64(exp)<<52 + sig)
}

// normalizeRoundAndPackFloat64 normalizes an unnormalized significand
// before delegating to round-and-pack.
func normalizeRoundAndPackFloat64(sign uint64, exp int32, sig uint64, s *Status) Float64 {
	if sig == 0 {
		return packFloat64(sign, 0, 0)
	}
	shift := countLeadingZeros64(sig) - 1
	return roundAndPackFloat64(sign, exp-int32(shift), sig<<shift, s)
}
