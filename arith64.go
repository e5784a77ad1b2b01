package softfloat

// L4: double-precision basic arithmetic, translated from
// addFloat64Sigs/subFloat64Sigs/float64_{add,sub,mul,div,rem,sqrt} in
// original_source/bochs/cpu/softfloat.cc.

func addFloat64Sigs(a, b Float64, zSign uint64, s *Status) Float64 {
	aSig, aExp := float64Frac(a), float64Exp(a)
	bSig, bExp := float64Frac(b), float64Exp(b)
	expDiff := aExp - bExp
	aSig <<= 9
	bSig <<= 9

	switch {
	case expDiff > 0:
		if aExp == float64MaxExp {
			if aSig != 0 {
				return nanPropagate64(a, b, s)
			}
			if bSig != 0 && bExp == 0 {
				s.raise(Denormal)
			}
			return a
		}
		if aExp == 0 && aSig != 0 {
			s.raise(Denormal)
		}
		if bExp == 0 {
			if bSig != 0 {
				s.raise(Denormal)
			}
			expDiff--
		} else {
			bSig |= 0x2000000000000000
		}
		bSig = shift64RightJamming(bSig, uint(expDiff))
	case expDiff < 0:
		if bExp == float64MaxExp {
			if bSig != 0 {
				return nanPropagate64(a, b, s)
			}
			if aSig != 0 && aExp == 0 {
				s.raise(Denormal)
			}
			return packFloat64(zSign, float64MaxExp, 0)
		}
		if bExp == 0 && bSig != 0 {
			s.raise(Denormal)
		}
		if aExp == 0 {
			if aSig != 0 {
				s.raise(Denormal)
			}
			expDiff++
		} else {
			aSig |= 0x2000000000000000
		}
		aSig = shift64RightJamming(aSig, uint(-expDiff))
		aExp = bExp
	default:
		if aExp == float64MaxExp {
			if aSig|bSig != 0 {
				return nanPropagate64(a, b, s)
			}
			return a
		}
		if aExp == 0 {
			if aSig|bSig != 0 {
				s.raise(Denormal)
			}
			return packFloat64(zSign, 0, (aSig+bSig)>>9)
		}
		zSig := uint64(0x4000000000000000) + aSig + bSig
		return roundAndPackFloat64(zSign, aExp, zSig, s)
	}
	zExp := aExp
	aSig |= 0x2000000000000000
	zSig := (aSig + bSig) << 1
	zExp--
	if int64(zSig) < 0 {
		zSig = aSig + bSig
		zExp++
	}
	return roundAndPackFloat64(zSign, zExp, zSig, s)
}

func subFloat64Sigs(a, b Float64, zSign uint64, s *Status) Float64 {
	aSig, aExp := float64Frac(a), float64Exp(a)
	bSig, bExp := float64Frac(b), float64Exp(b)
	expDiff := aExp - bExp
	aSig <<= 10
	bSig <<= 10

	switch {
	case expDiff > 0:
		if aExp == float64MaxExp {
			if aSig != 0 {
				return nanPropagate64(a, b, s)
			}
			if bSig != 0 && bExp == 0 {
				s.raise(Denormal)
			}
			return a
		}
		if aExp == 0 && aSig != 0 {
			s.raise(Denormal)
		}
		if bExp == 0 {
			if bSig != 0 {
				s.raise(Denormal)
			}
			expDiff--
		} else {
			bSig |= 0x4000000000000000
		}
		bSig = shift64RightJamming(bSig, uint(expDiff))
		aSig |= 0x4000000000000000
		return normalizeRoundAndPackFloat64(zSign, aExp-1, aSig-bSig, s)

	case expDiff < 0:
		if bExp == float64MaxExp {
			if bSig != 0 {
				return nanPropagate64(a, b, s)
			}
			if aSig != 0 && aExp == 0 {
				s.raise(Denormal)
			}
			return packFloat64(zSign^1, float64MaxExp, 0)
		}
		if bExp == 0 && bSig != 0 {
			s.raise(Denormal)
		}
		if aExp == 0 {
			if aSig != 0 {
				s.raise(Denormal)
			}
			expDiff++
		} else {
			aSig |= 0x4000000000000000
		}
		aSig = shift64RightJamming(aSig, uint(-expDiff))
		bSig |= 0x4000000000000000
		return normalizeRoundAndPackFloat64(zSign^1, bExp-1, bSig-aSig, s)

	default:
		if aExp == float64MaxExp {
			if aSig|bSig != 0 {
				return nanPropagate64(a, b, s)
			}
			s.raise(Invalid)
			return DefaultNaN64
		}
		if aExp == 0 {
			if aSig|bSig != 0 {
				s.raise(Denormal)
			}
			aExp, bExp = 1, 1
		}
		switch {
		case bSig < aSig:
			return normalizeRoundAndPackFloat64(zSign, aExp-1, aSig-bSig, s)
		case aSig < bSig:
			return normalizeRoundAndPackFloat64(zSign^1, bExp-1, bSig-aSig, s)
		default:
			if s.Rounding == RoundDown {
				return packFloat64(1, 0, 0)
			}
			return packFloat64(0, 0, 0)
		}
	}
}

// Add64 returns a + b rounded per s, raising s's exception flags.
func Add64(a, b Float64, s *Status) Float64 {
	aSign, bSign := float64Sign(a), float64Sign(b)
	if aSign == bSign {
		return addFloat64Sigs(a, b, aSign, s)
	}
	return subFloat64Sigs(a, b, aSign, s)
}

// Sub64 returns a - b rounded per s, raising s's exception flags.
func Sub64(a, b Float64, s *Status) Float64 {
	aSign, bSign := float64Sign(a), float64Sign(b)
	if aSign == bSign {
		return subFloat64Sigs(a, b, aSign, s)
	}
	return addFloat64Sigs(a, b, aSign, s)
}

// Mul64 returns a * b rounded per s, raising s's exception flags.
func Mul64(a, b Float64, s *Status) Float64 {
	aSig, aExp, aSign := float64Frac(a), float64Exp(a), float64Sign(a)
	bSig, bExp, bSign := float64Frac(b), float64Exp(b), float64Sign(b)
	zSign := aSign ^ bSign

	if aExp == float64MaxExp {
		if aSig != 0 || (bExp == float64MaxExp && bSig != 0) {
			return nanPropagate64(a, b, s)
		}
		if bExp == 0 && bSig == 0 {
			s.raise(Invalid)
			return DefaultNaN64
		}
		if bSig != 0 && bExp == 0 {
			s.raise(Denormal)
		}
		return packFloat64(zSign, float64MaxExp, 0)
	}
	if bExp == float64MaxExp {
		if bSig != 0 {
			return nanPropagate64(a, b, s)
		}
		if aExp == 0 && aSig == 0 {
			s.raise(Invalid)
			return DefaultNaN64
		}
		if aSig != 0 && aExp == 0 {
			s.raise(Denormal)
		}
		return packFloat64(zSign, float64MaxExp, 0)
	}
	if aExp == 0 {
		if aSig == 0 {
			if bSig != 0 && bExp == 0 {
				s.raise(Denormal)
			}
			return packFloat64(zSign, 0, 0)
		}
		s.raise(Denormal)
		aExp, aSig = normalizeFloat64Subnormal(aSig)
	}
	if bExp == 0 {
		if bSig == 0 {
			return packFloat64(zSign, 0, 0)
		}
		s.raise(Denormal)
		bExp, bSig = normalizeFloat64Subnormal(bSig)
	}
	zExp := aExp + bExp - float64Bias
	aSig = (aSig | 0x0010000000000000) << 10
	bSig = (bSig | 0x0010000000000000) << 11
	zSig0, zSig1 := mul64To128(aSig, bSig)
	if zSig1 != 0 {
		zSig0 |= 1
	}
	if int64(zSig0<<1) >= 0 {
		zSig0 <<= 1
		zExp--
	}
	return roundAndPackFloat64(zSign, zExp, zSig0, s)
}

// Div64 returns a / b rounded per s, raising s's exception flags.
func Div64(a, b Float64, s *Status) Float64 {
	aSig, aExp, aSign := float64Frac(a), float64Exp(a), float64Sign(a)
	bSig, bExp, bSign := float64Frac(b), float64Exp(b), float64Sign(b)
	zSign := aSign ^ bSign

	if aExp == float64MaxExp {
		if aSig != 0 {
			return nanPropagate64(a, b, s)
		}
		if bExp == float64MaxExp {
			if bSig != 0 {
				return nanPropagate64(a, b, s)
			}
			s.raise(Invalid)
			return DefaultNaN64
		}
		if bSig != 0 && bExp == 0 {
			s.raise(Denormal)
		}
		return packFloat64(zSign, float64MaxExp, 0)
	}
	if bExp == float64MaxExp {
		if bSig != 0 {
			return nanPropagate64(a, b, s)
		}
		if aSig != 0 && aExp == 0 {
			s.raise(Denormal)
		}
		return packFloat64(zSign, 0, 0)
	}
	if bExp == 0 {
		if bSig == 0 {
			if aExp == 0 && aSig == 0 {
				s.raise(Invalid)
				return DefaultNaN64
			}
			s.raise(DivideByZero)
			return packFloat64(zSign, float64MaxExp, 0)
		}
		s.raise(Denormal)
		bExp, bSig = normalizeFloat64Subnormal(bSig)
	}
	if aExp == 0 {
		if aSig == 0 {
			return packFloat64(zSign, 0, 0)
		}
		s.raise(Denormal)
		aExp, aSig = normalizeFloat64Subnormal(aSig)
	}
	zExp := aExp - bExp + 0x3FD
	aSig = (aSig | 0x0010000000000000) << 10
	bSig = (bSig | 0x0010000000000000) << 11
	if bSig <= aSig+aSig {
		aSig >>= 1
		zExp++
	}
	zSig := estimateDiv128To64(aSig, 0, bSig)
	if zSig&0x1FF <= 2 {
		termHi, termLo := mul64To128(bSig, zSig)
		remHi, remLo := sub128(aSig, 0, termHi, termLo)
		for int64(remHi) < 0 {
			zSig--
			remHi, remLo = add128(remHi, remLo, 0, bSig)
		}
		if remLo != 0 {
			zSig |= 1
		}
	}
	return roundAndPackFloat64(zSign, zExp, zSig, s)
}

// Rem64 returns the IEEE remainder of a / b, exact, raising only
// Invalid (never Inexact).
func Rem64(a, b Float64, s *Status) Float64 {
	aSig, aExp, aSign := float64Frac(a), float64Exp(a), float64Sign(a)
	bSig, bExp := float64Frac(b), float64Exp(b)

	if aExp == float64MaxExp {
		if aSig != 0 || (bExp == float64MaxExp && bSig != 0) {
			return nanPropagate64(a, b, s)
		}
		s.raise(Invalid)
		return DefaultNaN64
	}
	if bExp == float64MaxExp {
		if bSig != 0 {
			return nanPropagate64(a, b, s)
		}
		if aSig != 0 && aExp == 0 {
			s.raise(Denormal)
		}
		return a
	}
	if bExp == 0 {
		if bSig == 0 {
			s.raise(Invalid)
			return DefaultNaN64
		}
		s.raise(Denormal)
		bExp, bSig = normalizeFloat64Subnormal(bSig)
	}
	if aExp == 0 {
		if aSig == 0 {
			return a
		}
		s.raise(Denormal)
		aExp, aSig = normalizeFloat64Subnormal(aSig)
	}

	expDiff := aExp - bExp
	aSig = (aSig | 0x0010000000000000) << 11
	bSig = (bSig | 0x0010000000000000) << 11
	if expDiff < 0 {
		if expDiff < -1 {
			return a
		}
		aSig >>= 1
	}
	var q uint64
	if bSig <= aSig {
		q = 1
		aSig -= bSig
	}
	expDiff -= 64
	for expDiff > 0 {
		q = estimateDiv128To64(aSig, 0, bSig)
		if q > 2 {
			q -= 2
		} else {
			q = 0
		}
		aSig = -((bSig >> 2) * q)
		expDiff -= 62
	}
	expDiff += 64
	if expDiff > 0 {
		q = estimateDiv128To64(aSig, 0, bSig)
		if q > 2 {
			q -= 2
		} else {
			q = 0
		}
		q >>= uint(64 - expDiff)
		bSig >>= 2
		aSig = (aSig>>1)<<uint(expDiff-1) - bSig*q
	} else {
		aSig >>= 2
		bSig >>= 2
	}

	var alternateASig uint64
	for {
		alternateASig = aSig
		q++
		aSig -= bSig
		if int64(aSig) < 0 {
			break
		}
	}
	sigMean := int64(aSig) + int64(alternateASig)
	if sigMean < 0 || (sigMean == 0 && q&1 != 0) {
		aSig = alternateASig
	}
	zSign := int64(aSig) < 0
	if zSign {
		aSig = -aSig
	}
	resultSign := aSign
	if zSign {
		resultSign ^= 1
	}
	return normalizeRoundAndPackFloat64(resultSign, bExp, aSig, s)
}

// Sqrt64 returns the square root of a rounded per s.
func Sqrt64(a Float64, s *Status) Float64 {
	aSig, aExp, aSign := float64Frac(a), float64Exp(a), float64Sign(a)

	if aExp == float64MaxExp {
		if aSig != 0 {
			return nanPropagate64(a, a, s)
		}
		if aSign == 0 {
			return a
		}
		s.raise(Invalid)
		return DefaultNaN64
	}
	if aSign != 0 {
		if aExp == 0 && aSig == 0 {
			return a
		}
		s.raise(Invalid)
		return DefaultNaN64
	}
	if aExp == 0 {
		if aSig == 0 {
			return packFloat64(0, 0, 0)
		}
		s.raise(Denormal)
		aExp, aSig = normalizeFloat64Subnormal(aSig)
	}
	zExp := (aExp-float64Bias)>>1 + 0x3FE
	aSig |= 0x0010000000000000
	zSig := uint64(estimateSqrt32(aExp, uint32(aSig>>21)))
	aSig <<= uint(9 - (aExp & 1))
	zSig = estimateDiv128To64(aSig, 0, zSig<<32) + zSig<<30
	if zSig&0x1FF <= 5 {
		doubleZSig := zSig << 1
		termHi, termLo := mul64To128(zSig, zSig)
		remHi, remLo := sub128(aSig, 0, termHi, termLo)
		for int64(remHi) < 0 {
			zSig--
			doubleZSig -= 2
			remHi, remLo = add128(remHi, remLo, zSig>>63, doubleZSig|1)
		}
		if remHi|remLo != 0 {
			zSig |= 1
		}
	}
	return roundAndPackFloat64(0, zExp, zSig, s)
}
