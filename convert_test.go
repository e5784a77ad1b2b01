package softfloat

import "testing"

func TestIntToFloatRoundTrip32(t *testing.T) {
	tests := []int32{0, 1, -1, 3, -3, 1000000, -1000000, 0x7FFFFFFF, -0x7FFFFFFF}
	for _, v := range tests {
		s := NewStatus()
		f := Int32ToFloat32(v, s)
		back := Float32ToInt32RoundToZero(f, s)
		// Float32 has only 24 significant bits, so round trips are only
		// exact for values that fit; restrict the exactness check to
		// values within that range.
		if v >= -(1<<24) && v <= 1<<24 {
			if back != v {
				t.Errorf("Int32ToFloat32(%d) round trip = %d, want %d", v, back, v)
			}
		}
	}
}

func TestIntToFloatRoundTrip64(t *testing.T) {
	tests := []int32{0, 1, -1, 3, -3, 1000000, -1000000, 0x7FFFFFFF, -0x7FFFFFFF}
	for _, v := range tests {
		s := NewStatus()
		f := Int32ToFloat64(v, s)
		back := Float64ToInt32RoundToZero(f, s)
		if back != v {
			t.Errorf("Int32ToFloat64(%d) round trip = %d, want %d (always exact)", v, back, v)
		}
	}
}

func TestInt64MinRoundTripsThroughExtended(t *testing.T) {
	s := NewStatus()
	const minI64 = -0x8000000000000000
	e := Int64ToExtended(minI64, s)
	back := ExtendedToInt64RoundToZero(e, s)
	if back != minI64 {
		t.Errorf("Int64ToExtended(MinInt64) round trip = %d, want %d", back, minI64)
	}
}

func TestFloat32ToInt32Overflow(t *testing.T) {
	s := NewStatus()
	big := packFloat32(0, float32Bias+40, 0) // far larger than int32 range
	got := Float32ToInt32(big, s)
	if got != 0x7FFFFFFF {
		t.Errorf("Float32ToInt32(huge) = %d, want 0x7FFFFFFF", got)
	}
	if !s.Test(Invalid) {
		t.Errorf("Float32ToInt32(huge) should raise Invalid")
	}
}

func TestFloat32ToInt32NaNIsInvalid(t *testing.T) {
	s := NewStatus()
	nan := packFloat32(0, float32MaxExp, 1)
	got := Float32ToInt32(nan, s)
	if got != 0x7FFFFFFF {
		t.Errorf("Float32ToInt32(NaN) = %d, want 0x7FFFFFFF (default positive overflow)", got)
	}
	if !s.Test(Invalid) {
		t.Errorf("Float32ToInt32(NaN) should raise Invalid")
	}
}

func TestFloat32ToFloat64WidensExactly(t *testing.T) {
	s := NewStatus()
	three := Int32ToFloat32(3, s)
	got := Float32ToFloat64(three, s)
	want := Int32ToFloat64(3, s)
	if got != want {
		t.Errorf("Float32ToFloat64(3) = %#x, want %#x", uint64(got), uint64(want))
	}
	if s.Exceptions != 0 {
		t.Errorf("widening should never raise exceptions, got %v", s.Exceptions)
	}
}

func TestFloat64ToFloat32NarrowsWithRounding(t *testing.T) {
	s := NewStatus()
	// 1/3 in double precision has more significant bits than Float32 can
	// hold, so narrowing must raise Inexact.
	one := Int32ToFloat64(1, s)
	three := Int32ToFloat64(3, s)
	third := Div64(one, three, s)
	s2 := NewStatus()
	_ = Float64ToFloat32(third, s2)
	if !s2.Test(Inexact) {
		t.Errorf("narrowing 1/3 to Float32 should raise Inexact")
	}
}

func TestFloat32ExtendedFloat64RoundTripIsExact(t *testing.T) {
	s := NewStatus()
	pi32 := packFloat32(0, float32Bias+1, 0x490FDB) // an arbitrary representable Float32
	ext := Float32ToExtended(pi32, s)
	back := ExtendedToFloat32(ext, s)
	if back != pi32 {
		t.Errorf("Float32->Extended->Float32 round trip = %#x, want %#x", uint32(back), uint32(pi32))
	}
	if s.Exceptions&Inexact != 0 {
		t.Errorf("widen-then-narrow of a value that fits should not be Inexact")
	}
}

func TestRoundToIntegralFloat32Basics(t *testing.T) {
	s := NewStatus()
	half := Div32(Int32ToFloat32(1, s), Int32ToFloat32(2, s), s)
	got := RoundToIntegralFloat32(half, s)
	zero := Int32ToFloat32(0, s)
	if got != zero {
		t.Errorf("round(0.5) under nearest-even = %#x, want 0", uint32(got))
	}
}

func TestRoundToIntegralFloat32LargeIsIdentity(t *testing.T) {
	s := NewStatus()
	big := packFloat32(0, float32Bias+30, 0x123456) // already an integer at this exponent
	got := RoundToIntegralFloat32(big, s)
	if got != big {
		t.Errorf("round-to-integral of an already-integral large value changed it: got %#x, want %#x", uint32(got), uint32(big))
	}
}

func TestRoundToIntegralFloat64NegativeHalfRoundsToEven(t *testing.T) {
	s := NewStatus()
	negHalf := Div64(Int32ToFloat64(-1, s), Int32ToFloat64(2, s), s)
	got := RoundToIntegralFloat64(negHalf, s)
	zero := Int32ToFloat64(0, s)
	if got != zero && got != f64(1, 0, 0) {
		t.Errorf("round(-0.5) under nearest-even = %#x, want 0 or -0", uint64(got))
	}
}

func TestFloat32ToFloat64DenormalOperandRaisesDenormal(t *testing.T) {
	s := NewStatus()
	Float32ToFloat64(f32(0, 0, 1), s)
	if !s.Test(Denormal) {
		t.Errorf("widening a denormal Float32 to Float64 should raise Denormal")
	}
}

func TestFloat32ToExtendedDenormalOperandRaisesDenormal(t *testing.T) {
	s := NewStatus()
	Float32ToExtended(f32(0, 0, 1), s)
	if !s.Test(Denormal) {
		t.Errorf("widening a denormal Float32 to Extended should raise Denormal")
	}
}

func TestFloat64ToExtendedDenormalOperandRaisesDenormal(t *testing.T) {
	s := NewStatus()
	Float64ToExtended(f64(0, 0, 1), s)
	if !s.Test(Denormal) {
		t.Errorf("widening a denormal Float64 to Extended should raise Denormal")
	}
}

func TestFloat64ToFloat32DenormalOperandRaisesDenormal(t *testing.T) {
	s := NewStatus()
	Float64ToFloat32(f64(0, 0, 1), s)
	if !s.Test(Denormal) {
		t.Errorf("narrowing a denormal Float64 to Float32 should raise Denormal")
	}
}

func TestExtendedToFloatNeverRaisesDenormal(t *testing.T) {
	// floatx80_to_float32/floatx80_to_float64 have no denormal check in
	// the original bochs softfloat.cc.
	denorm := packExtended(0, 0, 1)
	s := NewStatus()
	ExtendedToFloat32(denorm, s)
	if s.Test(Denormal) {
		t.Errorf("ExtendedToFloat32 of a denormal Extended must not raise Denormal")
	}
	s2 := NewStatus()
	ExtendedToFloat64(denorm, s2)
	if s2.Test(Denormal) {
		t.Errorf("ExtendedToFloat64 of a denormal Extended must not raise Denormal")
	}
}

func TestFloatToIntNeverRaisesDenormal(t *testing.T) {
	// float32_to_int32/float64_to_int32 etc. have no denormal check in
	// the original bochs softfloat.cc, regardless of operand format.
	s := NewStatus()
	Float32ToInt32(f32(0, 0, 1), s)
	if s.Test(Denormal) {
		t.Errorf("Float32ToInt32 of a denormal operand must not raise Denormal")
	}
	s2 := NewStatus()
	Float64ToInt32(f64(0, 0, 1), s2)
	if s2.Test(Denormal) {
		t.Errorf("Float64ToInt32 of a denormal operand must not raise Denormal")
	}
}
