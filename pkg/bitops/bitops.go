// Package bitops provides portable bitwise primitives over 32-bit unsigned
// integers.
//
// Every operation has two forms: the native form using Go's bitwise
// operators, and an arithmetic form that processes one bit at a time using
// only division and modulo. The arithmetic forms pin down the exact masked
// semantics for hosts without native bitwise integer operators; the test
// suite asserts that both forms agree on every input.
package bitops

// And32 returns the bitwise AND of a and b.
func And32(a, b uint32) uint32 {
	return a & b
}

// Or32 returns the bitwise OR of a and b.
func Or32(a, b uint32) uint32 {
	return a | b
}

// Xor32 returns the bitwise XOR of a and b.
func Xor32(a, b uint32) uint32 {
	return a ^ b
}

// Not32 returns the bitwise complement of v.
func Not32(v uint32) uint32 {
	return ^v
}

// ShiftLeft32 shifts v left by n bits, discarding bits shifted past bit 31.
// Shift counts of 32 or more yield 0.
func ShiftLeft32(v uint32, n uint) uint32 {
	if n >= 32 {
		return 0
	}
	return v << n
}

// ShiftRight32 shifts v right by n bits, filling with zeros. Shift counts
// of 32 or more yield 0.
func ShiftRight32(v uint32, n uint) uint32 {
	if n >= 32 {
		return 0
	}
	return v >> n
}

// combine32 applies a per-bit boolean function to a and b, one bit at a
// time, using only arithmetic. Bits are consumed least-significant first.
func combine32(a, b uint32, f func(x, y uint32) uint32) uint32 {
	var result uint32
	var place uint32 = 1
	for i := 0; i < 32; i++ {
		result += f(a%2, b%2) * place
		a /= 2
		b /= 2
		if i < 31 {
			place *= 2
		}
	}
	return result
}

// And32Arith is the arithmetic form of And32.
func And32Arith(a, b uint32) uint32 {
	return combine32(a, b, func(x, y uint32) uint32 { return x * y })
}

// Or32Arith is the arithmetic form of Or32.
func Or32Arith(a, b uint32) uint32 {
	return combine32(a, b, func(x, y uint32) uint32 {
		if x+y > 0 {
			return 1
		}
		return 0
	})
}

// Xor32Arith is the arithmetic form of Xor32.
func Xor32Arith(a, b uint32) uint32 {
	return combine32(a, b, func(x, y uint32) uint32 { return (x + y) % 2 })
}

// Not32Arith is the arithmetic form of Not32.
func Not32Arith(v uint32) uint32 {
	// ^v == 0xFFFFFFFF - v for unsigned 32-bit values.
	return 0xFFFFFFFF - v
}

// ShiftLeft32Arith is the arithmetic form of ShiftLeft32.
func ShiftLeft32Arith(v uint32, n uint) uint32 {
	for i := uint(0); i < n; i++ {
		// Drop bit 31 before doubling so the multiply cannot wrap.
		v = (v % 0x80000000) * 2
	}
	return v
}

// ShiftRight32Arith is the arithmetic form of ShiftRight32.
func ShiftRight32Arith(v uint32, n uint) uint32 {
	for i := uint(0); i < n; i++ {
		v /= 2
	}
	return v
}
