package toyrsa

import (
	"math"
	"math/bits"
)

// NoInverse is stored as the private exponent when e has no inverse modulo phi.
const NoInverse int64 = -1

// MaxPrime bounds p and q so that n and phi stay below 2^62.
const MaxPrime uint64 = math.MaxInt32

// IsPrime reports whether num is prime by trial division over [2, floor(sqrt(num))].
func IsPrime(num uint64) bool {
	if num <= 1 {
		return false
	}
	limit := isqrt(num)
	for i := uint64(2); i <= limit; i++ {
		if num%i == 0 {
			return false
		}
	}
	return true
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// MulMod returns (a*b) mod m using a 128-bit intermediate product. m must be non-zero.
func MulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}

// ModInverse returns the smallest x in [1, m) with (a*x) mod m == 1, or NoInverse.
// The search is linear in m.
func ModInverse(a, m uint64) int64 {
	if m == 0 {
		return NoInverse
	}
	aMod := a % m
	for x := uint64(1); x < m; x++ {
		if MulMod(aMod, x, m) == 1 {
			return int64(x)
		}
	}
	return NoInverse
}

// SmallestCoprime returns the first x >= 2 below phi with gcd(x, phi) == 1.
func SmallestCoprime(phi uint64) (uint64, bool) {
	for x := uint64(2); x < phi; x++ {
		if GCD(x, phi) == 1 {
			return x, true
		}
	}
	return 0, false
}

func isqrt(n uint64) uint64 {
	r := uint64(math.Sqrt(float64(n)))
	if r > math.MaxUint32 {
		r = math.MaxUint32
	}
	for r*r > n {
		r--
	}
	for r < math.MaxUint32 && (r+1)*(r+1) <= n {
		r++
	}
	return r
}
