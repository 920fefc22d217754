// Package field implements the modular arithmetic the curve group law is
// built on. All helpers allocate their result and never modify their
// arguments.
package field

import (
	"math/big"
)

var (
	two = big.NewInt(2)
)

// ModularInverse returns value^(mod-2) mod mod.
//
// By Fermat's little theorem this is the multiplicative inverse of value when
// mod is prime. The result is undefined when mod is not prime or when value is
// congruent to zero; callers must guarantee both.
func ModularInverse(value, mod *big.Int) *big.Int {
	e := new(big.Int).Sub(mod, two)
	v := Mod(value, mod)
	return new(big.Int).Exp(v, e, mod)
}

// Mod returns x mod m in [0, m), also for negative x.
func Mod(x, m *big.Int) *big.Int {
	// big.Int.Mod is Euclidean, so the result is never negative.
	return new(big.Int).Mod(x, m)
}

// Add returns (a + b) mod m.
func Add(a, b, m *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, m)
}

// Sub returns (a - b) mod m in [0, m).
func Sub(a, b, m *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return r.Mod(r, m)
}

// Mul returns (a * b) mod m.
func Mul(a, b, m *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, m)
}

// Div returns a * b^-1 mod m, with the inverse taken by ModularInverse.
func Div(a, b, m *big.Int) *big.Int {
	return Mul(a, ModularInverse(b, m), m)
}

// Sqrt returns a square root of a modulo the prime m, or nil if a is not a
// quadratic residue.
func Sqrt(a, m *big.Int) *big.Int {
	return new(big.Int).ModSqrt(Mod(a, m), m)
}
