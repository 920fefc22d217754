package curves

// secp256k1 domain parameters, SEC 2 v2 section 2.4.1.
//
// y² = x³ + 7 over the field of order P = 2²⁵⁶ - 2³² - 977. The base point G
// has prime order N and the cofactor is 1. The curve has no verifiable seed.
const (
	secp256k1P  = "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F"
	secp256k1B  = "07"
	secp256k1Gx = "79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798"
	secp256k1Gy = "483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8"
	secp256k1N  = "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141"
)

func secp256k1Params() *Params {
	return &Params{
		Name:    "secp256k1",
		P:       mustHex(secp256k1P),
		A:       mustHex("00"),
		B:       mustHex(secp256k1B),
		G:       NewPoint(mustHex(secp256k1Gx), mustHex(secp256k1Gy)),
		N:       mustHex(secp256k1N),
		H:       1,
		Seed:    nil,
		BitSize: 256,
	}
}
