package ecc

// ErrorKind identifies a kind of error. It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidCurveParameters is returned when any of the curve parameter
	// checks fails: singular curve, B outside [0, P), seed mismatch, base
	// point off the curve or a wrong base point order.
	ErrInvalidCurveParameters = ErrorKind("ErrInvalidCurveParameters")

	// ErrUnsupportedCurveBitSize is returned when no digest algorithm is
	// mapped to the bit size of a curve.
	ErrUnsupportedCurveBitSize = ErrorKind("ErrUnsupportedCurveBitSize")

	// ErrUnsupportedCurveName is returned when a curve name is not present in
	// the curve registry.
	ErrUnsupportedCurveName = ErrorKind("ErrUnsupportedCurveName")

	// ErrInvalidRange is returned when a scalar is requested below an upper
	// bound that is less than or equal to one.
	ErrInvalidRange = ErrorKind("ErrInvalidRange")

	// ErrUninitializedCurve is returned when an operation that needs a curve
	// is attempted without one.
	ErrUninitializedCurve = ErrorKind("ErrUninitializedCurve")

	// ErrEntropyExhausted is returned when a retry loop driven by the random
	// source (scalar rejection sampling or the signing nonce retry) reaches
	// its attempt ceiling.
	ErrEntropyExhausted = ErrorKind("ErrEntropyExhausted")

	// ErrInvalidPrivateKey is returned when a private key is missing or does
	// not lie in [1, N).
	ErrInvalidPrivateKey = ErrorKind("ErrInvalidPrivateKey")

	// ErrInvalidPublicKey is returned when a public key is missing, is the
	// point at infinity or is not on the curve.
	ErrInvalidPublicKey = ErrorKind("ErrInvalidPublicKey")

	// ErrInvalidSignature is returned when a signature value is structurally
	// unusable, for instance when one of its components is missing.
	ErrInvalidSignature = ErrorKind("ErrInvalidSignature")

	// ErrInvalidEncoding is returned when a serialized key, point or
	// signature cannot be decoded.
	ErrInvalidEncoding = ErrorKind("ErrInvalidEncoding")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to curve handling, key generation,
// signing or verification. It has full support for errors.Is and errors.As,
// so the caller can ascertain the specific reason for the error by checking
// the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// NewError creates an Error given a set of arguments.
func NewError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
