package sign

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/sirupsen/logrus"

	"github.com/smallyu/go-ecdsa/internal/crypto/curves"
	"github.com/smallyu/go-ecdsa/internal/crypto/digest"
	"github.com/smallyu/go-ecdsa/internal/crypto/field"
	"github.com/smallyu/go-ecdsa/internal/crypto/random"
	"github.com/smallyu/go-ecdsa/internal/crypto/validator"
	"github.com/smallyu/go-ecdsa/internal/logging"
	"github.com/smallyu/go-ecdsa/pkg/ecc"
)

// ErrSignDone is returned by Step once a signature has been produced.
var ErrSignDone = errors.New("sign: state machine already finished")

// StateMachine produces one ECDSA signature. Each call to Step performs one
// transition; Run steps until the signature is ready or a step fails. A
// failed machine keeps returning the same error.
type StateMachine struct {
	params *curves.Params
	group  *curves.Group
	key    *big.Int
	msg    []byte
	opts   Options

	log       *logrus.Entry
	validator *validator.Validator
	nonces    *random.Generator

	state       State
	transitions []State
	attempts    int
	err         error

	z   *big.Int
	k   *big.Int
	R   curves.Point
	sig *ecc.Signature
}

// NewStateMachine prepares the signing of msg with the private scalar key on
// the curve described by params. Nothing is computed until Step or Run.
func NewStateMachine(params *curves.Params, key *big.Int, msg []byte, opts Options) *StateMachine {
	randOpts := []random.Option{
		random.WithReader(opts.Rand),
		random.WithMaxAttempts(opts.MaxDrawAttempts),
	}
	if opts.Logger != nil {
		randOpts = append(randOpts, random.WithLogger(opts.Logger))
	}

	s := &StateMachine{
		params:      params,
		key:         key,
		msg:         msg,
		opts:        opts,
		log:         logging.Component(opts.Logger, "sign"),
		validator:   validator.New(opts.Logger),
		nonces:      random.New(params, randOpts...),
		state:       StateStart,
		transitions: []State{StateStart},
	}
	if params != nil {
		s.group = curves.NewGroup(params)
	}
	return s
}

// Sign runs a fresh state machine to completion.
func Sign(params *curves.Params, key *big.Int, msg []byte, opts Options) (*ecc.Signature, error) {
	return NewStateMachine(params, key, msg, opts).Run()
}

// Run steps the machine until it reaches Signed.
func (s *StateMachine) Run() (*ecc.Signature, error) {
	for s.state != StateSigned {
		if err := s.Step(); err != nil {
			return nil, err
		}
	}
	return s.Result(), nil
}

// Step performs a single transition.
func (s *StateMachine) Step() error {
	if s.err != nil {
		return s.err
	}

	var (
		next State
		err  error
	)
	switch s.state {
	case StateStart:
		next, err = s.validate()
	case StateParamsValidated:
		next, err = s.hash()
	case StateHashed, StateRetry:
		next, err = s.drawNonce()
	case StateNonceGenerated:
		next, err = s.computePoint()
	case StatePointComputed:
		next, err = s.computeSignature()
	case StateSigned:
		return ErrSignDone
	default:
		err = fmt.Errorf("sign: unknown state %s", s.state)
	}

	if err != nil {
		s.err = err
		return err
	}

	s.log.WithFields(logrus.Fields{
		"from": s.state.String(),
		"to":   next.String(),
	}).Debug("transition")
	s.state = next
	s.transitions = append(s.transitions, next)
	return nil
}

// 1. Validate the curve and the private key.
func (s *StateMachine) validate() (State, error) {
	if s.params == nil {
		return 0, ecc.NewError(ecc.ErrUninitializedCurve, "sign: no curve parameters")
	}
	if err := s.validator.Validate(s.params); err != nil {
		return 0, err
	}
	if s.key == nil || s.key.Sign() <= 0 || s.key.Cmp(s.params.N) >= 0 {
		return 0, ecc.NewError(ecc.ErrInvalidPrivateKey, "sign: private key is outside [1, N)")
	}
	return StateParamsValidated, nil
}

// 2. Hash the message to z. z is not reduced modulo N.
func (s *StateMachine) hash() (State, error) {
	z, err := digest.Int(s.params.BitSize, s.msg)
	if err != nil {
		return 0, err
	}
	s.z = z
	return StateHashed, nil
}

// 3. Draw a nonce k in [1, N).
func (s *StateMachine) drawNonce() (State, error) {
	if s.attempts >= s.opts.maxNonceAttempts() {
		return 0, ecc.NewError(ecc.ErrEntropyExhausted,
			fmt.Sprintf("sign: no usable nonce after %d attempts", s.attempts))
	}
	s.attempts++

	k, err := s.nonces.PrivateKey()
	if err != nil {
		return 0, err
	}
	s.k = k
	return StateNonceGenerated, nil
}

// 4. R = k·G
func (s *StateMachine) computePoint() (State, error) {
	s.R = s.group.ScalarBaseMult(s.k)
	return StatePointComputed, nil
}

// 5. r = R.x, s = k⁻¹(z + r·d) mod N
func (s *StateMachine) computeSignature() (State, error) {
	r, _, ok := s.R.Coords()
	if !ok {
		s.log.WithField("attempt", s.attempts).Debug("nonce point at infinity, retrying")
		return StateRetry, nil
	}

	N := s.params.N
	sum := new(big.Int).Mul(r, s.key)
	sum.Add(sum, s.z)
	sv := field.Mul(field.ModularInverse(s.k, N), sum, N)

	if sv.Sign() == 0 && s.opts.RejectZeroS {
		s.log.WithField("attempt", s.attempts).Debug("s is zero, retrying")
		return StateRetry, nil
	}

	s.sig = &ecc.Signature{R: r, S: sv}
	s.k = nil
	return StateSigned, nil
}

// State returns the current state.
func (s *StateMachine) State() State {
	return s.state
}

// Transitions returns every state visited so far, Start included.
func (s *StateMachine) Transitions() []State {
	out := make([]State, len(s.transitions))
	copy(out, s.transitions)
	return out
}

// Attempts returns the number of nonces drawn so far.
func (s *StateMachine) Attempts() int {
	return s.attempts
}

// Result returns the signature, or nil before Signed.
func (s *StateMachine) Result() *ecc.Signature {
	if s.sig == nil {
		return nil
	}
	return &ecc.Signature{R: new(big.Int).Set(s.sig.R), S: new(big.Int).Set(s.sig.S)}
}

func (s *StateMachine) Details() string {
	return fmt.Sprintf("Sign %s (nonce attempt %d)", s.state, s.attempts)
}
