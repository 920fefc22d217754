package curves

import (
	"fmt"
	"sort"
	"strings"

	"github.com/smallyu/go-ecdsa/pkg/ecc"
)

// ID identifies a curve supported by this package.
type ID int

const (
	// Secp256k1 is the Koblitz curve used by Bitcoin and Ethereum.
	Secp256k1 ID = iota + 1
)

type entry struct {
	name   string
	params func() *Params
}

var registry = map[ID]entry{
	Secp256k1: {name: "secp256k1", params: secp256k1Params},
}

// String implements fmt.Stringer.
func (id ID) String() string {
	if e, ok := registry[id]; ok {
		return e.name
	}
	return fmt.Sprintf("unknown curve (%d)", int(id))
}

// Params returns a fresh copy of the parameters of the curve, or nil when id
// is not registered.
func (id ID) Params() *Params {
	e, ok := registry[id]
	if !ok {
		return nil
	}
	return e.params()
}

// ParseID resolves a curve name, ignoring case and surrounding spaces.
func ParseID(name string) (ID, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for id, e := range registry {
		if e.name == n {
			return id, nil
		}
	}
	return 0, ecc.NewError(ecc.ErrUnsupportedCurveName,
		fmt.Sprintf("unsupported curve name %q", name))
}

// Lookup returns a fresh copy of the parameters of the named curve.
func Lookup(name string) (*Params, error) {
	id, err := ParseID(name)
	if err != nil {
		return nil, err
	}
	return id.Params(), nil
}

// Names returns the names of all registered curves, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, e := range registry {
		names = append(names, e.name)
	}
	sort.Strings(names)
	return names
}
