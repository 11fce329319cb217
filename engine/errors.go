package engine

import (
	"github.com/juju/errors"
)

var (
	// ErrNotReady means a problem was enacted or extracted before Reset
	// seeded it.
	ErrNotReady = errors.New("problem not ready")

	// ErrDiverged means the operator loop hit its iteration cap with a
	// non-empty frontier.
	ErrDiverged = errors.New("iteration limit exceeded")

	// ErrUnsupportedType means no kernel exists for the requested
	// id/size/value type combination.
	ErrUnsupportedType = errors.New("unsupported type combination")
)
