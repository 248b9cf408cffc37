// SPDX-License-Identifier: MIT

// Package interp: functional configuration for interpolation.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: WithX constructors panic only on nonsensical
//     values (programmer error); data errors are always returned.

package interp

// Extrapolation selects how queries outside the sample range are answered.
type Extrapolation int

const (
	// ExtrapolateLinear extends the first or last segment's line.
	ExtrapolateLinear Extrapolation = iota

	// ExtrapolateClamp returns the Y of the nearest edge sample.
	ExtrapolateClamp

	// ExtrapolateReject fails the query with table.ErrOutOfRange.
	ExtrapolateReject
)

// DefaultExtrapolation is the policy used when no option is given.
const DefaultExtrapolation = ExtrapolateLinear

const panicExtrapolationInvalid = "interp: WithExtrapolation: unknown mode"

func (e Extrapolation) String() string {
	switch e {
	case ExtrapolateLinear:
		return "linear"
	case ExtrapolateClamp:
		return "clamp"
	case ExtrapolateReject:
		return "reject"
	}

	return "unknown"
}

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	extrapolation Extrapolation // DefaultExtrapolation
}

// WithExtrapolation sets the out-of-range policy.
// Panics on a mode outside the declared constants.
func WithExtrapolation(mode Extrapolation) Option {
	if mode < ExtrapolateLinear || mode > ExtrapolateReject {
		panic(panicExtrapolationInvalid)
	}

	return func(o *Options) { o.extrapolation = mode }
}

// gatherOptions applies user setters over the defaults, last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		extrapolation: DefaultExtrapolation,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
