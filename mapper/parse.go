package mapper

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse turns one configuration token into a Spec descriptor.
//
// Grammar:
//
//	"Mirror:" ("H"|"h"|"V"|"v")
//	"Rotate:" <unsigned integer multiple of 90>
//	"U-mapper"
//
// Rotation angles are normalized into [0,360) via (angle+360)%360, so e.g.
// "Rotate:450" parses to a 90-degree rotation. Any other token yields an
// error wrapping one of the package sentinels and quoting the offender.
// Complexity: O(len(token)).
func Parse(token string) (Spec, error) {
	command, param, found := strings.Cut(token, ":")
	if !found {
		if token == "U-mapper" {
			return Spec{Kind: KindUMapper}, nil
		}

		return Spec{}, fmt.Errorf("%w: %q", ErrUnknownMapper, token)
	}

	switch command {
	case "Mirror":
		switch param {
		case "H", "h":
			return Spec{Kind: KindMirror, Horizontal: true}, nil
		case "V", "v":
			return Spec{Kind: KindMirror, Horizontal: false}, nil
		default:
			return Spec{}, fmt.Errorf("%w: %q", ErrMirrorAxis, param)
		}
	case "Rotate":
		angle, err := strconv.Atoi(param)
		if err != nil || angle < 0 {
			return Spec{}, fmt.Errorf("%w: %q", ErrRotateAngle, param)
		}
		if angle%90 != 0 {
			return Spec{}, fmt.Errorf("%w: got %d", ErrRotateStep, angle)
		}
		// Defensive carry-over from the signed-angle days; a no-op for
		// angles already in [0,360).
		return Spec{Kind: KindRotate, Angle: (angle + 360) % 360}, nil
	default:
		return Spec{}, fmt.Errorf("%w: %q", ErrUnknownMapper, command)
	}
}

// ParseSequence parses a list of configuration tokens in composition order
// (left to right). It stops at the first invalid token and returns its
// error; no partial descriptors leak out.
// Complexity: O(total token length).
func ParseSequence(tokens []string) ([]Spec, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	specs := make([]Spec, 0, len(tokens))
	for _, tok := range tokens {
		s, err := Parse(tok)
		if err != nil {
			return nil, err
		}
		specs = append(specs, s)
	}

	return specs, nil
}

// Create instantiates the mapper the Spec describes, bound to the physical
// chain geometry. chainLength is the number of panels wired in series per
// data chain; parallel is the number of stacked data chains. Mirror and
// Rotate ignore the geometry; UMapper validates it and returns
// ErrChainTooShort or ErrChainOdd for a physically meaningless chain.
func (s Spec) Create(chainLength, parallel int, opts ...Option) (Mapper, error) {
	switch s.Kind {
	case KindMirror:
		return Mirror{Horizontal: s.Horizontal}, nil
	case KindRotate:
		return Rotate{Angle: s.Angle}, nil
	case KindUMapper:
		return NewUMapper(chainLength, parallel, opts...)
	default:
		return nil, fmt.Errorf("%w: kind %d", ErrUnknownMapper, int(s.Kind))
	}
}

// Compile parses tokens and builds the complete mapper pipeline in one
// call: every token becomes a mapper bound to the given geometry, composed
// left to right. A single token yields that mapper directly; several yield
// a *Chain; none yields an identity *Chain.
func Compile(tokens []string, chainLength, parallel int, opts ...Option) (Mapper, error) {
	specs, err := ParseSequence(tokens)
	if err != nil {
		return nil, err
	}
	mappers := make([]Mapper, 0, len(specs))
	for _, s := range specs {
		m, err := s.Create(chainLength, parallel, opts...)
		if err != nil {
			return nil, err
		}
		mappers = append(mappers, m)
	}
	if len(mappers) == 1 {
		return mappers[0], nil
	}

	return NewChain(mappers...), nil
}
