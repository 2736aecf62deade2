package sector

import (
	"fmt"
	"math/bits"
	"strings"

	"gopkg.in/yaml.v3"
)

// Mask marks which denominators belong to a sector.
type Mask []bool

// Full returns a mask of n active positions.
func Full(n int) Mask {
	m := make(Mask, n)
	for i := range m {
		m[i] = true
	}

	return m
}

// FromInts builds a mask from 0/1 values; any non-zero value is active.
func FromInts(v []int) Mask {
	m := make(Mask, len(v))
	for i, x := range v {
		m[i] = x != 0
	}

	return m
}

// Parse reads a mask literal such as "1101", "1 1 0 1" or "1,1,0,1".
func Parse(s string) (Mask, error) {
	m := make(Mask, 0, len(s))
	for _, r := range s {
		switch r {
		case '1':
			m = append(m, true)
		case '0':
			m = append(m, false)
		case ' ', ',', '\t', '[', ']':
			// separators
		default:
			return nil, fmt.Errorf("%w: %q: unexpected %q", ErrBadMask, s, r)
		}
	}

	return m, nil
}

// Len returns the number of positions.
func (m Mask) Len() int { return len(m) }

// Active returns the number of active positions.
func (m Mask) Active() int {
	n := 0
	for _, on := range m {
		if on {
			n++
		}
	}

	return n
}

// First returns the index of the first active position, or -1.
func (m Mask) First() int {
	for i, on := range m {
		if on {
			return i
		}
	}

	return -1
}

// Last returns the index of the last active position, or -1.
func (m Mask) Last() int {
	for i := len(m) - 1; i >= 0; i-- {
		if m[i] {
			return i
		}
	}

	return -1
}

// ID returns the bitmask with bit i set for every active position i.
func (m Mask) ID() (int, error) {
	if len(m) >= bits.UintSize-1 {
		return 0, fmt.Errorf("%w: %d positions", ErrTooWide, len(m))
	}
	id := 0
	for i, on := range m {
		if on {
			id |= 1 << i
		}
	}

	return id, nil
}

// Ints returns the mask as 0/1 values.
func (m Mask) Ints() []int {
	v := make([]int, len(m))
	for i, on := range m {
		if on {
			v[i] = 1
		}
	}

	return v
}

// Clone returns an independent copy.
func (m Mask) Clone() Mask {
	if m == nil {
		return nil
	}

	return append(Mask(nil), m...)
}

// String renders the mask as a digit string, e.g. "1101".
func (m Mask) String() string {
	var b strings.Builder
	b.Grow(len(m))
	for _, on := range m {
		if on {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}

	return b.String()
}

// MarshalYAML writes the digit-string form.
func (m Mask) MarshalYAML() (any, error) {
	return m.String(), nil
}

// UnmarshalYAML accepts either a digit string or a sequence of 0/1 integers.
func (m *Mask) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		parsed, err := Parse(node.Value)
		if err != nil {
			return err
		}
		*m = parsed
	case yaml.SequenceNode:
		var v []int
		if err := node.Decode(&v); err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrBadMask, node.Line, err)
		}
		for _, x := range v {
			if x != 0 && x != 1 {
				return fmt.Errorf("%w: line %d: value %d is not 0 or 1", ErrBadMask, node.Line, x)
			}
		}
		*m = FromInts(v)
	default:
		return fmt.Errorf("%w: line %d: expected string or sequence", ErrBadMask, node.Line)
	}

	return nil
}
