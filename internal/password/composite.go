// Package password implements composable password generation policies
// for parola.
package password

import (
	"strings"

	"github.com/KilimcininKorOglu/parola/internal/randstr"
)

// Composite merges the fragments of an ordered set of child policies
// into a single password. It implements Policy, so composites can be
// nested inside other composites.
//
// Composite is stateless across Generate calls: every call produces an
// independent password from the currently registered children.
type Composite struct {
	children []Policy
}

// NewComposite returns a composite over the given policies, registered
// in argument order.
func NewComposite(policies ...Policy) *Composite {
	c := &Composite{}
	for _, p := range policies {
		c.Add(p)
	}
	return c
}

// Add registers a child policy. Registration order is preserved and
// determines the order of the guaranteed trailing characters in the
// generated password. Add never fails.
func (c *Composite) Add(p Policy) {
	c.children = append(c.children, p)
}

// Policies returns the registered child policies in registration order.
func (c *Composite) Policies() []Policy {
	out := make([]Policy, len(c.children))
	copy(out, c.children)
	return out
}

// Length returns the final password length: the maximum of the
// children's lengths, or 0 when no children are registered.
func (c *Composite) Length() int {
	max := 0
	for _, child := range c.children {
		if l := child.Length(); l > max {
			max = l
		}
	}
	return max
}

// AllowedChars returns the union of the children's alphabets.
func (c *Composite) AllowedChars() string {
	alphabets := make([]string, len(c.children))
	for i, child := range c.children {
		alphabets[i] = child.AllowedChars()
	}
	return Union(alphabets...)
}

// Generate produces one password of exactly Length() characters.
//
// Each child generates a fragment at its own length. The password is a
// random filler drawn from the pooled fragment characters, followed by
// one character sampled from each fragment in registration order, so
// every child's alphabet is represented at least once. When alphabets
// overlap, representation means membership in the alphabet rather than
// provenance from that child's fragment.
//
// Returns ErrInsufficientLength when Length() does not exceed the number
// of registered children (including the zero-children case). A child
// generation failure is propagated unchanged; no partial password is
// returned.
func (c *Composite) Generate() (string, error) {
	fragments := make([]string, 0, len(c.children))
	for _, child := range c.children {
		frag, err := child.Generate()
		if err != nil {
			return "", err
		}
		fragments = append(fragments, frag)
	}

	totalLen := c.Length()
	k := len(fragments)
	if totalLen <= k {
		return "", ErrInsufficientLength
	}

	var pool strings.Builder
	for _, frag := range fragments {
		pool.WriteString(frag)
	}

	filler, err := randstr.Generate(totalLen-k, pool.String())
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(totalLen)
	b.WriteString(filler)
	for _, frag := range fragments {
		sample, err := randstr.Generate(1, frag)
		if err != nil {
			return "", err
		}
		b.WriteString(sample)
	}

	return b.String(), nil
}
