package multidiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Property 1: round-trip. ApplyDiff(source, CreateDiff(source, dest)) == dest.
func TestPropertyRoundTrip(t *testing.T) {
	cases := []struct{ a, b string }{
		{"Hello, world!", "Hello, Swift!"},
		{"line1\nline2\nline3\n", "line1\nline3\n"},
		{"", "brand new content"},
		{"everything removed", ""},
	}
	for _, c := range cases {
		diff := CreateDiff(c.a, c.b, CreateOptions{})
		got, err := ApplyDiff(c.a, diff, false)
		assert.NoError(t, err)
		assert.Equal(t, c.b, got)
	}
}

// Property 2: idempotence on identity. Diffing identical content yields a
// diff that is a no-op Retain and applies back to the same content.
func TestPropertyIdempotenceOnIdentity(t *testing.T) {
	content := "line1\nline2\nline3\n"
	diff := CreateDiff(content, content, CreateOptions{})
	for _, op := range diff.Operations {
		assert.Equal(t, KindRetain, op.Kind)
	}
	got, err := ApplyDiff(content, diff, false)
	assert.NoError(t, err)
	assert.Equal(t, content, got)
}

// Property 3: empty-source law. Diffing from empty content produces only
// Insert operations.
func TestPropertyEmptySourceLaw(t *testing.T) {
	diff := CreateDiff("", "fresh content\nsecond line\n", CreateOptions{})
	for _, op := range diff.Operations {
		assert.Equal(t, KindInsert, op.Kind)
	}
}

// Property 4: empty-destination law. Diffing to empty content produces
// only Delete operations.
func TestPropertyEmptyDestinationLaw(t *testing.T) {
	diff := CreateDiff("old content\nsecond line\n", "", CreateOptions{})
	for _, op := range diff.Operations {
		assert.Equal(t, KindDelete, op.Kind)
	}
}

// Property 5: structural conservation in strict mode. A diff's recorded
// source/destination lengths match the actual codepoint counts of the
// strings it was built from.
func TestPropertyStructuralConservation(t *testing.T) {
	source := "café naïve"
	destination := "café 🎊 naïve"
	diff := CreateDiff(source, destination, CreateOptions{})
	assert.Equal(t, len([]rune(source)), diff.SourceLength())
	assert.Equal(t, len([]rune(destination)), diff.DestinationLength())
}

// Property 6: canonical form. CreateDiff never emits zero-length
// operations or two adjacent operations of the same kind.
func TestPropertyCanonicalForm(t *testing.T) {
	cases := []struct{ a, b string }{
		{"Hello, world!", "Hello, Swift!"},
		{"line1\nline2\nline3\nline4\n", "line1\nCHANGED\nline3\nALSO CHANGED\n"},
		{"", ""},
		{"x", "x"},
	}
	for _, c := range cases {
		diff := CreateDiff(c.a, c.b, CreateOptions{})
		assert.True(t, diff.IsCanonical(), "case %q -> %q produced non-canonical ops: %+v", c.a, c.b, diff.Operations)
	}
}

// Property 9: determinism. Running CreateDiff twice on the same inputs
// yields byte-identical operation sequences.
func TestPropertyDeterminism(t *testing.T) {
	source := "one\ntwo\nthree\nfour\n"
	destination := "one\nTWO\nthree\nFOUR\nfive\n"
	first := CreateDiff(source, destination, CreateOptions{})
	second := CreateDiff(source, destination, CreateOptions{})
	assert.Equal(t, first.Operations, second.Operations)
}

// Property 10: a diff that does not require truncated handling applies
// identically through ApplySmartDiff and ApplyDiff.
func TestPropertySmartApplyMatchesStrictApplyWhenNotTruncated(t *testing.T) {
	source := "Hello, world!"
	destination := "Hello, Swift!"
	diff := CreateDiff(source, destination, CreateOptions{IncludeMetadata: true})

	viaStrict, err := ApplyDiff(source, diff, false)
	assert.NoError(t, err)
	viaSmart, err := ApplySmartDiff(source, diff)
	assert.NoError(t, err)
	assert.Equal(t, viaStrict, viaSmart)
}

// S4 from spec §8: applying a diff built from empty source reproduces the
// full destination.
func TestScenarioS4EmptySourceApply(t *testing.T) {
	destination := "entirely new file\nwith two lines\n"
	diff := CreateDiff("", destination, CreateOptions{})
	got, err := ApplyDiff("", diff, false)
	assert.NoError(t, err)
	assert.Equal(t, destination, got)
}

// S5 from spec §8: applying a diff built toward empty destination yields
// an empty result.
func TestScenarioS5EmptyDestinationApply(t *testing.T) {
	source := "entire file\nto be deleted\n"
	diff := CreateDiff(source, "", CreateOptions{})
	got, err := ApplyDiff(source, diff, false)
	assert.NoError(t, err)
	assert.Equal(t, "", got)
}
