package multidiff

import "strings"

// ApplicationType tells ApplySmartDiff whether a diff's operations target
// the entire document or only a located excerpt window within it.
type ApplicationType string

const (
	// ApplicationRequiresFullSource means the diff applies to the whole
	// document as-is.
	ApplicationRequiresFullSource ApplicationType = "requires-full-source"
	// ApplicationRequiresTruncatedSource means the diff was built from an
	// excerpt and must be relocated via the section locator before
	// application.
	ApplicationRequiresTruncatedSource ApplicationType = "requires-truncated-source"
)

// maxContextCodepoints bounds precedingContext/followingContext capture,
// per spec §3.
const maxContextCodepoints = 30

// Metadata carries verification and provenance data alongside a
// DiffResult's operations, per spec §3.
type Metadata struct {
	SourceStartLine    *int
	SourceTotalLines   int
	PrecedingContext   string
	FollowingContext   string
	SourceContent      *string
	DestinationContent *string
	AlgorithmUsed      Algorithm
	DiffHash           string
	ApplicationType    ApplicationType
	DiffGenerationTime *float64
}

// leadingContext returns up to maxContextCodepoints leading codepoints of
// s.
func leadingContext(s string) string {
	r := []rune(s)
	if len(r) <= maxContextCodepoints {
		return s
	}
	return string(r[:maxContextCodepoints])
}

// trailingContext returns up to maxContextCodepoints trailing codepoints
// of s.
func trailingContext(s string) string {
	r := []rune(s)
	if len(r) <= maxContextCodepoints {
		return s
	}
	return string(r[len(r)-maxContextCodepoints:])
}

// detectApplicationType implements spec §4.8's auto-detection rule at
// diff-creation time.
func detectApplicationType(m *Metadata) ApplicationType {
	if m == nil {
		return ApplicationRequiresFullSource
	}
	if m.SourceStartLine != nil && *m.SourceStartLine > 0 {
		return ApplicationRequiresTruncatedSource
	}
	if m.PrecedingContext != "" || m.FollowingContext != "" {
		return ApplicationRequiresTruncatedSource
	}
	return ApplicationRequiresFullSource
}

// requiresTruncatedHandling implements spec §4.8's decision table for
// whether a provided document should be treated as a superset of the
// diff's original (stored) source.
func requiresTruncatedHandling(provided, stored string) bool {
	if stored == "" {
		return false
	}
	if provided == stored {
		return false
	}
	switch {
	case strings.Contains(provided, stored):
		return true
	case strings.Contains(stored, provided):
		return false
	default:
		return true
	}
}
