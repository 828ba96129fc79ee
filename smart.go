package multidiff

import "strings"

// ApplySmartDiff applies diff to document, automatically deciding between
// full-document application and excerpt relocation (spec §4.7/§4.8/§6's
// apply_smart_diff).
func ApplySmartDiff(document string, diff DiffResult) (string, error) {
	if !needsTruncatedHandling(document, diff) {
		return ApplyDiff(document, diff, false)
	}

	m := diff.Metadata
	excerptLines := m.SourceTotalLines
	lines := splitLines(document)
	loc := locateSection(lines, m.PrecedingContext, m.FollowingContext, excerptLines)
	if !loc.found {
		// No section clears the confidence floor: fall back to strict
		// application against the full document and propagate whatever
		// strict error results, unchanged (spec §7).
		return ApplyDiff(document, diff, false)
	}

	original := joinLines(lines[loc.start:loc.end])
	applied, err := ApplyDiff(original, diff, true)
	if err != nil {
		return "", err
	}
	applied = preserveTrailingFormat(original, applied)

	var b strings.Builder
	b.WriteString(joinLines(lines[:loc.start]))
	b.WriteString(applied)
	b.WriteString(joinLines(lines[loc.end:]))
	return b.String(), nil
}

// needsTruncatedHandling decides whether diff should be treated as
// targeting an excerpt within document rather than the whole of it.
func needsTruncatedHandling(document string, diff DiffResult) bool {
	m := diff.Metadata
	if m == nil {
		return false
	}
	if m.SourceContent != nil {
		return requiresTruncatedHandling(document, *m.SourceContent)
	}
	return m.ApplicationType == ApplicationRequiresTruncatedSource
}

// preserveTrailingFormat implements SPEC_FULL.md's OQ1 decision: when the
// located window ended with a newline (or a blank line) and the applied
// text does not, the newline (or blank line) is restored. Trailing
// newlines the applied text already has, including a blank line the
// modification introduced, are kept; nothing is ever removed.
func preserveTrailingFormat(original, applied string) string {
	if !strings.HasSuffix(original, "\n") {
		return applied
	}
	if !strings.HasSuffix(applied, "\n") {
		applied += "\n"
	}
	if strings.HasSuffix(original, "\n\n") && !strings.HasSuffix(applied, "\n\n") {
		applied = strings.TrimRight(applied, "\n") + "\n\n"
	}
	return applied
}
