package multidiff

import "strings"

// ApplyDiff applies diff's operations to source and returns the
// reconstructed string. When allowTruncated is false (strict mode), a
// Retain/Delete that would overrun the source cursor fails immediately,
// and leftover unconsumed source after the last operation is an error.
// When allowTruncated is true, an overrunning Retain/Delete instead stops
// application early and returns what has been built so far.
func ApplyDiff(source string, diff DiffResult, allowTruncated bool) (string, error) {
	if err := validateOperations(diff.Operations); err != nil {
		return "", err
	}

	// Fast paths (spec §4.6).
	if len(diff.Operations) == 0 {
		return source, nil
	}
	if isDeleteAllThenInsert(diff.Operations, source) {
		return diff.Operations[1].Text, nil
	}

	srcRunes := []rune(source)
	var result strings.Builder
	i := 0

	for _, op := range diff.Operations {
		switch op.Kind {
		case KindRetain:
			remaining := len(srcRunes) - i
			if op.Count > remaining {
				if !allowTruncated {
					return "", &InvalidRetain{Count: op.Count, Remaining: remaining}
				}
				return result.String(), nil
			}
			result.WriteString(string(srcRunes[i : i+op.Count]))
			i += op.Count
		case KindDelete:
			remaining := len(srcRunes) - i
			if op.Count > remaining {
				if !allowTruncated {
					return "", &InvalidDelete{Count: op.Count, Remaining: remaining}
				}
				i = len(srcRunes)
				return result.String(), nil
			}
			i += op.Count
		case KindInsert:
			result.WriteString(op.Text)
		}
	}

	if i < len(srcRunes) && !allowTruncated {
		return "", &IncompleteApplication{Unconsumed: len(srcRunes) - i}
	}

	return result.String(), nil
}

// isDeleteAllThenInsert reports whether ops is exactly
// [Delete(|source|), Insert(s)], the fast path of spec §4.6.
func isDeleteAllThenInsert(ops []Operation, source string) bool {
	if len(ops) != 2 {
		return false
	}
	if ops[0].Kind != KindDelete || ops[1].Kind != KindInsert {
		return false
	}
	return ops[0].Count == len([]rune(source))
}

// validateOperations rejects malformed operations before any execution,
// per spec §7's InvalidDiff.
func validateOperations(ops []Operation) error {
	for _, op := range ops {
		switch op.Kind {
		case KindRetain, KindDelete:
			if op.Count < 0 {
				return &InvalidDiff{Reason: "negative retain/delete count"}
			}
		case KindInsert:
			// no constraint beyond being a valid string
		default:
			return &InvalidDiff{Reason: "unknown operation kind"}
		}
	}
	return nil
}
