package multidiff

// CreateUndoDiff synthesizes the inverse of diff by re-diffing
// destination back to source, per spec §4.9 and §6's create_undo_diff.
// Undo requires both SourceContent and DestinationContent to have been
// stored; without them there is nothing to invert, so nil is returned
// rather than guessing (spec §9).
func CreateUndoDiff(diff DiffResult) *DiffResult {
	if diff.Metadata == nil {
		return nil
	}
	m := diff.Metadata
	if m.SourceContent == nil || m.DestinationContent == nil {
		return nil
	}

	undo := CreateDiff(*m.DestinationContent, *m.SourceContent, CreateOptions{
		Algorithm:       m.AlgorithmUsed,
		IncludeMetadata: true,
	})
	return &undo
}
