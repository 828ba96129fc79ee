package multidiff

// CreateOptions configures CreateDiff.
type CreateOptions struct {
	// Algorithm selects which differ produces the operations. The zero
	// value picks automatically per spec §4.2's selection heuristic.
	Algorithm Algorithm
	// IncludeMetadata attaches a Metadata block to the result.
	IncludeMetadata bool
	// SourceStartLine, when set, is recorded in metadata and also drives
	// ApplicationType auto-detection (spec §4.8).
	SourceStartLine *int
	// DestStartLine is accepted but not used: it is not recorded in
	// metadata and plays no role in apply or locate semantics.
	DestStartLine *int
}

// CreateDiff runs the requested algorithm between source and destination
// and returns the resulting DiffResult, per spec §4.4 and §6's
// create_diff operation.
func CreateDiff(source, destination string, opts CreateOptions) DiffResult {
	algorithm := opts.Algorithm
	if algorithm == "" {
		if preferFast(source, destination) {
			algorithm = AlgorithmFast
		} else {
			algorithm = AlgorithmSemantic
		}
	}

	var ops []Operation
	used := algorithm
	switch algorithm {
	case AlgorithmFast:
		ops = diffFast(source, destination)
	case AlgorithmSemantic:
		ops = diffSemantic(source, destination)
		if !selfValidates(source, destination, ops) {
			// Fall back to the fast differ on self-validation failure
			// (spec §4.4/§7) and record what was actually used.
			ops = diffFast(source, destination)
			used = AlgorithmFast
		}
	default:
		ops = diffFast(source, destination)
		used = AlgorithmFast
	}

	result := DiffResult{Operations: ops}
	if opts.IncludeMetadata {
		result.Metadata = buildMetadata(source, destination, used, opts)
		if h, err := computeDiffHash(result); err == nil {
			result.Metadata.DiffHash = h
		}
	}
	return result
}

// selfValidates applies ops to source and checks the result against
// destination, per spec §4.4's semantic-differ validation rule.
func selfValidates(source, destination string, ops []Operation) bool {
	got, err := ApplyDiff(source, DiffResult{Operations: ops}, false)
	if err != nil {
		return false
	}
	return got == destination
}

func buildMetadata(source, destination string, used Algorithm, opts CreateOptions) *Metadata {
	m := &Metadata{
		SourceStartLine:  opts.SourceStartLine,
		SourceTotalLines: len(splitLines(source)),
		AlgorithmUsed:    used,
	}
	// PrecedingContext/FollowingContext only carry excerpt-boundary meaning
	// (and only feed detectApplicationType/locateSection) when the caller
	// actually identifies source as an excerpt; source otherwise IS the
	// whole document, with no boundary to record.
	if opts.SourceStartLine != nil {
		m.PrecedingContext = leadingContext(source)
		m.FollowingContext = trailingContext(source)
	}
	src := source
	dst := destination
	m.SourceContent = &src
	m.DestinationContent = &dst
	m.ApplicationType = detectApplicationType(m)
	return m
}
