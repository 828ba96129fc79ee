package multidiff

// Algorithm names which differ produced (or should produce) a DiffResult's
// operations.
type Algorithm string

const (
	// AlgorithmFast is the prefix/suffix differ (spec §4.2).
	AlgorithmFast Algorithm = "fast"
	// AlgorithmSemantic is the line-LCS differ (spec §4.3).
	AlgorithmSemantic Algorithm = "semantic"
)
