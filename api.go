package multidiff

// CreateBase64Diff creates a diff and returns its base64-enveloped
// canonical encoding, per spec §6. Metadata (and the hash it carries) is
// attached only when opts.IncludeMetadata asks for it; callers that
// explicitly opt out get an encoding with no metadata block at all.
func CreateBase64Diff(source, destination string, opts CreateOptions) (string, error) {
	return EncodeBase64(CreateDiff(source, destination, opts))
}

// ApplyBase64Diff decodes a base64-enveloped diff and applies it to
// source, per spec §6.
func ApplyBase64Diff(source, encoded string, allowTruncated bool) (string, error) {
	diff, err := DecodeBase64(encoded)
	if err != nil {
		return "", err
	}
	return ApplyDiff(source, diff, allowTruncated)
}

// ApplyBase64SmartDiff decodes a base64-enveloped diff and applies it via
// ApplySmartDiff, per spec §6.
func ApplyBase64SmartDiff(document, encoded string) (string, error) {
	diff, err := DecodeBase64(encoded)
	if err != nil {
		return "", err
	}
	return ApplySmartDiff(document, diff)
}

// VerifyDiff checks a diff's integrity, per spec §4.9 and §6. It
// recomputes the SHA-256 hash over the canonical encoding (hash field
// excluded) and compares it against the stored DiffHash; when both
// SourceContent and DestinationContent are present it additionally
// re-applies the diff and checks the result against the stored
// destination.
func VerifyDiff(diff DiffResult) bool {
	if diff.Metadata == nil || diff.Metadata.DiffHash == "" {
		return false
	}
	want, err := computeDiffHash(diff)
	if err != nil || want != diff.Metadata.DiffHash {
		return false
	}

	m := diff.Metadata
	if m.SourceContent != nil && m.DestinationContent != nil {
		got, err := ApplyDiff(*m.SourceContent, diff, false)
		if err != nil || got != *m.DestinationContent {
			return false
		}
	}
	return true
}
