package multidiff

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
)

// wireOp is the single-object-per-operation wire shape of spec §4.10 and
// §6: {"=": n} | {"+": "text"} | {"-": n}.
type wireOp struct {
	Retain *int    `json:"=,omitempty"`
	Insert *string `json:"+,omitempty"`
	Delete *int    `json:"-,omitempty"`
}

// wireMetadata uses the compact 3-letter field keys spec §4.10 mandates.
type wireMetadata struct {
	SourceStartLine    *int     `json:"str,omitempty"`
	SourceTotalLines   int      `json:"cnt,omitempty"`
	PrecedingContext   string   `json:"pre,omitempty"`
	FollowingContext   string   `json:"fol,omitempty"`
	SourceContent      *string  `json:"src,omitempty"`
	DestinationContent *string  `json:"dst,omitempty"`
	AlgorithmUsed      string   `json:"alg,omitempty"`
	DiffHash           string   `json:"hsh,omitempty"`
	ApplicationType    string   `json:"app,omitempty"`
	DiffGenerationTime *float64 `json:"tim,omitempty"`
}

// wireDiff is the canonical, directly-marshalable shape of a DiffResult.
type wireDiff struct {
	Ops  []wireOp      `json:"ops"`
	Meta *wireMetadata `json:"meta,omitempty"`
}

func toWireOp(op Operation) wireOp {
	switch op.Kind {
	case KindRetain:
		n := op.Count
		return wireOp{Retain: &n}
	case KindDelete:
		n := op.Count
		return wireOp{Delete: &n}
	default:
		s := op.Text
		return wireOp{Insert: &s}
	}
}

func fromWireOp(w wireOp) (Operation, error) {
	switch {
	case w.Retain != nil:
		return Retain(*w.Retain), nil
	case w.Delete != nil:
		return Delete(*w.Delete), nil
	case w.Insert != nil:
		return Insert(*w.Insert), nil
	default:
		return Operation{}, &InvalidDiff{Reason: "wire operation carries no payload"}
	}
}

func toWireMetadata(m *Metadata) *wireMetadata {
	if m == nil {
		return nil
	}
	return &wireMetadata{
		SourceStartLine:    m.SourceStartLine,
		SourceTotalLines:   m.SourceTotalLines,
		PrecedingContext:   m.PrecedingContext,
		FollowingContext:   m.FollowingContext,
		SourceContent:      m.SourceContent,
		DestinationContent: m.DestinationContent,
		AlgorithmUsed:      string(m.AlgorithmUsed),
		DiffHash:           m.DiffHash,
		ApplicationType:    string(m.ApplicationType),
		DiffGenerationTime: m.DiffGenerationTime,
	}
}

func fromWireMetadata(w *wireMetadata) *Metadata {
	if w == nil {
		return nil
	}
	return &Metadata{
		SourceStartLine:    w.SourceStartLine,
		SourceTotalLines:   w.SourceTotalLines,
		PrecedingContext:   w.PrecedingContext,
		FollowingContext:   w.FollowingContext,
		SourceContent:      w.SourceContent,
		DestinationContent: w.DestinationContent,
		AlgorithmUsed:      Algorithm(w.AlgorithmUsed),
		DiffHash:           w.DiffHash,
		ApplicationType:    ApplicationType(w.ApplicationType),
		DiffGenerationTime: w.DiffGenerationTime,
	}
}

// canonicalBytes produces the canonical encoding used both for transport
// and for integrity hashing. When excludeHash is true, the metadata's hsh
// field is omitted, matching spec §4.9's "hash over the encoding without
// the hash field" rule.
func canonicalBytes(d DiffResult, excludeHash bool) ([]byte, error) {
	wd := wireDiff{Ops: make([]wireOp, len(d.Operations))}
	for i, op := range d.Operations {
		wd.Ops[i] = toWireOp(op)
	}
	wd.Meta = toWireMetadata(d.Metadata)
	if excludeHash && wd.Meta != nil {
		stripped := *wd.Meta
		stripped.DiffHash = ""
		wd.Meta = &stripped
	}
	b, err := json.Marshal(wd)
	if err != nil {
		return nil, &EncodingFailed{Cause: err}
	}
	return b, nil
}

// computeDiffHash returns the lowercase hex SHA-256 digest of d's
// canonical encoding with the hash field excluded (spec §4.9).
func computeDiffHash(d DiffResult) (string, error) {
	b, err := canonicalBytes(d, true)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}

// Encode produces the canonical JSON encoding of d (spec §4.10's contract,
// hash field included as stored).
func Encode(d DiffResult) ([]byte, error) {
	return canonicalBytes(d, false)
}

// Decode parses the canonical JSON encoding back into a DiffResult. Decode
// is the inverse of Encode: decode(encode(d)) == d for any DiffResult.
func Decode(b []byte) (DiffResult, error) {
	var wd wireDiff
	if err := json.Unmarshal(b, &wd); err != nil {
		return DiffResult{}, &DecodingFailed{Cause: err}
	}
	ops := make([]Operation, len(wd.Ops))
	for i, w := range wd.Ops {
		op, err := fromWireOp(w)
		if err != nil {
			return DiffResult{}, &DecodingFailed{Cause: err}
		}
		ops[i] = op
	}
	return DiffResult{Operations: ops, Metadata: fromWireMetadata(wd.Meta)}, nil
}

// EncodeBase64 wraps Encode's output in a base64 envelope, per spec
// §4.10.
func EncodeBase64(d DiffResult) (string, error) {
	b, err := Encode(d)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// DecodeBase64 is the inverse of EncodeBase64.
func DecodeBase64(s string) (DiffResult, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return DiffResult{}, &DecodingFailed{Cause: err}
	}
	return Decode(b)
}
