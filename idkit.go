package idkit

import (
	"errors"

	"github.com/dmitrymomot/idkit/pkg/aadhaar"
	"github.com/dmitrymomot/idkit/pkg/gstin"
	"github.com/dmitrymomot/idkit/pkg/ifsc"
	"github.com/dmitrymomot/idkit/pkg/pan"
	"github.com/dmitrymomot/idkit/pkg/vpa"
)

// ErrUnknownType indicates a DocumentType outside the supported set.
var ErrUnknownType = errors.New("unknown document type")

// DocumentType identifies one of the supported identifier formats.
type DocumentType string

const (
	TypePAN     DocumentType = "pan"
	TypeAadhaar DocumentType = "aadhaar"
	TypeGSTIN   DocumentType = "gstin"
	TypeIFSC    DocumentType = "ifsc"
	TypeVPA     DocumentType = "vpa"
)

// document bundles the per-format operations behind a uniform signature.
type document struct {
	validate  func(string) error
	normalize func(string) string
}

// documentTypes fixes the Detect scan order, most specific format first.
var documentTypes = []DocumentType{TypeGSTIN, TypeAadhaar, TypePAN, TypeIFSC, TypeVPA}

var documents = map[DocumentType]document{
	TypePAN: {
		validate:  func(s string) error { _, err := pan.Parse(s); return err },
		normalize: pan.Normalize,
	},
	TypeAadhaar: {
		validate:  func(s string) error { _, err := aadhaar.Parse(s); return err },
		normalize: aadhaar.Normalize,
	},
	TypeGSTIN: {
		validate:  func(s string) error { _, err := gstin.Parse(s); return err },
		normalize: gstin.Normalize,
	},
	TypeIFSC: {
		validate:  func(s string) error { _, err := ifsc.Parse(s); return err },
		normalize: ifsc.Normalize,
	},
	TypeVPA: {
		validate:  func(s string) error { _, err := vpa.Parse(s); return err },
		normalize: vpa.Normalize,
	},
}

// Validate checks raw against the named format and returns the format's own
// validation error, or ErrUnknownType for an unsupported DocumentType.
func Validate(t DocumentType, raw string) error {
	doc, ok := documents[t]
	if !ok {
		return ErrUnknownType
	}
	return doc.validate(raw)
}

// IsValid reports whether raw is a valid document of the named format.
func IsValid(t DocumentType, raw string) bool {
	return Validate(t, raw) == nil
}

// Normalize applies the named format's normalization without validating.
// It returns raw unchanged for an unsupported DocumentType.
func Normalize(t DocumentType, raw string) string {
	doc, ok := documents[t]
	if !ok {
		return raw
	}
	return doc.normalize(raw)
}

// Detect returns every document type the input is valid as, in a stable
// order from most to least specific. The five grammars rarely overlap, but
// callers should treat multiple matches as ambiguous rather than picking
// one silently.
func Detect(raw string) []DocumentType {
	var matches []DocumentType
	for _, t := range documentTypes {
		if documents[t].validate(raw) == nil {
			matches = append(matches, t)
		}
	}
	return matches
}
