package models

import (
	"encoding/json"
	"fmt"
)

// jsonKind classifies a raw JSON value by its first significant byte.
// The resume sub-fields accept a small closed set of shapes per field;
// everything else is either defaulted (top level) or flagged malformed
// (list entries) so no value is ever silently dropped.
type jsonKind int

const (
	kindInvalid jsonKind = iota
	kindString
	kindObject
	kindArray
	kindOther // number, bool, null
)

func kindOf(data []byte) jsonKind {
	for _, c := range data {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		case '"':
			return kindString
		case '{':
			return kindObject
		case '[':
			return kindArray
		default:
			return kindOther
		}
	}
	return kindInvalid
}

// FlexString is a JSON value that may arrive as a string or a number
// (resume submissions carry numeric years and GPAs). Numbers are
// normalized to their decimal string form.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	switch kindOf(data) {
	case kindString:
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	case kindOther:
		if string(data) == "null" {
			*f = ""
			return nil
		}
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("expected string or number, got %s", data)
		}
		*f = FlexString(n.String())
		return nil
	default:
		return fmt.Errorf("expected string or number, got %s", data)
	}
}

// entryVariant is the shared bookkeeping for list entries that accept
// either an object or a plain string.
type entryVariant struct {
	Scalar    string `json:"-"`
	IsScalar  bool   `json:"-"`
	Malformed bool   `json:"-"`
}

// unmarshalEntry decodes one list entry. Strings become the scalar
// variant, objects decode into obj, and anything else marks the entry
// malformed for the validator to report.
func unmarshalEntry(data []byte, v *entryVariant, obj any) error {
	switch kindOf(data) {
	case kindString:
		v.IsScalar = true
		return json.Unmarshal(data, &v.Scalar)
	case kindObject:
		if err := json.Unmarshal(data, obj); err != nil {
			v.Malformed = true
		}
		return nil
	default:
		v.Malformed = true
		return nil
	}
}

// unmarshalVariantList decodes a list field. A non-array value (the
// original clients sometimes send nothing at all, or a scalar) defaults
// to an empty list rather than failing the whole submission.
func unmarshalVariantList[T any](data []byte, dst *[]T) error {
	if kindOf(data) != kindArray {
		*dst = nil
		return nil
	}
	return json.Unmarshal(data, dst)
}
