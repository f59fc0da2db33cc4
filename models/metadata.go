package models

import (
	"encoding/base64"
	"fmt"
	"strconv"
)

// MetadataValue is a variant holding exactly one of Text, Int, Nat or Blob.
// On the wire it is encoded as a single-key object, e.g. {"Text":"logo"}.
type MetadataValue struct {
	Text *string `json:"Text,omitempty"`
	Int  *int64  `json:"Int,omitempty"`
	Nat  *uint64 `json:"Nat,omitempty"`
	Blob []byte  `json:"Blob,omitempty"`
}

func TextValue(s string) MetadataValue { return MetadataValue{Text: &s} }
func IntValue(i int64) MetadataValue   { return MetadataValue{Int: &i} }
func NatValue(n uint64) MetadataValue  { return MetadataValue{Nat: &n} }
func BlobValue(b []byte) MetadataValue { return MetadataValue{Blob: b} }

// Kind returns the name of the populated variant, or "" for an empty value.
func (m MetadataValue) Kind() string {
	switch {
	case m.Text != nil:
		return "Text"
	case m.Int != nil:
		return "Int"
	case m.Nat != nil:
		return "Nat"
	case m.Blob != nil:
		return "Blob"
	default:
		return ""
	}
}

// IsValid reports whether exactly one variant is populated.
func (m MetadataValue) IsValid() bool {
	n := 0
	if m.Text != nil {
		n++
	}
	if m.Int != nil {
		n++
	}
	if m.Nat != nil {
		n++
	}
	if m.Blob != nil {
		n++
	}
	return n == 1
}

func (m MetadataValue) String() string {
	switch {
	case m.Text != nil:
		return *m.Text
	case m.Int != nil:
		return strconv.FormatInt(*m.Int, 10)
	case m.Nat != nil:
		return strconv.FormatUint(*m.Nat, 10)
	case m.Blob != nil:
		return fmt.Sprintf("blob(%d bytes) %s", len(m.Blob), base64.StdEncoding.EncodeToString(m.Blob[:min(len(m.Blob), 16)]))
	default:
		return ""
	}
}

// MetadataEntry is one (key, value) pair of collection or token metadata.
type MetadataEntry struct {
	Key   string        `json:"key"`
	Value MetadataValue `json:"value"`
}
