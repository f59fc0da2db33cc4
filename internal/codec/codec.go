// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec serialises canister call envelopes and argument tuples.
//
// Two wire formats are supported: CBOR (the default, as spoken by the replica
// HTTP interface) and JSON (handy for debugging with curl). Both encode an
// argument list as an array; decoding a tuple tolerates missing trailing
// elements, which are left at their zero values.
package codec

import (
	"errors"
	"fmt"
	"mime"
	"strings"
)

// Codec encodes values and argument tuples for one wire format.
type Codec interface {
	// Name is the configuration name of the codec ("cbor", "json").
	Name() string

	// ContentType is the HTTP media type of encoded payloads.
	ContentType() string

	// Marshal encodes a single value.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes a single value into v.
	Unmarshal(data []byte, v any) error

	// EncodeTuple encodes args as an argument tuple.
	EncodeTuple(args ...any) ([]byte, error)

	// DecodeTuple decodes an argument tuple into dst, element by element.
	DecodeTuple(data []byte, dst ...any) error
}

const (
	NameCBOR = "cbor"
	NameJSON = "json"
)

var (
	// ErrUnknownCodec is returned for unsupported codec names or media types.
	ErrUnknownCodec = errors.New("unknown codec")
	// ErrTupleTooLong is returned when a tuple has more elements than expected.
	ErrTupleTooLong = errors.New("argument tuple has too many elements")
)

// ByName returns the codec registered under name. An empty name selects CBOR.
func ByName(name string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameCBOR:
		return NewCBOR(), nil
	case NameJSON:
		return NewJSON(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
}

// ByContentType returns the codec matching an HTTP Content-Type header.
func ByContentType(contentType string) (Codec, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, contentType)
	}

	switch mediaType {
	case contentTypeCBOR:
		return NewCBOR(), nil
	case contentTypeJSON:
		return NewJSON(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, contentType)
	}
}

func checkTupleLength(got, want int) error {
	if got > want {
		return fmt.Errorf("%w: got %d, want at most %d", ErrTupleTooLong, got, want)
	}
	return nil
}
