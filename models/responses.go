// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Status codes carried by backend responses.
const (
	StatusOK           uint16 = 200
	StatusDuplicate    uint16 = 400
	StatusNotFound     uint16 = 404
	StatusMintingError uint16 = 499

	// StatusServiceUnavailable is reported by the client for replica health
	// checks that come back not serving.
	StatusServiceUnavailable uint16 = 503
)

// RequestResult is the status envelope returned by the envelope revision of
// the backend interface: a numeric code, a message and a typed body.
type RequestResult[T any] struct {
	Code    uint16 `json:"code"`
	Message string `json:"message"`
	Body    T      `json:"body"`
}

// OK reports whether the envelope carries a 2xx code.
func (r RequestResult[T]) OK() bool {
	return r.Code >= 200 && r.Code < 300
}

// NewRequestResult builds an envelope.
func NewRequestResult[T any](code uint16, message string, body T) RequestResult[T] {
	return RequestResult[T]{Code: code, Message: message, Body: body}
}

// StatusCode is the payload of every OperationCode variant.
type StatusCode struct {
	Code    uint16 `json:"code"`
	Message string `json:"message"`
}

// OperationCode is the operation-result variant returned by the variant
// revision of the backend interface. Exactly one field is set.
type OperationCode struct {
	DuplicateEntry *StatusCode `json:"DuplicateEntry,omitempty"`
	MintingError   *StatusCode `json:"MintingError,omitempty"`
	RemoveOk       *StatusCode `json:"RemoveOk,omitempty"`
	MintOk         *StatusCode `json:"MintOk,omitempty"`
	InsertError    *StatusCode `json:"InsertError,omitempty"`
	RetrieveError  *StatusCode `json:"RetrieveError,omitempty"`
}

// Variant returns the populated variant name and its status payload.
func (o OperationCode) Variant() (string, StatusCode) {
	switch {
	case o.DuplicateEntry != nil:
		return "DuplicateEntry", *o.DuplicateEntry
	case o.MintingError != nil:
		return "MintingError", *o.MintingError
	case o.RemoveOk != nil:
		return "RemoveOk", *o.RemoveOk
	case o.MintOk != nil:
		return "MintOk", *o.MintOk
	case o.InsertError != nil:
		return "InsertError", *o.InsertError
	case o.RetrieveError != nil:
		return "RetrieveError", *o.RetrieveError
	default:
		return "", StatusCode{}
	}
}

// IsOk reports whether the variant denotes success.
func (o OperationCode) IsOk() bool {
	return o.RemoveOk != nil || o.MintOk != nil
}

func (o OperationCode) Error() string {
	name, status := o.Variant()
	return fmt.Sprintf("%s(%d): %s", name, status.Code, status.Message)
}

func DuplicateEntry(message string) OperationCode {
	return OperationCode{DuplicateEntry: &StatusCode{Code: StatusDuplicate, Message: message}}
}

func MintingError(message string) OperationCode {
	return OperationCode{MintingError: &StatusCode{Code: StatusMintingError, Message: message}}
}

func RemoveOk(message string) OperationCode {
	return OperationCode{RemoveOk: &StatusCode{Code: StatusOK, Message: message}}
}

func MintOk(message string) OperationCode {
	return OperationCode{MintOk: &StatusCode{Code: StatusOK, Message: message}}
}

func InsertError(message string) OperationCode {
	return OperationCode{InsertError: &StatusCode{Code: StatusDuplicate, Message: message}}
}

func RetrieveError(message string) OperationCode {
	return OperationCode{RetrieveError: &StatusCode{Code: StatusNotFound, Message: message}}
}

// Result is a two-armed variant: Ok carries the value, Err the error payload.
type Result[T, E any] struct {
	Ok  *T `json:"Ok,omitempty"`
	Err *E `json:"Err,omitempty"`
}

func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{Ok: &v}
}

func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{Err: &e}
}

// Outcome is the revision-independent view of a backend response that the
// client prints: the status code, the message and the decoded payload.
type Outcome struct {
	Code    uint16 `json:"code"`
	Message string `json:"message"`
	Variant string `json:"variant,omitempty"`
	Body    any    `json:"body,omitempty"`
}

// OutcomeFromEnvelope converts a status envelope.
func OutcomeFromEnvelope[T any](r RequestResult[T]) Outcome {
	return Outcome{Code: r.Code, Message: r.Message, Body: r.Body}
}

// OutcomeFromOperationCode converts an operation-result variant.
func OutcomeFromOperationCode(o OperationCode) Outcome {
	name, status := o.Variant()
	return Outcome{Code: status.Code, Message: status.Message, Variant: name}
}

// OK reports whether the outcome carries a 2xx code.
func (o Outcome) OK() bool {
	return o.Code >= 200 && o.Code < 300
}
