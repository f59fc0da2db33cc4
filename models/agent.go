// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Request types of a canister call envelope.
const (
	RequestTypeQuery = "query"
	RequestTypeCall  = "call"
)

// Reply statuses.
const (
	StatusReplied  = "replied"
	StatusRejected = "rejected"
)

// RejectCode classifies a rejected canister call.
type RejectCode uint8

const (
	RejectSysFatal           RejectCode = 1
	RejectSysTransient       RejectCode = 2
	RejectDestinationInvalid RejectCode = 3
	RejectCanisterReject     RejectCode = 4
	RejectCanisterError      RejectCode = 5
)

func (c RejectCode) String() string {
	switch c {
	case RejectSysFatal:
		return "SysFatal"
	case RejectSysTransient:
		return "SysTransient"
	case RejectDestinationInvalid:
		return "DestinationInvalid"
	case RejectCanisterReject:
		return "CanisterReject"
	case RejectCanisterError:
		return "CanisterError"
	default:
		return fmt.Sprintf("RejectCode(%d)", uint8(c))
	}
}

// CallEnvelope is the body of a query or update request sent to the replica.
// Arg holds the codec-encoded argument tuple.
type CallEnvelope struct {
	RequestType   string    `json:"request_type"`
	CanisterID    Principal `json:"canister_id"`
	MethodName    string    `json:"method_name"`
	Arg           []byte    `json:"arg"`
	Sender        Principal `json:"sender"`
	Nonce         []byte    `json:"nonce,omitempty"`
	IngressExpiry uint64    `json:"ingress_expiry"`
}

// ReplyArg carries the codec-encoded result tuple of a replied call.
type ReplyArg struct {
	Arg []byte `json:"arg"`
}

// CallReply is the replica's answer to a query or update request.
type CallReply struct {
	Status        string     `json:"status"`
	Reply         *ReplyArg  `json:"reply,omitempty"`
	RejectCode    RejectCode `json:"reject_code,omitempty"`
	RejectMessage string     `json:"reject_message,omitempty"`
	ErrorCode     string     `json:"error_code,omitempty"`
}

// Replied builds a successful reply.
func Replied(arg []byte) CallReply {
	return CallReply{Status: StatusReplied, Reply: &ReplyArg{Arg: arg}}
}

// Rejected builds a rejection.
func Rejected(code RejectCode, errorCode, message string) CallReply {
	return CallReply{Status: StatusRejected, RejectCode: code, ErrorCode: errorCode, RejectMessage: message}
}

// ReplicaStatus is returned by the replica status endpoint.
type ReplicaStatus struct {
	ReplicaHealthStatus string `json:"replica_health_status"`
	ImplVersion         string `json:"impl_version"`
	ImplRevision        string `json:"impl_revision"`
	BuildDate           string `json:"build_date"`
	Revision            string `json:"interface_revision"`
}
