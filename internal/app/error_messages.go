// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// replica handlers and canister dispatch tables, and matched by the client
// when it classifies rejections.
//
// All Msg* constants are human-readable message strings that end up in
// reject messages, HTTP response bodies or log entries. Keeping them in one
// place keeps the wording identical on both sides of the wire.
package app

const (
	// MsgInvalidDataProvided is returned when a request body or an argument
	// tuple cannot be decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected replica-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a delegation bearer token
	// is expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgCallerIsAnonymous is the reject message of methods guarded against
	// the anonymous principal.
	MsgCallerIsAnonymous = "Caller is anonymous."

	// MsgCanisterNotFound is the reject message for calls addressed to an
	// unknown canister id.
	MsgCanisterNotFound = "canister not found"

	// MsgMethodNotFound is the reject message for unknown method names.
	MsgMethodNotFound = "method not found"

	// MsgQueryToUpdateMethod is the reject message for an update method
	// invoked through the query endpoint.
	MsgQueryToUpdateMethod = "update method cannot be called as a query"

	// MsgNotCollectionOwner is the reject message of owner-only ledger and
	// factory methods.
	MsgNotCollectionOwner = "caller is not the collection owner"

	// MsgInvalidDelegation is returned when a delegation challenge is
	// malformed, stale or carries a bad signature.
	MsgInvalidDelegation = "invalid delegation request"

	// MsgTooManyRequests is returned when a caller exceeds its call rate.
	MsgTooManyRequests = "too many requests"
)

// Reject error codes attached to rejections, following the replica's
// IC0xxx numbering.
const (
	ErrorCodeCanisterNotFound = "IC0301"
	ErrorCodeMethodNotFound   = "IC0302"
	ErrorCodeCanisterReject   = "IC0406"
	ErrorCodeCanisterError    = "IC0503"
	ErrorCodeInvalidArgument  = "IC0504"
)

// Ledger trap messages.
const (
	MsgExceedsMaxTakeValue      = "Exceeds Max Take Value"
	MsgExceedsMaxQueryBatchSize = "Exceeds Max Query Batch Size"
)

// Backend status messages shared by both interface revisions.
const (
	MsgAllNFTsMinted   = "All NFTs has been minted"
	MsgAllGroups       = "All gorups"
	MsgAllEvents       = "All events"
	MsgDeleteOK        = "Delete of the entry ok"
	MsgCollections     = "All collections"
	MsgUserCollections = "User collections"
	MsgUserTokens      = "User tokens"

	FmtGroupMembers     = "Group memebers for %s"
	FmtProxyOK          = "Correctly retrieved information for the collection with ID = %s"
	FmtTransferred      = "Correctly transferred from %s"
	FmtDuplicateEntry   = "Duplicate entry for %s"
	FmtErrorMinting     = "Error minting token for %s"
	FmtErrorMintingNFT  = "Error minting NFT for user %s : %s"
	FmtEventNotFound    = "Cannot find event with ID = %s"
	FmtGroupNotFound    = "Not found group with id = %s"
	FmtGroupNotFoundV2  = "Group with ID = %s not found"
	FmtEventNotFoundV2  = "Event with ID = %s not found"
	FmtCollectionFailed = "Error calling %s on %s"
)
