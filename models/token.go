// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"math"
	"strconv"
)

// MaxTokenID is the largest token id a ledger accepts. Ids are stored as
// signed 64-bit integers and the id after the last minted one must fit too.
const MaxTokenID uint64 = math.MaxInt64 - 1

// Token metadata keys stored for every minted token.
const (
	TokenMetadataName        = "Name"
	TokenMetadataSymbol      = "Symbol"
	TokenMetadataDescription = "Description"
	TokenMetadataLogo        = "logo"
)

// MintArg is the argument of icrc7_mint. A nil TokenName defaults to
// "<symbol> <token_id>".
type MintArg struct {
	FromSubaccount   []byte  `json:"from_subaccount,omitempty"`
	To               Account `json:"to"`
	TokenID          uint64  `json:"token_id"`
	Memo             []byte  `json:"memo,omitempty"`
	TokenName        *string `json:"token_name,omitempty"`
	TokenDescription *string `json:"token_description,omitempty"`
	TokenLogo        *string `json:"token_logo,omitempty"`
}

// DefaultTokenName returns the name given to tokens minted without one.
func DefaultTokenName(symbol string, tokenID uint64) string {
	return symbol + " " + strconv.FormatUint(tokenID, 10)
}

// GenericError is the payload of the generic ICRC error variants.
type GenericError struct {
	ErrorCode uint64 `json:"error_code"`
	Message   string `json:"message"`
}

// Unit marks payload-less variants on the wire ({"Unauthorized":{}}).
type Unit struct{}

// MintError is the error variant of icrc7_mint.
type MintError struct {
	SupplyCapReached    *Unit         `json:"SupplyCapReached,omitempty"`
	Unauthorized        *Unit         `json:"Unauthorized,omitempty"`
	TokenIDAlreadyExist *Unit         `json:"TokenIdAlreadyExist,omitempty"`
	TokenIDMinimumLimit *Unit         `json:"TokenIdMinimumLimit,omitempty"`
	GenericError        *GenericError `json:"GenericError,omitempty"`
	GenericBatchError   *GenericError `json:"GenericBatchError,omitempty"`
}

func (e MintError) Error() string {
	switch {
	case e.SupplyCapReached != nil:
		return "SupplyCapReached"
	case e.Unauthorized != nil:
		return "Unauthorized"
	case e.TokenIDAlreadyExist != nil:
		return "TokenIdAlreadyExist"
	case e.TokenIDMinimumLimit != nil:
		return "TokenIdMinimumLimit"
	case e.GenericError != nil:
		return fmt.Sprintf("GenericError(%d): %s", e.GenericError.ErrorCode, e.GenericError.Message)
	case e.GenericBatchError != nil:
		return fmt.Sprintf("GenericBatchError(%d): %s", e.GenericBatchError.ErrorCode, e.GenericBatchError.Message)
	default:
		return "unknown mint error"
	}
}

// MintResult is Ok(token_id) or Err(MintError).
type MintResult = Result[uint64, MintError]

// TransferArg is one entry of an icrc7_transfer batch.
type TransferArg struct {
	FromSubaccount []byte  `json:"from_subaccount,omitempty"`
	To             Account `json:"to"`
	TokenID        uint64  `json:"token_id"`
	Memo           []byte  `json:"memo,omitempty"`
	CreatedAtTime  *uint64 `json:"created_at_time,omitempty"`
}

// LedgerTime carries the ledger clock of a CreatedInFuture rejection.
type LedgerTime struct {
	LedgerTime uint64 `json:"ledger_time"`
}

// DuplicateOf points at the transaction a duplicate transfer matched.
type DuplicateOf struct {
	DuplicateOf uint64 `json:"duplicate_of"`
}

// TransferError is the error variant of a single icrc7_transfer entry.
type TransferError struct {
	NonExistingTokenID *Unit         `json:"NonExistingTokenId,omitempty"`
	InvalidRecipient   *Unit         `json:"InvalidRecipient,omitempty"`
	Unauthorized       *Unit         `json:"Unauthorized,omitempty"`
	TooOld             *Unit         `json:"TooOld,omitempty"`
	CreatedInFuture    *LedgerTime   `json:"CreatedInFuture,omitempty"`
	Duplicate          *DuplicateOf  `json:"Duplicate,omitempty"`
	GenericError       *GenericError `json:"GenericError,omitempty"`
	GenericBatchError  *GenericError `json:"GenericBatchError,omitempty"`
}

func (e TransferError) Error() string {
	switch {
	case e.NonExistingTokenID != nil:
		return "NonExistingTokenId"
	case e.InvalidRecipient != nil:
		return "InvalidRecipient"
	case e.Unauthorized != nil:
		return "Unauthorized"
	case e.TooOld != nil:
		return "TooOld"
	case e.CreatedInFuture != nil:
		return fmt.Sprintf("CreatedInFuture(ledger_time=%d)", e.CreatedInFuture.LedgerTime)
	case e.Duplicate != nil:
		return fmt.Sprintf("Duplicate(duplicate_of=%d)", e.Duplicate.DuplicateOf)
	case e.GenericError != nil:
		return fmt.Sprintf("GenericError(%d): %s", e.GenericError.ErrorCode, e.GenericError.Message)
	case e.GenericBatchError != nil:
		return fmt.Sprintf("GenericBatchError(%d): %s", e.GenericBatchError.ErrorCode, e.GenericBatchError.Message)
	default:
		return "unknown transfer error"
	}
}

// IsBatchError reports whether the error applies to the whole batch.
func (e TransferError) IsBatchError() bool {
	return e.GenericBatchError != nil
}

// TransferResult is the per-entry result of icrc7_transfer: Ok(tx_id) or
// Err(TransferError). A nil entry means the argument was not processed.
type TransferResult = Result[uint64, TransferError]

// TokenMetadata is the metadata of a single token, or nil when the token
// does not exist.
type TokenMetadata struct {
	TokenID  uint64          `json:"token_id"`
	Metadata []MetadataEntry `json:"metadata,omitempty"`
}

// Token is a minted token as stored by the ledger.
type Token struct {
	Collection  Principal `json:"collection"`
	ID          uint64    `json:"id"`
	Owner       Account   `json:"owner"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Logo        *string   `json:"logo,omitempty"`
}

// Metadata returns the token metadata map entries.
func (t Token) Metadata(symbol string) []MetadataEntry {
	entries := []MetadataEntry{
		{Key: TokenMetadataName, Value: TextValue(t.Name)},
		{Key: TokenMetadataSymbol, Value: TextValue(symbol)},
	}
	if t.Description != nil {
		entries = append(entries, MetadataEntry{Key: TokenMetadataDescription, Value: TextValue(*t.Description)})
	}
	if t.Logo != nil {
		entries = append(entries, MetadataEntry{Key: TokenMetadataLogo, Value: TextValue(*t.Logo)})
	}
	return entries
}

// Transaction kinds recorded in the ledger log.
const (
	TxKindMint     = "mint"
	TxKindTransfer = "icrc7_transfer"
)

// Transaction is an entry of a collection's transaction log.
type Transaction struct {
	ID         uint64    `json:"id"`
	Collection Principal `json:"collection"`
	Kind       string    `json:"kind"`
	TokenID    uint64    `json:"token_id"`
	From       *Account  `json:"from,omitempty"`
	To         Account   `json:"to"`
	Memo       []byte    `json:"memo,omitempty"`
	CreatedAt  *uint64   `json:"created_at_time,omitempty"`
	Timestamp  uint64    `json:"timestamp"`
	Caller     Principal `json:"caller"`
}
