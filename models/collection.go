package models

import "time"

// Ledger defaults applied when a collection is created without explicit
// limits.
const (
	DefaultSymbol             = "ICRC7"
	DefaultName               = "ICRC7 Collection"
	DefaultMaxQueryBatchSize  = 32
	DefaultMaxUpdateBatchSize = 32
	DefaultTakeValue          = 32
	DefaultMaxTakeValue       = 32
	DefaultMaxMemoSize        = 32
	DefaultTxWindow           = 24 * time.Hour
	DefaultPermittedDrift     = 2 * time.Minute

	// MaxLedgerWindow bounds tx_window and permitted_drift so their sum
	// stays a valid time.Duration.
	MaxLedgerWindow = 365 * 24 * time.Hour
)

// CollectionArg is the configuration record accepted by the factory's
// mint_collection_canister. Optional fields fall back to ledger defaults.
type CollectionArg struct {
	Symbol               string  `json:"icrc7_symbol"`
	Name                 string  `json:"icrc7_name"`
	Description          *string `json:"icrc7_description,omitempty"`
	Logo                 *string `json:"icrc7_logo,omitempty"`
	SupplyCap            *uint64 `json:"icrc7_supply_cap,omitempty"`
	MaxQueryBatchSize    *uint64 `json:"icrc7_max_query_batch_size,omitempty"`
	MaxUpdateBatchSize   *uint64 `json:"icrc7_max_update_batch_size,omitempty"`
	MaxTakeValue         *uint64 `json:"icrc7_max_take_value,omitempty"`
	DefaultTakeValue     *uint64 `json:"icrc7_default_take_value,omitempty"`
	MaxMemoSize          *uint64 `json:"icrc7_max_memo_size,omitempty"`
	AtomicBatchTransfers *bool   `json:"icrc7_atomic_batch_transfers,omitempty"`
	TxWindowNanos        *uint64 `json:"tx_window,omitempty"`
	PermittedDriftNanos  *uint64 `json:"permitted_drift,omitempty"`
}

// CollectionSettings is the resolved configuration of a deployed collection.
type CollectionSettings struct {
	Canister             Principal     `json:"canister"`
	Owner                Account       `json:"owner"`
	MintingAuthority     *Account      `json:"minting_authority,omitempty"`
	Symbol               string        `json:"symbol"`
	Name                 string        `json:"name"`
	Description          *string       `json:"description,omitempty"`
	Logo                 *string       `json:"logo,omitempty"`
	SupplyCap            *uint64       `json:"supply_cap,omitempty"`
	MaxQueryBatchSize    uint64        `json:"max_query_batch_size"`
	MaxUpdateBatchSize   uint64        `json:"max_update_batch_size"`
	MaxTakeValue         uint64        `json:"max_take_value"`
	DefaultTakeValue     uint64        `json:"default_take_value"`
	MaxMemoSize          uint64        `json:"max_memo_size"`
	AtomicBatchTransfers bool          `json:"atomic_batch_transfers"`
	TxWindow             time.Duration `json:"tx_window"`
	PermittedDrift       time.Duration `json:"permitted_drift"`
	NextTokenID          uint64        `json:"next_token_id"`
	TotalSupply          uint64        `json:"total_supply"`
}

// Resolve applies ledger defaults to arg and returns the settings of a new
// collection owned by owner. The owner becomes the initial minting authority.
func (arg CollectionArg) Resolve(canister Principal, owner Account) CollectionSettings {
	s := CollectionSettings{
		Canister:             canister,
		Owner:                owner,
		MintingAuthority:     &owner,
		Symbol:               arg.Symbol,
		Name:                 arg.Name,
		Description:          arg.Description,
		Logo:                 arg.Logo,
		SupplyCap:            arg.SupplyCap,
		MaxQueryBatchSize:    valueOr(arg.MaxQueryBatchSize, DefaultMaxQueryBatchSize),
		MaxUpdateBatchSize:   valueOr(arg.MaxUpdateBatchSize, DefaultMaxUpdateBatchSize),
		MaxTakeValue:         valueOr(arg.MaxTakeValue, DefaultMaxTakeValue),
		DefaultTakeValue:     valueOr(arg.DefaultTakeValue, DefaultTakeValue),
		MaxMemoSize:          valueOr(arg.MaxMemoSize, DefaultMaxMemoSize),
		AtomicBatchTransfers: arg.AtomicBatchTransfers != nil && *arg.AtomicBatchTransfers,
		TxWindow:             time.Duration(valueOr(arg.TxWindowNanos, uint64(DefaultTxWindow))),
		PermittedDrift:       time.Duration(valueOr(arg.PermittedDriftNanos, uint64(DefaultPermittedDrift))),
	}
	if s.Symbol == "" {
		s.Symbol = DefaultSymbol
	}
	if s.Name == "" {
		s.Name = DefaultName
	}
	return s
}

// Metadata returns the collection-level metadata map entries.
func (s CollectionSettings) Metadata() []MetadataEntry {
	entries := []MetadataEntry{
		{Key: "icrc7:symbol", Value: TextValue(s.Symbol)},
		{Key: "icrc7:name", Value: TextValue(s.Name)},
		{Key: "icrc7:total_supply", Value: NatValue(s.TotalSupply)},
		{Key: "icrc7:max_query_batch_size", Value: NatValue(s.MaxQueryBatchSize)},
		{Key: "icrc7:max_update_batch_size", Value: NatValue(s.MaxUpdateBatchSize)},
		{Key: "icrc7:default_take_value", Value: NatValue(s.DefaultTakeValue)},
		{Key: "icrc7:max_take_value", Value: NatValue(s.MaxTakeValue)},
		{Key: "icrc7:max_memo_size", Value: NatValue(s.MaxMemoSize)},
		{Key: "icrc7:tx_window", Value: NatValue(uint64(s.TxWindow))},
		{Key: "icrc7:permitted_drift", Value: NatValue(uint64(s.PermittedDrift))},
	}
	if s.Description != nil {
		entries = append(entries, MetadataEntry{Key: "icrc7:description", Value: TextValue(*s.Description)})
	}
	if s.Logo != nil {
		entries = append(entries, MetadataEntry{Key: "icrc7:logo", Value: TextValue(*s.Logo)})
	}
	if s.SupplyCap != nil {
		entries = append(entries, MetadataEntry{Key: "icrc7:supply_cap", Value: NatValue(*s.SupplyCap)})
	}
	return entries
}

// CollectionEntry pairs a collection canister with its owner, as listed by
// the factory registry.
type CollectionEntry struct {
	Collection Principal `json:"collection"`
	Owner      Principal `json:"owner"`
}

// TokensCollection lists the token ids a caller holds in one collection.
type TokensCollection struct {
	Collection Principal `json:"collection"`
	TokenIDs   []uint64  `json:"token_ids"`
}

func valueOr(v *uint64, def uint64) uint64 {
	if v == nil {
		return def
	}
	return *v
}
