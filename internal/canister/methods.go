package canister

// Method names shared by the bindings and the replica dispatch tables.
const (
	MethodWhoami             = "whoami"
	MethodCallCanisterWhoami = "call_canister_whoami"

	MethodSubscribeGroup     = "subscribe_group"
	MethodCreateEvent        = "create_event"
	MethodAssignEventToGroup = "assign_event_to_group"
	MethodGetAllGroups       = "get_all_groups"
	MethodGetAllEvents       = "get_all_events"
	MethodGetGroupMembers    = "get_group_members"
	MethodRemoveGroup        = "remove_group"
	MethodRemoveEvent        = "remove_event"
	MethodRemoveAllGroups    = "remove_all_groups"

	MethodGetAllCollections       = "get_all_icrc7_collections"
	MethodGetUserCollectionsV1    = "get_user_icrc7_collections"
	MethodGetUserTokensCollection = "get_user_tokens_collection"
	MethodGetUserCollections      = "get_user_collections"

	MethodMintCollection           = "mint_collection_canister"
	MethodShowCollections          = "show_collections"
	MethodUpdateMintingAuthority   = "update_minting_aythority"
	MethodCheckCollectionOwnership = "check_collection_ownership"
)

// ICRC-7 ledger methods.
const (
	MethodSymbol               = "icrc7_symbol"
	MethodName                 = "icrc7_name"
	MethodDescription          = "icrc7_description"
	MethodLogo                 = "icrc7_logo"
	MethodTotalSupply          = "icrc7_total_supply"
	MethodSupplyCap            = "icrc7_supply_cap"
	MethodMaxQueryBatchSize    = "icrc7_max_query_batch_size"
	MethodMaxUpdateBatchSize   = "icrc7_max_update_batch_size"
	MethodDefaultTakeValue     = "icrc7_default_take_value"
	MethodMaxTakeValue         = "icrc7_max_take_value"
	MethodMaxMemoSize          = "icrc7_max_memo_size"
	MethodAtomicBatchTransfers = "icrc7_atomic_batch_transfers"
	MethodTxWindow             = "icrc7_tx_window"
	MethodPermittedDrift       = "icrc7_permitted_drift"
	MethodCollectionMetadata   = "icrc7_collection_metadata"
	MethodTokenMetadata        = "icrc7_token_metadata"
	MethodOwnerOf              = "icrc7_owner_of"
	MethodBalanceOf            = "icrc7_balance_of"
	MethodTokens               = "icrc7_tokens"
	MethodTokensOf             = "icrc7_tokens_of"
	MethodMintingAuthority     = "icrc7_minting_authority"
	MethodMint                 = "icrc7_mint"
	MethodTransfer             = "icrc7_transfer"
	MethodSetMintingAuthority  = "icrc7_set_minting_authority"
)

// Backend proxy methods of the envelope revision that differ from the
// ledger method they forward to.
const (
	MethodProxySymbol             = "get_icrc7_symbol"
	MethodProxyName               = "get_icrc7_name"
	MethodProxyDescription        = "get_icrc7_description"
	MethodProxyLogo               = "get_icrc7_logo"
	MethodProxyTotalSupply        = "get_icrc7_total_supply"
	MethodProxySupplyCap          = "get_icrc7_supply_cap"
	MethodProxyMaxQueryBatchSize  = "get_icrc7_max_query_batch_size"
	MethodProxyMaxUpdateBatchSize = "get_icrc7_max_update_batch_size"
	MethodProxyMaxTakeValue       = "get_icrc7_max_take_value"
	MethodProxyMaxMemoSize        = "get_icrc7_max_memo_size"
	MethodProxyTokenMetadata      = "get_icrc7_token_metadata"
)
