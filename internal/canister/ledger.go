package canister

import (
	"context"

	"github.com/MKhiriev/icrc7-dapp/internal/adapter"
	"github.com/MKhiriev/icrc7-dapp/models"
)

type ledger struct {
	agent adapter.Agent
	id    models.Principal
}

// NewLedger binds the ICRC-7 collection canister id.
func NewLedger(agent adapter.Agent, id models.Principal) Ledger {
	return &ledger{agent: agent, id: id}
}

func (l *ledger) Canister() models.Principal { return l.id }

func (l *ledger) Symbol(ctx context.Context) (string, error) {
	return query[string](ctx, l.agent, l.id, MethodSymbol)
}

func (l *ledger) Name(ctx context.Context) (string, error) {
	return query[string](ctx, l.agent, l.id, MethodName)
}

func (l *ledger) Description(ctx context.Context) (*string, error) {
	return query[*string](ctx, l.agent, l.id, MethodDescription)
}

func (l *ledger) Logo(ctx context.Context) (*string, error) {
	return query[*string](ctx, l.agent, l.id, MethodLogo)
}

func (l *ledger) TotalSupply(ctx context.Context) (uint64, error) {
	return query[uint64](ctx, l.agent, l.id, MethodTotalSupply)
}

func (l *ledger) SupplyCap(ctx context.Context) (*uint64, error) {
	return query[*uint64](ctx, l.agent, l.id, MethodSupplyCap)
}

func (l *ledger) MaxQueryBatchSize(ctx context.Context) (*uint64, error) {
	return query[*uint64](ctx, l.agent, l.id, MethodMaxQueryBatchSize)
}

func (l *ledger) MaxUpdateBatchSize(ctx context.Context) (*uint64, error) {
	return query[*uint64](ctx, l.agent, l.id, MethodMaxUpdateBatchSize)
}

func (l *ledger) DefaultTakeValue(ctx context.Context) (*uint64, error) {
	return query[*uint64](ctx, l.agent, l.id, MethodDefaultTakeValue)
}

func (l *ledger) MaxTakeValue(ctx context.Context) (*uint64, error) {
	return query[*uint64](ctx, l.agent, l.id, MethodMaxTakeValue)
}

func (l *ledger) MaxMemoSize(ctx context.Context) (*uint64, error) {
	return query[*uint64](ctx, l.agent, l.id, MethodMaxMemoSize)
}

func (l *ledger) AtomicBatchTransfers(ctx context.Context) (*bool, error) {
	return query[*bool](ctx, l.agent, l.id, MethodAtomicBatchTransfers)
}

func (l *ledger) TxWindow(ctx context.Context) (*uint64, error) {
	return query[*uint64](ctx, l.agent, l.id, MethodTxWindow)
}

func (l *ledger) PermittedDrift(ctx context.Context) (*uint64, error) {
	return query[*uint64](ctx, l.agent, l.id, MethodPermittedDrift)
}

func (l *ledger) CollectionMetadata(ctx context.Context) ([]models.MetadataEntry, error) {
	return query[[]models.MetadataEntry](ctx, l.agent, l.id, MethodCollectionMetadata)
}

func (l *ledger) TokenMetadata(ctx context.Context, ids []uint64) ([]*models.TokenMetadata, error) {
	return query[[]*models.TokenMetadata](ctx, l.agent, l.id, MethodTokenMetadata, ids)
}

func (l *ledger) OwnerOf(ctx context.Context, ids []uint64) ([]*models.Account, error) {
	return query[[]*models.Account](ctx, l.agent, l.id, MethodOwnerOf, ids)
}

func (l *ledger) BalanceOf(ctx context.Context, accounts []models.Account) ([]uint64, error) {
	return query[[]uint64](ctx, l.agent, l.id, MethodBalanceOf, accounts)
}

func (l *ledger) Tokens(ctx context.Context, prev, take *uint64) ([]uint64, error) {
	return query[[]uint64](ctx, l.agent, l.id, MethodTokens, prev, take)
}

func (l *ledger) TokensOf(ctx context.Context, account models.Account, prev, take *uint64) ([]uint64, error) {
	return query[[]uint64](ctx, l.agent, l.id, MethodTokensOf, account, prev, take)
}

func (l *ledger) MintingAuthority(ctx context.Context) (*models.Account, error) {
	return query[*models.Account](ctx, l.agent, l.id, MethodMintingAuthority)
}

func (l *ledger) Mint(ctx context.Context, arg models.MintArg) (models.MintResult, error) {
	return update[models.MintResult](ctx, l.agent, l.id, MethodMint, arg)
}

func (l *ledger) Transfer(ctx context.Context, args []models.TransferArg) ([]*models.TransferResult, error) {
	return update[[]*models.TransferResult](ctx, l.agent, l.id, MethodTransfer, args)
}

func (l *ledger) SetMintingAuthority(ctx context.Context, authority models.Account) (bool, error) {
	return update[bool](ctx, l.agent, l.id, MethodSetMintingAuthority, authority)
}
