package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/internal/store"
	"github.com/MKhiriev/icrc7-dapp/internal/validators"
	"github.com/MKhiriev/icrc7-dapp/models"
)

// Generic error codes reported by mint and transfer.
const (
	codeNoArguments       = 1
	codeExceedsBatchSize  = 2
	codeExceedsMemoSize   = 3
	codeAuthorityNotSet   = 6
	codeExceedsMemoLength = 7
	codeAnonymousIdentity = 100
)

type ledgerService struct {
	collections store.CollectionRepository
	ledger      store.LedgerRepository
	validator   validators.Validator

	// factory may reassign the minting authority of any collection.
	factory models.Principal
	now     func() time.Time

	logger *logger.Logger
}

// NewLedgerService constructs the ICRC-7 state machine shared by every
// hosted collection.
func NewLedgerService(collections store.CollectionRepository, ledger store.LedgerRepository, validator validators.Validator, factory models.Principal, logger *logger.Logger) LedgerService {
	return &ledgerService{
		collections: collections,
		ledger:      ledger,
		validator:   validator,
		factory:     factory,
		now:         time.Now,
		logger:      logger,
	}
}

func (s *ledgerService) Settings(ctx context.Context, canister models.Principal) (models.CollectionSettings, error) {
	settings, err := s.collections.GetCollection(ctx, canister)
	if err != nil {
		return models.CollectionSettings{}, fmt.Errorf("load collection %s: %w", canister, err)
	}
	return settings, nil
}

func (s *ledgerService) CollectionMetadata(ctx context.Context, canister models.Principal) ([]models.MetadataEntry, error) {
	settings, err := s.Settings(ctx, canister)
	if err != nil {
		return nil, err
	}
	return settings.Metadata(), nil
}

// TokenMetadata returns one entry per id, nil for ids that do not exist.
func (s *ledgerService) TokenMetadata(ctx context.Context, canister models.Principal, ids []uint64) ([]*models.TokenMetadata, error) {
	settings, tokens, err := s.lookup(ctx, canister, ids)
	if err != nil {
		return nil, err
	}

	result := make([]*models.TokenMetadata, len(ids))
	for i, id := range ids {
		if token, ok := tokens[id]; ok {
			result[i] = &models.TokenMetadata{TokenID: id, Metadata: token.Metadata(settings.Symbol)}
		}
	}
	return result, nil
}

// OwnerOf returns one owner per id, nil for ids that do not exist.
func (s *ledgerService) OwnerOf(ctx context.Context, canister models.Principal, ids []uint64) ([]*models.Account, error) {
	_, tokens, err := s.lookup(ctx, canister, ids)
	if err != nil {
		return nil, err
	}

	result := make([]*models.Account, len(ids))
	for i, id := range ids {
		if token, ok := tokens[id]; ok {
			owner := token.Owner
			result[i] = &owner
		}
	}
	return result, nil
}

func (s *ledgerService) lookup(ctx context.Context, canister models.Principal, ids []uint64) (models.CollectionSettings, map[uint64]models.Token, error) {
	settings, err := s.Settings(ctx, canister)
	if err != nil {
		return models.CollectionSettings{}, nil, err
	}
	if uint64(len(ids)) > settings.MaxQueryBatchSize {
		return models.CollectionSettings{}, nil, ErrExceedsMaxQueryBatchSize
	}

	tokens, err := s.ledger.GetTokens(ctx, canister, ids)
	if err != nil {
		return models.CollectionSettings{}, nil, fmt.Errorf("load tokens: %w", err)
	}
	return settings, tokens, nil
}

func (s *ledgerService) BalanceOf(ctx context.Context, canister models.Principal, accounts []models.Account) ([]uint64, error) {
	settings, err := s.Settings(ctx, canister)
	if err != nil {
		return nil, err
	}
	if uint64(len(accounts)) > settings.MaxQueryBatchSize {
		return nil, ErrExceedsMaxQueryBatchSize
	}

	balances := make([]uint64, len(accounts))
	for i, account := range accounts {
		if err = s.validator.Validate(ctx, account); err != nil {
			return nil, fmt.Errorf("%w: account %d: %w", ErrInvalidDataProvided, i, err)
		}
		if balances[i], err = s.ledger.CountTokensOf(ctx, canister, account); err != nil {
			return nil, fmt.Errorf("count tokens: %w", err)
		}
	}
	return balances, nil
}

// Tokens lists token ids in ascending order, starting after prev.
func (s *ledgerService) Tokens(ctx context.Context, canister models.Principal, prev, take *uint64) ([]uint64, error) {
	limit, err := s.take(ctx, canister, take)
	if err != nil {
		return nil, err
	}
	return s.ledger.ListTokens(ctx, canister, prev, limit)
}

func (s *ledgerService) TokensOf(ctx context.Context, canister models.Principal, account models.Account, prev, take *uint64) ([]uint64, error) {
	if err := s.validator.Validate(ctx, account); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	limit, err := s.take(ctx, canister, take)
	if err != nil {
		return nil, err
	}
	return s.ledger.ListTokensOf(ctx, canister, account, prev, limit)
}

func (s *ledgerService) take(ctx context.Context, canister models.Principal, take *uint64) (uint64, error) {
	settings, err := s.Settings(ctx, canister)
	if err != nil {
		return 0, err
	}
	if take == nil {
		return settings.DefaultTakeValue, nil
	}
	if *take > settings.MaxTakeValue {
		return 0, ErrExceedsMaxTakeValue
	}
	return *take, nil
}

// Mint issues arg.TokenID to arg.To. Checks run in a fixed order and the
// first failing one decides the error variant.
func (s *ledgerService) Mint(ctx context.Context, canister, caller models.Principal, arg models.MintArg) (models.MintResult, error) {
	log := logger.FromContext(ctx)

	if caller.IsAnonymous() {
		return models.Err[uint64](models.MintError{GenericBatchError: &models.GenericError{
			ErrorCode: codeAnonymousIdentity, Message: "Anonymous Identity",
		}}), nil
	}
	if err := s.validator.Validate(ctx, arg); err != nil {
		return models.MintResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	settings, err := s.Settings(ctx, canister)
	if err != nil {
		return models.MintResult{}, err
	}
	callerAccount := models.Account{Owner: caller, Subaccount: arg.FromSubaccount}

	if mintErr := s.checkMint(ctx, settings, callerAccount, arg); mintErr != nil {
		log.Debug().Str("collection", canister.String()).Str("error", mintErr.Error()).Msg("mint refused")
		return models.Err[uint64](*mintErr), nil
	}

	name := models.DefaultTokenName(settings.Symbol, arg.TokenID)
	if arg.TokenName != nil {
		name = *arg.TokenName
	}
	token := models.Token{
		Collection:  canister,
		ID:          arg.TokenID,
		Owner:       arg.To,
		Name:        name,
		Description: arg.TokenDescription,
		Logo:        arg.TokenLogo,
	}
	tx := models.Transaction{
		Kind:      models.TxKindMint,
		From:      &callerAccount,
		To:        arg.To,
		Memo:      arg.Memo,
		Timestamp: uint64(s.now().UnixNano()),
		Caller:    caller,
	}

	txID, err := s.ledger.Mint(ctx, token, tx)
	if errors.Is(err, store.ErrTokenExists) {
		return models.Err[uint64](models.MintError{TokenIDAlreadyExist: &models.Unit{}}), nil
	}
	if err != nil {
		return models.MintResult{}, fmt.Errorf("mint token %d: %w", arg.TokenID, err)
	}

	log.Info().Str("collection", canister.String()).Uint64("token_id", arg.TokenID).Uint64("tx_id", txID).Msg("token minted")
	return models.Ok[uint64, models.MintError](txID), nil
}

func (s *ledgerService) checkMint(ctx context.Context, settings models.CollectionSettings, caller models.Account, arg models.MintArg) *models.MintError {
	if settings.SupplyCap != nil && *settings.SupplyCap == settings.TotalSupply {
		return &models.MintError{SupplyCapReached: &models.Unit{}}
	}
	if settings.MintingAuthority == nil {
		return &models.MintError{GenericBatchError: &models.GenericError{
			ErrorCode: codeAuthorityNotSet, Message: "Minting Authority Not Set",
		}}
	}
	if !settings.MintingAuthority.Equal(caller) {
		return &models.MintError{Unauthorized: &models.Unit{}}
	}
	if uint64(len(arg.Memo)) > settings.MaxMemoSize {
		return &models.MintError{GenericError: &models.GenericError{
			ErrorCode: codeExceedsMemoLength, Message: "Exceeds Allowed Memo Length",
		}}
	}
	if arg.TokenID < settings.NextTokenID {
		return &models.MintError{TokenIDMinimumLimit: &models.Unit{}}
	}

	existing, err := s.ledger.GetTokens(ctx, settings.Canister, []uint64{arg.TokenID})
	if err == nil && len(existing) > 0 {
		return &models.MintError{TokenIDAlreadyExist: &models.Unit{}}
	}
	// a lookup failure falls through to the insert, which reports duplicates
	return nil
}

// Transfer validates every entry against the state before the batch, then
// applies the valid ones. In atomic mode nothing is applied if any entry
// failed.
func (s *ledgerService) Transfer(ctx context.Context, canister, caller models.Principal, args []models.TransferArg) ([]*models.TransferResult, error) {
	log := logger.FromContext(ctx)

	if len(args) == 0 {
		return []*models.TransferResult{batchError(codeNoArguments, "No Arguments Provided")}, nil
	}

	settings, err := s.Settings(ctx, canister)
	if err != nil {
		return nil, err
	}

	results := make([]*models.TransferResult, len(args))
	if uint64(len(args)) > settings.MaxUpdateBatchSize {
		results[0] = batchError(codeExceedsBatchSize, "Exceed Max allowed Update Batch Size")
		return results, nil
	}
	if caller.IsAnonymous() {
		results[0] = batchError(codeAnonymousIdentity, "Anonymous Identity")
		return results, nil
	}

	ids := make([]uint64, len(args))
	for i, arg := range args {
		ids[i] = arg.TokenID
	}
	tokens, err := s.ledger.GetTokens(ctx, canister, ids)
	if err != nil {
		return nil, fmt.Errorf("load tokens: %w", err)
	}

	now := uint64(s.now().UnixNano())
	txs := make([]models.Transaction, len(args))
	failed := false
	for i, arg := range args {
		if err = s.validator.Validate(ctx, arg); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrInvalidDataProvided, i, err)
		}

		from := models.Account{Owner: caller, Subaccount: arg.FromSubaccount}
		txs[i] = models.Transaction{
			Collection: canister,
			Kind:       models.TxKindTransfer,
			TokenID:    arg.TokenID,
			From:       &from,
			To:         arg.To,
			Memo:       arg.Memo,
			CreatedAt:  arg.CreatedAtTime,
			Timestamp:  now,
			Caller:     caller,
		}

		transferErr, err := s.checkTransfer(ctx, settings, tokens, txs[i], now)
		if err != nil {
			return nil, err
		}
		if transferErr != nil {
			r := models.Err[uint64](*transferErr)
			results[i] = &r
			failed = true
		}
	}

	if failed && settings.AtomicBatchTransfers {
		log.Debug().Str("collection", canister.String()).Msg("atomic transfer batch aborted")
		return results, nil
	}

	for i := range args {
		if results[i] != nil {
			continue
		}
		txID, err := s.ledger.Transfer(ctx, txs[i])
		if err != nil {
			return nil, fmt.Errorf("%w: token %d: %w", ErrTransferToUnknownToken, txs[i].TokenID, err)
		}
		r := models.Ok[uint64, models.TransferError](txID)
		results[i] = &r
	}

	log.Info().Str("collection", canister.String()).Int("entries", len(args)).Msg("transfer batch applied")
	return results, nil
}

func (s *ledgerService) checkTransfer(ctx context.Context, settings models.CollectionSettings, tokens map[uint64]models.Token, tx models.Transaction, now uint64) (*models.TransferError, error) {
	if tx.CreatedAt != nil {
		window := uint64(settings.TxWindow + settings.PermittedDrift)
		var oldest uint64
		if now > window {
			oldest = now - window
		}
		newest := now + uint64(settings.PermittedDrift)

		switch {
		case *tx.CreatedAt < oldest:
			return &models.TransferError{TooOld: &models.Unit{}}, nil
		case *tx.CreatedAt > newest:
			return &models.TransferError{CreatedInFuture: &models.LedgerTime{LedgerTime: now}}, nil
		}

		duplicateOf, found, err := s.ledger.FindDuplicateTransfer(ctx, tx, oldest)
		if err != nil {
			return nil, fmt.Errorf("deduplicate transfer: %w", err)
		}
		if found {
			return &models.TransferError{Duplicate: &models.DuplicateOf{DuplicateOf: duplicateOf}}, nil
		}
	}

	token, ok := tokens[tx.TokenID]
	if !ok {
		return &models.TransferError{NonExistingTokenID: &models.Unit{}}, nil
	}
	if uint64(len(tx.Memo)) > settings.MaxMemoSize {
		return &models.TransferError{GenericError: &models.GenericError{
			ErrorCode: codeExceedsMemoSize, Message: "Exceeds Max Memo Size",
		}}, nil
	}
	if tx.To.Equal(*tx.From) {
		return &models.TransferError{InvalidRecipient: &models.Unit{}}, nil
	}
	if !token.Owner.Equal(*tx.From) {
		return &models.TransferError{Unauthorized: &models.Unit{}}, nil
	}
	return nil, nil
}

func batchError(code uint64, message string) *models.TransferResult {
	r := models.Err[uint64](models.TransferError{GenericBatchError: &models.GenericError{ErrorCode: code, Message: message}})
	return &r
}

// SetMintingAuthority is open to the factory and to the collection owner.
func (s *ledgerService) SetMintingAuthority(ctx context.Context, canister, caller models.Principal, authority models.Account) (bool, error) {
	if err := s.validator.Validate(ctx, authority); err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	settings, err := s.Settings(ctx, canister)
	if err != nil {
		return false, err
	}
	if caller != s.factory && caller != settings.Owner.Owner {
		return false, ErrNotCollectionOwner
	}

	if err = s.collections.SetMintingAuthority(ctx, canister, authority); err != nil {
		return false, fmt.Errorf("set minting authority: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("collection", canister.String()).
		Str("authority", authority.String()).
		Msg("minting authority updated")
	return true, nil
}
