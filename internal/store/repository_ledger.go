package store

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/models"
)

var transactionColumns = []string{
	"canister_id", "tx_id", "kind", "token_id", "from_key", "to_key", "memo", "created_at_time", "ts", "caller",
}

// ledgerRepository is the SQL implementation of [LedgerRepository]. Every
// collection keeps its own transaction id sequence in the counters table
// under "tx:<canister id>".
type ledgerRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewLedgerRepository constructs a [LedgerRepository].
func NewLedgerRepository(db *DB, logger *logger.Logger) LedgerRepository {
	logger.Debug().Msg("creating ledger repository")
	return &ledgerRepository{db: db, logger: logger}
}

func txCounterName(canister models.Principal) string {
	return "tx:" + canister.String()
}

func (r *ledgerRepository) GetTokens(ctx context.Context, canister models.Principal, ids []uint64) (map[uint64]models.Token, error) {
	log := logger.FromContext(ctx)

	tokens := make(map[uint64]models.Token, len(ids))
	stored := storedTokenIDs(ids)
	if len(stored) == 0 {
		return tokens, nil
	}

	query, args, err := r.db.builder.
		Select("token_id", "owner_key", "name", "description", "logo").
		From("tokens").
		Where(sq.Eq{"canister_id": canister.String(), "token_id": stored}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*ledgerRepository.GetTokens").Msg("error querying tokens")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id                int64
			ownerKey, name    string
			description, logo sql.NullString
		)
		if err := rows.Scan(&id, &ownerKey, &name, &description, &logo); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		owner, err := models.ParseAccountKey(ownerKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		tokens[uint64(id)] = models.Token{
			Collection:  canister,
			ID:          uint64(id),
			Owner:       owner,
			Name:        name,
			Description: stringPtr(description),
			Logo:        stringPtr(logo),
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tokens, nil
}

// ListTokens pages token ids in ascending order, starting after prev.
func (r *ledgerRepository) ListTokens(ctx context.Context, canister models.Principal, prev *uint64, take uint64) ([]uint64, error) {
	return r.listTokenIDs(ctx, sq.Eq{"canister_id": canister.String()}, prev, take)
}

// ListTokensOf pages the token ids held by account, starting after prev.
func (r *ledgerRepository) ListTokensOf(ctx context.Context, canister models.Principal, account models.Account, prev *uint64, take uint64) ([]uint64, error) {
	return r.listTokenIDs(ctx, sq.Eq{"canister_id": canister.String(), "owner_key": account.Key()}, prev, take)
}

func (r *ledgerRepository) listTokenIDs(ctx context.Context, where sq.Eq, prev *uint64, take uint64) ([]uint64, error) {
	log := logger.FromContext(ctx)

	if prev != nil && *prev > math.MaxInt64 {
		return []uint64{}, nil
	}

	builder := r.db.builder.
		Select("token_id").
		From("tokens").
		Where(where).
		OrderBy("token_id").
		Limit(take)
	if prev != nil {
		builder = builder.Where(sq.Gt{"token_id": int64(*prev)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*ledgerRepository.listTokenIDs").Msg("error querying token ids")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]uint64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids = append(ids, uint64(id))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}

func (r *ledgerRepository) CountTokensOf(ctx context.Context, canister models.Principal, account models.Account) (uint64, error) {
	query, args, err := r.db.builder.
		Select("COUNT(*)").
		From("tokens").
		Where(sq.Eq{"canister_id": canister.String(), "owner_key": account.Key()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*ledgerRepository.CountTokensOf").Msg("error counting tokens")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return uint64(count), nil
}

// ListTokensByOwner groups every token whose owner principal is owner by
// collection, regardless of subaccount.
func (r *ledgerRepository) ListTokensByOwner(ctx context.Context, owner models.Principal) ([]models.TokensCollection, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("canister_id", "token_id").
		From("tokens").
		Where(sq.Eq{"owner": owner.String()}).
		OrderBy("canister_id", "token_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*ledgerRepository.ListTokensByOwner").Msg("error querying tokens")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	result := make([]models.TokensCollection, 0)
	for rows.Next() {
		var (
			canister string
			id       int64
		)
		if err := rows.Scan(&canister, &id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		if n := len(result); n > 0 && result[n-1].Collection.String() == canister {
			result[n-1].TokenIDs = append(result[n-1].TokenIDs, uint64(id))
			continue
		}
		p, err := models.ParsePrincipal(canister)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		result = append(result, models.TokensCollection{Collection: p, TokenIDs: []uint64{uint64(id)}})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

// Mint stores the token, advances the collection's next token id and total
// supply and logs tx. It returns the id of the logged transaction.
func (r *ledgerRepository) Mint(ctx context.Context, token models.Token, tx models.Transaction) (uint64, error) {
	log := logger.FromContext(ctx)

	if token.ID > models.MaxTokenID {
		return 0, ErrTokenIDOutOfRange
	}

	var txID uint64
	err := r.db.inTx(ctx, func(sqlTx *sql.Tx) error {
		query, args, err := r.db.builder.
			Insert("tokens").
			Columns("canister_id", "token_id", "owner", "owner_key", "name", "description", "logo").
			Values(
				token.Collection.String(),
				int64(token.ID),
				token.Owner.Owner.String(),
				token.Owner.Key(),
				token.Name,
				nullString(token.Description),
				nullString(token.Logo),
			).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := sqlTx.ExecContext(ctx, query, args...); err != nil {
			if r.db.errorClassificator.IsUniqueViolation(err) {
				return ErrTokenExists
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		query, args, err = r.db.builder.
			Update("collections").
			Set("next_token_id", int64(token.ID)+1).
			Set("total_supply", sq.Expr("total_supply + 1")).
			Where(sq.Eq{"canister_id": token.Collection.String()}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		res, err := sqlTx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected, err := res.RowsAffected(); err == nil && affected == 0 {
			return ErrCollectionNotFound
		}

		tx.Collection = token.Collection
		tx.TokenID = token.ID
		txID, err = r.logTransaction(ctx, sqlTx, tx)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrTokenExists) {
			log.Err(err).Str("func", "*ledgerRepository.Mint").Str("canister_id", token.Collection.String()).Msg("error minting token")
		}
		return 0, err
	}
	return txID, nil
}

// Transfer moves tx.TokenID to tx.To and logs tx.
func (r *ledgerRepository) Transfer(ctx context.Context, tx models.Transaction) (uint64, error) {
	log := logger.FromContext(ctx)

	if tx.TokenID > math.MaxInt64 {
		return 0, ErrTokenNotFound
	}

	var txID uint64
	err := r.db.inTx(ctx, func(sqlTx *sql.Tx) error {
		query, args, err := r.db.builder.
			Update("tokens").
			Set("owner", tx.To.Owner.String()).
			Set("owner_key", tx.To.Key()).
			Where(sq.Eq{"canister_id": tx.Collection.String(), "token_id": int64(tx.TokenID)}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		res, err := sqlTx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected == 0 {
			return ErrTokenNotFound
		}

		txID, err = r.logTransaction(ctx, sqlTx, tx)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrTokenNotFound) {
			log.Err(err).Str("func", "*ledgerRepository.Transfer").Str("canister_id", tx.Collection.String()).Msg("error transferring token")
		}
		return 0, err
	}
	return txID, nil
}

func (r *ledgerRepository) logTransaction(ctx context.Context, run runner, tx models.Transaction) (uint64, error) {
	txID, err := r.db.nextCounter(ctx, run, txCounterName(tx.Collection))
	if err != nil {
		return 0, err
	}

	var from sql.NullString
	if tx.From != nil {
		from = sql.NullString{String: tx.From.Key(), Valid: true}
	}

	query, args, err := r.db.builder.
		Insert("transactions").
		Columns(transactionColumns...).
		Values(
			tx.Collection.String(),
			int64(txID),
			tx.Kind,
			int64(tx.TokenID),
			from,
			tx.To.Key(),
			memoText(tx.Memo),
			nullUint(tx.CreatedAt),
			int64(tx.Timestamp),
			tx.Caller.String(),
		).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err := run.ExecContext(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return txID, nil
}

// FindDuplicateTransfer looks for a transfer logged at or after since that
// matches tx in token, sender, recipient, memo and created_at_time.
func (r *ledgerRepository) FindDuplicateTransfer(ctx context.Context, tx models.Transaction, since uint64) (uint64, bool, error) {
	if tx.CreatedAt == nil || tx.From == nil || tx.TokenID > math.MaxInt64 {
		return 0, false, nil
	}

	where := sq.And{
		sq.Eq{
			"canister_id":     tx.Collection.String(),
			"kind":            models.TxKindTransfer,
			"token_id":        int64(tx.TokenID),
			"from_key":        tx.From.Key(),
			"to_key":          tx.To.Key(),
			"created_at_time": int64(*tx.CreatedAt),
		},
		sq.GtOrEq{"ts": int64(since)},
	}
	if memo := memoText(tx.Memo); memo.Valid {
		where = append(where, sq.Eq{"memo": memo.String})
	} else {
		where = append(where, sq.Eq{"memo": nil})
	}

	query, args, err := r.db.builder.
		Select("tx_id").
		From("transactions").
		Where(where).
		OrderBy("tx_id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return 0, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var txID int64
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&txID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*ledgerRepository.FindDuplicateTransfer").Msg("error querying transactions")
		return 0, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return uint64(txID), true, nil
}

// ArchiveTransactions moves every transaction older than its collection's
// tx window plus permitted drift into transactions_archive and returns how
// many were moved. Transfer deduplication looks back just as far, so only
// transactions it can no longer match are archived.
func (r *ledgerRepository) ArchiveTransactions(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)
	nowNanos := now.UnixNano()

	selectCols := make([]string, len(transactionColumns))
	for i, c := range transactionColumns {
		selectCols[i] = "t." + c
	}

	var moved int64
	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		query, args, err := r.db.builder.
			Insert("transactions_archive").
			Columns(transactionColumns...).
			Select(sq.Select(selectCols...).
				From("transactions t").
				Join("collections c ON c.canister_id = t.canister_id").
				Where("t.ts < ? - (c.tx_window + c.permitted_drift)", nowNanos)).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		query, args, err = r.db.builder.
			Delete("transactions").
			Where(sq.Expr("EXISTS (SELECT 1 FROM collections c WHERE c.canister_id = transactions.canister_id AND transactions.ts < ? - (c.tx_window + c.permitted_drift))", nowNanos)).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		moved, err = res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*ledgerRepository.ArchiveTransactions").Msg("error archiving transactions")
		return 0, err
	}
	return moved, nil
}

func memoText(memo []byte) sql.NullString {
	if memo == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: hex.EncodeToString(memo), Valid: true}
}

// storedTokenIDs converts ids to their column values, dropping ids no token
// can have.
func storedTokenIDs(ids []uint64) []int64 {
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= math.MaxInt64 {
			out = append(out, int64(id))
		}
	}
	return out
}
