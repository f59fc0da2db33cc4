package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/models"
)

var collectionColumns = []string{
	"canister_id", "owner_key", "minting_authority_key", "symbol", "name", "description", "logo",
	"supply_cap", "max_query_batch_size", "max_update_batch_size", "max_take_value", "default_take_value",
	"max_memo_size", "atomic_batch_transfers", "tx_window", "permitted_drift", "next_token_id", "total_supply",
}

// collectionRepository is the SQL implementation of [CollectionRepository].
type collectionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCollectionRepository constructs a [CollectionRepository].
func NewCollectionRepository(db *DB, logger *logger.Logger) CollectionRepository {
	logger.Debug().Msg("creating collection repository")
	return &collectionRepository{db: db, logger: logger}
}

func (r *collectionRepository) CreateCollection(ctx context.Context, s models.CollectionSettings, createdAt time.Time) error {
	log := logger.FromContext(ctx)

	var authority sql.NullString
	if s.MintingAuthority != nil {
		authority = sql.NullString{String: s.MintingAuthority.Key(), Valid: true}
	}

	query, args, err := r.db.builder.
		Insert("collections").
		Columns(append([]string{"owner"}, append(collectionColumns, "created_at")...)...).
		Values(
			s.Owner.Owner.String(),
			s.Canister.String(),
			s.Owner.Key(),
			authority,
			s.Symbol,
			s.Name,
			nullString(s.Description),
			nullString(s.Logo),
			nullUint(s.SupplyCap),
			int64(s.MaxQueryBatchSize),
			int64(s.MaxUpdateBatchSize),
			int64(s.MaxTakeValue),
			int64(s.DefaultTakeValue),
			int64(s.MaxMemoSize),
			s.AtomicBatchTransfers,
			int64(s.TxWindow),
			int64(s.PermittedDrift),
			int64(s.NextTokenID),
			int64(s.TotalSupply),
			createdAt.UnixNano(),
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return ErrCollectionExists
		}
		log.Err(err).Str("func", "*collectionRepository.CreateCollection").Str("canister_id", s.Canister.String()).Msg("error inserting collection")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *collectionRepository) GetCollection(ctx context.Context, canister models.Principal) (models.CollectionSettings, error) {
	return getCollection(ctx, r.db, r.db, canister)
}

func getCollection(ctx context.Context, db *DB, run runner, canister models.Principal) (models.CollectionSettings, error) {
	query, args, err := db.builder.
		Select(collectionColumns...).
		From("collections").
		Where(sq.Eq{"canister_id": canister.String()}).
		ToSql()
	if err != nil {
		return models.CollectionSettings{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	s, err := scanCollection(run.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.CollectionSettings{}, ErrCollectionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "getCollection").Str("canister_id", canister.String()).Msg("error scanning collection")
		return models.CollectionSettings{}, err
	}
	return s, nil
}

func scanCollection(row *sql.Row) (models.CollectionSettings, error) {
	var (
		s                                         models.CollectionSettings
		canister, ownerKey                        string
		authority, description, logo              sql.NullString
		supplyCap                                 sql.NullInt64
		maxQuery, maxUpdate, maxTake, defaultTake int64
		maxMemo, txWindow, drift, next, total     int64
	)

	err := row.Scan(&canister, &ownerKey, &authority, &s.Symbol, &s.Name, &description, &logo,
		&supplyCap, &maxQuery, &maxUpdate, &maxTake, &defaultTake,
		&maxMemo, &s.AtomicBatchTransfers, &txWindow, &drift, &next, &total)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return s, err
		}
		return s, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if s.Canister, err = models.ParsePrincipal(canister); err != nil {
		return s, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	if s.Owner, err = models.ParseAccountKey(ownerKey); err != nil {
		return s, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	if authority.Valid {
		a, err := models.ParseAccountKey(authority.String)
		if err != nil {
			return s, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		s.MintingAuthority = &a
	}

	s.Description = stringPtr(description)
	s.Logo = stringPtr(logo)
	if supplyCap.Valid {
		v := uint64(supplyCap.Int64)
		s.SupplyCap = &v
	}
	s.MaxQueryBatchSize = uint64(maxQuery)
	s.MaxUpdateBatchSize = uint64(maxUpdate)
	s.MaxTakeValue = uint64(maxTake)
	s.DefaultTakeValue = uint64(defaultTake)
	s.MaxMemoSize = uint64(maxMemo)
	s.TxWindow = time.Duration(txWindow)
	s.PermittedDrift = time.Duration(drift)
	s.NextTokenID = uint64(next)
	s.TotalSupply = uint64(total)

	return s, nil
}

func (r *collectionRepository) ListCollections(ctx context.Context) ([]models.CollectionEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("canister_id", "owner").
		From("collections").
		OrderBy("created_at", "canister_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*collectionRepository.ListCollections").Msg("error querying collections")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.CollectionEntry, 0)
	for rows.Next() {
		var canister, owner string
		if err := rows.Scan(&canister, &owner); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		var entry models.CollectionEntry
		if entry.Collection, err = models.ParsePrincipal(canister); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if entry.Owner, err = models.ParsePrincipal(owner); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (r *collectionRepository) ListCollectionsByOwner(ctx context.Context, owner models.Principal) ([]models.Principal, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("canister_id").
		From("collections").
		Where(sq.Eq{"owner": owner.String()}).
		OrderBy("created_at", "canister_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*collectionRepository.ListCollectionsByOwner").Msg("error querying collections")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	canisters := make([]models.Principal, 0)
	for rows.Next() {
		var canister string
		if err := rows.Scan(&canister); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		p, err := models.ParsePrincipal(canister)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		canisters = append(canisters, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return canisters, nil
}

func (r *collectionRepository) SetMintingAuthority(ctx context.Context, canister models.Principal, authority models.Account) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update("collections").
		Set("minting_authority_key", authority.Key()).
		Where(sq.Eq{"canister_id": canister.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*collectionRepository.SetMintingAuthority").Msg("error updating minting authority")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCollectionNotFound
	}
	return nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullUint(v *uint64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
