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

// groupRepository is the SQL implementation of [GroupRepository]. Members
// keep their insertion order through the position column.
type groupRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewGroupRepository constructs a [GroupRepository].
func NewGroupRepository(db *DB, logger *logger.Logger) GroupRepository {
	logger.Debug().Msg("creating group repository")
	return &groupRepository{db: db, logger: logger}
}

// CreateGroup inserts the group and its members in one transaction. A name
// clash yields [ErrDuplicateGroup].
func (r *groupRepository) CreateGroup(ctx context.Context, id string, group models.Group, createdAt time.Time) error {
	log := logger.FromContext(ctx)

	var leaderKey sql.NullString
	if group.GroupLeader != nil {
		leaderKey = sql.NullString{String: group.GroupLeader.Key(), Valid: true}
	}

	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		query, args, err := r.db.builder.
			Insert("user_groups").
			Columns("id", "name", "leader_key", "created_at").
			Values(id, group.GroupName, leaderKey, createdAt.UnixNano()).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			if r.db.errorClassificator.IsUniqueViolation(err) {
				return ErrDuplicateGroup
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if len(group.GroupMembers) == 0 {
			return nil
		}

		insert := r.db.builder.
			Insert("user_group_members").
			Columns("group_id", "position", "name", "internet_identity")
		for i, m := range group.GroupMembers {
			insert = insert.Values(id, i, m.Name, m.InternetIdentity.String())
		}

		query, args, err = insert.ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil && !errors.Is(err, ErrDuplicateGroup) {
		log.Err(err).Str("func", "*groupRepository.CreateGroup").Str("group_id", id).Msg("error creating group")
	}
	return err
}

// GetGroup returns the group with the given id or [ErrGroupNotFound].
func (r *groupRepository) GetGroup(ctx context.Context, id string) (models.Group, error) {
	entries, err := r.listGroups(ctx, sq.Eq{"g.id": id})
	if err != nil {
		return models.Group{}, err
	}
	if len(entries) == 0 {
		return models.Group{}, ErrGroupNotFound
	}
	return entries[0].Group, nil
}

// ListGroups returns all groups in creation order.
func (r *groupRepository) ListGroups(ctx context.Context) ([]models.GroupEntry, error) {
	return r.listGroups(ctx, nil)
}

func (r *groupRepository) listGroups(ctx context.Context, where sq.Sqlizer) ([]models.GroupEntry, error) {
	log := logger.FromContext(ctx)

	sel := r.db.builder.
		Select("g.id", "g.name", "g.leader_key", "m.name", "m.internet_identity").
		From("user_groups g").
		LeftJoin("user_group_members m ON m.group_id = g.id").
		OrderBy("g.created_at", "g.id", "m.position")
	if where != nil {
		sel = sel.Where(where)
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*groupRepository.listGroups").Msg("error querying groups")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.GroupEntry, 0)
	index := make(map[string]int)
	for rows.Next() {
		var (
			id, name                   string
			leaderKey                  sql.NullString
			memberName, memberIdentity sql.NullString
		)
		if err := rows.Scan(&id, &name, &leaderKey, &memberName, &memberIdentity); err != nil {
			log.Err(err).Str("func", "*groupRepository.listGroups").Msg("error scanning group row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		pos, ok := index[id]
		if !ok {
			entry := models.GroupEntry{ID: id, Group: models.Group{GroupName: name, GroupMembers: []models.Member{}}}
			if leaderKey.Valid {
				leader, err := models.ParseAccountKey(leaderKey.String)
				if err != nil {
					return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
				}
				entry.Group.GroupLeader = &leader
			}
			entries = append(entries, entry)
			pos = len(entries) - 1
			index[id] = pos
		}

		if memberName.Valid {
			identity, err := models.ParsePrincipal(memberIdentity.String)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			entries[pos].Group.GroupMembers = append(entries[pos].Group.GroupMembers, models.Member{
				Name:             memberName.String,
				InternetIdentity: identity,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

// DeleteGroup removes the group and its members or returns
// [ErrGroupNotFound].
func (r *groupRepository) DeleteGroup(ctx context.Context, id string) error {
	return r.deleteGroups(ctx, sq.Eq{"id": id}, sq.Eq{"group_id": id}, true)
}

// DeleteAllGroups empties the group tables.
func (r *groupRepository) DeleteAllGroups(ctx context.Context) error {
	return r.deleteGroups(ctx, nil, nil, false)
}

func (r *groupRepository) deleteGroups(ctx context.Context, groupWhere, memberWhere sq.Sqlizer, mustExist bool) error {
	log := logger.FromContext(ctx)

	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		delMembers := r.db.builder.Delete("user_group_members")
		if memberWhere != nil {
			delMembers = delMembers.Where(memberWhere)
		}
		query, args, err := delMembers.ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		delGroups := r.db.builder.Delete("user_groups")
		if groupWhere != nil {
			delGroups = delGroups.Where(groupWhere)
		}
		query, args, err = delGroups.ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if mustExist {
			affected, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			if affected == 0 {
				return ErrGroupNotFound
			}
		}
		return nil
	})
	if err != nil && !errors.Is(err, ErrGroupNotFound) {
		log.Err(err).Str("func", "*groupRepository.deleteGroups").Msg("error deleting groups")
	}
	return err
}
