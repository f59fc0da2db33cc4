package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/models"
)

// eventRepository is the SQL implementation of [EventRepository]. The
// metadata variant is stored as its JSON form.
type eventRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewEventRepository constructs an [EventRepository].
func NewEventRepository(db *DB, logger *logger.Logger) EventRepository {
	logger.Debug().Msg("creating event repository")
	return &eventRepository{db: db, logger: logger}
}

func (r *eventRepository) CreateEvent(ctx context.Context, event models.Event, createdAt time.Time) error {
	log := logger.FromContext(ctx)

	metadata, err := json.Marshal(event.Metadata)
	if err != nil {
		return fmt.Errorf("marshal event metadata: %w", err)
	}

	query, args, err := r.db.builder.
		Insert("events").
		Columns("id", "title", "description", "metadata", "created_at").
		Values(event.ID, event.Title, event.Description, string(metadata), createdAt.UnixNano()).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*eventRepository.CreateEvent").Str("event_id", event.ID).Msg("error inserting event")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *eventRepository) GetEvent(ctx context.Context, id string) (models.Event, error) {
	events, err := r.listEvents(ctx, sq.Eq{"id": id})
	if err != nil {
		return models.Event{}, err
	}
	if len(events) == 0 {
		return models.Event{}, ErrEventNotFound
	}
	return events[0], nil
}

func (r *eventRepository) ListEvents(ctx context.Context) ([]models.Event, error) {
	return r.listEvents(ctx, nil)
}

func (r *eventRepository) listEvents(ctx context.Context, where sq.Sqlizer) ([]models.Event, error) {
	log := logger.FromContext(ctx)

	sel := r.db.builder.
		Select("id", "title", "description", "metadata").
		From("events").
		OrderBy("created_at", "id")
	if where != nil {
		sel = sel.Where(where)
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*eventRepository.listEvents").Msg("error querying events")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		var (
			event    models.Event
			metadata string
		)
		if err := rows.Scan(&event.ID, &event.Title, &event.Description, &metadata); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if err := json.Unmarshal([]byte(metadata), &event.Metadata); err != nil {
			return nil, fmt.Errorf("%w: metadata: %w", ErrScanningRows, err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return events, nil
}

func (r *eventRepository) DeleteEvent(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.Delete("events").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*eventRepository.DeleteEvent").Str("event_id", id).Msg("error deleting event")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEventNotFound
	}
	return nil
}
