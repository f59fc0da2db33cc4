package service

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/icrc7-dapp/models"
)

// fromEnvelope turns a status envelope reply into an outcome.
func fromEnvelope[T any](r models.RequestResult[T], err error) (models.Outcome, error) {
	if err != nil {
		return models.Outcome{}, mapAgentError(err)
	}
	return models.OutcomeFromEnvelope(r), nil
}

// fromOperationCode turns an operation-result variant into an outcome.
func fromOperationCode(code models.OperationCode, err error) (models.Outcome, error) {
	if err != nil {
		return models.Outcome{}, mapAgentError(err)
	}
	if name, _ := code.Variant(); name == "" {
		return models.Outcome{}, ErrEmptyVariant
	}
	return models.OutcomeFromOperationCode(code), nil
}

// fromResult turns a proxied variant result into an outcome: the Ok arm is
// the body of a 200 outcome, the Err arm becomes its operation code.
func fromResult[T any](r models.Result[T, models.OperationCode], err error) (models.Outcome, error) {
	if err != nil {
		return models.Outcome{}, mapAgentError(err)
	}
	switch {
	case r.Ok != nil:
		return models.Outcome{Code: models.StatusOK, Variant: "Ok", Body: *r.Ok}, nil
	case r.Err != nil:
		return models.OutcomeFromOperationCode(*r.Err), nil
	default:
		return models.Outcome{}, ErrEmptyVariant
	}
}

// fromValue wraps a raw reply value.
func fromValue[T any](v T, err error) (models.Outcome, error) {
	if err != nil {
		return models.Outcome{}, mapAgentError(err)
	}
	return models.Outcome{Code: models.StatusOK, Body: v}, nil
}

// fromUnit reports an empty reply as success.
func fromUnit(message string, err error) (models.Outcome, error) {
	if err != nil {
		return models.Outcome{}, mapAgentError(err)
	}
	return models.Outcome{Code: models.StatusOK, Message: message}, nil
}

// infoQuery fetches one collection setting.
type infoQuery struct {
	key   string
	fetch func(ctx context.Context) (models.Outcome, error)
}

// collectInfo runs every query concurrently. The first transport error
// cancels the rest; the first non-2xx outcome, in query order, is returned
// as is.
func collectInfo(ctx context.Context, collection models.Principal, queries []infoQuery) (models.Outcome, error) {
	g, gctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	outcomes := make(map[string]models.Outcome, len(queries))

	for _, q := range queries {
		g.Go(func() error {
			o, err := q.fetch(gctx)
			if err != nil {
				return fmt.Errorf("%s: %w", q.key, err)
			}
			mu.Lock()
			outcomes[q.key] = o
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.Outcome{}, err
	}

	body := make(map[string]any, len(queries))
	for _, q := range queries {
		o := outcomes[q.key]
		if !o.OK() {
			return o, nil
		}
		body[q.key] = o.Body
	}

	return models.Outcome{
		Code:    models.StatusOK,
		Message: fmt.Sprintf("Collection %s", collection),
		Body:    body,
	}, nil
}
