package service

import (
	"context"

	"github.com/MKhiriev/icrc7-dapp/internal/canister"
	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/models"
)

type clientFactoryService struct {
	factory canister.Factory
	sender  models.Principal
	logger  *logger.Logger
}

// NewClientFactoryService constructs a [ClientFactoryService]. Collections
// minted without an explicit owner belong to sender.
func NewClientFactoryService(factory canister.Factory, sender models.Principal, logger *logger.Logger) ClientFactoryService {
	return &clientFactoryService{factory: factory, sender: sender, logger: logger}
}

func (s *clientFactoryService) MintCollection(ctx context.Context, arg models.CollectionArg, owner *models.Account) (models.Outcome, error) {
	account := models.NewAccount(s.sender)
	if owner != nil {
		account = *owner
	}

	r, err := s.factory.MintCollection(ctx, arg, account)
	if err != nil {
		return models.Outcome{}, mapAgentError(err)
	}

	switch {
	case r.Ok != nil:
		s.logger.Info().Str("collection", r.Ok.String()).Str("owner", account.String()).Msg("collection minted")
		return models.Outcome{Code: models.StatusOK, Variant: "Ok", Message: "Collection created", Body: r.Ok.String()}, nil
	case r.Err != nil:
		return models.Outcome{Code: models.StatusMintingError, Variant: "Err", Message: *r.Err}, nil
	default:
		return models.Outcome{}, ErrEmptyVariant
	}
}
