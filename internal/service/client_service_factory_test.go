package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/icrc7-dapp/internal/adapter"
	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/internal/mock"
	"github.com/MKhiriev/icrc7-dapp/models"
)

func TestClientFactoryService_MintCollection_DefaultsOwnerToSender(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := mock.NewMockFactory(ctrl)
	svc := NewClientFactoryService(factory, testSender, logger.Nop())

	arg := models.CollectionArg{Symbol: "MTK", Name: "My Token"}
	factory.EXPECT().MintCollection(gomock.Any(), arg, models.NewAccount(testSender)).
		Return(models.Ok[models.Principal, string](testCollection), nil)

	out, err := svc.MintCollection(context.Background(), arg, nil)

	require.NoError(t, err)
	assert.True(t, out.OK())
	assert.Equal(t, testCollection.String(), out.Body)
}

func TestClientFactoryService_MintCollection_ExplicitOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	factory := mock.NewMockFactory(ctrl)
	svc := NewClientFactoryService(factory, testSender, logger.Nop())

	owner := models.NewAccount(testBob)
	factory.EXPECT().MintCollection(gomock.Any(), gomock.Any(), owner).
		Return(models.Err[models.Principal]("Error while minting"), nil)

	out, err := svc.MintCollection(context.Background(), models.CollectionArg{}, &owner)

	require.NoError(t, err)
	assert.Equal(t, models.StatusMintingError, out.Code)
	assert.Equal(t, "Error while minting", out.Message)
}

func TestClientReplicaService_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	agent := mock.NewMockAgent(ctrl)
	svc := NewClientReplicaService(agent, nil)

	agent.EXPECT().Status(gomock.Any()).Return(models.ReplicaStatus{ReplicaHealthStatus: "healthy"}, nil)

	out, err := svc.Status(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "healthy", out.Message)
}

func TestClientReplicaService_Health(t *testing.T) {
	ctrl := gomock.NewController(t)
	agent := mock.NewMockAgent(ctrl)
	health := mock.NewMockHealthChecker(ctrl)
	svc := NewClientReplicaService(agent, health)

	health.EXPECT().Check(gomock.Any(), "").Return("SERVING", nil)
	health.EXPECT().Check(gomock.Any(), "ledger").Return("NOT_SERVING", nil)
	health.EXPECT().Check(gomock.Any(), "backend").Return("", adapter.ErrServiceUnavailable)

	out, err := svc.Health(context.Background(), "")
	require.NoError(t, err)
	assert.True(t, out.OK())

	out, err = svc.Health(context.Background(), "ledger")
	require.NoError(t, err)
	assert.Equal(t, models.StatusServiceUnavailable, out.Code)

	_, err = svc.Health(context.Background(), "backend")
	require.ErrorIs(t, err, ErrReplicaUnavailable)
}

func TestClientReplicaService_Health_NotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewClientReplicaService(mock.NewMockAgent(ctrl), nil)

	_, err := svc.Health(context.Background(), "")

	require.ErrorIs(t, err, ErrReplicaUnavailable)
}
