package service

import (
	"context"

	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/models"
)

// ReplicaHealthy is the health status reported while the replica serves calls.
const ReplicaHealthy = "healthy"

type appInfoService struct {
	build    models.AppBuildInfo
	revision string

	logger *logger.Logger
}

func NewAppInfoService(build models.AppBuildInfo, revision string, logger *logger.Logger) (AppInfoService, error) {
	if revision == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		build:    build,
		revision: revision,
		logger:   logger,
	}, nil
}

func (s *appInfoService) Status(ctx context.Context) models.ReplicaStatus {
	return models.ReplicaStatus{
		ReplicaHealthStatus: ReplicaHealthy,
		ImplVersion:         s.build.BuildVersion(),
		ImplRevision:        s.build.BuildCommit(),
		BuildDate:           s.build.BuildDate(),
		Revision:            s.revision,
	}
}
