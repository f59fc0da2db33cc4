package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/icrc7-dapp/internal/config"
	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/models"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService(models.NewAppBuildInfo("1.0.0", "", ""), config.RevisionV1, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyRevision_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(models.NewAppBuildInfo("1.0.0", "", ""), "", logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

// ─────────────────────────────────────────────
// Status
// ─────────────────────────────────────────────

func TestStatus_ReportsBuildAndRevision(t *testing.T) {
	build := models.NewAppBuildInfo("3.1.4", "2026-10-01", "abc123")
	svc, err := NewAppInfoService(build, config.RevisionV2, logger.Nop())
	require.NoError(t, err)

	got := svc.Status(context.Background())

	assert.Equal(t, models.ReplicaStatus{
		ReplicaHealthStatus: ReplicaHealthy,
		ImplVersion:         "3.1.4",
		ImplRevision:        "abc123",
		BuildDate:           "2026-10-01",
		Revision:            config.RevisionV2,
	}, got)
}

func TestStatus_MissingBuildInfoIsNA(t *testing.T) {
	svc, err := NewAppInfoService(models.NewAppBuildInfo("", "", ""), config.RevisionV1, logger.Nop())
	require.NoError(t, err)

	got := svc.Status(context.Background())

	assert.Equal(t, "N/A", got.ImplVersion)
	assert.Equal(t, "N/A", got.BuildDate)
}

func TestStatus_CancelledContext_StillReports(t *testing.T) {
	svc, err := NewAppInfoService(models.NewAppBuildInfo("1.0.0", "", ""), config.RevisionV1, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, ReplicaHealthy, svc.Status(ctx).ReplicaHealthStatus)
}
