package client

import (
	"context"

	"github.com/MKhiriev/icrc7-dapp/models"
)

type principalResult struct {
	Principal string `json:"principal"`
}

func (a *App) login(ctx context.Context, args []string) (any, error) {
	if _, err := parseArgs(newFlagSet("login"), args, 0, 0); err != nil {
		return nil, err
	}

	p, err := a.auth.Login(ctx)
	if err != nil {
		return nil, err
	}
	return principalResult{Principal: p.String()}, nil
}

func (a *App) logout(ctx context.Context, args []string) (any, error) {
	if _, err := parseArgs(newFlagSet("logout"), args, 0, 0); err != nil {
		return nil, err
	}

	if err := a.auth.Logout(ctx); err != nil {
		return nil, err
	}
	return models.Outcome{Code: models.StatusOK, Message: "Logged out"}, nil
}

func (a *App) whoami(ctx context.Context, args []string) (any, error) {
	if _, err := parseArgs(newFlagSet("whoami"), args, 0, 0); err != nil {
		return nil, err
	}
	return a.services.DappService.Whoami(ctx)
}

func (a *App) status(ctx context.Context, args []string) (any, error) {
	if _, err := parseArgs(newFlagSet("status"), args, 0, 0); err != nil {
		return nil, err
	}
	return a.services.ReplicaService.Status(ctx)
}

func (a *App) health(ctx context.Context, args []string) (any, error) {
	rest, err := parseArgs(newFlagSet("health"), args, 0, 1)
	if err != nil {
		return nil, err
	}

	var name string
	if len(rest) == 1 {
		name = rest[0]
	}
	return a.services.ReplicaService.Health(ctx, name)
}
