package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/icrc7-dapp/internal/adapter"
	"github.com/MKhiriev/icrc7-dapp/internal/client"
	"github.com/MKhiriev/icrc7-dapp/internal/codec"
	"github.com/MKhiriev/icrc7-dapp/internal/config"
	"github.com/MKhiriev/icrc7-dapp/internal/crypto"
	"github.com/MKhiriev/icrc7-dapp/internal/logger"
	"github.com/MKhiriev/icrc7-dapp/internal/service"
	"github.com/MKhiriev/icrc7-dapp/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	if len(cfg.Args) > 0 && cfg.Args[0] == "version" {
		printBuildInfo()
		return
	}

	log := logger.NewClientLogger("icrc7-client", cfg.App.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, closeApp, err := newApp(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeApp()

	if err = app.Run(ctx, cfg.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		closeApp()
		os.Exit(1)
	}
}

// newApp wires the transport for the stored identity, or an anonymous one
// when nobody is logged in.
func newApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (client.Client, func(), error) {
	wireCodec, err := codec.ByName(cfg.App.Codec)
	if err != nil {
		return nil, nil, err
	}

	provider, err := adapter.NewHTTPIdentityProvider(cfg.Adapter, log)
	if err != nil {
		return nil, nil, fmt.Errorf("create identity provider: %w", err)
	}

	auth := service.NewClientAuthService(
		store.NewIdentityFileStorage(cfg.Identity.Path),
		crypto.NewKeyChain(),
		provider,
		cfg.Identity.Passphrase,
		log,
	)

	var opts []adapter.AgentOption
	identity, err := auth.Identity(ctx)
	switch {
	case err == nil:
		opts = append(opts, adapter.WithTokenSource(adapter.NewDelegationTokenSource(ctx, provider, identity), identity.Principal()))
	case errors.Is(err, service.ErrNotLoggedIn):
		log.Debug().Msg("no identity stored, calling anonymously")
	default:
		log.Warn().Err(err).Msg("stored identity cannot be opened, calling anonymously")
	}

	agent, err := adapter.NewHTTPAgent(cfg.Adapter, wireCodec, log, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("create agent: %w", err)
	}

	var health adapter.HealthChecker
	closeHealth := func() {}
	if cfg.Adapter.GRPCAddress != "" {
		health, err = adapter.NewGRPCHealthChecker(cfg.Adapter.GRPCAddress)
		if err != nil {
			return nil, nil, fmt.Errorf("create health checker: %w", err)
		}
		closeHealth = func() { _ = health.Close() }
	}

	services, err := service.NewClientServices(cfg, agent, health, log)
	if err != nil {
		closeHealth()
		return nil, nil, fmt.Errorf("create client services: %w", err)
	}

	app, err := client.NewApp(auth, services, os.Stdout, log)
	if err != nil {
		closeHealth()
		return nil, nil, err
	}
	return app, closeHealth, nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
