package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/icrc7-dapp/models"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Revision is the backend interface revision the client binds to.
	Revision string
	// Codec is the wire codec name.
	Codec string
	// LogFile is the client log destination.
	LogFile string
}

// ClientCanisters holds the resolved canister principals.
type ClientCanisters struct {
	Backend          models.Principal
	Factory          models.Principal
	InternetIdentity models.Principal
	// Network is the network mode the URLs were derived from.
	Network string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ReplicaURL is the base URL of the replica.
	ReplicaURL string
	// IdentityProviderURL is where login requests a delegation.
	IdentityProviderURL string
	// GRPCAddress is the replica health endpoint.
	GRPCAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientIdentity locates the sealed identity file.
type ClientIdentity struct {
	Path       string
	Passphrase string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Canisters contains the canister principals.
	Canisters ClientCanisters
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Identity contains identity file settings.
	Identity ClientIdentity
	// Args is the subcommand and its arguments.
	Args []string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config from all sources, maps only the fields relevant to
// the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg.ClientConfig()
}

// ClientConfig maps cfg to the client view and validates it.
func (cfg *StructuredConfig) ClientConfig() (*ClientConfig, error) {
	backend, factory, ii, err := cfg.Canisters.CanisterIDs()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCanisterConfigs, err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Revision: cfg.App.Revision,
			Codec:    cfg.App.Codec,
			LogFile:  cfg.App.LogFile,
		},
		Canisters: ClientCanisters{
			Backend:          backend,
			Factory:          factory,
			InternetIdentity: ii,
			Network:          cfg.Canisters.Network,
		},
		Adapter: ClientAdapter{
			ReplicaURL:          cfg.ReplicaURL(),
			IdentityProviderURL: cfg.IdentityProviderURL(),
			GRPCAddress:         cfg.Adapter.GRPCAddress,
			RequestTimeout:      cfg.Adapter.RequestTimeout,
		},
		Identity: ClientIdentity{
			Path:       cfg.Storage.Identity.Path,
			Passphrase: cfg.Storage.Identity.Passphrase,
		},
		Args: cfg.Args,
	}

	return clientCfg, clientCfg.validate()
}
