package config

import (
	"time"

	"github.com/MKhiriev/icrc7-dapp/models"
)

// Interface revisions of the backend canister.
const (
	RevisionV1 = "v1"
	RevisionV2 = "v2"
)

// Network modes, matching the values dfx writes into DFX_NETWORK.
const (
	NetworkLocal = "local"
	NetworkIC    = "ic"
)

// Supported replica database drivers.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// Local replica canister sequence: dfx deploys the factory first, then the
// backend, then the identity provider.
const (
	factoryCanisterSeq          = 1
	backendCanisterSeq          = 2
	internetIdentityCanisterSeq = 3
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Revision:      RevisionV1,
			Codec:         "cbor",
			TokenIssuer:   "icrc7-replica",
			TokenDuration: 24 * time.Hour,
			LogFile:       "icrc7-client.log",
		},
		Canisters: Canisters{
			Backend:          models.CanisterPrincipal(backendCanisterSeq).String(),
			Factory:          models.CanisterPrincipal(factoryCanisterSeq).String(),
			InternetIdentity: models.CanisterPrincipal(internetIdentityCanisterSeq).String(),
			Network:          NetworkLocal,
		},
		Network: Network{
			LocalURL: "http://127.0.0.1:4943",
			ICURL:    "https://icp-api.io",
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverSQLite,
				DSN:    "icrc7-replica.db",
			},
			Identity: Identity{
				Path: "icrc7-identity.json",
			},
		},
		Server: Server{
			HTTPAddress:    "127.0.0.1:4943",
			GRPCAddress:    "127.0.0.1:4944",
			RequestTimeout: 30 * time.Second,
			RateLimit:      20,
			RateBurst:      40,
		},
		Adapter: Adapter{
			GRPCAddress:    "127.0.0.1:4944",
			RequestTimeout: 30 * time.Second,
		},
		Workers: Workers{
			ArchiveInterval: time.Minute,
		},
		DotEnvPath: ".env",
	}
}
