package config

import (
	"flag"
	"fmt"
	"net"
	"strconv"
	"time"
)

// NetAddress is a listen address flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args using fs. Parsing stops
// at the first positional argument; the remaining arguments (the client
// subcommand with its own flags) are returned in Args.
//
// Flags:
//
//	-a replica HTTP listen address in format [host]:[port]
//	-grpc-address replica gRPC listen address in format [host]:[port]
//	-replica replica URL used by the client (overrides -network)
//	-network network mode: local or ic
//	-backend / -factory canister ids
//	-revision backend interface revision: v1 or v2
//	-codec wire codec: cbor or json
//	-driver / -d database driver and DSN
//	-identity identity file path
//	-c/-config json file path with configs
//	-token-sign-key / -token-issuer / -token-duration delegation settings
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-rate-limit / -rate-burst per-caller rate limit
//	-archive-interval ledger archive interval
//	-log-file client log file
func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var replicaURL, network string
	var backend, factory string
	var revision, codecName string
	var driver, databaseDSN string
	var identityPath string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, requestTimeout, archiveInterval time.Duration
	var rateLimit float64
	var rateBurst int
	var logFile string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&replicaURL, "replica", "", "Replica URL")
	fs.StringVar(&network, "network", "", "Network mode: local or ic")
	fs.StringVar(&backend, "backend", "", "Backend canister id")
	fs.StringVar(&factory, "factory", "", "Factory canister id")
	fs.StringVar(&revision, "revision", "", "Backend interface revision: v1 or v2")
	fs.StringVar(&codecName, "codec", "", "Wire codec: cbor or json")
	fs.StringVar(&driver, "driver", "", "Database driver: sqlite3 or pgx")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&identityPath, "identity", "", "Identity file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&archiveInterval, "archive-interval", 0, "Ledger archive interval")
	fs.Float64Var(&rateLimit, "rate-limit", 0, "Calls per second allowed per caller")
	fs.IntVar(&rateBurst, "rate-burst", 0, "Burst size per caller")
	fs.StringVar(&logFile, "log-file", "", "Client log file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Revision:      revision,
			Codec:         codecName,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			LogFile:       logFile,
		},
		Canisters: Canisters{
			Backend: backend,
			Factory: factory,
			Network: network,
		},
		Storage: Storage{
			DB: DB{
				Driver: driver,
				DSN:    databaseDSN,
			},
			Identity: Identity{
				Path: identityPath,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
			RateLimit:      rateLimit,
			RateBurst:      rateBurst,
		},
		Adapter: Adapter{
			HTTPAddress:    replicaURL,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			ArchiveInterval: archiveInterval,
		},
		JSONFilePath: jsonConfigPath,
		Args:         fs.Args(),
	}, nil
}

// String returns host:port, bracketing IPv6 hosts. A zero NetAddress is "".
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host may be empty (all interfaces), "localhost"
// or an IP literal; IPv6 literals must be bracketed.
func (a *NetAddress) Set(s string) error {
	host, portText, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidNetAddress, err)
	}

	port, err := strconv.Atoi(portText)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: port %q is not in range 1-65535", ErrInvalidNetAddress, portText)
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("%w: host %q is neither localhost nor an IP", ErrInvalidNetAddress, host)
	}

	a.Host = host
	a.Port = port
	return nil
}
