package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplicaURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  StructuredConfig
		want string
	}{
		{
			name: "local network",
			cfg:  *defaultConfig(),
			want: "http://127.0.0.1:4943",
		},
		{
			name: "ic network",
			cfg: func() StructuredConfig {
				c := defaultConfig()
				c.Canisters.Network = NetworkIC
				return *c
			}(),
			want: "https://icp-api.io",
		},
		{
			name: "adapter override without scheme",
			cfg: func() StructuredConfig {
				c := defaultConfig()
				c.Canisters.Network = NetworkIC
				c.Adapter.HTTPAddress = "localhost:8000/"
				return *c
			}(),
			want: "http://localhost:8000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.ReplicaURL())
		})
	}
}

func TestIdentityProviderURL(t *testing.T) {
	cfg := defaultConfig()
	assert.Equal(t, "http://127.0.0.1:4943/?canisterId=be2us-64aaa-aaaaa-qaabq-cai", cfg.IdentityProviderURL())

	cfg.Canisters.Network = NetworkIC
	assert.Equal(t, "https://be2us-64aaa-aaaaa-qaabq-cai.ic0.app", cfg.IdentityProviderURL())
}

func TestClientConfig_FromDefaults(t *testing.T) {
	clientCfg, err := defaultConfig().ClientConfig()
	require.NoError(t, err)

	assert.Equal(t, "bd3sg-teaaa-aaaaa-qaaba-cai", clientCfg.Canisters.Backend.String())
	assert.Equal(t, "bkyz2-fmaaa-aaaaa-qaaaq-cai", clientCfg.Canisters.Factory.String())
	assert.Equal(t, "http://127.0.0.1:4943", clientCfg.Adapter.ReplicaURL)
	assert.Equal(t, 30*time.Second, clientCfg.Adapter.RequestTimeout)
	assert.Equal(t, RevisionV1, clientCfg.App.Revision)
}

func TestClientConfig_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *StructuredConfig)
		err    error
	}{
		{name: "bad revision", mutate: func(c *StructuredConfig) { c.App.Revision = "v3" }, err: ErrInvalidAppConfigs},
		{name: "bad codec", mutate: func(c *StructuredConfig) { c.App.Codec = "xml" }, err: ErrInvalidAppConfigs},
		{name: "bad canister id", mutate: func(c *StructuredConfig) { c.Canisters.Backend = "nope" }, err: ErrInvalidCanisterConfigs},
		{name: "bad network", mutate: func(c *StructuredConfig) { c.Canisters.Network = "mainnet" }, err: ErrInvalidCanisterConfigs},
		{name: "zero timeout", mutate: func(c *StructuredConfig) { c.Adapter.RequestTimeout = 0 }, err: ErrInvalidAdapterConfigs},
		{name: "no identity path", mutate: func(c *StructuredConfig) { c.Storage.Identity.Path = "" }, err: ErrInvalidStorageConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaultConfig()
			tt.mutate(c)

			_, err := c.ClientConfig()
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestValidateReplica(t *testing.T) {
	valid := func() *StructuredConfig {
		c := defaultConfig()
		c.App.TokenSignKey = "secret"
		return c
	}
	require.NoError(t, valid().validateReplica())

	tests := []struct {
		name   string
		mutate func(c *StructuredConfig)
		err    error
	}{
		{name: "missing sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, err: ErrInvalidAppConfigs},
		{name: "unsupported driver", mutate: func(c *StructuredConfig) { c.Storage.DB.Driver = "mysql" }, err: ErrInvalidStorageConfigs},
		{name: "empty dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, err: ErrInvalidStorageConfigs},
		{name: "no address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, err: ErrInvalidServerConfigs},
		{name: "zero burst", mutate: func(c *StructuredConfig) { c.Server.RateBurst = 0 }, err: ErrInvalidServerConfigs},
		{name: "zero archive interval", mutate: func(c *StructuredConfig) { c.Workers.ArchiveInterval = 0 }, err: ErrInvalidWorkerConfigs},
		{name: "bad factory id", mutate: func(c *StructuredConfig) { c.Canisters.Factory = "x" }, err: ErrInvalidCanisterConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			assert.ErrorIs(t, c.validateReplica(), tt.err)
		})
	}
}
