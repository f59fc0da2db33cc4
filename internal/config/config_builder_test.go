package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild(t *testing.T) {
	tests := []struct {
		name    string
		configs []*StructuredConfig
		err     error
		want    *StructuredConfig
	}{
		{name: "no sources", want: &StructuredConfig{}},
		{
			name: "sources are merged",
			configs: []*StructuredConfig{
				{App: App{Revision: RevisionV1}},
				{Canisters: Canisters{Network: NetworkIC}},
			},
			want: &StructuredConfig{App: App{Revision: RevisionV1}, Canisters: Canisters{Network: NetworkIC}},
		},
		{
			name: "later non-zero fields win",
			configs: []*StructuredConfig{
				{App: App{Revision: RevisionV1, Codec: "cbor"}},
				{App: App{Revision: RevisionV2}},
			},
			want: &StructuredConfig{App: App{Revision: RevisionV2, Codec: "cbor"}},
		},
		{name: "earlier failure", err: assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = tt.configs
			b.err = tt.err

			cfg, err := b.build()
			if tt.err != nil {
				assert.Nil(t, cfg)
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_LocalCanisterSequence(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	require.Len(t, b.configs, 1)

	d := b.configs[0]
	assert.Equal(t, "bkyz2-fmaaa-aaaaa-qaaaq-cai", d.Canisters.Factory)
	assert.Equal(t, "bd3sg-teaaa-aaaaa-qaaba-cai", d.Canisters.Backend)
	assert.Equal(t, "be2us-64aaa-aaaaa-qaabq-cai", d.Canisters.InternetIdentity)
	assert.Equal(t, NetworkLocal, d.Canisters.Network)
	assert.Equal(t, RevisionV1, d.App.Revision)
	assert.Equal(t, "127.0.0.1:4943", d.Server.HTTPAddress)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_ExportsCanisterIDs(t *testing.T) {
	clearEnvVars(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"DFX_NETWORK='ic'\nCANISTER_ID_ICRC7_BACKEND='br5f7-7uaaa-aaaaa-qaaca-cai'\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("DFX_NETWORK")
		_ = os.Unsetenv("CANISTER_ID_ICRC7_BACKEND")
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{DotEnvPath: path})
	b.withDotEnv().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "ic", b.configs[1].Canisters.Network)
	assert.Equal(t, "br5f7-7uaaa-aaaaa-qaaca-cai", b.configs[1].Canisters.Backend)
}

func TestWithDotEnv_MissingFileIgnored(t *testing.T) {
	clearEnvVars(t)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{DotEnvPath: filepath.Join(t.TempDir(), "absent.env")})
	b.withDotEnv()

	assert.NoError(t, b.err)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_REVISION":     "v2",
		"APP_TOKEN_ISSUER": "env-issuer",
	})

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "v2", b.configs[0].App.Revision)
	assert.Equal(t, "env-issuer", b.configs[0].App.TokenIssuer)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_KeepsSubcommand(t *testing.T) {
	b := newConfigBuilder().withArgs([]string{"-codec", "json", "groups"})
	b.withFlags()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "json", b.configs[0].App.Codec)
	assert.Equal(t, []string{"groups"}, b.configs[0].Args)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Revision = "v2"
	payload.App.TokenIssuer = "json-issuer"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "v2", b.configs[1].App.Revision)
	assert.Equal(t, "json-issuer", b.configs[1].App.TokenIssuer)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.TokenIssuer = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/first/ignored.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.TokenIssuer)
}

// TestWithJSON_SkippedWhenErrorAlreadySet verifies that an earlier failure
// short-circuits JSON loading.
func TestWithJSON_SkippedWhenErrorAlreadySet(t *testing.T) {
	payload := StructuredJSONConfig{}
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.err = assert.AnError
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	assert.ErrorIs(t, b.err, assert.AnError)
	assert.Len(t, b.configs, 1)
}

// ── full chain ────────────────────────────────────────────────────────────────

func TestBuilder_FullChainPriority(t *testing.T) {
	setEnvVars(t, map[string]string{
		"DOTENV":             filepath.Join(t.TempDir(), "none.env"),
		"APP_REVISION":       "v2",
		"APP_TOKEN_SIGN_KEY": "env-key",
		"SERVER_RATE_BURST":  "7",
	})

	payload := StructuredJSONConfig{}
	payload.App.TokenSignKey = "json-key"
	path := writeTempJSONConfig(t, payload)

	cfg, err := newConfigBuilder().
		withArgs([]string{"-c", path, "-rate-burst", "9", "status"}).
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, "v2", cfg.App.Revision)
	assert.Equal(t, "json-key", cfg.App.TokenSignKey)
	assert.Equal(t, 9, cfg.Server.RateBurst)
	assert.Equal(t, "cbor", cfg.App.Codec)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, []string{"status"}, cfg.Args)
	require.NoError(t, cfg.validateReplica())
}
