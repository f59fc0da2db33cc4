package config

import (
	"net/url"
	"strings"

	"github.com/MKhiriev/icrc7-dapp/models"
)

// ReplicaURL returns the base URL of the replica the client talks to. An
// explicit adapter address wins; otherwise the URL follows the network mode.
func (cfg *StructuredConfig) ReplicaURL() string {
	if cfg.Adapter.HTTPAddress != "" {
		return normalizeURL(cfg.Adapter.HTTPAddress)
	}

	if cfg.Canisters.Network == NetworkIC {
		return normalizeURL(cfg.Network.ICURL)
	}

	return normalizeURL(cfg.Network.LocalURL)
}

// IdentityProviderURL returns the identity provider location: a query
// parameter on the local replica, or the canister subdomain on the IC.
func (cfg *StructuredConfig) IdentityProviderURL() string {
	if cfg.Canisters.Network == NetworkIC {
		return "https://" + cfg.Canisters.InternetIdentity + ".ic0.app"
	}

	return cfg.ReplicaURL() + "/?canisterId=" + url.QueryEscape(cfg.Canisters.InternetIdentity)
}

// CanisterIDs parses the configured canister ids.
func (c Canisters) CanisterIDs() (backend, factory, internetIdentity models.Principal, err error) {
	if backend, err = models.ParsePrincipal(c.Backend); err != nil {
		return
	}
	if factory, err = models.ParsePrincipal(c.Factory); err != nil {
		return
	}
	internetIdentity, err = models.ParsePrincipal(c.InternetIdentity)
	return
}

func normalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "http://" + raw
	}
	return strings.TrimRight(raw, "/")
}
