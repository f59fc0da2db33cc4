// Package http implements the replica's HTTP interface.
//
// It serves the canister query and call endpoints, the status endpoint, the
// identity provider's delegation endpoint and the Prometheus scrape endpoint.
// Envelopes are decoded with the codec named by the request Content-Type and
// handed to the canister dispatcher; bearer delegations, request tracing,
// access logging, compression and per-caller rate limiting are handled here
// before a call reaches a canister.
package http
