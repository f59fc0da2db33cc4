// Package config provides configuration loading, merging, and validation
// facilities for the dapp client and the local replica.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Dotenv file (the .env written by dfx with canister ids)
//  3. Environment variables
//  4. Command-line flags
//  5. JSON config file
//
// The main entry points are [GetStructuredConfig] for the replica and
// [GetClientConfig] for the command-line client.
package config
