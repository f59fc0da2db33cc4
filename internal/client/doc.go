// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the dapp.
//
// Each subcommand reads literal argument values, forwards them to the
// matching client service and prints the outcome as JSON. Failures are
// logged and returned to the caller.
package client
