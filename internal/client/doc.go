// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the client services and the background workers
// (expiry ticker, metrics exporter) into a single process lifecycle, and on
// exit flushes pending re-encryption writes before locking the vault.
package client
