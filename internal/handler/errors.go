// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when no HTTP
	// address is configured, so no transport handler can be initialized.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errNoPairingKey is returned by NewHandlers when the HMAC pairing key
	// is empty: every companion request would fail signature checks.
	errNoPairingKey = errors.New("pairing hash key is not set")
)
