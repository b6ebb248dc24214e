// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the signature middleware.
var (
	// ErrEmptySignatureHeader is returned when a signed route is called
	// without a HashSHA256 header.
	ErrEmptySignatureHeader = errors.New("empty `HashSHA256` header")

	// ErrSignatureMismatch is returned when the HashSHA256 header is not the
	// HMAC of the request body under the pairing key.
	ErrSignatureMismatch = errors.New("request signature mismatch")
)
