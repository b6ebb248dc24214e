// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// companion simulator handlers and middleware.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies or log entries to describe the outcome of an operation.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded as an item identity.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgNoItemIDProvided is returned when the decoded identity is empty.
	MsgNoItemIDProvided = "no item id provided"

	// MsgAccessDenied is returned when the companion policy refuses to
	// release the key of the requested item.
	MsgAccessDenied = "access denied"

	// MsgApprovalTimedOut is returned when the request ended before the
	// companion approved the release.
	MsgApprovalTimedOut = "approval timed out"

	// MsgEmptySignature is returned when a request carries no HashSHA256
	// header.
	MsgEmptySignature = "empty signature"

	// MsgSignatureMismatch is returned when the request body is not signed
	// with the pairing key.
	MsgSignatureMismatch = "signature mismatch"

	// MsgInternalServerError is returned when an unexpected failure occurs
	// that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
