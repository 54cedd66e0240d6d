// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-tasks-api handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
package app

const (
	// LocaleEN and LocalePtBR are the supported message locales.
	LocaleEN   = "en"
	LocalePtBR = "pt-BR"
)

const (
	// MsgUnauthorized is the body message of every authentication failure.
	MsgUnauthorized = "Access not authorized. Invalid or expired token."

	// MsgUnauthorizedPtBR is the pt-BR form of MsgUnauthorized.
	MsgUnauthorizedPtBR = "Acesso não autorizado. Token inválido ou expirado."

	// MsgOriginNotAllowed is written when the CORS policy blocks a request.
	MsgOriginNotAllowed = "origin not allowed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)

var unauthorizedMessages = map[string]string{
	LocaleEN:   MsgUnauthorized,
	LocalePtBR: MsgUnauthorizedPtBR,
}

// UnauthorizedMessage returns the unauthorized message for locale. An
// unknown locale falls back to English.
func UnauthorizedMessage(locale string) string {
	if msg, ok := unauthorizedMessages[locale]; ok {
		return msg
	}
	return MsgUnauthorized
}
