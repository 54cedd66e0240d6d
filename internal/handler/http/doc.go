// Package http implements the HTTP transport layer of the API.
//
// It builds the request pipeline on a chi router: panic recovery, trace id,
// access logging, the cross-origin policy, the HTTPS redirect, the per-IP
// rate limiter and bearer authentication run in that order before routing.
// Routes in the protected group additionally require an authenticated
// identity and answer with the JSON challenge otherwise.
package http
