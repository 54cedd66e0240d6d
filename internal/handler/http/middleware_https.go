// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net"
	"net/http"
	"strings"
)

const defaultHTTPSPort = "443"

// withHTTPSRedirect sends plaintext requests to the HTTPS listener with a
// 307, keeping method and body. When no HTTPS address is configured the
// redirect is skipped and a warning is logged once.
func (h *Handler) withHTTPSRedirect() func(http.Handler) http.Handler {
	port, ok := httpsPort(h.server.HTTPSAddress)
	if !ok {
		h.logger.Warn().Msg("failed to determine the https port for redirect, https redirection is disabled")
		return func(next http.Handler) http.Handler { return next }
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.TLS != nil {
				next.ServeHTTP(w, r)
				return
			}

			http.Redirect(w, r, httpsURL(r, port), http.StatusTemporaryRedirect)
		})
	}
}

func httpsPort(address string) (string, bool) {
	if address == "" {
		return "", false
	}
	_, port, err := net.SplitHostPort(address)
	if err != nil || port == "" {
		return "", false
	}
	return port, true
}

func httpsURL(r *http.Request, port string) string {
	host := r.Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.Trim(host, "[]")

	authority := host
	if strings.Contains(host, ":") {
		authority = "[" + host + "]"
	}
	if port != defaultHTTPSPort {
		authority = net.JoinHostPort(host, port)
	}

	return "https://" + authority + r.URL.RequestURI()
}
