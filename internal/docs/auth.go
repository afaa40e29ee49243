// SPDX-FileCopyrightText: 2026 specforge
// SPDX-License-Identifier: FSL-1.1-MIT

package docs

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// bearerAuth guards a handler with HMAC-signed bearer tokens. Tokens must
// use HS256; when issuer is non-empty the token's iss claim must match.
func bearerAuth(secret, issuer string, next http.HandlerFunc) http.HandlerFunc {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256"})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		const scheme = "Bearer "
		if !strings.HasPrefix(header, scheme) {
			unauthorized(w, "missing bearer token")
			return
		}

		if _, err := jwt.Parse(strings.TrimPrefix(header, scheme), keyFunc, opts...); err != nil {
			unauthorized(w, "invalid token")
			return
		}

		next(w, r)
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="specforge"`)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	fmt.Fprintf(w, "{%q:%q}\n", "error", message)
}
