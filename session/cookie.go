// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/votaciones/auth"
	"github.com/danielhkuo/votaciones/flow"
)

const CookieName = "votaciones_sid"

// Lookup returns the flow bound to the request's session cookie, if any
func (s *Store) Lookup(r *http.Request) (*flow.Flow, bool) {
	_, f, ok := s.lookup(r)
	return f, ok
}

func (s *Store) lookup(r *http.Request) (string, *flow.Flow, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return "", nil, false
	}
	id, err := auth.VerifySessionToken(c.Value, s.salt)
	if err != nil {
		slog.Warn("rejected session cookie", "error", err)
		return "", nil, false
	}
	f, ok := s.Get(id)
	return id, f, ok
}

// Attach returns the request's flow, starting a new session when there is
// none. A new session is a fresh mount of the voting screen. The cookie is
// written on every call so its expiry slides with the server-side idle TTL.
func (s *Store) Attach(w http.ResponseWriter, r *http.Request) *flow.Flow {
	id, f, ok := s.lookup(r)
	if !ok {
		id, f = s.Create()
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    auth.SignSessionID(id, s.salt),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.ttl.Seconds()),
	})
	return f
}
