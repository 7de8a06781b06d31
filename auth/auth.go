// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidSignature = errors.New("invalid session signature")
	ErrInvalidToken     = errors.New("invalid token format")
)

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// SignSessionID returns "<id>.<mac>" where mac is an HMAC-SHA256 of the
// session id. The cookie value can be checked without server-side storage.
func SignSessionID(sessionID, salt string) string {
	return sessionID + "." + sessionMAC(sessionID, salt)
}

// VerifySessionToken checks a signed token and returns the session id
func VerifySessionToken(token, salt string) (string, error) {
	sessionID, mac, ok := strings.Cut(token, ".")
	if !ok || sessionID == "" || mac == "" {
		return "", ErrInvalidToken
	}
	expected := sessionMAC(sessionID, salt)
	if !hmac.Equal([]byte(mac), []byte(expected)) {
		return "", ErrInvalidSignature
	}
	return sessionID, nil
}

func sessionMAC(sessionID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(sessionID))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner cookies
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// Return first 16 hex chars (64 bits) - enough for deduplication
	return hex.EncodeToString(sum[:8])
}
