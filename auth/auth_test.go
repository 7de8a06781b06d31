// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"
)

func TestGenerateID(t *testing.T) {
	tests := []struct {
		name    string
		byteLen int
		wantLen int // hex encoded length = byteLen * 2
	}{
		{"8 bytes", 8, 16},
		{"16 bytes", 16, 32},
		{"24 bytes", 24, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := GenerateID(tt.byteLen)
			if err != nil {
				t.Fatalf("GenerateID() error = %v", err)
			}
			if len(id) != tt.wantLen {
				t.Errorf("GenerateID() length = %d, want %d", len(id), tt.wantLen)
			}
			// Verify it's valid hex
			for _, c := range id {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
					t.Errorf("GenerateID() contains invalid hex char: %c", c)
				}
			}
		})
	}

	// Test randomness - two IDs should be different
	id1, _ := GenerateID(16)
	id2, _ := GenerateID(16)
	if id1 == id2 {
		t.Error("GenerateID() produced duplicate IDs (extremely unlikely)")
	}
}

func TestSignSessionID(t *testing.T) {
	tests := []struct {
		name      string
		sessionID string
		salt      string
	}{
		{"uuid", "6f1c2b0e-8c1d-4c55-9d4e-1f2a3b4c5d6e", "secret-salt"},
		{"short id", "abc", "salt"},
		{"empty salt", "session456", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := SignSessionID(tt.sessionID, tt.salt)

			// Should carry the id in clear
			if !strings.HasPrefix(token, tt.sessionID+".") {
				t.Errorf("SignSessionID() = %q, want prefix %q", token, tt.sessionID+".")
			}

			// Should be deterministic
			if token != SignSessionID(tt.sessionID, tt.salt) {
				t.Error("SignSessionID() is not deterministic")
			}

			// Different ids should produce different signatures
			if token == SignSessionID(tt.sessionID+"x", tt.salt) {
				t.Error("SignSessionID() produced same token for different ids")
			}

			// Should be cookie-safe (no padding)
			if strings.Contains(token, "=") {
				t.Error("SignSessionID() contains padding characters")
			}
		})
	}
}

func TestVerifySessionToken(t *testing.T) {
	sessionID := "6f1c2b0e-8c1d-4c55-9d4e-1f2a3b4c5d6e"
	salt := "test-salt"
	valid := SignSessionID(sessionID, salt)
	_, mac, _ := strings.Cut(valid, ".")

	tests := []struct {
		name    string
		token   string
		salt    string
		wantErr error
	}{
		{"valid token", valid, salt, nil},
		{"wrong salt", valid, "different-salt", ErrInvalidSignature},
		{"tampered id", "other-id." + mac, salt, ErrInvalidSignature},
		{"tampered mac", sessionID + ".AAAA", salt, ErrInvalidSignature},
		{"no separator", sessionID, salt, ErrInvalidToken},
		{"empty id", "." + mac, salt, ErrInvalidToken},
		{"empty mac", sessionID + ".", salt, ErrInvalidToken},
		{"empty token", "", salt, ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := VerifySessionToken(tt.token, tt.salt)
			if err != tt.wantErr {
				t.Fatalf("VerifySessionToken() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && got != sessionID {
				t.Errorf("VerifySessionToken() = %q, want %q", got, sessionID)
			}
		})
	}
}

func TestHashIP(t *testing.T) {
	tests := []struct {
		name string
		ip   string
		salt string
	}{
		{"IPv4", "192.168.1.1", "ip-salt"},
		{"IPv6", "2001:0db8:85a3::8a2e:0370:7334", "ip-salt"},
		{"localhost", "127.0.0.1", "ip-salt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash := HashIP(tt.ip, tt.salt)

			// Should not be empty
			if hash == "" {
				t.Error("HashIP() returned empty string")
			}

			// Should be 16 hex characters (8 bytes * 2)
			if len(hash) != 16 {
				t.Errorf("HashIP() length = %d, want 16", len(hash))
			}

			// Should be valid hex
			for _, c := range hash {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
					t.Errorf("HashIP() contains invalid hex char: %c", c)
				}
			}

			// Should be deterministic
			hash2 := HashIP(tt.ip, tt.salt)
			if hash != hash2 {
				t.Error("HashIP() is not deterministic")
			}
		})
	}

	// Different IPs should produce different hashes
	hash1 := HashIP("192.168.1.1", "salt")
	hash2 := HashIP("192.168.1.2", "salt")
	if hash1 == hash2 {
		t.Error("HashIP() produced same hash for different IPs")
	}

	// Different salts should produce different hashes
	hash3 := HashIP("192.168.1.1", "salt1")
	hash4 := HashIP("192.168.1.1", "salt2")
	if hash3 == hash4 {
		t.Error("HashIP() produced same hash for different salts")
	}
}

// Benchmark tests
func BenchmarkGenerateID(b *testing.B) {
	for i := 0; i < b.N; i++ {
		GenerateID(16)
	}
}

func BenchmarkVerifySessionToken(b *testing.B) {
	salt := "test-salt"
	token := SignSessionID("6f1c2b0e-8c1d-4c55-9d4e-1f2a3b4c5d6e", salt)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		VerifySessionToken(token, salt)
	}
}
