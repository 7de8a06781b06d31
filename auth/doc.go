// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides session signing and hashing utilities.

# Session Cookies

Session ids are signed with HMAC-SHA256 so a cookie can be trusted without
a lookup:

	token := auth.SignSessionID(sessionID, salt)
	id, err := auth.VerifySessionToken(token, salt)

The token is "<id>.<mac>" with the mac URL-safe base64 encoded without
padding. A forged or truncated token fails with ErrInvalidSignature or
ErrInvalidToken.

# ID Generation

Random hex IDs, used for per-process secrets:

	salt, err := auth.GenerateID(32)

# IP Hashing

The development backend stores a salted hash instead of the voter address:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
