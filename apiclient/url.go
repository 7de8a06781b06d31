// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apiclient

import (
	"errors"
	"net/url"
	"strings"
)

var ErrInvalidBaseURL = errors.New("backend base URL missing or malformed")

// NormalizeBaseURL turns the configured backend location into an absolute
// http(s) URL without trailing slashes.
//
//	"https://api.example.com/" -> "https://api.example.com"
//	"//api.example.com"        -> "http://api.example.com"
//	"localhost:5005/votaciones" -> "http://localhost:5005/votaciones"
func NormalizeBaseURL(raw string) (*url.URL, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, ErrInvalidBaseURL
	}

	if strings.Contains(value, "://") && !hasHTTPScheme(value) {
		return nil, ErrInvalidBaseURL
	}
	value = withScheme(value)
	value = strings.TrimRight(value, "/")

	u, err := url.Parse(value)
	if err != nil {
		return nil, errors.Join(ErrInvalidBaseURL, err)
	}
	if u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, ErrInvalidBaseURL
	}
	if u.Hostname() == "" {
		return nil, ErrInvalidBaseURL
	}
	return u, nil
}

// ResolveAssetURL makes a candidate photo URL absolute. Absolute,
// protocol-relative and bare-host forms are normalized to http(s); bare
// relative paths are joined to base. An empty value stays empty.
func ResolveAssetURL(base *url.URL, raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}
	if hasHTTPScheme(value) {
		return value
	}
	if strings.HasPrefix(value, "//") {
		scheme := "http"
		if base != nil {
			scheme = base.Scheme
		}
		return scheme + ":" + value
	}
	if looksLikeHost(value) {
		return "http://" + value
	}
	if base == nil {
		return value
	}

	joined := *base
	joined.Fragment = ""
	path, query, _ := strings.Cut(value, "?")
	if strings.HasPrefix(path, "/") {
		joined.Path = path
	} else {
		joined.Path = strings.TrimRight(base.Path, "/") + "/" + path
	}
	joined.RawPath = ""
	joined.RawQuery = query
	return joined.String()
}

func withScheme(value string) string {
	switch {
	case hasHTTPScheme(value):
		return value
	case strings.HasPrefix(value, "//"):
		return "http:" + value
	default:
		return "http://" + value
	}
}

func hasHTTPScheme(value string) bool {
	lower := strings.ToLower(value)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// looksLikeHost reports whether the first path segment is a hostname
// ("localhost:5005/public/a.jpg", "cdn.example.com/a.jpg") rather than a
// directory of a relative path ("media/a.jpg", "a.jpg").
func looksLikeHost(value string) bool {
	first, rest, hasSlash := strings.Cut(value, "/")
	if first == "" {
		return false
	}
	if strings.Contains(first, ":") || first == "localhost" {
		return true
	}
	return hasSlash && rest != "" && strings.Contains(first, ".")
}
