// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"strings"
)

// ParseCookieHeader splits a raw Cookie header into name/value pairs.
//
// Pairs are separated by ";" and split on the first "=". Names and values are
// trimmed of surrounding whitespace; anything after the first "=" is kept
// verbatim so values may themselves contain "=". Parts without "=" are
// skipped. When a name repeats, the first occurrence wins.
func ParseCookieHeader(header string) map[string]string {
	cookies := make(map[string]string)

	for _, part := range strings.Split(header, ";") {
		name, value, found := strings.Cut(part, "=")
		if !found {
			continue
		}

		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, seen := cookies[name]; seen {
			continue
		}

		cookies[name] = strings.TrimSpace(value)
	}

	return cookies
}

// CookieValue returns the value of the named cookie across every Cookie
// header of r. The first occurrence wins.
func CookieValue(r *http.Request, name string) (string, bool) {
	headers := r.Header.Values("Cookie")
	if len(headers) == 0 {
		return "", false
	}

	value, ok := ParseCookieHeader(strings.Join(headers, ";"))[name]
	return value, ok
}
