package repository

import (
	"crypto/md5" // #nosec G501 cache key digest only
	"encoding/hex"
	"net/url"
	"strings"
)

// CacheKey identifies a middleware request: method, absolute URL and, for
// POST requests, the encoded form on a second line.
func CacheKey(method, rawURL string, form url.Values) string {
	key := strings.ToUpper(method) + " " + rawURL
	if len(form) > 0 {
		key += "\n" + form.Encode()
	}
	return key
}

// KeyDigest returns the md5 hex digest of key
func KeyDigest(key string) string {
	sum := md5.Sum([]byte(key)) // #nosec G401
	return hex.EncodeToString(sum[:])
}

// keyURL extracts the request URL from a key built by CacheKey
func keyURL(key string) (*url.URL, bool) {
	_, rest, ok := strings.Cut(key, " ")
	if !ok {
		return nil, false
	}
	rawURL, _, _ := strings.Cut(rest, "\n")
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, false
	}
	return u, true
}
