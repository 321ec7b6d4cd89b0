// Package webdomain reduces supplier websites to their registrable domain.
package webdomain

import (
	"errors"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

var ErrNoHost = errors.New("no host in url")

// Registrable returns the eTLD+1 of raw, which may be a full URL or a bare
// host. Hosts publicsuffix cannot reduce are returned lowercased as-is.
func Registrable(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrNoHost
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return "", ErrNoHost
	}
	registrable, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		registrable = host
	}
	return registrable, nil
}
