package browser

import (
	"fmt"
	"net/url"

	"golang.org/x/net/publicsuffix"
)

// BaseDomain returns the base domain for an inputted URL.
func BaseDomain(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("no hostname in URL %q", rawURL)
	}
	return publicsuffix.EffectiveTLDPlusOne(u.Hostname())
}
