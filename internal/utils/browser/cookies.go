// Package browser locates and inspects the cookie file handed to the download engine.
package browser

import (
	"fmt"
	"os"

	"vidfetch/internal/domain/enums"

	"github.com/browserutils/kooky"
	"github.com/browserutils/kooky/browser/netscape"
)

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// LocateCookieFile reads the cookie file path from envVar and checks it exists.
//
// An empty value counts as unset. The returned path is empty only when unset.
func LocateCookieFile(lookup LookupFunc, envVar string) (string, enums.CookieStatus) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	path, ok := lookup(envVar)
	if !ok || path == "" {
		return "", enums.CookieUnset
	}
	if _, err := os.Stat(path); err != nil {
		return path, enums.CookieMissing
	}
	return path, enums.CookieFound
}

// InspectCookieFile reads a Netscape cookies file and counts the valid cookies
// belonging to the base domain of targetURL.
func InspectCookieFile(path, targetURL string) (int, error) {
	domain, err := BaseDomain(targetURL)
	if err != nil {
		return 0, fmt.Errorf("failed to extract base domain: %w", err)
	}

	store, err := netscape.CookieStore(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create cookie store: %w", err)
	}
	defer store.Close()

	cookies, err := store.ReadCookies(kooky.Valid, kooky.DomainHasSuffix(domain))
	if err != nil {
		return 0, fmt.Errorf("failed to read cookies: %w", err)
	}
	return len(cookies), nil
}
