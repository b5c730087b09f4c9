// Package state holds the key/value stores that keep the wizard's position
// between runs.
package state

import (
	"net/url"
	"regexp"
	"strings"
)

// Store is a flat string key/value store.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

var unsafeSiteChars = regexp.MustCompile(`[^a-zA-Z0-9.-]+`)

// SiteID turns a site URL into a file-name-safe identifier, so each site
// keeps its own wizard position.
func SiteID(site string) string {
	site = strings.TrimSpace(site)
	if site == "" {
		return "default"
	}
	if u, err := url.Parse(site); err == nil && u.Host != "" {
		site = u.Host + u.Path
	}
	id := strings.Trim(unsafeSiteChars.ReplaceAllString(site, "_"), "_.")
	if id == "" {
		return "default"
	}
	return id
}
