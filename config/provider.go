package config

import (
	"os"
	"strings"
)

// ProviderAPIBase returns the upstream order API base URL. An empty result
// means the base is not configured; that is checked at submission time, not
// at boot, so the panel can still serve the catalog without it.
func ProviderAPIBase() string {
	return strings.TrimRight(os.Getenv("PROVIDER_API_BASE"), "/")
}
