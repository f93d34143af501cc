package adapters

import (
	"os"
	"strings"
)

// EnvKeys is the set of environment variable names with non-empty values.
type EnvKeys map[string]struct{}

// PresentEnvKeys scans the current process environment. Call it per decision;
// the result is not meant to be kept.
func PresentEnvKeys() EnvKeys {
	return EnvKeysFromEnviron(os.Environ())
}

// EnvKeysFromEnviron builds the set from KEY=VALUE pairs. Values that are
// empty or whitespace only do not count as present.
func EnvKeysFromEnviron(environ []string) EnvKeys {
	keys := make(EnvKeys, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" || strings.TrimSpace(v) == "" {
			continue
		}
		keys[k] = struct{}{}
	}
	return keys
}

// NewEnvKeys builds the set from names directly.
func NewEnvKeys(names ...string) EnvKeys {
	keys := make(EnvKeys, len(names))
	for _, n := range names {
		keys[n] = struct{}{}
	}
	return keys
}

// Has reports whether key is present.
func (k EnvKeys) Has(key string) bool {
	_, ok := k[key]
	return ok
}

// IsConfigured reports whether every key required by spec is present.
// Channels with only some of their keys are unconfigured, not broken.
func IsConfigured(spec ChannelAdapterSpec, keys EnvKeys) bool {
	for _, k := range spec.RequiredEnvKeys {
		if !keys.Has(k) {
			return false
		}
	}
	return true
}
