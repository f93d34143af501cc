package adapters

import (
	"fmt"
	"strings"

	"yuiclaw/internal/process"
)

// ChannelAdapterSpec describes one optional channel adapter of the bridge.
type ChannelAdapterSpec struct {
	// Label is the display name, e.g. "Discord".
	Label string
	// RequiredEnvKeys must all be set and non-empty for the channel to be configured.
	RequiredEnvKeys []string
	// LaunchFlag is passed to the bridge binary to start the adapter and is
	// the token that identifies the adapter in the process table.
	LaunchFlag string
}

// DefaultSpecs returns the channels yuiclaw knows how to start.
func DefaultSpecs() []ChannelAdapterSpec {
	return []ChannelAdapterSpec{
		{Label: "ntfy", RequiredEnvKeys: []string{"NTFY_TOPIC"}, LaunchFlag: "--ntfy"},
		{Label: "Discord", RequiredEnvKeys: []string{"DISCORD_BOT_TOKEN"}, LaunchFlag: "--discord"},
		{Label: "Slack", RequiredEnvKeys: []string{"SLACK_APP_TOKEN", "SLACK_BOT_TOKEN"}, LaunchFlag: "--slack"},
	}
}

// Registry is an immutable, ordered set of adapter specs.
type Registry struct {
	specs []ChannelAdapterSpec
}

// NewRegistry validates specs and returns a registry holding them in order.
// Launch flags must be non-empty, contain no whitespace and be unique.
func NewRegistry(specs ...ChannelAdapterSpec) (*Registry, error) {
	seen := make(map[string]string, len(specs))
	copied := make([]ChannelAdapterSpec, 0, len(specs))
	for _, spec := range specs {
		if spec.LaunchFlag == "" || strings.ContainsAny(spec.LaunchFlag, " \t\n") {
			return nil, fmt.Errorf("adapter %q: invalid launch flag %q", spec.Label, spec.LaunchFlag)
		}
		if len(spec.RequiredEnvKeys) == 0 {
			return nil, fmt.Errorf("adapter %q: no required environment keys", spec.Label)
		}
		if other, dup := seen[spec.LaunchFlag]; dup {
			return nil, fmt.Errorf("adapter %q: launch flag %s already used by %q", spec.Label, spec.LaunchFlag, other)
		}
		seen[spec.LaunchFlag] = spec.Label

		spec.RequiredEnvKeys = append([]string(nil), spec.RequiredEnvKeys...)
		copied = append(copied, spec)
	}
	return &Registry{specs: copied}, nil
}

// DefaultRegistry returns the registry built from DefaultSpecs.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(DefaultSpecs()...)
	if err != nil {
		panic(err)
	}
	return r
}

// Specs returns a copy of the registered specs in order.
func (r *Registry) Specs() []ChannelAdapterSpec {
	return append([]ChannelAdapterSpec(nil), r.specs...)
}

// Configured returns the specs whose required keys are all present.
func (r *Registry) Configured(keys EnvKeys) []ChannelAdapterSpec {
	var out []ChannelAdapterSpec
	for _, spec := range r.specs {
		if IsConfigured(spec, keys) {
			out = append(out, spec)
		}
	}
	return out
}

// Candidates returns the configured specs that have no matching binary
// process in snap. These are the adapters that need starting.
func (r *Registry) Candidates(keys EnvKeys, snap process.Snapshot, binary string) []ChannelAdapterSpec {
	var out []ChannelAdapterSpec
	for _, spec := range r.Configured(keys) {
		if !snap.HasFlag(binary, spec.LaunchFlag) {
			out = append(out, spec)
		}
	}
	return out
}
