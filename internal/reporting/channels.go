package reporting

import (
	"yuiclaw/internal/adapters"
	"yuiclaw/internal/process"
)

// ChannelStatuses lists every configured channel in registry order.
// A channel is connected only when the bridge is running and an adapter
// process for it appears in snap. Unconfigured channels are omitted. The
// result is never nil so it encodes as an empty JSON array.
func ChannelStatuses(reg *adapters.Registry, keys adapters.EnvKeys, snap process.Snapshot, binary string, bridgeRunning bool) []ChannelStatus {
	statuses := []ChannelStatus{}
	for _, spec := range reg.Configured(keys) {
		statuses = append(statuses, ChannelStatus{
			Label:     spec.Label,
			Connected: bridgeRunning && snap.HasFlag(binary, spec.LaunchFlag),
		})
	}
	return statuses
}
