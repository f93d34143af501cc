package reporting

// ComponentStatus records whether one external tool resolves in PATH.
type ComponentStatus struct {
	Name      string `json:"name" yaml:"name"`
	Available bool   `json:"available" yaml:"available"`
}

// ChannelStatus is the state of one configured channel adapter.
type ChannelStatus struct {
	Label     string `json:"label" yaml:"label"`
	Connected bool   `json:"connected" yaml:"connected"`
}

// BridgeStatus describes the bridge socket.
type BridgeStatus struct {
	SocketPath string `json:"socketPath" yaml:"socketPath"`
	Running    bool   `json:"running" yaml:"running"`
}

// Report is the full output of `yuiclaw status`.
type Report struct {
	Components []ComponentStatus `json:"components" yaml:"components"`
	Bridge     BridgeStatus      `json:"bridge" yaml:"bridge"`
	Channels   []ChannelStatus   `json:"channels" yaml:"channels"`
	// Jobs holds the lines printed by `abeat list`. Nil when abeat is missing.
	Jobs []string `json:"jobs,omitempty" yaml:"jobs,omitempty"`
	// JobsErr is set when abeat is available but listing failed.
	JobsErr string `json:"jobsError,omitempty" yaml:"jobsError,omitempty"`
	// MemoryRoot is the output of `amem which`. Empty when amem is missing.
	MemoryRoot string `json:"memoryRoot,omitempty" yaml:"memoryRoot,omitempty"`
	MemoryErr  string `json:"memoryError,omitempty" yaml:"memoryError,omitempty"`

	// SchedulerAvailable and MemoryAvailable select the optional sections.
	// Components are named by the configured binary, which may be a path.
	SchedulerAvailable bool `json:"-" yaml:"-"`
	MemoryAvailable    bool `json:"-" yaml:"-"`
}

// DaemonStatus is the machine-readable summary consumed by the watchdog job.
type DaemonStatus struct {
	BridgeRunning bool            `json:"bridge_running" yaml:"bridge_running"`
	Channels      []ChannelStatus `json:"channels" yaml:"channels"`
}

// Healthy reports whether the bridge runs and every configured channel is
// connected.
func (d DaemonStatus) Healthy() bool {
	if !d.BridgeRunning {
		return false
	}
	for _, ch := range d.Channels {
		if !ch.Connected {
			return false
		}
	}
	return true
}
