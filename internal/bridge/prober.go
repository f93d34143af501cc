package bridge

import (
	"context"
	"fmt"
	"net"
	"time"

	"yuiclaw/pkg/logging"
)

// Prober checks whether the bridge accepts connections.
type Prober interface {
	Probe(ctx context.Context) error
}

// UnixSocketProber connects to the bridge's unix socket and closes the
// connection immediately. No bytes are exchanged.
type UnixSocketProber struct {
	Path    string
	Timeout time.Duration
}

// NewUnixSocketProber creates a prober for the socket at path.
func NewUnixSocketProber(path string, timeout time.Duration) *UnixSocketProber {
	return &UnixSocketProber{Path: path, Timeout: timeout}
}

// Probe returns nil when a connection to the socket succeeds.
func (p *UnixSocketProber) Probe(ctx context.Context) error {
	dialer := &net.Dialer{Timeout: p.Timeout}
	conn, err := dialer.DialContext(ctx, "unix", p.Path)
	if err != nil {
		return fmt.Errorf("failed to connect to bridge socket %s: %w", p.Path, err)
	}
	defer conn.Close()

	logging.Debug("Prober", "Bridge socket %s accepted a connection", p.Path)
	return nil
}

// Accepting is a convenience wrapper reporting Probe success as a bool.
func Accepting(ctx context.Context, p Prober) bool {
	return p.Probe(ctx) == nil
}
