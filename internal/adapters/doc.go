// Package adapters knows which channel adapters of the acomm bridge exist,
// which of them are configured, and how to start the missing ones.
//
// # Registry
//
// Each ChannelAdapterSpec pairs a set of environment variables with the
// launch flag of its adapter process:
//
//	ntfy     NTFY_TOPIC                         acomm --ntfy
//	Discord  DISCORD_BOT_TOKEN                  acomm --discord
//	Slack    SLACK_APP_TOKEN + SLACK_BOT_TOKEN  acomm --slack
//
// A channel is configured only when all of its variables are non-empty.
// The launch flag doubles as the marker used to find the adapter in a
// process.Snapshot, so flags must be unique and are matched as whole tokens.
//
// # Launching
//
// Registry.Candidates filters configured channels down to those not already
// running. Launcher.Launch re-reads the process table right before spawning so
// that a bridge restart in between does not produce duplicates, and keeps
// going when a single adapter fails to start.
package adapters
