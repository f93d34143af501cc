// Package config provides configuration management for yuiclaw.
//
// Configuration is layered the same way for every command:
//
//  1. Defaults compiled into the binary (GetDefaultConfig)
//  2. User configuration (~/.config/yuiclaw/config.yaml)
//  3. Project configuration (./.yuiclaw/config.yaml)
//
// Later layers override individual fields of earlier ones; unset fields keep
// the value from the layer below.
//
//	socketPath: /tmp/acomm.sock
//	defaultProvider: Gemini
//	binaries:
//	  bridge: acomm
//	  tui: acomm-tui
//	  tuiFallback: acomm
//	  memory: amem
//	  scheduler: abeat
//	readiness:
//	  attempts: 20
//	  delay: 100ms
//	  probeTimeout: 500ms
//
// # Adapter credentials
//
// Channel adapter tokens (NTFY_TOPIC, DISCORD_BOT_TOKEN, SLACK_APP_TOKEN,
// SLACK_BOT_TOKEN) are read from the environment. LoadDotenv fills the
// environment from ~/.config/yuiclaw/.env without overriding variables that
// are already set, so the shell always wins over the file.
package config
