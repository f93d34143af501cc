package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvKeysFromEnviron(t *testing.T) {
	keys := EnvKeysFromEnviron([]string{
		"DISCORD_BOT_TOKEN=abc",
		"SLACK_APP_TOKEN=",
		"SLACK_BOT_TOKEN=   ",
		"NTFY_TOPIC=a=b",
		"=weird",
		"NOEQUALS",
	})

	assert.True(t, keys.Has("DISCORD_BOT_TOKEN"))
	assert.True(t, keys.Has("NTFY_TOPIC"))
	assert.False(t, keys.Has("SLACK_APP_TOKEN"), "empty values are not present")
	assert.False(t, keys.Has("SLACK_BOT_TOKEN"), "whitespace-only values are not present")
	assert.False(t, keys.Has("NOEQUALS"))
	assert.Len(t, keys, 2)
}

func TestPresentEnvKeys(t *testing.T) {
	t.Setenv("YUICLAW_ADAPTER_TEST_SET", "value")
	t.Setenv("YUICLAW_ADAPTER_TEST_EMPTY", "")

	keys := PresentEnvKeys()
	assert.True(t, keys.Has("YUICLAW_ADAPTER_TEST_SET"))
	assert.False(t, keys.Has("YUICLAW_ADAPTER_TEST_EMPTY"))
}

func TestIsConfigured_AllKeysRequired(t *testing.T) {
	slack := ChannelAdapterSpec{Label: "Slack", RequiredEnvKeys: []string{"SLACK_APP_TOKEN", "SLACK_BOT_TOKEN"}, LaunchFlag: "--slack"}

	assert.False(t, IsConfigured(slack, NewEnvKeys()))
	assert.False(t, IsConfigured(slack, NewEnvKeys("SLACK_APP_TOKEN")))
	assert.False(t, IsConfigured(slack, NewEnvKeys("SLACK_BOT_TOKEN")))
	assert.True(t, IsConfigured(slack, NewEnvKeys("SLACK_APP_TOKEN", "SLACK_BOT_TOKEN")))
}

// Adding the one missing key flips the result to true, and adding keys never
// flips a configured channel back.
func TestIsConfigured_Monotonic(t *testing.T) {
	for _, spec := range DefaultSpecs() {
		for missing := range spec.RequiredEnvKeys {
			var partial []string
			for i, k := range spec.RequiredEnvKeys {
				if i != missing {
					partial = append(partial, k)
				}
			}
			keys := NewEnvKeys(partial...)
			assert.False(t, IsConfigured(spec, keys), "%s without %s", spec.Label, spec.RequiredEnvKeys[missing])

			keys[spec.RequiredEnvKeys[missing]] = struct{}{}
			assert.True(t, IsConfigured(spec, keys), "%s with all keys", spec.Label)

			keys["UNRELATED_KEY"] = struct{}{}
			assert.True(t, IsConfigured(spec, keys))
		}
	}
}
