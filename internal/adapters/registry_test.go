package adapters

import (
	"testing"

	"yuiclaw/internal/process"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(specs []ChannelAdapterSpec) []string {
	out := make([]string, 0, len(specs))
	for _, s := range specs {
		out = append(out, s.Label)
	}
	return out
}

func TestDefaultRegistry_FlagsUnique(t *testing.T) {
	specs := DefaultRegistry().Specs()
	require.Len(t, specs, 3)

	seen := map[string]bool{}
	for _, s := range specs {
		assert.False(t, seen[s.LaunchFlag], "duplicate flag %s", s.LaunchFlag)
		seen[s.LaunchFlag] = true
	}
	assert.Equal(t, []string{"ntfy", "Discord", "Slack"}, labels(specs))
}

func TestNewRegistry_Validation(t *testing.T) {
	tests := []struct {
		name    string
		specs   []ChannelAdapterSpec
		wantErr string
	}{
		{
			name: "duplicate flag",
			specs: []ChannelAdapterSpec{
				{Label: "a", RequiredEnvKeys: []string{"A"}, LaunchFlag: "--x"},
				{Label: "b", RequiredEnvKeys: []string{"B"}, LaunchFlag: "--x"},
			},
			wantErr: "already used",
		},
		{
			name:    "empty flag",
			specs:   []ChannelAdapterSpec{{Label: "a", RequiredEnvKeys: []string{"A"}}},
			wantErr: "invalid launch flag",
		},
		{
			name:    "flag with whitespace",
			specs:   []ChannelAdapterSpec{{Label: "a", RequiredEnvKeys: []string{"A"}, LaunchFlag: "--a b"}},
			wantErr: "invalid launch flag",
		},
		{
			name:    "no env keys",
			specs:   []ChannelAdapterSpec{{Label: "a", LaunchFlag: "--a"}},
			wantErr: "no required environment keys",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.specs...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRegistry_SpecsIsCopy(t *testing.T) {
	r := DefaultRegistry()
	specs := r.Specs()
	specs[0].Label = "changed"
	assert.Equal(t, "ntfy", r.Specs()[0].Label)
}

func TestRegistry_CandidatesUseOnlyConfiguredChannels(t *testing.T) {
	r := DefaultRegistry()

	assert.Empty(t, r.Candidates(NewEnvKeys(), nil, "acomm"))

	discord := r.Candidates(NewEnvKeys("DISCORD_BOT_TOKEN"), nil, "acomm")
	require.Len(t, discord, 1)
	assert.Equal(t, "Discord", discord[0].Label)

	assert.Empty(t, r.Candidates(NewEnvKeys("SLACK_APP_TOKEN"), nil, "acomm"),
		"slack with only one of two tokens is unconfigured")

	all := r.Candidates(NewEnvKeys("NTFY_TOPIC", "DISCORD_BOT_TOKEN", "SLACK_APP_TOKEN", "SLACK_BOT_TOKEN"), nil, "acomm")
	assert.Equal(t, []string{"ntfy", "Discord", "Slack"}, labels(all))
}

func TestRegistry_CandidatesSkipRunningAdapters(t *testing.T) {
	r := DefaultRegistry()
	snap := process.ParseSnapshot("acomm           acomm --discord\nacomm           acomm --bridge\n")

	assert.Empty(t, r.Candidates(NewEnvKeys("DISCORD_BOT_TOKEN"), snap, "acomm"))

	// A build command that mentions the flag is not a running adapter.
	building := process.ParseSnapshot("cargo cargo run -p acomm -- --discord\n")
	assert.Len(t, r.Candidates(NewEnvKeys("DISCORD_BOT_TOKEN"), building, "acomm"), 1)
}

func TestRegistry_Configured(t *testing.T) {
	r := DefaultRegistry()
	got := r.Configured(NewEnvKeys("SLACK_APP_TOKEN", "SLACK_BOT_TOKEN", "NTFY_TOPIC"))
	assert.Equal(t, []string{"ntfy", "Slack"}, labels(got))
}
