package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default", []string{"version"}, "lemonade version 1.2.3 (commit: abc1234, built: 2026-10-19)\n"},
		{"short", []string{"version", "--short"}, "1.2.3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			require.Equal(t, 0, h.run(tt.args...))
			assert.Equal(t, tt.want, h.stdout.String())
		})
	}
}

func TestVersionJSON(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, 0, h.run("version", "--json"))

	var info map[string]string
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &info))
	assert.Equal(t, map[string]string{
		"version": "1.2.3",
		"commit":  "abc1234",
		"date":    "2026-10-19",
	}, info)
}
