package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  string
	}{
		{"excellent at boundary", 80, ExcellentValue},
		{"good at boundary", 60, GoodValue},
		{"fair at boundary", 40, FairValue},
		{"poor below fair", 39.99, PoorValue},
		{"poor at zero", 0, PoorValue},
		{"excellent above scale", 120, ExcellentValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetPlainLabel(tt.score))
		})
	}
}

func TestFileStem(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"final_scores.jsonl", "final_scores"},
		{"/a/b/final_scores.jsonl", "final_scores"},
		{"noext", "noext"},
		{"archive.tar.gz", "archive.tar"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FileStem(tt.path))
	}
}

func TestTruncateName(t *testing.T) {
	assert.Equal(t, "traj_01", TruncateName("traj_01", 15))
	assert.Equal(t, "traj_long_na...", TruncateName("traj_long_name_here", 15))
	// Width too small for a marker leaves the name alone
	assert.Equal(t, "traj_01", TruncateName("traj_01", 3))
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "YES", "true", "1"} {
		got, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.True(t, got, s)
	}
	for _, s := range []string{"no", "No", "false", "0"} {
		got, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.False(t, got, s)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}

func TestGetHistoryDBFilePath(t *testing.T) {
	path := GetHistoryDBFilePath()
	assert.Contains(t, path, ".scoreagg_history.db")
}
