package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanPlaceholders(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    []int
		wantErr bool
	}{
		{"no placeholders", "plain text", nil, false},
		{"single", "Hi {{1}}", []int{1}, false},
		{"ordered", "{{1}} and {{2}} and {{3}}", []int{1, 2, 3}, false},
		{"duplicates preserved", "{{1}}{{1}}", []int{1, 1}, false},
		{"out of order preserved", "{{2}} then {{1}}", []int{2, 1}, false},
		{"multi-byte text around token", "héllo {{1}} wörld", []int{1}, false},
		{"alphabetic token", "Hi {{abc}}", nil, true},
		{"empty token", "Hi {{}}", nil, true},
		{"zero index", "Hi {{0}}", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScanPlaceholders(tt.text)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckSequential(t *testing.T) {
	ok, _ := CheckSequential([]int{1, 2, 3})
	assert.True(t, ok)

	ok, _ = CheckSequential(nil)
	assert.True(t, ok)

	// Duplicates do not break sequentiality: the distinct set decides.
	ok, _ = CheckSequential([]int{1, 1, 2})
	assert.True(t, ok)

	ok, found := CheckSequential([]int{1, 3})
	assert.False(t, ok)
	assert.Equal(t, "{{1}}, {{3}}", found)

	ok, found = CheckSequential([]int{2})
	assert.False(t, ok)
	assert.Equal(t, "{{2}}", found)
}

func TestDuplicatePlaceholders(t *testing.T) {
	assert.Empty(t, DuplicatePlaceholders([]int{1, 2, 3}))
	assert.Equal(t, []int{1}, DuplicatePlaceholders([]int{1, 1, 2}))
	assert.Equal(t, []int{1, 2}, DuplicatePlaceholders([]int{2, 1, 2, 1}))
}
