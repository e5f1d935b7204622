package compat_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	compat "github.com/uttarayan21/compatible-with"
)

func TestMatchStrictness(t *testing.T) {
	type point struct {
		X int `json:"x"`
		Y int `json:"y"`
	}

	cases := []struct {
		name    string
		payload string
		ok      bool
	}{
		{"exact", `{"x":1,"y":2}`, true},
		{"missing field decodes as zero", `{"x":1}`, true},
		{"unknown field", `{"x":1,"y":2,"z":3}`, false},
		{"wrong field type", `{"x":"1","y":2}`, false},
		{"trailing data", `{"x":1,"y":2} 7`, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var p point
			err := compat.Match([]byte(tc.payload), &p)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestFirstMatchOrder(t *testing.T) {
	// Both candidates parse a bare integer; the first one must win.
	var a, b int
	i, err := compat.FirstMatch([]byte(`5`), &a, &b)
	require.NoError(t, err)
	assert.Equal(t, 0, i)
	assert.Equal(t, 5, a)
}

func TestFirstMatchFallsThrough(t *testing.T) {
	var n int
	var s string
	i, err := compat.FirstMatch([]byte(`"five"`), &n, &s)
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	assert.Equal(t, "five", s)
}

func TestFirstMatchTotalFailure(t *testing.T) {
	var n int
	var s string
	i, err := compat.FirstMatch([]byte(`[true]`), &n, &s)
	assert.Equal(t, -1, i)
	require.Error(t, err)
	assert.ErrorIs(t, err, compat.ErrStructuralMismatch)

	var mismatch *compat.StructuralMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Len(t, mismatch.Candidates, 2)
}
