package marketplace

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Version
		wantErr bool
	}{
		{
			name:  "Basic",
			input: "2.3.7",
			want:  Version{Major: 2, Minor: 3, Patch: 7},
		},
		{
			name:  "Zeroes",
			input: "0.0.0",
			want:  Version{},
		},
		{
			name:  "Empty_DefaultsTo100",
			input: "",
			want:  Version{Major: 1, Minor: 0, Patch: 0},
		},
		{
			name:    "TwoParts",
			input:   "1.2",
			wantErr: true,
		},
		{
			name:    "FourParts",
			input:   "1.2.3.4",
			wantErr: true,
		},
		{
			name:    "NonNumeric",
			input:   "1.2.x",
			wantErr: true,
		},
		{
			name:    "Negative",
			input:   "1.-2.3",
			wantErr: true,
		},
		{
			name:    "PrefixedV",
			input:   "v1.2.3",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVersion(tt.input)
			if tt.wantErr {
				var verr *VersionFormatError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.input, verr.Version)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBumpPatch(t *testing.T) {
	v, err := ParseVersion("2.3.7")
	require.NoError(t, err)
	assert.Equal(t, "2.3.8", v.BumpPatch().String())
}

func TestBumpPatch_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		major := rapid.IntRange(0, 1000).Draw(t, "major")
		minor := rapid.IntRange(0, 1000).Draw(t, "minor")
		patch := rapid.IntRange(0, 100000).Draw(t, "patch")

		v, err := ParseVersion(fmt.Sprintf("%d.%d.%d", major, minor, patch))
		require.NoError(t, err)

		bumped := v.BumpPatch()
		assert.Equal(t, major, bumped.Major, "major unchanged")
		assert.Equal(t, minor, bumped.Minor, "minor unchanged")
		assert.Equal(t, patch+1, bumped.Patch, "patch increments by exactly one")

		// Round trip stays parseable.
		again, err := ParseVersion(bumped.String())
		require.NoError(t, err)
		assert.Equal(t, bumped, again)
	})
}
