package valueobjects

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warden/internal/shared/errors"
)

func TestNewUsername(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"minimum length", "abcd", false},
		{"maximum length", strings.Repeat("a", 30), false},
		{"digits and underscore", "warden_01", false},
		{"mixed case", "ChiefWarden", false},
		{"too short", "abc", true},
		{"too long", strings.Repeat("a", 31), true},
		{"empty", "", true},
		{"space", "chief warden", true},
		{"hyphen", "chief-warden", true},
		{"at sign", "chief@hq", true},
		{"unicode letter", "wärden", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUsername(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidUsername))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, u.String())
		})
	}
}

func TestUsername_Equals(t *testing.T) {
	a, err := NewUsername("warden01")
	require.NoError(t, err)
	b, err := NewUsername("warden01")
	require.NoError(t, err)
	c, err := NewUsername("warden02")
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(nil))
}
