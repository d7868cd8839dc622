package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warden/internal/shared/errors"
)

func TestEvaluate_Scores(t *testing.T) {
	tests := []struct {
		name      string
		password  string
		wantScore int
		wantLabel string
		wantOK    bool
	}{
		{"empty", "", 0, "Very Weak", false},
		{"single lowercase", "a", 1, "Very Weak", false},
		{"lower and digit", "abc123", 2, "Weak", false},
		{"short but varied", "Ab1!", 4, "Strong", false},
		{"policy minimum", "Abcdef1!", 5, "Very Strong", true},
		{"long and varied", "Abcdefghij1!", 6, "Very Strong", true},
		{"long but no symbol", "Abcdefghij123", 5, "Very Strong", false},
		{"digits only long", "123456789012", 3, "Fair", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Evaluate(tt.password)
			assert.Equal(t, tt.wantScore, s.Score)
			assert.Equal(t, tt.wantLabel, s.Label)
			assert.Equal(t, tt.wantOK, s.SatisfiesMinimumPolicy)
		})
	}
}

func TestEvaluate_LabelBands(t *testing.T) {
	wantByScore := map[int]string{
		0: "Very Weak",
		1: "Very Weak",
		2: "Weak",
		3: "Fair",
		4: "Strong",
		5: "Very Strong",
		6: "Very Strong",
	}
	for score, want := range wantByScore {
		assert.Equal(t, want, strengthLabel(score), "score %d", score)
	}
}

func TestValidatePassword_FirstFailingRule(t *testing.T) {
	tests := []struct {
		name     string
		password string
		confirm  string
		wantRule string
	}{
		{"blank", "", "", "Password is required"},
		{"whitespace only", "   ", "   ", "Password is required"},
		{"too short", "Ab1!", "Ab1!", "Password must be at least 8 characters"},
		{"no uppercase", "abcdef1!", "abcdef1!", "Password must contain at least one uppercase letter (A-Z)"},
		{"no lowercase", "ABCDEF1!", "ABCDEF1!", "Password must contain at least one lowercase letter (a-z)"},
		{"no digit", "Abcdefg!", "Abcdefg!", "Password must contain at least one digit (0-9)"},
		{"no symbol", "Abcdefg1", "Abcdefg1", "Password must contain at least one special character (!@#$%...)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password, tt.confirm)
			require.Error(t, err)
			identityErr := errors.GetIdentityError(err)
			require.NotNil(t, identityErr)
			assert.Equal(t, errors.ErrorTypeWeakPassword, identityErr.Type)
			assert.Equal(t, tt.wantRule, identityErr.Message)
		})
	}
}

func TestValidatePassword_MismatchReportedLast(t *testing.T) {
	// The confirmation check only fires once every strength rule passed.
	err := ValidatePassword("Abcdef1!", "different")
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypePasswordMismatch))
	assert.Contains(t, err.Error(), "do not match")

	err = ValidatePassword("short", "different")
	identityErr := errors.GetIdentityError(err)
	require.NotNil(t, identityErr)
	assert.Equal(t, "Password must be at least 8 characters", identityErr.Message)
}

func TestValidatePassword_AcceptsEverySymbolInSet(t *testing.T) {
	for _, r := range symbolSet {
		password := "Abcdef1" + string(r)
		assert.NoError(t, ValidatePassword(password, password), "symbol %q", r)
	}
}

func TestValidatePassword_RejectsSymbolOutsideSet(t *testing.T) {
	// A space is not in the accepted punctuation set.
	err := ValidatePassword("Abcdef1 ", "Abcdef1 ")
	require.Error(t, err)
}

func TestNewPassword(t *testing.T) {
	p, err := NewPassword("Abcdef1!", "Abcdef1!")
	require.NoError(t, err)
	assert.Equal(t, "Abcdef1!", p.String())

	_, err = NewPassword("Abcdef1!", "nope")
	assert.Error(t, err)
}

func TestEvaluate_AgreesWithValidate(t *testing.T) {
	samples := []string{
		"", "a", "password", "PASSWORD", "Passw0rd", "Passw0rd!",
		"12345678", "Abcdef1!", "Abcdefghij1!", "Abcdefg1", "abcdef1!",
	}
	for _, password := range samples {
		s := Evaluate(password)
		err := ValidatePassword(password, password)
		if s.SatisfiesMinimumPolicy {
			assert.NoError(t, err, "password %q", password)
		} else {
			assert.Error(t, err, "password %q", password)
		}
	}
}
