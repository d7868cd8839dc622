package valueobjects

import (
	"strings"
	"unicode"

	"warden/internal/shared/errors"
)

// MinPasswordLength is the floor for every account credential.
const MinPasswordLength = 8

// bonusLength earns an extra strength point but is not required by policy.
const bonusLength = 12

// symbolSet is the fixed punctuation set accepted as "special characters".
const symbolSet = `!@#$%^&*()_+-=[]{};':"|,.<>/?`

// Strength is the result of evaluating a candidate password.
type Strength struct {
	// Score counts satisfied rules, 0 through 6.
	Score int
	// Label is the human band for Score/6: Very Weak, Weak, Fair, Strong,
	// Very Strong.
	Label string
	// SatisfiesMinimumPolicy is true when the password meets every hard
	// requirement (length, upper, lower, digit, symbol). The 12-character
	// bonus point is not required.
	SatisfiesMinimumPolicy bool
}

type passwordTraits struct {
	hasUpper  bool
	hasLower  bool
	hasDigit  bool
	hasSymbol bool
}

func inspect(password string) passwordTraits {
	var t passwordTraits
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			t.hasUpper = true
		case unicode.IsLower(r):
			t.hasLower = true
		case unicode.IsDigit(r):
			t.hasDigit = true
		case strings.ContainsRune(symbolSet, r):
			t.hasSymbol = true
		}
	}
	return t
}

// Evaluate scores a candidate password. One point per rule: length >= 8,
// length >= 12, uppercase present, lowercase present, digit present, symbol
// present. Pure function, no side effects.
func Evaluate(password string) Strength {
	t := inspect(password)

	score := 0
	if len(password) >= MinPasswordLength {
		score++
	}
	if len(password) >= bonusLength {
		score++
	}
	if t.hasUpper {
		score++
	}
	if t.hasLower {
		score++
	}
	if t.hasDigit {
		score++
	}
	if t.hasSymbol {
		score++
	}

	return Strength{
		Score: score,
		Label: strengthLabel(score),
		SatisfiesMinimumPolicy: len(password) >= MinPasswordLength &&
			t.hasUpper && t.hasLower && t.hasDigit && t.hasSymbol,
	}
}

// strengthLabel maps score/6 onto bands, inclusive at each upper edge.
func strengthLabel(score int) string {
	pct := float64(score) / 6.0
	switch {
	case pct <= 0.2:
		return "Very Weak"
	case pct <= 0.4:
		return "Weak"
	case pct <= 0.6:
		return "Fair"
	case pct <= 0.8:
		return "Strong"
	default:
		return "Very Strong"
	}
}

// ValidatePassword checks the hard policy plus confirmation match and
// reports the first failing rule, in fixed order: blank, length, uppercase,
// lowercase, digit, symbol, confirmation mismatch.
func ValidatePassword(password, confirm string) error {
	if strings.TrimSpace(password) == "" {
		return errors.NewWeakPasswordError("Password is required")
	}
	if len(password) < MinPasswordLength {
		return errors.NewWeakPasswordError("Password must be at least 8 characters")
	}
	t := inspect(password)
	if !t.hasUpper {
		return errors.NewWeakPasswordError("Password must contain at least one uppercase letter (A-Z)")
	}
	if !t.hasLower {
		return errors.NewWeakPasswordError("Password must contain at least one lowercase letter (a-z)")
	}
	if !t.hasDigit {
		return errors.NewWeakPasswordError("Password must contain at least one digit (0-9)")
	}
	if !t.hasSymbol {
		return errors.NewWeakPasswordError("Password must contain at least one special character (!@#$%...)")
	}
	if password != confirm {
		return errors.NewPasswordMismatchError()
	}
	return nil
}

// Password is a plaintext credential that passed the full policy. It exists
// only in memory on its way to the hasher.
type Password struct {
	value string
}

// NewPassword validates a candidate against the full policy and confirmation.
func NewPassword(plain, confirm string) (*Password, error) {
	if err := ValidatePassword(plain, confirm); err != nil {
		return nil, err
	}
	return &Password{value: plain}, nil
}

func (p *Password) String() string {
	return p.value
}
