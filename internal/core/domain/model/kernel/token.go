package kernel

import (
	"encoding/hex"
	"fmt"
	"strings"

	"ordertracker/internal/pkg/errs"

	"github.com/google/uuid"
)

// TokenLength is the fixed length of a lookup token.
const TokenLength = 16

// Token is the opaque per-order secret required alongside the order identifier
// for a public status lookup. Knowing an order identifier alone is not enough
// to read its status; the token acts as a capability.
//
// Tokens are 16 lowercase hex characters drawn from a random UUID. That is
// hard to guess casually at the scale of a single shop; no stronger
// cryptographic guarantee is made.
//
// A token is issued once per order and never regenerated. The zero value is
// valid only as "not issued yet"; use IsZero to distinguish it.
type Token struct {
	value string
}

// NewToken issues a fresh random token.
func NewToken() Token {
	id := uuid.New()
	return Token{value: hex.EncodeToString(id[:])[:TokenLength]}
}

// TokenFromString restores a token from its persisted form.
// Surrounding whitespace is trimmed; the result must be exactly TokenLength
// characters. Returns an error for the empty string — use the zero Token for
// records that have no token yet.
func TokenFromString(raw string) (Token, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Token{}, errs.NewValueIsRequiredError("token")
	}
	if len(trimmed) != TokenLength {
		return Token{}, errs.NewValueIsInvalidErrorWithCause(
			"token",
			fmt.Errorf("length is %d, want %d", len(trimmed), TokenLength),
		)
	}
	return Token{value: trimmed}, nil
}

// String returns the token text, or the empty string for an unissued token.
func (t Token) String() string {
	return t.value
}

// IsZero reports whether the token has not been issued.
func (t Token) IsZero() bool {
	return t.value == ""
}

// IsEqual compares two tokens for exact equality.
func (t Token) IsEqual(other Token) bool {
	return t.value == other.value
}

// Validate checks that the token is issued and well-formed.
func (t Token) Validate() error {
	if t.value == "" {
		return errs.NewValueIsRequiredError("token")
	}
	if len(t.value) != TokenLength {
		return errs.NewValueIsInvalidError("token")
	}
	return nil
}
