package auth

import (
	"strings"
	"sync"

	"github.com/2beens/fitforge/pkg"
)

var _ Checker = (*TokenChecker)(nil)
var _ Checker = (*TokenTestChecker)(nil)

type Checker interface {
	IsValid(token string) bool
}

// TokenChecker validates API tokens against a single bcrypt hash.
// A token that passed once is remembered, since every bcrypt compare costs a few hundred ms.
type TokenChecker struct {
	mutex     sync.Mutex
	tokenHash string
	verified  map[string]bool
}

func NewTokenChecker(tokenHash string) *TokenChecker {
	return &TokenChecker{
		tokenHash: strings.TrimSpace(tokenHash),
		verified:  make(map[string]bool),
	}
}

func (c *TokenChecker) IsValid(token string) bool {
	if token == "" || c.tokenHash == "" {
		return false
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.verified[token] {
		return true
	}
	if !pkg.CheckPasswordHash(token, c.tokenHash) {
		return false
	}
	c.verified[token] = true
	return true
}

// TokenFromHeader extracts the token from an Authorization header value,
// with or without the Bearer scheme.
func TokenFromHeader(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}

type TokenTestChecker struct {
	ValidTokens map[string]bool
}

func NewTokenTestChecker(tokens ...string) *TokenTestChecker {
	c := &TokenTestChecker{ValidTokens: map[string]bool{}}
	for _, t := range tokens {
		c.ValidTokens[t] = true
	}
	return c
}

func (c *TokenTestChecker) IsValid(token string) bool {
	return c.ValidTokens[token]
}
