// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package auth

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// PasswordVerifier checks login attempts against the application password.
// Only the bcrypt hash is kept in memory.
type PasswordVerifier struct {
	hash []byte
}

// NewPasswordVerifier accepts either a bcrypt hash ($2a$, $2b$ or $2y$) or a
// plaintext password, which is hashed at bcrypt.DefaultCost.
func NewPasswordVerifier(password string) (*PasswordVerifier, error) {
	if password == "" {
		return nil, fmt.Errorf("APP_PASSWORD is required but was empty")
	}
	if isBcryptHash(password) {
		if _, err := bcrypt.Cost([]byte(password)); err != nil {
			return nil, fmt.Errorf("APP_PASSWORD looks like a bcrypt hash but is invalid: %w", err)
		}
		return &PasswordVerifier{hash: []byte(password)}, nil
	}
	return newPasswordVerifierWithCost(password, bcrypt.DefaultCost)
}

func newPasswordVerifierWithCost(password string, cost int) (*PasswordVerifier, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash APP_PASSWORD: %w", err)
	}
	return &PasswordVerifier{hash: hash}, nil
}

// Verify reports whether password matches.
func (v *PasswordVerifier) Verify(password string) bool {
	if password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(v.hash, []byte(password)) == nil
}

func isBcryptHash(s string) bool {
	return len(s) == 60 && (strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$"))
}
