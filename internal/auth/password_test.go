// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordVerifier(t *testing.T) {
	t.Parallel()

	v, err := newPasswordVerifierWithCost("correct horse", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("newPasswordVerifierWithCost() error = %v", err)
	}

	tests := []struct {
		password string
		want     bool
	}{
		{"correct horse", true},
		{"correct horse ", false},
		{"Correct horse", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := v.Verify(tt.password); got != tt.want {
			t.Errorf("Verify(%q) = %v, want %v", tt.password, got, tt.want)
		}
	}
}

func TestNewPasswordVerifier_AcceptsHash(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	v, err := NewPasswordVerifier(string(hash))
	if err != nil {
		t.Fatalf("NewPasswordVerifier(hash) error = %v", err)
	}
	if !v.Verify("s3cret") {
		t.Error("hash-configured verifier rejected the right password")
	}
	if v.Verify(string(hash)) {
		t.Error("the hash itself must not be accepted as the password")
	}
}

func TestNewPasswordVerifier_Errors(t *testing.T) {
	t.Parallel()

	if _, err := NewPasswordVerifier(""); err == nil {
		t.Error("empty password should be rejected")
	}
	if _, err := NewPasswordVerifier(strings.Repeat("x", 80)); err == nil {
		t.Error("passwords longer than 72 bytes should be rejected")
	}
	fake := "$2a$99$" + strings.Repeat("a", 53)
	if _, err := NewPasswordVerifier(fake); err == nil {
		t.Error("malformed hash should be rejected")
	}
}
