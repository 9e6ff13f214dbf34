// EventDash - Camera Event Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventdash

package timerange

import (
	"strings"
	"time"
)

// Token is a symbolic range such as "24h".
type Token string

// Supported range tokens.
const (
	Token30m Token = "30m"
	Token1h  Token = "1h"
	Token4h  Token = "4h"
	Token12h Token = "12h"
	Token24h Token = "24h"
	Token7d  Token = "7d"
	Token30d Token = "30d"
)

// Per-view fallbacks for unknown or missing tokens.
const (
	Default24h = Token24h
	Default7d  = Token7d
	Default30m = Token30m
)

const day = 24 * time.Hour

type tokenWindow struct {
	span     time.Duration
	bucket   time.Duration
	interval string
}

var table = map[Token]tokenWindow{
	Token30m: {span: 30 * time.Minute, bucket: 5 * time.Minute, interval: "5 minutes"},
	Token1h:  {span: time.Hour, bucket: 10 * time.Minute, interval: "10 minutes"},
	Token4h:  {span: 4 * time.Hour, bucket: 30 * time.Minute, interval: "30 minutes"},
	Token12h: {span: 12 * time.Hour, bucket: time.Hour, interval: "1 hour"},
	Token24h: {span: day, bucket: time.Hour, interval: "1 hour"},
	Token7d:  {span: 7 * day, bucket: day, interval: "1 day"},
	Token30d: {span: 30 * day, bucket: day, interval: "1 day"},
}

// Tokens returns every supported token, shortest span first.
func Tokens() []Token {
	return []Token{Token30m, Token1h, Token4h, Token12h, Token24h, Token7d, Token30d}
}

// Valid reports whether s names a supported token.
func Valid(s string) bool {
	_, ok := table[Token(strings.TrimSpace(s))]
	return ok
}

// Window is a resolved query window in epoch milliseconds.
//
// End is zero for relative windows, which are open-ended towards the present.
type Window struct {
	Token  Token         `json:"timeRange"`
	Start  int64         `json:"start"`
	End    int64         `json:"end,omitempty"`
	Bucket time.Duration `json:"-"`

	// Interval is the bucket width as shown to clients ("1 hour").
	Interval string `json:"interval,omitempty"`
}

// Resolve maps token to a window ending at now. Unsupported tokens resolve as
// fallback; an unsupported fallback resolves as 24h.
func Resolve(token string, now time.Time, fallback Token) Window {
	tok := Token(strings.TrimSpace(token))
	s, ok := table[tok]
	if !ok {
		tok = fallback
		if s, ok = table[tok]; !ok {
			tok = Token24h
			s = table[tok]
		}
	}
	return Window{
		Token:    tok,
		Start:    now.Add(-s.span).UnixMilli(),
		Bucket:   s.bucket,
		Interval: s.interval,
	}
}

// WithinOnly restricts tokens to allowed, substituting fallback for anything else.
// The geo dashboard only offers 24h, 7d and 30d.
func WithinOnly(token string, fallback Token, allowed ...Token) string {
	tok := Token(strings.TrimSpace(token))
	for _, a := range allowed {
		if tok == a {
			return string(tok)
		}
	}
	return string(fallback)
}

// Absolute returns an explicit window when both bounds are usable. ok is false
// when either bound is missing, non-positive or the bounds are inverted, in which
// case callers use the relative window instead.
func Absolute(start, end int64, token Token) (w Window, ok bool) {
	if start <= 0 || end <= 0 || start > end {
		return Window{}, false
	}
	s := table[token]
	return Window{
		Token:    token,
		Start:    start,
		End:      end,
		Bucket:   s.bucket,
		Interval: s.interval,
	}, true
}

// Request is a relative token optionally overridden by absolute bounds, as
// received from a client.
type Request struct {
	Token string
	Start int64
	End   int64
}

// Resolve returns the absolute window when the bounds are usable and the
// relative window for Token otherwise.
func (r Request) Resolve(now time.Time, fallback Token) Window {
	w := Resolve(r.Token, now, fallback)
	if abs, ok := Absolute(r.Start, r.End, w.Token); ok {
		return abs
	}
	return w
}

// IsAbsolute reports whether the window has an explicit end bound.
func (w Window) IsAbsolute() bool {
	return w.End > 0
}

// EffectiveEnd returns the end bound, or now for relative windows.
func (w Window) EffectiveEnd(now time.Time) int64 {
	if w.IsAbsolute() {
		return w.End
	}
	return now.UnixMilli()
}

// BucketMillis is the bucket width in milliseconds, at least one.
func (w Window) BucketMillis() int64 {
	if ms := w.Bucket.Milliseconds(); ms > 0 {
		return ms
	}
	return time.Hour.Milliseconds()
}
