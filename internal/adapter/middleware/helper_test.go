package middleware

import (
	"net/http/httptest"
	"testing"
)

func TestRequestIDFormats(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"3f2a9c1d8e4b4f6a9c0d1e2f3a4b5c6d", true},
		{"3F2A9C1D8E4B4F6A9C0D1E2F3A4B5C6D", true}, // lowercased before matching
		{"9b2d8c4e-1f3a-4b6c-8d9e-0a1b2c3d4e5f", true},
		{"not-an-id", false},
		{"", false},
		{"3f2a9c1d8e4b4f6a9c0d1e2f3a4b5c", false}, // too short
	}
	for _, tc := range cases {
		req := httptest.NewRequest("POST", "/loans", nil)
		req.Header.Set("Ax-Request-Id", tc.in)
		_, ok := requestID(req)
		if ok != tc.ok {
			t.Fatalf("requestID(%q) ok = %v, want %v", tc.in, ok, tc.ok)
		}
	}
}

func TestActorIDRejectsNonHex(t *testing.T) {
	req := httptest.NewRequest("POST", "/loans", nil)
	req.Header.Set("Ax-Actor-Id", "9b2d8c4e-1f3a-4b6c-8d9e-0a1b2c3d4e5f")
	if _, ok := actorID(req); ok {
		t.Fatalf("expected UUID actor id to be rejected")
	}
	req.Header.Set("Ax-Actor-Id", "3f2a9c1d8e4b4f6a9c0d1e2f3a4b5c6d")
	if _, ok := actorID(req); !ok {
		t.Fatalf("expected hex32 actor id to be accepted")
	}
}

func TestBuildKeyShape(t *testing.T) {
	got := buildKey("POST", "/loans/:loan_id/review", "aaaa", "bbbb")
	want := "idemp:post:/loans/:loan_id/review:aaaa:bbbb"
	if got != want {
		t.Fatalf("buildKey = %q, want %q", got, want)
	}
}

func TestBodyHashStable(t *testing.T) {
	a := bodyHash([]byte(`{"amount":50000}`))
	b := bodyHash([]byte(`{"amount":50000}`))
	c := bodyHash([]byte(`{"amount":50001}`))
	if a != b {
		t.Fatalf("same body hashed differently")
	}
	if a == c {
		t.Fatalf("different bodies hashed the same")
	}
	if len(a) != 64 {
		t.Fatalf("hash length = %d, want 64", len(a))
	}
}
