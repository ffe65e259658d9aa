package main

import (
	"testing"
	"time"
)

func TestRateLimiterAllow(t *testing.T) {
	l := newRateLimiter(2, time.Minute)

	for i, want := range []int{1, 0} {
		ok, remaining, reset := l.allow("10.0.0.1")
		if !ok {
			t.Fatalf("request %d: expected to be allowed", i+1)
		}
		if remaining != want {
			t.Fatalf("request %d: expected remaining %d, got %d", i+1, want, remaining)
		}
		if !reset.After(time.Now()) {
			t.Fatalf("request %d: expected reset in the future, got %v", i+1, reset)
		}
	}

	if ok, remaining, _ := l.allow("10.0.0.1"); ok || remaining != 0 {
		t.Fatalf("expected third request to be rejected with 0 remaining, got ok=%v remaining=%d", ok, remaining)
	}

	if ok, _, _ := l.allow("10.0.0.2"); !ok {
		t.Fatal("expected a different client to have its own allowance")
	}
}

func TestRateLimiterWindowExpires(t *testing.T) {
	l := newRateLimiter(1, 20*time.Millisecond)

	if ok, _, _ := l.allow("client"); !ok {
		t.Fatal("expected first request to be allowed")
	}
	if ok, _, _ := l.allow("client"); ok {
		t.Fatal("expected second request to be rejected")
	}

	time.Sleep(40 * time.Millisecond)

	if ok, _, _ := l.allow("client"); !ok {
		t.Fatal("expected a new window after expiry")
	}
}
