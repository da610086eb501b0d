package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-key"

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

func newTestCodec(t *testing.T, clock *fakeClock) *TokenCodec {
	t.Helper()
	codec, err := NewTokenCodec(testSecret, clock.Now)
	if err != nil {
		t.Fatalf("new codec failed: %v", err)
	}
	return codec
}

func TestTokenRoundTrip(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)}
	codec := newTestCodec(t, clock)

	token, issued, err := codec.Encode(AccessClaims{Subject: 42, Role: "admin"}, AccessTokenTTL)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if !issued.ExpiresAt.Equal(clock.now.Add(24 * time.Hour)) {
		t.Fatalf("unexpected expiry: %v", issued.ExpiresAt)
	}

	claims, err := codec.Decode(token)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if claims.Subject != 42 || claims.Role != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if !claims.IssuedAt.Equal(issued.IssuedAt) || !claims.ExpiresAt.Equal(issued.ExpiresAt) {
		t.Fatalf("timestamps changed: %+v vs %+v", claims, issued)
	}
}

func TestTokenExpiryBoundary(t *testing.T) {
	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	clock := &fakeClock{now: start}
	codec := newTestCodec(t, clock)

	token, _, err := codec.Encode(AccessClaims{Subject: 1, Role: "admin"}, AccessTokenTTL)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	clock.now = start.Add(AccessTokenTTL - time.Second)
	if _, err := codec.Decode(token); err != nil {
		t.Fatalf("token should still be valid one second before expiry: %v", err)
	}

	clock.now = start.Add(AccessTokenTTL)
	if _, err := codec.Decode(token); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("token should be rejected at expiry, got %v", err)
	}

	clock.now = start.Add(AccessTokenTTL + time.Second)
	if _, err := codec.Decode(token); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("token should be rejected after expiry, got %v", err)
	}
}

func TestTokenExpiredByHand(t *testing.T) {
	now := time.Now()
	payload := tokenClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Second)),
			IssuedAt:  jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, payload).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	codec, err := NewTokenCodec(testSecret, nil)
	if err != nil {
		t.Fatalf("new codec failed: %v", err)
	}
	if _, err := codec.Decode(signed); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("want ErrUnauthenticated got %v", err)
	}
}

func TestTokenTamperedSignature(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	codec := newTestCodec(t, clock)
	token, _, err := codec.Encode(AccessClaims{Subject: 7, Role: "admin"}, AccessTokenTTL)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	dot := strings.LastIndex(token, ".")
	for idx := dot + 1; idx < len(token); idx++ {
		replacement := byte('A')
		if token[idx] == 'A' {
			replacement = 'B'
		}
		tampered := token[:idx] + string(replacement) + token[idx+1:]
		if _, err := codec.Decode(tampered); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("signature position %d tampered should fail, got %v", idx-dot-1, err)
		}
	}
}

func TestTokenSignaturePaddingBitsRejected(t *testing.T) {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	clock := &fakeClock{now: time.Now()}
	codec := newTestCodec(t, clock)

	for subject := uint(1); subject <= 20; subject++ {
		token, _, err := codec.Encode(AccessClaims{Subject: subject, Role: "admin"}, AccessTokenTTL)
		if err != nil {
			t.Fatalf("encode failed: %v", err)
		}
		last := strings.IndexByte(alphabet, token[len(token)-1])
		if last < 0 {
			t.Fatalf("unexpected signature character %q", token[len(token)-1])
		}
		// 32 字节签名的末位字符只有高 4 位有效
		tampered := token[:len(token)-1] + string(alphabet[last^1])
		if _, err := codec.Decode(tampered); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("subject %d: padding-bit variant should fail, got %v", subject, err)
		}
	}
}

func TestTokenWrongSecret(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	codec := newTestCodec(t, clock)
	token, _, err := codec.Encode(AccessClaims{Subject: 7, Role: "admin"}, AccessTokenTTL)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	other, err := NewTokenCodec("rotated-secret", clock.Now)
	if err != nil {
		t.Fatalf("new codec failed: %v", err)
	}
	if _, err := other.Decode(token); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("token signed with another secret should fail, got %v", err)
	}
}

func TestTokenRejectsMalformedInput(t *testing.T) {
	codec := newTestCodec(t, &fakeClock{now: time.Now()})
	for _, raw := range []string{"", "   ", "garbage", "a.b.c", "a.b"} {
		if _, err := codec.Decode(raw); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("input %q want ErrUnauthenticated got %v", raw, err)
		}
	}
}

func TestTokenRejectsMissingClaims(t *testing.T) {
	codec := newTestCodec(t, &fakeClock{now: time.Now()})
	cases := map[string]jwt.RegisteredClaims{
		"missing sub": {ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		"zero sub":    {Subject: "0", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		"text sub":    {Subject: "abc", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		"missing exp": {Subject: "1"},
	}
	for name, registered := range cases {
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
			Role:             "admin",
			RegisteredClaims: registered,
		}).SignedString([]byte(testSecret))
		if err != nil {
			t.Fatalf("%s: sign failed: %v", name, err)
		}
		if _, err := codec.Decode(signed); !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("%s: want ErrUnauthenticated got %v", name, err)
		}
	}
}

func TestTokenRejectsOtherAlgorithms(t *testing.T) {
	codec := newTestCodec(t, &fakeClock{now: time.Now()})
	payload := tokenClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, payload).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	if _, err := codec.Decode(hs512); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("HS512 token should be rejected, got %v", err)
	}

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, payload).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	if _, err := codec.Decode(unsigned); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("unsigned token should be rejected, got %v", err)
	}
}

func TestNewTokenCodecRequiresSecret(t *testing.T) {
	if _, err := NewTokenCodec("  ", nil); !errors.Is(err, ErrSecretMissing) {
		t.Fatalf("want ErrSecretMissing got %v", err)
	}
}

func TestTokenEncodeRequiresSubject(t *testing.T) {
	codec := newTestCodec(t, &fakeClock{now: time.Now()})
	if _, _, err := codec.Encode(AccessClaims{Role: "admin"}, AccessTokenTTL); err == nil {
		t.Fatalf("encode without subject should fail")
	}
}
