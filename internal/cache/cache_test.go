package cache

import (
	"context"
	"testing"

	"github.com/ecat-taratra/backend/internal/config"
)

func TestDisabledCacheIsNoop(t *testing.T) {
	if err := InitRedis(&config.RedisConfig{Enabled: false}); err != nil {
		t.Fatalf("init redis failed: %v", err)
	}
	if Enabled() || Client() != nil {
		t.Fatalf("cache should be disabled")
	}
	ctx := context.Background()

	var dest []string
	hit, err := GetJSON(ctx, AboutListKey, &dest)
	if err != nil || hit {
		t.Fatalf("disabled get want (false, nil) got (%v, %v)", hit, err)
	}
	if err := SetJSON(ctx, AboutListKey, []string{"a"}, ContentListTTL()); err != nil {
		t.Fatalf("disabled set should be noop: %v", err)
	}
	if err := Del(ctx, AboutListKey, ContactInfoListKey); err != nil {
		t.Fatalf("disabled del should be noop: %v", err)
	}
	if err := Ping(ctx); err != nil {
		t.Fatalf("disabled ping should be noop: %v", err)
	}
}

func TestBuildKeyUsesPrefix(t *testing.T) {
	old := redisPrefix
	t.Cleanup(func() { redisPrefix = old })

	redisPrefix = "ecat"
	if got := buildKey(AboutListKey); got != "ecat:"+AboutListKey {
		t.Fatalf("unexpected key: %s", got)
	}
	if got := buildKey("  "); got != "ecat" {
		t.Fatalf("blank key should map to prefix, got %s", got)
	}
}
