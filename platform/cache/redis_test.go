package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

type testRedisConfig struct {
	url string
}

func (c testRedisConfig) GetRedisURL() string       { return c.url }
func (c testRedisConfig) GetRedisTLSInsecure() bool { return false }
func (c testRedisConfig) IsRedisEnabled() bool      { return c.url != "" }

func TestNewRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedis(context.Background(), testRedisConfig{url: "redis://" + mr.Addr()})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	_ = client.Close()

	if _, err := NewRedis(context.Background(), testRedisConfig{url: "not a url"}); err == nil {
		t.Fatal("expected parse error")
	}
}
