package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/labelrepel/pkg/cache"
)

func TestServeOptsApplyEnv(t *testing.T) {
	env := map[string]string{envAddr: ":9090", envRedis: "redis://cache:6379/0"}
	getenv := func(k string) string { return env[k] }

	tests := []struct {
		name              string
		addrSet, redisSet bool
		wantAddr          string
		wantRedis         string
	}{
		{"env fills unset flags", false, false, ":9090", "redis://cache:6379/0"},
		{"flags win", true, true, ":7000", "localhost:6379"},
		{"mixed", true, false, ":7000", "redis://cache:6379/0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := serveOpts{addr: defaultAddr}
			if tt.addrSet {
				o.addr = ":7000"
			}
			if tt.redisSet {
				o.redis = "localhost:6379"
			}
			o.applyEnv(getenv, tt.addrSet, tt.redisSet)
			if o.addr != tt.wantAddr || o.redis != tt.wantRedis {
				t.Errorf("got addr=%q redis=%q, want %q %q", o.addr, o.redis, tt.wantAddr, tt.wantRedis)
			}
		})
	}
}

func TestServeOptsApplyEnvEmpty(t *testing.T) {
	o := serveOpts{addr: defaultAddr}
	o.applyEnv(func(string) string { return "" }, false, false)
	if o.addr != defaultAddr || o.redis != "" {
		t.Errorf("empty environment changed settings: %+v", o)
	}
}

func TestNewServeRunnerUnreachableRedis(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.newServeRunner(ctx, serveOpts{redis: "127.0.0.1:1"}); err == nil {
		t.Error("unreachable redis should fail")
	}
}

func TestNewServeRunnerNoCache(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	r, err := c.newServeRunner(context.Background(), serveOpts{noCache: true, redis: "ignored:1"})
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
}

func TestServeKeyer(t *testing.T) {
	k := serveKeyer()
	layout := k.LayoutKey("h", cache.LayoutKeyOpts{Seed: 42})
	artifact := k.ArtifactKey("h", cache.ArtifactKeyOpts{Format: "svg"})

	if !strings.HasPrefix(layout, "labelrepel:layout:") {
		t.Errorf("LayoutKey = %q, want labelrepel:layout: prefix", layout)
	}
	if got := cache.KeyType(layout); got != cache.KeyTypeLayout {
		t.Errorf("KeyType(%q) = %q, want %q", layout, got, cache.KeyTypeLayout)
	}
	if got := cache.KeyType(artifact); got != cache.KeyTypeArtifact {
		t.Errorf("KeyType(%q) = %q, want %q", artifact, got, cache.KeyTypeArtifact)
	}
}
