package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORE_DRIVER", "SESSION_TTL", "ALLOW_FIXED_WORD", "ENV", "HOST"} {
		t.Setenv(k, "")
	}
	c := Load()
	if c.Addr() != ":5175" {
		t.Errorf("Addr = %q", c.Addr())
	}
	if c.Store.Driver != "memory" {
		t.Errorf("Driver = %q", c.Store.Driver)
	}
	if c.Session.TTL != 24*time.Hour {
		t.Errorf("TTL = %v", c.Session.TTL)
	}
	if c.Game.AllowFixedWord || c.IsProduction() {
		t.Errorf("unexpected flags: %+v", c)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("ENV", "production")
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("SESSION_TTL", "90m")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("ALLOW_FIXED_WORD", "true")
	c := Load()
	if c.Addr() != "127.0.0.1:9000" || !c.IsProduction() {
		t.Errorf("server = %+v", c.Server)
	}
	if c.Store.Driver != "sqlite" || c.Store.RedisDB != 3 {
		t.Errorf("store = %+v", c.Store)
	}
	if c.Session.TTL != 90*time.Minute || !c.Game.AllowFixedWord {
		t.Errorf("session = %+v game = %+v", c.Session, c.Game)
	}
}

func TestLoadIgnoresMalformed(t *testing.T) {
	t.Setenv("SESSION_TTL", "soon")
	t.Setenv("REDIS_DB", "three")
	c := Load()
	if c.Session.TTL != 24*time.Hour || c.Store.RedisDB != 0 {
		t.Errorf("malformed values not ignored: %+v %+v", c.Session, c.Store)
	}
}
