package repository

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func squash(sql string) string {
	return strings.Join(strings.Fields(sql), " ")
}

func TestUpsertKeysOnAddress(t *testing.T) {
	sql := squash(upsertPlaceSQL)
	if !strings.Contains(sql, "ON CONFLICT (address) DO UPDATE") {
		t.Fatalf("upsert must resolve conflicts on address: %s", sql)
	}
	for _, column := range []string{"lat = EXCLUDED.lat", "lon = EXCLUDED.lon", "resolved_at = EXCLUDED.resolved_at"} {
		if !strings.Contains(sql, column) {
			t.Fatalf("upsert must overwrite %q: %s", column, sql)
		}
	}
	if !strings.Contains(squash(selectPlaceSQL), "WHERE address = $1") {
		t.Fatalf("lookup must match the exact address: %s", selectPlaceSQL)
	}
}

func TestPlacesTableIsKeyedByAddress(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("..", "..", "..", "platform", "db", "migrations", "00001_create_places.sql"))
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	if !strings.Contains(squash(string(raw)), "address TEXT PRIMARY KEY") {
		t.Fatal("ON CONFLICT (address) needs a unique constraint on places.address")
	}
}
