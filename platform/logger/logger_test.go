package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
)

func TestWithContextAddsRequestAndUser(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("production", &buf)

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
	ctx = context.WithValue(ctx, UserIDKey, "42")
	log.WithContext(ctx).Info("hello")

	var record map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode record: %v (%s)", err, buf.String())
	}
	if record["request_id"] != "req-1" || record["user_id"] != "42" {
		t.Fatalf("expected request and user ids, got %v", record)
	}
}

func TestWithContextWithoutValues(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("production", &buf)
	log.WithContext(context.Background()).Info("hello")

	var record map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if _, ok := record["request_id"]; ok {
		t.Fatalf("unexpected request_id in %v", record)
	}
}
