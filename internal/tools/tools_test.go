package tools

import (
	"context"
	"encoding/json"
	"testing"
)

func TestHealthTool(t *testing.T) {
	tool := NewHealthTool()

	if tool.Name() != "health" {
		t.Errorf("unexpected name: %s", tool.Name())
	}
	if !json.Valid(tool.Schema()) {
		t.Error("schema is not valid JSON")
	}

	out, err := tool.Execute(context.Background(), json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	result, ok := out.(map[string]interface{})
	if !ok {
		t.Fatalf("expected map result, got %T", out)
	}
	if result["status"] != "healthy" {
		t.Errorf("unexpected status: %v", result["status"])
	}
	if result["version"] == "" {
		t.Error("version missing")
	}
	if result["uptimeSeconds"].(int64) < 0 {
		t.Error("negative uptime")
	}
}

func TestAnnotations(t *testing.T) {
	gen := GeneratorAnnotations()
	if !gen["readOnlyHint"] || !gen["idempotentHint"] {
		t.Errorf("generator annotations: %v", gen)
	}

	ro := ReadOnlyAnnotations()
	if !ro["readOnlyHint"] || !ro["idempotentHint"] {
		t.Errorf("read-only annotations: %v", ro)
	}
}
