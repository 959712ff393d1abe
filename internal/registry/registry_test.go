package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
)

type fakeTool struct {
	name   string
	result interface{}
}

func (t *fakeTool) Name() string             { return t.name }
func (t *fakeTool) Description() string      { return "fake tool " + t.name }
func (t *fakeTool) Schema() json.RawMessage  { return json.RawMessage(`{"type":"object"}`) }
func (t *fakeTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	return t.result, nil
}

type fakeResource struct {
	uri     string
	content string
}

func (r *fakeResource) URI() string         { return r.uri }
func (r *fakeResource) Name() string        { return "fake" }
func (r *fakeResource) Description() string { return "" }
func (r *fakeResource) MimeType() string    { return "text/markdown" }
func (r *fakeResource) Read(ctx context.Context) (string, error) {
	return r.content, nil
}

func TestRegisterAndGet(t *testing.T) {
	reg := New()

	if err := reg.Register(&fakeTool{name: "alpha"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	tool, ok := reg.Get("alpha")
	if !ok {
		t.Fatal("expected tool 'alpha' to be found")
	}
	if tool.Name() != "alpha" {
		t.Errorf("expected name 'alpha', got '%s'", tool.Name())
	}

	if _, ok := reg.Get("nonexistent"); ok {
		t.Error("expected lookup of unknown tool to miss")
	}
}

func TestRegisterEmptyName(t *testing.T) {
	reg := New()
	if err := reg.Register(&fakeTool{name: ""}); err == nil {
		t.Error("expected error registering tool with empty name")
	}
}

func TestToolsInsertionOrder(t *testing.T) {
	reg := New()

	names := []string{"zeta", "alpha", "mid"}
	for _, name := range names {
		if err := reg.Register(&fakeTool{name: name}); err != nil {
			t.Fatalf("register %s: %v", name, err)
		}
	}

	listed := reg.Tools()
	if len(listed) != len(names) {
		t.Fatalf("expected %d tools, got %d", len(names), len(listed))
	}
	for i, name := range names {
		if listed[i].Name() != name {
			t.Errorf("position %d: expected '%s', got '%s'", i, name, listed[i].Name())
		}
	}
}

func TestRegistryReplacePreservesOrder(t *testing.T) {
	reg := New()

	reg.Register(&fakeTool{name: "first", result: "v1"})
	reg.Register(&fakeTool{name: "second"})
	reg.Register(&fakeTool{name: "first", result: "v2"})

	listed := reg.Tools()
	if len(listed) != 2 {
		t.Fatalf("expected 2 tools after replacement, got %d", len(listed))
	}
	if listed[0].Name() != "first" || listed[1].Name() != "second" {
		t.Errorf("replacement changed catalog order: %s, %s",
			listed[0].Name(), listed[1].Name())
	}

	tool, _ := reg.Get("first")
	out, err := tool.Execute(context.Background(), json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "v2" {
		t.Errorf("expected replacement to win, got %v", out)
	}
}

func TestFreezeRejectsRegistration(t *testing.T) {
	reg := New()
	reg.Register(&fakeTool{name: "before"})
	reg.Freeze()

	if err := reg.Register(&fakeTool{name: "after"}); err == nil {
		t.Error("expected registration after freeze to fail")
	}
	if err := reg.RegisterResource(&fakeResource{uri: "res://after"}); err == nil {
		t.Error("expected resource registration after freeze to fail")
	}

	if len(reg.Tools()) != 1 {
		t.Errorf("frozen registry mutated: %d tools", len(reg.Tools()))
	}
}

func TestResourcesInsertionOrder(t *testing.T) {
	reg := New()

	for i := 0; i < 5; i++ {
		uri := fmt.Sprintf("res://doc-%d", i)
		if err := reg.RegisterResource(&fakeResource{uri: uri}); err != nil {
			t.Fatalf("register %s: %v", uri, err)
		}
	}

	listed := reg.Resources()
	for i, res := range listed {
		want := fmt.Sprintf("res://doc-%d", i)
		if res.URI() != want {
			t.Errorf("position %d: expected '%s', got '%s'", i, want, res.URI())
		}
	}
}

func TestEmptyRegistryLists(t *testing.T) {
	reg := New()

	if tools := reg.Tools(); len(tools) != 0 {
		t.Errorf("expected empty tool list, got %d entries", len(tools))
	}
	if resources := reg.Resources(); len(resources) != 0 {
		t.Errorf("expected empty resource list, got %d entries", len(resources))
	}
}
