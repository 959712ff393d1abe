package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/JTruax/BOIM-WP-MCP/internal/registry"
	"github.com/JTruax/BOIM-WP-MCP/pkg/protocol"
)

type echoTool struct{}

func (t *echoTool) Name() string            { return "echo" }
func (t *echoTool) Description() string     { return "Echo the text argument back" }
func (t *echoTool) Schema() json.RawMessage { return json.RawMessage(`{"type":"object"}`) }
func (t *echoTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, err
	}
	return req.Text, nil
}

type panicTool struct{}

func (t *panicTool) Name() string            { return "panicky" }
func (t *panicTool) Description() string     { return "always panics" }
func (t *panicTool) Schema() json.RawMessage { return json.RawMessage(`{"type":"object"}`) }
func (t *panicTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	panic("boom")
}

type failTool struct{}

func (t *failTool) Name() string            { return "failing" }
func (t *failTool) Description() string     { return "always fails" }
func (t *failTool) Schema() json.RawMessage { return json.RawMessage(`{"type":"object"}`) }
func (t *failTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	return nil, errors.New("template exploded")
}

type structTool struct{}

func (t *structTool) Name() string            { return "structured" }
func (t *structTool) Description() string     { return "returns a map" }
func (t *structTool) Schema() json.RawMessage { return json.RawMessage(`{"type":"object"}`) }
func (t *structTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	return map[string]interface{}{
		"zulu":  "last",
		"alpha": "first",
		"count": 3,
	}, nil
}

type staticResource struct {
	uri     string
	content string
	err     error
}

func (r *staticResource) URI() string         { return r.uri }
func (r *staticResource) Name() string        { return "static" }
func (r *staticResource) Description() string { return "static test resource" }
func (r *staticResource) MimeType() string    { return "text/markdown" }
func (r *staticResource) Read(ctx context.Context) (string, error) {
	return r.content, r.err
}

func newTestHandler(t *testing.T) (*Handler, *registry.Registry) {
	t.Helper()
	reg := registry.New()
	for _, tool := range []registry.Tool{&echoTool{}, &panicTool{}, &failTool{}, &structTool{}} {
		if err := reg.Register(tool); err != nil {
			t.Fatalf("register %s: %v", tool.Name(), err)
		}
	}
	return NewHandler(reg), reg
}

func callTool(t *testing.T, h *Handler, name string, args string) *protocol.CallToolResult {
	t.Helper()
	params, _ := json.Marshal(map[string]interface{}{
		"name":      name,
		"arguments": json.RawMessage(args),
	})
	resp := h.Handle(context.Background(), &Request{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  params,
	})
	if resp.Error != nil {
		t.Fatalf("tools/call returned protocol error: %v", resp.Error)
	}
	result, ok := resp.Result.(*protocol.CallToolResult)
	if !ok {
		t.Fatalf("unexpected result type %T", resp.Result)
	}
	return result
}

func TestCallToolEcho(t *testing.T) {
	h, _ := newTestHandler(t)

	result := callTool(t, h, "echo", `{"text":"hi"}`)
	if result.IsError {
		t.Fatal("expected success")
	}
	if len(result.Content) != 1 || result.Content[0].Text != "hi" {
		t.Errorf("expected payload 'hi', got %+v", result.Content)
	}
}

func TestCallToolNotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	result := callTool(t, h, "nonexistent", `{}`)
	if !result.IsError {
		t.Fatal("expected error envelope")
	}
	if result.Content[0].Text != "Tool not found: nonexistent" {
		t.Errorf("unexpected payload: %q", result.Content[0].Text)
	}
}

func TestCallToolHandlerError(t *testing.T) {
	h, _ := newTestHandler(t)

	result := callTool(t, h, "failing", `{}`)
	if !result.IsError {
		t.Fatal("expected error envelope")
	}
	if !strings.HasPrefix(result.Content[0].Text, "Error: ") {
		t.Errorf("error payload should begin with 'Error: ', got %q", result.Content[0].Text)
	}
	if !strings.Contains(result.Content[0].Text, "template exploded") {
		t.Errorf("error payload should carry the handler message, got %q", result.Content[0].Text)
	}
}

// A panicking handler must never take the server down, and a
// subsequent unrelated call must still succeed.
func TestCallToolPanicIsolation(t *testing.T) {
	h, _ := newTestHandler(t)

	result := callTool(t, h, "panicky", `{}`)
	if !result.IsError {
		t.Fatal("expected error envelope from panicking tool")
	}
	if !strings.Contains(result.Content[0].Text, "boom") {
		t.Errorf("panic message should be forwarded, got %q", result.Content[0].Text)
	}

	after := callTool(t, h, "echo", `{"text":"still alive"}`)
	if after.IsError || after.Content[0].Text != "still alive" {
		t.Errorf("call after panic should succeed, got %+v", after)
	}
}

func TestCallToolOmittedArguments(t *testing.T) {
	h, _ := newTestHandler(t)

	params, _ := json.Marshal(map[string]interface{}{"name": "echo"})
	resp := h.Handle(context.Background(), &Request{
		JSONRPC: "2.0", ID: 7, Method: "tools/call", Params: params,
	})
	if resp.Error != nil {
		t.Fatalf("omitted arguments should default to empty object: %v", resp.Error)
	}
	result := resp.Result.(*protocol.CallToolResult)
	if result.IsError {
		t.Errorf("expected success with defaulted arguments, got %+v", result)
	}
}

func TestCallToolStructuredResultDeterministic(t *testing.T) {
	h, _ := newTestHandler(t)

	first := callTool(t, h, "structured", `{}`)
	second := callTool(t, h, "structured", `{}`)

	if first.IsError || second.IsError {
		t.Fatal("expected success")
	}
	if first.Content[0].Text != second.Content[0].Text {
		t.Errorf("structured serialization not deterministic:\n%s\nvs\n%s",
			first.Content[0].Text, second.Content[0].Text)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(first.Content[0].Text), &decoded); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	if strings.Index(first.Content[0].Text, `"alpha"`) > strings.Index(first.Content[0].Text, `"zulu"`) {
		t.Error("expected canonical sorted key order")
	}
}

func TestListToolsShape(t *testing.T) {
	h, _ := newTestHandler(t)

	resp := h.Handle(context.Background(), &Request{JSONRPC: "2.0", ID: 2, Method: "tools/list"})
	result := resp.Result.(*protocol.ListToolsResult)

	if len(result.Tools) != 4 {
		t.Fatalf("expected 4 tools, got %d", len(result.Tools))
	}
	if result.Tools[0].Name != "echo" {
		t.Errorf("expected first-registered tool first, got %s", result.Tools[0].Name)
	}
	for _, tool := range result.Tools {
		if tool.Description == "" {
			t.Errorf("tool %s has empty description", tool.Name)
		}
		if len(tool.InputSchema) == 0 {
			t.Errorf("tool %s has empty schema", tool.Name)
		}
	}
}

func TestListResourcesEmpty(t *testing.T) {
	h, _ := newTestHandler(t)

	resp := h.Handle(context.Background(), &Request{JSONRPC: "2.0", ID: 3, Method: "resources/list"})
	result := resp.Result.(*protocol.ListResourcesResult)
	if len(result.Resources) != 0 {
		t.Errorf("expected empty resource list, got %d", len(result.Resources))
	}
}

func TestReadResourceRoundTrip(t *testing.T) {
	reg := registry.New()
	reg.RegisterResource(&staticResource{uri: "res://a", content: "hello"})
	h := NewHandler(reg)

	params, _ := json.Marshal(map[string]string{"uri": "res://a"})
	resp := h.Handle(context.Background(), &Request{
		JSONRPC: "2.0", ID: 4, Method: "resources/read", Params: params,
	})
	result := resp.Result.(*protocol.ReadResourceResult)

	if result.IsError {
		t.Fatal("expected success")
	}
	contents := result.Contents[0]
	if contents.URI != "res://a" || contents.MimeType != "text/markdown" || contents.Text != "hello" {
		t.Errorf("round trip mismatch: %+v", contents)
	}
}

func TestReadResourceNotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	params, _ := json.Marshal(map[string]string{"uri": "res://missing"})
	resp := h.Handle(context.Background(), &Request{
		JSONRPC: "2.0", ID: 5, Method: "resources/read", Params: params,
	})
	result := resp.Result.(*protocol.ReadResourceResult)

	if !result.IsError {
		t.Fatal("expected error envelope")
	}
	contents := result.Contents[0]
	if contents.MimeType != "text/plain" {
		t.Errorf("not-found envelope should force text/plain, got %s", contents.MimeType)
	}
	if contents.Text != "Resource not found: res://missing" {
		t.Errorf("unexpected payload: %q", contents.Text)
	}
}

func TestReadResourceProviderFailure(t *testing.T) {
	reg := registry.New()
	reg.RegisterResource(&staticResource{uri: "res://broken", err: errors.New("disk on fire")})
	h := NewHandler(reg)

	params, _ := json.Marshal(map[string]string{"uri": "res://broken"})
	resp := h.Handle(context.Background(), &Request{
		JSONRPC: "2.0", ID: 6, Method: "resources/read", Params: params,
	})
	result := resp.Result.(*protocol.ReadResourceResult)

	if !result.IsError {
		t.Fatal("expected error envelope")
	}
	if result.Contents[0].MimeType != "text/plain" {
		t.Errorf("failure envelope should force text/plain, got %s", result.Contents[0].MimeType)
	}
	if !strings.Contains(result.Contents[0].Text, "disk on fire") {
		t.Errorf("provider message should be forwarded, got %q", result.Contents[0].Text)
	}
}

func TestUnknownMethod(t *testing.T) {
	h, _ := newTestHandler(t)

	resp := h.Handle(context.Background(), &Request{JSONRPC: "2.0", ID: 9, Method: "bogus/method"})
	if resp.Error == nil {
		t.Fatal("expected protocol error")
	}
	if resp.Error.Code != protocol.CodeMethodNotFound {
		t.Errorf("expected code %d, got %d", protocol.CodeMethodNotFound, resp.Error.Code)
	}
}

func TestInitializeNegotiation(t *testing.T) {
	h, _ := newTestHandler(t)

	params, _ := json.Marshal(map[string]interface{}{
		"protocolVersion": "2024-11-05",
		"clientInfo":      map[string]string{"name": "test-client", "version": "1.0"},
	})
	resp := h.Handle(context.Background(), &Request{
		JSONRPC: "2.0", ID: 10, Method: "initialize", Params: params,
	})
	if resp.Error != nil {
		t.Fatalf("initialize failed: %v", resp.Error)
	}
	result := resp.Result.(map[string]interface{})
	if result["protocolVersion"] != "2024-11-05" {
		t.Errorf("expected negotiated version 2024-11-05, got %v", result["protocolVersion"])
	}

	// Unknown client versions fall back to the server's preferred revision.
	params, _ = json.Marshal(map[string]interface{}{"protocolVersion": "1999-01-01"})
	resp = h.Handle(context.Background(), &Request{
		JSONRPC: "2.0", ID: 11, Method: "initialize", Params: params,
	})
	result = resp.Result.(map[string]interface{})
	if result["protocolVersion"] == "1999-01-01" {
		t.Error("server should not accept an unsupported protocol version")
	}
}
