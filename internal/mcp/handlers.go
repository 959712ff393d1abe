package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/JTruax/BOIM-WP-MCP/internal/logger"
	"github.com/JTruax/BOIM-WP-MCP/internal/registry"
	"github.com/JTruax/BOIM-WP-MCP/internal/version"
	"github.com/JTruax/BOIM-WP-MCP/pkg/protocol"
)

var log = logger.ForComponent("mcp")

// Handler translates one incoming request into exactly one response.
// It is stateless between requests apart from the initialize handshake
// bookkeeping; every call is a function of (registry contents, request).
type Handler struct {
	registry    *registry.Registry
	startTime   time.Time
	initialized bool
	clientInfo  ClientInfo
}

func NewHandler(reg *registry.Registry) *Handler {
	return &Handler{
		registry:  reg,
		startTime: time.Now(),
	}
}

func (h *Handler) Handle(ctx context.Context, req *Request) *Response {
	resp := &Response{
		JSONRPC: "2.0",
		ID:      req.ID,
	}

	switch req.Method {
	case "initialize":
		result, err := h.handleInitialize(req)
		if err != nil {
			resp.Error = &protocol.JSONRPCError{
				Code:    protocol.CodeInvalidParams,
				Message: err.Error(),
			}
		} else {
			resp.Result = result
		}
	case "ping":
		resp.Result = map[string]interface{}{}
	case "notifications/initialized":
		h.initialized = true
		resp.Result = map[string]interface{}{}
	case "tools/list":
		resp.Result = h.handleListTools()
	case "tools/call":
		result, err := h.handleCallTool(ctx, req)
		if err != nil {
			resp.Error = &protocol.JSONRPCError{
				Code:    protocol.CodeInvalidParams,
				Message: err.Error(),
			}
		} else {
			resp.Result = result
		}
	case "resources/list":
		resp.Result = h.handleListResources()
	case "resources/read":
		result, err := h.handleReadResource(ctx, req)
		if err != nil {
			resp.Error = &protocol.JSONRPCError{
				Code:    protocol.CodeInvalidParams,
				Message: err.Error(),
			}
		} else {
			resp.Result = result
		}
	default:
		resp.Error = &protocol.JSONRPCError{
			Code:    protocol.CodeMethodNotFound,
			Message: fmt.Sprintf("Method not found: %s", req.Method),
		}
	}

	return resp
}

func (h *Handler) handleInitialize(req *Request) (interface{}, error) {
	initReq := struct {
		ProtocolVersion string `json:"protocolVersion"`
		ClientInfo      struct {
			Name    string `json:"name"`
			Version string `json:"version"`
		} `json:"clientInfo"`
	}{}

	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &initReq); err != nil {
			return nil, fmt.Errorf("failed to parse initialize request: %w", err)
		}
	}

	h.clientInfo.Name = initReq.ClientInfo.Name
	h.clientInfo.Version = initReq.ClientInfo.Version

	log.Info("client connected",
		"client", h.clientInfo.Name,
		"clientVersion", h.clientInfo.Version)

	return map[string]interface{}{
		"protocolVersion": negotiateProtocolVersion(initReq.ProtocolVersion),
		"capabilities": map[string]interface{}{
			"tools":     map[string]interface{}{},
			"resources": map[string]interface{}{},
		},
		"serverInfo": map[string]interface{}{
			"name":    version.ServerName,
			"version": version.Version,
		},
	}, nil
}

func negotiateProtocolVersion(clientVersion string) string {
	for _, v := range version.SupportedProtocolVersions {
		if clientVersion == v {
			return v
		}
	}
	return version.ProtocolVersion
}

func (h *Handler) handleListTools() *protocol.ListToolsResult {
	registered := h.registry.Tools()
	tools := make([]protocol.Tool, len(registered))

	for i, t := range registered {
		tool := protocol.Tool{
			Name:        t.Name(),
			Description: t.Description(),
			InputSchema: t.Schema(),
		}
		if annotated, ok := t.(registry.AnnotatedTool); ok {
			tool.Title = annotated.Title()
			tool.Annotations = annotated.Annotations()
		}
		tools[i] = tool
	}

	return &protocol.ListToolsResult{Tools: tools}
}

func (h *Handler) handleListResources() *protocol.ListResourcesResult {
	registered := h.registry.Resources()
	resources := make([]protocol.Resource, len(registered))

	for i, r := range registered {
		resources[i] = protocol.Resource{
			URI:         r.URI(),
			Name:        r.Name(),
			Description: r.Description(),
			MimeType:    r.MimeType(),
		}
	}

	return &protocol.ListResourcesResult{Resources: resources}
}

func (h *Handler) handleCallTool(ctx context.Context, req *Request) (*protocol.CallToolResult, error) {
	callReq := struct {
		Name      string          `json:"name"`
		Arguments json.RawMessage `json:"arguments"`
	}{}

	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &callReq); err != nil {
			return nil, fmt.Errorf("failed to parse tool call request: %w", err)
		}
	}

	if callReq.Name == "" {
		return nil, fmt.Errorf("tool name is required")
	}

	tool, ok := h.registry.Get(callReq.Name)
	if !ok {
		return errorResult(fmt.Sprintf("Tool not found: %s", callReq.Name)), nil
	}

	args := callReq.Arguments
	if len(args) == 0 {
		args = json.RawMessage(`{}`)
	}

	return h.invokeTool(ctx, tool, args), nil
}

// invokeTool runs a single handler and converts every failure mode,
// panics included, into an error envelope. No failure originating
// inside a tool may escape this function.
func (h *Handler) invokeTool(ctx context.Context, tool registry.Tool, args json.RawMessage) (result *protocol.CallToolResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("tool panic recovered",
				"tool", tool.Name(),
				"panic", r,
				"stack", string(debug.Stack()))
			result = errorResult(fmt.Sprintf("Error: tool %s panicked: %v", tool.Name(), r))
		}
	}()

	out, err := tool.Execute(ctx, args)
	if err != nil {
		return errorResult(fmt.Sprintf("Error: %v", err))
	}

	text, err := renderText(out)
	if err != nil {
		return errorResult(fmt.Sprintf("Error: %v", err))
	}

	return &protocol.CallToolResult{
		Content: []protocol.TextContent{protocol.NewTextContent(text)},
	}
}

func (h *Handler) handleReadResource(ctx context.Context, req *Request) (*protocol.ReadResourceResult, error) {
	readReq := struct {
		URI string `json:"uri"`
	}{}

	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &readReq); err != nil {
			return nil, fmt.Errorf("failed to parse resource read request: %w", err)
		}
	}

	if readReq.URI == "" {
		return nil, fmt.Errorf("resource uri is required")
	}

	res, ok := h.registry.GetResource(readReq.URI)
	if !ok {
		return resourceError(readReq.URI, fmt.Sprintf("Resource not found: %s", readReq.URI)), nil
	}

	return h.readResource(ctx, res), nil
}

func (h *Handler) readResource(ctx context.Context, res registry.Resource) (result *protocol.ReadResourceResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("resource provider panic recovered",
				"uri", res.URI(),
				"panic", r,
				"stack", string(debug.Stack()))
			result = resourceError(res.URI(), fmt.Sprintf("Error: resource provider panicked: %v", r))
		}
	}()

	content, err := res.Read(ctx)
	if err != nil {
		return resourceError(res.URI(), fmt.Sprintf("Error: %v", err))
	}

	return &protocol.ReadResourceResult{
		Contents: []protocol.ResourceContents{{
			URI:      res.URI(),
			MimeType: res.MimeType(),
			Text:     content,
		}},
	}
}

// renderText produces the display form of a tool result: strings pass
// through verbatim, anything structured is serialized to indented JSON.
// Map keys marshal in sorted order, so the output is canonical and
// stable across calls.
func renderText(result interface{}) (string, error) {
	switch v := result.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case json.RawMessage:
		return string(v), nil
	default:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to render tool result: %w", err)
		}
		return string(data), nil
	}
}

func errorResult(msg string) *protocol.CallToolResult {
	return &protocol.CallToolResult{
		Content: []protocol.TextContent{protocol.NewTextContent(msg)},
		IsError: true,
	}
}

func resourceError(uri, msg string) *protocol.ReadResourceResult {
	return &protocol.ReadResourceResult{
		Contents: []protocol.ResourceContents{{
			URI:      uri,
			MimeType: "text/plain",
			Text:     msg,
		}},
		IsError: true,
	}
}
