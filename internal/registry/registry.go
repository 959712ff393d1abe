package registry

import (
	"context"
	"encoding/json"
	"fmt"
)

// Tool is an invocable template function: it renders code or text from
// structured JSON input. Implementations live in the tool packages and
// are opaque to the registry.
type Tool interface {
	Name() string
	Description() string
	Schema() json.RawMessage
	Execute(ctx context.Context, input json.RawMessage) (interface{}, error)
}

// AnnotatedTool optionally carries MCP tool annotations and a display
// title alongside the base descriptor.
type AnnotatedTool interface {
	Tool
	Title() string
	Annotations() map[string]bool
}

// Resource is a named read-only document keyed by a stable URI.
type Resource interface {
	URI() string
	Name() string
	Description() string
	MimeType() string
	Read(ctx context.Context) (string, error)
}

// Registry holds the tool and resource catalogs. Registration happens
// during startup only; Freeze is called before the server starts
// accepting requests, after which the catalogs are read-only and safe
// for concurrent lookups without locking.
//
// Enumeration order is first-registration order. Registering under an
// existing name replaces the entry but keeps its original position, so
// discovery output stays stable when a tool is overridden.
type Registry struct {
	frozen bool

	tools     map[string]Tool
	toolOrder []string

	resources     map[string]Resource
	resourceOrder []string
}

func New() *Registry {
	return &Registry{
		tools:     make(map[string]Tool),
		resources: make(map[string]Resource),
	}
}

func (r *Registry) Register(tool Tool) error {
	if r.frozen {
		return fmt.Errorf("registry is frozen: cannot register tool '%s'", tool.Name())
	}

	name := tool.Name()
	if name == "" {
		return fmt.Errorf("tool name cannot be empty")
	}

	if _, exists := r.tools[name]; !exists {
		r.toolOrder = append(r.toolOrder, name)
	}
	r.tools[name] = tool
	return nil
}

func (r *Registry) RegisterResource(res Resource) error {
	if r.frozen {
		return fmt.Errorf("registry is frozen: cannot register resource '%s'", res.URI())
	}

	uri := res.URI()
	if uri == "" {
		return fmt.Errorf("resource uri cannot be empty")
	}

	if _, exists := r.resources[uri]; !exists {
		r.resourceOrder = append(r.resourceOrder, uri)
	}
	r.resources[uri] = res
	return nil
}

// Freeze ends the registration phase. It is idempotent.
func (r *Registry) Freeze() {
	r.frozen = true
}

func (r *Registry) Frozen() bool {
	return r.frozen
}

func (r *Registry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

func (r *Registry) GetResource(uri string) (Resource, bool) {
	res, ok := r.resources[uri]
	return res, ok
}

// Tools returns the registered tools in first-registration order.
func (r *Registry) Tools() []Tool {
	result := make([]Tool, 0, len(r.toolOrder))
	for _, name := range r.toolOrder {
		result = append(result, r.tools[name])
	}
	return result
}

// Resources returns the registered resources in first-registration order.
func (r *Registry) Resources() []Resource {
	result := make([]Resource, 0, len(r.resourceOrder))
	for _, uri := range r.resourceOrder {
		result = append(result, r.resources[uri])
	}
	return result
}

func (r *Registry) ToolNames() []string {
	names := make([]string, len(r.toolOrder))
	copy(names, r.toolOrder)
	return names
}
