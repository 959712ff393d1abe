package tools

import (
	"context"
	"encoding/json"
	"time"

	"github.com/JTruax/BOIM-WP-MCP/internal/version"
)

type HealthTool struct {
	startTime time.Time
}

func NewHealthTool() *HealthTool {
	return &HealthTool{startTime: time.Now()}
}

func (t *HealthTool) Name() string {
	return "health"
}

func (t *HealthTool) Description() string {
	return "Check server health, version, and uptime"
}

func (t *HealthTool) Title() string {
	return "Server Health"
}

func (t *HealthTool) Annotations() map[string]bool {
	return ReadOnlyAnnotations()
}

func (t *HealthTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {},
		"required": []
	}`)
}

func (t *HealthTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	return map[string]interface{}{
		"status":        "healthy",
		"version":       version.Version,
		"uptimeSeconds": int64(time.Since(t.startTime).Seconds()),
	}, nil
}
