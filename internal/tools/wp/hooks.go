package wp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/JTruax/BOIM-WP-MCP/internal/tools"
)

type HookSnippetTool struct{}

func (t *HookSnippetTool) Name() string {
	return "generate_hook_snippet"
}

func (t *HookSnippetTool) Description() string {
	return `Generate a PHP action or filter hook snippet.

Produces the add_action()/add_filter() registration plus a stub callback
with the right parameter count. Filters return their first argument so
the stub is safe to install before it is filled in.`
}

func (t *HookSnippetTool) Title() string {
	return "Generate Hook Snippet"
}

func (t *HookSnippetTool) Annotations() map[string]bool {
	return tools.GeneratorAnnotations()
}

func (t *HookSnippetTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"hook": {
				"type": "string",
				"description": "Hook name, e.g. 'wp_enqueue_scripts' or 'the_content' (required)"
			},
			"type": {
				"type": "string",
				"enum": ["action", "filter"],
				"description": "Hook type (default action)"
			},
			"function_name": {
				"type": "string",
				"description": "Callback name (default derived from hook)"
			},
			"priority": {
				"type": "integer",
				"description": "Hook priority (default 10)"
			},
			"args": {
				"type": "integer",
				"minimum": 0,
				"maximum": 10,
				"description": "Accepted argument count (default 1)"
			}
		},
		"required": ["hook"]
	}`)
}

type hookInput struct {
	Hook         string `json:"hook"`
	Type         string `json:"type"`
	FunctionName string `json:"function_name"`
	Priority     *int   `json:"priority"`
	Args         *int   `json:"args"`
}

func (t *HookSnippetTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	var req hookInput
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	if req.Hook == "" {
		return nil, fmt.Errorf("hook name is required")
	}
	switch req.Type {
	case "":
		req.Type = "action"
	case "action", "filter":
	default:
		return nil, fmt.Errorf("type must be action or filter, got %q", req.Type)
	}

	priority := 10
	if req.Priority != nil {
		priority = *req.Priority
	}
	args := 1
	if req.Args != nil {
		args = *req.Args
	}
	if args < 0 || args > 10 {
		return nil, fmt.Errorf("args must be between 0 and 10, got %d", args)
	}
	if req.Type == "filter" && args == 0 {
		return nil, fmt.Errorf("filters receive at least one argument")
	}

	name := req.FunctionName
	if name == "" {
		name = "my_" + funcName(req.Hook) + "_" + req.Type
	}

	params := ""
	for i := 1; i <= args; i++ {
		if i > 1 {
			params += ", "
		}
		params += fmt.Sprintf("$arg%d", i)
	}
	if req.Type == "filter" {
		// First filter parameter is the value being filtered.
		if args == 1 {
			params = "$value"
		} else {
			params = "$value" + params[len("$arg1"):]
		}
	}

	signature := "()"
	if params != "" {
		signature = "( " + params + " )"
	}

	body := "\t// TODO: implement.\n"
	if req.Type == "filter" {
		body += "\treturn $value;\n"
	}

	snippet := fmt.Sprintf(`<?php
add_%s( '%s', '%s', %d, %d );

function %s%s {
%s}
`, req.Type, phpStr(req.Hook), name, priority, args, name, signature, body)

	return snippet, nil
}
