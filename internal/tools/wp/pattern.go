package wp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/JTruax/BOIM-WP-MCP/internal/tools"
)

type BlockPatternTool struct{}

func (t *BlockPatternTool) Name() string {
	return "generate_block_pattern"
}

func (t *BlockPatternTool) Description() string {
	return `Generate PHP that registers a block pattern.

Wraps existing block markup (for example the output of the
generate_container or generate_query_loop tools) in a
register_block_pattern() call so it appears in the editor's pattern
inserter.`
}

func (t *BlockPatternTool) Title() string {
	return "Generate Block Pattern"
}

func (t *BlockPatternTool) Annotations() map[string]bool {
	return tools.GeneratorAnnotations()
}

func (t *BlockPatternTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"slug": {
				"type": "string",
				"description": "Pattern slug without namespace, e.g. 'hero-section' (required)"
			},
			"namespace": {
				"type": "string",
				"description": "Pattern namespace (default 'custom')"
			},
			"title": {
				"type": "string",
				"description": "Pattern title shown in the inserter (required)"
			},
			"description": {
				"type": "string",
				"description": "Pattern description (optional)"
			},
			"categories": {
				"type": "array",
				"items": { "type": "string" },
				"description": "Pattern categories, e.g. ['featured'] (optional)"
			},
			"content": {
				"type": "string",
				"description": "Block markup for the pattern body (required)"
			}
		},
		"required": ["slug", "title", "content"]
	}`)
}

type patternInput struct {
	Slug        string   `json:"slug"`
	Namespace   string   `json:"namespace"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
	Content     string   `json:"content"`
}

var patternTmpl = mustTemplate("pattern", `<?php
/**
 * Register the "{{ .Title }}" block pattern.
 */
add_action( 'init', 'register_{{ fn .Slug }}_pattern' );

function register_{{ fn .Slug }}_pattern() {
	register_block_pattern( '{{ php .Namespace }}/{{ php .Slug }}', array(
		'title'       => __( '{{ php .Title }}', 'textdomain' ),
{{- if .Description }}
		'description' => __( '{{ php .Description }}', 'textdomain' ),
{{- end }}
{{- if .CategoryList }}
		'categories'  => array( {{ .CategoryList }} ),
{{- end }}
		'content'     => '{{ .EscapedContent }}',
	) );
}
`)

func (t *BlockPatternTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	var req patternInput
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	if err := validateSlug("pattern", req.Slug); err != nil {
		return nil, err
	}
	if req.Title == "" {
		return nil, fmt.Errorf("pattern title is required")
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, fmt.Errorf("pattern content is required")
	}
	if req.Namespace == "" {
		req.Namespace = "custom"
	}

	categoryList := ""
	for i, c := range req.Categories {
		if i > 0 {
			categoryList += ", "
		}
		categoryList += "'" + phpStr(c) + "'"
	}

	data := struct {
		patternInput
		CategoryList   string
		EscapedContent string
	}{
		patternInput:   req,
		CategoryList:   categoryList,
		EscapedContent: phpStr(req.Content),
	}

	return render(patternTmpl, data)
}
