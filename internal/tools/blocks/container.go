package blocks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/JTruax/BOIM-WP-MCP/internal/tools"
)

type ContainerTool struct{}

func (t *ContainerTool) Name() string {
	return "generate_container"
}

func (t *ContainerTool) Description() string {
	return `Generate a GenerateBlocks Container block.

Produces ready-to-paste block markup for a section wrapper with optional
background, text color, padding, and inner content. Use a semantic tag
(section, header, footer) for top-level page sections.`
}

func (t *ContainerTool) Title() string {
	return "Generate Container Block"
}

func (t *ContainerTool) Annotations() map[string]bool {
	return tools.GeneratorAnnotations()
}

func (t *ContainerTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"tag": {
				"type": "string",
				"enum": ["div", "section", "header", "footer", "aside", "article", "main"],
				"description": "HTML element to render (default div)"
			},
			"background_color": {
				"type": "string",
				"description": "CSS background color (optional)"
			},
			"text_color": {
				"type": "string",
				"description": "CSS text color (optional)"
			},
			"padding": {
				"type": "string",
				"description": "Uniform padding with unit, e.g. '60px' (optional)"
			},
			"contain_width": {
				"type": "boolean",
				"description": "Constrain inner content to the theme content width (default true)"
			},
			"content": {
				"type": "string",
				"description": "Inner block markup or HTML (optional)"
			}
		}
	}`)
}

type containerInput struct {
	Tag             string `json:"tag"`
	BackgroundColor string `json:"background_color"`
	TextColor       string `json:"text_color"`
	Padding         string `json:"padding"`
	ContainWidth    *bool  `json:"contain_width"`
	Content         string `json:"content"`
}

func (t *ContainerTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	var req containerInput
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	if req.Tag == "" {
		req.Tag = "div"
	}
	if !allowedContainerTags[req.Tag] {
		return nil, fmt.Errorf("unsupported container tag: %s", req.Tag)
	}

	id := uniqueID("container", req.Tag, req.BackgroundColor, req.TextColor, req.Padding, req.Content)

	attrs := map[string]interface{}{"uniqueId": id}
	if req.Tag != "div" {
		attrs["tagName"] = req.Tag
	}
	if req.BackgroundColor != "" {
		attrs["backgroundColor"] = req.BackgroundColor
	}
	if req.TextColor != "" {
		attrs["textColor"] = req.TextColor
	}
	if req.Padding != "" {
		attrs["spacing"] = map[string]interface{}{
			"paddingTop":    req.Padding,
			"paddingRight":  req.Padding,
			"paddingBottom": req.Padding,
			"paddingLeft":   req.Padding,
		}
	}

	open, err := openComment("generateblocks/container", attrs)
	if err != nil {
		return nil, err
	}

	containWidth := req.ContainWidth == nil || *req.ContainWidth

	inner := req.Content
	if containWidth {
		inner = joinLines(`<div class="gb-inside-container">`, inner, `</div>`)
	}

	markup := joinLines(
		open,
		fmt.Sprintf(`<%s class="gb-container gb-container-%s">`, req.Tag, id),
		inner,
		fmt.Sprintf(`</%s>`, req.Tag),
		closeComment("generateblocks/container"),
	)

	return markup, nil
}
