package blocks

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"strconv"

	"github.com/JTruax/BOIM-WP-MCP/internal/tools"
)

type ButtonsTool struct{}

func (t *ButtonsTool) Name() string {
	return "generate_buttons"
}

func (t *ButtonsTool) Description() string {
	return `Generate a GenerateBlocks Buttons block group.

Renders a button wrapper with one or more styled link buttons. Each
button takes its own text, url, and colors.`
}

func (t *ButtonsTool) Title() string {
	return "Generate Buttons Block"
}

func (t *ButtonsTool) Annotations() map[string]bool {
	return tools.GeneratorAnnotations()
}

func (t *ButtonsTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"buttons": {
				"type": "array",
				"minItems": 1,
				"items": {
					"type": "object",
					"properties": {
						"text": { "type": "string", "description": "Button label (required)" },
						"url": { "type": "string", "description": "Target URL (required)" },
						"background_color": { "type": "string" },
						"text_color": { "type": "string" }
					},
					"required": ["text", "url"]
				}
			},
			"alignment": {
				"type": "string",
				"enum": ["left", "center", "right"],
				"description": "Group alignment (optional)"
			}
		},
		"required": ["buttons"]
	}`)
}

type buttonInput struct {
	Text            string `json:"text"`
	URL             string `json:"url"`
	BackgroundColor string `json:"background_color"`
	TextColor       string `json:"text_color"`
}

type buttonsInput struct {
	Buttons   []buttonInput `json:"buttons"`
	Alignment string        `json:"alignment"`
}

func (t *ButtonsTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	var req buttonsInput
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	if len(req.Buttons) == 0 {
		return nil, fmt.Errorf("at least one button is required")
	}

	seed := req.Alignment
	for _, b := range req.Buttons {
		seed += "|" + b.Text + "|" + b.URL + "|" + b.BackgroundColor + "|" + b.TextColor
	}
	wrapperID := uniqueID("button-container", seed)

	wrapperAttrs := map[string]interface{}{"uniqueId": wrapperID}
	if req.Alignment != "" {
		wrapperAttrs["alignment"] = req.Alignment
	}

	open, err := openComment("generateblocks/button-container", wrapperAttrs)
	if err != nil {
		return nil, err
	}

	lines := []string{
		open,
		fmt.Sprintf(`<div class="gb-button-wrapper gb-button-wrapper-%s">`, wrapperID),
	}

	for i, b := range req.Buttons {
		if b.Text == "" || b.URL == "" {
			return nil, fmt.Errorf("button %d: text and url are required", i+1)
		}

		id := uniqueID("button", strconv.Itoa(i), seed)
		attrs := map[string]interface{}{
			"uniqueId": id,
			"hasUrl":   true,
		}
		if b.BackgroundColor != "" {
			attrs["backgroundColor"] = b.BackgroundColor
		}
		if b.TextColor != "" {
			attrs["textColor"] = b.TextColor
		}

		buttonOpen, err := openComment("generateblocks/button", attrs)
		if err != nil {
			return nil, err
		}

		lines = append(lines,
			buttonOpen,
			fmt.Sprintf(`<a class="gb-button gb-button-%s" href="%s"><span class="gb-button-text">%s</span></a>`,
				id, html.EscapeString(b.URL), html.EscapeString(b.Text)),
			closeComment("generateblocks/button"),
		)
	}

	lines = append(lines, `</div>`, closeComment("generateblocks/button-container"))

	return joinLines(lines...), nil
}
