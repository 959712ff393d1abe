package blocks

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"strconv"

	"github.com/JTruax/BOIM-WP-MCP/internal/tools"
)

type AccordionTool struct{}

func (t *AccordionTool) Name() string {
	return "generate_accordion"
}

func (t *AccordionTool) Description() string {
	return `Generate a GenerateBlocks Pro Accordion block.

Renders an accordion with one toggle/content pair per item. Requires
GenerateBlocks Pro on the target site.`
}

func (t *AccordionTool) Title() string {
	return "Generate Accordion Block"
}

func (t *AccordionTool) Annotations() map[string]bool {
	return tools.GeneratorAnnotations()
}

func (t *AccordionTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"items": {
				"type": "array",
				"minItems": 1,
				"items": {
					"type": "object",
					"properties": {
						"title": { "type": "string", "description": "Toggle label (required)" },
						"content": { "type": "string", "description": "Panel content, HTML allowed (required)" }
					},
					"required": ["title", "content"]
				}
			},
			"allow_multiple": {
				"type": "boolean",
				"description": "Allow several panels open at once (default false)"
			},
			"first_open": {
				"type": "boolean",
				"description": "Open the first panel initially (default false)"
			}
		},
		"required": ["items"]
	}`)
}

type accordionItem struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type accordionInput struct {
	Items         []accordionItem `json:"items"`
	AllowMultiple bool            `json:"allow_multiple"`
	FirstOpen     bool            `json:"first_open"`
}

func (t *AccordionTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	var req accordionInput
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	if len(req.Items) == 0 {
		return nil, fmt.Errorf("at least one accordion item is required")
	}

	raw, _ := json.Marshal(req)
	seed := string(raw)
	accordionID := uniqueID("accordion", seed)

	attrs := map[string]interface{}{"uniqueId": accordionID}
	if req.AllowMultiple {
		attrs["allowMultipleOpen"] = true
	}

	open, err := openComment("generateblocks-pro/accordion", attrs)
	if err != nil {
		return nil, err
	}

	lines := []string{
		open,
		fmt.Sprintf(`<div class="gb-accordion gb-accordion-%s">`, accordionID),
	}

	for i, item := range req.Items {
		if item.Title == "" || item.Content == "" {
			return nil, fmt.Errorf("item %d: title and content are required", i+1)
		}

		itemID := uniqueID("accordion-item", strconv.Itoa(i), seed)
		itemAttrs := map[string]interface{}{"uniqueId": itemID}
		if i == 0 && req.FirstOpen {
			itemAttrs["accordionItemOpen"] = true
		}

		itemOpen, err := openComment("generateblocks-pro/accordion-item", itemAttrs)
		if err != nil {
			return nil, err
		}

		toggleID := uniqueID("accordion-toggle", strconv.Itoa(i), seed)
		contentID := uniqueID("accordion-content", strconv.Itoa(i), seed)

		lines = append(lines,
			itemOpen,
			fmt.Sprintf(`<div class="gb-accordion__item gb-accordion__item-%s">`, itemID),
			fmt.Sprintf(`<!-- wp:generateblocks-pro/accordion-toggle {"uniqueId":"%s"} -->`, toggleID),
			fmt.Sprintf(`<button class="gb-accordion__toggle gb-accordion__toggle-%s" aria-expanded="%t"><span>%s</span><span class="gb-accordion__icon" aria-hidden="true"></span></button>`,
				toggleID, i == 0 && req.FirstOpen, html.EscapeString(item.Title)),
			`<!-- /wp:generateblocks-pro/accordion-toggle -->`,
			fmt.Sprintf(`<!-- wp:generateblocks-pro/accordion-content {"uniqueId":"%s"} -->`, contentID),
			fmt.Sprintf(`<div class="gb-accordion__content gb-accordion__content-%s">`, contentID),
			item.Content,
			`</div>`,
			`<!-- /wp:generateblocks-pro/accordion-content -->`,
			`</div>`,
			closeComment("generateblocks-pro/accordion-item"),
		)
	}

	lines = append(lines, `</div>`, closeComment("generateblocks-pro/accordion"))

	return joinLines(lines...), nil
}
