package blocks

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"strconv"

	"github.com/JTruax/BOIM-WP-MCP/internal/tools"
)

type TabsTool struct{}

func (t *TabsTool) Name() string {
	return "generate_tabs"
}

func (t *TabsTool) Description() string {
	return `Generate a GenerateBlocks Pro Tabs block.

Renders a tab menu plus one panel per tab; the first tab opens by
default. Requires GenerateBlocks Pro on the target site.`
}

func (t *TabsTool) Title() string {
	return "Generate Tabs Block"
}

func (t *TabsTool) Annotations() map[string]bool {
	return tools.GeneratorAnnotations()
}

func (t *TabsTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"tabs": {
				"type": "array",
				"minItems": 1,
				"items": {
					"type": "object",
					"properties": {
						"title": { "type": "string", "description": "Tab label (required)" },
						"content": { "type": "string", "description": "Panel content, HTML allowed (required)" }
					},
					"required": ["title", "content"]
				}
			}
		},
		"required": ["tabs"]
	}`)
}

type tabItem struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type tabsInput struct {
	Tabs []tabItem `json:"tabs"`
}

func (t *TabsTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	var req tabsInput
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	if len(req.Tabs) == 0 {
		return nil, fmt.Errorf("at least one tab is required")
	}

	raw, _ := json.Marshal(req)
	seed := string(raw)
	tabsID := uniqueID("tabs", seed)

	open, err := openComment("generateblocks-pro/tabs", map[string]interface{}{
		"uniqueId": tabsID,
	})
	if err != nil {
		return nil, err
	}

	lines := []string{
		open,
		fmt.Sprintf(`<div class="gb-tabs gb-tabs-%s">`, tabsID),
		fmt.Sprintf(`<!-- wp:generateblocks-pro/tabs-menu {"uniqueId":"%s"} -->`, uniqueID("tabs-menu", seed)),
		`<div class="gb-tabs__menu" role="tablist">`,
	}

	for i, tab := range req.Tabs {
		if tab.Title == "" || tab.Content == "" {
			return nil, fmt.Errorf("tab %d: title and content are required", i+1)
		}
		itemID := uniqueID("tab-menu-item", strconv.Itoa(i), seed)
		lines = append(lines,
			fmt.Sprintf(`<!-- wp:generateblocks-pro/tab-menu-item {"uniqueId":"%s"} -->`, itemID),
			fmt.Sprintf(`<button class="gb-tabs__menu-item gb-tabs__menu-item-%s%s" role="tab" aria-selected="%t">%s</button>`,
				itemID, openClass(i == 0, " gb-tabs__menu-item--open"), i == 0, html.EscapeString(tab.Title)),
			`<!-- /wp:generateblocks-pro/tab-menu-item -->`,
		)
	}

	lines = append(lines,
		`</div>`,
		`<!-- /wp:generateblocks-pro/tabs-menu -->`,
	)

	for i, tab := range req.Tabs {
		panelID := uniqueID("tab-panel", strconv.Itoa(i), seed)
		lines = append(lines,
			fmt.Sprintf(`<!-- wp:generateblocks-pro/tab-item {"uniqueId":"%s"} -->`, panelID),
			fmt.Sprintf(`<div class="gb-tabs__panel gb-tabs__panel-%s%s" role="tabpanel">`,
				panelID, openClass(i == 0, " gb-tabs__panel--open")),
			tab.Content,
			`</div>`,
			`<!-- /wp:generateblocks-pro/tab-item -->`,
		)
	}

	lines = append(lines, `</div>`, closeComment("generateblocks-pro/tabs"))

	return joinLines(lines...), nil
}

func openClass(open bool, class string) string {
	if open {
		return class
	}
	return ""
}
