package wp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/JTruax/BOIM-WP-MCP/internal/tools"
)

type ThemeJSONTool struct{}

func (t *ThemeJSONTool) Name() string {
	return "generate_theme_json"
}

func (t *ThemeJSONTool) Description() string {
	return `Generate a theme.json settings file.

Builds the global styles configuration: color palette, font size scale,
content and wide layout widths, and spacing units. Output is ready to
drop into the theme root.`
}

func (t *ThemeJSONTool) Title() string {
	return "Generate theme.json"
}

func (t *ThemeJSONTool) Annotations() map[string]bool {
	return tools.GeneratorAnnotations()
}

func (t *ThemeJSONTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"colors": {
				"type": "array",
				"items": {
					"type": "object",
					"properties": {
						"slug": { "type": "string", "description": "Palette slug, e.g. 'primary'" },
						"name": { "type": "string", "description": "Display name (default from slug)" },
						"color": { "type": "string", "description": "CSS color value" }
					},
					"required": ["slug", "color"]
				},
				"description": "Color palette entries (optional)"
			},
			"font_sizes": {
				"type": "array",
				"items": {
					"type": "object",
					"properties": {
						"slug": { "type": "string" },
						"name": { "type": "string" },
						"size": { "type": "string", "description": "CSS size, e.g. '1.25rem'" }
					},
					"required": ["slug", "size"]
				},
				"description": "Font size presets (optional)"
			},
			"content_width": {
				"type": "string",
				"description": "Layout contentSize (default '1200px')"
			},
			"wide_width": {
				"type": "string",
				"description": "Layout wideSize (default '1400px')"
			}
		}
	}`)
}

type paletteEntry struct {
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type fontSizeEntry struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
	Size string `json:"size"`
}

type themeJSONInput struct {
	Colors       []paletteEntry  `json:"colors"`
	FontSizes    []fontSizeEntry `json:"font_sizes"`
	ContentWidth string          `json:"content_width"`
	WideWidth    string          `json:"wide_width"`
}

func (t *ThemeJSONTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	var req themeJSONInput
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	if req.ContentWidth == "" {
		req.ContentWidth = "1200px"
	}
	if req.WideWidth == "" {
		req.WideWidth = "1400px"
	}

	settings := map[string]interface{}{
		"layout": map[string]interface{}{
			"contentSize": req.ContentWidth,
			"wideSize":    req.WideWidth,
		},
		"spacing": map[string]interface{}{
			"units": []string{"px", "em", "rem", "%", "vw"},
		},
	}

	if len(req.Colors) > 0 {
		palette := make([]map[string]string, 0, len(req.Colors))
		for i, c := range req.Colors {
			if c.Slug == "" || c.Color == "" {
				return nil, fmt.Errorf("color %d: slug and color are required", i+1)
			}
			name := c.Name
			if name == "" {
				name = labelize(c.Slug)
			}
			palette = append(palette, map[string]string{
				"slug":  c.Slug,
				"name":  name,
				"color": c.Color,
			})
		}
		settings["color"] = map[string]interface{}{
			"palette":       palette,
			"defaultPalette": false,
		}
	}

	if len(req.FontSizes) > 0 {
		sizes := make([]map[string]string, 0, len(req.FontSizes))
		for i, f := range req.FontSizes {
			if f.Slug == "" || f.Size == "" {
				return nil, fmt.Errorf("font size %d: slug and size are required", i+1)
			}
			name := f.Name
			if name == "" {
				name = labelize(f.Slug)
			}
			sizes = append(sizes, map[string]string{
				"slug": f.Slug,
				"name": name,
				"size": f.Size,
			})
		}
		settings["typography"] = map[string]interface{}{
			"fontSizes": sizes,
		}
	}

	doc := map[string]interface{}{
		"$schema":  "https://schemas.wp.org/trunk/theme.json",
		"version":  2,
		"settings": settings,
	}

	// Maps marshal with sorted keys, so output is stable across calls.
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal theme.json: %w", err)
	}
	return string(out) + "\n", nil
}
