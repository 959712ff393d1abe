package blocks

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/JTruax/BOIM-WP-MCP/internal/tools"
)

type GridTool struct{}

func (t *GridTool) Name() string {
	return "generate_grid"
}

func (t *GridTool) Description() string {
	return `Generate a GenerateBlocks Grid block with equal-width columns.

Produces the grid wrapper plus one Container child per column, each
carrying the correct width and mobile stacking attributes. Provide
column_content to pre-fill columns; otherwise they render empty and
ready for editing.`
}

func (t *GridTool) Title() string {
	return "Generate Grid Block"
}

func (t *GridTool) Annotations() map[string]bool {
	return tools.GeneratorAnnotations()
}

func (t *GridTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"columns": {
				"type": "integer",
				"minimum": 1,
				"maximum": 6,
				"description": "Number of equal columns (required)"
			},
			"gap": {
				"type": "integer",
				"description": "Horizontal and vertical gap in px (default 30)"
			},
			"vertical_alignment": {
				"type": "string",
				"enum": ["flex-start", "center", "flex-end"],
				"description": "Column vertical alignment (optional)"
			},
			"column_content": {
				"type": "array",
				"items": { "type": "string" },
				"description": "Inner markup per column, by position (optional)"
			}
		},
		"required": ["columns"]
	}`)
}

type gridInput struct {
	Columns           int      `json:"columns"`
	Gap               *int     `json:"gap"`
	VerticalAlignment string   `json:"vertical_alignment"`
	ColumnContent     []string `json:"column_content"`
}

func (t *GridTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	var req gridInput
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	width, err := columnWidth(req.Columns)
	if err != nil {
		return nil, err
	}
	if len(req.ColumnContent) > req.Columns {
		return nil, fmt.Errorf("column_content has %d entries for %d columns",
			len(req.ColumnContent), req.Columns)
	}

	gap := 30
	if req.Gap != nil {
		gap = *req.Gap
	}

	seed := fmt.Sprintf("%d|%d|%s", req.Columns, gap, req.VerticalAlignment)
	for _, c := range req.ColumnContent {
		seed += "|" + c
	}
	gridID := uniqueID("grid", seed)

	gridAttrs := map[string]interface{}{
		"uniqueId":      gridID,
		"columns":       req.Columns,
		"horizontalGap": gap,
		"verticalGap":   gap,
	}
	if req.VerticalAlignment != "" {
		gridAttrs["verticalAlignment"] = req.VerticalAlignment
	}

	open, err := openComment("generateblocks/grid", gridAttrs)
	if err != nil {
		return nil, err
	}

	lines := []string{
		open,
		fmt.Sprintf(`<div class="gb-grid-wrapper gb-grid-wrapper-%s">`, gridID),
	}

	for i := 0; i < req.Columns; i++ {
		content := ""
		if i < len(req.ColumnContent) {
			content = req.ColumnContent[i]
		}
		column, err := renderGridColumn(gridID, strconv.Itoa(i)+"|"+seed, width, content)
		if err != nil {
			return nil, err
		}
		lines = append(lines, column)
	}

	lines = append(lines, `</div>`, closeComment("generateblocks/grid"))

	return joinLines(lines...), nil
}

// renderGridColumn produces the Container child a Grid expects: the
// grid coupling attributes plus the extra gb-grid-column wrapper.
func renderGridColumn(gridID, seed, width, content string) (string, error) {
	id := uniqueID("grid-column", gridID, seed, width)

	attrs := map[string]interface{}{
		"uniqueId": id,
		"isGrid":   true,
		"gridId":   gridID,
		"sizing": map[string]interface{}{
			"width":       width,
			"widthMobile": "100%",
		},
	}

	open, err := openComment("generateblocks/container", attrs)
	if err != nil {
		return "", err
	}

	return joinLines(
		open,
		fmt.Sprintf(`<div class="gb-grid-column gb-grid-column-%s"><div class="gb-container gb-container-%s">`, id, id),
		content,
		`</div></div>`,
		closeComment("generateblocks/container"),
	), nil
}
