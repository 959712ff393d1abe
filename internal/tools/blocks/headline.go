package blocks

import (
	"context"
	"encoding/json"
	"fmt"
	"html"

	"github.com/JTruax/BOIM-WP-MCP/internal/tools"
)

type HeadlineTool struct{}

func (t *HeadlineTool) Name() string {
	return "generate_headline"
}

func (t *HeadlineTool) Description() string {
	return `Generate a GenerateBlocks Headline block.

Renders any text element (h1-h6, p, div) with optional color and
alignment. Set dynamic=true with a content_type to bind the text to the
current post instead of static text (used inside Query Loops).`
}

func (t *HeadlineTool) Title() string {
	return "Generate Headline Block"
}

func (t *HeadlineTool) Annotations() map[string]bool {
	return tools.GeneratorAnnotations()
}

func (t *HeadlineTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"element": {
				"type": "string",
				"enum": ["h1", "h2", "h3", "h4", "h5", "h6", "p", "div"],
				"description": "Element to render (default h2)"
			},
			"text": {
				"type": "string",
				"description": "Headline text (required unless dynamic)"
			},
			"color": {
				"type": "string",
				"description": "CSS text color (optional)"
			},
			"alignment": {
				"type": "string",
				"enum": ["left", "center", "right"],
				"description": "Text alignment (optional)"
			},
			"dynamic": {
				"type": "boolean",
				"description": "Bind content to the current post"
			},
			"content_type": {
				"type": "string",
				"description": "Dynamic source: post-title, post-excerpt, post-date, post-author, post-meta"
			},
			"link_type": {
				"type": "string",
				"description": "Dynamic link target: single-post, author-archives (optional)"
			},
			"meta_field": {
				"type": "string",
				"description": "Meta key when content_type is post-meta"
			}
		}
	}`)
}

type headlineInput struct {
	Element     string `json:"element"`
	Text        string `json:"text"`
	Color       string `json:"color"`
	Alignment   string `json:"alignment"`
	Dynamic     bool   `json:"dynamic"`
	ContentType string `json:"content_type"`
	LinkType    string `json:"link_type"`
	MetaField   string `json:"meta_field"`
}

var dynamicContentTypes = map[string]bool{
	"post-title": true, "post-excerpt": true, "post-date": true,
	"post-author": true, "post-meta": true, "terms": true,
	"comments-number": true,
}

func (t *HeadlineTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	var req headlineInput
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	if req.Element == "" {
		req.Element = "h2"
	}
	if !allowedHeadlineElements[req.Element] {
		return nil, fmt.Errorf("unsupported headline element: %s", req.Element)
	}

	if req.Dynamic {
		if req.ContentType == "" {
			return nil, fmt.Errorf("content_type is required for dynamic headlines")
		}
		if !dynamicContentTypes[req.ContentType] {
			return nil, fmt.Errorf("unsupported content_type: %s", req.ContentType)
		}
		if req.ContentType == "post-meta" && req.MetaField == "" {
			return nil, fmt.Errorf("meta_field is required for post-meta content")
		}
	} else if req.Text == "" {
		return nil, fmt.Errorf("text is required for static headlines")
	}

	id := uniqueID("headline", req.Element, req.Text, req.Color, req.Alignment,
		req.ContentType, req.LinkType, req.MetaField)

	attrs := map[string]interface{}{"uniqueId": id}
	if req.Element != "h2" {
		attrs["element"] = req.Element
	}
	if req.Color != "" {
		attrs["textColor"] = req.Color
	}
	if req.Alignment != "" {
		attrs["alignment"] = req.Alignment
	}
	if req.Dynamic {
		attrs["isDynamicContent"] = true
		attrs["contentType"] = req.ContentType
		if req.LinkType != "" {
			attrs["dynamicLinkType"] = req.LinkType
		}
		if req.MetaField != "" {
			attrs["metaFieldName"] = req.MetaField
		}
	}

	open, err := openComment("generateblocks/headline", attrs)
	if err != nil {
		return nil, err
	}

	// Dynamic headlines save empty; the loop fills them at render time.
	text := ""
	if !req.Dynamic {
		text = html.EscapeString(req.Text)
	}

	markup := joinLines(
		open,
		fmt.Sprintf(`<%s class="gb-headline gb-headline-%s gb-headline-text">%s</%s>`,
			req.Element, id, text, req.Element),
		closeComment("generateblocks/headline"),
	)

	return markup, nil
}
