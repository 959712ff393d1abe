package blocks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/JTruax/BOIM-WP-MCP/internal/tools"
)

type QueryLoopTool struct{}

func (t *QueryLoopTool) Name() string {
	return "generate_query_loop"
}

func (t *QueryLoopTool) Description() string {
	return `Generate a GenerateBlocks Query Loop block.

Builds a complete post listing: query parameters, responsive card grid,
and a per-post template with dynamic title, optional featured image,
excerpt, date, and read-more button. Includes a no-results fallback.`
}

func (t *QueryLoopTool) Title() string {
	return "Generate Query Loop Block"
}

func (t *QueryLoopTool) Annotations() map[string]bool {
	return tools.GeneratorAnnotations()
}

func (t *QueryLoopTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"post_type": {
				"type": "string",
				"description": "Post type to query (default post)"
			},
			"posts_per_page": {
				"type": "integer",
				"description": "Number of posts (default 6)"
			},
			"columns": {
				"type": "integer",
				"minimum": 1,
				"maximum": 6,
				"description": "Card columns (default 3)"
			},
			"orderby": {
				"type": "string",
				"enum": ["date", "title", "menu_order", "rand"],
				"description": "Sort field (default date)"
			},
			"order": {
				"type": "string",
				"enum": ["DESC", "ASC"],
				"description": "Sort direction (default DESC)"
			},
			"taxonomy": {
				"type": "string",
				"description": "Taxonomy to filter by (optional, requires terms)"
			},
			"terms": {
				"type": "array",
				"items": { "type": "string" },
				"description": "Term slugs for the taxonomy filter"
			},
			"show_image": {
				"type": "boolean",
				"description": "Include the featured image (default true)"
			},
			"show_excerpt": {
				"type": "boolean",
				"description": "Include the excerpt (default true)"
			},
			"excerpt_length": {
				"type": "integer",
				"description": "Excerpt length in words (default 25)"
			},
			"show_date": {
				"type": "boolean",
				"description": "Include the publish date (default false)"
			},
			"read_more_text": {
				"type": "string",
				"description": "Read-more button label (empty disables the button)"
			}
		}
	}`)
}

type queryLoopInput struct {
	PostType      string   `json:"post_type"`
	PostsPerPage  *int     `json:"posts_per_page"`
	Columns       *int     `json:"columns"`
	OrderBy       string   `json:"orderby"`
	Order         string   `json:"order"`
	Taxonomy      string   `json:"taxonomy"`
	Terms         []string `json:"terms"`
	ShowImage     *bool    `json:"show_image"`
	ShowExcerpt   *bool    `json:"show_excerpt"`
	ExcerptLength *int     `json:"excerpt_length"`
	ShowDate      bool     `json:"show_date"`
	ReadMoreText  string   `json:"read_more_text"`
}

func (t *QueryLoopTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	var req queryLoopInput
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	if req.PostType == "" {
		req.PostType = "post"
	}
	postsPerPage := 6
	if req.PostsPerPage != nil {
		postsPerPage = *req.PostsPerPage
	}
	if postsPerPage == 0 || postsPerPage < -1 {
		return nil, fmt.Errorf("posts_per_page must be positive or -1, got %d", postsPerPage)
	}
	columns := 3
	if req.Columns != nil {
		columns = *req.Columns
	}
	width, err := columnWidth(columns)
	if err != nil {
		return nil, err
	}
	if req.Taxonomy != "" && len(req.Terms) == 0 {
		return nil, fmt.Errorf("terms are required when taxonomy is set")
	}
	if req.Taxonomy == "" && len(req.Terms) > 0 {
		return nil, fmt.Errorf("taxonomy is required when terms are set")
	}

	raw, _ := json.Marshal(req)
	seed := string(raw)

	query := map[string]interface{}{
		"post_type":      req.PostType,
		"posts_per_page": postsPerPage,
	}
	if req.OrderBy != "" && req.OrderBy != "date" {
		query["orderby"] = req.OrderBy
	}
	if req.Order != "" && req.Order != "DESC" {
		query["order"] = req.Order
	}
	if req.Taxonomy != "" {
		query["tax_query"] = []map[string]interface{}{{
			"taxonomy": req.Taxonomy,
			"field":    "slug",
			"terms":    req.Terms,
		}}
	}

	loopID := uniqueID("query-loop", seed)
	loopOpen, err := openComment("generateblocks/query-loop", map[string]interface{}{
		"uniqueId": loopID,
		"query":    query,
	})
	if err != nil {
		return nil, err
	}

	gridID := uniqueID("query-grid", seed)
	gridOpen, err := openComment("generateblocks/grid", map[string]interface{}{
		"uniqueId":      gridID,
		"isQueryLoop":   true,
		"horizontalGap": 30,
		"verticalGap":   30,
	})
	if err != nil {
		return nil, err
	}

	card, err := t.renderCard(&req, seed, gridID, width)
	if err != nil {
		return nil, err
	}

	noResults, err := renderNoResults(seed)
	if err != nil {
		return nil, err
	}

	markup := joinLines(
		loopOpen,
		gridOpen,
		fmt.Sprintf(`<div class="gb-grid-wrapper gb-grid-wrapper-%s">`, gridID),
		card,
		`</div>`,
		closeComment("generateblocks/grid"),
		noResults,
		closeComment("generateblocks/query-loop"),
	)

	return markup, nil
}

// renderCard builds the per-post template Container that the loop
// stamps out for each result.
func (t *QueryLoopTool) renderCard(req *queryLoopInput, seed, gridID, width string) (string, error) {
	cardID := uniqueID("query-card", seed)

	cardOpen, err := openComment("generateblocks/container", map[string]interface{}{
		"uniqueId": cardID,
		"isGrid":   true,
		"gridId":   gridID,
		"sizing": map[string]interface{}{
			"width":       width,
			"widthMobile": "100%",
		},
	})
	if err != nil {
		return "", err
	}

	lines := []string{
		cardOpen,
		fmt.Sprintf(`<div class="gb-grid-column gb-grid-column-%s"><div class="gb-container gb-container-%s">`, cardID, cardID),
	}

	if req.ShowImage == nil || *req.ShowImage {
		imageID := uniqueID("query-image", seed)
		imageOpen, err := openComment("generateblocks/image", map[string]interface{}{
			"uniqueId":         imageID,
			"isDynamicContent": true,
			"contentType":      "featured-image",
			"dynamicLinkType":  "single-post",
			"sizeSlug":         "medium_large",
		})
		if err != nil {
			return "", err
		}
		lines = append(lines,
			imageOpen,
			fmt.Sprintf(`<figure class="gb-block-image gb-block-image-%s"></figure>`, imageID),
			closeComment("generateblocks/image"),
		)
	}

	titleID := uniqueID("query-title", seed)
	titleOpen, err := openComment("generateblocks/headline", map[string]interface{}{
		"uniqueId":         titleID,
		"element":          "h3",
		"isDynamicContent": true,
		"contentType":      "post-title",
		"dynamicLinkType":  "single-post",
	})
	if err != nil {
		return "", err
	}
	lines = append(lines,
		titleOpen,
		fmt.Sprintf(`<h3 class="gb-headline gb-headline-%s"></h3>`, titleID),
		closeComment("generateblocks/headline"),
	)

	if req.ShowDate {
		dateID := uniqueID("query-date", seed)
		dateOpen, err := openComment("generateblocks/headline", map[string]interface{}{
			"uniqueId":         dateID,
			"element":          "p",
			"isDynamicContent": true,
			"contentType":      "post-date",
		})
		if err != nil {
			return "", err
		}
		lines = append(lines,
			dateOpen,
			fmt.Sprintf(`<p class="gb-headline gb-headline-%s"></p>`, dateID),
			closeComment("generateblocks/headline"),
		)
	}

	if req.ShowExcerpt == nil || *req.ShowExcerpt {
		excerptLength := 25
		if req.ExcerptLength != nil {
			excerptLength = *req.ExcerptLength
		}
		excerptID := uniqueID("query-excerpt", seed)
		excerptOpen, err := openComment("generateblocks/headline", map[string]interface{}{
			"uniqueId":         excerptID,
			"element":          "p",
			"isDynamicContent": true,
			"contentType":      "post-excerpt",
			"excerptLength":    excerptLength,
		})
		if err != nil {
			return "", err
		}
		lines = append(lines,
			excerptOpen,
			fmt.Sprintf(`<p class="gb-headline gb-headline-%s"></p>`, excerptID),
			closeComment("generateblocks/headline"),
		)
	}

	if req.ReadMoreText != "" {
		buttonID := uniqueID("query-button", seed)
		buttonOpen, err := openComment("generateblocks/button", map[string]interface{}{
			"uniqueId":         buttonID,
			"isDynamicContent": true,
			"dynamicLinkType":  "single-post",
		})
		if err != nil {
			return "", err
		}
		lines = append(lines,
			buttonOpen,
			fmt.Sprintf(`<a class="gb-button gb-button-%s"><span class="gb-button-text">%s</span></a>`,
				buttonID, req.ReadMoreText),
			closeComment("generateblocks/button"),
		)
	}

	lines = append(lines,
		`</div></div>`,
		closeComment("generateblocks/container"),
	)

	return joinLines(lines...), nil
}

func renderNoResults(seed string) (string, error) {
	id := uniqueID("query-no-results", seed)

	open, err := openComment("generateblocks/container", map[string]interface{}{
		"uniqueId":    id,
		"isNoResults": true,
	})
	if err != nil {
		return "", err
	}

	return joinLines(
		open,
		fmt.Sprintf(`<div class="gb-container gb-container-%s"><div class="gb-inside-container">`, id),
		`<p>No posts found.</p>`,
		`</div></div>`,
		closeComment("generateblocks/container"),
	), nil
}
