package wp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/JTruax/BOIM-WP-MCP/internal/tools"
)

type CustomPostTypeTool struct{}

func (t *CustomPostTypeTool) Name() string {
	return "generate_custom_post_type"
}

func (t *CustomPostTypeTool) Description() string {
	return `Generate PHP that registers a WordPress custom post type.

Produces a complete register_post_type() call with a full labels array,
REST support (required for the block editor), and sensible defaults.
Paste into a plugin file or the theme's functions.php.`
}

func (t *CustomPostTypeTool) Title() string {
	return "Generate Custom Post Type"
}

func (t *CustomPostTypeTool) Annotations() map[string]bool {
	return tools.GeneratorAnnotations()
}

func (t *CustomPostTypeTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"slug": {
				"type": "string",
				"description": "Post type key, max 20 chars, e.g. 'portfolio' (required)"
			},
			"singular": {
				"type": "string",
				"description": "Singular label (default derived from slug)"
			},
			"plural": {
				"type": "string",
				"description": "Plural label (default singular + 's')"
			},
			"public": {
				"type": "boolean",
				"description": "Publicly queryable with front-end archive (default true)"
			},
			"has_archive": {
				"type": "boolean",
				"description": "Enable the post type archive (default true)"
			},
			"hierarchical": {
				"type": "boolean",
				"description": "Page-like parent/child structure (default false)"
			},
			"menu_icon": {
				"type": "string",
				"description": "Dashicon name, e.g. 'dashicons-portfolio' (optional)"
			},
			"supports": {
				"type": "array",
				"items": { "type": "string" },
				"description": "Feature list (default title, editor, thumbnail, excerpt)"
			},
			"rewrite_slug": {
				"type": "string",
				"description": "URL base (default the post type slug)"
			}
		},
		"required": ["slug"]
	}`)
}

type postTypeInput struct {
	Slug         string   `json:"slug"`
	Singular     string   `json:"singular"`
	Plural       string   `json:"plural"`
	Public       *bool    `json:"public"`
	HasArchive   *bool    `json:"has_archive"`
	Hierarchical bool     `json:"hierarchical"`
	MenuIcon     string   `json:"menu_icon"`
	Supports     []string `json:"supports"`
	RewriteSlug  string   `json:"rewrite_slug"`
}

var postTypeTmpl = mustTemplate("post_type", `<?php
/**
 * Register the {{ .Singular }} post type.
 */
add_action( 'init', 'register_{{ fn .Slug }}_post_type' );

function register_{{ fn .Slug }}_post_type() {
	$labels = array(
		'name'               => __( '{{ php .Plural }}', 'textdomain' ),
		'singular_name'      => __( '{{ php .Singular }}', 'textdomain' ),
		'add_new'            => __( 'Add New', 'textdomain' ),
		'add_new_item'       => __( 'Add New {{ php .Singular }}', 'textdomain' ),
		'edit_item'          => __( 'Edit {{ php .Singular }}', 'textdomain' ),
		'new_item'           => __( 'New {{ php .Singular }}', 'textdomain' ),
		'view_item'          => __( 'View {{ php .Singular }}', 'textdomain' ),
		'search_items'       => __( 'Search {{ php .Plural }}', 'textdomain' ),
		'not_found'          => __( 'No {{ php .Plural }} found', 'textdomain' ),
		'not_found_in_trash' => __( 'No {{ php .Plural }} found in Trash', 'textdomain' ),
		'all_items'          => __( 'All {{ php .Plural }}', 'textdomain' ),
		'menu_name'          => __( '{{ php .Plural }}', 'textdomain' ),
	);

	register_post_type( '{{ php .Slug }}', array(
		'labels'       => $labels,
		'public'       => {{ .Public }},
		'has_archive'  => {{ .HasArchive }},
		'hierarchical' => {{ .Hierarchical }},
		'show_in_rest' => true,
{{- if .MenuIcon }}
		'menu_icon'    => '{{ php .MenuIcon }}',
{{- end }}
		'supports'     => array( {{ .SupportsList }} ),
		'rewrite'      => array( 'slug' => '{{ php .RewriteSlug }}' ),
	) );
}
`)

func (t *CustomPostTypeTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	var req postTypeInput
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	if err := validateSlug("post type", req.Slug); err != nil {
		return nil, err
	}
	if len(req.Slug) > 20 {
		return nil, fmt.Errorf("post type slug %q exceeds 20 characters", req.Slug)
	}

	if req.Singular == "" {
		req.Singular = labelize(req.Slug)
	}
	if req.Plural == "" {
		req.Plural = req.Singular + "s"
	}
	if req.RewriteSlug == "" {
		req.RewriteSlug = req.Slug
	}
	supports := req.Supports
	if len(supports) == 0 {
		supports = []string{"title", "editor", "thumbnail", "excerpt"}
	}

	supportsList := ""
	for i, s := range supports {
		if i > 0 {
			supportsList += ", "
		}
		supportsList += "'" + phpStr(s) + "'"
	}

	data := struct {
		postTypeInput
		Public       bool
		HasArchive   bool
		SupportsList string
	}{
		postTypeInput: req,
		Public:        req.Public == nil || *req.Public,
		HasArchive:    req.HasArchive == nil || *req.HasArchive,
		SupportsList:  supportsList,
	}

	return render(postTypeTmpl, data)
}
