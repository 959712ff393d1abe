package wp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/JTruax/BOIM-WP-MCP/internal/tools"
)

type TaxonomyTool struct{}

func (t *TaxonomyTool) Name() string {
	return "generate_taxonomy"
}

func (t *TaxonomyTool) Description() string {
	return `Generate PHP that registers a custom taxonomy.

Produces a register_taxonomy() call bound to one or more post types,
with labels, REST support, and hierarchical (category-like) or flat
(tag-like) behavior.`
}

func (t *TaxonomyTool) Title() string {
	return "Generate Custom Taxonomy"
}

func (t *TaxonomyTool) Annotations() map[string]bool {
	return tools.GeneratorAnnotations()
}

func (t *TaxonomyTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"slug": {
				"type": "string",
				"description": "Taxonomy key, e.g. 'portfolio-category' (required)"
			},
			"post_types": {
				"type": "array",
				"minItems": 1,
				"items": { "type": "string" },
				"description": "Post types this taxonomy attaches to (required)"
			},
			"singular": {
				"type": "string",
				"description": "Singular label (default derived from slug)"
			},
			"plural": {
				"type": "string",
				"description": "Plural label (default singular + 's')"
			},
			"hierarchical": {
				"type": "boolean",
				"description": "Category-like with parent terms (default true)"
			}
		},
		"required": ["slug", "post_types"]
	}`)
}

type taxonomyInput struct {
	Slug         string   `json:"slug"`
	PostTypes    []string `json:"post_types"`
	Singular     string   `json:"singular"`
	Plural       string   `json:"plural"`
	Hierarchical *bool    `json:"hierarchical"`
}

var taxonomyTmpl = mustTemplate("taxonomy", `<?php
/**
 * Register the {{ .Singular }} taxonomy.
 */
add_action( 'init', 'register_{{ fn .Slug }}_taxonomy' );

function register_{{ fn .Slug }}_taxonomy() {
	$labels = array(
		'name'          => __( '{{ php .Plural }}', 'textdomain' ),
		'singular_name' => __( '{{ php .Singular }}', 'textdomain' ),
		'search_items'  => __( 'Search {{ php .Plural }}', 'textdomain' ),
		'all_items'     => __( 'All {{ php .Plural }}', 'textdomain' ),
		'edit_item'     => __( 'Edit {{ php .Singular }}', 'textdomain' ),
		'update_item'   => __( 'Update {{ php .Singular }}', 'textdomain' ),
		'add_new_item'  => __( 'Add New {{ php .Singular }}', 'textdomain' ),
		'menu_name'     => __( '{{ php .Plural }}', 'textdomain' ),
	);

	register_taxonomy( '{{ php .Slug }}', array( {{ .PostTypeList }} ), array(
		'labels'            => $labels,
		'hierarchical'      => {{ .Hierarchical }},
		'show_in_rest'      => true,
		'show_admin_column' => true,
		'rewrite'           => array( 'slug' => '{{ php .Slug }}' ),
	) );
}
`)

func (t *TaxonomyTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	var req taxonomyInput
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	if err := validateSlug("taxonomy", req.Slug); err != nil {
		return nil, err
	}
	if len(req.PostTypes) == 0 {
		return nil, fmt.Errorf("at least one post type is required")
	}
	for _, pt := range req.PostTypes {
		if err := validateSlug("post type", pt); err != nil {
			return nil, err
		}
	}

	if req.Singular == "" {
		req.Singular = labelize(req.Slug)
	}
	if req.Plural == "" {
		req.Plural = req.Singular + "s"
	}

	postTypeList := ""
	for i, pt := range req.PostTypes {
		if i > 0 {
			postTypeList += ", "
		}
		postTypeList += "'" + phpStr(pt) + "'"
	}

	data := struct {
		taxonomyInput
		Hierarchical bool
		PostTypeList string
	}{
		taxonomyInput: req,
		Hierarchical:  req.Hierarchical == nil || *req.Hierarchical,
		PostTypeList:  postTypeList,
	}

	return render(taxonomyTmpl, data)
}
