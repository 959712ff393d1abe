package wp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/JTruax/BOIM-WP-MCP/internal/tools"
)

type ShortcodeTool struct{}

func (t *ShortcodeTool) Name() string {
	return "generate_shortcode"
}

func (t *ShortcodeTool) Description() string {
	return `Generate PHP that registers a shortcode.

Produces an add_shortcode() registration with a callback that parses
attributes through shortcode_atts() and escapes output. Enclosing
shortcodes also receive and filter their inner content.`
}

func (t *ShortcodeTool) Title() string {
	return "Generate Shortcode"
}

func (t *ShortcodeTool) Annotations() map[string]bool {
	return tools.GeneratorAnnotations()
}

func (t *ShortcodeTool) Schema() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"tag": {
				"type": "string",
				"description": "Shortcode tag, e.g. 'team_grid' (required)"
			},
			"attributes": {
				"type": "array",
				"items": {
					"type": "object",
					"properties": {
						"name": { "type": "string", "description": "Attribute name" },
						"default": { "type": "string", "description": "Default value (may be empty)" }
					},
					"required": ["name"]
				},
				"description": "Supported attributes with defaults (optional)"
			},
			"enclosing": {
				"type": "boolean",
				"description": "Shortcode wraps inner content, [tag]...[/tag] (default false)"
			}
		},
		"required": ["tag"]
	}`)
}

type shortcodeAttr struct {
	Name    string `json:"name"`
	Default string `json:"default"`
}

type shortcodeInput struct {
	Tag        string          `json:"tag"`
	Attributes []shortcodeAttr `json:"attributes"`
	Enclosing  bool            `json:"enclosing"`
}

var shortcodeTmpl = mustTemplate("shortcode", `<?php
/**
 * [{{ .Tag }}] shortcode.
 */
add_shortcode( '{{ php .Tag }}', '{{ fn .Tag }}_shortcode' );

function {{ fn .Tag }}_shortcode( $atts{{ if .Enclosing }}, $content = null{{ end }} ) {
	$atts = shortcode_atts( array(
{{- range .Attributes }}
		'{{ php .Name }}' => '{{ php .Default }}',
{{- end }}
	), $atts, '{{ php .Tag }}' );

	ob_start();
	?>
	<div class="{{ .Tag }}-shortcode">
{{- range .Attributes }}
		<span data-{{ .Name }}="<?php echo esc_attr( $atts['{{ php .Name }}'] ); ?>"></span>
{{- end }}
{{- if .Enclosing }}
		<?php echo do_shortcode( $content ); ?>
{{- end }}
	</div>
	<?php
	return ob_get_clean();
}
`)

func (t *ShortcodeTool) Execute(ctx context.Context, input json.RawMessage) (interface{}, error) {
	var req shortcodeInput
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}

	if err := validateSlug("shortcode", req.Tag); err != nil {
		return nil, err
	}
	for i, a := range req.Attributes {
		if err := validateSlug("attribute", a.Name); err != nil {
			return nil, fmt.Errorf("attribute %d: %w", i+1, err)
		}
	}

	return render(shortcodeTmpl, req)
}
