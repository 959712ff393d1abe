package wp

import "github.com/JTruax/BOIM-WP-MCP/internal/registry"

// GetTools returns the WordPress scaffolding tools in their advertised
// order.
func GetTools() []registry.Tool {
	return []registry.Tool{
		&CustomPostTypeTool{},
		&TaxonomyTool{},
		&BlockPatternTool{},
		&ThemeJSONTool{},
		&HookSnippetTool{},
		&ShortcodeTool{},
	}
}
