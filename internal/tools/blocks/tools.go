package blocks

import "github.com/JTruax/BOIM-WP-MCP/internal/registry"

// GetTools returns the GenerateBlocks template tools in their
// advertised order.
func GetTools() []registry.Tool {
	return []registry.Tool{
		&ContainerTool{},
		&GridTool{},
		&QueryLoopTool{},
		&HeadlineTool{},
		&ButtonsTool{},
		&AccordionTool{},
		&TabsTool{},
	}
}
