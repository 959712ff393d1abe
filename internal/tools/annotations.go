package tools

// GeneratorAnnotations describe the template tools: they read nothing,
// mutate nothing, and produce identical output for identical input.
func GeneratorAnnotations() map[string]bool {
	return map[string]bool{
		"readOnlyHint":    true,
		"destructiveHint": false,
		"idempotentHint":  true,
		"openWorldHint":   false,
	}
}

// ReadOnlyAnnotations describe lookup tools over the knowledge base.
func ReadOnlyAnnotations() map[string]bool {
	return map[string]bool{
		"readOnlyHint":    true,
		"destructiveHint": false,
		"idempotentHint":  true,
		"openWorldHint":   false,
	}
}
