package blocks

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"strings"
)

// uniqueID derives the 8-hex-char block id GenerateBlocks expects.
// Hashing the tool inputs keeps output deterministic: identical calls
// produce identical markup, which golden tests rely on.
func uniqueID(parts ...string) string {
	h := fnv.New32a()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return fmt.Sprintf("%08x", h.Sum32())
}

// openComment serializes a block opener. Attribute JSON is single-line
// with sorted keys (encoding/json marshals maps in key order), exactly
// as the editor saves it.
func openComment(block string, attrs map[string]interface{}) (string, error) {
	if len(attrs) == 0 {
		return fmt.Sprintf("<!-- wp:%s -->", block), nil
	}
	data, err := json.Marshal(attrs)
	if err != nil {
		return "", fmt.Errorf("marshal %s attributes: %w", block, err)
	}
	return fmt.Sprintf("<!-- wp:%s %s -->", block, data), nil
}

func closeComment(block string) string {
	return fmt.Sprintf("<!-- /wp:%s -->", block)
}

// columnWidth maps a column count to the percentage width GenerateBlocks
// stores on each grid child.
func columnWidth(columns int) (string, error) {
	switch columns {
	case 1:
		return "100%", nil
	case 2:
		return "50%", nil
	case 3:
		return "33.33%", nil
	case 4:
		return "25%", nil
	case 5:
		return "20%", nil
	case 6:
		return "16.66%", nil
	default:
		return "", fmt.Errorf("columns must be between 1 and 6, got %d", columns)
	}
}

var allowedContainerTags = map[string]bool{
	"div": true, "section": true, "header": true,
	"footer": true, "aside": true, "article": true, "main": true,
}

var allowedHeadlineElements = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true,
	"h5": true, "h6": true, "p": true, "div": true,
}

func joinLines(lines ...string) string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}
