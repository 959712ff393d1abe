package blocks

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func execute(t *testing.T, tool interface {
	Execute(ctx context.Context, input json.RawMessage) (interface{}, error)
}, input string) string {
	t.Helper()
	out, err := tool.Execute(context.Background(), json.RawMessage(input))
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	markup, ok := out.(string)
	if !ok {
		t.Fatalf("expected string result, got %T", out)
	}
	return markup
}

func TestGetTools(t *testing.T) {
	list := GetTools()
	if len(list) != 7 {
		t.Fatalf("expected 7 block tools, got %d", len(list))
	}

	seen := make(map[string]bool)
	for _, tool := range list {
		if tool.Name() == "" {
			t.Error("tool with empty name")
		}
		if seen[tool.Name()] {
			t.Errorf("duplicate tool name: %s", tool.Name())
		}
		seen[tool.Name()] = true

		if tool.Description() == "" {
			t.Errorf("tool %s: empty description", tool.Name())
		}
		if len(tool.Schema()) == 0 {
			t.Errorf("tool %s: empty schema", tool.Name())
		}
		if !json.Valid(tool.Schema()) {
			t.Errorf("tool %s: schema is not valid JSON", tool.Name())
		}
	}
}

func TestContainerMarkup(t *testing.T) {
	markup := execute(t, &ContainerTool{},
		`{"tag":"section","background_color":"#f7f8f9","padding":"60px","content":"<p>Hello</p>"}`)

	for _, want := range []string{
		"<!-- wp:generateblocks/container {",
		`"tagName":"section"`,
		`"backgroundColor":"#f7f8f9"`,
		`"paddingTop":"60px"`,
		`<section class="gb-container gb-container-`,
		`<div class="gb-inside-container">`,
		"<p>Hello</p>",
		"<!-- /wp:generateblocks/container -->",
	} {
		if !strings.Contains(markup, want) {
			t.Errorf("container markup missing %q:\n%s", want, markup)
		}
	}
}

func TestContainerRejectsBadTag(t *testing.T) {
	_, err := (&ContainerTool{}).Execute(context.Background(),
		json.RawMessage(`{"tag":"script"}`))
	if err == nil {
		t.Error("expected error for disallowed tag")
	}
}

func TestContainerDeterministic(t *testing.T) {
	input := `{"tag":"section","background_color":"#111"}`
	first := execute(t, &ContainerTool{}, input)
	second := execute(t, &ContainerTool{}, input)
	if first != second {
		t.Error("identical input should produce identical markup")
	}

	other := execute(t, &ContainerTool{}, `{"tag":"section","background_color":"#222"}`)
	if first == other {
		t.Error("different input should produce a different uniqueId")
	}
}

func TestGridColumns(t *testing.T) {
	markup := execute(t, &GridTool{}, `{"columns":3}`)

	if strings.Count(markup, "<!-- wp:generateblocks/container ") != 3 {
		t.Errorf("expected 3 grid children:\n%s", markup)
	}
	if !strings.Contains(markup, `"width":"33.33%"`) {
		t.Error("3-column grid children should be 33.33% wide")
	}
	if !strings.Contains(markup, `"widthMobile":"100%"`) {
		t.Error("grid children should stack on mobile")
	}
	if !strings.Contains(markup, `"isGrid":true`) {
		t.Error("grid children must carry isGrid")
	}
}

func TestGridRejectsBadColumnCount(t *testing.T) {
	if _, err := (&GridTool{}).Execute(context.Background(), json.RawMessage(`{"columns":9}`)); err == nil {
		t.Error("expected error for 9 columns")
	}
	if _, err := (&GridTool{}).Execute(context.Background(), json.RawMessage(`{"columns":0}`)); err == nil {
		t.Error("expected error for 0 columns")
	}
}

func TestGridColumnContent(t *testing.T) {
	markup := execute(t, &GridTool{},
		`{"columns":2,"column_content":["<p>left</p>","<p>right</p>"]}`)

	if !strings.Contains(markup, "<p>left</p>") || !strings.Contains(markup, "<p>right</p>") {
		t.Error("column content not placed")
	}
	if strings.Index(markup, "<p>left</p>") > strings.Index(markup, "<p>right</p>") {
		t.Error("column content out of order")
	}

	if _, err := (&GridTool{}).Execute(context.Background(),
		json.RawMessage(`{"columns":1,"column_content":["a","b"]}`)); err == nil {
		t.Error("expected error when content entries exceed columns")
	}
}

func TestHeadlineStatic(t *testing.T) {
	markup := execute(t, &HeadlineTool{}, `{"element":"h1","text":"Big <Title>"}`)

	if !strings.Contains(markup, `<h1 class="gb-headline`) {
		t.Error("expected h1 element")
	}
	if !strings.Contains(markup, "Big &lt;Title&gt;") {
		t.Error("headline text should be HTML-escaped")
	}
}

func TestHeadlineDynamic(t *testing.T) {
	markup := execute(t, &HeadlineTool{},
		`{"element":"h3","dynamic":true,"content_type":"post-title","link_type":"single-post"}`)

	if !strings.Contains(markup, `"isDynamicContent":true`) {
		t.Error("expected dynamic content attribute")
	}
	if !strings.Contains(markup, `"contentType":"post-title"`) {
		t.Error("expected content type attribute")
	}
	if !strings.Contains(markup, `></h3>`) {
		t.Error("dynamic headline should save empty")
	}
}

func TestHeadlineValidation(t *testing.T) {
	cases := []string{
		`{"element":"h2"}`,
		`{"dynamic":true}`,
		`{"dynamic":true,"content_type":"post-meta"}`,
		`{"dynamic":true,"content_type":"bogus"}`,
		`{"element":"span","text":"x"}`,
	}
	for _, input := range cases {
		if _, err := (&HeadlineTool{}).Execute(context.Background(), json.RawMessage(input)); err == nil {
			t.Errorf("expected validation error for %s", input)
		}
	}
}

func TestButtons(t *testing.T) {
	markup := execute(t, &ButtonsTool{},
		`{"buttons":[{"text":"Read More","url":"https://example.com/post"},{"text":"Contact","url":"/contact","background_color":"#1e40af"}]}`)

	if strings.Count(markup, "<!-- wp:generateblocks/button {") != 2 {
		t.Errorf("expected 2 buttons:\n%s", markup)
	}
	if !strings.Contains(markup, `href="https://example.com/post"`) {
		t.Error("button url missing")
	}
	if !strings.Contains(markup, `"backgroundColor":"#1e40af"`) {
		t.Error("per-button color missing")
	}

	if _, err := (&ButtonsTool{}).Execute(context.Background(), json.RawMessage(`{"buttons":[]}`)); err == nil {
		t.Error("expected error for empty button list")
	}
}

func TestQueryLoopDefaults(t *testing.T) {
	markup := execute(t, &QueryLoopTool{}, `{}`)

	for _, want := range []string{
		"<!-- wp:generateblocks/query-loop {",
		`"post_type":"post"`,
		`"posts_per_page":6`,
		`"contentType":"featured-image"`,
		`"contentType":"post-title"`,
		`"contentType":"post-excerpt"`,
		`"isNoResults":true`,
		"<!-- /wp:generateblocks/query-loop -->",
	} {
		if !strings.Contains(markup, want) {
			t.Errorf("query loop missing %q", want)
		}
	}

	// Date and read-more are off by default.
	if strings.Contains(markup, `"contentType":"post-date"`) {
		t.Error("date should be opt-in")
	}
}

func TestQueryLoopTaxonomyFilter(t *testing.T) {
	markup := execute(t, &QueryLoopTool{},
		`{"post_type":"portfolio","taxonomy":"portfolio-category","terms":["web","print"],"columns":2,"show_image":false}`)

	if !strings.Contains(markup, `"tax_query":[{"field":"slug","taxonomy":"portfolio-category","terms":["web","print"]}]`) {
		t.Errorf("tax_query not serialized canonically:\n%s", markup)
	}
	if strings.Contains(markup, "featured-image") {
		t.Error("show_image=false should drop the image block")
	}
	if !strings.Contains(markup, `"width":"50%"`) {
		t.Error("2-column loop should use 50% cards")
	}
}

func TestQueryLoopValidation(t *testing.T) {
	cases := []string{
		`{"posts_per_page":0}`,
		`{"posts_per_page":-2}`,
		`{"taxonomy":"category"}`,
		`{"terms":["news"]}`,
		`{"columns":7}`,
	}
	for _, input := range cases {
		if _, err := (&QueryLoopTool{}).Execute(context.Background(), json.RawMessage(input)); err == nil {
			t.Errorf("expected validation error for %s", input)
		}
	}
}

func TestAccordion(t *testing.T) {
	markup := execute(t, &AccordionTool{},
		`{"items":[{"title":"Q1 & more","content":"<p>A1</p>"},{"title":"Q2","content":"<p>A2</p>"}],"first_open":true}`)

	if strings.Count(markup, "accordion-item") < 2 {
		t.Error("expected 2 accordion items")
	}
	if !strings.Contains(markup, "Q1 &amp; more") {
		t.Error("toggle title should be HTML-escaped")
	}
	if !strings.Contains(markup, `aria-expanded="true"`) {
		t.Error("first_open should expand the first toggle")
	}
	if !strings.Contains(markup, `aria-expanded="false"`) {
		t.Error("remaining toggles should start collapsed")
	}
}

func TestTabs(t *testing.T) {
	markup := execute(t, &TabsTool{},
		`{"tabs":[{"title":"One","content":"<p>first</p>"},{"title":"Two","content":"<p>second</p>"}]}`)

	if strings.Count(markup, "tab-menu-item") < 2 {
		t.Error("expected 2 tab menu items")
	}
	if strings.Count(markup, "gb-tabs__panel--open") != 1 {
		t.Error("exactly one panel should start open")
	}
	if !strings.Contains(markup, `aria-selected="true"`) {
		t.Error("first tab should be selected")
	}
}

func TestUniqueIDFormat(t *testing.T) {
	id := uniqueID("a", "b")
	if len(id) != 8 {
		t.Errorf("expected 8-char id, got %q", id)
	}
	if id != uniqueID("a", "b") {
		t.Error("uniqueID should be deterministic")
	}
	if id == uniqueID("ab", "") {
		t.Error("part boundaries should affect the hash")
	}
}
