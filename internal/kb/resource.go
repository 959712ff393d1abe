package kb

import (
	"context"

	"github.com/JTruax/BOIM-WP-MCP/internal/registry"
)

// docResource adapts one catalog entry to the registry's Resource
// interface. Content is resolved lazily on each read so override
// files take effect without re-registration.
type docResource struct {
	lib *Library
	doc Doc
}

func (r *docResource) URI() string         { return r.doc.URI() }
func (r *docResource) Name() string        { return r.doc.Title }
func (r *docResource) Description() string { return r.doc.Summary }
func (r *docResource) MimeType() string    { return "text/markdown" }

func (r *docResource) Read(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	return r.lib.Content(r.doc.Topic)
}

// Resources returns one registry resource per catalog document, in
// catalog order.
func (l *Library) Resources() []registry.Resource {
	resources := make([]registry.Resource, 0, len(catalog))
	for _, doc := range catalog {
		resources = append(resources, &docResource{lib: l, doc: doc})
	}
	return resources
}
