package index

import (
	"fmt"

	"github.com/JTruax/BOIM-WP-MCP/internal/kb"
)

// Build indexes every document in the library. Called once at startup
// before the server begins serving.
func Build(store *Store, lib *kb.Library) error {
	for _, doc := range lib.Docs() {
		body, err := lib.Content(doc.Topic)
		if err != nil {
			return fmt.Errorf("index %s: %w", doc.Topic, err)
		}
		if err := store.Upsert(doc.Topic, doc.Title, body); err != nil {
			return err
		}
	}

	count, err := store.Count()
	if err != nil {
		return err
	}
	log.Info("knowledge base indexed", "documents", count)
	return nil
}

// Reindex refreshes the topics behind changed override files. Paths
// that do not map to a known topic are skipped; only document content
// changes, never the set of indexed topics.
func Reindex(store *Store, lib *kb.Library, paths []string) {
	for _, path := range paths {
		topic, ok := lib.TopicForFile(path)
		if !ok {
			continue
		}

		doc, _ := lib.Get(topic)
		body, err := lib.Content(topic)
		if err != nil {
			log.Warn("reindex failed", "topic", topic, "error", err)
			continue
		}
		if err := store.Upsert(topic, doc.Title, body); err != nil {
			log.Warn("reindex failed", "topic", topic, "error", err)
			continue
		}
		log.Debug("reindexed", "topic", topic)
	}
}
