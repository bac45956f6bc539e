package domain

import "strings"

// PageSnapshot is the parsed view of one crawled page.
type PageSnapshot struct {
	URL             string              `json:"url"`
	Title           string              `json:"title"`
	MetaDescription string              `json:"metaDescription"`
	Canonical       string              `json:"canonical"`
	Headings        map[string][]string `json:"headings"`
	JSONLD          []map[string]any    `json:"jsonLd,omitempty"`
	OpenGraph       map[string]string   `json:"openGraph,omitempty"`
	Text            string              `json:"-"`
	WordCount       int                 `json:"wordCount"`
	InternalLinks   int                 `json:"internalLinks"`
	ExternalLinks   int                 `json:"externalLinks"`
}

// SchemasOfType returns every JSON-LD node whose @type matches (directly, as
// one of several types, or nested inside an @graph).
func (p PageSnapshot) SchemasOfType(schemaType string) []map[string]any {
	var found []map[string]any
	for _, node := range p.JSONLD {
		found = append(found, matchSchema(node, schemaType)...)
	}
	return found
}

// HasSchema reports whether any JSON-LD node carries the given @type.
func (p PageSnapshot) HasSchema(schemaType string) bool {
	return len(p.SchemasOfType(schemaType)) > 0
}

func matchSchema(node map[string]any, schemaType string) []map[string]any {
	var found []map[string]any
	if nodeHasType(node, schemaType) {
		found = append(found, node)
	}
	if graph, ok := node["@graph"].([]any); ok {
		for _, entry := range graph {
			if m, ok := entry.(map[string]any); ok {
				found = append(found, matchSchema(m, schemaType)...)
			}
		}
	}
	return found
}

func nodeHasType(node map[string]any, schemaType string) bool {
	switch t := node["@type"].(type) {
	case string:
		return strings.EqualFold(t, schemaType)
	case []any:
		for _, v := range t {
			if s, ok := v.(string); ok && strings.EqualFold(s, schemaType) {
				return true
			}
		}
	}
	return false
}

// FAQEntries extracts the mainEntity questions from the first FAQPage schema.
func (p PageSnapshot) FAQEntries() []map[string]any {
	pages := p.SchemasOfType("FAQPage")
	if len(pages) == 0 {
		return nil
	}
	entities, ok := pages[0]["mainEntity"].([]any)
	if !ok {
		return nil
	}
	var entries []map[string]any
	for _, e := range entities {
		if m, ok := e.(map[string]any); ok {
			entries = append(entries, m)
		}
	}
	return entries
}

// WellFormedFAQCount counts FAQ entries that carry both a question name and
// an accepted answer with text.
func (p PageSnapshot) WellFormedFAQCount() int {
	count := 0
	for _, entry := range p.FAQEntries() {
		name, _ := entry["name"].(string)
		if strings.TrimSpace(name) == "" {
			continue
		}
		answer, ok := entry["acceptedAnswer"].(map[string]any)
		if !ok {
			continue
		}
		text, _ := answer["text"].(string)
		if strings.TrimSpace(text) != "" {
			count++
		}
	}
	return count
}

// SchemaStringField reads a top-level string field from a schema node,
// tolerating nested objects that carry a name (postal addresses and the like).
func SchemaStringField(node map[string]any, field string) string {
	switch v := node[field].(type) {
	case string:
		return strings.TrimSpace(v)
	case map[string]any:
		// Nested objects count as present when non-empty.
		if len(v) > 0 {
			return "present"
		}
	}
	return ""
}

// HeadingCount returns the number of headings at the given level ("h1".."h6").
func (p PageSnapshot) HeadingCount(level string) int {
	return len(p.Headings[level])
}
