package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/MrSnakeDoc/startpage/internal/errs"
)

// keyCategories marks the current document shape. Without it the root object
// is the flat legacy category map.
const keyCategories = "categories"

// ParseDocument decodes a bookmarks document and classifies it.
//
// Two shapes are accepted: the current one with a "categories" object, and
// the original flat one where the root object itself maps category names to
// entries. Anything that is not a JSON object is a MalformedInputError.
func ParseDocument(data []byte) (*ConfigDocument, error) {
	fields, err := decodeObject(data)
	if err != nil {
		return nil, errs.NewMalformedInputError(fmt.Sprintf("bookmarks document: %v", err))
	}

	doc := &ConfigDocument{}
	if hasKey(fields, keyCategories) {
		if err := json.Unmarshal(data, doc); err != nil {
			return nil, errs.NewMalformedInputError(fmt.Sprintf("bookmarks document: %v", err))
		}
	} else if err := parseFlat(fields, doc); err != nil {
		return nil, errs.NewMalformedInputError(fmt.Sprintf("bookmarks document: %v", err))
	}

	doc.Kind = Classify(doc)
	return doc, nil
}

// parseFlat reads the original format, where the root object is the
// category map. It predates layout and settings, so every array-valued key is
// a category whatever its name; other values are ignored.
func parseFlat(fields []rawField, doc *ConfigDocument) error {
	for _, f := range fields {
		if !isArray(f.value) {
			continue
		}
		var entries []BookmarkEntry
		if err := json.Unmarshal(f.value, &entries); err != nil {
			return fmt.Errorf("category %q: %w", f.key, err)
		}
		doc.Categories.Set(f.key, entries)
	}
	return nil
}

// EncodeDocument renders doc as indented JSON, the on-disk format.
func EncodeDocument(doc *ConfigDocument, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode bookmarks document: %w", err)
	}
	return buf.Bytes(), nil
}

func hasKey(fields []rawField, key string) bool {
	for _, f := range fields {
		if f.key == key {
			return true
		}
	}
	return false
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
