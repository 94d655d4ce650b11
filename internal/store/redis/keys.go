package redis

import (
	"fmt"
	"strings"
)

// KeyPrefixDocument is the prefix for document keys
const KeyPrefixDocument = "startpage:doc:"

// DocumentKey returns the Redis key for a document by name
func DocumentKey(name string) string {
	return KeyPrefixDocument + name
}

// DocumentName extracts the document name from a Redis key
func DocumentName(key string) (string, error) {
	name, ok := strings.CutPrefix(key, KeyPrefixDocument)
	if !ok || name == "" {
		return "", fmt.Errorf("invalid document key: %s", key)
	}
	return name, nil
}
