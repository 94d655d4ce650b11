package homepage

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// templateVar matches Homepage substitutions such as {{HOMEPAGE_VAR_URL}}
var templateVar = regexp.MustCompile(`\{\{[^}]+\}\}`)

// LoadBookmarks reads and parses a bookmarks.yaml file
func LoadBookmarks(path string) (BookmarksConfig, error) {
	var config BookmarksConfig
	if err := readYAML(path, &config); err != nil {
		return nil, fmt.Errorf("bookmarks: %w", err)
	}
	return config, nil
}

// LoadServices reads and parses a services.yaml file
func LoadServices(path string) (ServicesConfig, error) {
	var config ServicesConfig
	if err := readYAML(path, &config); err != nil {
		return nil, fmt.Errorf("services: %w", err)
	}
	return config, nil
}

func readYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	// Substitutions are resolved by Homepage at runtime; they carry nothing
	// a start page can use.
	data = stripTemplateVariables(data)

	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// stripTemplateVariables replaces Homepage template variables with an empty string
// Example: {{HOMEPAGE_VAR_ADGUARD_USER}} -> ""
func stripTemplateVariables(data []byte) []byte {
	return templateVar.ReplaceAll(data, []byte(`""`))
}
