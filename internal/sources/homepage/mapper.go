package homepage

import (
	"net/url"
	"sort"
	"strings"

	"github.com/MrSnakeDoc/startpage/internal/domain"
)

// MapBookmarks converts bookmarks.yaml groups to categories, keeping file order.
// Items without an href are skipped; a group may end up empty.
func MapBookmarks(config BookmarksConfig) []domain.Category {
	var out []domain.Category
	for _, group := range config {
		for _, groupName := range sortedKeys(group) {
			entries := []domain.BookmarkEntry{}
			for _, item := range group[groupName] {
				for _, name := range sortedKeys(item) {
					props := item[name]
					// Each bookmark has a list with a single entry
					if len(props) == 0 || props[0].Href == "" {
						continue
					}
					if name == "" {
						name = props[0].Abbr
					}
					entries = append(entries, domain.BookmarkEntry{
						Name:    name,
						URL:     props[0].Href,
						IconURL: iconURL(props[0].Icon),
					})
				}
			}
			out = append(out, domain.Category{Name: groupName, Entries: entries})
		}
	}
	return out
}

// MapServices converts services.yaml groups to categories. Services without a
// usable absolute URL are skipped.
func MapServices(config ServicesConfig) []domain.Category {
	var out []domain.Category
	for _, group := range config {
		for _, groupName := range sortedKeys(group) {
			entries := []domain.BookmarkEntry{}
			for _, item := range group[groupName] {
				for _, name := range sortedKeys(item) {
					props := item[name]
					parsed, err := url.Parse(props.Href)
					if err != nil || parsed.Hostname() == "" {
						continue
					}
					entries = append(entries, domain.BookmarkEntry{
						Name:    name,
						URL:     props.Href,
						IconURL: iconURL(props.Icon),
					})
				}
			}
			out = append(out, domain.Category{Name: groupName, Entries: entries})
		}
	}
	return out
}

// iconURL keeps icons that are links. Homepage icon names like "adguard.svg"
// are resolved by Homepage itself and mean nothing here.
func iconURL(icon string) string {
	if strings.HasPrefix(icon, "http://") || strings.HasPrefix(icon, "https://") {
		return icon
	}
	return ""
}

// sortedKeys gives a stable order for the rare map with several keys.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
