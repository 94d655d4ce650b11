package homepage

// Both Homepage files are lists of single-key maps, so group and item order
// survive decoding:
//
//	- Group:
//	    - Item:
//	        href: https://...

// BookmarksConfig is the root of bookmarks.yaml. Each item maps to a
// one-element list holding its properties.
type BookmarksConfig []map[string][]map[string][]BookmarkProps

type BookmarkProps struct {
	Icon string `yaml:"icon"`
	Abbr string `yaml:"abbr"`
	Href string `yaml:"href"`
}

// ServicesConfig is the root of services.yaml. Each item maps directly to
// its properties.
type ServicesConfig []map[string][]map[string]ServiceProps

// ServiceProps holds the service fields a start page can link to
type ServiceProps struct {
	Href        string `yaml:"href"`
	Icon        string `yaml:"icon,omitempty"`
	Description string `yaml:"description,omitempty"`
}
