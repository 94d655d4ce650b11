package homepage

import (
	"context"
	"errors"

	"github.com/MrSnakeDoc/startpage/internal/domain"
)

// Template seeds the start page from a Homepage installation: bookmark groups
// first, then service groups. The result carries no layout, so the default
// placement applies until the first save.
type Template struct {
	BookmarksPath string
	ServicesPath  string
}

func (t Template) Load(context.Context) (*domain.ConfigDocument, error) {
	var groups []domain.Category

	if t.BookmarksPath != "" {
		config, err := LoadBookmarks(t.BookmarksPath)
		if err != nil {
			return nil, err
		}
		groups = append(groups, MapBookmarks(config)...)
	}
	if t.ServicesPath != "" {
		config, err := LoadServices(t.ServicesPath)
		if err != nil {
			return nil, err
		}
		groups = append(groups, MapServices(config)...)
	}
	if len(groups) == 0 {
		return nil, errors.New("no groups found in homepage config")
	}

	doc := &domain.ConfigDocument{}
	for _, g := range groups {
		// a group present in both files gets the entries of both
		existing, _ := doc.Categories.Get(g.Name)
		doc.Categories.Set(g.Name, append(append([]domain.BookmarkEntry{}, existing...), g.Entries...))
	}
	doc.Kind = domain.Classify(doc)
	return doc, nil
}
