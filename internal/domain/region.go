package domain

import (
	"fmt"

	"github.com/MrSnakeDoc/startpage/internal/errs"
)

// Region is one of the two display areas of the dashboard.
type Region string

const (
	RegionTop    Region = "top"
	RegionBottom Region = "bottom"
)

// Regions lists the regions in display order.
var Regions = []Region{RegionTop, RegionBottom}

// ParseRegion validates a region name coming from a client.
func ParseRegion(s string) (Region, error) {
	switch Region(s) {
	case RegionTop, RegionBottom:
		return Region(s), nil
	default:
		return "", errs.NewMalformedInputError(fmt.Sprintf("unknown region %q", s))
	}
}

// Capacities holds the per-region bookmark limit for a category.
// A non-positive value means unbounded.
type Capacities struct {
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
}

// DefaultCapacities match the dashboard grid: three-column top cards and
// double-height bottom cards.
var DefaultCapacities = Capacities{Top: 12, Bottom: 24}

// For returns the capacity of region r.
func (c Capacities) For(r Region) int {
	if r == RegionBottom {
		return c.Bottom
	}
	return c.Top
}

// Truncate cuts entries down to capacity. Non-positive capacity leaves them
// untouched.
func Truncate(entries []BookmarkEntry, capacity int) []BookmarkEntry {
	if capacity > 0 && len(entries) > capacity {
		return entries[:capacity]
	}
	return entries
}
