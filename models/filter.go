package models

import (
	"fmt"
	"time"
)

// SortKey identifies which VideoRecord field a dashboard sort uses.
type SortKey string

const (
	SortByDate       SortKey = "date"
	SortByViews      SortKey = "views"
	SortByLikes      SortKey = "likes"
	SortByComments   SortKey = "comments"
	SortByEngagement SortKey = "engagement"
)

// ParseSortKey validates a user-supplied sort key. The empty string
// maps to the default publication-date ordering.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case "":
		return SortByDate, nil
	case SortByDate, SortByViews, SortByLikes, SortByComments, SortByEngagement:
		return SortKey(s), nil
	}
	return "", fmt.Errorf("unknown sort key %q", s)
}

// FilterOptions holds the dashboard's current control values. A nil
// date bound means unbounded on that side; both bounds are inclusive.
type FilterOptions struct {
	From       *time.Time
	To         *time.Time
	SortKey    SortKey
	Descending bool
}
