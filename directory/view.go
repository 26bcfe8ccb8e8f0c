package directory

import (
	"sort"
	"strings"

	"beyondylc/models"
)

// Sort keys accepted by ApplyView.
const (
	SortNewest       = "newest"
	SortOldest       = "oldest"
	SortMostMembers  = "most_members"
	SortLeastMembers = "least_members"
)

// FilterAll disables a category or status filter.
const FilterAll = "all"

// ViewParams are the directory's visible-subset parameters.
type ViewParams struct {
	Search   string
	Category string
	Status   string
	Sort     string
}

// ApplyView projects a cache snapshot onto the visible, ordered subset.
// Pure function: the input slice is never mutated. An entry matches the
// search text if it is a case-insensitive substring of the title,
// description or problem statement. Category and status are exact-match
// or "all"; status values are normalized before comparison, so both
// terminal-state spellings filter as "completed". Sorts are stable, so
// tied entries keep their relative input order.
func ApplyView(entries []models.DirectoryEntry, params ViewParams) []models.DirectoryEntry {
	visible := make([]models.DirectoryEntry, 0, len(entries))

	search := strings.ToLower(strings.TrimSpace(params.Search))
	status := normalizeStatusFilter(params.Status)

	for _, entry := range entries {
		if !matchesSearch(entry, search) {
			continue
		}
		if params.Category != "" && params.Category != FilterAll && entry.Category != params.Category {
			continue
		}
		if status != "" && string(entry.Status) != status {
			continue
		}
		visible = append(visible, entry)
	}

	switch params.Sort {
	case SortOldest:
		sort.SliceStable(visible, func(i, j int) bool {
			return visible[i].CreatedAt.Before(visible[j].CreatedAt)
		})
	case SortMostMembers:
		sort.SliceStable(visible, func(i, j int) bool {
			return visible[i].MemberCount > visible[j].MemberCount
		})
	case SortLeastMembers:
		sort.SliceStable(visible, func(i, j int) bool {
			return visible[i].MemberCount < visible[j].MemberCount
		})
	case SortNewest:
		sort.SliceStable(visible, func(i, j int) bool {
			return visible[i].CreatedAt.After(visible[j].CreatedAt)
		})
	default:
		// Cache order is already newest-first; leave it alone.
	}

	return visible
}

func matchesSearch(entry models.DirectoryEntry, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(entry.Title), search) ||
		strings.Contains(strings.ToLower(entry.Description), search) ||
		strings.Contains(strings.ToLower(entry.ProblemStatement), search)
}

func normalizeStatusFilter(raw string) string {
	if raw == "" || raw == FilterAll {
		return ""
	}
	status, err := models.ParseStatus(raw)
	if err != nil {
		// Unknown filter value matches nothing that parses, compare raw.
		return raw
	}
	return string(status)
}
