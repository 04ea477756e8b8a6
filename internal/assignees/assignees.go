// Package assignees normalizes the multi-user assignment of a task.
//
// A task stores its assignees twice: a canonical list joined with ", " and a
// legacy single-user field that mirrors the first element. Every comparison
// goes through Parse, which prefers the list and falls back to the legacy field.
package assignees

import "strings"

const (
	Separator = ", "
	// None is displayed when a task has no assignee at all.
	None = "Nessuno"
)

type Assignment struct {
	List      []string
	Canonical string
	Primary   string
}

func (a Assignment) Empty() bool {
	return a.Primary == "" && len(a.List) == 0
}

// Normalize cleans the incoming list and derives the canonical string and the
// primary assignee. An explicit primary wins over the list head.
func Normalize(list []string, primary string) Assignment {
	a := Assignment{
		List:    dedupe(list),
		Primary: strings.TrimSpace(primary),
	}
	if len(a.List) > 0 {
		a.Canonical = strings.Join(a.List, Separator)
		if a.Primary == "" {
			a.Primary = a.List[0]
		}
	}
	return a
}

// Parse returns the usernames of a stored assignment.
func Parse(canonical, legacy string) []string {
	if strings.TrimSpace(canonical) != "" {
		return dedupe(strings.Split(canonical, Separator))
	}
	if legacy = strings.TrimSpace(legacy); legacy != "" {
		return []string{legacy}
	}
	return nil
}

// Added returns the usernames of next that are not part of prev, in next order.
func Added(prev, next []string) []string {
	seen := make(map[string]struct{}, len(prev))
	for _, u := range prev {
		seen[u] = struct{}{}
	}

	var added []string
	for _, u := range next {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		added = append(added, u)
	}
	return added
}

func Contains(canonical, legacy, username string) bool {
	for _, u := range Parse(canonical, legacy) {
		if u == username {
			return true
		}
	}
	return false
}

func Display(canonical, legacy string) string {
	if canonical != "" {
		return canonical
	}
	if legacy != "" {
		return legacy
	}
	return None
}

func dedupe(list []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(list))
	for _, u := range list {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}
