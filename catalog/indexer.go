package catalog

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/Voltify-Social/voltify-panel-backend/models"
)

// BuildCategories derives the ordered category list from the catalog feed.
// A category's position is the position of its first record in the feed;
// later records with the same trimmed key are ignored. Records whose
// trimmed category is empty never produce an entry.
func BuildCategories(records []models.ServiceRecord) []models.CategoryEntry {
	seen := make(map[string]struct{}, len(records))
	entries := make([]models.CategoryEntry, 0, 16)

	for _, r := range records {
		key := strings.TrimSpace(r.Category)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		entries = append(entries, models.CategoryEntry{
			Key:   key,
			Label: r.Category,
			Badge: BadgeFor(r.Category),
		})
	}
	return entries
}

// BadgeFor derives the decorative category badge: the label's leading token
// (up to the first space) when it is at most 4 characters, otherwise none.
// Cosmetic only; equality and ordering never look at it.
func BadgeFor(label string) string {
	token, _, _ := strings.Cut(label, " ")
	if len(token) > 4 {
		return ""
	}
	return token
}

// ServicesInCategory returns the records whose trimmed category equals key,
// sorted ascending by provider service id.
func ServicesInCategory(records []models.ServiceRecord, key string) []models.ServiceRecord {
	out := make([]models.ServiceRecord, 0, 32)
	for _, r := range records {
		if strings.TrimSpace(r.Category) == key {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return CompareServiceIDs(out[i].ProviderServiceID, out[j].ProviderServiceID) < 0
	})
	return out
}

// CompareServiceIDs orders heterogeneous provider ids: numerically when both
// sides parse as finite numbers, lexicographically otherwise.
func CompareServiceIDs(a, b string) int {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil &&
		!math.IsInf(fa, 0) && !math.IsNaN(fa) &&
		!math.IsInf(fb, 0) && !math.IsNaN(fb) {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a, b)
}
