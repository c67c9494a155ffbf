package expiry

import "github.com/Deblish/fridge-app/internal/model"

// Buckets groups items by expiry urgency. The buckets are mutually
// exclusive; items expiring after tomorrow appear in none of them.
type Buckets struct {
	Expired       []model.Item
	ExpiringToday []model.Item
	ExpiringSoon  []model.Item
}

// Classify partitions items into expiry buckets relative to the given today
// and tomorrow date strings. Comparison is lexicographic, which matches
// chronological order for zero-padded YYYY-MM-DD dates.
func Classify(items []model.Item, today, tomorrow string) Buckets {
	var b Buckets
	for _, item := range items {
		switch {
		case item.ExpiryDate < today:
			b.Expired = append(b.Expired, item)
		case item.ExpiryDate == today:
			b.ExpiringToday = append(b.ExpiringToday, item)
		case item.ExpiryDate == tomorrow:
			b.ExpiringSoon = append(b.ExpiringSoon, item)
		}
	}
	return b
}

// CountByFridge returns the number of items per storage location, counting
// every item regardless of expiry.
func CountByFridge(items []model.Item) map[string]int {
	counts := make(map[string]int)
	for _, item := range items {
		counts[item.Fridge]++
	}
	return counts
}
