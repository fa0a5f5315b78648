package listing

import (
	"encoding/json"
	"strconv"

	domlst "github.com/tradepost-io/tradepost/internal/domain/listing"
)

// buildHashFields converts a domain Listing into a flat map[string]string for HSET.
func buildHashFields(l *domlst.Listing) map[string]string {
	m := map[string]string{
		"title":       l.Title(),
		"description": l.Description(),
		"category":    l.Category(),
		"subcategory": l.Subcategory(),
		"price":       strconv.FormatFloat(l.Price(), 'f', -1, 64),
		"condition":   string(l.Condition()),
		"city":        l.City(),
		"province":    l.Province(),
		"location":    l.Location(),
		"status":      string(l.Status()),
		"created_at":  strconv.FormatInt(l.CreatedAt(), 10),
	}
	if len(l.Tags()) > 0 {
		// tags may contain arbitrary separators, so they go in as JSON
		if data, err := json.Marshal(l.Tags()); err == nil {
			m["tags"] = string(data)
		}
	}
	return m
}

// parseHashFields converts a flat hash map back into a domain Listing.
func parseHashFields(id string, m map[string]string) domlst.Listing {
	var tags []string
	if raw := m["tags"]; raw != "" {
		_ = json.Unmarshal([]byte(raw), &tags)
	}

	price, _ := strconv.ParseFloat(m["price"], 64)
	createdAt, _ := strconv.ParseInt(m["created_at"], 10, 64)

	return domlst.Reconstruct(
		id,
		m["title"],
		m["description"],
		tags,
		m["category"],
		m["subcategory"],
		price,
		domlst.Condition(m["condition"]),
		m["city"],
		m["province"],
		m["location"],
		domlst.Status(m["status"]),
		createdAt,
	)
}
