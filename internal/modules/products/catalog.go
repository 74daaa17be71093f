package products

import "strings"

// Bucket is one category section of the catalog page.
type Bucket struct {
	Category Category
	Items    []Product
}

func (b Bucket) Label() string { return b.Category.Label() }
func (b Bucket) Count() int    { return len(b.Items) }

// Filter returns the products whose name, category or description contain q,
// ignoring case. A blank query returns items unchanged.
func Filter(items []Product, q string) []Product {
	t := strings.ToLower(strings.TrimSpace(q))
	if t == "" {
		return items
	}
	out := make([]Product, 0, len(items))
	for _, p := range items {
		if containsFold(p.Name, t) || containsFold(p.Category, t) || containsFold(p.Description, t) {
			out = append(out, p)
		}
	}
	return out
}

func containsFold(s, lowerNeedle string) bool {
	if s == "" {
		return false
	}
	return strings.Contains(strings.ToLower(s), lowerNeedle)
}

// Group partitions items into the recognized categories followed by the
// catch-all bucket. Every bucket is present even when empty, and items keep
// their input order inside a bucket.
func Group(items []Product) []Bucket {
	buckets := make([]Bucket, 0, len(Categories)+1)
	index := make(map[Category]int, len(Categories)+1)
	for _, c := range append(append([]Category{}, Categories...), Unclassified) {
		index[c] = len(buckets)
		buckets = append(buckets, Bucket{Category: c, Items: []Product{}})
	}
	for _, p := range items {
		i := index[p.Bucket()]
		buckets[i].Items = append(buckets[i].Items, p)
	}
	return buckets
}

// FindByID returns a copy of the product with the given id.
func FindByID(items []Product, id string) (Product, bool) {
	if id == "" {
		return Product{}, false
	}
	for _, p := range items {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
