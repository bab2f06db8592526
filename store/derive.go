package store

import (
	"sort"
	"strings"

	"digimarket/models"
)

type SortMode string

const (
	SortFeatured  SortMode = "featured"
	SortPriceLow  SortMode = "price-low"
	SortPriceHigh SortMode = "price-high"
	SortRating    SortMode = "rating"
)

// ValidSortMode reports whether mode is one of the four sort options.
func ValidSortMode(mode string) bool {
	switch SortMode(mode) {
	case SortFeatured, SortPriceLow, SortPriceHigh, SortRating:
		return true
	}
	return false
}

// ComputeStats blends a product's seed rating and count with its
// submitted reviews. With no matching reviews the seed values pass
// through unchanged. Ratings are accepted as-is; no validation here.
func ComputeStats(productID string, seedRating float64, seedCount int, reviews []models.Review) (float64, int) {
	var sum float64
	matching := 0
	for _, r := range reviews {
		if r.ProductID == productID {
			sum += float64(r.Rating)
			matching++
		}
	}
	if matching == 0 {
		return seedRating, seedCount
	}
	count := matching + seedCount
	return (sum + seedRating*float64(seedCount)) / float64(count), count
}

// DeriveView computes the ordered catalog view. Category and text
// filters are ANDed; the sentinel category and an empty query each
// match everything. The rating sort uses blended ratings, and all sorts
// are stable so featured order survives ties.
func DeriveView(products []models.Product, category, query string, mode SortMode, reviews []models.Review) []models.Product {
	q := strings.ToLower(query)
	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if category != "" && category != models.CategoryAll && string(p.Category) != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		result = append(result, p)
	}

	switch mode {
	case SortPriceLow:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case SortPriceHigh:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	case SortRating:
		blended := make(map[string]float64, len(result))
		for _, p := range result {
			rating, _ := ComputeStats(p.ID, p.Rating, p.Reviews, reviews)
			blended[p.ID] = rating
		}
		sort.SliceStable(result, func(i, j int) bool { return blended[result[i].ID] > blended[result[j].ID] })
	}
	return result
}
