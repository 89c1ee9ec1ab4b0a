package model

import "github.com/secmon-lab/crashstats/pkg/domain/types"

// Release is one entry of the middleware's current versions list
type Release struct {
	ID        int           `json:"id"`
	Product   types.Product `json:"product"`
	Version   types.Version `json:"version"`
	Release   string        `json:"release"`
	Featured  bool          `json:"featured"`
	Throttle  FlexFloat     `json:"throttle"`
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
}

// CurrentVersions is the list of releases the middleware currently knows about
type CurrentVersions []Release

// Featured returns the featured versions of product in middleware order
func (cv CurrentVersions) Featured(product types.Product) types.Versions {
	versions := types.Versions{}
	for _, r := range cv {
		if r.Product == product && r.Featured {
			versions = append(versions, r.Version)
		}
	}
	return versions
}

// Products returns the distinct product names in middleware order
func (cv CurrentVersions) Products() []types.Product {
	var products []types.Product
	seen := make(map[types.Product]bool)
	for _, r := range cv {
		if !seen[r.Product] {
			seen[r.Product] = true
			products = append(products, r.Product)
		}
	}
	return products
}

// Throttles maps each version of product to its throttle percentage
func (cv CurrentVersions) Throttles(product types.Product) map[types.Version]float64 {
	throttles := make(map[types.Version]float64)
	for _, r := range cv {
		if r.Product == product {
			throttles[r.Version] = r.Throttle.Float64()
		}
	}
	return throttles
}
