package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/crashstats/pkg/domain/types"
)

// BaseData is the product and version context shared by every report page
type BaseData struct {
	CurrentVersions CurrentVersions
	Product         types.Product
	Versions        types.Versions
}

// ResolveBase matches the product and ';' separated versions taken from the
// URL against the current versions. An empty product falls back to
// defaultProduct. A product with no release, or any version that is not a
// release of the product, is a not-found error.
func ResolveBase(current CurrentVersions, product types.Product, versions string, defaultProduct types.Product) (*BaseData, error) {
	base := &BaseData{CurrentVersions: current}
	pending := types.ParseVersions(versions)

	for _, release := range current {
		if product == "" || release.Product != product {
			continue
		}
		base.Product = product

		for i, v := range pending {
			if v == release.Version {
				pending = append(pending[:i], pending[i+1:]...)
				base.Versions = append(base.Versions, release.Version)
				break
			}
		}
	}

	if product == "" {
		base.Product = defaultProduct
		return base, nil
	}

	if base.Product != product {
		return nil, goerr.New("Not a recognized product",
			goerr.V("product", product),
			goerr.T(ErrTagNotFound))
	}

	if len(pending) > 0 {
		return nil, goerr.New("Not a recognized version for that product",
			goerr.V("product", product),
			goerr.V("versions", pending.String()),
			goerr.T(ErrTagNotFound))
	}

	return base, nil
}

// Featured returns the featured versions of the resolved product
func (b *BaseData) Featured() types.Versions {
	return b.CurrentVersions.Featured(b.Product)
}
