package model_test

import (
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/crashstats/pkg/domain/model"
	"github.com/secmon-lab/crashstats/pkg/domain/types"
)

func TestResolveBase(t *testing.T) {
	current := getTestCurrentVersions()

	t.Run("Product and versions resolved", func(t *testing.T) {
		base, err := model.ResolveBase(current, "Firefox", "14.0a2;15.0a1", "Firefox")
		gt.NoError(t, err)
		gt.Equal(t, base.Product, types.Product("Firefox"))
		// Versions follow the order of the current versions list
		gt.Equal(t, base.Versions, types.Versions{"15.0a1", "14.0a2"})
		gt.Equal(t, len(base.CurrentVersions), len(current))
	})

	t.Run("Product without versions", func(t *testing.T) {
		base, err := model.ResolveBase(current, "Thunderbird", "", "Firefox")
		gt.NoError(t, err)
		gt.Equal(t, base.Product, types.Product("Thunderbird"))
		gt.Equal(t, len(base.Versions), 0)
		gt.Equal(t, base.Featured(), types.Versions{"15.0a1"})
	})

	t.Run("No product falls back to default", func(t *testing.T) {
		base, err := model.ResolveBase(current, "", "", "Firefox")
		gt.NoError(t, err)
		gt.Equal(t, base.Product, types.Product("Firefox"))
		gt.Equal(t, base.Featured(), types.Versions{"15.0a1", "14.0a2"})
	})

	t.Run("Unknown product", func(t *testing.T) {
		base, err := model.ResolveBase(current, "Netscape", "", "Firefox")
		gt.Error(t, err)
		gt.Nil(t, base)
		gt.True(t, goerr.HasTag(err, model.ErrTagNotFound))
		gt.S(t, err.Error()).Contains("Not a recognized product")
	})

	t.Run("Version of another product", func(t *testing.T) {
		_, err := model.ResolveBase(current, "Thunderbird", "14.0a2", "Firefox")
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagNotFound))
		gt.S(t, err.Error()).Contains("Not a recognized version for that product")
	})

	t.Run("One unknown version among known ones", func(t *testing.T) {
		_, err := model.ResolveBase(current, "Firefox", "15.0a1;99.0", "Firefox")
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagNotFound))
	})

	t.Run("Duplicate version is only matched once", func(t *testing.T) {
		_, err := model.ResolveBase(current, "Firefox", "15.0a1;15.0a1", "Firefox")
		gt.Error(t, err)
	})
}
