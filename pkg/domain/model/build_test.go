package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/crashstats/pkg/domain/model"
	"github.com/secmon-lab/crashstats/pkg/domain/types"
)

func TestGroupNightlyBuilds(t *testing.T) {
	builds := []model.Build{
		{Version: "15.0a1", Platform: "linux", BuildType: "Nightly", Date: "2012-05-01", BuildID: 20120501030510},
		{Version: "15.0a1", Platform: "windows", BuildType: "Nightly", Date: "2012-05-01", BuildID: 20120501030511},
		{Version: "14.0a2", Platform: "linux", BuildType: "Aurora", Date: "2012-05-02"},
		{Version: "15.0a1", Platform: "mac", BuildType: "Nightly", Date: "2012-05-02"},
		{Version: "14.0a1", Platform: "mac", BuildType: "Nightly", Date: "2012-05-02"},
		{Version: "15.0a1", Platform: "mac", BuildType: "Nightly", Date: "not a date"},
	}

	groups := model.GroupNightlyBuilds(builds)
	gt.Equal(t, len(groups), 3)

	gt.Equal(t, groups[0].Date, time.Date(2012, 5, 2, 0, 0, 0, 0, time.UTC))
	gt.Equal(t, groups[0].Version, types.Version("15.0a1"))
	gt.Equal(t, groups[1].Version, types.Version("14.0a1"))

	gt.Equal(t, groups[2].Date, time.Date(2012, 5, 1, 0, 0, 0, 0, time.UTC))
	gt.Equal(t, len(groups[2].Builds), 2)
	gt.Equal(t, groups[2].Builds[0].Platform, "linux")
	gt.Equal(t, groups[2].Builds[1].Platform, "windows")
}

func TestGroupNightlyBuilds_Empty(t *testing.T) {
	groups := model.GroupNightlyBuilds(nil)
	gt.Equal(t, len(groups), 0)
}
