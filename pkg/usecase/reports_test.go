package usecase_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/crashstats/pkg/domain/interfaces"
	"github.com/secmon-lab/crashstats/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/crashstats/pkg/domain/model"
	"github.com/secmon-lab/crashstats/pkg/domain/types"
	"github.com/secmon-lab/crashstats/pkg/usecase"
)

var now = time.Date(2012, 5, 10, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

func currentVersions() model.CurrentVersions {
	return model.CurrentVersions{
		{Product: "Firefox", Version: "15.0a1", Featured: true, Throttle: 100},
		{Product: "Firefox", Version: "14.0a2", Featured: true, Throttle: 10},
		{Product: "Firefox", Version: "13.0", Featured: false, Throttle: 10},
		{Product: "Thunderbird", Version: "12.0", Featured: false},
	}
}

func newMiddleware() *mocks.MiddlewareMock {
	return &mocks.MiddlewareMock{
		CurrentVersionsFunc: func(ctx context.Context) (model.CurrentVersions, error) {
			return currentVersions(), nil
		},
		ADUByDayFunc: func(ctx context.Context, q interfaces.ADUQuery) (*model.ADUByDay, error) {
			return &model.ADUByDay{Product: q.Product, StartDate: types.FormatDate(q.Start), EndDate: types.FormatDate(q.End)}, nil
		},
		BugsFunc: func(ctx context.Context, signatures []types.Signature) (*model.BugAssociations, error) {
			return &model.BugAssociations{}, nil
		},
	}
}

func newReports(mw *mocks.MiddlewareMock, opts ...usecase.Option) *usecase.Reports {
	return usecase.NewReports(mw, nil, append([]usecase.Option{usecase.WithClock(clock)}, opts...)...)
}

func isBadRequest(t *testing.T, err error) {
	t.Helper()
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, model.ErrTagBadRequest))
}

func TestResolveBase(t *testing.T) {
	mw := newMiddleware()
	uc := newReports(mw)
	ctx := context.Background()

	base, err := uc.ResolveBase(ctx, "Firefox", "14.0a2;15.0a1")
	gt.NoError(t, err).Required()
	gt.Equal(t, base.Product, types.Product("Firefox"))
	gt.Equal(t, base.Versions, types.Versions{"15.0a1", "14.0a2"})

	base, err = uc.ResolveBase(ctx, "", "")
	gt.NoError(t, err).Required()
	gt.Equal(t, base.Product, types.Product("Firefox"))

	_, err = uc.ResolveBase(ctx, "SeaMonkey", "")
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, model.ErrTagNotFound))

	_, err = uc.ResolveBase(ctx, "Firefox", "99.0")
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, model.ErrTagNotFound))

	mw.CurrentVersionsFunc = func(ctx context.Context) (model.CurrentVersions, error) {
		return nil, goerr.New("down", goerr.T(model.ErrTagUpstream))
	}
	_, err = uc.ResolveBase(ctx, "Firefox", "")
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, model.ErrTagUpstream))
}

func TestProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("featured versions and default duration", func(t *testing.T) {
		mw := newMiddleware()
		uc := newReports(mw)
		base, err := uc.ResolveBase(ctx, "Firefox", "")
		gt.NoError(t, err).Required()

		page, err := uc.Products(ctx, base, "")
		gt.NoError(t, err).Required()
		gt.Equal(t, page.Duration, 7)
		gt.Equal(t, page.Versions, types.Versions{"15.0a1", "14.0a2"})
		gt.Equal(t, page.Version, types.Version(""))
		gt.NotNil(t, page.Graph)

		calls := mw.ADUByDayCalls()
		gt.A(t, calls).Length(1)
		q := calls[0].Q
		gt.Equal(t, q.Product, types.Product("Firefox"))
		gt.Equal(t, q.End, now)
		gt.Equal(t, q.Start, now.AddDate(0, 0, -8))
		gt.Equal(t, q.OSNames, []types.OSName{"Windows", "Mac", "Linux"})
	})

	t.Run("single version and allowed duration", func(t *testing.T) {
		mw := newMiddleware()
		uc := newReports(mw)
		base, err := uc.ResolveBase(ctx, "Firefox", "13.0")
		gt.NoError(t, err).Required()

		page, err := uc.Products(ctx, base, "14")
		gt.NoError(t, err).Required()
		gt.Equal(t, page.Duration, 14)
		gt.Equal(t, page.Version, types.Version("13.0"))
		gt.Equal(t, mw.ADUByDayCalls()[0].Q.Start, now.AddDate(0, 0, -15))
	})

	t.Run("unsupported duration falls back to 7", func(t *testing.T) {
		mw := newMiddleware()
		uc := newReports(mw)
		base, err := uc.ResolveBase(ctx, "Firefox", "")
		gt.NoError(t, err).Required()

		for _, d := range []string{"28", "abc", "-1"} {
			page, err := uc.Products(ctx, base, d)
			gt.NoError(t, err)
			gt.Equal(t, page.Duration, 7)
		}
	})
}

func TestTopCrasher(t *testing.T) {
	ctx := context.Background()

	tcbs := func() *model.TCBS {
		return &model.TCBS{Crashes: []model.TopCrash{
			{Signature: "FakeSignature1", Count: 10},
			{Signature: "FakeSignature2", Count: 5, Bugs: []int64{1}},
			{Signature: "FakeSignature3", Count: 1},
		}}
	}

	t.Run("merges bug associations", func(t *testing.T) {
		mw := newMiddleware()
		mw.TCBSFunc = func(ctx context.Context, q interfaces.TCBSQuery) (*model.TCBS, error) {
			return tcbs(), nil
		}
		mw.BugsFunc = func(ctx context.Context, signatures []types.Signature) (*model.BugAssociations, error) {
			return &model.BugAssociations{Hits: []model.BugAssociation{
				{Signature: "FakeSignature1", BugID: 123},
				{Signature: "FakeSignature1", BugID: 456},
				{Signature: "FakeSignature2", BugID: 789},
			}}, nil
		}
		uc := newReports(mw)
		base, err := uc.ResolveBase(ctx, "Firefox", "15.0a1")
		gt.NoError(t, err).Required()

		page, err := uc.TopCrasher(ctx, base, usecase.TopCrasherInput{Days: "14", CrashType: "plugin", OSName: "Mac OS X"})
		gt.NoError(t, err).Required()
		gt.Equal(t, page.Days, 14)
		gt.Equal(t, page.CrashType, types.CrashTypePlugin)
		gt.Equal(t, page.OSName, types.OSName("Mac OS X"))
		gt.Equal(t, page.Version, types.Version("15.0a1"))
		gt.Equal(t, page.TCBS.Crashes[0].Bugs, []int64{123, 456})
		gt.Equal(t, page.TCBS.Crashes[1].Bugs, []int64{1, 789})
		gt.Equal(t, len(page.TCBS.Crashes[2].Bugs), 0)

		q := mw.TCBSCalls()[0].Q
		gt.Equal(t, q.DurationHours, 14*24)
		gt.Equal(t, q.Limit, 300)
		gt.Equal(t, q.CrashType, types.CrashTypePlugin)
		gt.Equal(t, mw.BugsCalls()[0].Signatures, []types.Signature{"FakeSignature1", "FakeSignature2", "FakeSignature3"})
	})

	t.Run("invalid options fall back to defaults", func(t *testing.T) {
		mw := newMiddleware()
		mw.TCBSFunc = func(ctx context.Context, q interfaces.TCBSQuery) (*model.TCBS, error) {
			return tcbs(), nil
		}
		uc := newReports(mw)
		base, err := uc.ResolveBase(ctx, "Firefox", "15.0a1")
		gt.NoError(t, err).Required()

		page, err := uc.TopCrasher(ctx, base, usecase.TopCrasherInput{Days: "2", CrashType: "bogus", OSName: "BeOS"})
		gt.NoError(t, err).Required()
		gt.Equal(t, page.Days, 7)
		gt.Equal(t, page.CrashType, types.CrashTypeBrowser)
		gt.Equal(t, page.OSName, types.OSName(""))
	})

	t.Run("latest featured version", func(t *testing.T) {
		uc := newReports(newMiddleware())
		base, err := uc.ResolveBase(ctx, "Firefox", "")
		gt.NoError(t, err).Required()
		v, err := uc.LatestFeaturedVersion(base)
		gt.NoError(t, err)
		gt.Equal(t, v, types.Version("15.0a1"))

		base, err = uc.ResolveBase(ctx, "Thunderbird", "")
		gt.NoError(t, err).Required()
		_, err = uc.LatestFeaturedVersion(base)
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagNotFound))
	})
}

func TestDaily(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		mw := newMiddleware()
		uc := newReports(mw)
		base, err := uc.ResolveBase(ctx, "", "")
		gt.NoError(t, err).Required()

		page, err := uc.Daily(ctx, base, usecase.DailyInput{})
		gt.NoError(t, err).Required()
		gt.Equal(t, page.FormSelection, "by_version")
		gt.Equal(t, page.Product, types.Product("Firefox"))
		gt.Equal(t, page.Versions, types.Versions{"15.0a1", "14.0a2"})
		gt.Equal(t, page.HangType, types.ReportTypeAny)
		gt.Equal(t, page.EndDate, "2012-05-10")
		gt.Equal(t, page.StartDate, "2012-05-02")

		q := mw.ADUByDayCalls()[0].Q
		gt.Equal(t, q.ReportTypes, []types.ReportType{"any"})
		gt.Equal(t, q.OSNames, []types.OSName{"Windows", "Mac", "Linux"})
	})

	t.Run("by report type with explicit values", func(t *testing.T) {
		mw := newMiddleware()
		uc := newReports(mw)
		base, err := uc.ResolveBase(ctx, "", "")
		gt.NoError(t, err).Required()

		page, err := uc.Daily(ctx, base, usecase.DailyInput{
			FormSelection: "by_report_type",
			Product:       "Firefox",
			OSNames:       []string{"Windows"},
			HangType:      "crash",
			ReportTypes:   []string{"crash", "hang"},
			Throttle:      []string{"100.00"},
			Versions:      []string{"", "13.0", ""},
			DateStart:     "2012-05-01",
			DateEnd:       "2012-05-05",
		})
		gt.NoError(t, err).Required()
		gt.Equal(t, page.Versions, types.Versions{"13.0"})
		gt.Equal(t, page.StartDate, "2012-05-01")
		gt.Equal(t, page.EndDate, "2012-05-05")
		gt.Equal(t, page.Throttle, []string{"100.00"})

		q := mw.ADUByDayCalls()[0].Q
		gt.Equal(t, q.ReportTypes, []types.ReportType{"crash", "hang"})
		gt.Equal(t, q.OSNames, []types.OSName{"Windows"})
		gt.Equal(t, q.Start, time.Date(2012, 5, 1, 0, 0, 0, 0, time.UTC))
	})

	t.Run("bad dates", func(t *testing.T) {
		mw := newMiddleware()
		uc := newReports(mw)
		base, err := uc.ResolveBase(ctx, "", "")
		gt.NoError(t, err).Required()

		_, err = uc.Daily(ctx, base, usecase.DailyInput{DateEnd: "2012-13-01"})
		isBadRequest(t, err)
		_, err = uc.Daily(ctx, base, usecase.DailyInput{DateStart: "yesterday"})
		isBadRequest(t, err)
		gt.A(t, mw.ADUByDayCalls()).Length(0)
	})
}

func TestBuilds(t *testing.T) {
	mw := newMiddleware()
	mw.DailyBuildsFunc = func(ctx context.Context, product types.Product, version types.Version) ([]model.Build, error) {
		return []model.Build{
			{Product: "Firefox", Version: "15.0a1", Platform: "linux", BuildType: "Nightly", Date: "2012-05-08"},
			{Product: "Firefox", Version: "15.0a1", Platform: "win", BuildType: "Nightly", Date: "2012-05-08"},
			{Product: "Firefox", Version: "15.0a1", Platform: "win", BuildType: "Nightly", Date: "2012-05-09"},
			{Product: "Firefox", Version: "14.0a2", Platform: "win", BuildType: "Aurora", Date: "2012-05-09"},
		}, nil
	}
	uc := newReports(mw)
	ctx := context.Background()
	base, err := uc.ResolveBase(ctx, "Firefox", "15.0a1")
	gt.NoError(t, err).Required()

	page, err := uc.Builds(ctx, base, "15.0a1")
	gt.NoError(t, err).Required()
	gt.Equal(t, page.Version, types.Version("15.0a1"))
	gt.A(t, page.Groups).Length(2)
	gt.Equal(t, types.FormatDate(page.Groups[0].Date), "2012-05-09")
	gt.A(t, page.Groups[1].Builds).Length(2)

	gt.Equal(t, mw.DailyBuildsCalls()[0].Version, types.Version("15.0a1"))
}

func TestHangReport(t *testing.T) {
	ctx := context.Background()
	setup := func(totalPages int) (*mocks.MiddlewareMock, *usecase.Reports, *model.BaseData) {
		mw := newMiddleware()
		mw.HangReportFunc = func(ctx context.Context, q interfaces.HangReportQuery) (*model.HangReport, error) {
			return &model.HangReport{CurrentPage: q.Page, TotalPages: totalPages}, nil
		}
		uc := newReports(mw)
		base, err := uc.ResolveBase(ctx, "Firefox", "15.0a1")
		gt.NoError(t, err).Required()
		return mw, uc, base
	}

	t.Run("defaults", func(t *testing.T) {
		mw, uc, base := setup(3)
		page, err := uc.HangReport(ctx, base, usecase.HangReportInput{})
		gt.NoError(t, err).Required()
		gt.Equal(t, page.CurrentPage, 1)
		gt.Equal(t, page.Duration, 7)
		gt.False(t, page.PastLastPage())

		q := mw.HangReportCalls()[0].Q
		gt.Equal(t, q.ListSize, 5)
		gt.Equal(t, q.Version, types.Version("15.0a1"))
	})

	t.Run("page past the end", func(t *testing.T) {
		_, uc, base := setup(3)
		page, err := uc.HangReport(ctx, base, usecase.HangReportInput{Page: "5", Duration: "14"})
		gt.NoError(t, err).Required()
		gt.True(t, page.PastLastPage())
		gt.Equal(t, page.Duration, 14)
	})

	t.Run("empty report is not past the end", func(t *testing.T) {
		_, uc, base := setup(0)
		page, err := uc.HangReport(ctx, base, usecase.HangReportInput{Page: "2"})
		gt.NoError(t, err).Required()
		gt.False(t, page.PastLastPage())
	})

	t.Run("invalid parameters", func(t *testing.T) {
		mw, uc, base := setup(3)
		for _, in := range []usecase.HangReportInput{
			{Page: "one"},
			{Page: "0"},
			{Duration: "5"},
			{Duration: "seven"},
		} {
			_, err := uc.HangReport(ctx, base, in)
			isBadRequest(t, err)
		}
		gt.A(t, mw.HangReportCalls()).Length(0)
	})
}

func TestTopChangers(t *testing.T) {
	ctx := context.Background()
	mw := newMiddleware()
	mw.TCBSFunc = func(ctx context.Context, q interfaces.TCBSQuery) (*model.TCBS, error) {
		switch q.Version {
		case "15.0a1":
			return &model.TCBS{Crashes: []model.TopCrash{
				{Signature: "A", ChangeInRank: model.RankChange{Value: 3}},
				{Signature: "B", ChangeInRank: model.RankChange{New: true}},
				{Signature: "C", ChangeInRank: model.RankChange{Value: -2}},
			}}, nil
		default:
			return &model.TCBS{Crashes: []model.TopCrash{
				{Signature: "D", ChangeInRank: model.RankChange{Value: 3}},
				{Signature: "E", ChangeInRank: model.RankChange{Value: 10}},
				{Signature: "F", ChangeInRank: model.RankChange{Value: 0}},
			}}, nil
		}
	}
	uc := newReports(mw)
	base, err := uc.ResolveBase(ctx, "Firefox", "")
	gt.NoError(t, err).Required()

	page, err := uc.TopChangers(ctx, base, "14")
	gt.NoError(t, err).Required()
	gt.Equal(t, page.Duration, 14)
	gt.Equal(t, page.Versions, types.Versions{"15.0a1", "14.0a2"})
	gt.A(t, page.Changers).Length(2)
	gt.Equal(t, page.Changers[0].Change, 10)
	gt.Equal(t, page.Changers[1].Change, 3)
	gt.A(t, page.Changers[1].Crashes).Length(2)
	gt.Equal(t, page.Changers[1].Crashes[0].Signature, types.Signature("A"))

	calls := mw.TCBSCalls()
	gt.A(t, calls).Length(2)
	for _, c := range calls {
		gt.Equal(t, c.Q.CrashType, types.CrashTypeBrowser)
		gt.Equal(t, c.Q.DurationHours, 14*24)
	}

	_, err = uc.TopChangers(ctx, base, "5")
	isBadRequest(t, err)

	page, err = uc.TopChangers(ctx, base, "")
	gt.NoError(t, err)
	gt.Equal(t, page.Duration, 7)
}

const crashID = "11cb72f5-eb28-41e1-a8e4-849982120611"

func TestReportIndex(t *testing.T) {
	ctx := context.Background()
	plugin := "plugin"
	newMW := func(raw model.RawCrash) *mocks.MiddlewareMock {
		mw := newMiddleware()
		mw.ProcessedCrashFunc = func(ctx context.Context, id types.CrashID) (*model.ProcessedCrash, error) {
			return &model.ProcessedCrash{
				UUID:        id,
				Product:     "Firefox",
				Version:     "15.0a1",
				Signature:   "FakeSignature",
				ProcessType: &plugin,
				Dump:        "OS|Windows NT|6.1.7601 Service Pack 1\nModule|firefox.exe|15.0.0.4564|firefox.pdb|9A1E1DB7C08B4E2F9E4C8C8AE3B0D3E21|0x00400000|0x0041ffff|1\n0|0|firefox.exe|main|c:/main.cpp|10|0x0\n0|1|firefox.exe|start||||",
			}, nil
		}
		mw.BugsFunc = func(ctx context.Context, signatures []types.Signature) (*model.BugAssociations, error) {
			return &model.BugAssociations{Hits: []model.BugAssociation{{Signature: signatures[0], BugID: 222}}}, nil
		}
		mw.CommentsBySignatureFunc = func(ctx context.Context, signature types.Signature, start, end time.Time) (*model.Comments, error) {
			return &model.Comments{Total: 1, Hits: []model.Comment{{UserComments: "it crashed"}}}, nil
		}
		mw.RawCrashFunc = func(ctx context.Context, id types.CrashID) (model.RawCrash, error) {
			return raw, nil
		}
		mw.CrashPairsFunc = func(ctx context.Context, id types.CrashID, hangID types.HangID) (model.CrashPairs, error) {
			return model.CrashPairs{"22cb72f5-eb28-41e1-a8e4-849982120611"}, nil
		}
		return mw
	}

	t.Run("full report with crash pairs", func(t *testing.T) {
		mw := newMW(model.RawCrash{"HangID": json.RawMessage(`"hang-1"`), "ProductName": json.RawMessage(`"Firefox"`)})
		uc := newReports(mw)

		page, err := uc.ReportIndex(ctx, crashID)
		gt.NoError(t, err).Required()
		gt.Equal(t, page.ProcessType, types.ProcessTypePlugin)
		gt.Equal(t, page.Product, types.Product("Firefox"))
		gt.A(t, page.Dump.Modules).Length(1)
		gt.Equal(t, page.Dump.CrashingThread, 0)
		gt.A(t, page.CrashingThread().Frames).Length(2)
		gt.A(t, page.BugAssociations).Length(1)
		gt.Equal(t, page.Comments.Total, 1)
		gt.Equal(t, page.HangID, types.HangID("hang-1"))
		gt.A(t, page.CrashPairs).Length(1)

		cc := mw.CommentsBySignatureCalls()[0]
		gt.Equal(t, cc.End, now)
		gt.Equal(t, cc.Start, now.AddDate(0, 0, -14))
		gt.Equal(t, mw.CrashPairsCalls()[0].HangID, types.HangID("hang-1"))
	})

	t.Run("no hang id", func(t *testing.T) {
		mw := newMW(model.RawCrash{})
		uc := newReports(mw)

		page, err := uc.ReportIndex(ctx, crashID)
		gt.NoError(t, err).Required()
		gt.Equal(t, page.HangID, types.HangID(""))
		gt.A(t, mw.CrashPairsCalls()).Length(0)
	})

	t.Run("invalid crash id", func(t *testing.T) {
		mw := newMW(model.RawCrash{})
		uc := newReports(mw)
		_, err := uc.ReportIndex(ctx, "not-a-uuid")
		isBadRequest(t, err)
		gt.A(t, mw.ProcessedCrashCalls()).Length(0)
	})

	t.Run("unknown crash", func(t *testing.T) {
		mw := newMW(model.RawCrash{})
		mw.ProcessedCrashFunc = func(ctx context.Context, id types.CrashID) (*model.ProcessedCrash, error) {
			return nil, goerr.New("bad status", goerr.T(model.ErrTagUpstream), goerr.T(model.ErrTagNotFound))
		}
		uc := newReports(mw)
		_, err := uc.ReportIndex(ctx, crashID)
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagNotFound))
	})
}

func TestReportList(t *testing.T) {
	ctx := context.Background()
	mw := newMiddleware()
	mw.ReportListFunc = func(ctx context.Context, q interfaces.ReportListQuery) (*model.ReportList, error) {
		return &model.ReportList{Total: 1, Hits: []model.ReportListEntry{{Signature: q.Signature}}}, nil
	}
	uc := newReports(mw)

	page, err := uc.ReportList(ctx, usecase.ReportListInput{
		Signature: "FakeSignature", Version: "Firefox:15.0a1", Date: "2012-05-10", RangeValue: "7",
	})
	gt.NoError(t, err).Required()
	gt.Equal(t, page.StartDate, "2012-05-03")
	gt.Equal(t, page.RangeValue, 7)
	gt.Equal(t, page.ReportList.Total, 1)

	q := mw.ReportListCalls()[0].Q
	gt.Equal(t, q.ResultNumber, 250)
	gt.Equal(t, q.Versions, "Firefox:15.0a1")
	gt.Equal(t, q.Start, time.Date(2012, 5, 3, 0, 0, 0, 0, time.UTC))

	for _, in := range []usecase.ReportListInput{
		{Signature: "S", Date: "", RangeValue: "7"},
		{Signature: "S", Date: "2012-05-10", RangeValue: ""},
		{Signature: "S", Date: "10/05/2012", RangeValue: "7"},
		{Signature: "S", Date: "2012-05-10", RangeValue: "week"},
		{Signature: "", Date: "2012-05-10", RangeValue: "7"},
	} {
		_, err := uc.ReportList(ctx, in)
		isBadRequest(t, err)
	}
}

func TestQuery(t *testing.T) {
	ctx := context.Background()
	mw := newMiddleware()
	mw.SearchFunc = func(ctx context.Context, q interfaces.SearchQuery) (*model.SearchResult, error) {
		return &model.SearchResult{Total: 0}, nil
	}
	uc := newReports(mw)
	base, err := uc.ResolveBase(ctx, "", "")
	gt.NoError(t, err).Required()

	page, err := uc.Query(ctx, base, usecase.QueryInput{})
	gt.NoError(t, err).Required()
	gt.Equal(t, page.Product, types.Product("Firefox"))
	gt.Equal(t, page.Versions, types.Versions{"15.0a1", "14.0a2"})
	gt.Equal(t, page.StartDate, "2012-05-03")
	gt.Equal(t, page.EndDate, "2012-05-10")
	gt.Equal(t, page.Limit, 100)

	page, err = uc.Query(ctx, base, usecase.QueryInput{
		Product:   "Thunderbird",
		Versions:  []string{"12.0;13.0"},
		OSNames:   []string{"Linux"},
		DateStart: "2012-05-01",
		DateEnd:   "2012-05-04",
		Limit:     "20",
	})
	gt.NoError(t, err).Required()
	q := mw.SearchCalls()[1].Q
	gt.Equal(t, q.Product, types.Product("Thunderbird"))
	gt.Equal(t, q.Versions, types.Versions{"12.0", "13.0"})
	gt.Equal(t, q.OSNames, []types.OSName{"Linux"})
	gt.Equal(t, q.Limit, 20)
	gt.Equal(t, page.StartDate, "2012-05-01")

	for _, in := range []usecase.QueryInput{
		{DateStart: "bad"},
		{DateStart: "2012-05-09", DateEnd: "2012-05-01"},
		{Limit: "0"},
		{Limit: "many"},
	} {
		_, err := uc.Query(ctx, base, in)
		isBadRequest(t, err)
	}
}

func TestBugInfo(t *testing.T) {
	ctx := context.Background()
	bz := &mocks.BugzillaMock{
		BugInfoFunc: func(ctx context.Context, bugIDs []string, fields []string) (json.RawMessage, error) {
			return json.RawMessage(`{"bugs": [{"id": "123", "status": "NEW"}]}`), nil
		},
	}
	uc := newReports(newMiddleware(), usecase.WithBugzilla(bz))

	info, err := uc.BugInfo(ctx, "123, 456", "status,summary")
	gt.NoError(t, err).Required()
	gt.S(t, string(info)).Contains(`"NEW"`)
	call := bz.BugInfoCalls()[0]
	gt.Equal(t, call.BugIDs, []string{"123", "456"})
	gt.Equal(t, call.Fields, []string{"status", "summary"})

	_, err = uc.BugInfo(ctx, "", "status")
	isBadRequest(t, err)
	_, err = uc.BugInfo(ctx, "123", "")
	isBadRequest(t, err)
	_, err = uc.BugInfo(ctx, "12a", "status")
	isBadRequest(t, err)
	gt.A(t, bz.BugInfoCalls()).Length(1)
}

func TestPlotSignature(t *testing.T) {
	ctx := context.Background()
	mw := newMiddleware()
	mw.SignatureTrendFunc = func(ctx context.Context, q interfaces.SignatureTrendQuery) (*model.SignatureTrend, error) {
		return &model.SignatureTrend{
			Signature: q.Signature,
			StartDate: "2012-05-01",
			EndDate:   "2012-05-10",
			SignatureHistory: []model.SignatureHistory{
				{Date: "2012-05-01", Count: 5, PercentOfTotal: 0.25},
			},
		}, nil
	}
	uc := newReports(mw)
	base, err := uc.ResolveBase(ctx, "Firefox", "15.0a1")
	gt.NoError(t, err).Required()

	graph, err := uc.PlotSignature(ctx, base, "2012-05-01", "2012-05-10", "FakeSignature")
	gt.NoError(t, err).Required()
	gt.Equal(t, graph.Signature, types.Signature("FakeSignature"))
	gt.A(t, graph.Counts).Length(1)
	gt.Equal(t, graph.Counts[0][0], any(int64(1335830400000)))
	gt.Equal(t, graph.Percents[0][1], any(25.0))

	q := mw.SignatureTrendCalls()[0].Q
	gt.Equal(t, q.DurationHours, 9*24)
	gt.Equal(t, q.Versions, types.Versions{"15.0a1"})

	_, err = uc.PlotSignature(ctx, base, "2012-05-xx", "2012-05-10", "FakeSignature")
	isBadRequest(t, err)
	_, err = uc.PlotSignature(ctx, base, "2012-05-10", "2012-05-01", "FakeSignature")
	isBadRequest(t, err)
}

func TestSignatureSummary(t *testing.T) {
	ctx := context.Background()
	mw := newMiddleware()
	var mu sync.Mutex
	seen := map[model.SummaryReportType]bool{}
	mw.SignatureSummaryFunc = func(ctx context.Context, reportType model.SummaryReportType, signature types.Signature, start, end time.Time) ([]model.SignatureSummaryRow, error) {
		mu.Lock()
		seen[reportType] = true
		mu.Unlock()
		if reportType == model.SummaryProducts {
			return []model.SignatureSummaryRow{{ProductName: "Firefox", VersionString: "15.0a1", Percentage: 0.5, ReportCount: 10}}, nil
		}
		return []model.SignatureSummaryRow{{Category: string(reportType), Percentage: 0.5, ReportCount: 10}}, nil
	}
	uc := newReports(mw)

	summary, err := uc.SignatureSummary(ctx, "FakeSignature", "2012-05-01")
	gt.NoError(t, err).Required()
	gt.Equal(t, len(seen), 6)
	gt.Equal(t, summary.Architectures[0].Percentage, 50.0)
	gt.Equal(t, summary.ProductVersions[0].Percentage, 0.5)

	for _, c := range mw.SignatureSummaryCalls() {
		gt.Equal(t, c.Start, time.Date(2012, 5, 1, 0, 0, 0, 0, time.UTC))
		gt.Equal(t, c.End, now)
	}

	_, err = uc.SignatureSummary(ctx, "FakeSignature", "")
	isBadRequest(t, err)

	mw.SignatureSummaryFunc = func(ctx context.Context, reportType model.SummaryReportType, signature types.Signature, start, end time.Time) ([]model.SignatureSummaryRow, error) {
		if reportType == model.SummaryUptime {
			return nil, goerr.New("down", goerr.T(model.ErrTagUpstream))
		}
		return nil, nil
	}
	_, err = uc.SignatureSummary(ctx, "FakeSignature", "2012-05-01")
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, model.ErrTagUpstream))
}
