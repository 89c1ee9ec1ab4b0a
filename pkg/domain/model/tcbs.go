package model

import "github.com/secmon-lab/crashstats/pkg/domain/types"

// TCBS is the top crashers by signature report
type TCBS struct {
	Crashes              []TopCrash `json:"crashes"`
	TotalNumberOfCrashes FlexInt    `json:"totalNumberOfCrashes"`
	TotalPercentage      FlexFloat  `json:"totalPercentage"`
	EndDate              string     `json:"end_date"`
	StartDate            string     `json:"start_date"`
}

// TopCrash is one signature row of a TCBS report
type TopCrash struct {
	Signature              types.Signature `json:"signature"`
	Count                  FlexInt         `json:"count"`
	CurrentRank            FlexInt         `json:"currentRank"`
	PreviousRank           FlexInt         `json:"previousRank"`
	ChangeInRank           RankChange      `json:"changeInRank"`
	PercentOfTotal         FlexFloat       `json:"percentOfTotal"`
	PreviousPercentOfTotal FlexFloat       `json:"previousPercentOfTotal"`
	ChangeInPercentOfTotal FlexFloat       `json:"changeInPercentOfTotal"`
	WinCount               FlexInt         `json:"win_count"`
	MacCount               FlexInt         `json:"mac_count"`
	LinuxCount             FlexInt         `json:"linux_count"`
	HangCount              FlexInt         `json:"hang_count"`
	PluginCount            FlexInt         `json:"plugin_count"`
	ContentCount           FlexInt         `json:"content_count"`
	FirstReport            string          `json:"first_report"`
	StartupPercent         FlexFloat       `json:"startup_percent"`
	Bugs                   []int64         `json:"bugs,omitempty"`
}

// Signatures returns the signatures of all crashes in report order
func (t *TCBS) Signatures() []types.Signature {
	sigs := make([]types.Signature, 0, len(t.Crashes))
	for _, c := range t.Crashes {
		sigs = append(sigs, c.Signature)
	}
	return sigs
}

// AttachBugs appends the associated bug IDs to each crash's Bugs
func (t *TCBS) AttachBugs(associations []BugAssociation) {
	bugs := make(map[types.Signature][]int64)
	for _, a := range associations {
		bugs[a.Signature] = append(bugs[a.Signature], a.BugID.Int64())
	}

	for i := range t.Crashes {
		if ids, ok := bugs[t.Crashes[i].Signature]; ok {
			t.Crashes[i].Bugs = append(t.Crashes[i].Bugs, ids...)
		}
	}
}

// BugAssociation links a signature to a bug
type BugAssociation struct {
	Signature types.Signature `json:"signature"`
	BugID     FlexInt         `json:"bug_id"`
}

// BugAssociations is the middleware's bugs-by-signatures answer
type BugAssociations struct {
	Hits  []BugAssociation `json:"bug_associations"`
	Total int              `json:"total"`
}
