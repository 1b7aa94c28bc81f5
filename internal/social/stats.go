package social

import (
	"github.com/youssefmaged/snxml/utils"
)

// Summary is the quick-display projection: totals plus a sample of the
// first user for at-a-glance output.
type Summary struct {
	TotalUsers     int
	TotalFollowers int
	TotalFollowing int
	TotalPosts     int
	SampleID       string
	SampleName     string
}

// Statistics is the full aggregate view. Follower/following totals come
// from the scalar count fields, not from edges.
type Statistics struct {
	TotalUsers     int
	TotalPosts     int
	TotalFollowers int
	TotalFollowing int
	AvgAge         float64
	AvgFollowers   float64
	AvgPosts       float64
}

// Summarize produces the quick-display totals. The sample reports "N/A"
// placeholders when the document has no users or the first user has no name.
func Summarize(doc *Document) (Summary, error) {
	if doc == nil {
		return Summary{}, ErrNoDataLoaded
	}

	s := Summary{
		TotalUsers: len(doc.Order),
		SampleID:   "N/A",
		SampleName: "N/A",
	}

	for _, id := range doc.Order {
		u := doc.Users[id]
		s.TotalFollowers += u.FollowersCount
		s.TotalFollowing += u.FollowingCount
		s.TotalPosts += len(u.Posts)
	}

	if len(doc.Order) > 0 {
		first := doc.Users[doc.Order[0]]
		s.SampleID = first.ID
		if first.Name != "" {
			s.SampleName = first.Name
		}
	}

	return s, nil
}

// ComputeStatistics produces totals and averages. A document with zero
// users yields all-zero statistics, not an error; only a missing document
// fails. Unknown ages are excluded from the age average.
func ComputeStatistics(doc *Document) (Statistics, error) {
	if doc == nil {
		return Statistics{}, ErrNoDataLoaded
	}

	st := Statistics{TotalUsers: len(doc.Order)}

	var ages []int
	for _, id := range doc.Order {
		u := doc.Users[id]
		st.TotalPosts += len(u.Posts)
		st.TotalFollowers += u.FollowersCount
		st.TotalFollowing += u.FollowingCount
		if u.Age != AgeUnknown {
			ages = append(ages, u.Age)
		}
	}

	st.AvgAge = utils.CalculateMean(ages)
	st.AvgFollowers = utils.Ratio(st.TotalFollowers, st.TotalUsers)
	st.AvgPosts = utils.Ratio(st.TotalPosts, st.TotalUsers)

	return st, nil
}
