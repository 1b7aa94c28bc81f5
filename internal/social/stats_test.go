package social

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	t.Run("nil document fails with no data loaded", func(t *testing.T) {
		_, err := Summarize(nil)
		assert.ErrorIs(t, err, ErrNoDataLoaded)
	})

	t.Run("sums scalar counts and posts", func(t *testing.T) {
		doc, err := Normalize(mustParse(t, `<network>
			<user id="1"><name>Alice</name>
				<followers>10</followers><following>5</following>
				<posts><post id="p1"/><post id="p2"/></posts>
			</user>
			<user id="2"><name>Bob</name>
				<followers>3</followers>
			</user>
		</network>`))
		require.NoError(t, err)

		s, err := Summarize(doc)

		require.NoError(t, err)
		assert.Equal(t, 2, s.TotalUsers)
		assert.Equal(t, 13, s.TotalFollowers)
		assert.Equal(t, 5, s.TotalFollowing)
		assert.Equal(t, 2, s.TotalPosts)
		assert.Equal(t, "1", s.SampleID)
		assert.Equal(t, "Alice", s.SampleName)
	})

	t.Run("sample name falls back to N/A", func(t *testing.T) {
		doc, err := Normalize(mustParse(t, `<network><user id="1"/></network>`))
		require.NoError(t, err)

		s, err := Summarize(doc)

		require.NoError(t, err)
		assert.Equal(t, "1", s.SampleID)
		assert.Equal(t, "N/A", s.SampleName)
	})

	t.Run("empty document samples N/A", func(t *testing.T) {
		doc, err := Normalize(mustParse(t, `<network/>`))
		require.NoError(t, err)

		s, err := Summarize(doc)

		require.NoError(t, err)
		assert.Equal(t, 0, s.TotalUsers)
		assert.Equal(t, "N/A", s.SampleID)
		assert.Equal(t, "N/A", s.SampleName)
	})
}

func TestComputeStatistics(t *testing.T) {
	t.Run("nil document fails with no data loaded", func(t *testing.T) {
		_, err := ComputeStatistics(nil)
		assert.ErrorIs(t, err, ErrNoDataLoaded)
	})

	t.Run("averages skip unknown ages", func(t *testing.T) {
		doc, err := Normalize(mustParse(t, `<network>
			<user id="1"><age>20</age><followers>10</followers>
				<posts><post id="p1"/></posts>
			</user>
			<user id="2"><age>30</age></user>
			<user id="3"><age>oops</age></user>
		</network>`))
		require.NoError(t, err)

		st, err := ComputeStatistics(doc)

		require.NoError(t, err)
		assert.Equal(t, 3, st.TotalUsers)
		assert.Equal(t, 1, st.TotalPosts)
		assert.Equal(t, 10, st.TotalFollowers)
		assert.InDelta(t, 25.0, st.AvgAge, 1e-9)
		assert.InDelta(t, 10.0/3.0, st.AvgFollowers, 1e-9)
		assert.InDelta(t, 1.0/3.0, st.AvgPosts, 1e-9)
	})

	t.Run("zero users yields all-zero statistics, not an error", func(t *testing.T) {
		doc, err := Normalize(mustParse(t, `<network/>`))
		require.NoError(t, err)

		st, err := ComputeStatistics(doc)

		require.NoError(t, err)
		assert.Equal(t, Statistics{}, st)
	})
}
