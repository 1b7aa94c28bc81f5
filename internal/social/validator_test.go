package social

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run("nil tree fails with no data loaded", func(t *testing.T) {
		_, _, err := Validate(nil)
		assert.ErrorIs(t, err, ErrNoDataLoaded)
	})

	t.Run("clean document yields no issues", func(t *testing.T) {
		errs, warnings, err := Validate(mustParse(t, `<network>
			<user id="1"><name>Alice</name></user>
			<user id="2"><name>Bob</name>
				<followers><follower><id>1</id></follower></followers>
			</user>
		</network>`))

		require.NoError(t, err)
		assert.Empty(t, errs)
		assert.Empty(t, warnings)
	})

	t.Run("missing id reported by ordinal and skips other checks", func(t *testing.T) {
		errs, warnings, err := Validate(mustParse(t, `<network>
			<user id="1"><name>Alice</name></user>
			<user><posts><post/></posts></user>
		</network>`))

		require.NoError(t, err)
		assert.Equal(t, []string{"User #2: Missing user ID"}, errs)
		assert.Empty(t, warnings) // no post check once id is unknown
	})

	t.Run("missing name is an error", func(t *testing.T) {
		errs, _, err := Validate(mustParse(t, `<network><user id="7"/></network>`))

		require.NoError(t, err)
		assert.Equal(t, []string{"User 7: Missing name"}, errs)
	})

	t.Run("post without id is a warning", func(t *testing.T) {
		errs, warnings, err := Validate(mustParse(t, `<network>
			<user id="1"><name>Alice</name>
				<posts><post id="p1"/><post/></posts>
			</user>
		</network>`))

		require.NoError(t, err)
		assert.Empty(t, errs)
		assert.Equal(t, []string{"User 1: Post missing ID"}, warnings)
	})

	t.Run("dangling connection target warns once, never errors", func(t *testing.T) {
		errs, warnings, err := Validate(mustParse(t, `<network>
			<user id="1"><name>Alice</name>
				<connections><friend user_id="99"/></connections>
			</user>
		</network>`))

		require.NoError(t, err)
		assert.Empty(t, errs)
		assert.Equal(t, []string{"User 1: Follower ID 99 does not exist in network"}, warnings)
	})

	t.Run("targets are checked against ids declared later", func(t *testing.T) {
		errs, warnings, err := Validate(mustParse(t, `<network>
			<user id="1"><name>Alice</name>
				<followers><follower><id>2</id></follower></followers>
			</user>
			<user id="2"><name>Bob</name></user>
		</network>`))

		require.NoError(t, err)
		assert.Empty(t, errs)
		assert.Empty(t, warnings)
	})

	t.Run("each dangling occurrence warns separately", func(t *testing.T) {
		_, warnings, err := Validate(mustParse(t, `<network>
			<user id="1"><name>Alice</name>
				<followers><follower><id>9</id></follower></followers>
				<connections><friend user_id="9"/></connections>
			</user>
		</network>`))

		require.NoError(t, err)
		assert.Len(t, warnings, 2)
	})
}
