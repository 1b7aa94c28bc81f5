package social

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exportFixture = `<network>
	<user id="1"><name>Alice</name>
		<posts>
			<post id="p1"><content>hi</content><timestamp>2024-01-01</timestamp><likes>4</likes></post>
			<post><content>untitled</content></post>
		</posts>
		<followers><follower><id>2</id></follower></followers>
		<connections><friend user_id="3"/></connections>
	</user>
	<user id="2"/>
	<user><name>No ID</name></user>
</network>`

func TestExport(t *testing.T) {
	t.Run("nil document fails with no data loaded", func(t *testing.T) {
		_, _, err := Export(nil)
		assert.ErrorIs(t, err, ErrNoDataLoaded)
	})

	t.Run("projects id, name, posts, followers", func(t *testing.T) {
		doc, err := Normalize(mustParse(t, exportFixture))
		require.NoError(t, err)

		out, summary, err := Export(doc)

		require.NoError(t, err)
		assert.Equal(t, "Successfully exported 2 users to JSON", summary)
		require.Len(t, out.Users, 2) // user without id excluded entirely

		alice := out.Users[0]
		assert.Equal(t, "1", alice.ID)
		require.NotNil(t, alice.Name)
		assert.Equal(t, "Alice", *alice.Name)
		assert.Equal(t, []string{"2", "3"}, alice.Followers)

		require.Len(t, alice.Posts, 2)
		require.NotNil(t, alice.Posts[0].ID)
		assert.Equal(t, "p1", *alice.Posts[0].ID)
		assert.Equal(t, 4, alice.Posts[0].Likes)
		assert.Nil(t, alice.Posts[1].ID)

		bob := out.Users[1]
		assert.Nil(t, bob.Name)
		assert.Empty(t, bob.Posts)
		assert.Empty(t, bob.Followers)
	})

	t.Run("JSON shape uses null for absent fields and arrays for empty lists", func(t *testing.T) {
		doc, err := Normalize(mustParse(t, exportFixture))
		require.NoError(t, err)

		out, _, err := Export(doc)
		require.NoError(t, err)

		data, err := json.Marshal(out)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))

		users := decoded["users"].([]any)
		require.Len(t, users, 2)

		bob := users[1].(map[string]any)
		assert.Nil(t, bob["name"])
		assert.Equal(t, []any{}, bob["posts"])
		assert.Equal(t, []any{}, bob["followers"])
	})

	t.Run("exported followers cover the original edge targets", func(t *testing.T) {
		doc, err := Normalize(mustParse(t, exportFixture))
		require.NoError(t, err)

		out, _, err := Export(doc)
		require.NoError(t, err)

		fromEdges := make(map[string]bool)
		for _, e := range doc.Edges {
			fromEdges[e.From+"->"+e.To] = true
		}
		fromExport := make(map[string]bool)
		for _, u := range out.Users {
			for _, f := range u.Followers {
				fromExport[u.ID+"->"+f] = true
			}
		}
		assert.Equal(t, fromEdges, fromExport)
	})
}

func TestWriteJSON(t *testing.T) {
	t.Run("writes indented file and reports the path", func(t *testing.T) {
		doc, err := Normalize(mustParse(t, exportFixture))
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "out.json")
		summary, err := WriteJSON(doc, path)

		require.NoError(t, err)
		assert.Contains(t, summary, "Successfully exported 2 users to JSON")
		assert.Contains(t, summary, path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var out ExportDocument
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Len(t, out.Users, 2)
	})

	t.Run("surfaces write failure", func(t *testing.T) {
		doc, err := Normalize(mustParse(t, `<network><user id="1"/></network>`))
		require.NoError(t, err)

		_, err = WriteJSON(doc, filepath.Join(t.TempDir(), "missing", "out.json"))
		assert.Error(t, err)
	})
}
