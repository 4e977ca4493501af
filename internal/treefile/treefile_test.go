package treefile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rroute"
	"github.com/rohanthewiz/rroute/core/ids"
	"github.com/rohanthewiz/rroute/internal/treefile"
)

func resolve(t *testing.T, root rroute.Node, href string) *rroute.Pass {
	t.Helper()
	pass, err := rroute.NewResolver(rroute.Options{}).Resolve(rroute.ParseLocation(href), root)
	assert.Nil(t, err)
	return pass
}

func TestLoadAndResolve(t *testing.T) {
	root, err := treefile.Load(filepath.Join("testdata", "app.yaml"), ids.NewSequence("y"))
	assert.Nil(t, err)

	pass := resolve(t, root, "/home/messages/a-team")
	thread, ok := pass.Activation("thread")
	assert.True(t, ok)
	assert.Equal(t, thread.Pattern, "/home/messages/:thread*")
	assert.Equal(t, thread.Param("thread"), "a-team")
	assert.False(t, pass.Active("inbox"))
	assert.False(t, pass.Active("missing"))
	assert.Contains(t, pass.HTML(), "Thread")

	pass = resolve(t, root, "/home/messages")
	assert.True(t, pass.Active("inbox"))
	assert.False(t, pass.Active("thread"))

	pass = resolve(t, root, "/home/settings?tab=profile")
	assert.True(t, pass.Active("settings"))

	// settings requires a tab, so the fallback shows
	pass = resolve(t, root, "/home/settings")
	assert.False(t, pass.Active("settings"))
	assert.True(t, pass.Active("missing"))
}

func TestQueryCondition(t *testing.T) {
	assert.True(t, treefile.QueryCondition(nil) == nil)

	cond := treefile.QueryCondition(map[string]string{"tab": "inbox", "page": "*"})
	assert.True(t, cond(rroute.ParseLocation("/?tab=inbox&page=3")))
	assert.False(t, cond(rroute.ParseLocation("/?tab=inbox")))
	assert.False(t, cond(rroute.ParseLocation("/?tab=sent&page=3")))
}

func TestParseErrors(t *testing.T) {
	bad := []string{
		"",
		"text: hi\nforRoute: /x",
		"group:\n  - text: a\nname: g",
		"group:\n  - {}",
		"forRoute: [unclosed",
	}

	for _, doc := range bad {
		_, err := treefile.Parse([]byte(doc), ids.NewSequence("y"))
		assert.True(t, err != nil)
	}
}

func TestFragmentWithSeveralChildrenFailsAtResolve(t *testing.T) {
	root, err := treefile.Parse([]byte("forRoute: /x\nchildren:\n  - text: a\n  - text: b\n"), ids.NewSequence("y"))
	assert.Nil(t, err)

	_, err = rroute.NewResolver(rroute.Options{}).Resolve(rroute.Location{Pathname: "/x"}, root)
	assert.True(t, err != nil)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := treefile.Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.True(t, err != nil)
}

func TestLoadTooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.yaml")
	assert.Nil(t, os.WriteFile(path, make([]byte, treefile.MaxFileSize+1), 0o600))

	_, err := treefile.Load(path, nil)
	assert.True(t, err != nil)
}
