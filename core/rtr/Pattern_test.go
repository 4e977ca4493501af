package rtr_test

import (
	"errors"
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rroute/core/rtr"
)

func TestStatic(t *testing.T) {
	p := rtr.MustCompile("/hello")
	assert.True(t, p.IsStatic())

	params, ok := p.Match("/hello")
	assert.True(t, ok)
	assert.Equal(t, len(params), 0)

	notFound := []string{
		"",
		"?",
		"/404",
		"/hell",
		"/helloo",
		"/hello/",
	}

	for _, path := range notFound {
		_, ok = p.Match(path)
		assert.False(t, ok)
	}
}

func TestRootIsExact(t *testing.T) {
	p := rtr.MustCompile("/")

	_, ok := p.Match("/")
	assert.True(t, ok)

	_, ok = p.Match("/home")
	assert.False(t, ok)
}

func TestParameter(t *testing.T) {
	p := rtr.MustCompile("/blog/:post/comments/:id")
	assert.False(t, p.IsStatic())

	params, ok := p.Match("/blog/hello-world/comments/123")
	assert.True(t, ok)
	assert.Equal(t, len(params), 2)
	assert.Equal(t, params[0].Key, "post")
	assert.Equal(t, params[0].Value, "hello-world")
	assert.Equal(t, params[1].Key, "id")
	assert.Equal(t, params[1].Value, "123")

	_, ok = p.Match("/blog//comments/123")
	assert.False(t, ok)

	_, ok = p.Match("/blog/a/b/comments/123")
	assert.False(t, ok)
}

func TestParameterWithLiteralSuffix(t *testing.T) {
	p := rtr.MustCompile("/files/:name.:ext")

	params, ok := p.Match("/files/report.final.pdf")
	assert.True(t, ok)
	assert.Equal(t, rtr.Param(params, "name"), "report.final")
	assert.Equal(t, rtr.Param(params, "ext"), "pdf")
}

func TestWildcard(t *testing.T) {
	p := rtr.MustCompile("/home*")

	matches := map[string]string{
		"/home":              "",
		"/home/":             "/",
		"/home/messages":     "/messages",
		"/home/messages/a/b": "/messages/a/b",
		"/homepage":          "page",
	}

	for path, rest := range matches {
		params, ok := p.Match(path)
		assert.True(t, ok)
		assert.Equal(t, len(params), 1)
		assert.Equal(t, params[0].Key, "_")
		assert.Equal(t, params[0].Value, rest)
	}

	_, ok := p.Match("/hom")
	assert.False(t, ok)

	_, ok = p.Match("/about")
	assert.False(t, ok)
}

func TestParameterThenWildcard(t *testing.T) {
	p := rtr.MustCompile("/users/:id*")

	params, ok := p.Match("/users/42")
	assert.True(t, ok)
	assert.Equal(t, rtr.Param(params, "id"), "42")
	assert.Equal(t, rtr.Param(params, "_"), "")

	params, ok = p.Match("/users/42/posts/7")
	assert.True(t, ok)
	assert.Equal(t, rtr.Param(params, "id"), "42")
	assert.Equal(t, rtr.Param(params, "_"), "/posts/7")

	_, ok = p.Match("/users/")
	assert.False(t, ok)
}

func TestMalformedPatterns(t *testing.T) {
	malformed := []string{
		"",
		"/users/:",
		"/users/:/posts",
		"/users/:id:name",
		"/files/*:name",
	}

	for _, pattern := range malformed {
		_, err := rtr.Compile(pattern)

		var patternErr *rtr.PatternError
		assert.True(t, errors.As(err, &patternErr))
		assert.Equal(t, patternErr.Pattern, pattern)
	}
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Didn't panic")
		}
	}()

	rtr.MustCompile("/:")
}

func TestCache(t *testing.T) {
	c := rtr.NewCache()

	first, err := c.Get("/home*")
	assert.Nil(t, err)

	second, err := c.Get("/home*")
	assert.Nil(t, err)

	assert.True(t, first == second)
	assert.Equal(t, c.Compiles(), 1)

	_, err = c.Get("/:")
	assert.True(t, err != nil)
	assert.Equal(t, c.Compiles(), 1)

	_, _ = c.Get("/")
	assert.DeepEqual(t, c.Patterns(), []string{"/", "/home*"})
}
