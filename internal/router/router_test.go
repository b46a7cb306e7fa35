package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"":            "/",
		"/":           "/",
		"#/":          "/",
		"active":      "/active",
		"#/active":    "/active",
		"/completed/": "/completed",
		"  /active  ": "/active",
	}
	for in, want := range cases {
		assert.Equal(t, want, Normalize(in), "input %q", in)
	}
}

func mounted(t *testing.T, opts ...Option) (*Router, *[]string) {
	t.Helper()
	var hits []string
	r := New(opts...)
	r.Mount(map[string]Handler{
		"/":          func() { hits = append(hits, "all") },
		"/active":    func() { hits = append(hits, "active") },
		"/completed": func() { hits = append(hits, "completed") },
	})
	return r, &hits
}

func TestInit_DispatchesDefaultOnce(t *testing.T) {
	r, hits := mounted(t)
	require.NoError(t, r.Init("/"))
	assert.Equal(t, []string{"all"}, *hits)
	assert.Equal(t, "/", r.Location())
}

func TestInit_PrefersLocation(t *testing.T) {
	r, hits := mounted(t, WithLocation("#/completed"))
	require.NoError(t, r.Init("/"))
	assert.Equal(t, []string{"completed"}, *hits)
}

func TestNavigate_Sequence(t *testing.T) {
	r, hits := mounted(t)
	require.NoError(t, r.Navigate("/completed"))
	require.NoError(t, r.Navigate("/active"))
	require.NoError(t, r.Navigate("/"))
	assert.Equal(t, []string{"completed", "active", "all"}, *hits)
	assert.Equal(t, "/", r.Location())
}

func TestNavigate_UnknownRoute(t *testing.T) {
	r, hits := mounted(t)
	require.NoError(t, r.Navigate("/active"))

	err := r.Navigate("/archived")
	assert.ErrorIs(t, err, ErrNoRoute)
	assert.Equal(t, "/active", r.Location())
	assert.Equal(t, []string{"active"}, *hits)
}
