package plex

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTVSection(t *testing.T) {
	movies := Section{Key: "1", Title: "Movies", Type: "movie"}
	tv := Section{Key: "2", Title: "TV Shows", Type: "show"}
	anime := Section{Key: "3", Title: "Anime", Type: "show"}

	t.Run("no TV sections", func(t *testing.T) {
		var out bytes.Buffer
		_, err := ResolveTVSection([]Section{movies}, strings.NewReader(""), &out)
		require.ErrorIs(t, err, ErrNoTVSections)
	})

	t.Run("single TV section auto-selected", func(t *testing.T) {
		var out bytes.Buffer
		// Input deliberately empty: auto-selection must not prompt
		section, err := ResolveTVSection([]Section{movies, tv}, strings.NewReader(""), &out)
		require.NoError(t, err)
		assert.Equal(t, "2", section.Key)
		assert.Contains(t, out.String(), "TV Shows")
		assert.NotContains(t, out.String(), "Select a section")
	})

	t.Run("multiple sections require valid choice", func(t *testing.T) {
		var out bytes.Buffer
		section, err := ResolveTVSection([]Section{movies, tv, anime}, strings.NewReader("2\n"), &out)
		require.NoError(t, err)
		assert.Equal(t, "3", section.Key)
		assert.Contains(t, out.String(), "1. TV Shows")
		assert.Contains(t, out.String(), "2. Anime")
	})

	t.Run("invalid input reprompts until valid", func(t *testing.T) {
		var out bytes.Buffer
		section, err := ResolveTVSection([]Section{tv, anime}, strings.NewReader("abc\n0\n7\n1\n"), &out)
		require.NoError(t, err)
		assert.Equal(t, "2", section.Key)
		assert.Equal(t, 3, strings.Count(out.String(), "Invalid selection"))
	})

	t.Run("EOF before valid choice", func(t *testing.T) {
		var out bytes.Buffer
		_, err := ResolveTVSection([]Section{tv, anime}, strings.NewReader("nope\n"), &out)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no section selected")
	})
}

func TestFindSection(t *testing.T) {
	sections := []Section{
		{Key: "1", Title: "Movies", Type: "movie"},
		{Key: "2", Title: "TV Shows", Type: "show"},
	}

	section, err := FindSection(sections, "2")
	require.NoError(t, err)
	assert.Equal(t, "TV Shows", section.Title)

	_, err = FindSection(sections, "9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
