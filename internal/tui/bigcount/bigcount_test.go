package bigcount

import (
	"fmt"
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailable(t *testing.T) {
	assert.True(t, Available())
}

func TestRender_Dimensions(t *testing.T) {
	out := Render("128", 24, 5)
	require.NotEmpty(t, out)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	for _, line := range lines {
		assert.Equal(t, 24, utf8.RuneCountInString(line))
	}
	assert.True(t, strings.ContainsAny(out, "█▀▄"), "expected ink in:\n%s", out)
}

func TestRender_Empty(t *testing.T) {
	assert.Empty(t, Render("", 10, 3))
	assert.Empty(t, Render("1", 0, 3))
	assert.Empty(t, Render("1", 10, 0))
}

func TestCached(t *testing.T) {
	first := Cached("42", 16, 4)
	assert.Equal(t, first, Cached("42", 16, 4))
	assert.Equal(t, Render("42", 16, 4), first)
}

func TestCachedIsBounded(t *testing.T) {
	for i := 0; i < 3*cacheSize; i++ {
		Cached(strconv.Itoa(i), 8, 2)
	}

	cacheMu.Lock()
	defer cacheMu.Unlock()
	assert.Len(t, cache, cacheSize)
	assert.Len(t, cacheKeys, cacheSize)
	assert.Contains(t, cache, fmt.Sprintf("%d/8/2", 3*cacheSize-1))
	assert.NotContains(t, cache, "0/8/2")
}

func TestFit(t *testing.T) {
	w, h := fit(100, 50, 40, 40)
	assert.Equal(t, 40, w)
	assert.Equal(t, 20, h)

	w, h = fit(100, 50, 40, 10)
	assert.Equal(t, 20, w)
	assert.Equal(t, 10, h)
}
