package normalizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"second-brain/normalizer"
)

func TestNormalizeStripsTimingTags(t *testing.T) {
	in := "welcome<00:00:31.039><c> to</c><00:00:31.199><c> the</c> course"
	out := normalizer.Normalize(in)

	assert.NotContains(t, out, "<")
	assert.NotContains(t, out, ">")
	assert.Equal(t, "welcome to the course", out)
}

func TestNormalizeStripsBracketedAnnotations(t *testing.T) {
	out := normalizer.Normalize("[Music]\nhello")
	assert.Equal(t, "hello", out)
}

func TestNormalizeDeduplicatesGlobally(t *testing.T) {
	out := normalizer.Normalize("a\nb\na\nc\nb")
	assert.Equal(t, "a\nb\nc", out)
}

func TestNormalizeCollapsesCaptionBuildUp(t *testing.T) {
	in := strings.Join([]string{
		"welcome<00:00:31.039><c> to</c><00:00:31.199><c> the</c><00:00:31.359><c> course</c>",
		"welcome to the course",
		"let<00:00:37.040><c> us</c><00:00:37.200><c> know</c>",
		"let us know",
	}, "\n")

	out := normalizer.Normalize(in)
	assert.Equal(t, "welcome to the course\nlet us know", out)
}

func TestNormalizeEmptyInput(t *testing.T) {
	assert.Equal(t, "", normalizer.Normalize(""))
}

func TestNormalizeMarkupOnlyInputIsEmpty(t *testing.T) {
	assert.Equal(t, "", normalizer.Normalize("[Music]\n<00:00:00.000>"))
}

func TestNormalizeIsIdempotent(t *testing.T) {
	in := "[Music]\nhello\nworld<c> again</c>\nworld again\nhello"
	once := normalizer.Normalize(in)
	assert.Equal(t, once, normalizer.Normalize(once))
}

func TestNormalizeIsDeterministic(t *testing.T) {
	in := "x\ny\nx\n[Applause]\nz<00:01:02.000>"
	first := normalizer.Normalize(in)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, normalizer.Normalize(in))
	}
}

func TestNormalizeKeepsCaseVariants(t *testing.T) {
	// Dedup is exact-match only; case variants both survive.
	out := normalizer.Normalize("Hello\nhello")
	assert.Equal(t, "Hello\nhello", out)
}

func TestNormalizeTrimsBeforeComparing(t *testing.T) {
	out := normalizer.Normalize("  hello  \nhello")
	assert.Equal(t, "hello", out)
}

func TestCollapseAdjacentDuplicates(t *testing.T) {
	in := []string{"a", "a", "b", "a", "c", "c", "c"}
	out := normalizer.CollapseAdjacentDuplicates(in)
	assert.Equal(t, []string{"a", "b", "a", "c"}, out)
}

func TestCollapseAdjacentDuplicatesEmpty(t *testing.T) {
	assert.Empty(t, normalizer.CollapseAdjacentDuplicates(nil))
}
