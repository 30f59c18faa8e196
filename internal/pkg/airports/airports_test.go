package airports

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDirectory(t *testing.T) *Directory {
	t.Helper()

	d, err := NewDirectory()
	require.NoError(t, err)

	return d
}

func TestDirectory_Search_Closure(t *testing.T) {
	d := newTestDirectory(t)

	searchRequest := func(query string, limit int, wantFirst string, wantAtLeast int) func(t *testing.T) {
		return func(t *testing.T) {
			got := d.Search(query, limit)

			require.GreaterOrEqual(t, len(got), wantAtLeast)
			if wantAtLeast > 0 {
				assert.Equal(t, wantFirst, got[0].Code)
			}
		}
	}

	// Exact code match ranks before substring matches.
	t.Run("exact_code_first", searchRequest("zrh", 20, "ZRH", 1))
	t.Run("city_lookup", searchRequest("budapest", 20, "BUD", 1))
	// All three Swiss airports tie on rank, so city order puts Basel first.
	t.Run("country_lookup", searchRequest("switzerland", 20, "BSL", 3))
	t.Run("no_results", searchRequest("xyzzy", 20, "", 0))
	t.Run("blank_query", searchRequest("  ", 20, "", 0))
}

func TestDirectory_Search_LimitApplied(t *testing.T) {
	d := newTestDirectory(t)

	got := d.Search("a", 5)
	assert.Len(t, got, 5)
}

func TestDirectory_CodesByCountry(t *testing.T) {
	d := newTestDirectory(t)

	got := d.CodesByCountry("ch")

	want := []string{"ZRH", "GVA", "BSL"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("CodesByCountry mismatch (-want +got):\n%s", diff)
	}

	assert.Empty(t, d.CodesByCountry("XX"))
}

func TestDirectory_Codes_ExcludesOrigins(t *testing.T) {
	d := newTestDirectory(t)

	all := d.Codes(nil)
	filtered := d.Codes([]string{"BUD", "cgn"})

	assert.Len(t, filtered, len(all)-2)
	assert.NotContains(t, filtered, "BUD")
	assert.NotContains(t, filtered, "CGN")
}

func TestDirectory_Countries(t *testing.T) {
	d := newTestDirectory(t)

	countries := d.Countries()
	require.NotEmpty(t, countries)

	codes := make(map[string]string, len(countries))
	for _, c := range countries {
		codes[c.Code] = c.Name
	}

	assert.Equal(t, "Switzerland", codes["CH"])
	assert.Equal(t, "Hungary", codes["HU"])
}
