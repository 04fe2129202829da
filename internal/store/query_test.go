package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// doc is the record fixture for query engine tests. Rank deliberately
// has duplicate values so sort stability is observable.
type doc struct {
	ID   int
	Name string
	Rank string
}

func docDescriptor() Descriptor[doc] {
	return Descriptor[doc]{
		SearchFields: []func(doc) string{
			func(d doc) string { return d.Name },
		},
		SortFields: map[string]func(a, b doc) int{
			"id":   func(a, b doc) int { return a.ID - b.ID },
			"name": func(a, b doc) int { return strings.Compare(a.Name, b.Name) },
			"rank": func(a, b doc) int { return strings.Compare(a.Rank, b.Rank) },
		},
	}
}

func fixtureDocs() []doc {
	return []doc{
		{ID: 1, Name: "alpha", Rank: "b"},
		{ID: 2, Name: "bravo", Rank: "a"},
		{ID: 3, Name: "charlie", Rank: "b"},
		{ID: 4, Name: "delta", Rank: "a"},
		{ID: 5, Name: "echo", Rank: "b"},
	}
}

func TestApply_Defaults(t *testing.T) {
	page := Apply(fixtureDocs(), Query{}, docDescriptor())

	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.TotalPages)
	assert.Len(t, page.Data, 5)
	// Insertion order preserved when no sort is requested
	assert.Equal(t, 1, page.Data[0].ID)
	assert.Equal(t, 5, page.Data[4].ID)
}

func TestApply_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	page := Apply(fixtureDocs(), Query{Search: "CHAR"}, docDescriptor())

	require.Len(t, page.Data, 1)
	assert.Equal(t, "charlie", page.Data[0].Name)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, 1, page.TotalPages)
}

func TestApply_SearchNoMatches(t *testing.T) {
	page := Apply(fixtureDocs(), Query{Search: "zulu"}, docDescriptor())

	assert.Empty(t, page.Data)
	assert.Equal(t, 0, page.Total)
	assert.Equal(t, 0, page.TotalPages)
}

func TestApply_TotalIndependentOfPagination(t *testing.T) {
	docs := fixtureDocs()
	desc := docDescriptor()

	for page := 1; page <= 4; page++ {
		result := Apply(docs, Query{Page: page, Limit: 2}, desc)
		assert.Equal(t, 5, result.Total)
		assert.Equal(t, 3, result.TotalPages)
	}
}

func TestApply_PageLength(t *testing.T) {
	docs := fixtureDocs()
	desc := docDescriptor()

	// len = min(limit, total - (page-1)*limit), clamped to >= 0
	assert.Len(t, Apply(docs, Query{Page: 1, Limit: 2}, desc).Data, 2)
	assert.Len(t, Apply(docs, Query{Page: 3, Limit: 2}, desc).Data, 1)
	assert.Len(t, Apply(docs, Query{Page: 4, Limit: 2}, desc).Data, 0)
	assert.Len(t, Apply(docs, Query{Page: 50, Limit: 10}, desc).Data, 0)
}

func TestApply_FloorsPageAndLimit(t *testing.T) {
	docs := fixtureDocs()
	desc := docDescriptor()

	page := Apply(docs, Query{Page: -3, Limit: 0}, desc)
	assert.Equal(t, 1, page.Page)
	assert.Len(t, page.Data, 5) // default limit 10
	assert.Equal(t, 1, page.TotalPages)
}

func TestApply_SortAscendingAndDescending(t *testing.T) {
	docs := fixtureDocs()
	desc := docDescriptor()

	asc := Apply(docs, Query{SortBy: "name", SortOrder: "asc"}, desc)
	assert.Equal(t, "alpha", asc.Data[0].Name)
	assert.Equal(t, "echo", asc.Data[4].Name)

	descending := Apply(docs, Query{SortBy: "name", SortOrder: "desc"}, desc)
	assert.Equal(t, "echo", descending.Data[0].Name)
	assert.Equal(t, "alpha", descending.Data[4].Name)
}

func TestApply_UnknownSortFieldIgnored(t *testing.T) {
	page := Apply(fixtureDocs(), Query{SortBy: "bogus"}, docDescriptor())

	assert.Equal(t, 1, page.Data[0].ID)
	assert.Equal(t, 5, page.Data[4].ID)
}

func TestApply_SortIsStable(t *testing.T) {
	// Records with equal sort keys keep their pre-sort relative order,
	// regardless of the data in unrelated fields.
	docs := fixtureDocs()
	desc := docDescriptor()

	first := Apply(docs, Query{SortBy: "rank"}, desc)

	// Same ranks, different irrelevant tiebreak data
	for i := range docs {
		docs[i].Name = "renamed-" + docs[i].Name
	}
	second := Apply(docs, Query{SortBy: "rank"}, desc)

	require.Len(t, first.Data, 5)
	require.Len(t, second.Data, 5)
	for i := range first.Data {
		assert.Equal(t, first.Data[i].ID, second.Data[i].ID)
	}

	// Rank "a" holders 2 then 4, rank "b" holders 1, 3, 5
	ids := []int{first.Data[0].ID, first.Data[1].ID, first.Data[2].ID, first.Data[3].ID, first.Data[4].ID}
	assert.Equal(t, []int{2, 4, 1, 3, 5}, ids)
}

func TestApply_FilterSortPaginateOrder(t *testing.T) {
	// Filtering happens before sorting before pagination: search for
	// the docs containing "a" in the name, sort them, take page 2.
	docs := fixtureDocs()
	desc := docDescriptor()

	page := Apply(docs, Query{Search: "a", SortBy: "name", SortOrder: "desc", Page: 2, Limit: 2}, desc)

	// Matches: alpha, bravo, charlie, delta. Desc: delta, charlie, bravo, alpha.
	assert.Equal(t, 4, page.Total)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "bravo", page.Data[0].Name)
	assert.Equal(t, "alpha", page.Data[1].Name)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	docs := fixtureDocs()
	Apply(docs, Query{SortBy: "name", SortOrder: "desc"}, docDescriptor())

	assert.Equal(t, 1, docs[0].ID)
	assert.Equal(t, 5, docs[4].ID)
}
