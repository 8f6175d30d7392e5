package filters

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/agnostic-bookmarks/internal/models"
)

func fields(verrs *models.ValidationErrors) []string {
	var out []string
	for _, v := range verrs.Errors {
		for k := range v {
			out = append(out, k)
		}
	}
	return out
}

func TestParseList(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		want       models.BookmarkFilter
		wantFields []string
	}{
		{
			name:  "defaults",
			query: "",
			want:  models.BookmarkFilter{SortBy: models.SortByDate, Offset: 0, PageSize: 10},
		},
		{
			name:  "by name second page",
			query: "sortBy=name&offset=1&pageSize=10",
			want:  models.BookmarkFilter{SortBy: models.SortByName, Offset: 1, PageSize: 10},
		},
		{
			name:  "zero page size is valid",
			query: "pageSize=0",
			want:  models.BookmarkFilter{SortBy: models.SortByDate, PageSize: 0},
		},
		{
			name:  "max page size",
			query: "sortBy=date&pageSize=100",
			want:  models.BookmarkFilter{SortBy: models.SortByDate, PageSize: 100},
		},
		{
			name:       "unknown sort",
			query:      "sortBy=url",
			wantFields: []string{"sortBy"},
		},
		{
			name:       "negative offset",
			query:      "offset=-1",
			wantFields: []string{"offset"},
		},
		{
			name:       "page size too large",
			query:      "pageSize=101",
			wantFields: []string{"pageSize"},
		},
		{
			name:       "not a number",
			query:      "offset=abc&pageSize=x",
			wantFields: []string{"offset", "pageSize"},
		},
		{
			name:  "largest offset for the page size",
			query: "offset=92233720368547758&pageSize=100",
			want:  models.BookmarkFilter{SortBy: models.SortByDate, Offset: 92233720368547758, PageSize: 100},
		},
		{
			name:       "offset overflows skip",
			query:      "offset=1000000000000000000&pageSize=100",
			wantFields: []string{"offset"},
		},
		{
			name:       "offset beyond int",
			query:      "offset=100000000000000000000",
			wantFields: []string{"offset"},
		},
		{
			name:  "huge offset with empty page",
			query: "offset=1000000000000000000&pageSize=0",
			want:  models.BookmarkFilter{SortBy: models.SortByDate, Offset: 1000000000000000000, PageSize: 0},
		},
		{
			name:       "all invalid",
			query:      "sortBy=foo&offset=-3&pageSize=-1",
			wantFields: []string{"sortBy", "offset", "pageSize"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			got, verrs := ParseList(q)
			if tt.wantFields != nil {
				require.NotNil(t, verrs)
				assert.ElementsMatch(t, tt.wantFields, fields(verrs))
				return
			}
			require.Nil(t, verrs)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseList_Messages(t *testing.T) {
	_, verrs := ParseList(url.Values{"sortBy": {"bogus"}})
	require.NotNil(t, verrs)
	require.Len(t, verrs.Errors, 1)
	assert.Equal(t, msgSortBy, verrs.Errors[0]["sortBy"])

	_, verrs = ParseList(url.Values{"offset": {"1000000000000000000"}, "pageSize": {"100"}})
	require.NotNil(t, verrs)
	require.Len(t, verrs.Errors, 1)
	assert.Equal(t, msgSkip, verrs.Errors[0]["offset"])
}

func TestParseSearch(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantSearch string
		wantTags   []string
		wantFields []string
	}{
		{
			name:       "search only",
			query:      "search=foo",
			wantSearch: "foo",
		},
		{
			name:     "tags only",
			query:    "tag=a,b",
			wantTags: []string{"a", "b"},
		},
		{
			name:       "search and tags with blanks and duplicates",
			query:      "search=Go&tag=a,%20b,,a",
			wantSearch: "Go",
			wantTags:   []string{"a", "b"},
		},
		{
			name:       "neither search nor tag",
			query:      "pageSize=5",
			wantFields: []string{"search", "tag"},
		},
		{
			name:       "blank search",
			query:      "search=%20%20",
			wantFields: []string{"search", "tag"},
		},
		{
			name:       "tag of separators only",
			query:      "tag=,,",
			wantFields: []string{"search", "tag"},
		},
		{
			name:       "blank tags with blank search",
			query:      "search=%20&tag=%20,%20",
			wantFields: []string{"search", "tag"},
		},
		{
			name:       "list errors are kept",
			query:      "sortBy=x",
			wantFields: []string{"sortBy", "search", "tag"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			got, verrs := ParseSearch(q)
			if tt.wantFields != nil {
				require.NotNil(t, verrs)
				assert.ElementsMatch(t, tt.wantFields, fields(verrs))
				return
			}
			require.Nil(t, verrs)
			assert.Equal(t, tt.wantSearch, got.Search)
			assert.Equal(t, tt.wantTags, got.Tags)
			assert.Equal(t, models.SortByDate, got.SortBy)
			assert.Equal(t, models.DefaultPageSize, got.PageSize)
		})
	}
}

func TestParseFind(t *testing.T) {
	u, verrs := ParseFind(url.Values{"url": {"http://example.com"}})
	require.Nil(t, verrs)
	assert.Equal(t, "http://example.com", u)

	_, verrs = ParseFind(url.Values{})
	require.NotNil(t, verrs)
	assert.Equal(t, []string{"url"}, fields(verrs))
	assert.Equal(t, msgURL, verrs.Errors[0]["url"])
}

func TestSplitTags(t *testing.T) {
	assert.Nil(t, SplitTags(""))
	assert.Nil(t, SplitTags(" , ,"))
	assert.Equal(t, []string{"x"}, SplitTags("x"))
	assert.Equal(t, []string{"b", "a"}, SplitTags("b, a ,b"))
}
