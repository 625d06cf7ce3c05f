package search

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupTables(t *testing.T) {
	tests := []struct {
		name   string
		lookup func(string) (any, error)
		label  string
		want   any
	}{
		{"full time", wrap(JobTypeCode), "full_time", "F"},
		{"part time", wrap(JobTypeCode), "part_time", "P"},
		{"second", wrap(PastTimeCode), "second", "r60"},
		{"day", wrap(PastTimeCode), "day", "r86400"},
		{"week", wrap(PastTimeCode), "week", "r604800"},
		{"month", wrap(PastTimeCode), "month", "r2592000"},
		{"internship", wrapInt(JobLevelCode), "internship", 1},
		{"entry level", wrapInt(JobLevelCode), "entry_level", 2},
		{"associate", wrapInt(JobLevelCode), "associate", 3},
		{"mid senior", wrapInt(JobLevelCode), "mid_senior_level", 4},
		{"director", wrapInt(JobLevelCode), "director", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.lookup(tt.label)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnknownLabels(t *testing.T) {
	_, err := JobTypeCode("contract")
	assert.ErrorIs(t, err, ErrUnknownLabel)

	_, err = PastTimeCode("year")
	assert.ErrorIs(t, err, ErrUnknownLabel)

	_, err = JobLevelCode("executive")
	assert.ErrorIs(t, err, ErrUnknownLabel)

	f := DefaultFilters()
	f.JobLevel = "ceo"
	_, err = NewQuery("Backend Developer", f)
	assert.ErrorIs(t, err, ErrUnknownLabel)
	assert.ErrorIs(t, f.Validate(), ErrUnknownLabel)
}

func TestQueryURL(t *testing.T) {
	q, err := NewQuery("Backend Developer", DefaultFilters())
	require.NoError(t, err)

	u, err := url.Parse(q.URL())
	require.NoError(t, err)

	assert.Equal(t, "www.linkedin.com", u.Host)
	assert.Equal(t, "/jobs/search", u.Path)
	params := u.Query()
	assert.Equal(t, "Backend Developer", params.Get("keywords"))
	assert.Equal(t, "India", params.Get("location"))
	assert.Equal(t, "F", params.Get("f_JT"))
	assert.Equal(t, "r86400", params.Get("f_TPR"))
	assert.Equal(t, "2", params.Get("f_E"))
	assert.Equal(t, "Backend Developer", q.Role())
}

func wrap(f func(string) (string, error)) func(string) (any, error) {
	return func(s string) (any, error) { return f(s) }
}

func wrapInt(f func(string) (int, error)) func(string) (any, error) {
	return func(s string) (any, error) { return f(s) }
}
