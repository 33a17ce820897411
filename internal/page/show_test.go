package page_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aanand-mishra/schools-directory/internal/page"
	"github.com/aanand-mishra/schools-directory/internal/schoolapi"
	"github.com/aanand-mishra/schools-directory/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLister struct {
	schools []types.School
	err     error
	calls   int
}

func (f *fakeLister) ListSchools(ctx context.Context) ([]types.School, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.schools, nil
}

func sampleSchools() []types.School {
	return []types.School{
		{ID: 1, Name: "Alpha High", City: "Pune", State: "MH"},
		{ID: 2, Name: "Beta School", City: "Nagpur", State: "MH"},
		{ID: 3, Name: "Lotus Valley", City: "Noida", State: "UP"},
	}
}

func TestFilter_EmptyTermReturnsInput(t *testing.T) {
	schools := sampleSchools()

	got := page.Filter(schools, "")

	assert.Equal(t, schools, got)
}

func TestFilter_CaseInsensitiveSubstring(t *testing.T) {
	schools := sampleSchools()

	for _, term := range []string{"lotus", "VALLEY", "us val", "Lotus Valley"} {
		got := page.Filter(schools, term)
		require.Len(t, got, 1, term)
		assert.Equal(t, "Lotus Valley", got[0].Name, term)
	}
}

func TestFilter_MatchesNameCityOrState(t *testing.T) {
	schools := sampleSchools()

	assert.Len(t, page.Filter(schools, "beta"), 1)
	assert.Len(t, page.Filter(schools, "noida"), 1)
	assert.Len(t, page.Filter(schools, "mh"), 2)
	assert.Empty(t, page.Filter(schools, "chennai"))
}

func TestFilter_OrderPreservedSubsetNoDuplicates(t *testing.T) {
	schools := []types.School{
		{ID: 1, Name: "Green Pune School", City: "Pune", State: "MH"},
		{ID: 2, Name: "Other", City: "Delhi", State: "DL"},
		{ID: 3, Name: "Pune Public", City: "Pune", State: "MH"},
	}

	got := page.Filter(schools, "pune")

	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
	assert.Equal(t, "Other", schools[1].Name, "input must not change")
	assert.Len(t, schools, 3)
}

func TestFilter_ScenarioC(t *testing.T) {
	schools := []types.School{
		{Name: "Alpha High", City: "Pune", State: "MH"},
		{Name: "Beta School", City: "Nagpur", State: "MH"},
	}

	got := page.Filter(schools, "pune")

	assert.Equal(t, []types.School{schools[0]}, got)
}

func TestShowSchools_ActivateLoadsOnce(t *testing.T) {
	api := &fakeLister{schools: sampleSchools()}
	p := page.NewShowSchools(api)
	require.True(t, p.Loading)

	p.Activate(context.Background())
	p.Activate(context.Background())

	assert.Equal(t, 1, api.calls)
	assert.False(t, p.Loading)
	assert.Empty(t, p.Error)
	assert.Len(t, p.Schools, 3)
	assert.Equal(t, "Showing 3 of 3 schools", p.Summary())
}

func TestShowSchools_ActivateFailure(t *testing.T) {
	api := &fakeLister{err: errors.New("connection refused")}
	p := page.NewShowSchools(api)

	p.Activate(context.Background())

	assert.Empty(t, p.Schools)
	assert.Equal(t, page.MsgLoadError, p.Error)
	assert.False(t, p.Loading)
	assert.Equal(t, page.MsgNoSchoolsYet, p.EmptyHint())
}

func TestShowSchools_SearchDoesNotRefetch(t *testing.T) {
	api := &fakeLister{schools: sampleSchools()}
	p := page.NewShowSchools(api)
	p.Activate(context.Background())

	p.SetSearch("p")
	assert.Len(t, p.Visible(), 3)

	p.SetSearch("pun")
	assert.Len(t, p.Visible(), 1)
	assert.Equal(t, "Showing 1 of 3 schools", p.Summary())

	p.SetSearch("zzz")
	assert.Empty(t, p.Visible())
	assert.Equal(t, page.MsgNoMatches, p.EmptyHint())

	p.SetSearch("")
	assert.Len(t, p.Visible(), 3)

	assert.Equal(t, 1, api.calls)
	assert.Len(t, p.Schools, 3)
}

func TestShowSchools_ScenarioD_OverHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p := page.NewShowSchools(schoolapi.New(srv.URL, nil, nil))
	p.Activate(context.Background())

	assert.Empty(t, p.Schools)
	assert.Equal(t, page.MsgLoadError, p.Error)
	assert.False(t, p.Loading)
}
