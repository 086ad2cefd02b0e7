package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neurojobs-engine/internal/config"
	"neurojobs-engine/internal/domain"
	"neurojobs-engine/internal/events"
	"neurojobs-engine/internal/pipeline"
	"neurojobs-engine/internal/store"
)

func testAPI(t *testing.T) (*API, *store.File) {
	t.Helper()
	file := store.NewFile(filepath.Join(t.TempDir(), "jobs.json"))
	api := &API{
		Cfg:  config.Default(),
		File: file,
		Hub:  events.NewHub(),
	}
	return api, file
}

func TestHealth(t *testing.T) {
	api, _ := testAPI(t)
	srv := httptest.NewServer(api.Routes())
	defer srv.Close()

	res, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestJobsReturnsStore(t *testing.T) {
	api, file := testAPI(t)
	require.NoError(t, file.Save(store.Store{
		LastUpdated: "2025/06/15 12:00:00",
		Postings:    []domain.Posting{{ID: 1, Date: "2025-06-15", Position: "研究员", Type: domain.CategoryResearch}},
	}))

	srv := httptest.NewServer(api.Routes())
	defer srv.Close()

	res, err := http.Get(srv.URL + "/jobs")
	require.NoError(t, err)
	defer res.Body.Close()

	var got store.Store
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	require.Len(t, got.Postings, 1)
	assert.Equal(t, int64(1), got.Postings[0].ID)
}

func TestStats(t *testing.T) {
	api, file := testAPI(t)
	require.NoError(t, file.Save(store.Store{
		Postings: []domain.Posting{
			{ID: 1, Date: "2025-06-15", Location: "广东", Type: domain.CategoryResearch},
			{ID: 2, Date: "2025-06-15", Location: "广东", Type: domain.CategoryHospital},
		},
	}))

	srv := httptest.NewServer(api.Routes())
	defer srv.Close()

	res, err := http.Get(srv.URL + "/stats")
	require.NoError(t, err)
	defer res.Body.Close()

	var got map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	assert.Equal(t, float64(2), got["totalCount"])
	assert.Equal(t, "广东", got["topRegion"])
}

func TestScrapeRequiresPost(t *testing.T) {
	api, _ := testAPI(t)
	srv := httptest.NewServer(api.Routes())
	defer srv.Close()

	res, err := http.Get(srv.URL + "/scrape")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
}

func TestScrapeTriggersRun(t *testing.T) {
	api, _ := testAPI(t)
	ran := false
	api.RunOnce = func(ctx context.Context) (pipeline.RunReport, error) {
		ran = true
		return pipeline.RunReport{Added: 5}, nil
	}

	srv := httptest.NewServer(api.Routes())
	defer srv.Close()

	res, err := http.Post(srv.URL+"/scrape", "application/json", nil)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.True(t, ran)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var report pipeline.RunReport
	require.NoError(t, json.NewDecoder(res.Body).Decode(&report))
	assert.Equal(t, 5, report.Added)

	status, err := http.Get(srv.URL + "/scrape/status")
	require.NoError(t, err)
	defer status.Body.Close()
	var st map[string]any
	require.NoError(t, json.NewDecoder(status.Body).Decode(&st))
	assert.Equal(t, float64(5), st["last_added"])
}
