package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"archive2svg/internal/chart"
	"archive2svg/internal/config"
	"archive2svg/internal/dataset"
	"archive2svg/internal/keywords"
	"archive2svg/internal/render"
)

const archiveCSV = `id,published,word_count,title,published_url,bodytext_excerpt,klima_matches,politikk_matches
a1,2012-03-04,60,Short piece,nyheter/a1,First,klima,No match
a2,2015-06-07,500,Longer piece,nyheter/a2,,klima,politikk
a3,2019-01-01,5000,Feature,nyheter/a3,Third,No match,No match
`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := config.Default()
	cfg.Hover.MarkGrace = 20 * time.Millisecond
	cfg.Hover.TooltipGrace = 5 * time.Millisecond

	engine, err := chart.NewEngine(cfg, nil)
	require.NoError(t, err)
	records, schema, err := dataset.ReadCSV(strings.NewReader(archiveCSV))
	require.NoError(t, err)
	ds, _, err := engine.Normalize(records, schema)
	require.NoError(t, err)

	srv := New(engine, ds, keywords.DefaultTable, nil)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	srv.StartLoop(ctx)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestPage(t *testing.T) {
	ts := newTestServer(t)

	resp := get(t, ts.URL+"/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "<option>select keyword #1</option>")
	assert.Contains(t, string(body), "<option>klima (climate)</option>")

	assert.Equal(t, http.StatusNotFound, get(t, ts.URL+"/missing").StatusCode)
}

func TestChart(t *testing.T) {
	ts := newTestServer(t)

	resp := get(t, ts.URL+"/api/chart.svg?width=1500")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `<svg width="1500"`)
	assert.Equal(t, 3, strings.Count(string(body), `class="mark"`))

	assert.Equal(t, http.StatusBadRequest, get(t, ts.URL+"/api/chart.svg?width=wide").StatusCode)
}

func TestKeywords(t *testing.T) {
	ts := newTestServer(t)

	resp := get(t, ts.URL+"/api/keywords")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var payload keywordsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, []string{"klima", "politikk"}, payload.Keywords)
	assert.Equal(t, []string{keywords.PlaceholderTwo, "klima (climate)", "politikk (politics/policy)"}, payload.OptionsTwo)
}

func decodeSelection(t *testing.T, resp *http.Response) selectionResponse {
	t.Helper()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var sel selectionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sel))
	return sel
}

func TestSelection(t *testing.T) {
	ts := newTestServer(t)

	sel := decodeSelection(t, postJSON(t, ts.URL+"/api/selection", `{"slot": 1, "option": "klima (climate)"}`))
	assert.Equal(t, "klima", sel.One)
	assert.Empty(t, sel.Caption)

	sel = decodeSelection(t, postJSON(t, ts.URL+"/api/selection", `{"slot": 2, "option": "politikk (politics/policy)"}`))
	assert.Equal(t, render.IntersectionCaption("klima", "politikk"), sel.Caption)

	body, err := io.ReadAll(get(t, ts.URL+"/api/chart.svg").Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `data-class="both"`)
	assert.Contains(t, string(body), `data-class="dimmed"`)

	sel = decodeSelection(t, postJSON(t, ts.URL+"/api/selection", `{"slot": 2, "option": "klima (climate)"}`))
	assert.Equal(t, "", sel.One)
	assert.Equal(t, "klima", sel.Two)

	sel = decodeSelection(t, postJSON(t, ts.URL+"/api/selection", `{"reset": true}`))
	assert.Equal(t, selectionResponse{}, sel)
	assert.Equal(t, selectionResponse{}, decodeSelection(t, get(t, ts.URL+"/api/selection")))

	assert.Equal(t, http.StatusBadRequest, postJSON(t, ts.URL+"/api/selection", `{"slot": 3}`).StatusCode)
	assert.Equal(t, http.StatusBadRequest, postJSON(t, ts.URL+"/api/selection", `not json`).StatusCode)
}

func TestPointerAndTooltip(t *testing.T) {
	ts := newTestServer(t)

	assert.Equal(t, http.StatusNoContent, get(t, ts.URL+"/api/tooltip").StatusCode)

	resp := postJSON(t, ts.URL+"/api/pointer", `{"kind": "enter-mark", "id": "a2", "x": 100, "y": 40}`)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	var tip render.Tooltip
	require.Eventually(t, func() bool {
		r, err := http.Get(ts.URL + "/api/tooltip")
		if err != nil {
			return false
		}
		defer r.Body.Close()
		if r.StatusCode != http.StatusOK {
			return false
		}
		return json.NewDecoder(r.Body).Decode(&tip) == nil
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, "a2", tip.ID)
	assert.Equal(t, "07.06.2015", tip.Date)
	assert.Equal(t, render.NoExcerpt, tip.Excerpt)
	assert.Equal(t, 115.0, tip.Left)

	postJSON(t, ts.URL+"/api/pointer", `{"kind": "leave-mark", "id": "a2"}`)
	require.Eventually(t, func() bool {
		r, err := http.Get(ts.URL + "/api/tooltip")
		if err != nil {
			return false
		}
		r.Body.Close()
		return r.StatusCode == http.StatusNoContent
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, http.StatusNotFound, postJSON(t, ts.URL+"/api/pointer", `{"kind": "enter-mark", "id": "nope"}`).StatusCode)
	assert.Equal(t, http.StatusBadRequest, postJSON(t, ts.URL+"/api/pointer", `{"kind": "wiggle"}`).StatusCode)
	assert.Equal(t, http.StatusMethodNotAllowed, get(t, ts.URL+"/api/pointer").StatusCode)
}

func TestEmptyDataset(t *testing.T) {
	engine, err := chart.NewEngine(config.Default(), nil)
	require.NoError(t, err)
	ts := httptest.NewServer(New(engine, nil, keywords.DefaultTable, nil).Handler())
	t.Cleanup(ts.Close)

	body, err := io.ReadAll(get(t, ts.URL+"/api/chart.svg").Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), chart.EmptyMessage)

	assert.Equal(t, http.StatusOK, get(t, ts.URL+"/").StatusCode)
}
