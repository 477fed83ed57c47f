package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cours-de-latin/corrector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, dir string) *httptest.Server {
	lex, err := corrector.LoadLexicon(corrector.FileStore{Dir: dir})
	require.NoError(t, err)
	h := new(holder)
	h.set(corrector.New(lex))
	return newHolderServer(t, h)
}

func newHolderServer(t *testing.T, h *holder) *httptest.Server {
	srv := httptest.NewServer(withRequestLog(newMux(h)))
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, url, body string) *http.Response {
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestCorrectParagraphEndpoint(t *testing.T) {
	srv := newTestServer(t, "../../data")
	resp := post(t, srv.URL+"/api/correct", `{"text":"මම බත් කනවා. මම කන්නෙමි."}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	var body correctResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "මම බත් කෑමි. මම කන්නෙමි.", body.Corrected)
}

func TestCorrectSentenceEndpoint(t *testing.T) {
	srv := newTestServer(t, "../../data")
	resp := post(t, srv.URL+"/api/correct/sentence", `{"text":"බත් කනවා"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body correctResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "බත් කනවා", body.Corrected)
}

func TestCheckEndpoint(t *testing.T) {
	srv := newTestServer(t, "../../data")
	resp := post(t, srv.URL+"/api/check", `{"text":"මම බත කනවා"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var report corrector.Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, "බත්", report.Repairs["බත"])
	assert.Equal(t, "මම බත් කෑමි", report.Corrected)
}

func TestVocabularyEndpoint(t *testing.T) {
	srv := newTestServer(t, "../../data")
	resp, err := http.Get(srv.URL + "/api/vocabulary")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var vocab corrector.Vocabulary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&vocab))
	assert.Equal(t, []string{"මම", "අපි", "ඔහු"}, vocab.Subjects)
	assert.Equal(t, []string{"කන", "බොන", "යන", "ලියන"}, vocab.Verbs)
}

func TestBadRequests(t *testing.T) {
	srv := newTestServer(t, "../../data")

	resp := post(t, srv.URL+"/api/correct", `{"text":""}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = post(t, srv.URL+"/api/vocabulary", `{}`)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	getResp, err := http.Get(srv.URL + "/api/check")
	require.NoError(t, err)
	defer getResp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, getResp.StatusCode)
}

func TestInvalidFormIsUnprocessable(t *testing.T) {
	dir := t.TempDir()
	store := corrector.FileStore{Dir: dir}
	require.NoError(t, store.Write(corrector.SubjectsTable, []byte(`{"මම": {"suffix": "මි"}}`)))
	require.NoError(t, store.Write(corrector.VerbsTable, []byte(`{"කන": {"present": 5}}`)))

	srv := newTestServer(t, dir)
	resp := post(t, srv.URL+"/api/correct", `{"text":"මම කනවා."}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var body errorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body.Error, "කන")
}
