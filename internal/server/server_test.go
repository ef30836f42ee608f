package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jonathan/interview-prep/internal/analyzer"
	"github.com/jonathan/interview-prep/internal/catalog"
	"github.com/jonathan/interview-prep/internal/extraction"
	"github.com/jonathan/interview-prep/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	c := catalog.New(
		[]types.Role{
			{Name: "Data Scientist", RequiredSkills: []string{"Python", "SQL", "Machine Learning"}},
		},
		[]types.Question{
			{Role: "Data Scientist", Category: types.CategoryTechnical, Text: "Explain regularization in machine learning"},
			{Role: "Data Scientist", Category: types.CategoryTechnical, Text: "Describe a python data pipeline you built"},
			{Role: "Data Scientist", Category: types.CategoryBehavioral, Text: "Tell me about a time you missed a deadline"},
		},
	)

	srv := New(Config{
		Port:     0,
		Analyzer: analyzer.New(c, catalog.DefaultVocabulary(), &extraction.AcronymAnnotator{}),
		Catalog:  c,
	})
	t.Cleanup(srv.limiter.Stop)
	return srv
}

func doRequest(t *testing.T, srv *Server, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	srv := testServer(t)

	rec := doRequest(t, srv, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, float64(1), body["roles"])
}

func TestRolesEndpoint(t *testing.T) {
	srv := testServer(t)

	rec := doRequest(t, srv, httptest.NewRequest(http.MethodGet, "/roles", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Roles []types.Role `json:"roles"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Roles, 1)
	assert.Equal(t, "Data Scientist", body.Roles[0].Name)
}

func TestAnalyzeEndpoint(t *testing.T) {
	srv := testServer(t)

	payload := `{"resume_text": "Python developer with SQL experience", "role": "Data Scientist"}`
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(payload))
	rec := doRequest(t, srv, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var analysis types.Analysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analysis))

	assert.NotEmpty(t, analysis.SessionID)
	assert.Equal(t, 66.7, analysis.Match.Score)
	assert.Contains(t, analysis.Skills, "Python")
	assert.Len(t, analysis.Questions[types.CategoryTechnical], 2)
}

func TestAnalyzeEndpointUnknownRole(t *testing.T) {
	srv := testServer(t)

	payload := `{"resume_text": "Python developer", "role": "Astronaut"}`
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(payload))
	rec := doRequest(t, srv, req)

	// An unknown role is an empty result, not an error.
	require.Equal(t, http.StatusOK, rec.Code)
	var analysis types.Analysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analysis))
	assert.Equal(t, 0.0, analysis.Match.Score)
	assert.Empty(t, analysis.Questions[types.CategoryTechnical])
}

func TestAnalyzeEndpointMissingRole(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`{"resume_text": "x"}`))
	rec := doRequest(t, srv, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestAnalyzeEndpointInvalidJSON(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader("{not json"))
	rec := doRequest(t, srv, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeEndpointInvalidCategory(t *testing.T) {
	srv := testServer(t)

	payload := `{"resume_text": "x", "role": "Data Scientist", "category": "Trivia"}`
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(payload))
	rec := doRequest(t, srv, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeUploadEndpoint(t *testing.T) {
	srv := testServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("resume", "resume.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("Python developer with SQL experience"))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("role", "Data Scientist"))
	require.NoError(t, mw.WriteField("top_n", "1"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := doRequest(t, srv, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var analysis types.Analysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analysis))
	assert.Equal(t, 66.7, analysis.Match.Score)
	assert.Len(t, analysis.Questions[types.CategoryTechnical], 1)
}

func TestAnalyzeUploadEndpointUnsupportedFormat(t *testing.T) {
	srv := testServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("resume", "resume.rtf")
	require.NoError(t, err)
	_, err = part.Write([]byte("{\\rtf1}"))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("role", "Data Scientist"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := doRequest(t, srv, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestAnalyzeUploadEndpointMissingFile(t *testing.T) {
	srv := testServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("role", "Data Scientist"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := doRequest(t, srv, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeExportEndpoint(t *testing.T) {
	srv := testServer(t)

	payload := `{"resume_text": "Python developer", "role": "Data Scientist"}`
	req := httptest.NewRequest(http.MethodPost, "/analyze/export", strings.NewReader(payload))
	rec := doRequest(t, srv, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	assert.Equal(t, "Role,Category,Question,Difficulty,Relevance", lines[0])
	assert.Len(t, lines, 4) // header + 3 questions
}

func TestCORSPreflights(t *testing.T) {
	srv := testServer(t)

	rec := doRequest(t, srv, httptest.NewRequest(http.MethodOptions, "/analyze", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMethodNotAllowed(t *testing.T) {
	srv := testServer(t)

	rec := doRequest(t, srv, httptest.NewRequest(http.MethodGet, "/analyze", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHTTPStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrValidation{}))
	assert.Equal(t, http.StatusUnsupportedMediaType, HTTPStatus(&ErrUnsupportedUpload{}))
	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(&ErrExtraction{}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(assert.AnError))
}
