package httpserver

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbrand "github.com/mylance/mylance-api/internal/application/brand"
	appcontent "github.com/mylance/mylance-api/internal/application/content"
	appprofiles "github.com/mylance/mylance-api/internal/application/profiles"
	appstrategy "github.com/mylance/mylance-api/internal/application/strategy"
	dombrand "github.com/mylance/mylance-api/internal/domain/brand"
	domprofiles "github.com/mylance/mylance-api/internal/domain/profiles"
	domstrategy "github.com/mylance/mylance-api/internal/domain/strategy"
)

const testProfileID = "2f8a4c3e-9d2b-4f6a-8e1c-7b5d0a3f9e21"

type memProfiles struct {
	byID map[domprofiles.ProfileID]*domprofiles.Profile
}

func (m *memProfiles) Save(_ context.Context, p *domprofiles.Profile) error {
	m.byID[p.ID] = p
	return nil
}

func (m *memProfiles) Get(_ context.Context, id domprofiles.ProfileID) (*domprofiles.Profile, error) {
	p, ok := m.byID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return p, nil
}

func (m *memProfiles) List(_ context.Context, _ int) ([]*domprofiles.Profile, error) {
	out := make([]*domprofiles.Profile, 0, len(m.byID))
	for _, p := range m.byID {
		out = append(out, p)
	}
	return out, nil
}

func (m *memProfiles) Delete(_ context.Context, id domprofiles.ProfileID) error {
	if _, ok := m.byID[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.byID, id)
	return nil
}

func (m *memProfiles) UpdateStrategy(_ context.Context, id domprofiles.ProfileID, s string) error {
	p, ok := m.byID[id]
	if !ok {
		return sql.ErrNoRows
	}
	p.ContentStrategy = s
	return nil
}

func (m *memProfiles) UpdatePrompts(_ context.Context, id domprofiles.ProfileID, prompts []domprofiles.Prompt) error {
	p, ok := m.byID[id]
	if !ok {
		return sql.ErrNoRows
	}
	p.LinkedInPrompts = prompts
	return nil
}

type memBrand struct {
	byProfile map[string]*dombrand.Analysis
}

func (m *memBrand) Save(_ context.Context, a *dombrand.Analysis) error {
	m.byProfile[a.ProfileID] = a
	return nil
}

func (m *memBrand) GetByProfile(_ context.Context, profileID string) (*dombrand.Analysis, error) {
	return m.byProfile[profileID], nil
}

type memStrategy struct {
	text string
}

func (m *memStrategy) Save(_ context.Context, s *domstrategy.Strategy) error {
	m.text = s.Text
	return nil
}

func (m *memStrategy) Get(_ context.Context) (*domstrategy.Strategy, error) {
	return &domstrategy.Strategy{Text: m.text}, nil
}

type stubAI struct{}

func (stubAI) GenerateStrategy(context.Context, *dombrand.Analysis, string) (string, error) {
	return "generated strategy", nil
}

func (stubAI) RefineStrategy(context.Context, string, string) (string, error) {
	return "refined strategy", nil
}

func (stubAI) GeneratePrompts(_ context.Context, _ string, count int) ([]domprofiles.Prompt, error) {
	out := make([]domprofiles.Prompt, count)
	for i := range out {
		out[i] = domprofiles.Prompt{Prompt: "post", Hook: "hook", Style: "Educational"}
	}
	return out, nil
}

type testClock struct{}

func (testClock) Now() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }

func newTestServer(t *testing.T) (http.Handler, *memProfiles, *memBrand) {
	t.Helper()

	fp := &memProfiles{byID: make(map[domprofiles.ProfileID]*domprofiles.Profile)}
	fb := &memBrand{byProfile: make(map[string]*dombrand.Analysis)}
	fs := &memStrategy{}
	clock := testClock{}

	h := NewRouter(Deps{
		Profiles: &appprofiles.Service{Repo: fp, Clock: clock},
		Brand:    &appbrand.Service{Repo: fb, Clock: clock},
		Content: &appcontent.Service{
			Profiles: fp,
			Brand:    fb,
			Global:   fs,
			AI:       stubAI{},
			Clock:    clock,
		},
		Strategy: &appstrategy.Service{Repo: fs, Clock: clock},
	})
	return h, fp, fb
}

func doJSON(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func seedProfile(fp *memProfiles) {
	fp.byID[testProfileID] = &domprofiles.Profile{
		ID:        testProfileID,
		FirstName: "Ada",
		LastName:  "Lovelace",
	}
}

func TestCreateProfile(t *testing.T) {
	h, fp, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/v1/profiles",
		`{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var p domprofiles.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.NotEmpty(t, p.ID)
	assert.Contains(t, fp.byID, p.ID)
}

func TestCreateProfileMissingName(t *testing.T) {
	h, _, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodPost, "/v1/profiles", `{"first_name":"Ada"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProfileNotFound(t *testing.T) {
	h, _, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/v1/profiles/"+testProfileID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProfileInvalidID(t *testing.T) {
	h, _, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/v1/profiles/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSaveBrandAnalysisStripsLegacyPrefixes(t *testing.T) {
	h, fp, fb := newTestServer(t)
	seedProfile(fp)

	rec := doJSON(t, h, http.MethodPut, "/v1/profiles/"+testProfileID+"/brand-analysis",
		`{"ideal_customer":"ICP: seed-stage founders","content_pillars":["pricing","hiring"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	saved := fb.byProfile[testProfileID]
	require.NotNil(t, saved)
	assert.Equal(t, "seed-stage founders", *saved.IdealCustomer)
	assert.Equal(t, []string{"pricing", "hiring"}, saved.ContentPillars)
}

func TestSaveBrandAnalysisUnknownProfile(t *testing.T) {
	h, _, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodPut, "/v1/profiles/"+testProfileID+"/brand-analysis",
		`{"ideal_customer":"founders"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetBrandAnalysisEmptyWhenUnsaved(t *testing.T) {
	h, fp, _ := newTestServer(t)
	seedProfile(fp)

	rec := doJSON(t, h, http.MethodGet, "/v1/profiles/"+testProfileID+"/brand-analysis", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var a dombrand.Analysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &a))
	assert.Equal(t, testProfileID, a.ProfileID)
	assert.Nil(t, a.IdealCustomer)
}

func TestGetBrandAnalysisUnknownProfile(t *testing.T) {
	h, _, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodGet, "/v1/profiles/"+testProfileID+"/brand-analysis", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGenerateStrategyWithoutAnalysisConflicts(t *testing.T) {
	h, fp, _ := newTestServer(t)
	seedProfile(fp)

	rec := doJSON(t, h, http.MethodPost, "/v1/profiles/"+testProfileID+"/strategy/generate", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGenerateStrategyPersistsOnProfile(t *testing.T) {
	h, fp, fb := newTestServer(t)
	seedProfile(fp)
	fb.byProfile[testProfileID] = &dombrand.Analysis{ProfileID: testProfileID}

	rec := doJSON(t, h, http.MethodPost, "/v1/profiles/"+testProfileID+"/strategy/generate", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "generated strategy", body["strategy"])
	assert.Equal(t, "generated strategy", fp.byID[testProfileID].ContentStrategy)
}

func TestRefineStrategyRequiresFeedback(t *testing.T) {
	h, fp, _ := newTestServer(t)
	seedProfile(fp)
	fp.byID[testProfileID].ContentStrategy = "old"

	rec := doJSON(t, h, http.MethodPost, "/v1/profiles/"+testProfileID+"/strategy/refine", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGeneratePromptsDefaults(t *testing.T) {
	h, fp, _ := newTestServer(t)
	seedProfile(fp)
	fp.byID[testProfileID].ContentStrategy = "a strategy"

	rec := doJSON(t, h, http.MethodPost, "/v1/profiles/"+testProfileID+"/prompts/generate", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Prompts []domprofiles.Prompt `json:"prompts"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Prompts, 30)
	assert.Len(t, fp.byID[testProfileID].LinkedInPrompts, 30)
}

func TestGeneratePromptsCountTooLarge(t *testing.T) {
	h, fp, _ := newTestServer(t)
	seedProfile(fp)
	fp.byID[testProfileID].ContentStrategy = "a strategy"

	rec := doJSON(t, h, http.MethodPost, "/v1/profiles/"+testProfileID+"/prompts/generate",
		`{"count":500}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGlobalStrategyRoundTrip(t *testing.T) {
	h, _, _ := newTestServer(t)

	rec := doJSON(t, h, http.MethodPut, "/v1/strategy", `{"strategy":"own the niche"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/v1/strategy", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var s domstrategy.Strategy
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	assert.Equal(t, "own the niche", s.Text)
}

func TestExportUnavailableWithoutStore(t *testing.T) {
	h, fp, _ := newTestServer(t)
	seedProfile(fp)

	rec := doJSON(t, h, http.MethodPost, "/v1/profiles/"+testProfileID+"/export", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestDeleteProfile(t *testing.T) {
	h, fp, _ := newTestServer(t)
	seedProfile(fp)

	rec := doJSON(t, h, http.MethodDelete, "/v1/profiles/"+testProfileID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NotContains(t, fp.byID, domprofiles.ProfileID(testProfileID))
}
