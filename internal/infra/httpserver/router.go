package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	appbrand "github.com/mylance/mylance-api/internal/application/brand"
	appcontent "github.com/mylance/mylance-api/internal/application/content"
	appexport "github.com/mylance/mylance-api/internal/application/export"
	appprofiles "github.com/mylance/mylance-api/internal/application/profiles"
	appstrategy "github.com/mylance/mylance-api/internal/application/strategy"
	domai "github.com/mylance/mylance-api/internal/domain/ai"
	domprofiles "github.com/mylance/mylance-api/internal/domain/profiles"
	"github.com/mylance/mylance-api/internal/middleware"
)

type Router struct {
	profilesSvc *appprofiles.Service
	brandSvc    *appbrand.Service
	contentSvc  *appcontent.Service
	strategySvc *appstrategy.Service
	exportSvc   *appexport.Service
}

type Deps struct {
	Profiles *appprofiles.Service
	Brand    *appbrand.Service
	Content  *appcontent.Service
	Strategy *appstrategy.Service
	Export   *appexport.Service // nil when object storage is not configured

	HealthCheckers map[string]middleware.HealthChecker
}

func NewRouter(deps Deps) http.Handler {
	r := &Router{
		profilesSvc: deps.Profiles,
		brandSvc:    deps.Brand,
		contentSvc:  deps.Content,
		strategySvc: deps.Strategy,
		exportSvc:   deps.Export,
	}
	mux := chi.NewRouter()

	mux.Get("/health", middleware.HealthHandler(deps.HealthCheckers))
	mux.Get("/ready", middleware.ReadinessHandler)
	mux.Get("/live", middleware.LivenessHandler)
	mux.Get("/metrics", middleware.MetricsHandler)

	mux.Route("/v1", func(rt chi.Router) {
		rt.Post("/profiles", r.wrap(r.handleCreateProfile))
		rt.Get("/profiles", r.wrap(r.handleListProfiles))
		rt.Get("/profiles/{id}", r.wrap(r.handleGetProfile))
		rt.Put("/profiles/{id}", r.wrap(r.handleUpdateProfile))
		rt.Delete("/profiles/{id}", r.wrap(r.handleDeleteProfile))

		rt.Get("/profiles/{id}/brand-analysis", r.wrap(r.handleGetBrandAnalysis))
		rt.Put("/profiles/{id}/brand-analysis", r.wrap(r.handleSaveBrandAnalysis))

		rt.Post("/profiles/{id}/strategy/generate", r.wrap(r.handleGenerateStrategy))
		rt.Post("/profiles/{id}/strategy/refine", r.wrap(r.handleRefineStrategy))
		rt.Put("/profiles/{id}/strategy", r.wrap(r.handleSaveProfileStrategy))

		rt.Post("/profiles/{id}/prompts/generate", r.wrap(r.handleGeneratePrompts))
		rt.Get("/profiles/{id}/prompts", r.wrap(r.handleGetPrompts))

		rt.Post("/profiles/{id}/export", r.wrap(r.handleExport))

		rt.Get("/strategy", r.wrap(r.handleGetGlobalStrategy))
		rt.Put("/strategy", r.wrap(r.handleSaveGlobalStrategy))
	})

	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

var errBadRequest = errors.New("bad request")

func badRequest(err error) error {
	return fmt.Errorf("%w: %v", errBadRequest, err)
}

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				http.Error(w, "not found", http.StatusNotFound)
			case errors.Is(err, domai.ErrQuotaExceeded):
				http.Error(w, "ai quota exceeded", http.StatusTooManyRequests)
			case errors.Is(err, errBadRequest),
				errors.Is(err, appprofiles.ErrMissingName):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, appcontent.ErrNoAnalysis),
				errors.Is(err, appcontent.ErrNoStrategy):
				http.Error(w, err.Error(), http.StatusConflict)
			default:
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func profileID(req *http.Request) (domprofiles.ProfileID, error) {
	id := chi.URLParam(req, "id")
	if err := middleware.ValidateProfileID(id); err != nil {
		return "", badRequest(err)
	}
	return domprofiles.ProfileID(id), nil
}

type profileBody struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	LinkedInURL string `json:"linkedin_url"`
}

func (b profileBody) validate() error {
	if err := middleware.ValidateEmail(b.Email); err != nil {
		return badRequest(err)
	}
	if err := middleware.ValidateLinkedInURL(b.LinkedInURL); err != nil {
		return badRequest(err)
	}
	return nil
}

// POST /v1/profiles
func (r *Router) handleCreateProfile(w http.ResponseWriter, req *http.Request) error {
	var body profileBody
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest(err)
	}
	if err := body.validate(); err != nil {
		return err
	}

	p, err := r.profilesSvc.Create(req.Context(), appprofiles.CreateProfileCommand{
		FirstName:   body.FirstName,
		LastName:    body.LastName,
		Email:       body.Email,
		LinkedInURL: body.LinkedInURL,
	})
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusCreated, p)
}

// GET /v1/profiles?limit=50
func (r *Router) handleListProfiles(w http.ResponseWriter, req *http.Request) error {
	limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))

	list, err := r.profilesSvc.List(req.Context(), limit)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, list)
}

// GET /v1/profiles/{id}
func (r *Router) handleGetProfile(w http.ResponseWriter, req *http.Request) error {
	id, err := profileID(req)
	if err != nil {
		return err
	}
	p, err := r.profilesSvc.Get(req.Context(), id)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, p)
}

// PUT /v1/profiles/{id}
func (r *Router) handleUpdateProfile(w http.ResponseWriter, req *http.Request) error {
	id, err := profileID(req)
	if err != nil {
		return err
	}
	var body profileBody
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest(err)
	}
	if err := body.validate(); err != nil {
		return err
	}

	p, err := r.profilesSvc.Update(req.Context(), id, appprofiles.CreateProfileCommand{
		FirstName:   body.FirstName,
		LastName:    body.LastName,
		Email:       body.Email,
		LinkedInURL: body.LinkedInURL,
	})
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, p)
}

// DELETE /v1/profiles/{id}
func (r *Router) handleDeleteProfile(w http.ResponseWriter, req *http.Request) error {
	id, err := profileID(req)
	if err != nil {
		return err
	}
	if err := r.profilesSvc.Delete(req.Context(), id); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// GET /v1/profiles/{id}/brand-analysis
func (r *Router) handleGetBrandAnalysis(w http.ResponseWriter, req *http.Request) error {
	id, err := profileID(req)
	if err != nil {
		return err
	}
	// Empty analysis only for a profile that exists; unknown profiles are 404
	if _, err := r.profilesSvc.Get(req.Context(), id); err != nil {
		return err
	}

	a, err := r.brandSvc.Get(req.Context(), string(id))
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, a)
}

// PUT /v1/profiles/{id}/brand-analysis
func (r *Router) handleSaveBrandAnalysis(w http.ResponseWriter, req *http.Request) error {
	id, err := profileID(req)
	if err != nil {
		return err
	}

	var body struct {
		IdealCustomer    *string  `json:"ideal_customer"`
		ICPPainPoints    *string  `json:"icp_pain_points"`
		UniqueValue      *string  `json:"unique_value"`
		ProofPoints      *string  `json:"proof_points"`
		EnergizingTopics *string  `json:"energizing_topics"`
		DecisionMaker    *string  `json:"decision_maker"`
		ContentPillars   []string `json:"content_pillars"`
		KeyTopics        []string `json:"key_topics"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest(err)
	}

	// The profile must exist before analysis can be attached
	if _, err := r.profilesSvc.Get(req.Context(), id); err != nil {
		return err
	}

	a, err := r.brandSvc.Save(req.Context(), appbrand.SaveAnalysisCommand{
		ProfileID:        string(id),
		IdealCustomer:    body.IdealCustomer,
		ICPPainPoints:    body.ICPPainPoints,
		UniqueValue:      body.UniqueValue,
		ProofPoints:      body.ProofPoints,
		EnergizingTopics: body.EnergizingTopics,
		DecisionMaker:    body.DecisionMaker,
		ContentPillars:   body.ContentPillars,
		KeyTopics:        body.KeyTopics,
	})
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, a)
}

// POST /v1/profiles/{id}/strategy/generate
func (r *Router) handleGenerateStrategy(w http.ResponseWriter, req *http.Request) error {
	id, err := profileID(req)
	if err != nil {
		return err
	}

	middleware.IncrementGenerations()
	text, err := r.contentSvc.GenerateStrategy(req.Context(), id)
	if err != nil {
		middleware.IncrementGenerationsFailed()
		return err
	}
	return writeJSON(w, http.StatusOK, map[string]any{"strategy": text})
}

// POST /v1/profiles/{id}/strategy/refine
func (r *Router) handleRefineStrategy(w http.ResponseWriter, req *http.Request) error {
	id, err := profileID(req)
	if err != nil {
		return err
	}
	var body struct {
		Feedback string `json:"feedback"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest(err)
	}
	if body.Feedback == "" {
		return badRequest(fmt.Errorf("feedback is required"))
	}

	middleware.IncrementGenerations()
	text, err := r.contentSvc.RefineStrategy(req.Context(), id, body.Feedback)
	if err != nil {
		middleware.IncrementGenerationsFailed()
		return err
	}
	return writeJSON(w, http.StatusOK, map[string]any{"strategy": text})
}

// PUT /v1/profiles/{id}/strategy
func (r *Router) handleSaveProfileStrategy(w http.ResponseWriter, req *http.Request) error {
	id, err := profileID(req)
	if err != nil {
		return err
	}
	var body struct {
		Strategy string `json:"strategy"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest(err)
	}

	if err := r.contentSvc.SaveStrategy(req.Context(), id, body.Strategy); err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, map[string]any{"status": "saved"})
}

// POST /v1/profiles/{id}/prompts/generate
func (r *Router) handleGeneratePrompts(w http.ResponseWriter, req *http.Request) error {
	id, err := profileID(req)
	if err != nil {
		return err
	}
	var body struct {
		Count int `json:"count"`
	}
	if req.ContentLength > 0 {
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			return badRequest(err)
		}
	}
	if err := middleware.ValidatePromptCount(body.Count); err != nil {
		return badRequest(err)
	}

	middleware.IncrementGenerations()
	prompts, err := r.contentSvc.GeneratePrompts(req.Context(), id, body.Count)
	if err != nil {
		middleware.IncrementGenerationsFailed()
		return err
	}
	return writeJSON(w, http.StatusOK, map[string]any{"prompts": prompts})
}

// GET /v1/profiles/{id}/prompts
func (r *Router) handleGetPrompts(w http.ResponseWriter, req *http.Request) error {
	id, err := profileID(req)
	if err != nil {
		return err
	}
	prompts, err := r.contentSvc.Prompts(req.Context(), id)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, map[string]any{"prompts": prompts})
}

// POST /v1/profiles/{id}/export
func (r *Router) handleExport(w http.ResponseWriter, req *http.Request) error {
	if r.exportSvc == nil {
		http.Error(w, "object storage not configured", http.StatusServiceUnavailable)
		return nil
	}
	id, err := profileID(req)
	if err != nil {
		return err
	}

	url, err := r.exportSvc.Export(req.Context(), id)
	if err != nil {
		return err
	}
	middleware.IncrementExports()
	return writeJSON(w, http.StatusOK, map[string]any{"url": url})
}

// GET /v1/strategy
func (r *Router) handleGetGlobalStrategy(w http.ResponseWriter, req *http.Request) error {
	s, err := r.strategySvc.Get(req.Context())
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, s)
}

// PUT /v1/strategy
func (r *Router) handleSaveGlobalStrategy(w http.ResponseWriter, req *http.Request) error {
	var body struct {
		Strategy string `json:"strategy"`
	}
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest(err)
	}

	s, err := r.strategySvc.Save(req.Context(), body.Strategy)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, s)
}
