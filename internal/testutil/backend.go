package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/thenoetrevino/testdeck/internal/models"
)

// FakeBackend is an in-memory stand-in for the test plan REST backend.
// It serves the same routes under /api and records every request.
type FakeBackend struct {
	Server *httptest.Server

	mu         sync.Mutex
	nextID     int
	plans      map[int]*models.TestPlan
	cases      map[int]*models.TestCase
	executions map[int]*models.TestPlanExecution
	requests   []*http.Request
	failures   map[string]int // "METHOD path" -> status to answer once
	now        func() time.Time
}

// NewFakeBackend starts a fake backend and closes it when the test ends
func NewFakeBackend(t *testing.T) *FakeBackend {
	t.Helper()

	fb := &FakeBackend{
		nextID:     1,
		plans:      make(map[int]*models.TestPlan),
		cases:      make(map[int]*models.TestCase),
		executions: make(map[int]*models.TestPlanExecution),
		failures:   make(map[string]int),
		now:        time.Now,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/testplans", fb.listPlans)
	mux.HandleFunc("GET /api/testplans/count", fb.countPlans)
	mux.HandleFunc("GET /api/testplans/{id}", fb.getPlan)
	mux.HandleFunc("GET /api/testplans/{id}/with-testcases", fb.getPlanWithCases)
	mux.HandleFunc("POST /api/testplans", fb.createPlan)
	mux.HandleFunc("PUT /api/testplans/{id}", fb.updatePlan)
	mux.HandleFunc("DELETE /api/testplans/{id}", fb.deletePlan)
	mux.HandleFunc("GET /api/testplans/{id}/testcases", fb.listCases)
	mux.HandleFunc("POST /api/testplans/{id}/testcases", fb.createCase)
	mux.HandleFunc("GET /api/testcases/{id}", fb.getCase)
	mux.HandleFunc("PUT /api/testcases/{id}", fb.updateCase)
	mux.HandleFunc("DELETE /api/testcases/{id}", fb.deleteCase)
	mux.HandleFunc("GET /api/testplans/{id}/executions", fb.listExecutions)
	mux.HandleFunc("POST /api/testplans/{id}/executions", fb.createExecution)
	mux.HandleFunc("GET /api/executions/{id}", fb.getExecution)
	mux.HandleFunc("PUT /api/executions/{id}", fb.updateExecution)
	mux.HandleFunc("DELETE /api/executions/{id}", fb.deleteExecution)
	mux.HandleFunc("GET /api/reports/testplans/{id}/duration-sum-last-month", fb.durationReport)

	fb.Server = httptest.NewServer(fb.record(mux))
	t.Cleanup(fb.Server.Close)
	return fb
}

// URL is the API base URL to hand to api.NewClient
func (fb *FakeBackend) URL() string {
	return fb.Server.URL + "/api"
}

// FailNext makes the next request matching method and path answer with status
func (fb *FakeBackend) FailNext(method, path string, status int) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.failures[method+" "+path] = status
}

// Requests returns a copy of every request received so far
func (fb *FakeBackend) Requests() []*http.Request {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return append([]*http.Request(nil), fb.requests...)
}

// LastRequest returns the most recent request, or nil
func (fb *FakeBackend) LastRequest() *http.Request {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	if len(fb.requests) == 0 {
		return nil
	}
	return fb.requests[len(fb.requests)-1]
}

// SeedPlan stores a plan directly and returns its ID
func (fb *FakeBackend) SeedPlan(name string, status models.PlanStatus, tags ...string) int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	id := fb.allocID()
	fb.plans[id] = &models.TestPlan{
		ID:        id,
		Name:      name,
		Status:    status,
		CreatedAt: models.NewTimestamp(fb.now()),
		TagList:   fb.tagList(id, models.TagsFromStrings(tags)),
	}
	return id
}

// SeedCase stores a test case directly and returns its ID
func (fb *FakeBackend) SeedCase(planID int, name string, duration int) int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	id := fb.allocID()
	fb.cases[id] = &models.TestCase{
		ID:         id,
		TestPlanID: planID,
		Name:       name,
		Status:     models.CaseStatusPending,
		Priority:   models.PriorityMedium,
		Duration:   duration,
		CreatedAt:  models.NewTimestamp(fb.now()),
	}
	return id
}

// SeedExecution stores a finished run directly and returns its ID
func (fb *FakeBackend) SeedExecution(planID int, started, finished time.Time, status models.ExecutionStatus) int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	id := fb.allocID()
	fb.executions[id] = &models.TestPlanExecution{
		ID:         id,
		TestPlanID: planID,
		Status:     status,
		StartedAt:  models.NewTimestamp(started),
		FinishedAt: models.NewTimestamp(finished),
		CreatedAt:  models.NewTimestamp(fb.now()),
	}
	return id
}

// Plan returns a copy of the stored plan, or nil
func (fb *FakeBackend) Plan(id int) *models.TestPlan {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	p, ok := fb.plans[id]
	if !ok {
		return nil
	}
	cp := *p
	cp.TagList = append([]models.TestTag(nil), p.TagList...)
	return &cp
}

// Case returns a copy of the stored test case, or nil
func (fb *FakeBackend) Case(id int) *models.TestCase {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	c, ok := fb.cases[id]
	if !ok {
		return nil
	}
	cp := *c
	return &cp
}

// Execution returns a copy of the stored run, or nil
func (fb *FakeBackend) Execution(id int) *models.TestPlanExecution {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	e, ok := fb.executions[id]
	if !ok {
		return nil
	}
	cp := *e
	return &cp
}

// ============================================================================
// Plumbing
// ============================================================================

func (fb *FakeBackend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fb.mu.Lock()
		fb.requests = append(fb.requests, r.Clone(r.Context()))
		key := r.Method + " " + r.URL.Path
		status, fail := fb.failures[key]
		delete(fb.failures, key)
		fb.mu.Unlock()

		if fail {
			writeError(w, status, "injected failure")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (fb *FakeBackend) allocID() int {
	id := fb.nextID
	fb.nextID++
	return id
}

func (fb *FakeBackend) tagList(planID int, tags []models.TestTag) []models.TestTag {
	list := make([]models.TestTag, 0, len(tags))
	for _, t := range tags {
		list = append(list, models.TestTag{ID: fb.allocID(), TestPlanID: planID, Tag: t.Tag})
	}
	return list
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{
		"status":  status,
		"error":   http.StatusText(status),
		"message": msg,
	})
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "malformed body")
		return false
	}
	return true
}

// ============================================================================
// Plans
// ============================================================================

func (fb *FakeBackend) sortedPlans(filter string) []*models.TestPlan {
	plans := make([]*models.TestPlan, 0, len(fb.plans))
	for _, p := range fb.plans {
		if filter != "" && !p.HasTag(filter) {
			continue
		}
		plans = append(plans, p)
	}
	sort.Slice(plans, func(i, j int) bool { return plans[i].ID < plans[j].ID })
	return plans
}

func (fb *FakeBackend) listPlans(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	per := 20
	if v := q.Get("per"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid per")
			return
		}
		per = n
	}
	after := 0
	if v := q.Get("after"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid after")
			return
		}
		after = n
	}

	fb.mu.Lock()
	defer fb.mu.Unlock()
	page := []models.TestPlan{}
	for _, p := range fb.sortedPlans(q.Get("filter")) {
		if p.ID <= after {
			continue
		}
		if len(page) == per {
			break
		}
		page = append(page, *p)
	}
	writeJSON(w, http.StatusOK, page)
}

func (fb *FakeBackend) countPlans(w http.ResponseWriter, r *http.Request) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	writeJSON(w, http.StatusOK, models.PlanCount{Count: len(fb.sortedPlans(r.URL.Query().Get("tag")))})
}

func (fb *FakeBackend) getPlan(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	fb.mu.Lock()
	defer fb.mu.Unlock()
	p, found := fb.plans[id]
	if !found {
		writeError(w, http.StatusNotFound, "TestPlan not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (fb *FakeBackend) getPlanWithCases(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	fb.mu.Lock()
	defer fb.mu.Unlock()
	p, found := fb.plans[id]
	if !found {
		writeError(w, http.StatusNotFound, "TestPlan not found")
		return
	}
	withCases := *p
	withCases.TestCases = fb.casesOf(id)
	writeJSON(w, http.StatusOK, withCases)
}

func (fb *FakeBackend) createPlan(w http.ResponseWriter, r *http.Request) {
	var in models.TestPlan
	if !decode(w, r, &in) {
		return
	}
	fb.mu.Lock()
	defer fb.mu.Unlock()
	id := fb.allocID()
	p := &models.TestPlan{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Status:      in.Status,
		CreatedAt:   models.NewTimestamp(fb.now()),
		TagList:     fb.tagList(id, in.TagList),
	}
	fb.plans[id] = p
	writeJSON(w, http.StatusOK, p)
}

func (fb *FakeBackend) updatePlan(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in models.TestPlan
	if !decode(w, r, &in) {
		return
	}
	fb.mu.Lock()
	defer fb.mu.Unlock()
	p, found := fb.plans[id]
	if !found {
		writeError(w, http.StatusNotFound, "TestPlan not found")
		return
	}
	p.Name = in.Name
	p.Description = in.Description
	p.Status = in.Status
	p.TagList = fb.tagList(id, in.TagList)
	writeJSON(w, http.StatusOK, p)
}

func (fb *FakeBackend) deletePlan(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	fb.mu.Lock()
	defer fb.mu.Unlock()
	if _, found := fb.plans[id]; !found {
		writeError(w, http.StatusNotFound, "TestPlan not found")
		return
	}
	delete(fb.plans, id)
	for cid, c := range fb.cases {
		if c.TestPlanID == id {
			delete(fb.cases, cid)
		}
	}
	for eid, e := range fb.executions {
		if e.TestPlanID == id {
			delete(fb.executions, eid)
		}
	}
	w.WriteHeader(http.StatusOK)
}

// ============================================================================
// Test cases
// ============================================================================

func (fb *FakeBackend) casesOf(planID int) []models.TestCase {
	list := []models.TestCase{}
	for _, c := range fb.cases {
		if c.TestPlanID == planID {
			list = append(list, *c)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

func (fb *FakeBackend) listCases(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	fb.mu.Lock()
	defer fb.mu.Unlock()
	writeJSON(w, http.StatusOK, fb.casesOf(id))
}

func (fb *FakeBackend) createCase(w http.ResponseWriter, r *http.Request) {
	planID, ok := pathID(w, r)
	if !ok {
		return
	}
	var in models.TestCase
	if !decode(w, r, &in) {
		return
	}
	fb.mu.Lock()
	defer fb.mu.Unlock()
	if _, found := fb.plans[planID]; !found {
		writeError(w, http.StatusNotFound, "TestPlan not found")
		return
	}
	in.ID = fb.allocID()
	in.TestPlanID = planID
	in.CreatedAt = models.NewTimestamp(fb.now())
	fb.cases[in.ID] = &in
	writeJSON(w, http.StatusOK, in)
}

func (fb *FakeBackend) getCase(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	fb.mu.Lock()
	defer fb.mu.Unlock()
	c, found := fb.cases[id]
	if !found {
		writeError(w, http.StatusNotFound, "TestCase not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (fb *FakeBackend) updateCase(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in models.TestCase
	if !decode(w, r, &in) {
		return
	}
	fb.mu.Lock()
	defer fb.mu.Unlock()
	c, found := fb.cases[id]
	if !found {
		writeError(w, http.StatusNotFound, "TestCase not found")
		return
	}
	in.ID = id
	in.TestPlanID = c.TestPlanID
	in.CreatedAt = c.CreatedAt
	fb.cases[id] = &in
	writeJSON(w, http.StatusOK, in)
}

func (fb *FakeBackend) deleteCase(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	fb.mu.Lock()
	defer fb.mu.Unlock()
	if _, found := fb.cases[id]; !found {
		writeError(w, http.StatusNotFound, "TestCase not found")
		return
	}
	delete(fb.cases, id)
	w.WriteHeader(http.StatusOK)
}

// ============================================================================
// Executions and reports
// ============================================================================

func (fb *FakeBackend) listExecutions(w http.ResponseWriter, r *http.Request) {
	planID, ok := pathID(w, r)
	if !ok {
		return
	}
	fb.mu.Lock()
	defer fb.mu.Unlock()
	list := []models.TestPlanExecution{}
	for _, e := range fb.executions {
		if e.TestPlanID == planID {
			list = append(list, *e)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	writeJSON(w, http.StatusOK, list)
}

func (fb *FakeBackend) createExecution(w http.ResponseWriter, r *http.Request) {
	planID, ok := pathID(w, r)
	if !ok {
		return
	}
	var in models.TestPlanExecution
	if !decode(w, r, &in) {
		return
	}
	fb.mu.Lock()
	defer fb.mu.Unlock()
	if _, found := fb.plans[planID]; !found {
		writeError(w, http.StatusNotFound, "TestPlan not found")
		return
	}
	in.ID = fb.allocID()
	in.TestPlanID = planID
	in.CreatedAt = models.NewTimestamp(fb.now())
	in.UpdatedAt = in.CreatedAt
	fb.executions[in.ID] = &in
	writeJSON(w, http.StatusOK, in)
}

func (fb *FakeBackend) getExecution(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	fb.mu.Lock()
	defer fb.mu.Unlock()
	e, found := fb.executions[id]
	if !found {
		writeError(w, http.StatusNotFound, "Execution not found")
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (fb *FakeBackend) updateExecution(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in models.TestPlanExecution
	if !decode(w, r, &in) {
		return
	}
	fb.mu.Lock()
	defer fb.mu.Unlock()
	e, found := fb.executions[id]
	if !found {
		writeError(w, http.StatusNotFound, "Execution not found")
		return
	}
	e.Status = in.Status
	e.StartedAt = in.StartedAt
	e.FinishedAt = in.FinishedAt
	e.ResultNotes = in.ResultNotes
	e.UpdatedAt = models.NewTimestamp(fb.now())
	writeJSON(w, http.StatusOK, e)
}

func (fb *FakeBackend) deleteExecution(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	fb.mu.Lock()
	defer fb.mu.Unlock()
	if _, found := fb.executions[id]; !found {
		writeError(w, http.StatusNotFound, "Execution not found")
		return
	}
	delete(fb.executions, id)
	w.WriteHeader(http.StatusOK)
}

func (fb *FakeBackend) durationReport(w http.ResponseWriter, r *http.Request) {
	planID, ok := pathID(w, r)
	if !ok {
		return
	}
	fb.mu.Lock()
	defer fb.mu.Unlock()

	end := fb.now()
	start := end.AddDate(0, -1, 0)
	count := 0
	for _, e := range fb.executions {
		if e.TestPlanID != planID || e.StartedAt.IsZero() || e.FinishedAt.IsZero() {
			continue
		}
		if !e.StartedAt.Before(start) && !e.FinishedAt.After(end) {
			count++
		}
	}
	sum := 0
	for _, c := range fb.cases {
		if c.TestPlanID == planID {
			sum += c.Duration
		}
	}

	const layout = "2006-01-02 15:04:05"
	writeJSON(w, http.StatusOK, models.DurationReport{
		PlanID:                  planID,
		PeriodStart:             start.Format(layout),
		PeriodEnd:               end.Format(layout),
		ExecutionCount:          count,
		PerExecutionDurationSum: sum,
		TotalDuration:           int64(sum) * int64(count),
	})
}
