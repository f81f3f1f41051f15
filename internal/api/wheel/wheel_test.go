package wheel

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	dto "spin_wheel/internal/api/dto/wheel"
	"spin_wheel/internal/model"
	"spin_wheel/internal/registry"
	wheelServ "spin_wheel/internal/service/wheel"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type memStore struct {
	saveErr error
}

func (m *memStore) Load(_ context.Context) ([]model.Section, error) {
	return model.NewSections(model.DefaultCapacity), nil
}

func (m *memStore) Save(_ context.Context, _ []model.Section) error {
	return m.saveErr
}

type stubTimer struct{}

func (stubTimer) Stop() bool { return true }

type captureScheduler struct {
	funcs []func()
}

func (c *captureScheduler) AfterFunc(_ time.Duration, f func()) wheelServ.Timer {
	c.funcs = append(c.funcs, f)
	return stubTimer{}
}

type testServer struct {
	router http.Handler
	sched  *captureScheduler
	store  *memStore
	reg    *registry.Registry
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	store := &memStore{}
	reg := registry.New(store, model.DefaultCapacity)
	sched := &captureScheduler{}
	logger := zaptest.NewLogger(t)

	serv := wheelServ.NewWheelService(wheelServ.Deps{
		Registry:  reg,
		Scheduler: sched,
		Logger:    logger,
	})
	t.Cleanup(func() { _ = serv.Close() })

	h := NewHandler(HandlerDeps{Serv: serv, Logger: logger})
	r := chi.NewRouter()
	r.Route("/wheel", h.Routes)

	return &testServer{router: r, sched: sched, store: store, reg: reg}
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) settle() {
	s.sched.funcs[len(s.sched.funcs)-1]()
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestSnapshot_Initial(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/wheel/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	snap := decodeBody[dto.SnapshotResponse](t, rec)
	assert.Len(t, snap.Sections, 20)
	assert.Equal(t, 0, snap.Filled)
	assert.Equal(t, "idle", snap.SpinState)
	require.NotNil(t, snap.CurrentSection)
	assert.Equal(t, 0, *snap.CurrentSection)
	assert.Nil(t, snap.SelectedIndex)
	assert.Equal(t, []string{"", "", ""}, snap.Sections[0].Statements)
}

func TestSave(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/wheel/sections", `{"statements":["a","b","c"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	res := decodeBody[dto.SaveResponse](t, rec)
	assert.Equal(t, 0, res.SavedIndex)
	assert.Equal(t, 1, res.CurrentSection)
	assert.Equal(t, 1, res.Filled)
	assert.Empty(t, res.Warning)

	rec = s.do(t, http.MethodGet, "/wheel/sections/0", "")
	require.Equal(t, http.StatusOK, rec.Code)
	sec := decodeBody[dto.Section](t, rec)
	assert.True(t, sec.Filled)
	assert.Equal(t, []string{"a", "b", "c"}, sec.Statements)
}

func TestSave_BadRequests(t *testing.T) {
	s := newTestServer(t)

	cases := map[string]string{
		"malformed json":    `{"statements":`,
		"two statements":    `{"statements":["a","b"]}`,
		"blank statement":   `{"statements":["a","  ","c"]}`,
		"unknown field":     `{"statements":["a","b","c"],"extra":1}`,
		"missing statement": `{}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := s.do(t, http.MethodPost, "/wheel/sections", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	assert.Equal(t, 0, s.reg.FilledCount())
}

func TestSave_PersistenceWarning(t *testing.T) {
	s := newTestServer(t)
	s.store.saveErr = errors.New("disk full")

	rec := s.do(t, http.MethodPost, "/wheel/sections", `{"statements":["a","b","c"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	res := decodeBody[dto.SaveResponse](t, rec)
	assert.NotEmpty(t, res.Warning)
	assert.Equal(t, 1, res.Filled)
}

func TestSection_Errors(t *testing.T) {
	s := newTestServer(t)

	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/wheel/sections/abc", "").Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/wheel/sections/20", "").Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/wheel/sections/-1", "").Code)
}

func TestSpinFlow(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/wheel/spin", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decodeBody[dto.SpinResponse](t, rec).Accepted)

	require.NoError(t, s.reg.SetStatements(context.Background(), 5, model.Statements{"x", "y", "z"}))

	rec = s.do(t, http.MethodPost, "/wheel/spin", "")
	require.Equal(t, http.StatusOK, rec.Code)
	spin := decodeBody[dto.SpinResponse](t, rec)
	assert.True(t, spin.Accepted)
	assert.Equal(t, 5, spin.Index)
	assert.Equal(t, int64(4000), spin.SettleDelayMs)

	rec = s.do(t, http.MethodPost, "/wheel/spin", "")
	assert.False(t, decodeBody[dto.SpinResponse](t, rec).Accepted)

	assert.Equal(t, http.StatusConflict, s.do(t, http.MethodGet, "/wheel/revealed", "").Code)
	assert.Equal(t, http.StatusConflict, s.do(t, http.MethodPost, "/wheel/keep", "").Code)
	assert.Equal(t, http.StatusConflict, s.do(t, http.MethodPost, "/wheel/reset", `{"confirm":true}`).Code)

	progress := decodeBody[dto.ProgressResponse](t, s.do(t, http.MethodGet, "/wheel/progress", ""))
	assert.False(t, progress.SpinEnabled)

	s.settle()

	rec = s.do(t, http.MethodGet, "/wheel/revealed", "")
	require.Equal(t, http.StatusOK, rec.Code)
	reveal := decodeBody[dto.RevealResponse](t, rec)
	assert.Equal(t, spin.SpinID, reveal.SpinID)
	assert.Equal(t, []string{"x", "y", "z"}, reveal.Statements)

	rec = s.do(t, http.MethodPost, "/wheel/keep", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	stats := decodeBody[dto.StatsResponse](t, s.do(t, http.MethodGet, "/wheel/stats", ""))
	assert.Equal(t, 1, stats.TotalSpins)
	assert.Equal(t, 1, stats.Kept)
	assert.Equal(t, map[string]int{"5": 1}, stats.Selections)
	assert.NotNil(t, stats.LastSpinAt)
}

func TestRemoveFlow(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, s.reg.SetStatements(context.Background(), 3, model.Statements{"x", "y", "z"}))

	assert.Equal(t, http.StatusConflict, s.do(t, http.MethodPost, "/wheel/remove", "").Code)

	s.do(t, http.MethodPost, "/wheel/spin", "")
	s.settle()

	rec := s.do(t, http.MethodPost, "/wheel/remove", "")
	require.Equal(t, http.StatusOK, rec.Code)
	res := decodeBody[dto.RemoveResponse](t, rec)
	assert.Equal(t, 3, res.RemovedIndex)
	assert.Equal(t, 19, res.Length)
	assert.False(t, res.PoolExhausted)
	require.NotNil(t, res.CurrentSection)
	assert.Equal(t, 0, *res.CurrentSection)

	snap := decodeBody[dto.SnapshotResponse](t, s.do(t, http.MethodGet, "/wheel/", ""))
	assert.Equal(t, 19, snap.Length)
	assert.Equal(t, 0, snap.Filled)
	assert.Equal(t, "idle", snap.SpinState)
}

func TestEditAndReset(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodPost, "/wheel/sections", `{"statements":["a","b","c"]}`)

	rec := s.do(t, http.MethodPost, "/wheel/edit", "")
	require.Equal(t, http.StatusOK, rec.Code)
	edit := decodeBody[dto.EditResponse](t, rec)
	assert.Equal(t, 0, edit.Index)
	assert.Equal(t, []string{"a", "b", "c"}, edit.Section.Statements)

	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, "/wheel/reset", `{"confirm":false}`).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, "/wheel/reset", `nope`).Code)
	assert.Equal(t, 1, s.reg.FilledCount())

	rec = s.do(t, http.MethodPost, "/wheel/reset", `{"confirm":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeBody[dto.ResetResponse](t, rec).Reset)
	assert.Equal(t, 0, s.reg.FilledCount())
}

func TestMapError(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{model.ErrValidation, http.StatusBadRequest},
		{model.ErrConfirmationRequired, http.StatusBadRequest},
		{model.ErrOutOfRange, http.StatusNotFound},
		{model.ErrInvalidState, http.StatusConflict},
		{model.ErrSpinInProgress, http.StatusConflict},
		{model.ErrEmptyPool, http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, mapError(tc.err), tc.err.Error())
	}
}

func TestRemove_LastSectionHasNoEditingPointer(t *testing.T) {
	store := &memStore{}
	reg := registry.New(store, 1)
	sched := &captureScheduler{}
	serv := wheelServ.NewWheelService(wheelServ.Deps{Registry: reg, Scheduler: sched})
	t.Cleanup(func() { _ = serv.Close() })

	r := chi.NewRouter()
	r.Route("/wheel", NewHandler(HandlerDeps{Serv: serv}).Routes)
	s := &testServer{router: r, sched: sched, store: store, reg: reg}

	require.NoError(t, reg.SetStatements(context.Background(), 0, model.Statements{"x", "y", "z"}))
	s.do(t, http.MethodPost, "/wheel/spin", "")
	s.settle()

	rec := s.do(t, http.MethodPost, "/wheel/remove", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"removed_index":0,"length":0,"current_section":null,"pool_exhausted":true}`, rec.Body.String())
}
