package middleware_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anuj140/hireengine/internal/audit"
	"github.com/anuj140/hireengine/internal/auth"
	"github.com/anuj140/hireengine/internal/domain"
	"github.com/anuj140/hireengine/internal/middleware"
	"github.com/anuj140/hireengine/internal/monitoring"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeTokens map[string]uuid.UUID

func (f fakeTokens) Validate(token string) (uuid.UUID, error) {
	id, ok := f[token]
	if !ok {
		return uuid.Nil, auth.ErrInvalidToken
	}
	return id, nil
}

type fakeResolver struct {
	principals map[uuid.UUID]*auth.Principal
	errs       map[uuid.UUID]error
}

func (f fakeResolver) Resolve(_ context.Context, id uuid.UUID) (*auth.Principal, error) {
	if err, ok := f.errs[id]; ok {
		return nil, err
	}
	return f.principals[id], nil
}

type recordingAudit struct {
	decisions []audit.Decision
	err       error
}

func (r *recordingAudit) LogDecision(_ context.Context, d audit.Decision) error {
	if r.err != nil {
		return r.err
	}
	r.decisions = append(r.decisions, d)
	return nil
}

func TestAuthenticate(t *testing.T) {
	recruiterID := uuid.New()
	pausedID := uuid.New()
	ghostID := uuid.New()
	brokenID := uuid.New()

	tokens := fakeTokens{
		"recruiter": recruiterID,
		"paused":    pausedID,
		"ghost":     ghostID,
		"broken":    brokenID,
	}
	resolver := fakeResolver{
		principals: map[uuid.UUID]*auth.Principal{
			recruiterID: {ID: recruiterID, Role: auth.RoleRecruiter, Company: recruiterID},
		},
		errs: map[uuid.UUID]error{
			pausedID: domain.Policyf(domain.ErrForbidden, "team member account is paused"),
			ghostID:  domain.Policyf(domain.ErrAccountNotFound, "no account exists for this identity"),
			brokenID: errors.New("db down"),
		},
	}

	var seen *auth.Principal
	h := middleware.Authenticate(tokens, resolver, testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = auth.PrincipalFrom(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"unknown token", "Bearer nope", http.StatusUnauthorized},
		{"account gone", "Bearer ghost", http.StatusUnauthorized},
		{"paused team member", "Bearer paused", http.StatusForbidden},
		{"store failure", "Bearer broken", http.StatusInternalServerError},
		{"valid", "Bearer recruiter", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = nil
			req := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusNoContent {
				require.NotNil(t, seen)
				assert.Equal(t, recruiterID, seen.ID)
			} else {
				assert.Nil(t, seen)
			}
		})
	}
}

func TestRequireRoles(t *testing.T) {
	monitor := monitoring.NewMonitor("test")
	rec := &recordingAudit{}
	h := middleware.RequireRoles(rec, monitor, testLogger(), "recruiter")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	serve := func(p *auth.Principal) int {
		req := httptest.NewRequest(http.MethodPost, "/api/jobs", nil)
		if p != nil {
			req = req.WithContext(auth.WithPrincipal(req.Context(), p))
		}
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, serve(&auth.Principal{ID: uuid.New(), Role: auth.RoleRecruiter}))
	assert.Equal(t, http.StatusOK, serve(&auth.Principal{ID: uuid.New(), Role: auth.RoleHRManager}))
	assert.Equal(t, http.StatusForbidden, serve(&auth.Principal{ID: uuid.New(), Role: auth.RoleUser}))
	assert.Equal(t, http.StatusUnauthorized, serve(nil))

	require.Len(t, rec.decisions, 2)
	assert.Equal(t, "recruiter", rec.decisions[0].Rule)
	assert.False(t, rec.decisions[0].Allowed)

	series, err := testutil.GatherAndCount(monitor.Registry(), "authorization_decisions_total")
	require.NoError(t, err)
	assert.Equal(t, 2, series)
}

func TestRequireRoles_AuditFailureIsLogged(t *testing.T) {
	var logs bytes.Buffer
	rec := &recordingAudit{err: errors.New("audit table missing")}
	h := middleware.RequireRoles(rec, monitoring.Noop{}, slog.New(slog.NewTextHandler(&logs, nil)), "admin")(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/plans", nil)
	req = req.WithContext(auth.WithPrincipal(req.Context(), &auth.Principal{ID: uuid.New(), Role: auth.RoleRecruiter}))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "audit table missing")
}

func TestRecover(t *testing.T) {
	h := middleware.Recover(testLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}
