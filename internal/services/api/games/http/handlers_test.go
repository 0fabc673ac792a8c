package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"hangman/internal/modkit/httpkit"
	phttp "hangman/internal/platform/net/http"
	"hangman/internal/services/api/games/domain"
)

type fakeSvc struct {
	user  string
	limit int
}

func (f *fakeSvc) Record(_ context.Context, uid string, in domain.RecordInput) (domain.RecordResult, error) {
	f.user = uid
	return domain.RecordResult{Game: domain.Game{Won: *in.Won, Score: in.Score}}, nil
}

func (f *fakeSvc) History(_ context.Context, uid string, limit int) ([]domain.Game, error) {
	f.user, f.limit = uid, limit
	return []domain.Game{{ID: "g1"}}, nil
}

func setup() (stdhttp.Handler, *fakeSvc) {
	f := &fakeSvc{}
	mux := chi.NewRouter()
	auth := httpkit.NewPortFunc(func(_ context.Context, tok string) (string, error) { return "id-" + tok, nil })
	phttp.AdaptChi(mux).Route("/games", func(r phttp.Router) {
		Register(r, f, auth, Limits{Default: 20, Max: 100})
	})
	return mux, f
}

func call(t *testing.T, h stdhttp.Handler, method, path, body string) (int, httpkit.Envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer ext-1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	var env httpkit.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return rec.Code, env
}

func TestRecord(t *testing.T) {
	t.Parallel()

	h, f := setup()
	code, _ := call(t, h, stdhttp.MethodPost, "/games", `{"won":true,"score":150,"word":"LION","difficulty":"easy"}`)
	if code != stdhttp.StatusCreated || f.user != "id-ext-1" {
		t.Fatalf("record = %d for %q", code, f.user)
	}

	cases := map[string]string{
		`{"score":10}`:                     "won",
		`{"won":true,"score":-1}`:          "score",
		`{"won":true,"difficulty":"epic"}`: "difficulty",
		`{"won":true,"wrong_guesses":27}`:  "wrong_guesses",
	}
	for body, field := range cases {
		code, env := call(t, h, stdhttp.MethodPost, "/games", body)
		if code != stdhttp.StatusBadRequest || env.Field != field {
			t.Errorf("%s = %d %+v, want field %s", body, code, env, field)
		}
	}
}

func TestHistory_Limit(t *testing.T) {
	t.Parallel()

	cases := []struct {
		query string
		code  int
		limit int
	}{
		{"", stdhttp.StatusOK, 20},
		{"?limit=5", stdhttp.StatusOK, 5},
		{"?limit=500", stdhttp.StatusOK, 100},
		{"?limit=0", stdhttp.StatusUnprocessableEntity, 0},
		{"?limit=ten", stdhttp.StatusUnprocessableEntity, 0},
	}
	for _, tc := range cases {
		h, f := setup()
		code, _ := call(t, h, stdhttp.MethodGet, "/games"+tc.query, "")
		if code != tc.code || f.limit != tc.limit {
			t.Errorf("GET /games%s = %d limit %d, want %d limit %d", tc.query, code, f.limit, tc.code, tc.limit)
		}
	}
}
