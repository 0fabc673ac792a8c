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
	perr "hangman/internal/platform/errors"
	phttp "hangman/internal/platform/net/http"
	"hangman/internal/services/api/users/domain"
)

type fakeSvc struct {
	registered map[string]bool
	active     *string
}

func (f *fakeSvc) Resolve(_ context.Context, ext string) (string, error) {
	if !f.registered[ext] {
		return "", perr.NotFoundf("user not found")
	}
	return "id-" + ext, nil
}

func (f *fakeSvc) Register(_ context.Context, ext string, in domain.RegisterInput) (domain.RegisterResult, error) {
	created := !f.registered[ext]
	f.registered[ext] = true
	return domain.RegisterResult{User: domain.User{ID: "id-" + ext, ExternalUID: ext, Email: in.Email}, Created: created}, nil
}

func (f *fakeSvc) Stats(_ context.Context, uid string) (domain.Stats, error) {
	return domain.Stats{GamesPlayed: 1, ActiveWordBankID: f.active}, nil
}

func (f *fakeSvc) SetActiveWordBank(_ context.Context, uid string, in domain.ActiveBankInput) (domain.Stats, error) {
	f.active = nil
	if !in.Default() {
		f.active = in.WordBankID
	}
	return domain.Stats{ActiveWordBankID: f.active}, nil
}

func setup() (stdhttp.Handler, *fakeSvc) {
	f := &fakeSvc{registered: map[string]bool{}}
	mux := chi.NewRouter()
	signup := httpkit.NewPortFunc(func(_ context.Context, tok string) (string, error) { return tok, nil })
	player := httpkit.NewPortFunc(f.Resolve)
	phttp.AdaptChi(mux).Route("/users", func(r phttp.Router) { Register(r, f, signup, player) })
	return mux, f
}

func call(t *testing.T, h stdhttp.Handler, method, path, token, body string) (int, httpkit.Envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	var env httpkit.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return rec.Code, env
}

func TestRegister_CreatedThenOK(t *testing.T) {
	t.Parallel()

	h, _ := setup()
	body := `{"email":"ada@example.com","display_name":"Ada"}`

	code, _ := call(t, h, stdhttp.MethodPost, "/users/register", "", body)
	if code != stdhttp.StatusUnauthorized {
		t.Fatalf("anonymous register = %d", code)
	}
	code, env := call(t, h, stdhttp.MethodPost, "/users/register", "ext-1", body)
	if code != stdhttp.StatusCreated {
		t.Fatalf("first register = %d %+v", code, env)
	}
	code, _ = call(t, h, stdhttp.MethodPost, "/users/register", "ext-1", body)
	if code != stdhttp.StatusOK {
		t.Fatalf("second register = %d", code)
	}
	code, env = call(t, h, stdhttp.MethodPost, "/users/register", "ext-2", `{"email":"nope"}`)
	if code != stdhttp.StatusBadRequest || env.Field != "email" {
		t.Fatalf("bad email = %d %+v", code, env)
	}
}

func TestMe_RequiresRegisteredPlayer(t *testing.T) {
	t.Parallel()

	h, f := setup()
	code, env := call(t, h, stdhttp.MethodGet, "/users/me/stats", "ext-9", "")
	if code != stdhttp.StatusNotFound || env.Error != "user not found" {
		t.Fatalf("unregistered stats = %d %+v", code, env)
	}

	f.registered["ext-9"] = true
	code, _ = call(t, h, stdhttp.MethodGet, "/users/me/stats", "ext-9", "")
	if code != stdhttp.StatusOK {
		t.Fatalf("stats = %d", code)
	}
}

func TestActiveWordBank_Validation(t *testing.T) {
	t.Parallel()

	h, f := setup()
	f.registered["ext-1"] = true

	cases := []struct {
		body string
		code int
	}{
		{`{"word_bank_id":"33333333-3333-4333-8333-333333333333"}`, stdhttp.StatusOK},
		{`{"word_bank_id":"default"}`, stdhttp.StatusOK},
		{`{"word_bank_id":null}`, stdhttp.StatusOK},
		{`{}`, stdhttp.StatusOK},
		{`{"word_bank_id":"animals"}`, stdhttp.StatusBadRequest},
	}
	for _, tc := range cases {
		code, env := call(t, h, stdhttp.MethodPut, "/users/me/active-word-bank", "ext-1", tc.body)
		if code != tc.code {
			t.Errorf("%s = %d %+v, want %d", tc.body, code, env, tc.code)
		}
	}
	if f.active != nil {
		t.Fatalf("active bank after reset = %v", *f.active)
	}
}
