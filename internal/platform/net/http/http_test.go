package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"

	"hangman/internal/platform/config"
	perr "hangman/internal/platform/errors"
	pnet "hangman/internal/platform/net"
	phttp "hangman/internal/platform/net/http"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) phttp.Envelope {
	t.Helper()
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return env
}

func TestHandle_Responses(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		resp   phttp.Response
		status int
		code   perr.ErrorCode
		msg    string
	}{
		{"ok", phttp.OK("x"), http.StatusOK, 0, ""},
		{"zero status", phttp.Response{Body: "x"}, http.StatusOK, 0, ""},
		{"created", phttp.Created("x"), http.StatusCreated, 0, ""},
		{"accepted", phttp.Response{Status: http.StatusAccepted, Body: "x"}, http.StatusAccepted, 0, ""},
		{"not found", phttp.Error(perr.NotFoundf("word bank not found")), http.StatusNotFound, perr.ErrorCodeNotFound, "word bank not found"},
		{"foreign", phttp.Error(errors.New("boom")), http.StatusInternalServerError, perr.ErrorCodeUnknown, "boom"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = req.WithContext(pnet.WithRequest(req.Context(), "rid"))
			rec := httptest.NewRecorder()
			phttp.Handle(func(*http.Request) phttp.Response { return tc.resp })(rec, req)

			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d", rec.Code, tc.status)
			}
			env := decode(t, rec)
			if env.StatusCode != tc.status || env.RequestID != "rid" || env.Code != tc.code || env.Error != tc.msg {
				t.Fatalf("envelope = %+v", env)
			}
		})
	}
}

func TestHandle_NoContentAndHeaders(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	resp := phttp.NoContent()
	resp.Header = http.Header{"X-Test": {"1"}}
	phttp.Handle(func(*http.Request) phttp.Response { return resp })(rec, httptest.NewRequest(http.MethodDelete, "/", nil))
	if rec.Code != http.StatusNoContent || rec.Body.Len() != 0 || rec.Header().Get("X-Test") != "1" {
		t.Fatalf("got %d %q %v", rec.Code, rec.Body.String(), rec.Header())
	}
}

func TestList(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	phttp.Handle(func(*http.Request) phttp.Response { return phttp.List([]string{"a"}, 1, 20) })(
		rec, httptest.NewRequest(http.MethodGet, "/", nil))

	var body struct {
		Data struct {
			Items []string   `json:"items"`
			Page  phttp.Page `json:"page"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(phttp.Page{Total: 1, Limit: 20}, body.Data.Page); diff != "" {
		t.Fatalf("page (-want +got):\n%s", diff)
	}
}

type createReq struct {
	Name string `json:"name" validate:"notblank"`
}

func TestJSONHandler(t *testing.T) {
	t.Parallel()

	h := phttp.JSONHandler(func(_ *http.Request, in createReq) (any, error) {
		if in.Name == "fail" {
			return nil, perr.Validationf("rejected")
		}
		if in.Name == "new" {
			return phttp.Created(in.Name), nil
		}
		return strings.ToUpper(in.Name), nil
	})

	cases := []struct {
		body   string
		status int
	}{
		{`{"name":"ok"}`, http.StatusOK},
		{`{"name":"new"}`, http.StatusCreated},
		{`{"name":"fail"}`, http.StatusBadRequest},
		{`{"name":" "}`, http.StatusBadRequest},
		{`nope`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body)))
		if rec.Code != tc.status {
			t.Errorf("%s: status %d, want %d", tc.body, rec.Code, tc.status)
		}
	}

	rec := httptest.NewRecorder()
	phttp.JSONHandlerNoBody(func(*http.Request) (any, error) { return "pong", nil })(
		rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if env := decode(t, rec); env.Data != "pong" {
		t.Fatalf("no body data = %v", env.Data)
	}
}

func TestRouter_RoutesGroupsAndParams(t *testing.T) {
	t.Parallel()

	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-MW", "yes")
			next.ServeHTTP(w, req)
		})
	})
	echo := func(w http.ResponseWriter, req *http.Request) {
		_, _ = fmt.Fprintf(w, "%s %s", req.Method, phttp.Param(req, "id"))
	}
	r.Route("/banks", func(sub phttp.Router) {
		sub.Get("/{id}", echo)
		sub.Put("/{id}", echo)
		sub.Patch("/{id}", echo)
		sub.Delete("/{id}", echo)
		sub.Group(func(g phttp.Router) { g.Post("/", echo) })
	})
	r.Handle("/raw", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("raw")) }))

	for _, m := range []string{http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete} {
		rec := httptest.NewRecorder()
		r.Mux().ServeHTTP(rec, httptest.NewRequest(m, "/banks/42", nil))
		if rec.Body.String() != m+" 42" || rec.Header().Get("X-MW") != "yes" {
			t.Errorf("%s: body %q", m, rec.Body.String())
		}
	}
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/banks/", nil))
	if rec.Body.String() != "POST " {
		t.Errorf("group post: %q", rec.Body.String())
	}
	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/raw", nil))
	if rec.Body.String() != "raw" {
		t.Errorf("handle: %q", rec.Body.String())
	}
}

func freePort(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	return fmt.Sprint(l.Addr().(*net.TCPAddr).Port)
}

func TestServer_RunAndGracefulShutdown(t *testing.T) {
	port := freePort(t)
	t.Setenv("SRV_TEST_PORT", port)
	t.Setenv("SRV_TEST_SHUTDOWN_GRACE", "2s")

	optCalled := false
	srv := phttp.NewServer(config.New().Prefix("SRV_TEST_"), func(*chi.Mux) { optCalled = true })
	if !optCalled || srv.Addr() != ":"+port {
		t.Fatalf("addr=%q opt=%v", srv.Addr(), optCalled)
	}
	srv.Router().Get("/ping", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("pong")) })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	url := "http://127.0.0.1:" + port + "/ping"
	deadline := time.Now().Add(3 * time.Second)
	for {
		resp, err := http.Get(url)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d", resp.StatusCode)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("server never came up: %v", err)
		}
		time.Sleep(20 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
