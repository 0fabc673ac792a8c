package middleware_test

import (
	"compress/flate"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	perr "hangman/internal/platform/errors"
	pnet "hangman/internal/platform/net"
	"hangman/internal/platform/net/middleware"
)

func TestAccessLogZerolog_PassThrough(t *testing.T) {
	t.Parallel()

	for _, slow := range []time.Duration{0, time.Nanosecond} {
		mw := middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: slow})
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, "ok")
		})
		rr := httptest.NewRecorder()
		mw(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/x", nil))

		if rr.Code != http.StatusCreated || rr.Body.String() != "ok" {
			t.Fatalf("slow=%v: got %d %q", slow, rr.Code, rr.Body.String())
		}
	}
}

type fakeAuthPort struct {
	user string
	err  error
}

func (f fakeAuthPort) Parse(*http.Request) (string, error) { return f.user, f.err }

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestAuth(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		port     middleware.AuthPort
		wantCode int
		wantUser string
	}{
		{"nil port", nil, http.StatusOK, ""},
		{"resolved", fakeAuthPort{user: "u-1"}, http.StatusOK, "u-1"},
		{"rejected", fakeAuthPort{err: perr.Unauthorizedf("invalid bearer token")}, http.StatusUnauthorized, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var gotUser string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser = pnet.UserID(r.Context())
			})
			rr := httptest.NewRecorder()
			middleware.Auth(tc.port, writeJSON)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

			if rr.Code != tc.wantCode || gotUser != tc.wantUser {
				t.Fatalf("code=%d user=%q", rr.Code, gotUser)
			}
			if tc.wantCode == http.StatusUnauthorized && !strings.Contains(rr.Body.String(), "invalid bearer token") {
				t.Fatalf("body = %s", rr.Body.String())
			}
		})
	}
}

func TestRecoverJSON(t *testing.T) {
	t.Parallel()

	h := middleware.RequestID()(middleware.RecoverJSON(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(errors.New("kaboom"))
	})))
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc")
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rr.Code)
	}
	var body pnet.Wire
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Code != perr.ErrorCodePanic || body.Error != "panic recovered" || body.RequestID != "abc" {
		t.Fatalf("body = %+v", body)
	}
	if rr.Header().Get("X-Request-ID") != "abc" {
		t.Fatalf("request id header missing")
	}
}

func TestRecoverJSON_AbortHandlerRepanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() != http.ErrAbortHandler {
			t.Fatal("expected ErrAbortHandler to propagate")
		}
	}()
	h := middleware.RecoverJSON(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestCorrelate_TagsLoggerWithRequestID(t *testing.T) {
	t.Parallel()

	var seen string
	h := middleware.RequestID()(middleware.Correlate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = pnet.RequestID(r.Context())
	})))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "rid-9")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if seen != "rid-9" {
		t.Fatalf("request id = %q", seen)
	}
}

func TestCompress_DeflateWhenAccepted(t *testing.T) {
	t.Parallel()

	h := middleware.Compress(flate.BestSpeed)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, strings.Repeat(`{"word":"OCEAN"}`, 200))
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "deflate")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Header().Get("Content-Encoding") != "deflate" {
		t.Fatalf("expected deflate, headers=%v", rr.Header())
	}
}

func TestCORS_Preflight(t *testing.T) {
	t.Parallel()

	h := middleware.CORS(middleware.CORSOptions{AllowedOrigins: []string{"http://game.test"}})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/wordbanks", nil)
	req.Header.Set("Origin", "http://game.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "http://game.test" {
		t.Fatalf("allow origin = %q", got)
	}
}

func TestHeartbeat(t *testing.T) {
	t.Parallel()

	h := middleware.Heartbeat("/health")(http.NotFoundHandler())
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
}
