package otp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/keyfold/authd/internal/authd/domain"
)

func TestCheck(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	challenge := domain.OTPChallenge{Code: "123456", SessionCode: "sess-1"}

	t.Run("valid challenge", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/check", r.URL.Path)
			require.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body struct {
				Code        string `json:"code"`
				SessionCode string `json:"session_code"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Equal(t, "123456", body.Code)
			require.Equal(t, "sess-1", body.SessionCode)

			_ = json.NewEncoder(w).Encode(map[string]bool{"valid": true})
		}))
		t.Cleanup(srv.Close)

		client := NewClient(srv.URL, time.Second)
		require.True(t, client.Check(ctx, challenge))
	})

	t.Run("remote says invalid", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]bool{"valid": false})
		}))
		t.Cleanup(srv.Close)

		require.False(t, NewClient(srv.URL, time.Second).Check(ctx, challenge))
	})

	t.Run("non-2xx status fails closed", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		t.Cleanup(srv.Close)

		require.False(t, NewClient(srv.URL, time.Second).Check(ctx, challenge))
	})

	t.Run("malformed body fails closed", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("{not json"))
		}))
		t.Cleanup(srv.Close)

		require.False(t, NewClient(srv.URL, time.Second).Check(ctx, challenge))
	})

	t.Run("unreachable service fails closed", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // deliberately dead

		require.False(t, NewClient(srv.URL, time.Second).Check(ctx, challenge))
	})
}

func TestInvalidate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	challenge := domain.OTPChallenge{Code: "123456", SessionCode: "sess-1"}

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		var gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.WriteHeader(http.StatusOK)
		}))
		t.Cleanup(srv.Close)

		require.NoError(t, NewClient(srv.URL, time.Second).Invalidate(ctx, challenge))
		require.Equal(t, "/invalidate", gotPath)
	})

	t.Run("non-2xx surfaces an error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusBadGateway)
		}))
		t.Cleanup(srv.Close)

		require.Error(t, NewClient(srv.URL, time.Second).Invalidate(ctx, challenge))
	})

	t.Run("unreachable service surfaces an error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		require.Error(t, NewClient(srv.URL, time.Second).Invalidate(ctx, challenge))
	})
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	t.Run("trims trailing slash", func(t *testing.T) {
		client := NewClient("http://otp.local/", time.Second)
		require.Equal(t, "http://otp.local", client.BaseURL)
	})

	t.Run("defaults the timeout", func(t *testing.T) {
		client := NewClient("http://otp.local", 0)
		require.Equal(t, DefaultTimeout, client.HTTPClient.Timeout)
	})
}
