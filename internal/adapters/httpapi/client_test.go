package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolarame/ativos/internal/core/domain"
)

func TestClient_List(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/ativos", r.URL.Path)
		assert.Empty(t, r.Header.Get("Accept"))
		_, _ = io.WriteString(w, `[{"nome":"PETR4","valor":32.5,"data":"2024-01-01"},{"nome":"VALE3","valor":60,"data":"2024-01-02"}]`)
	}))
	defer srv.Close()

	assets, err := NewClient(srv.URL, 0).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Asset{
		{Name: "PETR4", Value: 32.5, Date: "2024-01-01"},
		{Name: "VALE3", Value: 60, Date: "2024-01-02"},
	}, assets)
	assert.Equal(t, "32.50", assets[0].FormattedValue())
}

func TestClient_ListEmpty(t *testing.T) {
	for _, body := range []string{`[]`, `null`} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, body)
		}))

		assets, err := NewClient(srv.URL, 0).List(context.Background())
		srv.Close()

		require.NoError(t, err, body)
		assert.NotNil(t, assets, body)
		assert.Empty(t, assets, body)
	}
}

func TestClient_ListErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		wantMsg    string
	}{
		{"server error with body", http.StatusInternalServerError, "banco indisponível\n", 500, "banco indisponível"},
		{"server error without body", http.StatusBadGateway, "", 502, "Bad Gateway"},
		{"malformed json", http.StatusOK, "{not json", 200, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL, 0).List(context.Background())

			var rErr *domain.RequestError
			require.ErrorAs(t, err, &rErr)
			assert.Equal(t, "list", rErr.Op)
			assert.Equal(t, tt.wantStatus, rErr.StatusCode)
			assert.Equal(t, tt.wantMsg, rErr.Message)
			assert.NotEmpty(t, rErr.Error())
		})
	}
}

func TestClient_ListUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, time.Second).List(context.Background())

	var rErr *domain.RequestError
	require.ErrorAs(t, err, &rErr)
	assert.Equal(t, 0, rErr.StatusCode)
}

func TestClient_Create(t *testing.T) {
	var got domain.Asset
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/ativos", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"nome":"PETR4","valor":10,"data":"2024-01-01"}`, string(raw))
		assert.NoError(t, json.Unmarshal(raw, &got))

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	err := NewClient(srv.URL+"/", 0).Create(context.Background(), domain.Asset{Name: "PETR4", Value: 10, Date: "2024-01-01"})
	require.NoError(t, err)
	assert.Equal(t, "PETR4", got.Name)
}

func TestClient_CreateRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Ativo já cadastrado", http.StatusConflict)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, 0).Create(context.Background(), domain.Asset{Name: "PETR4", Value: 10, Date: "2024-01-01"})

	var rErr *domain.RequestError
	require.ErrorAs(t, err, &rErr)
	assert.Equal(t, "create", rErr.Op)
	assert.Equal(t, http.StatusConflict, rErr.StatusCode)
	assert.Equal(t, "Ativo já cadastrado", err.Error())
}

func TestClient_Cancelled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.URL, 0).List(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient("", 0)
	assert.Equal(t, DefaultBaseURL, c.BaseURL())
	assert.Equal(t, "http://example.com", NewClient("http://example.com///", 0).BaseURL())
}
