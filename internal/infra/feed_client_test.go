package infra

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFeedClient(server *httptest.Server) *feedClient {
	return NewFeedClient(FeedClientArgs{
		UserAgent:      "go-jobfeed-test/1.0",
		MaxBodySize:    1 << 20,
		RequestsPerSec: 100,
		Burst:          10,
		HTTPClient:     server.Client(),
	})
}

func TestFetchDocument(t *testing.T) {
	t.Run("CSVレスポンスをそのまま返す", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "go-jobfeed-test/1.0", r.Header.Get("User-Agent"))
			w.Header().Set("Content-Type", "text/csv")
			w.Write([]byte("company,companyDomain\nAcme,acme\n"))
		}))
		defer server.Close()

		client := newTestFeedClient(server)

		doc, err := client.FetchDocument(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Equal(t, "company,companyDomain\nAcme,acme\n", doc)
	})

	t.Run("HTMLレスポンスはtableからCSVに復元する", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write([]byte(`<html><body><table>
				<tr><td>company</td><td>companyDomain</td></tr>
				<tr><td>Acme</td><td>acme</td></tr>
			</table></body></html>`))
		}))
		defer server.Close()

		client := newTestFeedClient(server)

		doc, err := client.FetchDocument(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Equal(t, "company,companyDomain\nAcme,acme\n", doc)
	})

	t.Run("Content-Typeが欠けていてもHTML本文を検知する", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/plain")
			w.Write([]byte("<!DOCTYPE html><html><body><table><tr><td>Acme</td></tr></table></body></html>"))
		}))
		defer server.Close()

		client := newTestFeedClient(server)

		doc, err := client.FetchDocument(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Equal(t, "Acme\n", doc)
	})

	t.Run("2xx以外のステータスはエラー", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		client := newTestFeedClient(server)

		_, err := client.FetchDocument(context.Background(), server.URL)

		assert.Error(t, err)
	})

	t.Run("本文は上限サイズで切り詰める", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/csv")
			w.Write([]byte("0123456789abcdef"))
		}))
		defer server.Close()

		client := NewFeedClient(FeedClientArgs{
			UserAgent:      "go-jobfeed-test/1.0",
			MaxBodySize:    10,
			RequestsPerSec: 100,
			Burst:          10,
			HTTPClient:     server.Client(),
		})

		doc, err := client.FetchDocument(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Equal(t, "0123456789", doc)
	})
}
