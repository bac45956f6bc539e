package openpagerank_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeoscan/aeoscan/internal/adapters/outbound/openpagerank"
	"github.com/aeoscan/aeoscan/internal/domain"
)

func TestClient_LookupMany(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("API-OPR"))
		assert.ElementsMatch(t, []string{"example.com", "unknown.test"}, r.URL.Query()["domains[]"])

		fmt.Fprint(w, `{
			"response": [
				{"status_code": 200, "domain": "example.com", "page_rank_decimal": 5.53},
				{"status_code": 404, "domain": "unknown.test", "page_rank_decimal": 0}
			]
		}`)
	}))
	defer server.Close()

	client := openpagerank.New("test-key", time.Second, openpagerank.WithBaseURL(server.URL))
	result := client.LookupMany(context.Background(), []string{"example.com", "unknown.test"})

	require.True(t, result.OK(), result.Reason())
	ranks := result.Data()
	require.Len(t, ranks, 1, "entries with a non-200 status are skipped")
	assert.Equal(t, "example.com", ranks[0].Domain)
	assert.InDelta(t, 0.553, ranks[0].Rank0to1, 1e-9)
	assert.Equal(t, 55, ranks[0].Rank100, "5.53 on the 0-10 scale rounds to 55/100")
}

func TestClient_Lookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"response": [{"status_code": 200, "domain": "example.com", "page_rank_decimal": 7.0}]}`)
	}))
	defer server.Close()

	client := openpagerank.New("test-key", time.Second, openpagerank.WithBaseURL(server.URL))
	result := client.Lookup(context.Background(), "example.com")

	require.True(t, result.OK(), result.Reason())
	assert.Equal(t, 70, result.Data().Rank100)
}

func TestClient_Lookup_NoRankReturned(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"response": [{"status_code": 404, "domain": "example.com"}]}`)
	}))
	defer server.Close()

	client := openpagerank.New("test-key", time.Second, openpagerank.WithBaseURL(server.URL))
	result := client.Lookup(context.Background(), "example.com")

	assert.False(t, result.OK())
	assert.Equal(t, "no rank returned", result.Reason())
}

func TestClient_LookupMany_EmptyInput(t *testing.T) {
	client := openpagerank.New("test-key", time.Second)
	result := client.LookupMany(context.Background(), nil)

	require.True(t, result.OK())
	assert.Empty(t, result.Data())
}

func TestClient_LookupMany_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := openpagerank.New("bad-key", time.Second, openpagerank.WithBaseURL(server.URL))
	result := client.LookupMany(context.Background(), []string{"example.com"})

	assert.False(t, result.OK())
	assert.Equal(t, "http 401", result.Reason())
}

func TestClient_LookupMany_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := openpagerank.New("test-key", 50*time.Millisecond, openpagerank.WithBaseURL(server.URL))
	result := client.LookupMany(context.Background(), []string{"example.com"})

	assert.False(t, result.OK())
	assert.Equal(t, domain.ReasonTimeout, result.Reason())
}
