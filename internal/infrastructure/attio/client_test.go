package attio

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/onboard/backend/internal/domain/shared"
	"github.com/onboard/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *Client {
	return NewClient(config.AttioConfig{
		APIKey:  "test-api-key",
		BaseURL: serverURL,
		Timeout: 5 * time.Second,
	})
}

func TestListClosedWonDeals(t *testing.T) {
	var capturedAuth string
	var capturedBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/objects/deals/records/query", r.URL.Path)
		capturedAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&capturedBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": [
				{
					"id": {"record_id": "rec-001"},
					"values": {
						"name": [{"value": "Enterprise Rollout"}],
						"stage": [{"value": "Won 🎉"}],
						"deal_value": [{"value": 125000.50}],
						"deal_owner": [{
							"referenced_actor_id": "actor-1",
							"referenced_actor_name": "Dana Reyes",
							"email": "dana@example.com"
						}],
						"associated_company": [{"target_record_id": "company-9"}]
					}
				},
				{
					"id": {"record_id": "rec-002"},
					"values": {}
				}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	deals, err := client.ListClosedWonDeals(context.Background())
	require.NoError(t, err)
	require.Len(t, deals, 2)

	assert.Equal(t, "Bearer test-api-key", capturedAuth)

	filter, ok := capturedBody["filter"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "stage", filter["attribute"])
	assert.Equal(t, "equals", filter["operator"])
	assert.Equal(t, "Won 🎉", filter["value"])

	sorts, ok := capturedBody["sorts"].([]interface{})
	require.True(t, ok)
	require.Len(t, sorts, 1)
	sort := sorts[0].(map[string]interface{})
	assert.Equal(t, "created_at", sort["attribute"])
	assert.Equal(t, "desc", sort["direction"])

	first := deals[0]
	assert.Equal(t, "rec-001", first.ID)
	assert.Equal(t, "Enterprise Rollout", first.Name)
	assert.Equal(t, "Won 🎉", first.Stage)
	assert.Equal(t, "125000.5", first.Value.String())
	assert.Equal(t, "actor-1", first.Owner.ID)
	assert.Equal(t, "Dana Reyes", first.Owner.Name)
	assert.Equal(t, "dana@example.com", first.Owner.Email)
	assert.Equal(t, "company-9", first.AssociatedCompany)

	// records with no attribute values fall back to placeholders
	second := deals[1]
	assert.Equal(t, "rec-002", second.ID)
	assert.Equal(t, "Untitled Deal", second.Name)
	assert.Equal(t, "Unknown", second.Stage)
	assert.True(t, second.Value.IsZero())
	assert.Equal(t, "", second.Owner.ID)
	assert.Equal(t, "Unassigned", second.Owner.Name)
	assert.Equal(t, "", second.Owner.Email)
	assert.Equal(t, "", second.AssociatedCompany)
}

func TestListClosedWonDeals_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	deals, err := client.ListClosedWonDeals(context.Background())
	require.Error(t, err)
	assert.Nil(t, deals)
	assert.ErrorIs(t, err, shared.ErrUpstream)
}

func TestListClosedWonDeals_MissingAPIKey(t *testing.T) {
	client := NewClient(config.AttioConfig{
		BaseURL: "https://api.attio.com/v2",
		Timeout: 5 * time.Second,
	})

	_, err := client.ListClosedWonDeals(context.Background())
	assert.ErrorIs(t, err, shared.ErrNotConfigured)
}

func TestGetDeal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/objects/deals/records/rec-042", r.URL.Path)
		assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": {
				"id": {"record_id": "rec-042"},
				"values": {
					"name": [{"value": "Clinic Expansion"}],
					"stage": [{"value": "Won 🎉"}],
					"deal_value": [{"value": 48000}]
				}
			}
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	deal, err := client.GetDeal(context.Background(), "rec-042")
	require.NoError(t, err)
	require.NotNil(t, deal)

	assert.Equal(t, "rec-042", deal.ID)
	assert.Equal(t, "Clinic Expansion", deal.Name)
	assert.Equal(t, "48000", deal.Value.String())
	assert.Equal(t, "Unassigned", deal.Owner.Name)
}

func TestGetDeal_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	deal, err := client.GetDeal(context.Background(), "missing")
	assert.Nil(t, deal)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGetDeal_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.GetDeal(context.Background(), "rec-001")
	assert.ErrorIs(t, err, shared.ErrUpstream)
}

func TestGetDeal_MissingAPIKey(t *testing.T) {
	client := NewClient(config.AttioConfig{BaseURL: "https://api.attio.com/v2", Timeout: time.Second})
	_, err := client.GetDeal(context.Background(), "rec-001")
	assert.ErrorIs(t, err, shared.ErrNotConfigured)
}

func TestClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := client.ListClosedWonDeals(ctx)
	require.Error(t, err)
}
