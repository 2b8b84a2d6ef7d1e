package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	crmapp "github.com/onboard/backend/internal/application/crm"
	"github.com/onboard/backend/internal/domain/crm"
	"github.com/onboard/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDealFetcher struct {
	deals []crm.Deal
	err   error
}

func (s *stubDealFetcher) ListClosedWonDeals(ctx context.Context) ([]crm.Deal, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.deals, nil
}

func (s *stubDealFetcher) GetDeal(ctx context.Context, id string) (*crm.Deal, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.deals {
		if s.deals[i].ID == id {
			return &s.deals[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

func setupDealRouter(fetcher crm.DealFetcher) *gin.Engine {
	h := NewDealHandler(crmapp.NewDealService(fetcher))

	engine := gin.New()
	engine.GET("/deals", h.List)
	engine.GET("/deals/:id", h.Get)
	return engine
}

func TestDealHandler_List(t *testing.T) {
	fetcher := &stubDealFetcher{deals: []crm.Deal{
		{
			ID:    "rec-001",
			Name:  "Enterprise Rollout",
			Stage: "Won 🎉",
			Value: decimal.NewFromFloat(125000.50),
			Owner: crm.DealOwner{ID: "actor-1", Name: "Dana Reyes", Email: "dana@example.com"},
		},
	}}
	engine := setupDealRouter(fetcher)

	w := performJSON(engine, "GET", "/deals", "")
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data []crmapp.DealResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "Enterprise Rollout", envelope.Data[0].Name)
	assert.Equal(t, 125000.50, envelope.Data[0].Value)
	assert.Equal(t, "Dana Reyes", envelope.Data[0].Owner.Name)
}

func TestDealHandler_Get(t *testing.T) {
	fetcher := &stubDealFetcher{deals: []crm.Deal{
		{ID: "rec-042", Name: "Clinic Expansion", Stage: "Won 🎉", Value: decimal.NewFromInt(48000)},
	}}
	engine := setupDealRouter(fetcher)

	w := performJSON(engine, "GET", "/deals/rec-042", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Clinic Expansion")
}

func TestDealHandler_Get_NotFound(t *testing.T) {
	engine := setupDealRouter(&stubDealFetcher{})

	w := performJSON(engine, "GET", "/deals/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestDealHandler_NotConfigured(t *testing.T) {
	engine := setupDealRouter(&stubDealFetcher{err: shared.ErrNotConfigured})

	w := performJSON(engine, "GET", "/deals", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, shared.ErrNotConfigured.Message, resp["error"])
}

func TestDealHandler_UpstreamFailure(t *testing.T) {
	engine := setupDealRouter(&stubDealFetcher{err: shared.ErrUpstream})

	w := performJSON(engine, "GET", "/deals", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
