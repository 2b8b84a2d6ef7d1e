package attio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/onboard/backend/internal/domain/crm"
	"github.com/onboard/backend/internal/domain/shared"
	"github.com/onboard/backend/internal/infrastructure/config"
	"github.com/shopspring/decimal"
)

// closedWonStage is the Attio stage label that marks a deal as closed-won
const closedWonStage = "Won 🎉"

// Client fetches deal records from the Attio CRM API
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

var _ crm.DealFetcher = (*Client)(nil)

// NewClient creates an Attio API client from configuration
func NewClient(cfg config.AttioConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
	}
}

// attioRecord mirrors the wire shape of an Attio deal record
type attioRecord struct {
	ID struct {
		RecordID string `json:"record_id"`
	} `json:"id"`
	Values struct {
		Name      []textValue   `json:"name"`
		Stage     []textValue   `json:"stage"`
		DealValue []numberValue `json:"deal_value"`
		DealOwner []struct {
			ReferencedActorID   string `json:"referenced_actor_id"`
			ReferencedActorName string `json:"referenced_actor_name"`
			Email               string `json:"email"`
		} `json:"deal_owner"`
		AssociatedCompany []struct {
			TargetRecordID string `json:"target_record_id"`
		} `json:"associated_company"`
	} `json:"values"`
}

type textValue struct {
	Value string `json:"value"`
}

type numberValue struct {
	Value decimal.Decimal `json:"value"`
}

type queryRequest struct {
	Filter queryFilter `json:"filter"`
	Sorts  []querySort `json:"sorts"`
}

type queryFilter struct {
	Attribute string `json:"attribute"`
	Operator  string `json:"operator"`
	Value     string `json:"value"`
}

type querySort struct {
	Attribute string `json:"attribute"`
	Direction string `json:"direction"`
}

// ListClosedWonDeals queries Attio for all deals in the closed-won stage,
// newest first
func (c *Client) ListClosedWonDeals(ctx context.Context) ([]crm.Deal, error) {
	if c.apiKey == "" {
		return nil, shared.ErrNotConfigured
	}

	query := queryRequest{
		Filter: queryFilter{
			Attribute: "stage",
			Operator:  "equals",
			Value:     closedWonStage,
		},
		Sorts: []querySort{
			{Attribute: "created_at", Direction: "desc"},
		},
	}

	body, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("failed to encode deal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/objects/deals/records/query", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build deal query request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: attio query returned status %d", shared.ErrUpstream, resp.StatusCode)
	}

	var payload struct {
		Data []attioRecord `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode deal query response: %w", err)
	}

	deals := make([]crm.Deal, len(payload.Data))
	for i := range payload.Data {
		deals[i] = transformRecord(&payload.Data[i])
	}
	return deals, nil
}

// GetDeal fetches a single deal record by ID. An upstream 404 maps to
// shared.ErrNotFound; any other failure propagates as an upstream error.
func (c *Client) GetDeal(ctx context.Context, id string) (*crm.Deal, error) {
	if c.apiKey == "" {
		return nil, shared.ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/objects/deals/records/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build deal request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, shared.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: attio record fetch returned status %d", shared.ErrUpstream, resp.StatusCode)
	}

	var payload struct {
		Data attioRecord `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode deal response: %w", err)
	}

	deal := transformRecord(&payload.Data)
	return &deal, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
}

// transformRecord normalizes a raw Attio record into a Deal, substituting
// placeholder values for attributes the record does not carry
func transformRecord(record *attioRecord) crm.Deal {
	deal := crm.Deal{
		ID:    record.ID.RecordID,
		Name:  "Untitled Deal",
		Stage: "Unknown",
		Owner: crm.DealOwner{Name: "Unassigned"},
	}

	if len(record.Values.Name) > 0 && record.Values.Name[0].Value != "" {
		deal.Name = record.Values.Name[0].Value
	}
	if len(record.Values.Stage) > 0 && record.Values.Stage[0].Value != "" {
		deal.Stage = record.Values.Stage[0].Value
	}
	if len(record.Values.DealValue) > 0 {
		deal.Value = record.Values.DealValue[0].Value
	}
	if len(record.Values.DealOwner) > 0 {
		owner := record.Values.DealOwner[0]
		deal.Owner.ID = owner.ReferencedActorID
		deal.Owner.Email = owner.Email
		if owner.ReferencedActorName != "" {
			deal.Owner.Name = owner.ReferencedActorName
		}
	}
	if len(record.Values.AssociatedCompany) > 0 {
		deal.AssociatedCompany = record.Values.AssociatedCompany[0].TargetRecordID
	}

	return deal
}
