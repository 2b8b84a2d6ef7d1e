package crm

import (
	"context"

	"github.com/onboard/backend/internal/domain/crm"
)

// DealOwnerResponse is the wire shape of a deal owner
type DealOwnerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DealResponse is the wire shape of a CRM deal
type DealResponse struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Stage             string            `json:"stage"`
	Value             float64           `json:"value"`
	Owner             DealOwnerResponse `json:"owner"`
	AssociatedCompany string            `json:"associatedCompany,omitempty"`
}

// ToDealResponse converts a domain deal to its wire shape
func ToDealResponse(d *crm.Deal) DealResponse {
	return DealResponse{
		ID:    d.ID,
		Name:  d.Name,
		Stage: d.Stage,
		Value: d.Value.InexactFloat64(),
		Owner: DealOwnerResponse{
			ID:    d.Owner.ID,
			Name:  d.Owner.Name,
			Email: d.Owner.Email,
		},
		AssociatedCompany: d.AssociatedCompany,
	}
}

// DealService exposes read-only access to CRM deals
type DealService struct {
	fetcher crm.DealFetcher
}

// NewDealService creates a new DealService
func NewDealService(fetcher crm.DealFetcher) *DealService {
	return &DealService{fetcher: fetcher}
}

// ListClosedWon returns all closed-won deals from the CRM
func (s *DealService) ListClosedWon(ctx context.Context) ([]DealResponse, error) {
	deals, err := s.fetcher.ListClosedWonDeals(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]DealResponse, len(deals))
	for i := range deals {
		responses[i] = ToDealResponse(&deals[i])
	}
	return responses, nil
}

// GetByID returns a single deal by its CRM record ID
func (s *DealService) GetByID(ctx context.Context, id string) (*DealResponse, error) {
	deal, err := s.fetcher.GetDeal(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToDealResponse(deal)
	return &response, nil
}
