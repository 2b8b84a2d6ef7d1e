package crm

import (
	"context"

	"github.com/shopspring/decimal"
)

// DealOwner identifies the CRM actor responsible for a deal
type DealOwner struct {
	ID    string
	Name  string
	Email string
}

// Deal is a read-only mirror of a CRM deal record. Deals are fetched on
// demand and never persisted locally.
type Deal struct {
	ID                string
	Name              string
	Stage             string
	Value             decimal.Decimal
	Owner             DealOwner
	AssociatedCompany string
}

// DealFetcher retrieves deals from the external CRM.
// Implementations map an upstream 404 to shared.ErrNotFound and
// propagate every other failure.
type DealFetcher interface {
	// ListClosedWonDeals returns closed-won deals, most recently
	// created first per the remote ordering.
	ListClosedWonDeals(ctx context.Context) ([]Deal, error)

	// GetDeal returns a single deal by its CRM record ID
	GetDeal(ctx context.Context, id string) (*Deal, error)
}
