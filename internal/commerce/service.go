// Copyright (c) 2026 Holospace. All rights reserved.

package commerce

import (
	"context"
	"fmt"
	"time"

	"github.com/holospace/holospace/internal/platform/apperr"
	"github.com/holospace/holospace/internal/platform/validate"
)

// Service implements purchase use cases.
type Service struct {
	purchaseRepository PurchaseRepository
}

// NewService constructs a new commerce [Service] with necessary dependencies.
func NewService(purchaseRepository PurchaseRepository) *Service {
	return &Service{purchaseRepository: purchaseRepository}
}

/*
Purchase grants the user ownership of a content item exactly once.

Description: Idempotency comes from purchased-set membership — a second
purchase of the same content fails with Conflict and leaves the set unchanged.
The catalog is deliberately not consulted: clients send the price they
displayed, and unknown content IDs are accepted (matching the shipped client
behavior).

The set write and the ledger append are two independent operations; if the
ledger write fails after the set write succeeded, ownership stands and only
the audit record is missing.

Parameters:
  - context: context.Context
  - userID: string
  - contentID: string
  - price: *float64 (nil means the field was absent)

Returns:
  - err: ValidationError, Conflict ("Content already purchased"), or storage errors
*/
func (service *Service) Purchase(context context.Context, userID, contentID string, price *float64) error {

	// Price zero is a legal value (free promo); only absence is rejected.
	validator := &validate.Validator{}
	validator.Required("contentId", contentID).
		Custom("price", price == nil, "This field is required")
	if err := validator.ErrMessage("Content ID and price are required"); err != nil {
		return err
	}

	owned, err := service.purchaseRepository.FindOwned(context, userID)
	if err != nil {
		return err
	}

	for _, ownedID := range owned {
		if ownedID == contentID {
			return apperr.Conflict("Content already purchased")
		}
	}

	owned = append(owned, contentID)
	if err := service.purchaseRepository.SaveOwned(context, userID, owned); err != nil {
		return err
	}

	now := time.Now().UTC()
	entry := &LedgerEntry{
		UserID:    userID,
		ContentID: contentID,
		Price:     *price,
		Timestamp: now,
	}
	if err := service.purchaseRepository.AppendLedger(context, entry, now); err != nil {
		return fmt.Errorf("commerce_service_ledger_failed: %w", err)
	}

	return nil
}

/*
ListPurchases returns the user's purchased-set.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - []string: Owned content IDs (empty slice for new users)
  - err: Storage errors
*/
func (service *Service) ListPurchases(context context.Context, userID string) ([]string, error) {
	return service.purchaseRepository.FindOwned(context, userID)
}

/*
History returns the user's transaction ledger.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - []LedgerEntry: Audit records
  - err: Storage errors
*/
func (service *Service) History(context context.Context, userID string) ([]LedgerEntry, error) {
	return service.purchaseRepository.LedgerHistory(context, userID)
}
