package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"offerchain/internal/cache"
	"offerchain/internal/core/domain"
	"offerchain/internal/core/port"
)

// activeOffersKey holds the serialized public offer list. Every catalog
// mutation drops it, so a stale chain outlives a write only in another
// process, and only up to the TTL.
const activeOffersKey = "offers:active"

// CatalogUseCase manages the ordered offer list, with a read-through
// cache on the public listing.
type CatalogUseCase struct {
	offers port.OfferRepository
	cache  cache.Cache
	ttl    time.Duration
}

// NewCatalogUseCase creates a new usecase with the provided repository
// and cache. A non-positive ttl falls back to 30 seconds.
func NewCatalogUseCase(offers port.OfferRepository, c cache.Cache, ttl time.Duration) *CatalogUseCase {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &CatalogUseCase{offers: offers, cache: c, ttl: ttl}
}

// ListActive returns the active offers in display order. Cache failures
// of any kind degrade to a repository read; they never fail the request.
func (u *CatalogUseCase) ListActive(ctx context.Context) ([]domain.Offer, error) {
	if raw, err := u.cache.Get(ctx, activeOffersKey); err == nil {
		var cached []domain.Offer
		if err = json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
	}

	offers, err := u.offers.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(offers); err == nil {
		_ = u.cache.Set(ctx, activeOffersKey, raw, u.ttl)
	}
	return offers, nil
}

// ListAll returns the full catalog with action counts for the admin view.
func (u *CatalogUseCase) ListAll(ctx context.Context) ([]port.OfferWithStats, error) {
	return u.offers.ListAll(ctx)
}

// Get returns a single offer with its action count.
func (u *CatalogUseCase) Get(ctx context.Context, id string) (port.OfferWithStats, error) {
	ows, err := u.offers.Get(ctx, id)
	if err != nil {
		return port.OfferWithStats{}, err
	}
	if ows == nil {
		return port.OfferWithStats{}, domain.ErrNotFound
	}
	return *ows, nil
}

// Create inserts a new offer. A zero position appends at the end of the
// chain; the repository assigns max(position)+1 atomically.
func (u *CatalogUseCase) Create(ctx context.Context, in port.CreateOfferInput) (domain.Offer, error) {
	if in.Title == "" || in.Description == "" || in.SavingsText == "" || in.AffiliateURL == "" {
		return domain.Offer{}, domain.Validationf("title, description, savingsText, and affiliateUrl are required")
	}
	if in.Position < 0 {
		return domain.Offer{}, domain.Validationf("position must be a positive integer")
	}

	o := domain.Offer{
		ID:           uuid.NewString(),
		Title:        in.Title,
		Description:  in.Description,
		SavingsText:  in.SavingsText,
		AffiliateURL: in.AffiliateURL,
		Position:     in.Position,
		IsActive:     true,
	}
	if err := u.offers.Create(ctx, &o); err != nil {
		return domain.Offer{}, err
	}
	u.invalidate(ctx)
	return o, nil
}

// Update applies provided fields only; absent fields stay untouched.
func (u *CatalogUseCase) Update(ctx context.Context, id string, upd port.OfferUpdate) (domain.Offer, error) {
	if upd.Position != nil && *upd.Position <= 0 {
		return domain.Offer{}, domain.Validationf("position must be a positive integer")
	}
	o, err := u.offers.Update(ctx, id, upd)
	if err != nil {
		return domain.Offer{}, err
	}
	if o == nil {
		return domain.Offer{}, domain.ErrNotFound
	}
	u.invalidate(ctx)
	return *o, nil
}

// Delete removes the offer and, by cascade, its ledger history.
func (u *CatalogUseCase) Delete(ctx context.Context, id string) error {
	deleted, err := u.offers.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	u.invalidate(ctx)
	return nil
}

// Reorder renumbers the whole catalog to match ids, all or nothing.
func (u *CatalogUseCase) Reorder(ctx context.Context, ids []string) ([]domain.Offer, error) {
	if len(ids) == 0 {
		return nil, domain.Validationf("offerIds must be a non-empty array")
	}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			return nil, domain.Validationf("offerIds must not contain empty values")
		}
		if _, dup := seen[id]; dup {
			return nil, domain.Validationf("offerIds must not contain duplicates")
		}
		seen[id] = struct{}{}
	}

	offers, err := u.offers.Reorder(ctx, ids)
	if err != nil {
		return nil, err
	}
	u.invalidate(ctx)
	return offers, nil
}

func (u *CatalogUseCase) invalidate(ctx context.Context) {
	// best effort; a stale entry expires on its own within the TTL
	_ = u.cache.Delete(ctx, activeOffersKey)
}
