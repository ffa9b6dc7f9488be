package usecase

import (
	"context"
	"errors"
	"time"

	"offerchain/internal/cache"
	"offerchain/internal/core/domain"
	"offerchain/internal/core/port"
)

// fakeLeadRepo is an in-memory LeadRepository keyed by fingerprint.
type fakeLeadRepo struct {
	byFingerprint map[string]domain.Lead
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{byFingerprint: map[string]domain.Lead{}}
}

func (r *fakeLeadRepo) Upsert(_ context.Context, id, fingerprint string) (domain.Lead, bool, error) {
	if lead, ok := r.byFingerprint[fingerprint]; ok {
		return lead, false, nil
	}
	lead := domain.Lead{ID: id, IPAddress: fingerprint, CreatedAt: time.Now()}
	r.byFingerprint[fingerprint] = lead
	return lead, true, nil
}

func (r *fakeLeadRepo) FindByFingerprint(_ context.Context, fingerprint string) (*domain.Lead, error) {
	if lead, ok := r.byFingerprint[fingerprint]; ok {
		return &lead, nil
	}
	return nil, nil
}

func (r *fakeLeadRepo) Exists(_ context.Context, id string) (bool, error) {
	for _, lead := range r.byFingerprint {
		if lead.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// fakeOfferRepo is an in-memory OfferRepository ordered by position.
type fakeOfferRepo struct {
	offers    []domain.Offer
	listCalls int
}

func (r *fakeOfferRepo) ListActive(_ context.Context) ([]domain.Offer, error) {
	r.listCalls++
	var out []domain.Offer
	for _, o := range r.offers {
		if o.IsActive {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOfferRepo) ListAll(_ context.Context) ([]port.OfferWithStats, error) {
	out := make([]port.OfferWithStats, 0, len(r.offers))
	for _, o := range r.offers {
		out = append(out, port.OfferWithStats{Offer: o})
	}
	return out, nil
}

func (r *fakeOfferRepo) Get(_ context.Context, id string) (*port.OfferWithStats, error) {
	for _, o := range r.offers {
		if o.ID == id {
			return &port.OfferWithStats{Offer: o}, nil
		}
	}
	return nil, nil
}

func (r *fakeOfferRepo) Create(_ context.Context, o *domain.Offer) error {
	if o.Position == 0 {
		max := 0
		for _, existing := range r.offers {
			if existing.Position > max {
				max = existing.Position
			}
		}
		o.Position = max + 1
	}
	o.CreatedAt = time.Now()
	o.UpdatedAt = o.CreatedAt
	r.offers = append(r.offers, *o)
	return nil
}

func (r *fakeOfferRepo) Update(_ context.Context, id string, upd port.OfferUpdate) (*domain.Offer, error) {
	for i, o := range r.offers {
		if o.ID != id {
			continue
		}
		if upd.Title != nil {
			o.Title = *upd.Title
		}
		if upd.IsActive != nil {
			o.IsActive = *upd.IsActive
		}
		if upd.Position != nil {
			o.Position = *upd.Position
		}
		o.UpdatedAt = time.Now()
		r.offers[i] = o
		return &o, nil
	}
	return nil, nil
}

func (r *fakeOfferRepo) Delete(_ context.Context, id string) (bool, error) {
	for i, o := range r.offers {
		if o.ID == id {
			r.offers = append(r.offers[:i], r.offers[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeOfferRepo) Reorder(_ context.Context, ids []string) ([]domain.Offer, error) {
	index := make(map[string]int, len(r.offers))
	for i, o := range r.offers {
		index[o.ID] = i
	}
	// all-or-nothing: an unknown id aborts before any position changes
	for _, id := range ids {
		if _, ok := index[id]; !ok {
			return nil, domain.Validationf("unknown offer id %q", id)
		}
	}
	for pos, id := range ids {
		r.offers[index[id]].Position = pos + 1
	}
	return r.offers, nil
}

// fakeActionRepo records inserted actions in order.
type fakeActionRepo struct {
	inserted []domain.Action
}

func (r *fakeActionRepo) Insert(_ context.Context, a *domain.Action) error {
	a.CreatedAt = time.Now()
	r.inserted = append(r.inserted, *a)
	return nil
}

func (r *fakeActionRepo) Query(_ context.Context, f port.ActionFilter) ([]port.ActionRecord, error) {
	var out []port.ActionRecord
	for i := len(r.inserted) - 1; i >= 0; i-- {
		a := r.inserted[i]
		if f.LeadID != "" && a.LeadID != f.LeadID {
			continue
		}
		if f.ActionType != "" && a.Type != f.ActionType {
			continue
		}
		out = append(out, port.ActionRecord{Action: a})
	}
	return out, nil
}

func (r *fakeActionRepo) Stats(_ context.Context) (*port.StatsReport, error) {
	report := &port.StatsReport{}
	for _, a := range r.inserted {
		switch a.Type {
		case domain.ActionView:
			report.Views++
		case domain.ActionDecline:
			report.Declines++
		case domain.ActionSubmit:
			report.Submits++
		}
	}
	return report, nil
}

// fakeCache is an in-memory cache.Cache that counts hits and deletes.
type fakeCache struct {
	entries map[string][]byte
	deletes int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, error) {
	if v, ok := c.entries[key]; ok {
		return v, nil
	}
	return nil, cache.ErrMiss
}

func (c *fakeCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.entries[key] = value
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	delete(c.entries, key)
	c.deletes++
	return nil
}

// brokenCache fails every operation, for degradation tests.
type brokenCache struct{}

func (brokenCache) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("cache unavailable")
}

func (brokenCache) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("cache unavailable")
}

func (brokenCache) Delete(context.Context, string) error {
	return errors.New("cache unavailable")
}
