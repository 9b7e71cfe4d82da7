package registry

import (
	"fmt"

	"github.com/cleared-dev/tierbank/internal/ledger"
	"github.com/cleared-dev/tierbank/internal/model"
)

// Import opens one account of tier for every seed whose ID appears in links
// with a known owner. Seeds without an owner are skipped. It returns the
// number of accounts opened and stops at the first seed that fails to open.
func (r *Registry) Import(tier ledger.Tier, owners []model.Owner, seeds []model.AccountSeed, links []model.OwnerLink) (int, error) {
	ownersByID := make(map[string]model.Owner, len(owners))
	for _, o := range owners {
		ownersByID[o.ID] = o
	}
	ownerOf := make(map[string]string, len(links))
	for _, l := range links {
		if _, seen := ownerOf[l.AccountID]; !seen {
			ownerOf[l.AccountID] = l.OwnerID
		}
	}

	opened := 0
	for i, seed := range seeds {
		ownerID, ok := ownerOf[seed.ID]
		if !ok {
			r.logger.Warn("skipping account with no owner link", "account", seed.ID)
			continue
		}
		owner, ok := ownersByID[ownerID]
		if !ok {
			r.logger.Warn("skipping account with unknown owner", "account", seed.ID, "owner", ownerID)
			continue
		}

		if _, err := r.Open(OpenParams{
			ID:      seed.ID,
			Tier:    tier,
			Balance: seed.Balance,
			Opened:  seed.Opened,
			Owner:   &owner,
		}); err != nil {
			return opened, fmt.Errorf("seed %d: %w", i+1, err)
		}
		opened++
	}

	r.logger.Info("imported accounts", "tier", tier, "opened", opened, "seeds", len(seeds))
	return opened, nil
}
