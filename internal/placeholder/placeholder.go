// Package placeholder synthesizes owner records for accounts opened without one.
package placeholder

import (
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/tierbank/internal/importer"
	"github.com/cleared-dev/tierbank/internal/model"
)

// Sample account IDs start here so they never collide with owner IDs.
const firstSampleAccount = 1000

// Generator produces placeholder owners. A Generator built with the same
// non-zero seed yields the same sequence of owners.
type Generator struct {
	faker *gofakeit.Faker
}

// New creates a Generator. A seed of 0 picks a random seed.
func New(seed uint64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// Owner returns a new placeholder owner. Placeholder owners have no ID.
func (g *Generator) Owner() model.Owner {
	return model.Owner{
		FirstName:     g.faker.FirstName(),
		LastName:      g.faker.LastName(),
		StreetAddress: g.faker.Street(),
		City:          g.faker.City(),
		State:         g.faker.State(),
		PostalCode:    g.faker.Zip(),
	}
}

// Sample builds a support bundle of n owners, each holding one account with a
// balance between $100 and $20000 opened within the last ten years.
func (g *Generator) Sample(n int, now time.Time) importer.Bundle {
	var b importer.Bundle
	for i := 1; i <= n; i++ {
		owner := g.Owner()
		owner.ID = strconv.Itoa(i)
		accountID := strconv.Itoa(firstSampleAccount + i)

		b.Owners = append(b.Owners, owner)
		b.Seeds = append(b.Seeds, model.AccountSeed{
			ID:      accountID,
			Balance: decimal.NewFromFloat(g.faker.Price(100, 20000)).Round(2),
			Opened:  g.faker.DateRange(now.AddDate(-10, 0, 0), now).Truncate(time.Second),
		})
		b.Links = append(b.Links, model.OwnerLink{AccountID: accountID, OwnerID: owner.ID})
	}
	return b
}
