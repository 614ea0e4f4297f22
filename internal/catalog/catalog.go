// Package catalog owns the canonical copies of reference data: assets seen
// in holding contracts and the currency table. Positions and transactions
// reference these; nothing here is persisted.
package catalog

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/robfig/cron/v3"

	"github.com/holdview/Holdings-View-Backend/internal/model"
	"github.com/holdview/Holdings-View-Backend/internal/upstream"
)

// Catalog is a thread-safe in-memory reference store. Currencies come from
// the data service, topped up from go-money's built-in table when the
// upstream omits symbol or name. Assets are registered from every contract
// that passes through so later lookups (e.g. the cash ladder's asset check)
// can often avoid an upstream round trip.
type Catalog struct {
	data *upstream.DataClient

	mu         sync.RWMutex
	currencies map[string]model.Currency
	assets     map[string]model.Asset

	scheduler *cron.Cron
}

// New creates a catalog backed by the data service.
func New(data *upstream.DataClient) *Catalog {
	return &Catalog{
		data:       data,
		currencies: make(map[string]model.Currency),
		assets:     make(map[string]model.Asset),
	}
}

// Refresh replaces the currency table with the data service's current view.
// Currency reference data is world-readable upstream, so no user token is
// forwarded.
func (c *Catalog) Refresh(ctx context.Context) error {
	currencies, err := c.data.GetCurrencies(ctx, "")
	if err != nil {
		return fmt.Errorf("catalog refresh failed: %w", err)
	}

	table := make(map[string]model.Currency, len(currencies))
	for _, currency := range currencies {
		table[currency.Code] = enrich(currency)
	}

	c.mu.Lock()
	c.currencies = table
	c.mu.Unlock()
	return nil
}

// StartRefresh schedules periodic refreshes. The schedule accepts cron
// expressions and the @every shorthand. Failed refreshes are logged and
// retried on the next tick; the previous table stays in place.
func (c *Catalog) StartRefresh(schedule string) error {
	c.scheduler = cron.New()
	_, err := c.scheduler.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := c.Refresh(ctx); err != nil {
			log.Printf("Catalog refresh failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid catalog refresh schedule %q: %w", schedule, err)
	}
	c.scheduler.Start()
	return nil
}

// Stop halts the refresh schedule, waiting for a running refresh to finish.
func (c *Catalog) Stop() {
	if c.scheduler != nil {
		<-c.scheduler.Stop().Done()
	}
}

// Currency resolves a currency code to its reference data. Codes the data
// service has not supplied fall back to go-money's built-in table.
func (c *Catalog) Currency(code string) (model.Currency, bool) {
	c.mu.RLock()
	currency, ok := c.currencies[code]
	c.mu.RUnlock()
	if ok {
		return currency, true
	}

	if builtin := money.GetCurrency(code); builtin != nil {
		return model.Currency{Code: builtin.Code, Symbol: builtin.Grapheme}, true
	}
	return model.Currency{}, false
}

// RegisterAssets records the canonical copies of every asset appearing in a
// contract.
func (c *Catalog) RegisterAssets(contract model.HoldingContract) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, position := range contract.Positions {
		if position.Asset.ID != "" {
			c.assets[position.Asset.ID] = position.Asset
		}
	}
}

// Asset looks up a registered asset by ID.
func (c *Catalog) Asset(id string) (model.Asset, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	asset, ok := c.assets[id]
	return asset, ok
}

// enrich fills in symbol and name from go-money's table when the upstream
// record carries only a code.
func enrich(currency model.Currency) model.Currency {
	if currency.Symbol != "" {
		return currency
	}
	if builtin := money.GetCurrency(currency.Code); builtin != nil {
		currency.Symbol = builtin.Grapheme
	}
	return currency
}
