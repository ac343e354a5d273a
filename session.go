package dca

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Repository is the durable mapping from asset names to assets.
type Repository interface {
	// Export persists the asset, refreshing its UpdatedAt first.
	Export(a *Asset) error
	// Import loads the asset named 'name'. It returns (nil, nil) if there is
	// no such asset. A non nil asset returned with an error wrapping
	// ErrMalformedRecord has been partially decoded and is usable.
	Import(name string) (*Asset, error)
	// Delete removes the asset. It reports whether it existed.
	Delete(name string) (bool, error)
	// List returns the names of all the assets, sorted.
	List() ([]string, error)
}

// Session holds the current asset and applies every mutation to it through
// the ledger, then persists it to the repository.
//
// A Session is not safe for concurrent use.
type Session struct {
	repo    Repository
	log     zerolog.Logger
	current *Asset // nil when no asset is loaded
}

// NewSession creates a session with no asset loaded.
func NewSession(repo Repository, log zerolog.Logger) *Session {
	return &Session{repo: repo, log: log}
}

// CreateAsset creates an empty asset, makes it current and persists it.
// An existing asset with the same name is overwritten.
//
// If the asset could not be persisted, the asset is returned, current, with
// an error wrapping ErrPersistence.
func (s *Session) CreateAsset(name string, cur Currency, drawdown decimal.Decimal) (*Asset, error) {
	a, err := NewAsset(name, cur, drawdown)
	if err != nil {
		return nil, err
	}
	s.current = a
	return a, s.persist()
}

// LoadAsset loads an asset from the repository and makes it current.
// It returns (nil, nil) if the asset does not exist, the current asset is then
// unchanged.
func (s *Session) LoadAsset(name string) (*Asset, error) {
	a, err := s.repo.Import(name)
	if a == nil {
		if err != nil {
			s.log.Error().Err(err).Str("asset", name).Msg("could not load asset")
			return nil, fmt.Errorf("could not load asset %q: %w: %w", name, ErrPersistence, err)
		}
		return nil, nil
	}
	if err != nil {
		// degraded but usable.
		s.log.Warn().Err(err).Str("asset", name).Msg("asset loaded with problems")
	}
	s.current = a
	return a, nil
}

// SaveCurrentAsset persists the current asset.
func (s *Session) SaveCurrentAsset() error {
	if s.current == nil {
		return ErrNoAsset
	}
	return s.persist()
}

// persist saves the current asset. Failures are logged and returned wrapped
// in ErrPersistence.
func (s *Session) persist() error {
	if err := s.repo.Export(s.current); err != nil {
		s.log.Error().Err(err).Str("asset", s.current.Name).Msg("could not save asset")
		return fmt.Errorf("could not save asset %q: %w: %w", s.current.Name, ErrPersistence, err)
	}
	s.log.Debug().Str("asset", s.current.Name).Int("purchases", s.current.Ledger.Count()).Msg("asset saved")
	return nil
}

// DeleteAsset deletes an asset from the repository. If it was the current
// asset, no asset is loaded anymore.
func (s *Session) DeleteAsset(name string) (bool, error) {
	deleted, err := s.repo.Delete(name)
	if err != nil {
		s.log.Error().Err(err).Str("asset", name).Msg("could not delete asset")
		return false, fmt.Errorf("could not delete asset %q: %w: %w", name, ErrPersistence, err)
	}
	if deleted && s.current != nil && s.current.Name == name {
		s.current = nil
	}
	return deleted, nil
}

// ListAssets lists the names of all the persisted assets.
func (s *Session) ListAssets() ([]string, error) {
	names, err := s.repo.List()
	if err != nil {
		s.log.Error().Err(err).Msg("could not list assets")
		return nil, fmt.Errorf("could not list assets: %w: %w", ErrPersistence, err)
	}
	return names, nil
}

// AddPurchase adds a purchase to the current asset and persists it.
//
// The purchase is not added if an error wrapping ErrNoAsset or
// ErrInvalidArgument is returned. It is added, but not persisted, if the
// error wraps ErrPersistence.
func (s *Session) AddPurchase(investment, price decimal.Decimal) (Purchase, error) {
	if s.current == nil {
		return Purchase{}, ErrNoAsset
	}
	p, err := s.current.Ledger.Add(investment, price)
	if err != nil {
		return Purchase{}, err
	}
	return p, s.persist()
}

// RemovePurchase removes a purchase from the current asset. If it was found
// the asset is persisted.
func (s *Session) RemovePurchase(id int) (bool, error) {
	if s.current == nil {
		return false, ErrNoAsset
	}
	if !s.current.Ledger.Remove(id) {
		return false, nil
	}
	return true, s.persist()
}

// SetDrawdownPercent updates the current asset's drawdown and persists it.
func (s *Session) SetDrawdownPercent(d decimal.Decimal) error {
	if s.current == nil {
		return ErrNoAsset
	}
	if err := ValidDrawdown(d); err != nil {
		return err
	}
	s.current.Drawdown = d
	return s.persist()
}

// SetCurrency updates the current asset's currency and persists it.
func (s *Session) SetCurrency(c Currency) error {
	if s.current == nil {
		return ErrNoAsset
	}
	if !c.Valid() {
		return fmt.Errorf("invalid currency %d: %w", int(c), ErrInvalidArgument)
	}
	s.current.Currency = c
	return s.persist()
}

// Read accessors, they never persist.

// AllPurchases returns a copy of the current asset's purchases, empty if no
// asset is loaded.
func (s *Session) AllPurchases() []Purchase {
	if s.current == nil {
		return []Purchase{}
	}
	return s.current.Ledger.All()
}

// LastPurchase returns the last purchase of the current asset.
func (s *Session) LastPurchase() (Purchase, bool) {
	if s.current == nil {
		return Purchase{}, false
	}
	return s.current.Ledger.Last()
}

// DrawdownPercent returns the current asset's drawdown, or DefaultDrawdown.
func (s *Session) DrawdownPercent() decimal.Decimal {
	if s.current == nil {
		return DefaultDrawdown
	}
	return s.current.Drawdown
}

// Currency returns the current asset's currency, or DefaultCurrency.
func (s *Session) Currency() Currency {
	if s.current == nil {
		return DefaultCurrency
	}
	return s.current.Currency
}

// CurrentAssetName returns the name of the current asset, if any.
func (s *Session) CurrentAssetName() (string, bool) {
	if s.current == nil {
		return "", false
	}
	return s.current.Name, true
}

// Summary computes the calculator outputs for the current asset.
func (s *Session) Summary() (Summary, error) {
	if s.current == nil {
		return Summary{}, ErrNoAsset
	}
	return Summarize(s.current)
}

// IsPersistence reports whether err means a mutation was applied in memory
// but could not be saved.
func IsPersistence(err error) bool { return errors.Is(err, ErrPersistence) }
