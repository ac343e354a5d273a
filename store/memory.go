package store

import (
	"slices"
	"time"

	"github.com/etnz/dca"
)

// Memory is an in-memory dca.Repository, the assets are copied in and out so
// that it behaves like a durable store.
type Memory struct {
	assets map[string]*dca.Asset

	// Err, when set, makes every operation fail with it.
	Err error
}

var _ dca.Repository = (*Memory)(nil)

// NewMemory returns an empty memory store.
func NewMemory() *Memory {
	return &Memory{assets: make(map[string]*dca.Asset)}
}

func (m *Memory) Export(a *dca.Asset) error {
	if m.Err != nil {
		return m.Err
	}
	a.UpdatedAt = time.Now()
	m.assets[a.Name] = a.Clone()
	return nil
}

func (m *Memory) Import(name string) (*dca.Asset, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	a, ok := m.assets[name]
	if !ok {
		return nil, nil
	}
	return a.Clone(), nil
}

func (m *Memory) Delete(name string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	_, ok := m.assets[name]
	delete(m.assets, name)
	return ok, nil
}

func (m *Memory) List() ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	names := make([]string, 0, len(m.assets))
	for n := range m.assets {
		names = append(names, n)
	}
	slices.Sort(names)
	return names, nil
}
