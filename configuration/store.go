package configuration

import (
	"slices"
	"sync"

	"github.com/xy-planning-network/hostcfg"
)

// DefaultSeedCount is how many Configurations a User starts out with.
const DefaultSeedCount = 30

// seedAttempts bounds how many times per seeded Configuration
// a Store asks its Generator for an unused name.
const seedAttempts = 10

// A Store holds each User's Configurations in memory, in insertion order.
//
// A User's collection is seeded with invented Configurations
// the first time Get or Create touches it.
//
// A Store is safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	byOwner   map[string][]hostcfg.Configuration
	gen       Generator
	seedCount int
}

// A StoreOptFn configures a *Store.
type StoreOptFn func(*Store)

// WithSeedCount sets how many Configurations seed a User's collection.
// Negative counts are ignored.
func WithSeedCount(n int) StoreOptFn {
	return func(s *Store) {
		if n >= 0 {
			s.seedCount = n
		}
	}
}

// NewStore constructs a *Store seeding collections from gen.
func NewStore(gen Generator, opts ...StoreOptFn) *Store {
	s := &Store{
		byOwner:   make(map[string][]hostcfg.Configuration),
		gen:       gen,
		seedCount: DefaultSeedCount,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Get sorts and paginates owner's Configurations according to q.
//
// Get seeds owner's collection if it does not exist yet.
func (s *Store) Get(owner string, q Query) (Page, error) {
	cfgs := s.collection(owner)

	sorted, err := Sort(q.Sort, cfgs)
	if err != nil {
		return Page{}, err
	}

	offset, limit := q.Window()
	return Paginate(sorted, offset, limit)
}

// GetByName retrieves owner's Configuration called name.
//
// GetByName never seeds a collection.
func (s *Store) GetByName(owner, name string) (hostcfg.Configuration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfgs, ok := s.byOwner[owner]
	if !ok {
		return hostcfg.Configuration{}, hostcfg.Errorf(hostcfg.ErrNotFound, "%s has no configurations! Try creating some first.", owner)
	}

	i := index(cfgs, name)
	if i < 0 {
		return hostcfg.Configuration{}, hostcfg.Errorf(hostcfg.ErrNotFound, "Configuration %s not found.", name)
	}

	return cfgs[i], nil
}

// Create appends cfg to owner's Configurations.
//
// Create seeds owner's collection if it does not exist yet.
// If owner already has a Configuration called cfg.Name, ErrDuplicateName returns.
func (s *Store) Create(owner string, cfg hostcfg.Configuration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfgs := s.seed(owner)
	if index(cfgs, cfg.Name) >= 0 {
		return hostcfg.Errorf(hostcfg.ErrDuplicateName, "Could not create configuration %s, it already exists.", cfg.Name)
	}

	s.byOwner[owner] = append(cfgs, cfg)
	return nil
}

// Update replaces owner's Configuration called cfg.Name with cfg, in place.
//
// If owner has no collection or no Configuration by that name, ErrNotFound returns.
func (s *Store) Update(owner string, cfg hostcfg.Configuration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfgs, ok := s.byOwner[owner]
	if !ok {
		return hostcfg.Errorf(hostcfg.ErrNotFound, "No configurations found for %s, try creating some.", owner)
	}

	i := index(cfgs, cfg.Name)
	if i < 0 {
		return hostcfg.Errorf(hostcfg.ErrNotFound, "Could not update configuration %s, it doesn't exist.", cfg.Name)
	}

	cfgs[i] = cfg
	return nil
}

// Delete removes owner's Configuration called name.
//
// If owner has no collection or no Configuration by that name, ErrNotFound returns.
func (s *Store) Delete(owner, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfgs, ok := s.byOwner[owner]
	i := index(cfgs, name)
	if !ok || i < 0 {
		return hostcfg.Errorf(hostcfg.ErrNotFound, "Cannot delete configuration %s, it couldn't be found.", name)
	}

	s.byOwner[owner] = slices.Delete(cfgs, i, i+1)
	return nil
}

// collection retrieves a copy of owner's Configurations, seeding them first if need be.
func (s *Store) collection(owner string) []hostcfg.Configuration {
	s.mu.RLock()
	cfgs, ok := s.byOwner[owner]
	if ok {
		defer s.mu.RUnlock()
		return slices.Clone(cfgs)
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.seed(owner))
}

// seed retrieves owner's Configurations, inventing them if owner has none yet.
// Invented Configurations with a name already in use are discarded,
// so a collection may come up short of the seed count.
//
// seed expects s.mu to be held for writing.
func (s *Store) seed(owner string) []hostcfg.Configuration {
	if cfgs, ok := s.byOwner[owner]; ok {
		return cfgs
	}

	cfgs := make([]hostcfg.Configuration, 0, s.seedCount)
	for attempts := 0; len(cfgs) < s.seedCount && attempts < s.seedCount*seedAttempts; attempts++ {
		cfg := s.gen.Generate()
		if index(cfgs, cfg.Name) >= 0 {
			continue
		}

		cfgs = append(cfgs, cfg)
	}

	s.byOwner[owner] = cfgs
	return cfgs
}

func index(cfgs []hostcfg.Configuration, name string) int {
	return slices.IndexFunc(cfgs, func(c hostcfg.Configuration) bool { return c.Name == name })
}
