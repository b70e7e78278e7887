package mock

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/ti/docstore/dependencies/database"
)

func init() {
	database.RegisterImplements("mock", func(ctx context.Context, u *url.URL) (database.Database, error) {
		m := &Mock{}
		return m, m.Init(ctx, u)
	})
}

// Mock is an in-memory document database.
type Mock struct {
	mu          sync.RWMutex
	collections map[string]*collection
	name        string
}

// New creates a mock database from uri, e.g. mock://local/school.
func New(ctx context.Context, uri string) (*Mock, error) {
	m := &Mock{}
	u, err := url.Parse(uri)
	if err != nil {
		return nil, err
	}
	return m, m.Init(ctx, u)
}

// Init initializes the mock database from URL
// URL format: mock://host/database
func (m *Mock) Init(_ context.Context, u *url.URL) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if u.Path == "" || u.Path == "/" {
		return NewInvalidArgumentError("uri_path", "database name not specified in mock URI")
	}
	m.name = strings.TrimPrefix(u.Path, "/")
	m.collections = make(map[string]*collection)
	return nil
}

// Name the database name taken from the uri path.
func (m *Mock) Name() string {
	return m.name
}

// Collection gets or creates the named collection.
func (m *Mock) Collection(name string) database.Collection {
	m.mu.RLock()
	c, ok := m.collections[name]
	m.mu.RUnlock()
	if ok {
		return c
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.collections == nil {
		m.collections = make(map[string]*collection)
	}
	if c, ok = m.collections[name]; !ok {
		c = newCollection(m.name, name)
		m.collections[name] = c
	}
	return c
}

// Close drops every collection, handles obtained earlier fail with ErrClosed.
func (m *Mock) Close(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.collections {
		c.close()
	}
	m.collections = nil
	return nil
}
