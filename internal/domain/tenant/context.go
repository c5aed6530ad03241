package tenant

import (
	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/store"
)

// Source indicates how a store identifier was derived from the request.
// It is diagnostic only and never feeds authorization decisions.
type Source string

const (
	SourceSubdomain Source = "subdomain"
	SourcePath      Source = "path"
)

// Context is the resolved tenant for one navigation. It is immutable
// once produced; a new navigation resolves a fresh one.
type Context struct {
	Store  *store.Store
	Source Source
}

// StoreID returns the scoping key for the resolved store
func (c *Context) StoreID() uuid.UUID {
	return c.Store.ID
}

// Handle returns the slug the store was resolved by
func (c *Context) Handle() string {
	return c.Store.Slug
}

// Resolution is the outcome of a successful resolve. RedirectTo is set
// when the request path disagrees with the canonical store handle and
// the caller should issue a corrective redirect; the resolver itself
// never mutates anything.
type Resolution struct {
	Context    *Context
	RedirectTo string
}
