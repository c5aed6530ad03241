package tenant

import (
	"context"
	"errors"
	"strings"

	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/store"
)

// StoreLookup is the collaborator that maps a candidate identifier to a
// store record. Implementations return shared.ErrNotFound when no store
// matches.
type StoreLookup interface {
	FindBySlug(ctx context.Context, slug string) (*store.Store, error)
}

// Resolver maps a navigation (hostname + path) to exactly one store, or
// fails with STORE_NOT_FOUND. Resolution is a pure function of its
// inputs and the lookup collaborator: re-running it on the same inputs
// yields the same outcome.
type Resolver struct {
	lookup     StoreLookup
	rootDomain string
	pathPrefix string
}

// NewResolver creates a resolver for the given platform root domain
// (e.g. "shopzone.app") and store route prefix (e.g. "/store").
func NewResolver(lookup StoreLookup, rootDomain, pathPrefix string) *Resolver {
	return &Resolver{
		lookup:     lookup,
		rootDomain: strings.ToLower(strings.TrimSuffix(rootDomain, ".")),
		pathPrefix: "/" + strings.Trim(pathPrefix, "/"),
	}
}

// Resolve determines which store the navigation belongs to.
//
// A subdomain candidate is extracted only when the hostname is exactly
// <label>.<root-domain>; localhost and preview hostnames never yield
// one, so local development cannot produce false tenant matches. The
// subdomain wins over a disagreeing path segment, in which case the
// returned Resolution carries the corrective redirect path. A subdomain
// whose lookup misses falls through to the path candidate.
func (r *Resolver) Resolve(ctx context.Context, hostname, path string) (*Resolution, error) {
	pathSlug, rest := r.pathCandidate(path)

	if label, ok := r.subdomainCandidate(hostname); ok {
		s, err := r.lookupActive(ctx, label)
		switch {
		case err == nil:
			res := &Resolution{Context: &Context{Store: s, Source: SourceSubdomain}}
			if pathSlug != "" && pathSlug != s.Slug {
				res.RedirectTo = r.canonicalPath(s.Slug, rest)
			}
			return res, nil
		case errors.Is(err, shared.ErrNotFound):
			// Fall through to the path candidate
		default:
			return nil, err
		}
	}

	if pathSlug == "" {
		return nil, shared.ErrStoreNotFound
	}

	s, err := r.lookupActive(ctx, pathSlug)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrStoreNotFound
		}
		return nil, err
	}

	return &Resolution{Context: &Context{Store: s, Source: SourcePath}}, nil
}

// lookupActive resolves a candidate slug to a live store. Suspended
// stores are invisible to shoppers and resolve as not found.
func (r *Resolver) lookupActive(ctx context.Context, slug string) (*store.Store, error) {
	s, err := r.lookup.FindBySlug(ctx, strings.ToLower(slug))
	if err != nil {
		return nil, err
	}
	if !s.IsActive() {
		return nil, shared.ErrNotFound
	}
	return s, nil
}

// subdomainCandidate extracts the store label from the hostname when it
// matches <label>.<root-domain> exactly.
func (r *Resolver) subdomainCandidate(hostname string) (string, bool) {
	host := strings.ToLower(hostname)
	if i := strings.LastIndex(host, ":"); i >= 0 {
		host = host[:i]
	}
	host = strings.TrimSuffix(host, ".")

	suffix := "." + r.rootDomain
	if !strings.HasSuffix(host, suffix) {
		return "", false
	}

	label := strings.TrimSuffix(host, suffix)
	if label == "" || strings.Contains(label, ".") {
		return "", false
	}
	return label, true
}

// pathCandidate extracts the store slug following the route prefix and
// the remainder of the path after it.
func (r *Resolver) pathCandidate(path string) (slug, rest string) {
	prefix := r.pathPrefix + "/"
	if !strings.HasPrefix(path, prefix) {
		return "", ""
	}

	remainder := path[len(prefix):]
	if i := strings.Index(remainder, "/"); i >= 0 {
		return remainder[:i], remainder[i:]
	}
	return remainder, ""
}

// canonicalPath rebuilds the store path around the canonical slug,
// preserving anything after the slug segment.
func (r *Resolver) canonicalPath(slug, rest string) string {
	return r.pathPrefix + "/" + slug + rest
}
