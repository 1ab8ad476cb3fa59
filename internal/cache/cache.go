// Package cache holds the derived read-view cache. Entries are never
// authoritative: a miss or a cache failure always falls back to the store.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=cache.go -destination=../mocks/cache_mocks.go -package=mocks

// rootPrefix scopes every configurations-derived view
const rootPrefix = "configurations:"

// Namespace is a family of cached read-views
type Namespace int

const (
	// NamespaceYear holds one entry per model year id
	NamespaceYear Namespace = iota + 1
	// NamespaceMultiYear holds aggregate views keyed by a set of year ids
	NamespaceMultiYear
	// NamespaceConfiguration holds per-configuration resolved views
	NamespaceConfiguration
)

// Prefix is the key prefix shared by every entry of the namespace
func (n Namespace) Prefix() string {
	switch n {
	case NamespaceYear:
		return rootPrefix + "year:"
	case NamespaceMultiYear:
		return rootPrefix + "multi-year:"
	case NamespaceConfiguration:
		return rootPrefix + "config:"
	}
	return rootPrefix + "unknown:"
}

func (n Namespace) String() string {
	switch n {
	case NamespaceYear:
		return "year"
	case NamespaceMultiYear:
		return "multi-year"
	case NamespaceConfiguration:
		return "configuration"
	}
	return "unknown"
}

// Key addresses one cache entry. Build it with YearKey, MultiYearKey or
// ConfigurationKey.
type Key struct {
	namespace Namespace
	ids       string
}

// YearKey addresses the view of a single model year
func YearKey(yearID uuid.UUID) Key {
	return Key{namespace: NamespaceYear, ids: yearID.String()}
}

// MultiYearKey addresses a composite view over several years. The id set is
// order-insensitive and duplicates collapse.
func MultiYearKey(yearIDs []uuid.UUID) Key {
	seen := make(map[string]struct{}, len(yearIDs))
	ids := make([]string, 0, len(yearIDs))
	for _, id := range yearIDs {
		s := id.String()
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		ids = append(ids, s)
	}
	sort.Strings(ids)
	return Key{namespace: NamespaceMultiYear, ids: strings.Join(ids, ",")}
}

// ConfigurationKey addresses the resolved components of one configuration
func ConfigurationKey(configurationID uuid.UUID) Key {
	return Key{namespace: NamespaceConfiguration, ids: configurationID.String()}
}

// Namespace returns the namespace the key belongs to
func (k Key) Namespace() Namespace {
	return k.namespace
}

func (k Key) String() string {
	return k.namespace.Prefix() + k.ids
}

// InvalidationKind tells whether an invalidation targets one key or a prefix
type InvalidationKind int

const (
	InvalidateExact InvalidationKind = iota + 1
	InvalidatePrefix
)

// Invalidation describes which entries become stale
type Invalidation struct {
	kind   InvalidationKind
	target string
	label  string
}

// Exact invalidates a single key
func Exact(key Key) Invalidation {
	return Invalidation{kind: InvalidateExact, target: key.String(), label: key.Namespace().String()}
}

// WholeNamespace invalidates every entry of a namespace
func WholeNamespace(ns Namespace) Invalidation {
	return Invalidation{kind: InvalidatePrefix, target: ns.Prefix(), label: ns.String()}
}

// AllConfigurations invalidates every configurations-derived entry
func AllConfigurations() Invalidation {
	return Invalidation{kind: InvalidatePrefix, target: rootPrefix, label: "configurations"}
}

// Kind returns whether this is an exact or prefix invalidation
func (i Invalidation) Kind() InvalidationKind {
	return i.kind
}

// Target is the exact key or the prefix to drop
func (i Invalidation) Target() string {
	return i.target
}

// Label is a low-cardinality name for logs and metrics
func (i Invalidation) Label() string {
	return i.label
}

func (i Invalidation) String() string {
	if i.kind == InvalidatePrefix {
		return fmt.Sprintf("prefix(%s)", i.target)
	}
	return fmt.Sprintf("exact(%s)", i.target)
}

// QueryCache stores serialized read-views
type QueryCache interface {
	Get(ctx context.Context, key Key) ([]byte, bool, error)
	Set(ctx context.Context, key Key, value []byte, ttl time.Duration) error
	// Invalidate drops matching entries. Dropping nothing is not an error.
	Invalidate(ctx context.Context, inv Invalidation) error
}

// GetJSON reads key and decodes it into dest. It reports false on a miss.
func GetJSON(ctx context.Context, c QueryCache, key Key, dest interface{}) (bool, error) {
	raw, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("decode cached %s: %w", key, err)
	}
	return true, nil
}

// SetJSON encodes value and stores it under key
func SetJSON(ctx context.Context, c QueryCache, key Key, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return c.Set(ctx, key, raw, ttl)
}
