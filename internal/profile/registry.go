// Package profile stores named snapshots of an expense set. The engine
// never touches it; it is the injected key-value store the input surface
// saves to and loads from.
package profile

import (
	"context"
	"errors"

	"github.com/wagewise/wagewise/internal/domain"
)

var (
	// ErrNotFound is returned by Load for an unknown profile name.
	ErrNotFound = errors.New("profile not found")

	// ErrEmptyName is returned by Save when the profile name is blank.
	ErrEmptyName = errors.New("profile name must not be empty")
)

// Registry persists expense profiles keyed by name. Save overwrites any
// existing profile of the same name; Delete of an absent name is a no-op.
type Registry interface {
	Save(ctx context.Context, name string, snapshot domain.ExpenseSet) error
	Load(ctx context.Context, name string) (domain.ExpenseSet, error)
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]string, error)
}
