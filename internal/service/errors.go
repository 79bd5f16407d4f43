package service

import (
	"context"
	"fmt"
)

// SchemaEnsurer brings the catalog schema up to date before catalog or
// booking storage is touched.
type SchemaEnsurer interface {
	EnsureCatalogSchema(ctx context.Context) error
}

// SchemaEnsurerFunc adapts a function to SchemaEnsurer.
type SchemaEnsurerFunc func(ctx context.Context) error

// EnsureCatalogSchema implements SchemaEnsurer.
func (f SchemaEnsurerFunc) EnsureCatalogSchema(ctx context.Context) error {
	return f(ctx)
}

// wrap annotates err with the operation that failed. Sentinels stay
// reachable through errors.Is.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
