package client

import (
	"context"
	"net/url"

	"github.com/synthspec/synthspec/pkg/types/common"
	stypes "github.com/synthspec/synthspec/pkg/types/spectrum"
)

// ListMolecules returns the catalog molecules sorted by name.
func (c *Client) ListMolecules(ctx context.Context) ([]stypes.Molecule, error) {
	var env common.APIResponse[[]stypes.Molecule]
	if err := c.get(ctx, "/api/v1/catalog/molecules", &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// GetMolecule returns one catalog molecule by name.  Lookup is
// case-insensitive.
func (c *Client) GetMolecule(ctx context.Context, name string) (*stypes.Molecule, error) {
	var env common.APIResponse[stypes.Molecule]
	if err := c.get(ctx, "/api/v1/catalog/molecules/"+url.PathEscape(name), &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}
