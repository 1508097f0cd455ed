// Package catalog provides the built-in picklist of named example molecules.
// It exists so clients and the CLI can demonstrate the engine without the
// user knowing line notation; it is a static dataset, not a database.
package catalog

import (
	"sort"
	"strings"

	"github.com/synthspec/synthspec/pkg/errors"
	stypes "github.com/synthspec/synthspec/pkg/types/spectrum"
)

// Catalog is an immutable, name-indexed molecule list.
type Catalog struct {
	byName       map[string]stypes.Molecule
	byDescriptor map[string]stypes.Molecule
	molecules    []stypes.Molecule
}

// New builds a catalog from the given molecules.  Lookup is case-insensitive
// on the name; listing order is alphabetical and stable.
func New(molecules []stypes.Molecule) *Catalog {
	c := &Catalog{
		byName:       make(map[string]stypes.Molecule, len(molecules)),
		byDescriptor: make(map[string]stypes.Molecule, len(molecules)),
		molecules:    make([]stypes.Molecule, 0, len(molecules)),
	}
	for _, m := range molecules {
		key := strings.ToLower(m.Name)
		if _, dup := c.byName[key]; dup {
			continue
		}
		c.byName[key] = m
		if _, dup := c.byDescriptor[m.Descriptor]; !dup {
			c.byDescriptor[m.Descriptor] = m
		}
		c.molecules = append(c.molecules, m)
	}
	sort.Slice(c.molecules, func(i, j int) bool {
		return c.molecules[i].Name < c.molecules[j].Name
	})
	return c
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(defaultMolecules)
}

// List returns all molecules in alphabetical order.  The returned slice is a
// copy; callers may modify it freely.
func (c *Catalog) List() []stypes.Molecule {
	out := make([]stypes.Molecule, len(c.molecules))
	copy(out, c.molecules)
	return out
}

// Get looks a molecule up by name, case-insensitively.
func (c *Catalog) Get(name string) (stypes.Molecule, error) {
	m, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return stypes.Molecule{}, errors.New(errors.CodeMoleculeNotFound,
			"molecule not found in catalog").WithDetail(name)
	}
	return m, nil
}

// GetByDescriptor looks a molecule up by its exact descriptor.  Descriptors
// are matched case-sensitively ("c1ccccc1" and "C1CCCCC1" are different
// molecules).
func (c *Catalog) GetByDescriptor(descriptor string) (stypes.Molecule, error) {
	m, ok := c.byDescriptor[strings.TrimSpace(descriptor)]
	if !ok {
		return stypes.Molecule{}, errors.New(errors.CodeMoleculeNotFound,
			"molecule not found in catalog").WithDetail(descriptor)
	}
	return m, nil
}

// Len reports the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.molecules)
}

// defaultMolecules covers at least one example per functional group the
// detector recognises.
var defaultMolecules = []stypes.Molecule{
	{Name: "acetone", Formula: "C3H6O", Descriptor: "CC(=O)C"},
	{Name: "acetic acid", Formula: "C2H4O2", Descriptor: "CC(=O)O"},
	{Name: "acetaldehyde", Formula: "C2H4O", Descriptor: "CC=O"},
	{Name: "acetamide", Formula: "C2H5NO", Descriptor: "CC(=O)N"},
	{Name: "acetonitrile", Formula: "C2H3N", Descriptor: "CC#N"},
	{Name: "benzene", Formula: "C6H6", Descriptor: "c1ccccc1"},
	{Name: "toluene", Formula: "C7H8", Descriptor: "Cc1ccccc1"},
	{Name: "phenol", Formula: "C6H6O", Descriptor: "c1ccccc1O"},
	{Name: "ethanol", Formula: "C2H6O", Descriptor: "CCO"},
	{Name: "isopropanol", Formula: "C3H8O", Descriptor: "CC(O)C"},
	{Name: "diethyl ether", Formula: "C4H10O", Descriptor: "CCOCC"},
	{Name: "ethyl acetate", Formula: "C4H8O2", Descriptor: "CC(=O)OCC"},
	{Name: "ethylamine", Formula: "C2H7N", Descriptor: "CCN"},
	{Name: "trimethylamine", Formula: "C3H9N", Descriptor: "CN(C)C"},
	{Name: "ethylene", Formula: "C2H4", Descriptor: "C=C"},
	{Name: "propyne", Formula: "C3H4", Descriptor: "CC#C"},
	{Name: "propane", Formula: "C3H8", Descriptor: "CCC"},
	{Name: "cyclohexane", Formula: "C6H12", Descriptor: "C1CCCCC1"},
}
