// Package units provides the built-in catalog of measurement categories.
//
// Each category groups interconvertible units and routes every conversion
// through one base unit. The catalog is built once at process start and is
// read-only afterwards: Category values expose their units through accessors
// that return copies, so callers cannot mutate the shared definitions.
package units

import "fmt"

// Unit is an immutable unit definition within a category.
type Unit struct {
	// ID is the stable lookup key, unique within the category.
	ID string `json:"id"`

	// Symbol is the display symbol (e.g. "°C", "m²").
	Symbol string `json:"symbol"`

	// Name is the display name (e.g. "Celsius").
	Name string `json:"name"`

	// Transform maps values to and from the category's base unit.
	Transform Transform `json:"-"`
}

// ToBase converts v from this unit into the category's base unit.
func (u Unit) ToBase(v float64) float64 {
	return u.Transform.ToBase(v)
}

// FromBase converts v from the category's base unit into this unit.
func (u Unit) FromBase(v float64) float64 {
	return u.Transform.FromBase(v)
}

// Category is an immutable measurement domain with an ordered set of units.
type Category struct {
	// ID is the stable category key persisted in history entries.
	ID string

	// Name is the display name (e.g. "Length").
	Name string

	// Description is a one-line summary shown next to the name.
	Description string

	// Icon is an emoji shown in listings.
	Icon string

	// Gradient is the visual tag used by front ends to color the category.
	Gradient string

	// BaseUnit is the id of the unit every conversion is routed through.
	BaseUnit string

	units []Unit
	index map[string]int
}

// NewCategory builds a Category and checks its invariants: non-empty ids,
// at least one unit, unique unit ids, a base unit present in the set, and an
// identity transform on that base unit.
func NewCategory(id, name, description, icon, gradient, baseUnit string, units ...Unit) (Category, error) {
	if id == "" {
		return Category{}, fmt.Errorf("%w: category id cannot be empty", ErrInvalidDefinition)
	}
	if len(units) == 0 {
		return Category{}, fmt.Errorf("%w: category %q has no units", ErrInvalidDefinition, id)
	}

	c := Category{
		ID:          id,
		Name:        name,
		Description: description,
		Icon:        icon,
		Gradient:    gradient,
		BaseUnit:    baseUnit,
		units:       make([]Unit, 0, len(units)),
		index:       make(map[string]int, len(units)),
	}

	for _, u := range units {
		if u.ID == "" {
			return Category{}, fmt.Errorf("%w: category %q has a unit with an empty id", ErrInvalidDefinition, id)
		}
		if _, dup := c.index[u.ID]; dup {
			return Category{}, fmt.Errorf("%w: category %q declares unit %q twice", ErrInvalidDefinition, id, u.ID)
		}
		if err := u.Transform.validate(); err != nil {
			return Category{}, fmt.Errorf("category %q unit %q: %w", id, u.ID, err)
		}
		c.index[u.ID] = len(c.units)
		c.units = append(c.units, u)
	}

	base, ok := c.Unit(baseUnit)
	if !ok {
		return Category{}, fmt.Errorf("%w: category %q base unit %q is not declared", ErrInvalidDefinition, id, baseUnit)
	}
	if !base.Transform.IsIdentity() {
		return Category{}, fmt.Errorf("%w: category %q base unit %q is not an identity transform",
			ErrInvalidDefinition, id, baseUnit)
	}

	return c, nil
}

// Unit returns the unit with the given id.
func (c Category) Unit(id string) (Unit, bool) {
	i, ok := c.index[id]
	if !ok {
		return Unit{}, false
	}
	return c.units[i], true
}

// HasUnit reports whether id is declared in the category.
func (c Category) HasUnit(id string) bool {
	_, ok := c.index[id]
	return ok
}

// Units returns the category's units in declaration order.
func (c Category) Units() []Unit {
	out := make([]Unit, len(c.units))
	copy(out, c.units)
	return out
}

// UnitIDs returns the unit ids in declaration order.
func (c Category) UnitIDs() []string {
	ids := make([]string, len(c.units))
	for i, u := range c.units {
		ids[i] = u.ID
	}
	return ids
}

// Len returns the number of units in the category.
func (c Category) Len() int {
	return len(c.units)
}

// DefaultPair returns the unit ids a converter preselects: the first and
// second declared units, or the first unit twice for single-unit categories.
func (c Category) DefaultPair() (from, to string) {
	switch len(c.units) {
	case 0:
		return "", ""
	case 1:
		return c.units[0].ID, c.units[0].ID
	default:
		return c.units[0].ID, c.units[1].ID
	}
}
