// Package catalog holds the static component-variant catalog and the
// deterministic resolver that picks a concrete variant for an abstract
// section type. The catalog is loaded once at process start and never
// mutated; pass the *Catalog around rather than re-building it.
package catalog

// ComponentVariant is one concrete implementation of an abstract section
// type, with its own prop schema and industry/style affinity.
type ComponentVariant struct {
	Name        string
	Type        string
	Description string
	// PropsSchema maps prop name to a type hint understood by the schema
	// validator: "string", "text", "image", "string[]", "item[]", "number".
	PropsSchema map[string]string
	Style       string
	Keywords    []string
	Industries  []string
}

// Catalog is an ordered, read-only set of variants. Order matters: ties in
// resolver scoring break toward the earlier entry.
type Catalog struct {
	variants []ComponentVariant
	byType   map[string][]ComponentVariant
}

// New builds a catalog preserving the given variant order.
func New(variants []ComponentVariant) *Catalog {
	c := &Catalog{
		variants: variants,
		byType:   make(map[string][]ComponentVariant),
	}
	for _, v := range variants {
		c.byType[v.Type] = append(c.byType[v.Type], v)
	}
	return c
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(defaultVariants)
}

// VariantsFor returns the catalog-ordered variants for a section type.
func (c *Catalog) VariantsFor(sectionType string) []ComponentVariant {
	return c.byType[sectionType]
}

// Len reports the total number of variants.
func (c *Catalog) Len() int {
	return len(c.variants)
}
