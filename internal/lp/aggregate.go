package lp

import (
	"fmt"
	"sort"
)

// ItemProperty states how much of a category one unit of an item provides.
// It is descriptive data only; properties never become constraints themselves.
type ItemProperty struct {
	Item     string
	Category string
	Amount   float64
}

// CategoryTotals maps each category to the expression summing every item's
// contribution to it.
type CategoryTotals struct {
	exprs map[string]Expr
}

// Expr returns the aggregated expression for the category, reporting whether
// any item contributes to it.
func (t CategoryTotals) Expr(category string) (Expr, bool) {
	e, ok := t.exprs[category]
	return e, ok
}

// Categories returns the aggregated categories in sorted order, so reports
// built from the totals are reproducible across runs.
func (t CategoryTotals) Categories() []string {
	cats := make([]string, 0, len(t.exprs))
	for c := range t.exprs {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}

// AggregateCategories builds, for every category named by a property, the sum
// of amount*variable over all items contributing to it. A property naming an
// item absent from the registry fails with ErrUnknownItem; the registry is
// checked rather than trusted to be populated from the same item set.
func AggregateCategories(reg *Registry, props []ItemProperty) (CategoryTotals, error) {
	totals := CategoryTotals{exprs: make(map[string]Expr)}

	for _, p := range props {
		v, err := reg.Lookup(p.Item)
		if err != nil {
			return CategoryTotals{}, fmt.Errorf("aggregate category %q: %w", p.Category, err)
		}

		running, ok := totals.exprs[p.Category]
		if !ok {
			totals.exprs[p.Category] = Term(v, p.Amount)
			continue
		}
		totals.exprs[p.Category] = running.Plus(Term(v, p.Amount))
	}

	return totals, nil
}
