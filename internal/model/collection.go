package model

import "fmt"

// EvidenceCollection is the caller-owned, mutable set of evidence items that
// grows across interactions (e.g., one item per form submission). The analysis
// engine never holds a collection between calls; the caller passes the full
// collection into every analysis request.
type EvidenceCollection struct {
	items []EvidenceItem
}

// NewEvidenceCollection creates a collection seeded with the given items.
// Items are validated; the first invalid item aborts construction.
func NewEvidenceCollection(items ...EvidenceItem) (*EvidenceCollection, error) {
	c := &EvidenceCollection{}
	for i, item := range items {
		if err := c.Add(item); err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
	}
	return c, nil
}

// Add validates and appends an evidence item
func (c *EvidenceCollection) Add(item EvidenceItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	c.items = append(c.items, item)
	return nil
}

// Remove deletes the item at index i, preserving order of the rest
func (c *EvidenceCollection) Remove(i int) error {
	if i < 0 || i >= len(c.items) {
		return fmt.Errorf("evidence index %d out of range (have %d items)", i, len(c.items))
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return nil
}

// Items returns a copy of the collection in insertion order
func (c *EvidenceCollection) Items() []EvidenceItem {
	out := make([]EvidenceItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items in the collection
func (c *EvidenceCollection) Len() int {
	return len(c.items)
}

// Clear removes all items
func (c *EvidenceCollection) Clear() {
	c.items = nil
}
