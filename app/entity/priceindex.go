package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PriceEntry is one catalogue value: the charge amount in minor currency
// units (cents).
type PriceEntry struct {
	Price int64 `json:"price"`
}

// Product is one catalogue listing.
type Product struct {
	Name  string
	Price int64
}

// PriceIndex maps product names to prices while preserving insertion
// order. encoding/json decodes objects into unordered maps, so the index
// keeps its own key order and (un)marshals through the token API to keep
// the on-disk object order stable across round trips.
type PriceIndex struct {
	names   []string
	entries map[string]PriceEntry
}

// Set inserts or overwrites an entry. A new name goes to the end; an
// existing name keeps its position.
func (p *PriceIndex) Set(name string, entry PriceEntry) {
	if p.entries == nil {
		p.entries = map[string]PriceEntry{}
	}
	if _, ok := p.entries[name]; !ok {
		p.names = append(p.names, name)
	}
	p.entries[name] = entry
}

// Get looks up an entry by product name.
func (p *PriceIndex) Get(name string) (PriceEntry, bool) {
	entry, ok := p.entries[name]
	return entry, ok
}

// Delete removes an entry, reporting whether it was present.
func (p *PriceIndex) Delete(name string) bool {
	if _, ok := p.entries[name]; !ok {
		return false
	}
	delete(p.entries, name)
	for i, existing := range p.names {
		if existing == name {
			p.names = append(p.names[:i], p.names[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of catalogue entries.
func (p *PriceIndex) Len() int {
	return len(p.entries)
}

// Products lists the catalogue in insertion order.
func (p *PriceIndex) Products() []Product {
	products := make([]Product, 0, len(p.names))
	for _, name := range p.names {
		products = append(products, Product{Name: name, Price: p.entries[name].Price})
	}
	return products
}

func (p PriceIndex) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range p.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(p.entries[name])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (p *PriceIndex) UnmarshalJSON(data []byte) error {
	p.names = nil
	p.entries = map[string]PriceEntry{}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("priceIndex: expected object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("priceIndex: expected key, got %v", tok)
		}
		var entry PriceEntry
		if err := dec.Decode(&entry); err != nil {
			return fmt.Errorf("priceIndex: entry %q: %w", name, err)
		}
		p.Set(name, entry)
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
