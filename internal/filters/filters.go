// Package filters defines the rental-car filter selection value and the pure
// functions computed from it.
package filters

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownPrice is returned when a price is not one of PriceBuckets.
var ErrUnknownPrice = errors.New("unknown price bucket")

// Selection is the user's current filter choice.
// CarType, Region and Tags are sets; Price is "" or one of PriceBuckets.
type Selection struct {
	CarType []string `json:"carType" yaml:"carType"`
	Tags    []string `json:"tags"    yaml:"tags"`
	Region  []string `json:"region"  yaml:"region"`
	Price   string   `json:"price"   yaml:"price"`
}

// Default returns the all-empty selection.
func Default() Selection {
	return Selection{
		CarType: []string{},
		Tags:    []string{},
		Region:  []string{},
		Price:   "",
	}
}

// Clone returns a deep copy so callers never share backing arrays with the store.
func (s Selection) Clone() Selection {
	return Selection{
		CarType: cloneSet(s.CarType),
		Tags:    cloneSet(s.Tags),
		Region:  cloneSet(s.Region),
		Price:   s.Price,
	}
}

// Normalize restores the Selection invariants: nil sets become empty,
// duplicates are dropped keeping first occurrence, and an unknown price is
// cleared.
func (s Selection) Normalize() Selection {
	out := Selection{
		CarType: dedupe(s.CarType),
		Tags:    dedupe(s.Tags),
		Region:  dedupe(s.Region),
		Price:   s.Price,
	}
	if out.Price != "" && !IsPriceBucket(out.Price) {
		out.Price = ""
	}
	return out
}

// IsEmpty reports whether every field holds its empty value.
func (s Selection) IsEmpty() bool {
	return len(s.CarType) == 0 && len(s.Tags) == 0 && len(s.Region) == 0 && s.Price == ""
}

// Equal compares two selections as sets, ignoring element order.
func (s Selection) Equal(o Selection) bool {
	return s.Price == o.Price &&
		sameSet(s.CarType, o.CarType) &&
		sameSet(s.Tags, o.Tags) &&
		sameSet(s.Region, o.Region)
}

// Values returns a copy of the set held by a set-valued category.
// Price yields a one-element slice when set.
func (s Selection) Values(c Category) []string {
	switch c {
	case CarType:
		return cloneSet(s.CarType)
	case Region:
		return cloneSet(s.Region)
	case Tags:
		return cloneSet(s.Tags)
	case Price:
		if s.Price == "" {
			return []string{}
		}
		return []string{s.Price}
	}
	return []string{}
}

// HasTag reports whether tag is selected.
func (s Selection) HasTag(tag string) bool {
	return slices.Contains(s.Tags, tag)
}

// WithToggledTag removes tag when present, otherwise appends it.
func (s Selection) WithToggledTag(tag string) Selection {
	out := s.Clone()
	if i := slices.Index(out.Tags, tag); i >= 0 {
		out.Tags = slices.Delete(out.Tags, i, i+1)
		return out
	}
	out.Tags = append(out.Tags, tag)
	return out
}

// WithCategory replaces the set held by CarType or Region.
// Values are deduplicated but not checked against the whitelist.
func (s Selection) WithCategory(c Category, values []string) (Selection, error) {
	out := s.Clone()
	switch c {
	case CarType:
		out.CarType = dedupe(values)
	case Region:
		out.Region = dedupe(values)
	case Tags, Price:
		return s, fmt.Errorf("%w: %s is not replaceable", ErrUnknownCategory, c)
	default:
		return s, fmt.Errorf("%w: %s", ErrUnknownCategory, c)
	}
	return out, nil
}

// WithPrice replaces the price bucket. An empty bucket clears the price.
func (s Selection) WithPrice(bucket string) (Selection, error) {
	if bucket != "" && !IsPriceBucket(bucket) {
		return s, fmt.Errorf("%w: %q", ErrUnknownPrice, bucket)
	}
	out := s.Clone()
	out.Price = bucket
	return out, nil
}

// WithCleared resets a single category to its empty value.
func (s Selection) WithCleared(c Category) Selection {
	out := s.Clone()
	switch c {
	case CarType:
		out.CarType = []string{}
	case Region:
		out.Region = []string{}
	case Tags:
		out.Tags = []string{}
	case Price:
		out.Price = ""
	}
	return out
}

func cloneSet(values []string) []string {
	if values == nil {
		return []string{}
	}
	return slices.Clone(values)
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]bool, len(a))
	for _, v := range a {
		set[v] = true
	}
	for _, v := range b {
		if !set[v] {
			return false
		}
	}
	return true
}
