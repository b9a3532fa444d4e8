package filters

import (
	"errors"
	"fmt"
)

// ErrUnknownCategory is returned when a category name cannot be parsed.
var ErrUnknownCategory = errors.New("unknown filter category")

// Category identifies one field of a Selection.
type Category int

const (
	CarType Category = iota
	Region
	Tags
	Price
)

// Categories lists every category in display order.
var Categories = []Category{CarType, Region, Tags, Price}

// String returns the JSON field name of the category.
func (c Category) String() string {
	switch c {
	case CarType:
		return "carType"
	case Region:
		return "region"
	case Tags:
		return "tags"
	case Price:
		return "price"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Label returns the button label shown in the filter bar.
func (c Category) Label() string {
	switch c {
	case CarType:
		return "차종 분류"
	case Region:
		return "지역"
	case Tags:
		return "태그"
	case Price:
		return "가격"
	}
	return c.String()
}

// ParseCategory maps a JSON field name back to its Category.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// CategoryNames returns the names accepted by ParseCategory.
func CategoryNames() []string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = c.String()
	}
	return names
}
