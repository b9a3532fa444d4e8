// internal/app/popupctl/types.go
package popupctl

import "github.com/llehouerou/carfilter/internal/filters"

// Type identifies which filter popup is open. At most one is open at a time.
type Type int

const (
	Closed Type = iota
	CarType
	Region
	Price
)

func (t Type) String() string {
	switch t {
	case Closed:
		return "closed"
	case CarType:
		return "carType"
	case Region:
		return "region"
	case Price:
		return "price"
	}
	return "unknown"
}

// Category returns the filter category edited by the popup.
func (t Type) Category() (filters.Category, bool) {
	switch t {
	case CarType:
		return filters.CarType, true
	case Region:
		return filters.Region, true
	case Price:
		return filters.Price, true
	case Closed:
	}
	return 0, false
}

// ForCategory returns the popup editing c. Tags have no popup.
func ForCategory(c filters.Category) (Type, bool) {
	switch c {
	case filters.CarType:
		return CarType, true
	case filters.Region:
		return Region, true
	case filters.Price:
		return Price, true
	case filters.Tags:
	}
	return Closed, false
}
