package filters

// ActiveFlags tells which category buttons render as active.
type ActiveFlags struct {
	CarType bool `json:"carType" yaml:"carType"`
	Region  bool `json:"region"  yaml:"region"`
	Price   bool `json:"price"   yaml:"price"`
}

// Derive computes the active flags for a selection.
// Car type and region are active only when they intersect their whitelist,
// so stray values in the persisted record never light a button.
func Derive(s Selection) ActiveFlags {
	return ActiveFlags{
		CarType: intersects(s.CarType, CarTypeOptions),
		Region:  intersects(s.Region, RegionOptions),
		Price:   s.Price != "",
	}
}

// Active returns the flag for one category. Tags has no aggregate flag.
func (f ActiveFlags) Active(c Category) bool {
	switch c {
	case CarType:
		return f.CarType
	case Region:
		return f.Region
	case Price:
		return f.Price
	case Tags:
		return false
	}
	return false
}

// TagActive reports whether a tag button renders as active.
func TagActive(s Selection, tag string) bool {
	return s.HasTag(tag)
}

func intersects(values, whitelist []string) bool {
	for _, v := range values {
		if contains(whitelist, v) {
			return true
		}
	}
	return false
}
