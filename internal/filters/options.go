package filters

// Fixed option sets offered by the filter bar and its popups.
var (
	CarTypeOptions = []string{"경형/소형", "준중형", "중형/대형", "수입", "SUV"}

	RegionOptions = []string{
		"서울/경기/인천",
		"제주도",
		"부산/창원",
		"대구/경북",
		"대전",
		"광주",
	}

	TagOptions = []string{"빠른대여", "신차급", "인기", "특가", "프리미엄"}

	// PriceBuckets lists every non-empty value Selection.Price may hold.
	PriceBuckets = []string{"10만원 이하", "10-20만원", "20-30만원", "30만원 이상"}
)

// Options returns the whitelist for a category.
// Price returns the bucket enumeration.
func Options(c Category) []string {
	switch c {
	case CarType:
		return CarTypeOptions
	case Region:
		return RegionOptions
	case Tags:
		return TagOptions
	case Price:
		return PriceBuckets
	}
	return nil
}

// IsPriceBucket reports whether s is a known price bucket.
func IsPriceBucket(s string) bool {
	return contains(PriceBuckets, s)
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
