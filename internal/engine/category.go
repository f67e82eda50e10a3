package engine

// Category is one of the four fixed Kiroween competition categories.
type Category string

const (
	CategoryResurrection   Category = "resurrection"
	CategoryFrankenstein   Category = "frankenstein"
	CategorySkeletonCrew   Category = "skeleton-crew"
	CategoryCostumeContest Category = "costume-contest"
)

// AllCategories lists the categories in canonical enumeration order. Ties on
// fit score resolve to the earliest entry, so the order is load-bearing.
var AllCategories = []Category{
	CategoryResurrection,
	CategoryFrankenstein,
	CategorySkeletonCrew,
	CategoryCostumeContest,
}

// DisplayName returns the human-readable category name.
func (c Category) DisplayName() string {
	switch c {
	case CategoryResurrection:
		return "Resurrection"
	case CategoryFrankenstein:
		return "Frankenstein"
	case CategorySkeletonCrew:
		return "Skeleton Crew"
	case CategoryCostumeContest:
		return "Costume Contest"
	}
	return string(c)
}

// Description returns the short themed description shown in reports.
func (c Category) Description() string {
	switch c {
	case CategoryResurrection:
		return "Resurrection projects bring abandoned or outdated technology back to life with a modern twist."
	case CategoryFrankenstein:
		return "Frankenstein projects stitch incompatible technologies together into one unexpectedly functional creation."
	case CategorySkeletonCrew:
		return "Skeleton Crew projects build a bare-bones foundation that other developers can flesh out into full applications."
	case CategoryCostumeContest:
		return "Costume Contest projects dress an application in its Halloween best with striking themed design."
	}
	return ""
}

// Valid reports whether c is one of the four enumerated categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryResurrection, CategoryFrankenstein, CategorySkeletonCrew, CategoryCostumeContest:
		return true
	}
	return false
}
