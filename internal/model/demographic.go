package model

// AgeGroup is the closed set of selectable age bands
type AgeGroup string

const (
	Age10s AgeGroup = "10s"
	Age20s AgeGroup = "20s"
	Age30s AgeGroup = "30s"
	Age40s AgeGroup = "40s"
	Age50s AgeGroup = "50s"
	Age60s AgeGroup = "60s"
)

// AgeRange is the inclusive numeric range an AgeGroup covers
type AgeRange struct {
	Min int
	Max int
}

var ageRanges = map[AgeGroup]AgeRange{
	Age10s: {10, 19},
	Age20s: {20, 29},
	Age30s: {30, 39},
	Age40s: {40, 49},
	Age50s: {50, 59},
	Age60s: {60, 99},
}

// Range returns the numeric range for the group; ok is false for an
// unknown tag
func (a AgeGroup) Range() (AgeRange, bool) {
	r, ok := ageRanges[a]
	return r, ok
}

// IsValid reports whether a is a known age group tag
func (a AgeGroup) IsValid() bool {
	_, ok := ageRanges[a]
	return ok
}

// Gender partitions the question id-space
type Gender string

const (
	GenderFemale Gender = "F"
	GenderMale   Gender = "M"
	GenderOther  Gender = "O"
)

// IsValid reports whether g is a known gender tag
func (g Gender) IsValid() bool {
	switch g {
	case GenderFemale, GenderMale, GenderOther:
		return true
	}
	return false
}

// Question id partitions per gender. O shares the male range.
const (
	maleIDMin   = 1
	maleIDMax   = 865
	femaleIDMin = 866
	femaleIDMax = 1715
)

// IDRange returns the question id partition for the gender
func (g Gender) IDRange() (min, max int) {
	if g == GenderFemale {
		return femaleIDMin, femaleIDMax
	}
	return maleIDMin, maleIDMax
}
