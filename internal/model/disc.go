package model

// DISCType is one of the four behavioral dimensions
type DISCType string

const (
	TypeD DISCType = "D"
	TypeI DISCType = "I"
	TypeS DISCType = "S"
	TypeC DISCType = "C"
)

// CanonicalOrder is the tie-break order for everything that ranks types
var CanonicalOrder = []DISCType{TypeD, TypeI, TypeS, TypeC}

// IsValid reports whether t is one of the four types
func (t DISCType) IsValid() bool {
	switch t {
	case TypeD, TypeI, TypeS, TypeC:
		return true
	}
	return false
}

// ScoreTally holds one count per type
type ScoreTally struct {
	D int `json:"d" bson:"d"`
	I int `json:"i" bson:"i"`
	S int `json:"s" bson:"s"`
	C int `json:"c" bson:"c"`
}

// Count returns the count for the given type
func (s ScoreTally) Count(t DISCType) int {
	switch t {
	case TypeD:
		return s.D
	case TypeI:
		return s.I
	case TypeS:
		return s.S
	case TypeC:
		return s.C
	}
	return 0
}

// Inc bumps the count for the given type by one
func (s *ScoreTally) Inc(t DISCType) {
	switch t {
	case TypeD:
		s.D++
	case TypeI:
		s.I++
	case TypeS:
		s.S++
	case TypeC:
		s.C++
	}
}

// Total returns the number of recorded answers across all four types
func (s ScoreTally) Total() int {
	return s.D + s.I + s.S + s.C
}
