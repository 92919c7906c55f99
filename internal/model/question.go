package model

// Option is one selectable answer on a question, mapped to a DISC type
type Option struct {
	Text string   `json:"text" bson:"text"`
	Type DISCType `json:"type" bson:"type"`
}

// Question is an immutable entry of the question bank.
// IDs are globally unique and partitioned by gender: 1-865 for M/O,
// 866-1715 for F.
type Question struct {
	ID           int      `json:"id" bson:"_id"`
	Text         string   `json:"text" bson:"text"`
	Category     string   `json:"category" bson:"category"`
	TargetAgeMin int      `json:"targetAgeMin" bson:"targetAgeMin"`
	TargetAgeMax int      `json:"targetAgeMax" bson:"targetAgeMax"`
	Options      []Option `json:"options" bson:"options"`
}
