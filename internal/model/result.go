package model

// ResultContent is an immutable entry of the result-narrative bank,
// looked up by classification key.
type ResultContent struct {
	TypeKey          string   `json:"typeKey" bson:"_id"`
	Titles           []string `json:"titles" bson:"titles"`
	Summaries        []string `json:"summaries" bson:"summaries"`
	BaseName         string   `json:"baseName" bson:"baseName"`
	Color            string   `json:"color" bson:"color"`
	AdviceList       []string `json:"adviceList" bson:"adviceList"`
	LuckyItems       []string `json:"luckyItems" bson:"luckyItems"`
	FamousPeoplePool []string `json:"famousPeoplePool" bson:"famousPeoplePool"`
}
