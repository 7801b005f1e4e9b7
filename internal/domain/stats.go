package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Difficulty is one of the problem categories a user's progress is split into
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties lists every category in the order they are displayed and animated
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Stats is a user's practice statistics as returned by the stats API
type Stats struct {
	TotalSolved    int `json:"totalSolved"`
	TotalQuestions int `json:"totalQuestions"`
	TotalEasy      int `json:"totalEasy"`
	TotalMedium    int `json:"totalMedium"`
	TotalHard      int `json:"totalHard"`
	EasySolved     int `json:"easySolved"`
	MediumSolved   int `json:"mediumSolved"`
	HardSolved     int `json:"hardSolved"`

	// Shown verbatim on the summary cards
	AcceptanceRate     DisplayValue `json:"acceptanceRate"`
	Ranking            DisplayValue `json:"ranking"`
	ContributionPoints DisplayValue `json:"contributionPoints"`
	Reputation         DisplayValue `json:"reputation"`
}

// Progress returns the solved/total pair for a difficulty
func (s *Stats) Progress(d Difficulty) Progress {
	switch d {
	case DifficultyEasy:
		return Progress{Solved: s.EasySolved, Total: s.TotalEasy}
	case DifficultyMedium:
		return Progress{Solved: s.MediumSolved, Total: s.TotalMedium}
	case DifficultyHard:
		return Progress{Solved: s.HardSolved, Total: s.TotalHard}
	default:
		return Progress{}
	}
}

// Progress is how many problems of one category have been solved out of how many exist
type Progress struct {
	Solved int
	Total  int
}

// Percent returns Solved/Total as a percentage in [0, 100].  A category with no problems is 0%.
func (p Progress) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}
	pct := float64(p.Solved) / float64(p.Total) * 100
	return min(max(pct, 0), 100)
}

// Label is the "<solved>/<total>" text shown under an indicator
func (p Progress) Label() string {
	return fmt.Sprintf("%d/%d", p.Solved, p.Total)
}

// DisplayValue is a scalar the API returns that is only ever displayed, never computed with.  It accepts a JSON string
// or number and keeps its textual form, so 12345 stays "12345" and "60%" stays "60%".
type DisplayValue string

func (v *DisplayValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = DisplayValue(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("display value must be a string or number, got %s", data)
	}
	*v = DisplayValue(n.String())
	return nil
}

func (v DisplayValue) String() string {
	return string(v)
}
