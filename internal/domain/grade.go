package domain

import (
	"fmt"
	"strings"
)

// Grade is the closed set of condition levels an item can be recorded in.
type Grade string

const (
	GradeNew          Grade = "new"
	GradeVeryGood     Grade = "very_good"
	GradeGood         Grade = "good"
	GradeWorn         Grade = "worn"
	GradeBad          Grade = "bad"
	GradeOutOfService Grade = "out_of_service"
)

// gradeRanks is the single rank table; higher is better.
var gradeRanks = map[Grade]int{
	GradeNew:          6,
	GradeVeryGood:     5,
	GradeGood:         4,
	GradeWorn:         3,
	GradeBad:          2,
	GradeOutOfService: 1,
}

// Grades lists every grade from best to worst.
func Grades() []Grade {
	return []Grade{GradeNew, GradeVeryGood, GradeGood, GradeWorn, GradeBad, GradeOutOfService}
}

// Rank returns 6 for new down to 1 for out_of_service, and 0 for a value
// outside the closed set.
func (g Grade) Rank() int {
	return gradeRanks[g]
}

func (g Grade) Valid() bool {
	_, ok := gradeRanks[g]
	return ok
}

// Worse reports whether g ranks strictly below other.
func (g Grade) Worse(other Grade) bool {
	return g.Rank() < other.Rank()
}

// gradeAliases maps the vocabulary seen in imported reports to grades.
var gradeAliases = map[string]Grade{
	"new":            GradeNew,
	"very_good":      GradeVeryGood,
	"good":           GradeGood,
	"worn":           GradeWorn,
	"bad":            GradeBad,
	"out_of_service": GradeOutOfService,
	// French inspection forms
	"neuf":         GradeNew,
	"tres_bon":     GradeVeryGood,
	"très_bon":     GradeVeryGood,
	"bon":          GradeGood,
	"usage":        GradeWorn,
	"usé":          GradeWorn,
	"mauvais":      GradeBad,
	"hors_service": GradeOutOfService,
	// free-form variants
	"very good":      GradeVeryGood,
	"used":           GradeWorn,
	"poor":           GradeBad,
	"broken":         GradeOutOfService,
	"out of service": GradeOutOfService,
}

// ParseGrade normalises raw into a Grade. Unknown values are an error; they
// never pass through as an unranked grade.
func ParseGrade(raw string) (Grade, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if g, ok := gradeAliases[key]; ok {
		return g, nil
	}
	if g, ok := gradeAliases[strings.ReplaceAll(key, " ", "_")]; ok {
		return g, nil
	}
	return "", fmt.Errorf("unknown condition grade %q", raw)
}
