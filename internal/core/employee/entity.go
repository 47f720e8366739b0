package employee

import "time"

// ItemType は学習パス項目の種類です。
type ItemType string

const (
	ItemTypeCourse     ItemType = "course"
	ItemTypeAssessment ItemType = "assessment"
	ItemTypeProject    ItemType = "project"
)

// ItemStatus は学習パス項目の進行状態です。
type ItemStatus string

const (
	StatusNotStarted ItemStatus = "not-started"
	StatusInProgress ItemStatus = "in-progress"
	StatusCompleted  ItemStatus = "completed"
)

// Employee は社員の学習プロファイルです。実行中に変更されることはありません。
type Employee struct {
	Username          string
	FullName          string
	Department        string
	Email             string
	Skills            []string
	CurrentLevel      string
	TargetLevel       string
	CompletedCourses  []string
	InProgressCourses []string
	AssessmentScores  map[string]int
	LearningPath      []PathItem
	LastActive        time.Time
}

// PathItem は学習パスの 1 単位です。
type PathItem struct {
	ID             string
	Title          string
	Type           ItemType
	EstimatedHours float64
	Status         ItemStatus
	Progress       int
	Prerequisite   string
	Skills         []string
}

// Clone はスライスとマップを含めて複製します。
func (e *Employee) Clone() *Employee {
	if e == nil {
		return nil
	}
	c := *e
	c.Skills = cloneStrings(e.Skills)
	c.CompletedCourses = cloneStrings(e.CompletedCourses)
	c.InProgressCourses = cloneStrings(e.InProgressCourses)
	if e.AssessmentScores != nil {
		c.AssessmentScores = make(map[string]int, len(e.AssessmentScores))
		for k, v := range e.AssessmentScores {
			c.AssessmentScores[k] = v
		}
	}
	if e.LearningPath != nil {
		c.LearningPath = make([]PathItem, len(e.LearningPath))
		for i, item := range e.LearningPath {
			item.Skills = cloneStrings(item.Skills)
			c.LearningPath[i] = item
		}
	}
	return &c
}

// FindItem は ID で学習パス項目を探します。
func (e *Employee) FindItem(id string) (PathItem, bool) {
	for _, item := range e.LearningPath {
		if item.ID == id {
			return item, true
		}
	}
	return PathItem{}, false
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}

func isValidType(t ItemType) bool {
	switch t {
	case ItemTypeCourse, ItemTypeAssessment, ItemTypeProject:
		return true
	default:
		return false
	}
}

func isValidStatus(s ItemStatus) bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}
