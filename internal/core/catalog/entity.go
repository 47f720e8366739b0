package catalog

// Level はコースの難易度です。
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Difficulty は設問の難易度です。
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Course はコースカタログの 1 件です。
type Course struct {
	ID             string
	Title          string
	Description    string
	Category       string
	Level          Level
	EstimatedHours float64
	Skills         []string
	Rating         float64
	EnrolledCount  int
	CompletionRate int
}

// Assessment はスキル評価テストです。
type Assessment struct {
	ID           string
	Title        string
	Description  string
	Category     string
	Difficulty   Difficulty
	Skills       []string
	PassingScore int
	TimeLimit    int
	Questions    []Question
}

// Question は評価テストの設問です。CorrectAnswer はクライアントへ返しません。
type Question struct {
	ID            string
	Text          string
	Options       []string
	CorrectAnswer int
	Difficulty    Difficulty
	Skill         string
}

// MonthlyTrend は月次の学習開始・完了件数です。
type MonthlyTrend struct {
	Month     string
	Completed int
	Started   int
}

// SkillScore はスキル別の得点です。
type SkillScore struct {
	Skill   string
	Correct int
	Total   int
	Score   int
}

// AssessmentResult は回答の採点結果です。
type AssessmentResult struct {
	AssessmentID string
	Correct      int
	Total        int
	Score        int
	Passed       bool
	SkillScores  []SkillScore
}

// IsValid は難易度が既知かどうかを返します。
func (l Level) IsValid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	default:
		return false
	}
}

// IsValid は難易度が既知かどうかを返します。
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// HasSkill は skill を扱うコースかどうかを返します。
func (c *Course) HasSkill(skill string) bool {
	for _, s := range c.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

// Clone はスライスを含めて複製します。
func (c *Course) Clone() *Course {
	if c == nil {
		return nil
	}
	cp := *c
	cp.Skills = append([]string(nil), c.Skills...)
	return &cp
}

// Clone はスライスを含めて複製します。
func (a *Assessment) Clone() *Assessment {
	if a == nil {
		return nil
	}
	cp := *a
	cp.Skills = append([]string(nil), a.Skills...)
	cp.Questions = make([]Question, len(a.Questions))
	for i, q := range a.Questions {
		q.Options = append([]string(nil), q.Options...)
		cp.Questions[i] = q
	}
	return &cp
}

// Redacted は正答を取り除いた複製を返します。
func (a *Assessment) Redacted() *Assessment {
	cp := a.Clone()
	for i := range cp.Questions {
		cp.Questions[i].CorrectAnswer = -1
	}
	return cp
}
