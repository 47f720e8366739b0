package catalog

import (
	"fmt"
	"math"
)

// Score は回答を採点します。answers[i] は Questions[i] に対する選択肢の添字です。
func Score(a *Assessment, answers []int) (*AssessmentResult, error) {
	if len(answers) != len(a.Questions) {
		return nil, fmt.Errorf("got %d answers for %d questions: %w", len(answers), len(a.Questions), ErrAnswerCountMismatch)
	}

	result := &AssessmentResult{AssessmentID: a.ID, Total: len(a.Questions)}
	pos := make(map[string]int)
	for i, q := range a.Questions {
		ans := answers[i]
		if ans < 0 || ans >= len(q.Options) {
			return nil, fmt.Errorf("question %s: %w", q.ID, ErrInvalidAnswer)
		}

		idx, ok := pos[q.Skill]
		if !ok {
			idx = len(result.SkillScores)
			pos[q.Skill] = idx
			result.SkillScores = append(result.SkillScores, SkillScore{Skill: q.Skill})
		}
		result.SkillScores[idx].Total++
		if ans == q.CorrectAnswer {
			result.SkillScores[idx].Correct++
			result.Correct++
		}
	}

	for i := range result.SkillScores {
		s := &result.SkillScores[i]
		s.Score = percent(s.Correct, s.Total)
	}
	result.Score = percent(result.Correct, result.Total)
	result.Passed = result.Score >= a.PassingScore
	return result, nil
}

func percent(n, d int) int {
	if d == 0 {
		return 0
	}
	return int(math.Round(float64(n) / float64(d) * 100))
}

// ValidateAssessment は評価テスト定義の整合性を検証します。
func ValidateAssessment(a *Assessment) error {
	if a.ID == "" {
		return fmt.Errorf("assessment id: %w", ErrInvalidAssessment)
	}
	if a.PassingScore < 0 || a.PassingScore > 100 {
		return fmt.Errorf("%s: passing score %d: %w", a.ID, a.PassingScore, ErrInvalidAssessment)
	}
	if len(a.Questions) == 0 {
		return fmt.Errorf("%s: no questions: %w", a.ID, ErrInvalidAssessment)
	}
	seen := make(map[string]struct{}, len(a.Questions))
	for _, q := range a.Questions {
		if _, dup := seen[q.ID]; dup || q.ID == "" {
			return fmt.Errorf("%s: question %q: %w", a.ID, q.ID, ErrInvalidAssessment)
		}
		seen[q.ID] = struct{}{}
		if len(q.Options) < 2 || q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return fmt.Errorf("%s: question %s: %w", a.ID, q.ID, ErrInvalidAssessment)
		}
		if q.Difficulty != "" && !q.Difficulty.IsValid() {
			return fmt.Errorf("%s: question %s difficulty: %w", a.ID, q.ID, ErrInvalidAssessment)
		}
	}
	return nil
}

// ValidateCourse はコース定義の整合性を検証します。
func ValidateCourse(c *Course) error {
	if c.ID == "" {
		return fmt.Errorf("course id: %w", ErrInvalidCourse)
	}
	if !c.Level.IsValid() {
		return fmt.Errorf("%s: level %q: %w", c.ID, c.Level, ErrInvalidCourse)
	}
	if c.EstimatedHours < 0 || c.CompletionRate < 0 || c.CompletionRate > 100 {
		return fmt.Errorf("%s: %w", c.ID, ErrInvalidCourse)
	}
	return nil
}
