package employee

import (
	"sort"
	"time"
)

// RiskLevel は学習進捗の停滞リスクです。
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// StageStatus は学習ステージの状態です。
type StageStatus string

const (
	StageCompleted StageStatus = "completed"
	StageCurrent   StageStatus = "current"
	StagePending   StageStatus = "pending"
)

// Stage は学習者ジャーニーの 1 段階です。
type Stage struct {
	Title  string
	Status StageStatus
}

const (
	// LearnerGapThreshold は学習者ダッシュボードでスキルギャップとみなす閾値です。
	LearnerGapThreshold = 70
	// RiskGapThreshold はリスク判定で数えるスキルギャップの閾値です。
	RiskGapThreshold = 60
	// ActiveWindow はアクティブユーザーとみなす期間です。
	ActiveWindow = 7 * 24 * time.Hour
)

// StatusCounts は状態ごとの学習パス項目数です。
type StatusCounts struct {
	Completed  int
	InProgress int
	NotStarted int
}

// Total は全項目数を返します。
func (c StatusCounts) Total() int {
	return c.Completed + c.InProgress + c.NotStarted
}

// OverallProgress は学習パス進捗の算術平均です。空のパスは 0 です。
func (e *Employee) OverallProgress() float64 {
	if len(e.LearningPath) == 0 {
		return 0
	}
	sum := 0
	for _, item := range e.LearningPath {
		sum += item.Progress
	}
	return float64(sum) / float64(len(e.LearningPath))
}

// CountByStatus は状態ごとの項目数を返します。
func (e *Employee) CountByStatus() StatusCounts {
	var c StatusCounts
	for _, item := range e.LearningPath {
		switch item.Status {
		case StatusCompleted:
			c.Completed++
		case StatusInProgress:
			c.InProgress++
		case StatusNotStarted:
			c.NotStarted++
		}
	}
	return c
}

// CompletionRatio は完了項目の割合 (0..1) です。
func (e *Employee) CompletionRatio() float64 {
	if len(e.LearningPath) == 0 {
		return 0
	}
	return float64(e.CountByStatus().Completed) / float64(len(e.LearningPath))
}

// SkillGaps は threshold 未満のスキルを名前順で返します。
func (e *Employee) SkillGaps(threshold int) []string {
	gaps := make([]string, 0, len(e.AssessmentScores))
	for skill, score := range e.AssessmentScores {
		if score < threshold {
			gaps = append(gaps, skill)
		}
	}
	sort.Strings(gaps)
	return gaps
}

// RiskLevel は全体進捗とスキルギャップ数からリスクを判定します。
func (e *Employee) RiskLevel() RiskLevel {
	overall := e.OverallProgress()
	gaps := len(e.SkillGaps(RiskGapThreshold))
	switch {
	case overall < 30 || gaps > 3:
		return RiskHigh
	case overall < 60 || gaps > 1:
		return RiskMedium
	default:
		return RiskLow
	}
}

// IsActive は now から window 以内に活動があったかを返します。
func (e *Employee) IsActive(now time.Time, window time.Duration) bool {
	return e.LastActive.After(now.Add(-window))
}

// RemainingHours は未消化の見積もり時間の合計です。
func (e *Employee) RemainingHours() float64 {
	var total float64
	for _, item := range e.LearningPath {
		total += item.EstimatedHours * float64(100-item.Progress) / 100
	}
	return total
}

// Stages は全体進捗から学習ステージを導出します。
func (e *Employee) Stages() []Stage {
	p := e.OverallProgress()

	assessment := StageCurrent
	if p > 0 {
		assessment = StageCompleted
	}

	recommendations := StagePending
	switch {
	case p > 20:
		recommendations = StageCompleted
	case p > 0:
		recommendations = StageCurrent
	}

	learning := StagePending
	if p > 20 {
		learning = StageCurrent
	}

	completion := StagePending
	if p > 90 {
		completion = StageCurrent
	}

	return []Stage{
		{Title: "Profile", Status: StageCompleted},
		{Title: "Assessment", Status: assessment},
		{Title: "Recommendations", Status: recommendations},
		{Title: "Learning", Status: learning},
		{Title: "Completion", Status: completion},
	}
}
