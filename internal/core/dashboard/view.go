package dashboard

import (
	"github.com/ogurasousui/learning-dashboard/internal/core/catalog"
	"github.com/ogurasousui/learning-dashboard/internal/core/employee"
	"github.com/ogurasousui/learning-dashboard/internal/core/user"
)

// LearnerOverview は学習者ダッシュボードの概要タブです。
type LearnerOverview struct {
	Profile         *employee.Employee
	Stages          []employee.Stage
	OverallProgress float64
	Counts          employee.StatusCounts
	SkillGaps       []string
	UpNext          []employee.PathItem
}

// PathEntry は前提条件の表示名を解決済みの学習パス項目です。
type PathEntry struct {
	Item              employee.PathItem
	PrerequisiteTitle string
}

// LearningPathView は学習パスタブです。
type LearningPathView struct {
	Username string
	Items    []PathEntry
	Counts   employee.StatusCounts
}

// TrackerView は進捗トラッカーです。
type TrackerView struct {
	Username        string
	OverallProgress float64
	Risk            employee.RiskLevel
	RemainingHours  float64
	Counts          employee.StatusCounts
	InProgress      []employee.PathItem
}

// Recommendation はおすすめコース 1 件です。
type Recommendation struct {
	Course      *catalog.Course
	Relevance   float64
	GapSkills   []string
	KnownSkills []string
}

// RecommendationsView はおすすめコース一覧です。
type RecommendationsView struct {
	SkillGaps     []string
	Items         []Recommendation
	TopThreeHours float64
}

// MemberSummary はチーム一覧や管理画面で使う社員の要約です。
type MemberSummary struct {
	Username        string
	FullName        string
	Department      string
	Email           string
	Skills          []string
	OverallProgress float64
	Counts          employee.StatusCounts
	Risk            employee.RiskLevel
	Active          bool
	CurrentItems    []employee.PathItem
}

// TeamView はチームメンバータブです。
type TeamView struct {
	Manager *user.User
	Members []MemberSummary
}

// ProgressBucket は進捗分布の 1 区間です。
type ProgressBucket struct {
	Label string
	Min   float64
	Max   float64
	Count int
}

// ManagerOverview はマネージャーダッシュボードです。
type ManagerOverview struct {
	TeamSize        int
	AverageProgress float64
	CompletedItems  int
	AtRisk          int
	Members         []MemberSummary
	Distribution    []ProgressBucket
}

// DepartmentProgress は部署ごとの学習パス項目状態の集計です。
type DepartmentProgress struct {
	Department string
	Counts     employee.StatusCounts
}

// SkillAverage はスキルごとの平均評価点です。
type SkillAverage struct {
	Skill   string
	Average float64
	Samples int
}

// AdminOverview は管理者ダッシュボードの概要です。
type AdminOverview struct {
	TotalEmployees int
	TotalManagers  int
	ActiveUsers    int
	CompletionRate float64
	Departments    []DepartmentProgress
	Skills         []SkillAverage
	Trend          []catalog.MonthlyTrend
}

// UserManagementInput はユーザー管理タブのフィルタです。
type UserManagementInput struct {
	Department string
	Search     string
}

// UserManagementView はユーザー管理タブです。
type UserManagementView struct {
	Departments []string
	Members     []MemberSummary
}

// TeamNode はマネージャーと直属の部下です。
type TeamNode struct {
	Manager user.User
	Reports []MemberSummary
}

// RecommendationsInput はおすすめ件数の指定です。0 は既定値です。
type RecommendationsInput struct {
	Limit int
}
