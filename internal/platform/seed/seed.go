// Package seed はデモ用データセット (ユーザー・学習プロファイル・カタログ) を読み込みます。
package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ogurasousui/learning-dashboard/internal/core/catalog"
	"github.com/ogurasousui/learning-dashboard/internal/core/employee"
	"github.com/ogurasousui/learning-dashboard/internal/core/user"
	"gopkg.in/yaml.v3"
)

//go:embed dataset.yaml
var embedded []byte

// ErrInvalidDataset はデータセットの参照整合性が崩れている場合に返されます。
var ErrInvalidDataset = errors.New("seed: invalid dataset")

// Dataset は起動時に読み込む静的データ一式です。
type Dataset struct {
	Users       []UserRecord
	Employees   []*employee.Employee
	Courses     []*catalog.Course
	Assessments []*catalog.Assessment
	Trend       []catalog.MonthlyTrend
}

// UserRecord は平文パスワード付きのユーザー定義です。ハッシュ化後は破棄されます。
type UserRecord struct {
	User     user.User
	Password string
}

type fileDataset struct {
	Users       []fileUser       `yaml:"users"`
	Employees   []fileEmployee   `yaml:"employees"`
	Courses     []fileCourse     `yaml:"courses"`
	Assessments []fileAssessment `yaml:"assessments"`
	Trend       []fileTrend      `yaml:"monthly_trend"`
}

type fileUser struct {
	Username   string   `yaml:"username"`
	Password   string   `yaml:"password"`
	Role       string   `yaml:"role"`
	FullName   string   `yaml:"full_name"`
	Department string   `yaml:"department"`
	Email      string   `yaml:"email"`
	Manager    string   `yaml:"manager"`
	Employees  []string `yaml:"employees"`
}

type fileEmployee struct {
	Username          string         `yaml:"username"`
	FullName          string         `yaml:"full_name"`
	Department        string         `yaml:"department"`
	Email             string         `yaml:"email"`
	Skills            []string       `yaml:"skills"`
	CurrentLevel      string         `yaml:"current_level"`
	TargetLevel       string         `yaml:"target_level"`
	CompletedCourses  []string       `yaml:"completed_courses"`
	InProgressCourses []string       `yaml:"in_progress_courses"`
	AssessmentScores  map[string]int `yaml:"assessment_scores"`
	LearningPath      []filePathItem `yaml:"learning_path"`
	LastActive        time.Time      `yaml:"last_active"`
}

type filePathItem struct {
	ID             string   `yaml:"id"`
	Title          string   `yaml:"title"`
	Type           string   `yaml:"type"`
	EstimatedHours float64  `yaml:"estimated_hours"`
	Status         string   `yaml:"status"`
	Progress       int      `yaml:"progress"`
	Prerequisite   string   `yaml:"prerequisite"`
	Skills         []string `yaml:"skills"`
}

type fileCourse struct {
	ID             string   `yaml:"id"`
	Title          string   `yaml:"title"`
	Description    string   `yaml:"description"`
	Category       string   `yaml:"category"`
	Level          string   `yaml:"level"`
	EstimatedHours float64  `yaml:"estimated_hours"`
	Skills         []string `yaml:"skills"`
	Rating         float64  `yaml:"rating"`
	EnrolledCount  int      `yaml:"enrolled_count"`
	CompletionRate int      `yaml:"completion_rate"`
}

type fileAssessment struct {
	ID           string         `yaml:"id"`
	Title        string         `yaml:"title"`
	Description  string         `yaml:"description"`
	Category     string         `yaml:"category"`
	Difficulty   string         `yaml:"difficulty"`
	Skills       []string       `yaml:"skills"`
	PassingScore int            `yaml:"passing_score"`
	TimeLimit    int            `yaml:"time_limit"`
	Questions    []fileQuestion `yaml:"questions"`
}

type fileQuestion struct {
	ID            string   `yaml:"id"`
	Text          string   `yaml:"text"`
	Options       []string `yaml:"options"`
	CorrectAnswer int      `yaml:"correct_answer"`
	Difficulty    string   `yaml:"difficulty"`
	Skill         string   `yaml:"skill"`
}

type fileTrend struct {
	Month     string `yaml:"month"`
	Completed int    `yaml:"completed"`
	Started   int    `yaml:"started"`
}

// Default は埋め込みのデータセットを返します。
func Default() (*Dataset, error) {
	return Parse(embedded)
}

// Load は path が空なら埋め込みデータセットを、そうでなければファイルを読み込みます。
func Load(path string) (*Dataset, error) {
	if path == "" {
		return Default()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read file %s: %w", path, err)
	}
	return Parse(b)
}

// Parse は YAML を解析し、参照整合性を検証します。
func Parse(b []byte) (*Dataset, error) {
	var raw fileDataset
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("seed: parse yaml: %w", err)
	}

	ds := raw.toDataset()
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

func (f fileDataset) toDataset() *Dataset {
	ds := &Dataset{}
	for _, u := range f.Users {
		ds.Users = append(ds.Users, UserRecord{
			User: user.User{
				Username:   u.Username,
				Role:       user.Role(u.Role),
				FullName:   u.FullName,
				Department: u.Department,
				Email:      u.Email,
				Manager:    u.Manager,
				Employees:  u.Employees,
			},
			Password: u.Password,
		})
	}
	for _, e := range f.Employees {
		emp := &employee.Employee{
			Username:          e.Username,
			FullName:          e.FullName,
			Department:        e.Department,
			Email:             e.Email,
			Skills:            e.Skills,
			CurrentLevel:      e.CurrentLevel,
			TargetLevel:       e.TargetLevel,
			CompletedCourses:  e.CompletedCourses,
			InProgressCourses: e.InProgressCourses,
			AssessmentScores:  e.AssessmentScores,
			LastActive:        e.LastActive.UTC(),
		}
		for _, it := range e.LearningPath {
			emp.LearningPath = append(emp.LearningPath, employee.PathItem{
				ID:             it.ID,
				Title:          it.Title,
				Type:           employee.ItemType(it.Type),
				EstimatedHours: it.EstimatedHours,
				Status:         employee.ItemStatus(it.Status),
				Progress:       it.Progress,
				Prerequisite:   it.Prerequisite,
				Skills:         it.Skills,
			})
		}
		ds.Employees = append(ds.Employees, emp)
	}
	for _, c := range f.Courses {
		ds.Courses = append(ds.Courses, &catalog.Course{
			ID:             c.ID,
			Title:          c.Title,
			Description:    c.Description,
			Category:       c.Category,
			Level:          catalog.Level(c.Level),
			EstimatedHours: c.EstimatedHours,
			Skills:         c.Skills,
			Rating:         c.Rating,
			EnrolledCount:  c.EnrolledCount,
			CompletionRate: c.CompletionRate,
		})
	}
	for _, a := range f.Assessments {
		as := &catalog.Assessment{
			ID:           a.ID,
			Title:        a.Title,
			Description:  a.Description,
			Category:     a.Category,
			Difficulty:   catalog.Difficulty(a.Difficulty),
			Skills:       a.Skills,
			PassingScore: a.PassingScore,
			TimeLimit:    a.TimeLimit,
		}
		for _, q := range a.Questions {
			as.Questions = append(as.Questions, catalog.Question{
				ID:            q.ID,
				Text:          q.Text,
				Options:       q.Options,
				CorrectAnswer: q.CorrectAnswer,
				Difficulty:    catalog.Difficulty(q.Difficulty),
				Skill:         q.Skill,
			})
		}
		ds.Assessments = append(ds.Assessments, as)
	}
	for _, t := range f.Trend {
		ds.Trend = append(ds.Trend, catalog.MonthlyTrend{Month: t.Month, Completed: t.Completed, Started: t.Started})
	}
	return ds
}

// Validate はユーザー・プロファイル・カタログ間の参照整合性を検証します。
func (d *Dataset) Validate() error {
	users := make(map[string]user.User, len(d.Users))
	for _, r := range d.Users {
		u := r.User
		if u.Username == "" {
			return fmt.Errorf("%w: user without username", ErrInvalidDataset)
		}
		if _, dup := users[u.Username]; dup {
			return fmt.Errorf("%w: duplicate user %s", ErrInvalidDataset, u.Username)
		}
		if !u.Role.IsValid() {
			return fmt.Errorf("%w: user %s has role %q", ErrInvalidDataset, u.Username, u.Role)
		}
		if r.Password == "" {
			return fmt.Errorf("%w: user %s has no password", ErrInvalidDataset, u.Username)
		}
		users[u.Username] = u
	}

	for _, u := range users {
		if u.Manager != "" {
			mgr, ok := users[u.Manager]
			if !ok || mgr.Role != user.RoleManager {
				return fmt.Errorf("%w: user %s reports to unknown manager %s", ErrInvalidDataset, u.Username, u.Manager)
			}
			if !mgr.Manages(u.Username) {
				return fmt.Errorf("%w: manager %s does not list %s", ErrInvalidDataset, u.Manager, u.Username)
			}
		}
		for _, e := range u.Employees {
			if _, ok := users[e]; !ok {
				return fmt.Errorf("%w: manager %s lists unknown user %s", ErrInvalidDataset, u.Username, e)
			}
		}
	}

	seenEmp := make(map[string]struct{}, len(d.Employees))
	for _, e := range d.Employees {
		if _, ok := users[e.Username]; !ok {
			return fmt.Errorf("%w: profile %s has no user", ErrInvalidDataset, e.Username)
		}
		if _, dup := seenEmp[e.Username]; dup {
			return fmt.Errorf("%w: duplicate profile %s", ErrInvalidDataset, e.Username)
		}
		seenEmp[e.Username] = struct{}{}
		if err := employee.ValidatePath(e); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDataset, err)
		}
	}

	courses := make(map[string]struct{}, len(d.Courses))
	for _, c := range d.Courses {
		if _, dup := courses[c.ID]; dup {
			return fmt.Errorf("%w: duplicate course %s", ErrInvalidDataset, c.ID)
		}
		courses[c.ID] = struct{}{}
		if err := catalog.ValidateCourse(c); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDataset, err)
		}
	}

	assessments := make(map[string]struct{}, len(d.Assessments))
	for _, a := range d.Assessments {
		if _, dup := assessments[a.ID]; dup {
			return fmt.Errorf("%w: duplicate assessment %s", ErrInvalidDataset, a.ID)
		}
		assessments[a.ID] = struct{}{}
		if err := catalog.ValidateAssessment(a); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDataset, err)
		}
	}

	return nil
}

// Credentials は平文パスワードを bcrypt でハッシュ化した認証テーブルを返します。
func (d *Dataset) Credentials(cost int) ([]*user.Credential, error) {
	out := make([]*user.Credential, 0, len(d.Users))
	for _, r := range d.Users {
		cred, err := user.NewCredential(r.User, r.Password, cost)
		if err != nil {
			return nil, err
		}
		out = append(out, cred)
	}
	return out, nil
}
