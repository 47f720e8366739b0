package catalog

import (
	"context"
	"fmt"
	"strings"
)

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// Service はコースカタログと評価テストのユースケースをまとめます。
type Service struct {
	repo Repository
	tx   TransactionManager
}

// UseCase はカタログユースケースの公開インターフェースです。
type UseCase interface {
	ListCourses(ctx context.Context, in ListCoursesInput) ([]*Course, error)
	GetCourse(ctx context.Context, in GetCourseInput) (*Course, error)
	ListAssessments(ctx context.Context) ([]*Assessment, error)
	GetAssessment(ctx context.Context, in GetAssessmentInput) (*Assessment, error)
	MonthlyTrend(ctx context.Context) ([]MonthlyTrend, error)
	SubmitAssessment(ctx context.Context, in SubmitAssessmentInput) (*AssessmentResult, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, tx TransactionManager) *Service {
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{repo: repo, tx: tx}
}

// ListCoursesInput はコース一覧取得時の入力です。
type ListCoursesInput struct {
	Category string
	Level    string
	Skill    string
}

// GetCourseInput はコース取得時の入力です。
type GetCourseInput struct {
	ID string
}

// GetAssessmentInput は評価テスト取得時の入力です。
type GetAssessmentInput struct {
	ID string
}

// SubmitAssessmentInput は回答提出時の入力です。
type SubmitAssessmentInput struct {
	AssessmentID string
	Answers      []int
}

// ListCourses はコース一覧をカタログ順で返します。
func (s *Service) ListCourses(ctx context.Context, in ListCoursesInput) ([]*Course, error) {
	filter := ListCoursesFilter{
		Category: strings.TrimSpace(in.Category),
		Skill:    strings.TrimSpace(in.Skill),
	}
	if lvl := strings.ToLower(strings.TrimSpace(in.Level)); lvl != "" {
		filter.Level = Level(lvl)
		if !filter.Level.IsValid() {
			return nil, fmt.Errorf("level %q: %w", in.Level, ErrInvalidCourse)
		}
	}

	var result []*Course
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		list, err := s.repo.ListCourses(txCtx, filter)
		if err != nil {
			return err
		}
		result = list
		return nil
	}); err != nil {
		return nil, err
	}
	return result, nil
}

// GetCourse はコースを取得します。
func (s *Service) GetCourse(ctx context.Context, in GetCourseInput) (*Course, error) {
	id := strings.TrimSpace(in.ID)
	if id == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var result *Course
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.FindCourse(txCtx, id)
		if err != nil {
			return err
		}
		result = found
		return nil
	}); err != nil {
		return nil, err
	}
	return result, nil
}

// ListAssessments は正答を伏せた評価テスト一覧を返します。
func (s *Service) ListAssessments(ctx context.Context) ([]*Assessment, error) {
	var result []*Assessment
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		list, err := s.repo.ListAssessments(txCtx)
		if err != nil {
			return err
		}
		result = make([]*Assessment, 0, len(list))
		for _, a := range list {
			result = append(result, a.Redacted())
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return result, nil
}

// GetAssessment は正答を伏せた評価テストを返します。
func (s *Service) GetAssessment(ctx context.Context, in GetAssessmentInput) (*Assessment, error) {
	found, err := s.findAssessment(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	return found.Redacted(), nil
}

// MonthlyTrend は月次推移を返します。
func (s *Service) MonthlyTrend(ctx context.Context) ([]MonthlyTrend, error) {
	var result []MonthlyTrend
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		list, err := s.repo.MonthlyTrend(txCtx)
		if err != nil {
			return err
		}
		result = list
		return nil
	}); err != nil {
		return nil, err
	}
	return result, nil
}

// SubmitAssessment は回答を採点します。結果は保存しません。
func (s *Service) SubmitAssessment(ctx context.Context, in SubmitAssessmentInput) (*AssessmentResult, error) {
	found, err := s.findAssessment(ctx, in.AssessmentID)
	if err != nil {
		return nil, err
	}
	return Score(found, in.Answers)
}

func (s *Service) findAssessment(ctx context.Context, rawID string) (*Assessment, error) {
	id := strings.TrimSpace(rawID)
	if id == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var result *Assessment
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.FindAssessment(txCtx, id)
		if err != nil {
			return err
		}
		result = found
		return nil
	}); err != nil {
		return nil, err
	}
	return result, nil
}
