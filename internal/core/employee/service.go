package employee

import (
	"context"
	"fmt"
	"strconv"
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

const (
	// AllDepartments は部署フィルタを無効にする値です。
	AllDepartments = "all"

	defaultListPageSize = 50
	maxListPageSize     = 200
)

// Service は学習プロファイルに関するユースケースをまとめます。
type Service struct {
	repo Repository
	tx   TransactionManager
}

// UseCase は学習プロファイルユースケースの公開インターフェースです。
type UseCase interface {
	GetProfile(ctx context.Context, in GetProfileInput) (*Employee, error)
	ListEmployees(ctx context.Context, in ListEmployeesInput) (*ListEmployeesResult, error)
	Departments(ctx context.Context) ([]string, error)
	GroupByDepartment(ctx context.Context) ([]DepartmentGroup, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, tx TransactionManager) *Service {
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{repo: repo, tx: tx}
}

// GetProfileInput はプロファイル取得時の入力です。
type GetProfileInput struct {
	Username string
}

// ListEmployeesInput は一覧取得時の入力です。
type ListEmployeesInput struct {
	Department string
	Search     string
	Usernames  []string
	PageSize   int
	PageToken  string
}

// ListEmployeesResult は一覧取得結果を表します。
type ListEmployeesResult struct {
	Employees     []*Employee
	NextPageToken string
}

// DepartmentGroup は部署ごとの社員のまとまりです。
type DepartmentGroup struct {
	Department string
	Employees  []*Employee
}

// GetProfile は学習プロファイルを取得します。
func (s *Service) GetProfile(ctx context.Context, in GetProfileInput) (*Employee, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, fmt.Errorf("username: %w", ErrInvalidUsername)
	}

	var result *Employee
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.FindByUsername(txCtx, username)
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

// ListEmployees は部署と検索語で絞り込んだ一覧を返します。
func (s *Service) ListEmployees(ctx context.Context, in ListEmployeesInput) (*ListEmployeesResult, error) {
	limit, err := normalizePageSize(in.PageSize)
	if err != nil {
		return nil, err
	}

	offset, err := parsePageToken(in.PageToken)
	if err != nil {
		return nil, err
	}

	filter := ListEmployeesFilter{
		Department: normalizeDepartment(in.Department),
		Search:     strings.TrimSpace(in.Search),
		Limit:      limit,
		Offset:     offset,
	}
	if in.Usernames != nil {
		filter.Usernames = append([]string{}, in.Usernames...)
	}

	var (
		employees []*Employee
		nextToken string
	)
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		list, token, err := s.repo.List(txCtx, filter)
		if err != nil {
			return err
		}
		employees = list
		nextToken = token
		return nil
	}); err != nil {
		return nil, err
	}

	return &ListEmployeesResult{Employees: employees, NextPageToken: nextToken}, nil
}

// Departments は部署名を初出順で返します。
func (s *Service) Departments(ctx context.Context) ([]string, error) {
	var result []string
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		list, err := s.repo.Departments(txCtx)
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

// GroupByDepartment は全社員を部署ごとにまとめます。
func (s *Service) GroupByDepartment(ctx context.Context) ([]DepartmentGroup, error) {
	var groups []DepartmentGroup
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		all, _, err := s.repo.List(txCtx, ListEmployeesFilter{})
		if err != nil {
			return err
		}
		groups = groupByDepartment(all)
		return nil
	}); err != nil {
		return nil, err
	}
	return groups, nil
}

func groupByDepartment(list []*Employee) []DepartmentGroup {
	var groups []DepartmentGroup
	pos := make(map[string]int)
	for _, e := range list {
		i, ok := pos[e.Department]
		if !ok {
			i = len(groups)
			pos[e.Department] = i
			groups = append(groups, DepartmentGroup{Department: e.Department})
		}
		groups[i].Employees = append(groups[i].Employees, e)
	}
	return groups
}

// Matches は絞り込み条件に一致するかを判定します。リポジトリ実装から共有されます。
func (f ListEmployeesFilter) Matches(e *Employee) bool {
	if f.Department != "" && e.Department != f.Department {
		return false
	}
	if f.Usernames != nil {
		found := false
		for _, u := range f.Usernames {
			if u == e.Username {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(e.FullName), term) &&
			!strings.Contains(strings.ToLower(e.Department), term) {
			return false
		}
	}
	return true
}

// Paginate は Offset と Limit で切り出し、次ページのトークンを返します。Limit 0 は全件です。
func Paginate[T any](items []T, offset, limit int) ([]T, string) {
	if offset > len(items) {
		return []T{}, ""
	}
	if limit <= 0 {
		return items[offset:], ""
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	next := ""
	if end < len(items) {
		next = strconv.Itoa(end)
	}
	return items[offset:end], next
}

func normalizeDepartment(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if strings.EqualFold(trimmed, AllDepartments) {
		return ""
	}
	return trimmed
}

func normalizePageSize(pageSize int) (int, error) {
	if pageSize <= 0 {
		return defaultListPageSize, nil
	}
	if pageSize > maxListPageSize {
		return 0, ErrInvalidPageSize
	}
	return pageSize, nil
}

func parsePageToken(token string) (int, error) {
	if strings.TrimSpace(token) == "" {
		return 0, nil
	}

	offset, err := strconv.Atoi(token)
	if err != nil || offset < 0 {
		return 0, ErrInvalidPageToken
	}

	return offset, nil
}
