package memory

import (
	"context"

	"github.com/ogurasousui/learning-dashboard/internal/core/employee"
)

// EmployeeRepository は学習プロファイルをメモリ上に保持します。
type EmployeeRepository struct {
	order []*employee.Employee
}

// NewEmployeeRepository は EmployeeRepository を生成します。
func NewEmployeeRepository(list []*employee.Employee) *EmployeeRepository {
	order := make([]*employee.Employee, 0, len(list))
	for _, e := range list {
		order = append(order, e.Clone())
	}
	return &EmployeeRepository{order: order}
}

// FindByUsername はユーザー名でプロファイルを取得します。
func (r *EmployeeRepository) FindByUsername(_ context.Context, username string) (*employee.Employee, error) {
	for _, e := range r.order {
		if e.Username == username {
			return e.Clone(), nil
		}
	}
	return nil, employee.ErrEmployeeNotFound
}

// List は条件に一致するプロファイルをデータセット順で返します。
func (r *EmployeeRepository) List(_ context.Context, filter employee.ListEmployeesFilter) ([]*employee.Employee, string, error) {
	var matched []*employee.Employee
	for _, e := range r.order {
		if filter.Matches(e) {
			matched = append(matched, e)
		}
	}

	page, next := employee.Paginate(matched, filter.Offset, filter.Limit)
	out := make([]*employee.Employee, 0, len(page))
	for _, e := range page {
		out = append(out, e.Clone())
	}
	return out, next, nil
}

// Departments は部署名を初出順で返します。
func (r *EmployeeRepository) Departments(_ context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	for _, e := range r.order {
		if _, ok := seen[e.Department]; ok {
			continue
		}
		seen[e.Department] = struct{}{}
		out = append(out, e.Department)
	}
	return out, nil
}
