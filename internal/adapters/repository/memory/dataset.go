package memory

import (
	"github.com/ogurasousui/learning-dashboard/internal/platform/seed"
)

// Repositories はデータセットから構築したリポジトリ一式です。
type Repositories struct {
	Users     *UserRepository
	Employees *EmployeeRepository
	Catalog   *CatalogRepository
}

// FromDataset はデータセットからリポジトリを構築します。パスワードは cost でハッシュ化されます。
func FromDataset(ds *seed.Dataset, cost int) (*Repositories, error) {
	creds, err := ds.Credentials(cost)
	if err != nil {
		return nil, err
	}
	users, err := NewUserRepository(creds)
	if err != nil {
		return nil, err
	}
	return &Repositories{
		Users:     users,
		Employees: NewEmployeeRepository(ds.Employees),
		Catalog:   NewCatalogRepository(ds.Courses, ds.Assessments, ds.Trend),
	}, nil
}
