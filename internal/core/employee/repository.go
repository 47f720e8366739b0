package employee

import "context"

// Repository は学習プロファイルの読み取り専用アクセスです。
type Repository interface {
	FindByUsername(ctx context.Context, username string) (*Employee, error)
	List(ctx context.Context, filter ListEmployeesFilter) ([]*Employee, string, error)
	Departments(ctx context.Context) ([]string, error)
}

// ListEmployeesFilter は一覧取得用フィルタです。
// Department が空なら全部署、Search は氏名と部署への大文字小文字を無視した部分一致です。
// Usernames が nil でなければその集合に含まれる社員だけを返します。
type ListEmployeesFilter struct {
	Department string
	Search     string
	Usernames  []string
	Limit      int
	Offset     int
}
