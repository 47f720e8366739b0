package user

// Role はダッシュボード上の役割を表します。
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// Portal はロールが開けるダッシュボードの種類です。
type Portal string

const (
	PortalAdmin   Portal = "admin"
	PortalManager Portal = "manager"
	PortalLearner Portal = "learner"
)

// User はパスワードを含まない公開ユーザーレコードです。
type User struct {
	Username   string   `json:"username"`
	Role       Role     `json:"role"`
	FullName   string   `json:"full_name"`
	Department string   `json:"department"`
	Email      string   `json:"email"`
	Manager    string   `json:"manager,omitempty"`
	Employees  []string `json:"employees,omitempty"`
}

// Credential は認証テーブルの 1 行です。コア層の外には出しません。
type Credential struct {
	User         User
	PasswordHash []byte
}

// Manages は username が直属の部下かどうかを返します。
func (u User) Manages(username string) bool {
	for _, e := range u.Employees {
		if e == username {
			return true
		}
	}
	return false
}

// Clone は slice を含めて複製します。
func (u User) Clone() User {
	c := u
	if u.Employees != nil {
		c.Employees = append([]string(nil), u.Employees...)
	}
	return c
}

// IsValid はロール値が既知かどうかを返します。
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	default:
		return false
	}
}

// Portals はロールごとに利用可能なポータルを返します。
func Portals(role Role) []Portal {
	switch role {
	case RoleAdmin:
		return []Portal{PortalAdmin, PortalLearner}
	case RoleManager:
		return []Portal{PortalManager, PortalLearner}
	default:
		return []Portal{PortalLearner}
	}
}
