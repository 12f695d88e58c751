package domain

// UserRole 用户角色
type UserRole string

const (
	UserRoleCaterer UserRole = "CATERER" // 餐饮商家，系统内唯一有功能权限的角色
	UserRoleClient  UserRole = "CLIENT"  // 客户端用户，仅能登录
)

func (r UserRole) String() string {
	return string(r)
}

// User 账号领域模型
type User struct {
	ID       int64    `json:"id"`
	Email    string   `json:"email"`
	Password string   `json:"-"`
	Role     UserRole `json:"role"`
}
