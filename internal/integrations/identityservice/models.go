package identityservice

// Роли пользователей кампус-портала
// Сравниваются как непрозрачные строки, источником истины является identity service
const (
	RoleStudent = "Student"
	RoleFaculty = "Faculty"
	RoleAdmin   = "Admin"
)

// User модель пользователя из identity service
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// IsAdmin returns true if the user carries the Admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ErrorResponse модель ошибки от identity service
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
