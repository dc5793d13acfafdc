package domain

// Role — роль сотрудника в системе.
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleManager Role = "Manager"
	RoleStaff   Role = "Staff"
)

// User описывает сотрудника, вошедшего в систему
type User struct {
	ID     string
	Name   string
	Email  string
	Role   Role
	Avatar string
}

func NewUser(id string, name string, email string, role Role, avatar string) *User {
	return &User{
		ID:     id,
		Name:   name,
		Email:  email,
		Role:   role,
		Avatar: avatar,
	}
}
