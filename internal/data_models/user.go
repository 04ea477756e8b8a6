package dto

import "github.com/AMSkillPower/TaskMngrCommenti/internal/constants"

type CreateUserRequest struct {
	Username string
	Role     constants.Role
	FullName string
	Email    string
}
