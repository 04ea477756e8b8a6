package constants

type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// UnknownActor is the identity used when a request carries no username.
const UnknownActor = "Unknown"
