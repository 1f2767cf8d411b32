package model

const RoleAdmin = "admin"

// AuthUser is the identity handed over by the auth collaborator. A nil
// AuthUser means the request is anonymous (public submission).
type AuthUser struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

func (u *AuthUser) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
