package entity

// Session is the authenticated caller of a request, built from a verified token
// and the caller's user record.
type Session struct {
	UID       string
	Email     string
	Role      Role
	CompanyID string
}

// IsSuperAdmin reports whether the caller operates the platform.
func (s *Session) IsSuperAdmin() bool {
	return s != nil && s.Role == RoleSuperAdmin
}
