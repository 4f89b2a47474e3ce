package ports

// AdminAuthService guards the admin mutations with a single shared
// credential. The poll mutations themselves take an already-authorized
// caller as a precondition.
type AdminAuthService interface {
	// Login exchanges the shared admin password for a short-lived token.
	// Returns domain.ErrUnauthorized on a wrong password.
	Login(password string) (string, error)
	// Verify reports whether the presented token grants admin access.
	Verify(token string) error
}
