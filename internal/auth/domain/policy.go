package domain

// Policy is the access requirement declared by an operation when its route is registered.
type Policy struct {
	// Anonymous allows the operation to run without any token.
	Anonymous bool
	// RequiredRole, when set, must equal the caller's role exactly.
	RequiredRole Role
}

// PolicyAnonymous allows callers with or without a token.
var PolicyAnonymous = Policy{Anonymous: true}

// PolicyAuthenticated requires a valid token of any role.
var PolicyAuthenticated = Policy{}

// RequireRole requires a valid token carrying exactly the given role.
func RequireRole(role Role) Policy {
	return Policy{RequiredRole: role}
}

// Authorize checks the policy against the caller's security context, which is nil for
// requests without a token. There is no role hierarchy: ADMIN does not satisfy a USER requirement.
func (p Policy) Authorize(sc *SecurityContext) error {
	if sc == nil {
		if p.Anonymous {
			return nil
		}
		return ErrMissingToken
	}

	if p.RequiredRole != "" && sc.Role != p.RequiredRole {
		return ErrInsufficientRole
	}

	return nil
}

// String describes the policy for logs.
func (p Policy) String() string {
	switch {
	case p.RequiredRole != "":
		return "role:" + string(p.RequiredRole)
	case p.Anonymous:
		return "anonymous"
	default:
		return "authenticated"
	}
}
