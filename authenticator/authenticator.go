package authenticator

import (
	"github.com/blogem/grievance-portal/userctx"
)

// Authenticator maps a credential submission to one of the two portal roles.
// Implementations decide how credentials are verified.
type Authenticator interface {
	Authenticate(username, password string) (userctx.Role, bool)
	DisplayName(role userctx.Role) string
}
