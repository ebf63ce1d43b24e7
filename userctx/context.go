package userctx

import "context"

// Role identifies which of the two portal identities a session belongs to.
type Role string

const (
	RoleSubmitter     Role = "submitter"
	RoleAdministrator Role = "administrator"
)

// Context key type
type contextKey string

const roleKey contextKey = "role"
const displayNameKey contextKey = "display_name"

// SetRole adds the authenticated role to request context
func SetRole(ctx context.Context, role Role) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

// GetRole retrieves the authenticated role from request context
func GetRole(ctx context.Context) (Role, bool) {
	role, ok := ctx.Value(roleKey).(Role)
	return role, ok
}

// SetDisplayName adds the logged-in user's display name to request context
func SetDisplayName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, displayNameKey, name)
}

// GetDisplayName retrieves the display name from request context
func GetDisplayName(ctx context.Context) string {
	name, ok := ctx.Value(displayNameKey).(string)
	if !ok {
		return "anonymous"
	}
	return name
}
