package authenticator

import (
	"crypto/subtle"

	"github.com/blogem/grievance-portal/config"
	"github.com/blogem/grievance-portal/userctx"
)

// StaticProvider authenticates against the two credential pairs from
// configuration. There is no credential store; each pair is statically
// bound to its role.
type StaticProvider struct {
	submitterName     string
	submitterPassword string
	adminName         string
	adminPassword     string
}

// NewStaticProvider creates an authenticator from the configured credentials
func NewStaticProvider(cfg *config.Config) *StaticProvider {
	return &StaticProvider{
		submitterName:     cfg.SubmitterName,
		submitterPassword: cfg.SubmitterPassword,
		adminName:         cfg.AdminName,
		adminPassword:     cfg.AdminPassword,
	}
}

// Authenticate returns the role bound to the matching credential pair,
// or false for any other combination
func (p *StaticProvider) Authenticate(username, password string) (userctx.Role, bool) {
	if credentialsMatch(username, password, p.submitterName, p.submitterPassword) {
		return userctx.RoleSubmitter, true
	}
	if credentialsMatch(username, password, p.adminName, p.adminPassword) {
		return userctx.RoleAdministrator, true
	}
	return "", false
}

// DisplayName returns the configured name shown in views for a role
func (p *StaticProvider) DisplayName(role userctx.Role) string {
	switch role {
	case userctx.RoleSubmitter:
		return p.submitterName
	case userctx.RoleAdministrator:
		return p.adminName
	}
	return ""
}

func credentialsMatch(username, password, wantUser, wantPass string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(wantUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(wantPass)) == 1
	return userOK && passOK
}
