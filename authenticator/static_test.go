package authenticator

import (
	"testing"

	"github.com/blogem/grievance-portal/config"
	"github.com/blogem/grievance-portal/userctx"
)

func testProvider() *StaticProvider {
	return NewStaticProvider(&config.Config{
		SubmitterName:     "casey",
		SubmitterPassword: "hunter2",
		AdminName:         "admin",
		AdminPassword:     "secret",
	})
}

func TestAuthenticate(t *testing.T) {
	provider := testProvider()

	role, ok := provider.Authenticate("casey", "hunter2")
	if !ok || role != userctx.RoleSubmitter {
		t.Errorf("Expected submitter role for submitter credentials, got %q ok=%v", role, ok)
	}

	role, ok = provider.Authenticate("admin", "secret")
	if !ok || role != userctx.RoleAdministrator {
		t.Errorf("Expected administrator role for admin credentials, got %q ok=%v", role, ok)
	}
}

func TestAuthenticateRejected(t *testing.T) {
	provider := testProvider()

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "casey", "wrong"},
		{"wrong username", "nobody", "hunter2"},
		{"crossed pairs", "casey", "secret"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		if _, ok := provider.Authenticate(tc.username, tc.password); ok {
			t.Errorf("%s: expected rejection for %q/%q", tc.name, tc.username, tc.password)
		}
	}
}

func TestDisplayName(t *testing.T) {
	provider := testProvider()

	if got := provider.DisplayName(userctx.RoleSubmitter); got != "casey" {
		t.Errorf("Expected submitter display name 'casey', got %s", got)
	}
	if got := provider.DisplayName(userctx.RoleAdministrator); got != "admin" {
		t.Errorf("Expected admin display name 'admin', got %s", got)
	}
	if got := provider.DisplayName("ghost"); got != "" {
		t.Errorf("Expected empty display name for unknown role, got %s", got)
	}
}
