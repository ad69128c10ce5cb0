package auth_test

import (
	"testing"

	"github.com/ishwor/authcookbook/auth"
)

func TestDefaultTable_OpenStrategy(t *testing.T) {
	table := auth.DefaultTable(auth.StrategyNone)

	policy, err := auth.NewPolicy(table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	anon := auth.Anonymous()
	for _, op := range auth.Operations {
		if policy.Check(anon, op) != auth.Allowed {
			t.Errorf("expected anonymous allowed for %s under open strategy", op)
		}
	}
}

func TestDefaultTable_ProtectedStrategies(t *testing.T) {
	for _, strategy := range []auth.Strategy{auth.StrategyBasic, auth.StrategyJWT} {
		policy, err := auth.NewPolicy(auth.DefaultTable(strategy))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		user := auth.Principal{Identity: "u", Role: auth.RoleUser}
		admin := auth.Principal{Identity: "a", Role: auth.RoleAdmin}

		for _, op := range auth.Operations {
			if policy.Check(admin, op) != auth.Allowed {
				t.Errorf("%s: expected ADMIN allowed for %s", strategy, op)
			}
			want := auth.Allowed
			if op == auth.OpDelete {
				want = auth.Denied
			}
			if got := policy.Check(user, op); got != want {
				t.Errorf("%s: USER on %s: got %v, want %v", strategy, op, got, want)
			}
		}
	}
}

func TestPolicy_AnonymousDeniedOnProtectedTable(t *testing.T) {
	policy, err := auth.NewPolicy(auth.DefaultTable(auth.StrategyBasic))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, op := range auth.Operations {
		if policy.Check(auth.Anonymous(), op) != auth.Denied {
			t.Errorf("expected anonymous denied for %s", op)
		}
	}
}

func TestNewPolicy_MissingOperation(t *testing.T) {
	table := auth.DefaultTable(auth.StrategyBasic)
	delete(table, auth.OpUpdate)

	if _, err := auth.NewPolicy(table); err == nil {
		t.Fatal("expected error for incomplete table")
	}
}

func TestTableWithOverrides(t *testing.T) {
	table, err := auth.TableWithOverrides(auth.StrategyJWT, map[string][]string{
		"CREATE": {"ADMIN"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	policy, err := auth.NewPolicy(table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := auth.Principal{Identity: "u", Role: auth.RoleUser}
	if policy.Check(user, auth.OpCreate) != auth.Denied {
		t.Error("expected USER denied CREATE after override")
	}
	if policy.Check(user, auth.OpRead) != auth.Allowed {
		t.Error("expected READ unchanged by override")
	}
}

func TestTableWithOverrides_UnknownOperation(t *testing.T) {
	if _, err := auth.TableWithOverrides(auth.StrategyJWT, map[string][]string{"PURGE": {"ADMIN"}}); err == nil {
		t.Fatal("expected error for unknown operation")
	}
}

func TestTableWithOverrides_UnknownRole(t *testing.T) {
	if _, err := auth.TableWithOverrides(auth.StrategyJWT, map[string][]string{"DELETE": {"SUPERUSER"}}); err == nil {
		t.Fatal("expected error for unknown role")
	}
}

func TestParseRole(t *testing.T) {
	if _, err := auth.ParseRole("USER"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := auth.ParseRole("ADMIN"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := auth.ParseRole("user"); err == nil {
		t.Error("expected role matching to be case-sensitive")
	}
	if _, err := auth.ParseRole(""); err == nil {
		t.Error("expected error for empty role")
	}
}

func TestParseStrategy(t *testing.T) {
	for _, name := range []string{"none", "basic", "jwt"} {
		if _, err := auth.ParseStrategy(name); err != nil {
			t.Errorf("ParseStrategy(%q): unexpected error: %v", name, err)
		}
	}
	if _, err := auth.ParseStrategy("oauth"); err == nil {
		t.Error("expected error for unknown strategy")
	}
}
