package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ishwor/authcookbook/auth"
	"github.com/ishwor/authcookbook/config"
)

const testConfigYAML = `
service: authcookbook

server:
  port: 9090

logging:
  level: debug

database:
  dsn: file:test.db
  auto_migrate: true

auth:
  strategy: jwt
  jwt:
    secret: config-test-secret-0123456789abcd
    access_token_ttl: 30m
  seed_admin:
    email: admin@example.com
    password: admin-password
`

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	return path
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfigFile(t, testConfigYAML)

	var cfg config.Config
	if err := config.Load("authcookbook", &cfg, config.WithConfigFile(path)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("port: got %d", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level: got %s", cfg.Logging.Level)
	}
	if cfg.Auth.Strategy != "jwt" {
		t.Errorf("strategy: got %s", cfg.Auth.Strategy)
	}
	if cfg.Auth.JWT.AccessTokenTTL != 30*time.Minute {
		t.Errorf("ttl: got %s", cfg.Auth.JWT.AccessTokenTTL)
	}
	if cfg.Auth.SeedAdmin.Email != "admin@example.com" {
		t.Errorf("seed admin: got %s", cfg.Auth.SeedAdmin.Email)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, testConfigYAML)
	t.Setenv("AUTH_JWT_SECRET", "overridden-by-environment-secret")
	t.Setenv("SERVER_PORT", "7070")

	var cfg config.Config
	if err := config.Load("authcookbook", &cfg, config.WithConfigFile(path)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Auth.JWT.Secret != "overridden-by-environment-secret" {
		t.Errorf("secret not overridden: got %q", cfg.Auth.JWT.Secret)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("port not overridden: got %d", cfg.Server.Port)
	}
}

func TestConfig_Defaults(t *testing.T) {
	var cfg config.Config
	cfg.ApplyDefaults()

	if cfg.Service != "authcookbook" {
		t.Errorf("service: got %s", cfg.Service)
	}
	if cfg.Auth.Strategy != string(auth.StrategyNone) {
		t.Errorf("default strategy: got %s", cfg.Auth.Strategy)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestAuthConfig_BasicDefaultUsers(t *testing.T) {
	cfg := config.AuthConfig{Strategy: string(auth.StrategyBasic)}
	cfg.ApplyDefaults()

	if len(cfg.BasicUsers) != 2 {
		t.Fatalf("expected 2 default users, got %d", len(cfg.BasicUsers))
	}
	if cfg.BasicUsers[0].Username != "user" || cfg.BasicUsers[0].Role != string(auth.RoleUser) {
		t.Errorf("unexpected first default user: %+v", cfg.BasicUsers[0])
	}
	if cfg.BasicUsers[1].Username != "admin" || cfg.BasicUsers[1].Role != string(auth.RoleAdmin) {
		t.Errorf("unexpected second default user: %+v", cfg.BasicUsers[1])
	}
}

func TestAuthConfig_Validate(t *testing.T) {
	bad := config.AuthConfig{Strategy: "oauth"}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for unknown strategy")
	}

	jwtNoSecret := config.AuthConfig{Strategy: string(auth.StrategyJWT)}
	if err := jwtNoSecret.Validate(); err == nil {
		t.Error("expected error for jwt strategy without secret")
	}

	badRole := config.AuthConfig{
		Strategy:   string(auth.StrategyBasic),
		BasicUsers: []config.StaticUser{{Username: "u", Password: "p", Role: "ROOT"}},
	}
	if err := badRole.Validate(); err == nil {
		t.Error("expected error for unknown role")
	}
}
