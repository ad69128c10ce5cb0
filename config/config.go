// Package config defines the service configuration and its loader.
package config

import (
	"fmt"

	"github.com/ishwor/authcookbook/auth"
	"github.com/ishwor/authcookbook/auth/password"
	"github.com/ishwor/authcookbook/auth/token"
	"github.com/ishwor/authcookbook/database"
	"github.com/ishwor/authcookbook/logger"
	"github.com/ishwor/authcookbook/server"
)

// StaticUser is a preloaded credential for the basic strategy. The password
// is hashed at startup; the plaintext never leaves the config layer.
type StaticUser struct {
	Username string `yaml:"username" mapstructure:"username"`
	Password string `yaml:"password" mapstructure:"password"`
	Role     string `yaml:"role" mapstructure:"role"`
}

// SeedAdmin is an admin credential created at startup under the jwt
// strategy (registration only ever produces USER roles).
type SeedAdmin struct {
	Email    string `yaml:"email" mapstructure:"email"`
	Password string `yaml:"password" mapstructure:"password"`
}

// AuthConfig selects and configures the authentication strategy.
type AuthConfig struct {
	// Strategy is one of "none", "basic", "jwt".
	Strategy string `yaml:"strategy" mapstructure:"strategy"`

	// JWT configures the token service (jwt strategy).
	JWT token.Config `yaml:"jwt" mapstructure:"jwt"`

	// Password configures the hasher (basic and jwt strategies).
	Password password.Config `yaml:"password" mapstructure:"password"`

	// BasicUsers is the static credential set (basic strategy).
	BasicUsers []StaticUser `yaml:"basic_users" mapstructure:"basic_users"`

	// SeedAdmin is the admin credential seeded at startup (jwt strategy).
	SeedAdmin SeedAdmin `yaml:"seed_admin" mapstructure:"seed_admin"`

	// Policy overrides the default operation → required-roles table, e.g.
	// {"CREATE": ["ADMIN"]}. Operations not named keep their defaults.
	Policy map[string][]string `yaml:"policy" mapstructure:"policy"`
}

// ApplyDefaults fills strategy-appropriate defaults.
func (c *AuthConfig) ApplyDefaults() {
	if c.Strategy == "" {
		c.Strategy = string(auth.StrategyNone)
	}
	if c.Strategy == string(auth.StrategyBasic) && len(c.BasicUsers) == 0 {
		c.BasicUsers = []StaticUser{
			{Username: "user", Password: "password", Role: string(auth.RoleUser)},
			{Username: "admin", Password: "admin", Role: string(auth.RoleAdmin)},
		}
	}
}

// Validate checks the strategy and its per-strategy requirements.
func (c *AuthConfig) Validate() error {
	strategy, err := auth.ParseStrategy(c.Strategy)
	if err != nil {
		return err
	}
	switch strategy {
	case auth.StrategyJWT:
		c.JWT.ApplyDefaults()
		if err := c.JWT.Validate(); err != nil {
			return err
		}
	case auth.StrategyBasic:
		for _, u := range c.BasicUsers {
			if _, err := auth.ParseRole(u.Role); err != nil {
				return fmt.Errorf("config: basic user %q: %w", u.Username, err)
			}
		}
	}
	return nil
}

// Config is the root service configuration.
type Config struct {
	Service  string          `yaml:"service" mapstructure:"service"`
	Server   server.Config   `yaml:"server" mapstructure:"server"`
	Logging  logger.Config   `yaml:"logging" mapstructure:"logging"`
	Database database.Config `yaml:"database" mapstructure:"database"`
	Auth     AuthConfig      `yaml:"auth" mapstructure:"auth"`
}

// ApplyDefaults applies defaults across all sections.
func (c *Config) ApplyDefaults() {
	if c.Service == "" {
		c.Service = "authcookbook"
	}
	c.Server.ApplyDefaults()
	c.Logging.ApplyDefaults()
	c.Database.ApplyDefaults()
	c.Auth.ApplyDefaults()
	c.Auth.Password.ApplyDefaults()
}

// Validate validates all sections.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Auth.Password.Validate(); err != nil {
		return err
	}
	return c.Auth.Validate()
}
