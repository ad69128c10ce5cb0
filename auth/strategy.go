package auth

import "fmt"

// Strategy selects which authentication resolver the service runs with.
// It is fixed at startup by configuration.
type Strategy string

const (
	// StrategyNone disables authentication: every request is anonymous and
	// every operation's required-role set is empty.
	StrategyNone Strategy = "none"
	// StrategyBasic authenticates with HTTP Basic credentials against a
	// static in-memory user set.
	StrategyBasic Strategy = "basic"
	// StrategyJWT authenticates with signed bearer tokens; users register
	// and log in through the auth endpoints.
	StrategyJWT Strategy = "jwt"
)

// ParseStrategy validates a configured strategy string.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyNone, StrategyBasic, StrategyJWT:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("auth: unknown strategy %q (use none, basic or jwt)", s)
	}
}
