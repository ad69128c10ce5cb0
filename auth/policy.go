package auth

import "fmt"

// Operation identifies a protected resource operation.
type Operation string

const (
	OpList   Operation = "LIST"
	OpRead   Operation = "READ"
	OpCreate Operation = "CREATE"
	OpUpdate Operation = "UPDATE"
	OpDelete Operation = "DELETE"
)

// Operations lists every protected operation, in a stable order.
var Operations = []Operation{OpList, OpRead, OpCreate, OpUpdate, OpDelete}

// ParseOperation validates a configured operation name.
func ParseOperation(s string) (Operation, error) {
	for _, op := range Operations {
		if Operation(s) == op {
			return op, nil
		}
	}
	return "", fmt.Errorf("auth: unknown operation %q", s)
}

// Decision is the outcome of an authorization check.
type Decision int

const (
	// Denied means the principal resolved but lacks a required role.
	// Maps to a forbidden response, never to unauthorized.
	Denied Decision = iota
	// Allowed means the operation may proceed to the resource API.
	Allowed
)

// Table maps each operation to its required role set. An empty set means
// the operation is always permitted (the open strategy configures every
// operation that way).
type Table map[Operation][]Role

// DefaultTable returns the role requirements used by the given strategy:
// under basic and jwt, DELETE requires ADMIN and everything else any
// authenticated role; under none, every set is empty.
func DefaultTable(strategy Strategy) Table {
	t := make(Table, len(Operations))
	if strategy == StrategyNone {
		for _, op := range Operations {
			t[op] = nil
		}
		return t
	}
	for _, op := range Operations {
		if op == OpDelete {
			t[op] = []Role{RoleAdmin}
		} else {
			t[op] = []Role{RoleUser, RoleAdmin}
		}
	}
	return t
}

// TableWithOverrides builds the strategy's default table, then replaces the
// role set of any operation named in overrides. The two non-open strategies
// are configured independently: their tables need not match.
func TableWithOverrides(strategy Strategy, overrides map[string][]string) (Table, error) {
	t := DefaultTable(strategy)
	for opName, roleNames := range overrides {
		op, err := ParseOperation(opName)
		if err != nil {
			return nil, err
		}
		roles := make([]Role, 0, len(roleNames))
		for _, rn := range roleNames {
			role, err := ParseRole(rn)
			if err != nil {
				return nil, err
			}
			roles = append(roles, role)
		}
		t[op] = roles
	}
	return t, nil
}

// Policy evaluates operations against a static role-requirement table fixed
// at startup. It holds no mutable state; checks are pure functions of the
// principal and the table.
type Policy struct {
	table Table
}

// NewPolicy creates a policy from a table. Every operation must be present
// so a missing entry cannot silently mean "open".
func NewPolicy(table Table) (*Policy, error) {
	for _, op := range Operations {
		if _, ok := table[op]; !ok {
			return nil, fmt.Errorf("auth: policy table missing operation %s", op)
		}
	}
	return &Policy{table: table}, nil
}

// RequiredRoles returns the role set required for an operation.
func (p *Policy) RequiredRoles(op Operation) []Role {
	return p.table[op]
}

// Check evaluates whether the principal may perform the operation.
// Allowed iff the required set is empty or contains the principal's role.
func (p *Policy) Check(principal Principal, op Operation) Decision {
	required := p.table[op]
	if len(required) == 0 {
		return Allowed
	}
	for _, role := range required {
		if principal.Role == role {
			return Allowed
		}
	}
	return Denied
}
