// Package access implements the role gate: given the current identity and the
// roles a page requires, it decides whether access is granted and which
// redirect, if any, must fire. Decisions are computed fresh on every
// evaluation; nothing is cached.
package access

import "github.com/verdantis/nursery-system/internal/core/domain"

// State is the outcome of a single gate evaluation.
type State string

const (
	// Pending means identity resolution has not settled yet. Callers should
	// hold rendering rather than redirect.
	Pending State = "pending"
	// Granted means at least one required role matched a held role.
	Granted State = "granted"
	// DeniedNoIdentity means no identity exists at all. Takes precedence over
	// DeniedWrongRole: an anonymous caller is sent to registration, never to
	// the access-denied page.
	DeniedNoIdentity State = "denied_no_identity"
	// DeniedWrongRole means an identity exists but holds none of the required roles.
	DeniedWrongRole State = "denied_wrong_role"
)

// Redirect targets fired on denial.
const (
	RegisterPath     = "/register"
	AccessDeniedPath = "/access-denied"
)

// Decision is the result of evaluating the gate for one request.
type Decision struct {
	State     State
	HasAccess bool
	// RedirectPath is non-empty only for the two denied states.
	RedirectPath string
}

// Decide evaluates whether identity may access a resource guarded by the given
// required roles. Required roles must already be canonical; identities built
// through the session reader always are.
//
// The required set must be non-empty. An empty set denies every identity,
// since no held role can match.
func Decide(identity *domain.Identity, required []domain.Role) Decision {
	if identity == nil {
		return Decision{State: DeniedNoIdentity, RedirectPath: RegisterPath}
	}

	for _, want := range required {
		if identity.HasRole(want) {
			return Decision{State: Granted, HasAccess: true}
		}
	}

	return Decision{State: DeniedWrongRole, RedirectPath: AccessDeniedPath}
}

// PendingDecision is returned while identity resolution is still in flight.
func PendingDecision() Decision {
	return Decision{State: Pending}
}
