// Package identity resolves who the ratings belong to. A learner is
// either linked to a school account or running as a locally generated
// guest; legacy unnamed state maps to the anonymous identity.
package identity

import (
	"strings"

	"github.com/google/uuid"
)

// AuthMethod describes how an identity was established.
type AuthMethod string

const (
	// MethodSchool marks an identity imported from a school LMS account.
	MethodSchool AuthMethod = "moodle"
	// MethodGuest marks a locally generated identity.
	MethodGuest AuthMethod = "guest"
	// MethodAnonymous marks legacy state saved before identities existed.
	MethodAnonymous AuthMethod = "anonymous"
)

// legacyKey is the storage key used before per-student namespacing.
const legacyKey = "physiz_confidence"

// keyPrefix namespaces per-student persisted state.
const keyPrefix = "physiz_student_"

// Identity names one learner for storage namespacing and backup tagging.
type Identity struct {
	User   string
	Method AuthMethod
}

// Anonymous is the identity for state predating user accounts.
func Anonymous() Identity {
	return Identity{Method: MethodAnonymous}
}

// NewGuest mints a fresh guest identity with a random id.
func NewGuest() Identity {
	return Identity{
		User:   "guest-" + uuid.NewString(),
		Method: MethodGuest,
	}
}

// ForUser builds a school-account identity. An empty user falls back to
// anonymous.
func ForUser(user string) Identity {
	user = strings.TrimSpace(user)
	if user == "" {
		return Anonymous()
	}
	return Identity{User: user, Method: MethodSchool}
}

// StorageKey returns the snapshot key for this learner. Named learners
// get a namespaced key; the anonymous identity keeps the legacy key so
// pre-account state remains reachable.
func (id Identity) StorageKey() string {
	if id.User == "" {
		return legacyKey
	}
	return keyPrefix + id.User
}

// IsGuest reports whether the identity was generated locally.
func (id Identity) IsGuest() bool {
	return id.Method == MethodGuest
}
