// Package identity answers user, group and process credential queries.
//
// Source is what the id command consumes. Files answers from passwd and group
// files beneath a root with caller-supplied credentials; System answers for
// the running process on the live host.
package identity

import (
	"errors"
	"fmt"
	"strconv"
)

// A system user ID, aka UID.
type UID uint32

// A system group ID, aka GID.
type GID uint32

var (
	// ErrNotFound is wrapped by every lookup that found no matching entry.
	ErrNotFound = errors.New("not found")
	// ErrAuditUnavailable is returned by AuditInfo on hosts without BSM
	// auditing or when the audit record cannot be read.
	ErrAuditUnavailable = errors.New("audit information unavailable")
)

// User is an immutable snapshot of a password database entry. Class, Change
// and Expire are only populated on BSD-family hosts.
type User struct {
	Name     string
	Password string
	UID      UID
	GID      GID
	Gecos    string
	Home     string
	Shell    string
	Class    string
	Change   int64
	Expire   int64

	// fromNSS marks users resolved through os/user rather than the files.
	fromNSS bool
}

// Group is an immutable snapshot of a group database entry.
type Group struct {
	Name    string
	GID     GID
	Members []string
}

// AuditInfo is the BSM audit context of a process.
type AuditInfo struct {
	AUID        UID
	MaskSuccess uint32
	MaskFailure uint32
	TermPort    uint64
	ASID        int32
}

// Source is the identity database and process credential provider.
type Source interface {
	UID() UID
	EUID() UID
	GID() GID
	EGID() GID

	// Login returns the login name of the session (getlogin(2)).
	Login() (string, error)

	// LookupUser resolves spec as a user name, then as a numeric uid.
	LookupUser(spec string) (*User, error)
	LookupUserID(uid UID) (*User, error)
	// LookupGroup resolves spec as a group name, then as a numeric gid.
	LookupGroup(spec string) (*Group, error)
	LookupGroupID(gid GID) (*Group, error)

	UserName(uid UID) (string, error)
	GroupName(gid GID) (string, error)

	// ProcessGroups returns the supplementary groups of the calling process.
	ProcessGroups() ([]GID, error)
	// UserGroups returns the group list of u, primary group first.
	UserGroups(u *User) ([]GID, error)

	AuditInfo() (*AuditInfo, error)
}

func userNotFound(spec string) error {
	return fmt.Errorf("user %q: %w", spec, ErrNotFound)
}

func uidNotFound(uid UID) error {
	return fmt.Errorf("uid %d: %w", uid, ErrNotFound)
}

func groupNotFound(spec string) error {
	return fmt.Errorf("group %q: %w", spec, ErrNotFound)
}

func gidNotFound(gid GID) error {
	return fmt.Errorf("gid %d: %w", gid, ErrNotFound)
}

// parseID reports whether spec is a decimal id that fits in 32 bits.
func parseID(spec string) (uint32, bool) {
	n, err := strconv.ParseUint(spec, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}
