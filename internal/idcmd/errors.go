package idcmd

import (
	"errors"
	"fmt"

	"github.com/hnrobert/bsdid/internal/identity"
)

// ErrVersion is returned by ParseArgs when --version was requested.
var ErrVersion = errors.New("version requested")

// UsageError reports an illegal option or option combination.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

func usagef(format string, args ...interface{}) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}

// UnknownUserError reports a positional specifier that resolved to no user.
type UnknownUserError struct {
	Spec string
	Err  error
}

func (e *UnknownUserError) Error() string {
	return "No such user/group: " + e.Spec
}

func (e *UnknownUserError) Unwrap() error { return e.Err }

// LookupError reports a secondary lookup that failed while formatting.
// Kind is "uid" or "gid".
type LookupError struct {
	Kind string
	ID   uint32
	Err  error
}

func (e *LookupError) Error() string {
	reason := e.Err.Error()
	if errors.Is(e.Err, identity.ErrNotFound) {
		reason = identity.ErrNotFound.Error()
	}
	return fmt.Sprintf("Could not find %s %d: %s", e.Kind, e.ID, reason)
}

func (e *LookupError) Unwrap() error { return e.Err }

func uidLookupError(uid identity.UID, err error) error {
	return &LookupError{Kind: "uid", ID: uint32(uid), Err: err}
}

func gidLookupError(gid identity.GID, err error) error {
	return &LookupError{Kind: "gid", ID: uint32(gid), Err: err}
}
