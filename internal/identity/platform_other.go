//go:build unix && !linux && !((darwin || freebsd) && cgo)

package identity

import (
	"fmt"
	"os/user"
)

// hostLogin falls back to the name of the real uid without cgo.
func hostLogin(s *System) (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("login name: %w", err)
	}
	return u.Username, nil
}

func hostAuditInfo() (*AuditInfo, error) {
	return nil, ErrAuditUnavailable
}
