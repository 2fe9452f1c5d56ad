package identity

import (
	"fmt"
	"strings"

	"github.com/hnrobert/bsdid/internal/hostfs"
)

// unsetLoginUID is the kernel's value for a process outside a login session.
const unsetLoginUID = "4294967295"

// hostLogin reads the audit login uid of the process and maps it to a name,
// which is what glibc getlogin(3) does.
func hostLogin(s *System) (string, error) {
	b, err := hostfs.ReadFile(s.root, hostfs.LoginUIDRel)
	if err != nil {
		return "", fmt.Errorf("login name: %w", err)
	}
	raw := strings.TrimSpace(string(b))
	if raw == unsetLoginUID {
		return "", fmt.Errorf("login name: %w", ErrNotFound)
	}
	uid, ok := parseID(raw)
	if !ok {
		return "", fmt.Errorf("login name: unexpected loginuid %q", raw)
	}
	return s.UserName(UID(uid))
}

func hostAuditInfo() (*AuditInfo, error) {
	return nil, ErrAuditUnavailable
}
