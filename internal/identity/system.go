//go:build unix

package identity

import (
	"errors"
	"fmt"
	"os/user"
	"strconv"

	"golang.org/x/sys/unix"

	"github.com/hnrobert/bsdid/internal/hostfs"
	"github.com/hnrobert/bsdid/internal/logger"
)

// System is the Source for the running process. Lookups read the host files
// first and fall back to the name services: getpwnam_r(3)/getpwuid_r(3) for
// users when cgo is enabled, os/user otherwise and for groups.
type System struct {
	root  string
	files *Files
}

func NewSystem() *System {
	return &System{root: hostfs.DefaultRoot, files: NewFiles(hostfs.DefaultRoot, Credentials{})}
}

func (s *System) UID() UID  { return UID(unix.Getuid()) }
func (s *System) EUID() UID { return UID(unix.Geteuid()) }
func (s *System) GID() GID  { return GID(unix.Getgid()) }
func (s *System) EGID() GID { return GID(unix.Getegid()) }

func (s *System) Login() (string, error) {
	return hostLogin(s)
}

func (s *System) ProcessGroups() ([]GID, error) {
	ids, err := unix.Getgroups()
	if err != nil {
		return nil, fmt.Errorf("getgroups: %w", err)
	}
	out := make([]GID, len(ids))
	for i, id := range ids {
		out[i] = GID(id)
	}
	return out, nil
}

func (s *System) AuditInfo() (*AuditInfo, error) {
	return hostAuditInfo()
}

// fromFiles reports whether a files lookup settled the query. Errors other
// than ErrNotFound are logged and left to the os/user fallback.
func fromFiles(err error) bool {
	if err == nil {
		return true
	}
	if !errors.Is(err, ErrNotFound) {
		logger.Info("identity files: %v", err)
	}
	return false
}

func (s *System) LookupUser(spec string) (*User, error) {
	u, err := s.files.LookupUser(spec)
	if fromFiles(err) {
		return u, nil
	}
	if u, err := nssLookupUserName(spec); err == nil {
		return u, nil
	}
	if id, ok := parseID(spec); ok {
		if u, err := nssLookupUserID(UID(id)); err == nil {
			return u, nil
		}
	}
	return nil, userNotFound(spec)
}

func (s *System) LookupUserID(uid UID) (*User, error) {
	u, err := s.files.LookupUserID(uid)
	if fromFiles(err) {
		return u, nil
	}
	return nssLookupUserID(uid)
}

func (s *System) LookupGroup(spec string) (*Group, error) {
	g, err := s.files.LookupGroup(spec)
	if fromFiles(err) {
		return g, nil
	}
	if og, err := user.LookupGroup(spec); err == nil {
		return groupFromOS(og)
	}
	if _, ok := parseID(spec); ok {
		if og, err := user.LookupGroupId(spec); err == nil {
			return groupFromOS(og)
		}
	}
	return nil, groupNotFound(spec)
}

func (s *System) LookupGroupID(gid GID) (*Group, error) {
	g, err := s.files.LookupGroupID(gid)
	if fromFiles(err) {
		return g, nil
	}
	og, err := user.LookupGroupId(strconv.FormatUint(uint64(gid), 10))
	if err != nil {
		return nil, osLookupError(err, gidNotFound(gid))
	}
	return groupFromOS(og)
}

func (s *System) UserName(uid UID) (string, error) {
	u, err := s.LookupUserID(uid)
	if err != nil {
		return "", err
	}
	return u.Name, nil
}

func (s *System) GroupName(gid GID) (string, error) {
	g, err := s.LookupGroupID(gid)
	if err != nil {
		return "", err
	}
	return g.Name, nil
}

func (s *System) UserGroups(u *User) ([]GID, error) {
	if !u.fromNSS {
		if ids, err := s.files.UserGroups(u); fromFiles(err) {
			return ids, nil
		}
	}
	ou, err := user.LookupId(strconv.FormatUint(uint64(u.UID), 10))
	if err != nil {
		return nil, osLookupError(err, uidNotFound(u.UID))
	}
	raw, err := ou.GroupIds()
	if err != nil {
		return nil, fmt.Errorf("groups of %s: %w", u.Name, err)
	}
	out := []GID{u.GID}
	for _, r := range raw {
		id, ok := parseID(r)
		if !ok {
			return nil, fmt.Errorf("unexpected GID format: %s", r)
		}
		if GID(id) == u.GID {
			continue
		}
		out = append(out, GID(id))
	}
	return out, nil
}

// osLookupError maps os/user "unknown" errors onto ErrNotFound.
func osLookupError(err, notFound error) error {
	var (
		unknownUser    user.UnknownUserError
		unknownUserID  user.UnknownUserIdError
		unknownGroup   user.UnknownGroupError
		unknownGroupID user.UnknownGroupIdError
	)
	if errors.As(err, &unknownUser) || errors.As(err, &unknownUserID) ||
		errors.As(err, &unknownGroup) || errors.As(err, &unknownGroupID) {
		return notFound
	}
	return err
}

func groupFromOS(og *user.Group) (*Group, error) {
	gid, ok := parseID(og.Gid)
	if !ok {
		return nil, fmt.Errorf("unexpected GID format: %s", og.Gid)
	}
	return &Group{Name: og.Name, GID: GID(gid)}, nil
}
