//go:build unix && !cgo

package identity

import (
	"fmt"
	"os/user"
	"strconv"
)

// Without cgo os/user is the only route to the name services. It does not
// report the password, shell or BSD fields, so those stay empty.

func nssLookupUserID(uid UID) (*User, error) {
	ou, err := user.LookupId(strconv.FormatUint(uint64(uid), 10))
	if err != nil {
		return nil, osLookupError(err, uidNotFound(uid))
	}
	return userFromOS(ou)
}

func nssLookupUserName(name string) (*User, error) {
	ou, err := user.Lookup(name)
	if err != nil {
		return nil, osLookupError(err, userNotFound(name))
	}
	return userFromOS(ou)
}

func userFromOS(ou *user.User) (*User, error) {
	uid, ok := parseID(ou.Uid)
	if !ok {
		return nil, fmt.Errorf("unexpected UID format: %s", ou.Uid)
	}
	gid, ok := parseID(ou.Gid)
	if !ok {
		return nil, fmt.Errorf("unexpected GID format: %s", ou.Gid)
	}
	return &User{
		Name:    ou.Username,
		UID:     UID(uid),
		GID:     GID(gid),
		Gecos:   ou.Name,
		Home:    ou.HomeDir,
		fromNSS: true,
	}, nil
}
