package idcmd

import (
	"strconv"
	"strings"

	"github.com/hnrobert/bsdid/internal/identity"
	"github.com/hnrobert/bsdid/internal/logger"
)

// resolver computes the identifiers a Selection prints. When a target user
// was given, real and effective ids are both taken from its record.
type resolver struct {
	src    identity.Source
	sel    *Selection
	target *identity.User
}

func newResolver(src identity.Source, sel *Selection) (*resolver, error) {
	r := &resolver{src: src, sel: sel}
	if sel.HasTarget {
		u, err := src.LookupUser(sel.Target)
		if err != nil {
			return nil, &UnknownUserError{Spec: sel.Target, Err: err}
		}
		logger.Info("user %q is uid %d", sel.Target, u.UID)
		r.target = u
	}
	return r, nil
}

// namedID is a numeric id with its database name.
type namedID struct {
	ID   uint32
	Name string
}

// composite is everything the default format prints. EffUser and EffGroup
// are nil when their segment is suppressed.
type composite struct {
	User     namedID
	Group    namedID
	EffUser  *namedID
	EffGroup *namedID
	// EUID is kept for the legacy egid= value; see Formatter.
	EUID   identity.UID
	Groups []namedID
}

// prettyLine is one "label\tvalue" line of the human-readable format.
type prettyLine struct {
	Label string
	Value string
}

func (r *resolver) userID() identity.UID {
	switch {
	case r.target != nil:
		return r.target.UID
	case r.sel.Real:
		return r.src.UID()
	default:
		return r.src.EUID()
	}
}

func (r *resolver) groupID() identity.GID {
	switch {
	case r.target != nil:
		return r.target.GID
	case r.sel.Real:
		return r.src.GID()
	default:
		return r.src.EGID()
	}
}

// userField is the -u output token. Names that do not resolve fall back to
// the number.
func (r *resolver) userField() string {
	id := r.userID()
	if r.sel.Names {
		if name, err := r.src.UserName(id); err == nil {
			return name
		}
	}
	return strconv.FormatUint(uint64(id), 10)
}

// groupField is the -g output token.
func (r *resolver) groupField() string {
	id := r.groupID()
	if r.sel.Names {
		if name, err := r.src.GroupName(id); err == nil {
			return name
		}
	}
	return strconv.FormatUint(uint64(id), 10)
}

// groupList is the target's group list, or the process supplementary groups.
func (r *resolver) groupList() ([]identity.GID, error) {
	if r.target != nil {
		return r.src.UserGroups(r.target)
	}
	return r.src.ProcessGroups()
}

// groupsFields is the -G output tokens, in source order.
func (r *resolver) groupsFields() ([]string, error) {
	ids, err := r.groupList()
	if err != nil {
		return nil, err
	}
	if r.sel.Names {
		return r.groupNames(ids)
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = strconv.FormatUint(uint64(id), 10)
	}
	return out, nil
}

// groupNames maps every gid to its name. Supplementary groups are expected
// to resolve, so a miss is fatal.
func (r *resolver) groupNames(ids []identity.GID) ([]string, error) {
	out := make([]string, len(ids))
	for i, id := range ids {
		name, err := r.src.GroupName(id)
		if err != nil {
			return nil, gidLookupError(id, err)
		}
		out[i] = name
	}
	return out, nil
}

func (r *resolver) userName(uid identity.UID) (string, error) {
	name, err := r.src.UserName(uid)
	if err != nil {
		return "", uidLookupError(uid, err)
	}
	return name, nil
}

func (r *resolver) groupName(gid identity.GID) (string, error) {
	name, err := r.src.GroupName(gid)
	if err != nil {
		return "", gidLookupError(gid, err)
	}
	return name, nil
}

// passwdUser is the record printed by -P: the target's uid, or the real uid,
// looked up again by number.
func (r *resolver) passwdUser() (*identity.User, error) {
	uid := r.src.UID()
	if r.target != nil {
		uid = r.target.UID
	}
	u, err := r.src.LookupUserID(uid)
	if err != nil {
		return nil, uidLookupError(uid, err)
	}
	return u, nil
}

func (r *resolver) composite() (*composite, error) {
	var (
		uid identity.UID
		gid identity.GID
	)
	if r.target != nil {
		uid, gid = r.target.UID, r.target.GID
	} else {
		uid, gid = r.src.UID(), r.src.GID()
	}

	record, err := r.src.LookupUserID(uid)
	if err != nil {
		return nil, uidLookupError(uid, err)
	}
	groups, err := r.src.UserGroups(record)
	if err != nil {
		return nil, uidLookupError(uid, err)
	}

	c := &composite{
		User: namedID{ID: uint32(uid), Name: record.Name},
		EUID: r.src.EUID(),
	}
	if c.Group.Name, err = r.groupName(gid); err != nil {
		return nil, err
	}
	c.Group.ID = uint32(gid)

	if r.target == nil {
		if euid := r.src.EUID(); euid != uid {
			name, err := r.userName(euid)
			if err != nil {
				return nil, err
			}
			c.EffUser = &namedID{ID: uint32(euid), Name: name}
		}
		if egid := r.src.EGID(); egid != gid {
			name, err := r.groupName(egid)
			if err != nil {
				return nil, err
			}
			c.EffGroup = &namedID{ID: uint32(egid), Name: name}
		}
	} else {
		c.EUID = uid
	}

	names, err := r.groupNames(groups)
	if err != nil {
		return nil, err
	}
	for i, id := range groups {
		c.Groups = append(c.Groups, namedID{ID: uint32(id), Name: names[i]})
	}
	return c, nil
}

func (r *resolver) pretty() ([]prettyLine, error) {
	if r.target != nil {
		ids, err := r.src.UserGroups(r.target)
		if err != nil {
			return nil, uidLookupError(r.target.UID, err)
		}
		names, err := r.groupNames(ids)
		if err != nil {
			return nil, err
		}
		return []prettyLine{
			{"uid", r.target.Name},
			{"groups", strings.Join(names, " ")},
		}, nil
	}

	var lines []prettyLine
	rid := r.src.UID()
	if p, err := r.src.LookupUserID(rid); err == nil {
		if login, err := r.src.Login(); err == nil && login == p.Name {
			lines = append(lines, prettyLine{"login", login})
		}
		lines = append(lines, prettyLine{"uid", p.Name})
	} else {
		lines = append(lines, prettyLine{"uid", strconv.FormatUint(uint64(rid), 10)})
	}

	if euid := r.src.EUID(); euid != rid {
		value := strconv.FormatUint(uint64(euid), 10)
		if name, err := r.src.UserName(euid); err == nil {
			value = name
		}
		lines = append(lines, prettyLine{"euid", value})
	}

	// The real group line keeps the historical "euid" label.
	if rgid := r.src.GID(); rgid != r.src.EGID() {
		value := strconv.FormatUint(uint64(rgid), 10)
		if name, err := r.src.GroupName(rgid); err == nil {
			value = name
		}
		lines = append(lines, prettyLine{"euid", value})
	}

	ids, err := r.src.ProcessGroups()
	if err != nil {
		return nil, err
	}
	names, err := r.groupNames(ids)
	if err != nil {
		return nil, err
	}
	lines = append(lines, prettyLine{"groups", strings.Join(names, " ")})
	return lines, nil
}
