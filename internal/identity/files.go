package identity

import (
	"fmt"

	"github.com/hnrobert/bsdid/internal/hostfs"
	"github.com/hnrobert/bsdid/internal/userdb"
)

// Credentials are the process ids a Files source reports.
type Credentials struct {
	UID    UID
	EUID   UID
	GID    GID
	EGID   GID
	Groups []GID
}

// Files answers lookups from etc/passwd and etc/group beneath Root. The
// databases are read on first use and kept for the lifetime of the value.
type Files struct {
	Root      string
	Creds     Credentials
	LoginName string
	Audit     *AuditInfo

	pw      *userdb.PasswdFile
	gr      *userdb.GroupFile
	loaded  bool
	loadErr error
}

func NewFiles(root string, creds Credentials) *Files {
	return &Files{Root: root, Creds: creds}
}

func (f *Files) load() error {
	if f.loaded {
		return f.loadErr
	}
	f.loaded = true
	pw, err := loadFile(f.Root, hostfs.EtcPasswdRel, userdb.LoadPasswd)
	if err != nil {
		f.loadErr = err
		return err
	}
	gr, err := loadFile(f.Root, hostfs.EtcGroupRel, userdb.LoadGroup)
	if err != nil {
		f.loadErr = err
		return err
	}
	f.pw, f.gr = pw, gr
	return nil
}

func loadFile[T any](root, rel string, load func(path string) (*T, error)) (*T, error) {
	path, err := hostfs.Path(root, rel)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", rel, err)
	}
	v, err := load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", rel, err)
	}
	return v, nil
}

func (f *Files) UID() UID  { return f.Creds.UID }
func (f *Files) EUID() UID { return f.Creds.EUID }
func (f *Files) GID() GID  { return f.Creds.GID }
func (f *Files) EGID() GID { return f.Creds.EGID }

func (f *Files) Login() (string, error) {
	if f.LoginName == "" {
		return "", fmt.Errorf("login name: %w", ErrNotFound)
	}
	return f.LoginName, nil
}

func (f *Files) LookupUser(spec string) (*User, error) {
	if err := f.load(); err != nil {
		return nil, err
	}
	if e := f.pw.Find(spec); e != nil {
		return userFromEntry(e), nil
	}
	if id, ok := parseID(spec); ok {
		if e := f.pw.FindByUID(id); e != nil {
			return userFromEntry(e), nil
		}
	}
	return nil, userNotFound(spec)
}

func (f *Files) LookupUserID(uid UID) (*User, error) {
	if err := f.load(); err != nil {
		return nil, err
	}
	if e := f.pw.FindByUID(uint32(uid)); e != nil {
		return userFromEntry(e), nil
	}
	return nil, uidNotFound(uid)
}

func (f *Files) LookupGroup(spec string) (*Group, error) {
	if err := f.load(); err != nil {
		return nil, err
	}
	if e := f.gr.Find(spec); e != nil {
		return groupFromEntry(e), nil
	}
	if id, ok := parseID(spec); ok {
		if e := f.gr.FindByGID(id); e != nil {
			return groupFromEntry(e), nil
		}
	}
	return nil, groupNotFound(spec)
}

func (f *Files) LookupGroupID(gid GID) (*Group, error) {
	if err := f.load(); err != nil {
		return nil, err
	}
	if e := f.gr.FindByGID(uint32(gid)); e != nil {
		return groupFromEntry(e), nil
	}
	return nil, gidNotFound(gid)
}

func (f *Files) UserName(uid UID) (string, error) {
	u, err := f.LookupUserID(uid)
	if err != nil {
		return "", err
	}
	return u.Name, nil
}

func (f *Files) GroupName(gid GID) (string, error) {
	g, err := f.LookupGroupID(gid)
	if err != nil {
		return "", err
	}
	return g.Name, nil
}

func (f *Files) ProcessGroups() ([]GID, error) {
	out := make([]GID, len(f.Creds.Groups))
	copy(out, f.Creds.Groups)
	return out, nil
}

func (f *Files) UserGroups(u *User) ([]GID, error) {
	if err := f.load(); err != nil {
		return nil, err
	}
	ids := f.gr.GroupsOf(u.Name, uint32(u.GID))
	out := make([]GID, len(ids))
	for i, id := range ids {
		out[i] = GID(id)
	}
	return out, nil
}

func (f *Files) AuditInfo() (*AuditInfo, error) {
	if f.Audit == nil {
		return nil, ErrAuditUnavailable
	}
	a := *f.Audit
	return &a, nil
}

func userFromEntry(e *userdb.PasswdEntry) *User {
	return &User{
		Name:     e.Name,
		Password: e.Passwd,
		UID:      UID(e.UID),
		GID:      GID(e.GID),
		Gecos:    e.Gecos,
		Home:     e.Home,
		Shell:    e.Shell,
		Class:    e.Class,
		Change:   e.Change,
		Expire:   e.Expire,
	}
}

func groupFromEntry(e *userdb.GroupEntry) *Group {
	members := make([]string, len(e.Members))
	copy(members, e.Members)
	return &Group{Name: e.Name, GID: GID(e.GID), Members: members}
}
