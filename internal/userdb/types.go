package userdb

// PasswdEntry is one account line. Class, Change and Expire are only present
// in the BSD master.passwd layout and are zero otherwise.
type PasswdEntry struct {
	Name   string
	Passwd string
	UID    uint32
	GID    uint32
	Class  string
	Change int64
	Expire int64
	Gecos  string
	Home   string
	Shell  string
}

type GroupEntry struct {
	Name    string
	Passwd  string
	GID     uint32
	Members []string
}
