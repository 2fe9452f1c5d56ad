package userdb

import (
	"io"
	"os"
)

type PasswdFile struct {
	pf parsedFile[PasswdEntry]
}

func LoadPasswd(path string) (*PasswdFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParsePasswd(f)
}

// ParsePasswd reads a passwd database. Lines with 7 fields use the
// traditional layout; lines with 10 fields use the BSD master.passwd layout
// (name:passwd:uid:gid:class:change:expire:gecos:home:shell).
func ParsePasswd(r io.Reader) (*PasswdFile, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	var pf parsedFile[PasswdEntry]
	for _, line := range lines {
		if skipLine(line) {
			continue
		}
		e, err := parsePasswdLine(parseColonLine(line))
		if err != nil {
			continue
		}
		pf.add(e)
	}
	return &PasswdFile{pf: pf}, nil
}

func parsePasswdLine(parts []string) (*PasswdEntry, error) {
	if len(parts) != 7 && len(parts) != 10 {
		return nil, errMalformed
	}
	uid, err := atoid(parts[2], "passwd.uid")
	if err != nil {
		return nil, err
	}
	gid, err := atoid(parts[3], "passwd.gid")
	if err != nil {
		return nil, err
	}
	e := &PasswdEntry{
		Name:   parts[0],
		Passwd: parts[1],
		UID:    uid,
		GID:    gid,
	}
	if len(parts) == 7 {
		e.Gecos, e.Home, e.Shell = parts[4], parts[5], parts[6]
		return e, nil
	}
	e.Class = parts[4]
	if e.Change, err = atoi64(parts[5], "passwd.change"); err != nil {
		return nil, err
	}
	if e.Expire, err = atoi64(parts[6], "passwd.expire"); err != nil {
		return nil, err
	}
	e.Gecos, e.Home, e.Shell = parts[7], parts[8], parts[9]
	return e, nil
}

// Find returns the first entry named name, or nil.
func (f *PasswdFile) Find(name string) *PasswdEntry {
	for _, e := range f.pf.entries() {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// FindByUID returns the first entry with the given uid, or nil.
func (f *PasswdFile) FindByUID(uid uint32) *PasswdEntry {
	for _, e := range f.pf.entries() {
		if e.UID == uid {
			return e
		}
	}
	return nil
}
