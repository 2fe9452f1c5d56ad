package userdb

import (
	"errors"
	"io"
	"os"
	"strings"
)

var errMalformed = errors.New("malformed line")

type GroupFile struct {
	pf parsedFile[GroupEntry]
}

func LoadGroup(path string) (*GroupFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseGroup(f)
}

func ParseGroup(r io.Reader) (*GroupFile, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	var pf parsedFile[GroupEntry]
	for _, line := range lines {
		if skipLine(line) {
			continue
		}
		parts := parseColonLine(line)
		if len(parts) < 4 {
			continue
		}
		gid, err := atoid(parts[2], "group.gid")
		if err != nil {
			continue
		}
		members := []string{}
		if parts[3] != "" {
			members = strings.Split(parts[3], ",")
		}
		pf.add(&GroupEntry{Name: parts[0], Passwd: parts[1], GID: gid, Members: members})
	}
	return &GroupFile{pf: pf}, nil
}

func (f *GroupFile) Find(name string) *GroupEntry {
	for _, e := range f.pf.entries() {
		if e.Name == name {
			return e
		}
	}
	return nil
}

func (f *GroupFile) FindByGID(gid uint32) *GroupEntry {
	for _, e := range f.pf.entries() {
		if e.GID == gid {
			return e
		}
	}
	return nil
}

// GroupsOf returns the group list of user the way getgrouplist(3) builds it:
// primary first, then every group naming user as a member, in file order,
// without duplicates.
func (f *GroupFile) GroupsOf(user string, primary uint32) []uint32 {
	out := []uint32{primary}
	seen := map[uint32]bool{primary: true}
	for _, g := range f.pf.entries() {
		if seen[g.GID] {
			continue
		}
		for _, m := range g.Members {
			if m == user {
				out = append(out, g.GID)
				seen[g.GID] = true
				break
			}
		}
	}
	return out
}
