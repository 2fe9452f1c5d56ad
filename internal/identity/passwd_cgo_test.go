//go:build unix && cgo

package identity

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/hnrobert/bsdid/internal/userdb"
)

// nameServiceOnly returns a System whose files know nobody, so every user
// lookup goes to the name services.
func nameServiceOnly(t *testing.T) *System {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "etc"), 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"passwd", "group"} {
		if err := os.WriteFile(filepath.Join(root, "etc", name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return &System{root: root, files: NewFiles(root, Credentials{})}
}

func TestSystemNameServiceRecordIsComplete(t *testing.T) {
	pw, err := userdb.LoadPasswd("/etc/passwd")
	if err != nil {
		t.Skipf("no host passwd file: %v", err)
	}
	want := pw.FindByUID(0)
	if want == nil {
		t.Skip("host passwd file has no uid 0")
	}

	s := nameServiceOnly(t)
	byID, err := s.LookupUserID(0)
	if err != nil {
		t.Fatalf("LookupUserID(0): %v", err)
	}
	if !byID.fromNSS {
		t.Error("LookupUserID(0) was answered by the empty files")
	}
	if byID.Name != want.Name || byID.Password != want.Passwd || byID.Shell != want.Shell ||
		byID.Home != want.Home || byID.Gecos != want.Gecos || uint32(byID.GID) != want.GID {
		t.Errorf("LookupUserID(0) = %+v, want fields of %+v", *byID, *want)
	}

	byName, err := s.LookupUser(want.Name)
	if err != nil {
		t.Fatalf("LookupUser(%q): %v", want.Name, err)
	}
	if byName.Shell != want.Shell || byName.Password != want.Passwd {
		t.Errorf("LookupUser(%q) shell/password = %q/%q, want %q/%q",
			want.Name, byName.Shell, byName.Password, want.Shell, want.Passwd)
	}

	byNumber, err := s.LookupUser(strconv.Itoa(0))
	if err != nil || byNumber.Name != want.Name {
		t.Errorf("LookupUser(\"0\") = %+v, %v; want %s", byNumber, err, want.Name)
	}
}

func TestSystemNameServiceUnknown(t *testing.T) {
	s := nameServiceOnly(t)
	if _, err := s.LookupUserID(4294967000); !errors.Is(err, ErrNotFound) {
		t.Errorf("LookupUserID(4294967000) error = %v, want ErrNotFound", err)
	}
	if _, err := s.LookupUser("no-such-user-bsdid-test"); !errors.Is(err, ErrNotFound) {
		t.Errorf("LookupUser(unknown) error = %v, want ErrNotFound", err)
	}
}
