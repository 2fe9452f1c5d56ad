package idcmd

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/hnrobert/bsdid/internal/identity"
)

func TestRejectedArgsWriteNoStdout(t *testing.T) {
	sf := loadScenarios(t)
	src := fixtureSource(t, sf, "alice")
	for _, args := range [][]string{
		{"-n"}, {"-r"}, {"-z"}, {"-u", "-g"}, {"-A", "-G"}, {"-G", "-p"},
		{"--audit"}, {"-q"}, {"nosuchuser"},
	} {
		stdout, stderr, code := runWith(src, args...)
		if code != 1 {
			t.Errorf("%q: exit = %d, want 1", args, code)
		}
		if stdout != "" {
			t.Errorf("%q: stdout = %q, want empty", args, stdout)
		}
		if !strings.HasPrefix(stderr, "id: ") || strings.Count(stderr, "\n") != 1 {
			t.Errorf("%q: stderr = %q, want one \"id: \" line", args, stderr)
		}
	}
}

func TestZeroEndsWithSingleNUL(t *testing.T) {
	sf := loadScenarios(t)
	src := fixtureSource(t, sf, "alice")
	for _, args := range [][]string{
		{"-uz"}, {"-unz"}, {"-gz"}, {"-gnz"}, {"-Gz"}, {"-Gnz"}, {"-Gz", "bob"},
	} {
		stdout, _, code := runWith(src, args...)
		if code != 0 {
			t.Errorf("%q: exit = %d", args, code)
			continue
		}
		if !strings.HasSuffix(stdout, "\x00") || strings.Count(stdout, "\x00") != 1 {
			t.Errorf("%q: stdout = %q, want exactly one trailing NUL", args, stdout)
		}
		if strings.Contains(stdout, "\n") {
			t.Errorf("%q: stdout = %q contains a newline", args, stdout)
		}
	}
}

func TestLinesEndWithNewline(t *testing.T) {
	sf := loadScenarios(t)
	src := fixtureSource(t, sf, "setuid")
	for _, args := range [][]string{
		{}, {"bob"}, {"-u"}, {"-gn"}, {"-G"}, {"-Gn"}, {"-p"}, {"-p", "bob"}, {"-P"},
	} {
		stdout, _, code := runWith(src, args...)
		if code != 0 {
			t.Errorf("%q: exit = %d", args, code)
			continue
		}
		if stdout == "" || !strings.HasSuffix(stdout, "\n") {
			t.Errorf("%q: stdout = %q, want newline-terminated", args, stdout)
		}
	}
}

func TestResolutionIsCanonical(t *testing.T) {
	sf := loadScenarios(t)
	src := fixtureSource(t, sf, "alice")
	for _, mode := range [][]string{{}, {"-u"}, {"-gn"}, {"-Gn"}, {"-p"}, {"-P"}} {
		byName, _, _ := runWith(src, append(mode, "bob")...)
		byUID, _, _ := runWith(src, append(mode, "1001")...)
		if byName != byUID {
			t.Errorf("%q: by name %q, by uid %q", mode, byName, byUID)
		}
	}
}

func TestNamesKeepTokenCount(t *testing.T) {
	sf := loadScenarios(t)
	src := fixtureSource(t, sf, "alice")
	for _, target := range []string{"", "bob", "root"} {
		args := []string{"-G"}
		if target != "" {
			args = append(args, target)
		}
		numbers, _, _ := runWith(src, args...)
		names, _, _ := runWith(src, append([]string{"-n"}, args...)...)
		if n, m := len(strings.Fields(numbers)), len(strings.Fields(names)); n != m {
			t.Errorf("target %q: -G has %d tokens, -Gn has %d", target, n, m)
		}
	}
}

func TestEuidSegment(t *testing.T) {
	sf := loadScenarios(t)
	tests := []struct {
		identity string
		args     []string
		want     bool
	}{
		{"alice", nil, false},
		{"setuid", nil, true},
		{"setuid", []string{"alice"}, false},
		{"setuid", []string{"root"}, false},
	}
	for _, tt := range tests {
		stdout, _, _ := runWith(fixtureSource(t, sf, tt.identity), tt.args...)
		if got := strings.Contains(stdout, " euid="); got != tt.want {
			t.Errorf("%s %q: euid segment = %v, want %v (%q)", tt.identity, tt.args, got, tt.want, stdout)
		}
	}
}

func TestHelpAndVersion(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run([]string{"--help"}, Config{Program: "id", Stdout: &out, Stderr: &errOut})
	if code != 0 {
		t.Errorf("--help exit = %d, want 0", code)
	}
	if !strings.HasPrefix(out.String(), "Usage: id [OPTION]... [USER]\n") {
		t.Errorf("--help output = %q", out.String())
	}
	for _, flag := range []string{"-A ", "-u, --user", "-z, --zero", "-p ", "-P ", "--debug"} {
		if !strings.Contains(out.String(), flag) {
			t.Errorf("--help output lacks %q", flag)
		}
	}

	out.Reset()
	code = Run([]string{"--version"}, Config{Program: "id", Version: "1.2.3", Stdout: &out, Stderr: &errOut})
	if code != 0 || out.String() != "id 1.2.3\n" {
		t.Errorf("--version = %d %q, want 0 %q", code, out.String(), "id 1.2.3\n")
	}
	if errOut.Len() != 0 {
		t.Errorf("stderr = %q, want empty", errOut.String())
	}
}

func TestAuditRecord(t *testing.T) {
	if runtime.GOOS == "linux" {
		t.Skip("audit is a no-op on Linux")
	}
	sf := loadScenarios(t)
	src := fixtureSource(t, sf, "alice")

	stdout, _, code := runWith(src, "-A")
	if code != 0 || stdout != "couldn't retrieve information\n" {
		t.Errorf("-A without audit = %d %q", code, stdout)
	}

	src.Audit = &identity.AuditInfo{AUID: 1000, MaskSuccess: 0x1, MaskFailure: 0x2, TermPort: 0x3, ASID: 4}
	stdout, _, code = runWith(src, "-A")
	want := "auid=1000\nmask.success=0x1\nmask.failure=0x2\ntermid.port=0x3\nasid=4\n"
	if code != 0 || stdout != want {
		t.Errorf("-A = %d %q, want 0 %q", code, stdout, want)
	}
}

func TestMissingDatabase(t *testing.T) {
	src := identity.NewFiles(t.TempDir(), identity.Credentials{UID: 1000, EUID: 1000, GID: 1000, EGID: 1000})
	stdout, stderr, code := runWith(src, "-u")
	if code != 0 || stdout != "1000\n" {
		t.Errorf("-u = %d %q, want 0 \"1000\\n\"", code, stdout)
	}
	stdout, stderr, code = runWith(src)
	if code != 1 || stdout != "" || !strings.HasPrefix(stderr, "id: Could not find uid 1000: load etc/passwd") {
		t.Errorf("default = %d %q %q", code, stdout, stderr)
	}
}

func TestDebugDiagnostics(t *testing.T) {
	sf := loadScenarios(t)
	src := fixtureSource(t, sf, "alice")

	stdout, stderr, code := runWith(src, "--debug", "-u", "bob")
	if code != 0 {
		t.Fatalf("exit = %d, want 0 (stderr %q)", code, stderr)
	}
	if stdout != "1001\n" {
		t.Errorf("stdout = %q, want %q", stdout, "1001\n")
	}
	for _, want := range []string{"id: info: mode effective-user\n", "id: info: user \"bob\" is uid 1001\n"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr = %q, want it to contain %q", stderr, want)
		}
	}

	// Diagnostics stay off without the flag, including on later runs.
	_, stderr, code = runWith(src, "-u", "bob")
	if code != 0 || stderr != "" {
		t.Errorf("without --debug: exit %d stderr %q, want 0 and empty", code, stderr)
	}
}

func TestZeroConfigFormatterIsHistorical(t *testing.T) {
	sf := loadScenarios(t)
	var out, errOut bytes.Buffer
	code := Run(nil, Config{Stdout: &out, Stderr: &errOut, Source: fixtureSource(t, sf, "setgid")})
	if code != 0 {
		t.Fatalf("exit = %d, want 0 (stderr %q)", code, errOut.String())
	}
	if want := "uid=1000(alice) gid=1000(alice) egid=1000(sudo) groups=1000(alice),27(sudo)\n"; out.String() != want {
		t.Errorf("stdout = %q, want %q", out.String(), want)
	}
}
