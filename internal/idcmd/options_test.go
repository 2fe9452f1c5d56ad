package idcmd

import (
	"errors"
	"testing"

	"github.com/spf13/pflag"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		args []string
		want Selection
	}{
		{nil, Selection{Mode: ModeDefault}},
		{[]string{"alice"}, Selection{Mode: ModeDefault, Target: "alice", HasTarget: true}},
		{[]string{"-u"}, Selection{Mode: ModeEffectiveUser}},
		{[]string{"-unrz"}, Selection{Mode: ModeEffectiveUser, Names: true, Real: true, Zero: true}},
		{[]string{"--group", "--real"}, Selection{Mode: ModeEffectiveGroup, Real: true}},
		{[]string{"-G", "-n", "bob", "carol"}, Selection{Mode: ModeAllGroups, Names: true, Target: "bob", HasTarget: true}},
		{[]string{"-p"}, Selection{Mode: ModePretty}},
		{[]string{"-P", "root"}, Selection{Mode: ModePassword, Target: "root", HasTarget: true}},
		{[]string{"-P", "-p"}, Selection{Mode: ModePassword}},
		{[]string{"-g", "-p"}, Selection{Mode: ModeEffectiveGroup}},
		{[]string{"-A", "alice"}, Selection{Mode: ModeAudit}},
		{[]string{"-u", "--", "-weird"}, Selection{Mode: ModeEffectiveUser, Target: "-weird", HasTarget: true}},
		{[]string{"--debug", "-g"}, Selection{Mode: ModeEffectiveGroup, Debug: true}},
	}
	for _, tt := range tests {
		got, err := ParseArgs(tt.args)
		if err != nil {
			t.Errorf("ParseArgs(%q): %v", tt.args, err)
			continue
		}
		if *got != tt.want {
			t.Errorf("ParseArgs(%q) = %+v, want %+v", tt.args, *got, tt.want)
		}
	}
}

func TestParseArgs_Conflicts(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"-A", "-u"}, "option -A cannot be combined with -u"},
		{[]string{"-A", "-g"}, "option -A cannot be combined with -g"},
		{[]string{"-A", "-G"}, "option -A cannot be combined with -G"},
		{[]string{"-A", "-p"}, "option -A cannot be combined with -p"},
		{[]string{"-A", "-P"}, "option -A cannot be combined with -P"},
		{[]string{"-A", "-z"}, "option -A cannot be combined with -z"},
		{[]string{"-u", "-g"}, "option -u cannot be combined with -g"},
		{[]string{"-G", "-u"}, "option -G cannot be combined with -u"},
		{[]string{"-G", "-g"}, "option -G cannot be combined with -g"},
		{[]string{"-G", "-p"}, "option -G cannot be combined with -p"},
		{[]string{"-G", "-P"}, "option -G cannot be combined with -P"},
		{[]string{"-n"}, "cannot print only names or real IDs in default format"},
		{[]string{"-r"}, "cannot print only names or real IDs in default format"},
		{[]string{"-A", "-n"}, "cannot print only names or real IDs in default format"},
		{[]string{"-P", "-n"}, "cannot print only names or real IDs in default format"},
		{[]string{"-z"}, "option --zero not permitted in default format"},
		{[]string{"-p", "-z"}, "option --zero not permitted in default format"},
		{[]string{"--human-readable"}, "unknown flag: --human-readable"},
		{[]string{"--password=true"}, "unknown flag: --password"},
		{[]string{"-x"}, "unknown shorthand flag: 'x' in -x"},
	}
	for _, tt := range tests {
		_, err := ParseArgs(tt.args)
		var usage *UsageError
		if !errors.As(err, &usage) {
			t.Errorf("ParseArgs(%q) error = %v, want *UsageError", tt.args, err)
			continue
		}
		if usage.Msg != tt.want {
			t.Errorf("ParseArgs(%q) = %q, want %q", tt.args, usage.Msg, tt.want)
		}
	}
}

func TestParseArgs_ShortOnlyAfterTerminator(t *testing.T) {
	sel, err := ParseArgs([]string{"-u", "--", "--audit"})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if sel.Target != "--audit" {
		t.Errorf("Target = %q, want %q", sel.Target, "--audit")
	}
}

func TestParseArgs_HelpAndVersion(t *testing.T) {
	for _, args := range [][]string{{"-h"}, {"--help"}, {"-u", "--help"}} {
		if _, err := ParseArgs(args); !errors.Is(err, pflag.ErrHelp) {
			t.Errorf("ParseArgs(%q) error = %v, want pflag.ErrHelp", args, err)
		}
	}
	if _, err := ParseArgs([]string{"--version"}); !errors.Is(err, ErrVersion) {
		t.Errorf("ParseArgs(--version) error = %v, want ErrVersion", err)
	}
}

// Every mode-selecting flag given together with -A is rejected; the matrix
// is symmetric for -A even though only its own row lists the pairs.
func TestConflictMatrixCoversAudit(t *testing.T) {
	for _, other := range []string{"-u", "-g", "-G", "-p", "-P", "-z"} {
		for _, args := range [][]string{{"-A", other}, {other, "-A"}} {
			if _, err := ParseArgs(args); err == nil {
				t.Errorf("ParseArgs(%q) accepted", args)
			}
		}
	}
}
