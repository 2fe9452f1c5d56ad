package idcmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
)

// option describes one command-line flag. Flags with shortOnly set have an
// internal long name that is not accepted on the command line.
type option struct {
	short     string
	long      string
	shortOnly bool
	help      string
}

var options = []option{
	{short: "A", long: "audit", shortOnly: true,
		help: "display the process audit user ID and other process audit properties (not available on Linux)"},
	{short: "u", long: "user", help: "display only the effective user ID as a number"},
	{short: "g", long: "group", help: "display only the effective group ID as a number"},
	{short: "G", long: "groups", help: "display the different group IDs as white-space separated numbers"},
	{short: "p", long: "human-readable", shortOnly: true, help: "make the output human-readable, one display per line"},
	{short: "P", long: "password", shortOnly: true, help: "display the id as a password file entry"},
	{short: "n", long: "name", help: "display the name instead of the number for -u, -g and -G"},
	{short: "r", long: "real", help: "display the real ID instead of the effective ID for -u and -g"},
	{short: "z", long: "zero", help: "delimit entries with NUL characters, not whitespace; not permitted in default format"},
}

// conflicts is the mutual-exclusion matrix: a set flag in the first column
// rejects every flag listed beside it.
var conflicts = []struct {
	flag string
	with []string
}{
	{"A", []string{"u", "g", "G", "p", "P", "z"}},
	{"u", []string{"g"}},
	{"G", []string{"u", "g", "p", "P", "A"}},
}

// modeOrder picks the mode when the matrix allows several mode flags at once.
var modeOrder = []struct {
	flag string
	mode Mode
}{
	{"A", ModeAudit},
	{"g", ModeEffectiveGroup},
	{"u", ModeEffectiveUser},
	{"G", ModeAllGroups},
	{"P", ModePassword},
	{"p", ModePretty},
}

func newFlagSet(program string, set map[string]*bool, version, debug *bool) *pflag.FlagSet {
	fs := pflag.NewFlagSet(program, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	for _, o := range options {
		set[o.short] = fs.BoolP(o.long, o.short, false, o.help)
	}
	fs.BoolVar(debug, "debug", false, "print lookup diagnostics to standard error")
	fs.BoolVar(version, "version", false, "output version information and exit")
	return fs
}

// ParseArgs resolves the argument vector (without the program name) into a
// Selection. It returns pflag.ErrHelp for -h/--help, ErrVersion for
// --version, and a *UsageError for everything it rejects.
func ParseArgs(args []string) (*Selection, error) {
	if err := rejectShortOnlyLongForms(args); err != nil {
		return nil, err
	}

	set := map[string]*bool{}
	var version, debug bool
	fs := newFlagSet("id", set, &version, &debug)
	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil, err
		}
		return nil, &UsageError{Msg: err.Error()}
	}
	if version {
		return nil, ErrVersion
	}

	given := func(short string) bool { return *set[short] }

	for _, c := range conflicts {
		if !given(c.flag) {
			continue
		}
		for _, other := range c.with {
			if given(other) {
				return nil, usagef("option -%s cannot be combined with -%s", c.flag, other)
			}
		}
	}

	fieldMode := given("u") || given("g") || given("G")
	if (given("n") || given("r")) && !fieldMode {
		return nil, usagef("cannot print only names or real IDs in default format")
	}
	if given("z") && !fieldMode {
		return nil, usagef("option --zero not permitted in default format")
	}

	sel := &Selection{
		Mode:  ModeDefault,
		Names: given("n"),
		Real:  given("r"),
		Zero:  given("z"),
		Debug: debug,
	}
	for _, m := range modeOrder {
		if given(m.flag) {
			sel.Mode = m.mode
			break
		}
	}
	// Extra positional users are ignored; audit mode takes none.
	if rest := fs.Args(); len(rest) > 0 && sel.Mode != ModeAudit {
		sel.Target = rest[0]
		sel.HasTarget = true
	}
	return sel, nil
}

// rejectShortOnlyLongForms refuses the internal long names of short-only
// flags, which pflag would otherwise accept.
func rejectShortOnlyLongForms(args []string) error {
	for _, arg := range args {
		if arg == "--" {
			return nil
		}
		if !strings.HasPrefix(arg, "--") {
			continue
		}
		name, _, _ := strings.Cut(arg[2:], "=")
		for _, o := range options {
			if o.shortOnly && o.long == name {
				return usagef("unknown flag: --%s", name)
			}
		}
	}
	return nil
}

// WriteUsage prints the help text for program to w.
func WriteUsage(w io.Writer, program string) {
	fmt.Fprintf(w, "Usage: %s [OPTION]... [USER]\n\n", program)
	fmt.Fprintf(w, "Display user and group names and numeric IDs of the calling process or of USER.\n")
	fmt.Fprintf(w, "If USER is given, its real and effective IDs are assumed to be the same.\n\n")
	tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
	for _, o := range options {
		flag := "-" + o.short
		if !o.shortOnly {
			flag += ", --" + o.long
		}
		fmt.Fprintf(tw, "  %s\t%s\n", flag, o.help)
	}
	fmt.Fprintf(tw, "  --debug\tprint lookup diagnostics to standard error\n")
	fmt.Fprintf(tw, "  -h, --help\tdisplay this help and exit\n")
	fmt.Fprintf(tw, "  --version\toutput version information and exit\n")
	tw.Flush()
}
