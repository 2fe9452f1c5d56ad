// Package idcmd implements the id command: option resolution, identity
// resolution against an identity.Source, and BSD-compatible output.
package idcmd

// Mode is the output format selected on the command line.
type Mode int

const (
	ModeDefault Mode = iota
	ModeEffectiveUser
	ModeEffectiveGroup
	ModeAllGroups
	ModePassword
	ModePretty
	ModeAudit
)

func (m Mode) String() string {
	switch m {
	case ModeDefault:
		return "default"
	case ModeEffectiveUser:
		return "effective-user"
	case ModeEffectiveGroup:
		return "effective-group"
	case ModeAllGroups:
		return "all-groups"
	case ModePassword:
		return "password"
	case ModePretty:
		return "pretty"
	case ModeAudit:
		return "audit"
	}
	return "unknown"
}

// Selection is the validated result of option parsing. It is built once per
// invocation and not modified afterwards.
type Selection struct {
	Mode Mode
	// Names prints names instead of numbers (-n).
	Names bool
	// Real uses the real instead of the effective id (-r).
	Real bool
	// Zero terminates output with NUL instead of newline (-z).
	Zero bool
	// Debug lowers the log level so lookup diagnostics are printed.
	Debug bool
	// Target is the first positional user specifier, if HasTarget.
	Target    string
	HasTarget bool
}

func (s Selection) lineEnding() byte {
	if s.Zero {
		return 0
	}
	return '\n'
}
