package idcmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/hnrobert/bsdid/internal/identity"
	"github.com/hnrobert/bsdid/internal/logger"
)

// Config wires the command to its environment.
type Config struct {
	// Program prefixes diagnostics and appears in usage.
	Program string
	Version string
	Stdout  io.Writer
	Stderr  io.Writer
	Source  identity.Source
	// Formatter is the output policy; the zero value is historical output.
	Formatter Formatter
}

func (c *Config) withDefaults() {
	if c.Program == "" {
		c.Program = "id"
	}
	if c.Version == "" {
		c.Version = "dev"
	}
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}
}

// Run executes one invocation and returns the process exit code: 0 on
// success, 1 on a usage error, an unknown user or a failed lookup.
func Run(args []string, cfg Config) int {
	cfg.withDefaults()
	logger.Init(cfg.Program, cfg.Stderr)
	if err := execute(args, cfg); err != nil {
		logger.Error("%v", err)
		return 1
	}
	return 0
}

func execute(args []string, cfg Config) error {
	sel, err := ParseArgs(args)
	switch {
	case errors.Is(err, pflag.ErrHelp):
		WriteUsage(cfg.Stdout, cfg.Program)
		return nil
	case errors.Is(err, ErrVersion):
		_, err := fmt.Fprintf(cfg.Stdout, "%s %s\n", cfg.Program, cfg.Version)
		return err
	case err != nil:
		return err
	}
	if sel.Debug {
		logger.SetLevel(logger.LevelInfo)
		defer logger.SetLevel(logger.LevelError)
	}
	logger.Info("mode %s", sel.Mode)
	if cfg.Source == nil {
		return errors.New("no identity source configured")
	}

	// Output is written once, and only when every lookup succeeded.
	var out bytes.Buffer
	if err := render(&out, sel, cfg.Source, cfg.Formatter); err != nil {
		return err
	}
	_, err = cfg.Stdout.Write(out.Bytes())
	return err
}

func render(b *bytes.Buffer, sel *Selection, src identity.Source, f Formatter) error {
	if sel.Mode == ModeAudit {
		if !auditCapable {
			return nil
		}
		ai, err := src.AuditInfo()
		if err != nil {
			logger.Info("audit: %v", err)
			b.WriteString(auditUnavailableMsg + "\n")
			return nil
		}
		writeAudit(b, ai)
		return nil
	}

	r, err := newResolver(src, sel)
	if err != nil {
		return err
	}

	switch sel.Mode {
	case ModeEffectiveGroup:
		writeField(b, sel, r.groupField())
	case ModeEffectiveUser:
		writeField(b, sel, r.userField())
	case ModeAllGroups:
		tokens, err := r.groupsFields()
		if err != nil {
			return err
		}
		writeGroupsField(b, sel, tokens)
	case ModePassword:
		u, err := r.passwdUser()
		if err != nil {
			return err
		}
		writePasswd(b, u)
	case ModePretty:
		lines, err := r.pretty()
		if err != nil {
			return err
		}
		writePretty(b, lines)
	default:
		c, err := r.composite()
		if err != nil {
			return err
		}
		f.writeComposite(b, c)
	}
	return nil
}
