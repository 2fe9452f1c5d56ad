package idcmd

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/hnrobert/bsdid/internal/identity"
)

// Formatter holds output policy that the historical format leaves open.
// The zero value matches the historical output byte for byte.
type Formatter struct {
	// TrueEgidValue prints the egid as the number of the egid= segment.
	// The historical id prints the effective uid there.
	TrueEgidValue bool
}

// writeField writes a single-field mode value and its terminator.
func writeField(b *bytes.Buffer, sel *Selection, value string) {
	b.WriteString(value)
	b.WriteByte(sel.lineEnding())
}

// writeGroupsField joins with a space, or with nothing under -z; the whole
// field gets one terminator.
func writeGroupsField(b *bytes.Buffer, sel *Selection, tokens []string) {
	sep := " "
	if sel.Zero {
		sep = ""
	}
	writeField(b, sel, strings.Join(tokens, sep))
}

func (f Formatter) writeComposite(b *bytes.Buffer, c *composite) {
	fmt.Fprintf(b, "uid=%d(%s) gid=%d(%s)", c.User.ID, c.User.Name, c.Group.ID, c.Group.Name)
	if c.EffUser != nil {
		fmt.Fprintf(b, " euid=%d(%s)", c.EffUser.ID, c.EffUser.Name)
	}
	if c.EffGroup != nil {
		value := uint32(c.EUID)
		if f.TrueEgidValue {
			value = c.EffGroup.ID
		}
		fmt.Fprintf(b, " egid=%d(%s)", value, c.EffGroup.Name)
	}
	b.WriteString(" groups=")
	for i, g := range c.Groups {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(b, "%d(%s)", g.ID, g.Name)
	}
	b.WriteByte('\n')
}

func writePretty(b *bytes.Buffer, lines []prettyLine) {
	for _, l := range lines {
		b.WriteString(l.Label)
		b.WriteByte('\t')
		b.WriteString(l.Value)
		b.WriteByte('\n')
	}
}

// writePasswdLinux writes name:password:uid:gid:gecos:home:shell.
func writePasswdLinux(b *bytes.Buffer, u *identity.User) {
	fields := []string{
		u.Name,
		u.Password,
		strconv.FormatUint(uint64(u.UID), 10),
		strconv.FormatUint(uint64(u.GID), 10),
		u.Gecos,
		u.Home,
		u.Shell,
	}
	b.WriteString(strings.Join(fields, ":"))
	b.WriteByte('\n')
}

// writePasswdBSD writes name:password:uid:gid:class:change:expire:gecos:home:shell.
func writePasswdBSD(b *bytes.Buffer, u *identity.User) {
	fields := []string{
		u.Name,
		u.Password,
		strconv.FormatUint(uint64(u.UID), 10),
		strconv.FormatUint(uint64(u.GID), 10),
		u.Class,
		strconv.FormatInt(u.Change, 10),
		strconv.FormatInt(u.Expire, 10),
		u.Gecos,
		u.Home,
		u.Shell,
	}
	b.WriteString(strings.Join(fields, ":"))
	b.WriteByte('\n')
}

const auditUnavailableMsg = "couldn't retrieve information"

func writeAudit(b *bytes.Buffer, ai *identity.AuditInfo) {
	fmt.Fprintf(b, "auid=%d\n", ai.AUID)
	fmt.Fprintf(b, "mask.success=0x%x\n", ai.MaskSuccess)
	fmt.Fprintf(b, "mask.failure=0x%x\n", ai.MaskFailure)
	fmt.Fprintf(b, "termid.port=0x%x\n", ai.TermPort)
	fmt.Fprintf(b, "asid=%d\n", ai.ASID)
}
