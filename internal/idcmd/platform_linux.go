package idcmd

import (
	"bytes"

	"github.com/hnrobert/bsdid/internal/identity"
)

// Linux has no BSM audit subsystem; -A prints nothing.
const auditCapable = false

func writePasswd(b *bytes.Buffer, u *identity.User) {
	writePasswdLinux(b, u)
}
