//go:build unix && !linux

package idcmd

import (
	"bytes"

	"github.com/hnrobert/bsdid/internal/identity"
)

const auditCapable = true

func writePasswd(b *bytes.Buffer, u *identity.User) {
	writePasswdBSD(b, u)
}
