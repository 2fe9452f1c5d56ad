package hostfs

// Well-known host file locations.
const (
	EtcPasswdRel = "etc/passwd"
	EtcGroupRel  = "etc/group"
	LoginUIDRel  = "proc/self/loginuid"
)
