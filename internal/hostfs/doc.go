package hostfs

// Package hostfs provides read access to host identity files beneath a root.
//
// The root is "/" for the running host. A container inspecting a mounted host
// uses the mount point instead:
//   /etc/passwd         -> <root>/etc/passwd
//   /etc/group          -> <root>/etc/group
//   /proc/self/loginuid -> <root>/proc/self/loginuid
