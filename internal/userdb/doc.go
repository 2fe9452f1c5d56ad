package userdb

// Package userdb parses the host passwd and group databases.
//
// Both files are parsed line by line. Comments, blank lines, NIS compat
// entries (+/-) and malformed lines are skipped. Nothing here writes the
// files back.
