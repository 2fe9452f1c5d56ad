//go:build unix && cgo

package identity

/*
#include <sys/types.h>
#include <errno.h>
#include <pwd.h>
#include <stdlib.h>
#include <unistd.h>

typedef struct {
	char *name;
	char *passwd;
	unsigned int uid;
	unsigned int gid;
	char *class_;
	long long change;
	long long expire;
	char *gecos;
	char *dir;
	char *shell;
} id_passwd;

static void id_fill(struct passwd *p, id_passwd *out) {
	out->name = p->pw_name;
	out->passwd = p->pw_passwd;
	out->uid = (unsigned int)p->pw_uid;
	out->gid = (unsigned int)p->pw_gid;
	out->gecos = p->pw_gecos;
	out->dir = p->pw_dir;
	out->shell = p->pw_shell;
#if defined(__APPLE__) || defined(__FreeBSD__) || defined(__NetBSD__) || defined(__OpenBSD__) || defined(__DragonFly__)
	out->class_ = p->pw_class;
	out->change = (long long)p->pw_change;
	out->expire = (long long)p->pw_expire;
#else
	out->class_ = NULL;
	out->change = 0;
	out->expire = 0;
#endif
}

// The wrappers take plain C types; some libcs declare the id argument as
// __uid_t, which cgo will not convert to.
static int id_getpwuid_r(unsigned int uid, char *buf, size_t len, id_passwd *out, int *found) {
	struct passwd pw, *result = NULL;
	int rv = getpwuid_r((uid_t)uid, &pw, buf, len, &result);
	*found = result != NULL;
	if (rv == 0 && result != NULL) {
		id_fill(result, out);
	}
	return rv;
}

static int id_getpwnam_r(const char *name, char *buf, size_t len, id_passwd *out, int *found) {
	struct passwd pw, *result = NULL;
	int rv = getpwnam_r(name, &pw, buf, len, &result);
	*found = result != NULL;
	if (rv == 0 && result != NULL) {
		id_fill(result, out);
	}
	return rv;
}
*/
import "C"

import (
	"fmt"
	"syscall"
	"unsafe"
)

const maxPasswdBuf = 1 << 20

func passwdBufSize() C.size_t {
	n := C.sysconf(C._SC_GETPW_R_SIZE_MAX)
	if n <= 0 || n > maxPasswdBuf {
		return 1024
	}
	return C.size_t(n)
}

// nssLookupUserID resolves uid through getpwuid_r(3), so every name service
// the host configures is consulted and the full record comes back.
func nssLookupUserID(uid UID) (*User, error) {
	return nssLookup(func(buf *C.char, size C.size_t, out *C.id_passwd, found *C.int) C.int {
		return C.id_getpwuid_r(C.uint(uid), buf, size, out, found)
	}, func() error { return uidNotFound(uid) })
}

// nssLookupUserName resolves name through getpwnam_r(3).
func nssLookupUserName(name string) (*User, error) {
	nameC := C.CString(name)
	defer C.free(unsafe.Pointer(nameC))
	return nssLookup(func(buf *C.char, size C.size_t, out *C.id_passwd, found *C.int) C.int {
		return C.id_getpwnam_r(nameC, buf, size, out, found)
	}, func() error { return userNotFound(name) })
}

func nssLookup(call func(*C.char, C.size_t, *C.id_passwd, *C.int) C.int, notFound func() error) (*User, error) {
	for size := passwdBufSize(); ; size *= 2 {
		buf := C.malloc(size)
		var (
			out   C.id_passwd
			found C.int
		)
		rv := call((*C.char)(buf), size, &out, &found)
		if syscall.Errno(rv) == syscall.ERANGE && size < maxPasswdBuf {
			C.free(buf)
			continue
		}
		if rv != 0 {
			C.free(buf)
			return nil, fmt.Errorf("getpwent: %w", syscall.Errno(rv))
		}
		if found == 0 {
			C.free(buf)
			return nil, notFound()
		}
		// The strings point into buf; copy them before it is freed.
		u := &User{
			Name:     C.GoString(out.name),
			Password: C.GoString(out.passwd),
			UID:      UID(out.uid),
			GID:      GID(out.gid),
			Class:    C.GoString(out.class_),
			Change:   int64(out.change),
			Expire:   int64(out.expire),
			Gecos:    C.GoString(out.gecos),
			Home:     C.GoString(out.dir),
			Shell:    C.GoString(out.shell),
			fromNSS:  true,
		}
		C.free(buf)
		return u, nil
	}
}
