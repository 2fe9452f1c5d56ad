//go:build (darwin || freebsd) && cgo

package identity

/*
#include <sys/types.h>
#include <stdint.h>
#include <unistd.h>
#include <bsm/audit.h>

static int id_getaudit(uint32_t *auid, uint32_t *success, uint32_t *failure,
	uint64_t *port, int32_t *asid) {
	auditinfo_addr_t ai;
	if (getaudit_addr(&ai, sizeof(ai)) < 0) {
		return -1;
	}
	*auid = (uint32_t)ai.ai_auid;
	*success = (uint32_t)ai.ai_mask.am_success;
	*failure = (uint32_t)ai.ai_mask.am_failure;
	*port = (uint64_t)ai.ai_termid.at_port;
	*asid = (int32_t)ai.ai_asid;
	return 0;
}
*/
import "C"

import "fmt"

func hostLogin(s *System) (string, error) {
	name := C.getlogin()
	if name == nil {
		return "", fmt.Errorf("login name: %w", ErrNotFound)
	}
	return C.GoString(name), nil
}

func hostAuditInfo() (*AuditInfo, error) {
	var (
		auid, success, failure C.uint32_t
		port                   C.uint64_t
		asid                   C.int32_t
	)
	if C.id_getaudit(&auid, &success, &failure, &port, &asid) < 0 {
		return nil, ErrAuditUnavailable
	}
	return &AuditInfo{
		AUID:        UID(auid),
		MaskSuccess: uint32(success),
		MaskFailure: uint32(failure),
		TermPort:    uint64(port),
		ASID:        int32(asid),
	}, nil
}
