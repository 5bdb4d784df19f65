//go:build unix

package process

import "syscall"

// sysProcAttr puts the child in its own process group so termination
// signals reach shell-wrapped grandchildren, and applies the optional
// credential override.
func sysProcAttr(inv Invocation) *syscall.SysProcAttr {
	attr := &syscall.SysProcAttr{
		Setpgid: true,
	}
	if inv.UID != nil || inv.GID != nil {
		cred := &syscall.Credential{}
		if inv.UID != nil {
			cred.Uid = *inv.UID
		}
		if inv.GID != nil {
			cred.Gid = *inv.GID
		}
		attr.Credential = cred
	}
	return attr
}
