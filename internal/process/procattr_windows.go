//go:build windows

package process

import "syscall"

// CREATE_NO_WINDOW keeps the child from opening a console window.
const createNoWindow = 0x08000000

// sysProcAttr hides the child's console. The Invocation UID/GID
// credential overrides have no Windows equivalent here and are ignored;
// the child runs as the parent's user.
func sysProcAttr(inv Invocation) *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: createNoWindow,
	}
}
