//go:build !windows

package launcher

import "syscall"

// detachedProcAttr returns the platform attributes for a background
// launch. Setsid places the helper in its own session, detaching it
// from the launcher's controlling terminal so it keeps running after
// the launcher (and any terminal that started it) exits.
func detachedProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
