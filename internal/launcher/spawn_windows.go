//go:build windows

package launcher

import "syscall"

// createNoWindow is the CREATE_NO_WINDOW process creation flag. It keeps
// the child from getting a console of its own, which matters when the
// resolved interpreter is the console variant (python rather than
// pythonw) — without it a background launch would flash a console window.
const createNoWindow = 0x08000000

// detachedProcAttr returns the platform attributes for a background
// launch: no console window and no inherited console handle.
func detachedProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: createNoWindow,
	}
}
