// Package launcher implements the launch contract of the wmlaunch CLI:
// resolve the launcher's own directory, verify the helper script exists,
// pick the first available interpreter, and start the helper either
// attached (foreground) or detached with no console window (background).
//
// The sequence is strictly linear with three terminal outcomes:
//
//	target missing        → ErrMissingTarget, no interpreter probing
//	no interpreter found  → ErrNoInterpreter
//	interpreter resolved  → exactly one child process is started
//
// There is no retry logic, no timeout, and no way to abort the helper
// once started. In foreground mode the launcher blocks on the single
// child and captures its exit code for verbatim propagation; in
// background mode the child's outcome is never observed.
package launcher
