// Package interpreter implements interpreter discovery for the
// wmlaunch CLI.
//
// The core algorithm is strict priority probing: candidates are tried
// in a fixed, total order and the first one resolvable on the execution
// search path wins. There is deliberately no fallback after selection —
// if the chosen interpreter later fails to start, that failure surfaces
// as-is rather than silently retrying a lower-priority candidate.
//
// The default candidate order puts the windowless interpreter variant
// first (pythonw on Windows) so that background launches never surface
// a console, then the general-purpose interpreter, then python3 where
// that is the conventional command name.
package interpreter
