// Package posix wraps process execution, path search, temporary files
// and file updates on POSIX systems.
//
// An [Executor] describes a program and its arguments. It either
// replaces the running process with [Executor.Exec] or starts a child
// with [Spawn]:
//
//	ex, err := posix.Execlp("sh", "sh", "-c", "echo hi")
//	...
//	var out string
//	proc, err := posix.Spawn(ex, posix.Capture(posix.Stdout, &out))
//	...
//	res, err := proc.Wait()
package posix
