// Package command dispatches multi-word subcommands such as
// "config set" to handlers.
//
// Commands are added to a [Registry]. For each call, [Dispatcher]
// builds a [Tree] of the registered paths, finds the deepest node
// matching the arguments and runs its handler with the remaining
// arguments. Nodes which only group other commands print the commands
// below them and fail with [ExitUsage].
package command
