// Package ucl implements the dynamic object model of UCL configuration
// data.
//
// An [Object] is a handle onto a reference counted value which is one
// of null, boolean, integer, real, string, array or object (a map from
// string keys to objects). Handles are cheap to copy; plain assignment
// aliases the same handle while [Object.Ref] makes a new reference.
// Values are copy-on-write: a mutation through a handle whose value is
// shared first gives that handle its own copy. Containers take a new
// reference on insertion and hand out new references from their
// accessors, so values put into or taken out of a container behave as
// independent copies.
//
// The typed views [Boolean], [Integer], [Real], [String], [Array] and
// [Map] wrap an Object whose tag (and, for containers, whose elements)
// have been checked. [Cast] converts a generic Object into a view.
//
// Using a handle after [Object.Release], or the zero Object, panics with
// an error matching [errs.ErrLogic].
package ucl
