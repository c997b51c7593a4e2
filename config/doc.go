// Package config keeps named, typed options bound to program variables
// and loads and saves them as a UCL configuration file.
//
// Options are created against a [Store] and bind caller storage:
//
//	store := config.NewStore()
//	var editor string
//	opt, err := config.NewString(store, &editor, "editor", "editor to use")
//	...
//	err = store.Read(path)
//
// An option is default until a value is set, through a setter or by
// reading a file which names it. Only non-default options are written.
package config
