// Package taskname handles the naming conventions around generated
// Evergreen tasks.
//
// A task whose name ends in "_gen" is a generator: running it creates the
// real task (and possibly an execution fan-out) under the base name.
package taskname

import "strings"

// GenSuffix marks a task as one that generates further tasks.
const GenSuffix = "_gen"

// RemoveGenSuffix returns the name of the underlying task for a generator
// task name. Names without the suffix are returned unchanged.
func RemoveGenSuffix(name string) string {
	return strings.TrimSuffix(name, GenSuffix)
}

// IsGenTask reports whether name follows the generator naming convention.
func IsGenTask(name string) bool {
	return strings.HasSuffix(name, GenSuffix)
}
