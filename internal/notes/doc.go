// Package notes stores single text notes under the active notes directory.
//
// A note is named by a path relative to the notes directory, which is
// re-resolved on every call so that a changed override takes effect
// immediately. Content is opaque text. The store also drives the picker
// dialogs, the host file manager and the user's editor for the notes it
// manages.
package notes
