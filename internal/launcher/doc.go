// Package launcher starts external programs on behalf of minnote: the host
// file manager, which is started and left running, and the user's text
// editor, which runs attached to the terminal until it exits.
package launcher
