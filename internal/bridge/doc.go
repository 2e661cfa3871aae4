// Package bridge exposes the note store as the six named commands a host
// UI calls. Every failure crosses the boundary as a plain message string.
package bridge
