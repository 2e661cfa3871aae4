// Package paths provides cross-platform path resolution for minnote.
//
// The package wraps github.com/adrg/xdg for XDG Base Directory
// compliance. Notes live under the data home, the app config file under the
// config home:
//
//	| Purpose       | Linux                     | macOS                                 |
//	|---------------|---------------------------|---------------------------------------|
//	| Notes         | ~/.local/share/minnote/   | ~/Library/Application Support/minnote |
//	| Config        | ~/.config/minnote/        | ~/Library/Application Support/minnote |
//
// The notes directory can be overridden per working directory through the
// sidecar file named by [SidecarFileName]; resolving that override is the
// job of the config package.
package paths
