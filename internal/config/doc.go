// Package config provides configuration management for the minnote CLI.
//
// Two independent pieces of state are handled here.
//
// # App Configuration
//
// The app config file is searched as config.yaml or config.toml in the
// working directory, then in $MINNOTE_CONFIG_DIR, then in
// ~/.config/minnote/. Every key can be overridden by a MINNOTE_* environment
// variable, and a .env file in the working directory is loaded first:
//
//	version: 1
//	log_format: text          # text | json
//	picker: finder            # finder | prompt
//	text_extensions: [.txt, .md]
//	file_manager: ""          # default: xdg-open, open or explorer
//	editor: ""                # default: $EDITOR, $VISUAL, nano, vi
//
// # Notes Directory
//
// The active notes directory is not part of the app config. A [Resolver]
// reads it from the sidecar file (notes_dir.txt in the working directory) on
// every call and falls back to the platform data directory:
//
//	r := config.NewResolver()
//	root, err := r.NotesRoot()
//
// Nothing is cached; a directory persisted by one call is visible to the
// next.
package config
