// Package paths provides centralized path handling for aiassisted.
//
// This package resolves the two families of locations the tool works with:
//
//   - The installed tree inside a project (<target>/.aiassisted) and the
//     files it always carries: the version marker and the manifest
//   - XDG Base Directory locations for user configuration and state
//
// # Environment Variables
//
// The package respects the following environment variables:
//
//   - AIASSISTED_CONFIG_DIR: Override XDG config directory (default: $XDG_CONFIG_HOME/aiassisted)
//   - AIASSISTED_STATE_DIR: Override XDG state directory (default: $XDG_STATE_HOME/aiassisted)
//
// # Usage
//
//	import "github.com/rstlix0x0/aiassisted/pkg/paths"
//
//	p, err := paths.New(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	p.InstallDir()   // /home/user/project/.aiassisted
//	p.ManifestFile() // /home/user/project/.aiassisted/FILES.txt
//	p.ConfigFile()   // $XDG_CONFIG_HOME/aiassisted/config.toml
package paths
