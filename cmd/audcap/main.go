// SPDX-License-Identifier: EPL-2.0

// Command audcap captures fixed-length audio windows from live streams and
// media files.
//
// Usage:
//
//	audcap [flags] <command> [args]
//
// Commands:
//
//	stream  - Capture voiceprint and keyword windows from a live stream
//	file    - Capture one window from a media file
package main

import (
	"fmt"
	"os"

	"github.com/ik5/audcap/cmd/audcap/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
