// ABOUTME: Help display for the pxrem CLI with grouped flags, examples, and environment status.
// ABOUTME: Provides printHelp for polished usage output and envStatus for override detection.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/2389-research/pxrem/config"
)

const rulerASCII = `
  |....|....|....|....|....|....|....|....|
  0   4px  8px  12px 16px            1rem
`

// envKeys lists the environment overrides shown in the help output.
var envKeys = []string{
	"PXREM_BASE_SIZE",
	"PXREM_ADDR",
	"PXREM_CLIPBOARD",
	"PXREM_COPY_WINDOW",
	"PXREM_LOG_LEVEL",
	"PXREM_LOG_FILE",
}

// printHelp writes a formatted help message to w, including usage patterns,
// grouped flags, examples, and environment status.
func printHelp(w io.Writer, ver string) {
	fmt.Fprint(w, rulerASCII)
	fmt.Fprintf(w, "pxrem %s - convert between px and rem units\n", ver)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  pxrem [flags]                       Interactive terminal UI")
	fmt.Fprintln(w, "  pxrem [flags] serve [-addr host:port]  Local web UI")
	fmt.Fprintln(w, "  pxrem [flags] convert [-copy] <value>  Convert one value (24px, 1.5rem, 24)")
	fmt.Fprintln(w, "  pxrem [flags] table [-format fmt]   Print the reference table")
	fmt.Fprintln(w, "  pxrem [flags] mcp                   MCP tool server on stdio")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Global Flags:")
	fmt.Fprintln(w, "  -base <px>            Base font size (default: 16)")
	fmt.Fprintln(w, "  -clipboard <mode>     auto, system, osc52, none (default: auto)")
	fmt.Fprintln(w, "  -config <file>        Config file (default: $XDG_CONFIG_HOME/pxrem/config.yaml)")
	fmt.Fprintln(w, "  -log-level <level>    none, debug, info, warn, error (default: info)")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Command Flags:")
	fmt.Fprintf(w, "  serve -addr <addr>    Listen address, loopback only (default: %s)\n", config.DefaultAddr)
	fmt.Fprintln(w, "  convert -copy         Also copy the result to the clipboard")
	fmt.Fprintln(w, "  table -format <fmt>   text, json, yaml, css (default: text)")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  -version              Print version and exit")
	fmt.Fprintln(w, "  -help                 Show this help")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  pxrem convert 24px")
	fmt.Fprintln(w, "  pxrem -base 10 convert -copy 1.5rem")
	fmt.Fprintln(w, "  pxrem table -format css")
	fmt.Fprintln(w, "  pxrem serve -addr 127.0.0.1:8080")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment:")
	for _, key := range envKeys {
		fmt.Fprintf(w, "  %-21s %s\n", key, envStatus(key))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Flags override the environment, which overrides the config file.")
}

// envStatus returns "[set]" if the named environment variable is non-empty,
// or "[not set]" otherwise.
func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "[set]"
	}
	return "[not set]"
}
