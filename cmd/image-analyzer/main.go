package main

import (
	"fmt"
	"log"
	"os"

	"github.com/darrenk196/image-analyzer/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const usage = `image-analyzer - MCP server for artist reference image processing

Usage: image-analyzer [options]

Options:
  --version, -v    Print version information
  --help, -h       Print this help message

Environment variables:
  IMAGE_ANALYZER_LOG_LEVEL=debug    Trace every request on stderr

This server communicates via MCP protocol over stdin/stdout.
Configure it in your MCP client.`

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("image-analyzer %s (built %s, commit %s)\n", Version, BuildTime, GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println(usage)
			return
		}
	}

	// stdout carries the protocol, so all logging goes to stderr.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	debug := os.Getenv("IMAGE_ANALYZER_LOG_LEVEL") == "debug"

	srv := server.New()
	srv.SetDebug(debug)
	if debug {
		log.Printf("image-analyzer %s starting (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
