// Package platform answers capability questions about the host: which rust
// target triple it is, and whether it can generate Xcode projects.
package platform

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/tauri-community/mobinit/pkg/shell"
)

// CanGenerateIosProjects reports whether this host can generate Xcode
// projects. Resolved once at startup; the orchestrator takes it as a flag so
// tests can exercise the iOS branch anywhere.
func CanGenerateIosProjects() bool {
	return runtime.GOOS == "darwin"
}

// Fallback triples for hosts without a rust toolchain on PATH.
var goTriples = map[string]string{
	"linux/amd64":   "x86_64-unknown-linux-gnu",
	"linux/arm64":   "aarch64-unknown-linux-gnu",
	"darwin/amd64":  "x86_64-apple-darwin",
	"darwin/arm64":  "aarch64-apple-darwin",
	"windows/amd64": "x86_64-pc-windows-msvc",
	"windows/arm64": "aarch64-pc-windows-msvc",
}

// HostTriple determines the host build-target triple. rustc is authoritative
// when present; otherwise the GOOS/GOARCH pair is mapped statically.
func HostTriple(ctx context.Context, runner shell.Runner) (string, error) {
	if shell.CommandPresent("rustc") {
		result, err := runner.Run(ctx, "rustc", []string{"-vV"}, shell.RunOptions{})
		if err != nil {
			return "", fmt.Errorf("rustc -vV: %w", err)
		}
		triple, err := parseHostLine(string(result.Stdout))
		if err != nil {
			return "", err
		}
		return triple, nil
	}

	key := runtime.GOOS + "/" + runtime.GOARCH
	triple, ok := goTriples[key]
	if !ok {
		return "", fmt.Errorf("no known target triple for host %s", key)
	}
	return triple, nil
}

func parseHostLine(output string) (string, error) {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if triple, found := strings.CutPrefix(line, "host:"); found {
			triple = strings.TrimSpace(triple)
			if triple != "" {
				return triple, nil
			}
		}
	}
	return "", fmt.Errorf("no host line in rustc -vV output")
}
