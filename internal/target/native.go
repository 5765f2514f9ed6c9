package target

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"

	"github.com/fatih/color"
)

var warnColor = color.New(color.FgYellow)

// Detect decides the target platform from host signals: an OS identifier in
// GOOS spelling and the host pointer width in bits. The two decisions are
// independent; whichever signal is inconclusive falls back to its Default()
// component and a warning is written to warn. Detection fallback is
// informational, never a compilation error.
func Detect(goos string, ptrBits int, warn io.Writer) Platform {
	var p Platform

	switch goos {
	case "freebsd", "dragonfly", "openbsd", "netbsd":
		p.Name = Bsd
	case "linux":
		p.Name = Linux
	case "windows":
		p.Name = Windows
	case "darwin":
		p.Name = MacOS
	default:
		p.Name = Default().Name
		warnf(warn, "failed to determine the native OS, assuming it's %s", p.Name)
	}

	switch ptrBits {
	case 32:
		p.Arch = X8632
	case 64:
		p.Arch = X8664
	default:
		p.Arch = Default().Arch
		warnf(warn, "failed to determine the native architecture, assuming it's %s", p.Arch)
	}

	return p
}

// Native resolves the platform of the host the compiler runs on. Warnings go
// to stderr. Total: always returns a fully populated Platform.
func Native() Platform {
	return Detect(runtime.GOOS, strconv.IntSize, os.Stderr)
}

func warnf(w io.Writer, format string, args ...any) {
	if w == nil {
		return
	}
	fmt.Fprintf(w, "%s %s\n", warnColor.Sprint("warning:"), fmt.Sprintf(format, args...))
}
