// Package target resolves the platform the code generator emits for: an
// operating-system family plus a pointer-width architecture. Detection is
// best-effort; an unidentifiable host degrades to a documented default with a
// warning instead of failing, so the compiler always starts.
package target

import (
	"fmt"
)

// Arch is the target pointer-width architecture.
type Arch uint8

const (
	X8632 Arch = iota
	X8664
)

func (a Arch) String() string {
	switch a {
	case X8632:
		return "x86-32"
	case X8664:
		return "x86-64"
	}
	return "unknown"
}

// ParseArch maps a manifest spelling onto an Arch. Unlike host detection,
// explicit spellings are checked strictly.
func ParseArch(s string) (Arch, error) {
	switch s {
	case "x86-32":
		return X8632, nil
	case "x86-64":
		return X8664, nil
	}
	return 0, fmt.Errorf("unknown architecture %q", s)
}

// PlatformName is the target operating-system family.
type PlatformName uint8

const (
	Linux PlatformName = iota
	Bsd
	Windows
	MacOS
)

func (p PlatformName) String() string {
	switch p {
	case Linux:
		return "Linux"
	case Bsd:
		return "BSD"
	case Windows:
		return "Windows"
	case MacOS:
		return "macOS"
	}
	return "unknown"
}

// ParsePlatformName maps a manifest spelling onto a PlatformName.
func ParsePlatformName(s string) (PlatformName, error) {
	switch s {
	case "linux":
		return Linux, nil
	case "bsd":
		return Bsd, nil
	case "windows":
		return Windows, nil
	case "macos":
		return MacOS, nil
	}
	return 0, fmt.Errorf("unknown platform %q", s)
}

// Platform pairs an OS family with an architecture. It is always fully
// populated: there is no "unknown" state, detection collapses to Default()
// component-wise instead.
type Platform struct {
	Name PlatformName
	Arch Arch
}

func (p Platform) String() string {
	return p.Name.String() + "/" + p.Arch.String()
}

// Default is the platform-independent baseline used by tests and as the
// fallback when host detection is inconclusive.
func Default() Platform {
	return Platform{Name: Linux, Arch: X8664}
}
