package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"blang/internal/target"
)

// ErrManifestTargetIncomplete indicates that [target] names only one of
// os/arch. An explicit override must pin both components; partial overrides
// are almost always a stale manifest.
var ErrManifestTargetIncomplete = errors.New("manifest [target] must set both os and arch")

type manifest struct {
	Target struct {
		OS   string `toml:"os"`
		Arch string `toml:"arch"`
	} `toml:"target"`
	Limits struct {
		MaxIssues int `toml:"max-issues"`
	} `toml:"limits"`
}

// Load reads a b.toml manifest and applies it on top of Default(). A manifest
// without a [target] section keeps host-independent defaults; an explicit
// [target] must parse strictly — overrides, unlike detection, do not fall back.
func Load(path string) (Options, error) {
	opts := Default()

	var m manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return Options{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if meta.IsDefined("target") {
		if !meta.IsDefined("target", "os") || !meta.IsDefined("target", "arch") {
			return Options{}, fmt.Errorf("%s: %w", path, ErrManifestTargetIncomplete)
		}
		name, err := target.ParsePlatformName(m.Target.OS)
		if err != nil {
			return Options{}, fmt.Errorf("%s: %w", path, err)
		}
		arch, err := target.ParseArch(m.Target.Arch)
		if err != nil {
			return Options{}, fmt.Errorf("%s: %w", path, err)
		}
		opts.Target = target.Platform{Name: name, Arch: arch}
	}

	if meta.IsDefined("limits", "max-issues") && m.Limits.MaxIssues > 0 {
		opts.MaxIssues = m.Limits.MaxIssues
	}

	return opts, nil
}
