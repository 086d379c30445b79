package filesys

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"github.com/pelletier/go-toml"

	"pasnav/report"
)

// ConfigFileName is the optional project file looked for at the root.
const ConfigFileName = "pasnav.toml"

// tomlConfig represents the project file as it is encoded in TOML.
type tomlConfig struct {
	Extensions         []string `toml:"extensions"`
	Exclude            []string `toml:"exclude"`
	IncludeDirs        []string `toml:"include-dirs"`
	ResolveAcrossUnits bool     `toml:"resolve-across-units"`
}

// Config controls how a project tree is enumerated and analyzed.
type Config struct {
	// Extensions lists the file extensions treated as source files,
	// leading dot included.
	Extensions []string

	// IncludeDirs lists directories searched for include targets after
	// the including file's own directory.  Relative entries are taken
	// from the project root.
	IncludeDirs []string

	// ResolveAcrossUnits lets name lookups fall back to imported unit
	// interfaces once the local scope chain is exhausted.
	ResolveAcrossUnits bool

	exclude []glob.Glob
}

// DefaultConfig returns the configuration used when no project file
// exists.
func DefaultConfig() Config {
	return Config{Extensions: []string{".pas", ".pp", ".p", ".inc"}}
}

// LoadConfig reads the optional project file under rootPath.  A missing
// file yields the defaults; an unreadable or malformed one is fatal since
// analysis results would silently diverge from what the project asked for.
func LoadConfig(rootPath string) Config {
	cfg := DefaultConfig()

	buff, err := ioutil.ReadFile(filepath.Join(rootPath, ConfigFileName))
	if err != nil {
		if !os.IsNotExist(err) {
			report.ReportFatal("unable to read project file at `%s`: %s", rootPath, err.Error())
		}

		return cfg
	}

	tomlCfg := &tomlConfig{}
	if err := toml.Unmarshal(buff, tomlCfg); err != nil {
		report.ReportFatal("error parsing project file at `%s`: %s", rootPath, err.Error())
	}

	if len(tomlCfg.Extensions) > 0 {
		cfg.Extensions = nil
		for _, ext := range tomlCfg.Extensions {
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}

			cfg.Extensions = append(cfg.Extensions, ext)
		}
	}

	cfg.IncludeDirs = tomlCfg.IncludeDirs
	cfg.ResolveAcrossUnits = tomlCfg.ResolveAcrossUnits

	for _, pat := range tomlCfg.Exclude {
		g, err := glob.Compile(pat, '/')
		if err != nil {
			report.ReportFatal("invalid exclude pattern `%s`: %s", pat, err.Error())
		}

		cfg.exclude = append(cfg.exclude, g)
	}

	return cfg
}

// SourceExt reports whether ext names a source file extension.
func (c *Config) SourceExt(ext string) bool {
	for _, e := range c.Extensions {
		if strings.EqualFold(e, ext) {
			return true
		}
	}

	return false
}

// Excluded reports whether the root relative path matches an exclude
// pattern.  Patterns match against slash separated paths.
func (c *Config) Excluded(relPath string) bool {
	slashed := filepath.ToSlash(relPath)
	for _, g := range c.exclude {
		if g.Match(slashed) {
			return true
		}
	}

	return false
}
