// Package config provides the layout loader for mutrun.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/mutrun/internal/core/domain"
	"go.trai.ch/mutrun/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using an optional YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load returns the layout for cwd. Without an explicit path a missing
// domain.ConfigFileName yields the default layout rooted at cwd. The returned
// root is always absolute.
func (l *Loader) Load(cwd, path string) (domain.Layout, error) {
	explicit := path != ""
	if !explicit {
		path = domain.ConfigFileName
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}

	layout := domain.DefaultLayout()
	layout.Root = cwd

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	switch {
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// Defaults apply.
	case err != nil:
		return domain.Layout{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	default:
		if err := l.apply(&layout, data, filepath.Dir(path)); err != nil {
			return domain.Layout{}, zerr.With(err, "path", path)
		}
	}

	root, err := filepath.Abs(layout.Root)
	if err != nil {
		return domain.Layout{}, zerr.With(zerr.Wrap(err, domain.ErrFailedToGetRoot.Error()), "root", layout.Root)
	}
	layout.Root = root

	if err := layout.Validate(); err != nil {
		return domain.Layout{}, err
	}
	return layout, nil
}

func (l *Loader) apply(layout *domain.Layout, data []byte, configDir string) error {
	var cfg Configfile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	switch cfg.Version {
	case domain.ConfigVersion:
	case "":
		l.Logger.Warn("config file has no version, assuming " + domain.ConfigVersion)
	default:
		return zerr.With(domain.ErrUnsupportedConfigVersion, "version", cfg.Version)
	}

	if cfg.Root != nil {
		root := *cfg.Root
		if !filepath.IsAbs(root) {
			root = filepath.Join(configDir, root)
		}
		layout.Root = root
	}

	setString(&layout.SourceRoot, cfg.SourceRoot)
	setString(&layout.TestRoot, cfg.TestRoot)
	setString(&layout.CacheDirName, cfg.CacheDir)
	setString(&layout.BackupSuffix, cfg.BackupSuffix)
	setString(&layout.TestPrefix, cfg.TestPrefix)
	setString(&layout.EnvBinDir, cfg.EnvBinDir)

	if c := cfg.TypeChecker; c != nil {
		setString(&layout.TypeChecker.Tool, c.Tool)
		if c.Target != nil {
			layout.TypeChecker.Args = []string{*c.Target}
		}
	}

	if r := cfg.TestRunner; r != nil {
		setString(&layout.TestRunner.Tool, r.Tool)
		if r.Flags != nil {
			layout.TestRunner.Args = r.Flags
		}
	}

	if v := cfg.VCS; v != nil {
		if v.Command != nil {
			layout.StatusCommand = v.Command
		}
		if v.StatusWidth != nil {
			layout.StatusWidth = *v.StatusWidth
		}
	}

	return nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
