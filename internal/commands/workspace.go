package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/pennywise-dev/pennywise/internal/categories"
	"github.com/pennywise-dev/pennywise/internal/categorize"
	"github.com/pennywise-dev/pennywise/internal/config"
	"github.com/pennywise-dev/pennywise/internal/logger"
	"github.com/pennywise-dev/pennywise/internal/store"
)

// workspace is a loaded pennywise directory.
type workspace struct {
	root string
	cfg  *config.Config
	log  zerolog.Logger
}

func openWorkspace(repoDir string, stderr io.Writer) (*workspace, error) {
	root, err := filepath.Abs(repoDir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(root, config.FileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s is not a pennywise workspace (run pennywise init)", root)
		}
		return nil, err
	}
	config.ApplyEnv(cfg)

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	log := logger.New(stderr, level)
	if cfg.Log.Format == "json" {
		log = logger.NewWithWriter(stderr, level)
	}

	return &workspace{
		root: root,
		cfg:  cfg,
		log:  log.With().Str("workspace", root).Logger(),
	}, nil
}

func (w *workspace) dbPath() string {
	if filepath.IsAbs(w.cfg.Database.Path) {
		return w.cfg.Database.Path
	}
	return filepath.Join(w.root, w.cfg.Database.Path)
}

func (w *workspace) openStore() (*store.Store, error) {
	return store.Open(w.dbPath())
}

func (w *workspace) categories() (*categories.Service, error) {
	return categories.Load(w.root)
}

// index builds the keyword index from the workspace's enabled categories.
func (w *workspace) index() (*categorize.Index, error) {
	svc, err := w.categories()
	if err != nil {
		return nil, err
	}
	return w.indexFor(svc), nil
}

func (w *workspace) indexFor(svc *categories.Service) *categorize.Index {
	ix := categorize.Build(svc.Enabled(), categorize.DefaultRegistry())
	w.log.Debug().Int("keywords", ix.Len()).Msg("category index built")
	return ix
}
