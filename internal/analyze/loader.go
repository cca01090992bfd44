package analyze

import (
	"context"
	"go/types"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"wrapper-generator/internal/logger"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// lookupMode is used for packages referenced only by import path in a directive.
const lookupMode = packages.NeedName | packages.NeedTypes

// Loader loads Go packages and resolves packages referenced by directives.
type Loader struct {
	dir  string
	tags []string
	log  *zap.SugaredLogger

	mu    sync.Mutex
	cache map[string]*types.Package
}

// NewLoader creates a Loader that runs the go tool in dir with the given build tags.
func NewLoader(dir string, tags []string) *Loader {
	return &Loader{
		dir:   dir,
		tags:  tags,
		log:   logger.ComponentLogger("analyze"),
		cache: make(map[string]*types.Package),
	}
}

func (l *Loader) config(ctx context.Context, mode packages.LoadMode) *packages.Config {
	cfg := &packages.Config{
		Context: ctx,
		Mode:    mode,
		Dir:     l.dir,
	}

	if len(l.tags) > 0 {
		cfg.BuildFlags = []string{"-tags=" + strings.Join(l.tags, ",")}
	}

	return cfg
}

// Load loads the packages matching patterns. Packages that fail to list or
// parse are fatal; type errors are kept on the Package and logged.
func (l *Loader) Load(ctx context.Context, patterns ...string) ([]*Package, error) {
	pkgs, err := packages.Load(l.config(ctx, LoadMode), patterns...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load packages")
	}

	var fatal []error

	out := make([]*Package, 0, len(pkgs))
	for _, pkg := range pkgs {
		var typeErrs []error

		for _, e := range pkg.Errors {
			if e.Kind == packages.TypeError {
				typeErrs = append(typeErrs, e)
				continue
			}

			fatal = append(fatal, e)
		}

		if len(typeErrs) > 0 {
			l.log.Debugw("tolerating type errors", logger.FieldPackage, pkg.PkgPath, logger.FieldCount, len(typeErrs))
		}

		if pkg.Types != nil {
			l.remember(pkg.Types)
		}

		out = append(out, &Package{
			Path:       pkg.PkgPath,
			Name:       pkg.Name,
			Dir:        packageDir(pkg),
			Fset:       pkg.Fset,
			Files:      pkg.Syntax,
			Types:      pkg.Types,
			Info:       pkg.TypesInfo,
			TypeErrors: typeErrs,
		})
	}

	if len(fatal) > 0 {
		return nil, errors.WithHint(errors.Newf("package errors: %v", fatal),
			"make sure the patterns name buildable packages of the current module")
	}

	if len(out) == 0 {
		return nil, errors.Newf("no packages matched %s", strings.Join(patterns, " "))
	}

	l.log.Debugw("loaded packages", logger.FieldPattern, patterns, logger.FieldCount, len(out))

	return out, nil
}

func packageDir(pkg *packages.Package) string {
	switch {
	case len(pkg.GoFiles) > 0:
		return filepath.Dir(pkg.GoFiles[0])
	case len(pkg.CompiledGoFiles) > 0:
		return filepath.Dir(pkg.CompiledGoFiles[0])
	default:
		return ""
	}
}

// remember caches pkg and everything it imports, transitively.
func (l *Loader) remember(pkg *types.Package) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.rememberLocked(pkg)
}

func (l *Loader) rememberLocked(pkg *types.Package) {
	if _, ok := l.cache[pkg.Path()]; ok {
		return
	}

	l.cache[pkg.Path()] = pkg
	for _, imp := range pkg.Imports() {
		l.rememberLocked(imp)
	}
}

// Lookup returns the type-checked package with the given import path, loading
// it on first use. It is safe for concurrent use.
func (l *Loader) Lookup(path string) (*types.Package, error) {
	l.mu.Lock()
	if pkg, ok := l.cache[path]; ok {
		l.mu.Unlock()
		return pkg, nil
	}
	l.mu.Unlock()

	pkgs, err := packages.Load(l.config(context.Background(), lookupMode), path)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}

	if len(pkgs) != 1 || pkgs[0].Types == nil {
		return nil, errors.Newf("package %s not found", path)
	}

	for _, e := range pkgs[0].Errors {
		if e.Kind != packages.TypeError {
			return nil, errors.Wrapf(e, "package %s", path)
		}
	}

	l.remember(pkgs[0].Types)

	return pkgs[0].Types, nil
}
