package plan

import (
	"go/types"
	"path"
	"sort"
	"strconv"
)

// Standard library packages the generated code refers to by name.
const (
	importCmp     = "cmp"
	importFmt     = "fmt"
	importMaphash = "hash/maphash"
	importMath    = "math"
)

// importSet assigns collision-free local names to the packages referenced by
// a generated file.
type importSet struct {
	self   string
	byPath map[string]string // path -> local name
	byName map[string]string // local name -> path
	used   map[string]bool
	names  map[string]string // path -> declared package name
}

func newImportSet(self string) *importSet {
	s := &importSet{
		self:   self,
		byPath: make(map[string]string),
		byName: make(map[string]string),
		used:   make(map[string]bool),
		names:  make(map[string]string),
	}

	// reserve the names hard-coded in templates
	for _, p := range []string{importCmp, importFmt, importMaphash, importMath} {
		s.reserve(p, path.Base(p))
	}

	return s
}

func (s *importSet) reserve(pkgPath, name string) string {
	if local, ok := s.byPath[pkgPath]; ok {
		return local
	}

	local := name
	for n := 2; s.byName[local] != ""; n++ {
		local = name + strconv.Itoa(n)
	}

	s.byPath[pkgPath] = local
	s.byName[local] = pkgPath
	s.names[pkgPath] = name

	return local
}

// use marks pkgPath as imported and returns its local name.
func (s *importSet) use(pkgPath, name string) string {
	local := s.reserve(pkgPath, name)
	s.used[pkgPath] = true

	return local
}

// qualifier is a types.Qualifier recording every package it is asked about.
func (s *importSet) qualifier(pkg *types.Package) string {
	if pkg == nil || pkg.Path() == s.self {
		return ""
	}

	return s.use(pkg.Path(), pkg.Name())
}

// typeString renders t as written in the generated file.
func (s *importSet) typeString(t types.Type) string {
	return types.TypeString(t, s.qualifier)
}

// list returns the used imports sorted by path.
func (s *importSet) list() []Import {
	imports := make([]Import, 0, len(s.used))
	for p := range s.used {
		imp := Import{Path: p}
		if local := s.byPath[p]; local != s.names[p] {
			imp.Name = local
		}

		imports = append(imports, imp)
	}

	sort.Slice(imports, func(i, j int) bool {
		return imports[i].Path < imports[j].Path
	})

	return imports
}
