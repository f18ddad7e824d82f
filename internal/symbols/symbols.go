// Package symbols maps addresses to symbol names for the disassembler's
// branch and memory operands.
package symbols

import (
	"sort"
	"strings"
	"sync"

	"github.com/ianlancetaylor/demangle"

	"x86dis/internal/elfx"
)

type Symbol struct {
	Name string
	Addr uint64
	Size uint64 // 0 when unknown; such symbols match their address only
}

// Table is an address-sorted symbol list. It is read-only after
// construction and safe for concurrent use.
type Table struct {
	syms     []Symbol
	demangle bool
	cache    *Cache
}

type Option func(*Table)

// WithDemangling renders C++ and Rust names in their source form, without
// parameter lists.
func WithDemangling(c *Cache) Option {
	return func(t *Table) {
		t.demangle = true
		t.cache = c
	}
}

// New builds a table. When several symbols share an address the first
// sized one wins.
func New(syms []Symbol, opts ...Option) *Table {
	t := &Table{}
	for _, o := range opts {
		o(t)
	}
	if t.demangle && t.cache == nil {
		t.cache = defaultCache
	}

	sorted := make([]Symbol, len(syms))
	copy(sorted, syms)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Addr < sorted[j].Addr })
	for _, s := range sorted {
		if n := len(t.syms); n > 0 && t.syms[n-1].Addr == s.Addr {
			if t.syms[n-1].Size == 0 && s.Size != 0 {
				t.syms[n-1] = s
			}
			continue
		}
		t.syms = append(t.syms, s)
	}
	return t
}

// FromImage collects the static, dynamic and PLT symbols of an ELF image.
func FromImage(im *elfx.Image, opts ...Option) *Table {
	var syms []Symbol
	for _, list := range [][]elfx.Symbol{im.Syms, im.Dynsyms, im.PLTSymbols()} {
		for _, s := range list {
			syms = append(syms, Symbol{Name: s.Name, Addr: s.Addr, Size: s.Size})
		}
	}
	return New(syms, opts...)
}

func (t *Table) Len() int { return len(t.syms) }

// Symbols returns the table in address order.
func (t *Table) Symbols() []Symbol { return t.syms }

// Lookup finds the symbol covering addr and the offset of addr into it.
func (t *Table) Lookup(addr uint64) (Symbol, int64, bool) {
	i := sort.Search(len(t.syms), func(i int) bool { return t.syms[i].Addr > addr }) - 1
	if i < 0 {
		return Symbol{}, 0, false
	}
	s := t.syms[i]
	off := addr - s.Addr
	if off != 0 && off >= s.Size {
		return Symbol{}, 0, false
	}
	return s, int64(off), true
}

// ResolveSymbol names addr for the disassembler.
func (t *Table) ResolveSymbol(addr uint64) (string, int64, bool) {
	s, off, ok := t.Lookup(addr)
	if !ok {
		return "", 0, false
	}
	return t.display(s.Name), off, true
}

// Label returns the name of the symbol starting exactly at addr.
func (t *Table) Label(addr uint64) (string, bool) {
	s, off, ok := t.Lookup(addr)
	if !ok || off != 0 {
		return "", false
	}
	return t.display(s.Name), true
}

func (t *Table) display(name string) string {
	if !t.demangle {
		return name
	}
	return stripFunctionParams(t.cache.Demangle(name))
}

func stripFunctionParams(sig string) string {
	if i := strings.Index(sig, "("); i > 0 {
		return sig[:i]
	}
	return sig
}

// Cache memoizes demangled names.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]string
	hits    map[string]int
}

var defaultCache = NewCache()

func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]string),
		hits:    make(map[string]int),
	}
}

// Demangle returns the source form of a mangled name, or the name itself
// when it is not mangled.
func (c *Cache) Demangle(mangled string) string {
	c.mu.RLock()
	cached, ok := c.entries[mangled]
	c.mu.RUnlock()
	if ok {
		c.mu.Lock()
		c.hits[mangled]++
		c.mu.Unlock()
		return cached
	}

	demangled := demangle.Filter(mangled, demangle.NoClones)

	c.mu.Lock()
	c.entries[mangled] = demangled
	c.mu.Unlock()
	return demangled
}

// Stats reports how many names are cached and how many lookups were served
// from the cache.
func (c *Cache) Stats() (entries, hits int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, n := range c.hits {
		hits += n
	}
	return len(c.entries), hits
}
