package symbols

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"x86dis/internal/disasm"
)

func testTable(opts ...Option) *Table {
	return New([]Symbol{
		{Name: "helper", Addr: 0x1010, Size: 0x8},
		{Name: "main", Addr: 0x1000, Size: 0x10},
		{Name: "_start", Addr: 0x1000},
		{Name: "_ZN3foo3barEv", Addr: 0x1020, Size: 0x4},
		{Name: "marker", Addr: 0x2000},
	}, opts...)
}

func TestLookup(t *testing.T) {
	tab := testTable()
	require.Equal(t, 4, tab.Len())

	tests := []struct {
		addr uint64
		name string
		off  int64
		ok   bool
	}{
		{0x0fff, "", 0, false},
		{0x1000, "main", 0, true},
		{0x100f, "main", 0xf, true},
		{0x1010, "helper", 0, true},
		{0x1018, "", 0, false},
		{0x1023, "_ZN3foo3barEv", 3, true},
		{0x2000, "marker", 0, true},
		{0x2001, "", 0, false},
	}
	for _, tt := range tests {
		name, off, ok := tab.ResolveSymbol(tt.addr)
		require.Equal(t, tt.ok, ok, "%#x", tt.addr)
		require.Equal(t, tt.name, name, "%#x", tt.addr)
		require.Equal(t, tt.off, off, "%#x", tt.addr)
	}
}

func TestLabel(t *testing.T) {
	tab := testTable()
	name, ok := tab.Label(0x1010)
	require.True(t, ok)
	require.Equal(t, "helper", name)
	_, ok = tab.Label(0x1011)
	require.False(t, ok)
}

func TestDemangling(t *testing.T) {
	c := NewCache()
	tab := testTable(WithDemangling(c))

	name, off, ok := tab.ResolveSymbol(0x1021)
	require.True(t, ok)
	require.Equal(t, "foo::bar", name)
	require.Equal(t, int64(1), off)

	name, _, _ = tab.ResolveSymbol(0x1000)
	require.Equal(t, "main", name)

	tab.ResolveSymbol(0x1020)
	entries, hits := c.Stats()
	require.Equal(t, 2, entries)
	require.Equal(t, 1, hits)
}

func TestCacheConcurrent(t *testing.T) {
	c := NewCache()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Demangle("_ZN3foo3barEv")
			}
		}()
	}
	wg.Wait()
	entries, hits := c.Stats()
	require.Equal(t, 1, entries)
	require.GreaterOrEqual(t, hits, 792)
}

func TestTableDrivesDecoder(t *testing.T) {
	tab := New([]Symbol{{Name: "target", Addr: 0x15, Size: 0x20}})
	code := []byte{0xeb, 0x13, 0xe8, 0x18, 0x00, 0x00, 0x00}
	got := disasm.DecodeAll(code, 0, disasm.Options{Mode: 32, Syntax: disasm.SyntaxIntel, Resolver: tab})

	var text []string
	for _, in := range got {
		text = append(text, in.Text)
	}
	if diff := cmp.Diff([]string{"jmp target", "call target+10"}, text); diff != "" {
		t.Errorf("listing mismatch (-want +got):\n%s", diff)
	}
}
