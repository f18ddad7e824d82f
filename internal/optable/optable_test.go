package optable

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestBuildClean(t *testing.T) {
	for _, err := range BuildErrors() {
		t.Error(err)
	}
	require.NotEmpty(t, Entries())
}

func TestFind(t *testing.T) {
	tests := []struct {
		path   string
		want   Mnemonic
		vendor Vendor
	}{
		{"89", Mov, VendorAny},
		{"63 /m=64", Movsxd, VendorAny},
		{"63 /m=!64", Arpl, VendorAny},
		{"ff /reg=2", Call, VendorAny},
		{"0f 10", Movups, VendorAny},
		{"0f 10 /sse=f3", Movss, VendorAny},
		{"0f 10 /sse=f2", Movsd, VendorAny},
		// selectors may appear in any order
		{"0f 01 /rm=0 /reg=7 /mod=11", Swapgs, VendorAny},
		{"0f 01 /mod=11 /reg=3 /rm=0 /vendor=amd", Vmrun, VendorAMD},
		{"0f 05 /vendor=amd /m=!64", Syscall, VendorAMD},
		{"d9 /mod=11 /x87=2e", Fldz, VendorAny},
		{"0f 0f /3dnow=b4", Pfmul, VendorAny},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			e := Find(tt.path)
			require.NotNil(t, e)
			require.Equal(t, tt.want, e.Mnemonic)
			require.Equal(t, tt.vendor, e.Vendor)
		})
	}
}

func TestFindMissing(t *testing.T) {
	for _, path := range []string{"0f 04", "d9 /mod=11 /x87=22", "0f 01 /mod=11 /reg=3 /rm=0 /vendor=intel", "zz", "0f /bogus=1"} {
		require.Nil(t, Find(path), path)
	}
}

func TestCanonicalPath(t *testing.T) {
	e := Find("0f 01 /mod=11 /reg=7 /rm=0")
	require.NotNil(t, e)
	require.Equal(t, "0f 01 /sse=none /mod=11 /reg=7 /rm=0", e.Path)
}

func TestDerivedPrefix(t *testing.T) {
	tests := []struct {
		path    string
		has     Prefix
		hasNot  Prefix
		rexMask uint8
	}{
		{"89", PfxAso | PfxOso | PfxRexW | PfxRexR | PfxRexX | PfxRexB, 0, 0xf},
		{"88", PfxAso | PfxRexR | PfxRexX | PfxRexB, PfxOso | PfxRexW, 0x7},
		{"50", PfxRexB | PfxDef64 | PfxOso, 0, 0x9},
		{"06", PfxInv64, PfxRexB, 0},
		{"a4", PfxAso, PfxOso, 0},
		{"e8", PfxOso | PfxDef64, PfxRexB, 0},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			e := Find(tt.path)
			require.NotNil(t, e)
			require.True(t, e.Prefix.Has(tt.has), "prefix %#x lacks %#x", e.Prefix, tt.has)
			if tt.hasNot != 0 {
				require.Zero(t, e.Prefix&tt.hasNot, "prefix %#x has %#x", e.Prefix, tt.hasNot)
			}
			require.Equal(t, tt.rexMask, e.Prefix.RexMask())
		})
	}
}

func TestEntryMeta(t *testing.T) {
	add := Find("01")
	require.NotNil(t, add)
	require.Equal(t, "of:M sf:M zf:M af:M pf:M cf:M tf:_ if:_ df:_ nt:_ rf:_", add.Eflags.String())
	require.Equal(t, [4]Access{AccessRW, AccessRead}, add.Access)

	mov := Find("89")
	require.Equal(t, [4]Access{AccessWrite, AccessRead}, mov.Access)

	cmpe := Find("39")
	require.Equal(t, [4]Access{AccessRead, AccessRead}, cmpe.Access)

	push := Find("50")
	if diff := cmp.Diff([]Reg{RSP}, push.Used); diff != "" {
		t.Errorf("push used (-want +got):\n%s", diff)
	}
	require.Equal(t, []Flag{FlagOF, FlagSF, FlagZF, FlagAF, FlagPF, FlagCF}, add.Eflags.Affected())
}

func TestMnemonicNames(t *testing.T) {
	seen := map[string]Mnemonic{}
	for _, m := range Mnemonics() {
		name := m.String()
		require.NotEmpty(t, name, "mnemonic %d", m)
		if prev, dup := seen[name]; dup {
			t.Fatalf("%q used by %d and %d", name, prev, m)
		}
		seen[name] = m
		got, ok := LookupMnemonic(name)
		require.True(t, ok, name)
		require.Equal(t, m, got)
	}
	require.Equal(t, "invalid", Invalid.String())
	require.Equal(t, "pause", Pause.String())
}

func TestGPR(t *testing.T) {
	tests := []struct {
		size int
		num  int
		rex  bool
		want Reg
	}{
		{8, 4, false, AH},
		{8, 4, true, SPL},
		{8, 7, true, DIL},
		{8, 9, true, R9B},
		{16, 3, false, BX},
		{32, 15, true, R15D},
		{64, 0, false, RAX},
		{64, 12, true, R12},
	}
	for _, tt := range tests {
		got := GPR(tt.size, tt.num, tt.rex)
		require.Equal(t, tt.want, got, "GPR(%d, %d, %v)", tt.size, tt.num, tt.rex)
	}
	require.Equal(t, ClassGPR64, R12.Class())
	require.Equal(t, ClassXMM, XMM3.Class())
	require.Equal(t, "xmm3", XMM3.String())
}

func TestParseAccessPattern(t *testing.T) {
	got, err := parseAccessPattern("W")
	require.NoError(t, err)
	require.Equal(t, [4]Access{AccessWrite, AccessRead, AccessRead, AccessRead}, got)

	_, err = parseAccessPattern("R R R R R")
	require.Error(t, err)
	_, err = parseAccessPattern("X")
	require.Error(t, err)
}

func TestParseEflags(t *testing.T) {
	_, err := parseEflags("MM")
	require.Error(t, err)
	_, err = parseEflags("MMMMMM____?")
	require.Error(t, err)
	e, err := parseEflags("TTTTTT__T__")
	require.NoError(t, err)
	require.Equal(t, FlagTested, e[FlagDF])
}
