package optable

import (
	"fmt"
	"strings"
)

// flagGroups maps compact flag records (one letter per flag, of sf zf af
// pf cf tf if df nt rf) to the mnemonics they describe.
var flagGroups = []struct {
	flags string
	mnems []Mnemonic
}{
	{"MMMMMM_____", []Mnemonic{
		Add, Adc, Sub, Sbb, Cmp, Neg, Xadd, Cmpxchg,
	}},
	{"MMMMM______", []Mnemonic{
		Inc, Dec,
	}},
	{"RMMUMR_____", []Mnemonic{
		And, Or, Xor, Test,
	}},
	{"MMMUMM_____", []Mnemonic{
		Shl, Shr, Sar,
	}},
	{"M____M_____", []Mnemonic{
		Rol, Ror, Rcl, Rcr,
	}},
	{"UMMUMM_____", []Mnemonic{
		Shld, Shrd,
	}},
	{"MUUUUM_____", []Mnemonic{
		Mul, Imul,
	}},
	{"UUUUUU_____", []Mnemonic{
		Div, Idiv,
	}},
	{"UU_UUM_____", []Mnemonic{
		Bt, Bts, Btr, Btc,
	}},
	{"UUMUUU_____", []Mnemonic{
		Bsf, Bsr,
	}},
	{"RRMRRR_____", []Mnemonic{
		Popcnt, Vmcall, Vmlaunch, Vmresume, Vmxoff, Vmptrld, Vmptrst, Vmclear,
		Vmxon, Vmread, Vmwrite, Invept, Invvpid,
	}},
	{"UUMUUM_____", []Mnemonic{
		Lzcnt, Tzcnt,
	}},
	{"UMMMMM_____", []Mnemonic{
		Daa, Das,
	}},
	{"UUUMUM_____", []Mnemonic{
		Aaa, Aas,
	}},
	{"UMMUMU_____", []Mnemonic{
		Aam, Aad,
	}},
	{"_____R_____", []Mnemonic{
		Clc,
	}},
	{"_____S_____", []Mnemonic{
		Stc,
	}},
	{"_____M_____", []Mnemonic{
		Cmc,
	}},
	{"_______R___", []Mnemonic{
		Cli,
	}},
	{"_______S___", []Mnemonic{
		Sti,
	}},
	{"________R__", []Mnemonic{
		Cld,
	}},
	{"________S__", []Mnemonic{
		Std,
	}},
	{"_MMMMM_____", []Mnemonic{
		Sahf,
	}},
	{"_TTTTT_____", []Mnemonic{
		Lahf,
	}},
	{"MMMMMMMMMM_", []Mnemonic{
		Popfw, Popfd, Popfq,
	}},
	{"TTTTTTTTTT_", []Mnemonic{
		Pushfw, Pushfd, Pushfq,
	}},
	{"PPPPPPPPPPP", []Mnemonic{
		Iretw, Iretd, Iretq, Rsm,
	}},
	{"______RR_R_", []Mnemonic{
		Int, Int3, Int1,
	}},
	{"T_____RR_R_", []Mnemonic{
		Into,
	}},
	{"MMMMMM__T__", []Mnemonic{
		Cmpsb, Cmpsw, Cmpsd, Cmpsq, Scasb, Scasw, Scasd, Scasq,
	}},
	{"________T__", []Mnemonic{
		Movsb, Movsw, Movsq, Stosb, Stosw, Stosd, Stosq, Lodsb, Lodsw, Lodsd,
		Lodsq, Insb, Insw, Insd, Outsb, Outsw, Outsd,
	}},
	{"RRMRMM_____", []Mnemonic{
		Comiss, Ucomiss, Comisd, Ucomisd, Fcomi, Fucomi, Fcomip, Fucomip,
	}},
	{"__M________", []Mnemonic{
		Cmpxchg8b, Cmpxchg16b, Lar, Lsl, Verr, Verw, Arpl,
	}},
	{"RRMRRM_____", []Mnemonic{
		Ptest,
	}},
	{"MMMRRM_____", []Mnemonic{
		Pcmpestri, Pcmpestrm, Pcmpistri, Pcmpistrm,
	}},
	{"RRRRRM_____", []Mnemonic{
		Rdrand, Rdseed,
	}},
	{"_____T_____", []Mnemonic{
		Salc, Jb, Cmovb, Setb, Jae, Cmovae, Setae, Fcmovb, Fcmovnb,
	}},
	{"__T________", []Mnemonic{
		Loope, Loopne, Jz, Cmovz, Setz, Jnz, Cmovnz, Setnz, Fcmove, Fcmovne,
	}},
	{"T__________", []Mnemonic{
		Jo, Cmovo, Seto, Jno, Cmovno, Setno,
	}},
	{"__T__T_____", []Mnemonic{
		Jbe, Cmovbe, Setbe, Ja, Cmova, Seta, Fcmovbe, Fcmovnbe,
	}},
	{"_T_________", []Mnemonic{
		Js, Cmovs, Sets, Jns, Cmovns, Setns,
	}},
	{"____T______", []Mnemonic{
		Jp, Cmovp, Setp, Jnp, Cmovnp, Setnp, Fcmovu, Fcmovnu,
	}},
	{"TT_________", []Mnemonic{
		Jl, Cmovl, Setl, Jge, Cmovge, Setge,
	}},
	{"TTT________", []Mnemonic{
		Jle, Cmovle, Setle, Jg, Cmovg, Setg,
	}},
}

// accessGroups lists operand access patterns, one word per operand. Anything
// not listed reads and writes its first operand and reads the rest.
var accessGroups = []struct {
	access string
	mnems  []Mnemonic
}{
	{"W R R", []Mnemonic{
		Bsf, Bsr, Cvtdq2pd, Cvtdq2ps, Cvtpd2dq, Cvtpd2pi, Cvtpd2ps, Cvtpi2pd,
		Cvtpi2ps, Cvtps2dq, Cvtps2pd, Cvtps2pi, Cvtsd2si, Cvtsd2ss, Cvtsi2sd,
		Cvtsi2ss, Cvtss2sd, Cvtss2si, Cvttpd2dq, Cvttpd2pi, Cvttps2dq, Cvttps2pi,
		Cvttsd2si, Cvttss2si, Extractps, Fbstp, Fist, Fistp, Fisttp, Fnsave,
		Fnstcw, Fnstenv, Fnstsw, Fst, Fstp, Fxsave, In, Lar, Lddqu, Lds, Lea, Les,
		Lfs, Lgs, Lsl, Lss, Lzcnt, Mov, Movapd, Movaps, Movbe, Movd, Movddup,
		Movdq2q, Movdqa, Movdqu, Movhlps, Movhpd, Movhps, Movlhps, Movlpd, Movlps,
		Movmskpd, Movmskps, Movntdq, Movntdqa, Movnti, Movntpd, Movntps, Movntq,
		Movq, Movq2dq, Movshdup, Movsldup, Movss, Movsx, Movsxd, Movupd, Movups,
		Movzx, Pabsb, Pabsd, Pabsw, Pextrb, Pextrd, Pextrq, Pextrw, Phminposuw,
		Pmovmskb, Pmovsxbd, Pmovsxbq, Pmovsxbw, Pmovsxdq, Pmovsxwd, Pmovsxwq,
		Pmovzxbd, Pmovzxbq, Pmovzxbw, Pmovzxdq, Pmovzxwd, Pmovzxwq, Pop, Popcnt,
		Pshufd, Pshufhw, Pshuflw, Pshufw, Rcpps, Rcpss, Rdfsbase, Rdgsbase, Rdrand,
		Rdseed, Roundpd, Roundps, Roundsd, Roundss, Rsqrtps, Rsqrtss, Seta, Setae,
		Setb, Setbe, Setg, Setge, Setl, Setle, Setno, Setnp, Setns, Setnz, Seto,
		Setp, Sets, Setz, Sgdt, Sidt, Sldt, Smsw, Sqrtpd, Sqrtps, Sqrtsd, Sqrtss,
		Stmxcsr, Str, Tzcnt, Vmptrst, Vmread, Xsave, Xsaveopt,
	}},
	{"R R R", []Mnemonic{
		Bound, Bt, Call, Clflush, Cmp, Comisd, Comiss, Div, Enter, Fbld, Fcom,
		Fcomi, Fcomip, Fcomp, Ffree, Ficom, Ficomp, Fild, Fld, Fldcw, Fldenv,
		Frstor, Fucom, Fucomi, Fucomip, Fucomp, Fxrstor, Idiv, Int, Invept, Invlpg,
		Invlpga, Invvpid, Ja, Jae, Jb, Jbe, Jcxz, Jecxz, Jg, Jge, Jl, Jle, Jmp,
		Jno, Jnp, Jns, Jnz, Jo, Jp, Jrcxz, Js, Jz, Ldmxcsr, Lgdt, Lidt, Lldt, Lmsw,
		Loop, Loope, Loopne, Ltr, Mul, Out, Pcmpestri, Pcmpestrm, Pcmpistri,
		Pcmpistrm, Prefetch, Prefetchnta, Prefetcht0, Prefetcht1, Prefetcht2,
		Prefetchw, Ptest, Push, Ret, Retf, Test, Ucomisd, Ucomiss, Verr, Verw,
		Vmclear, Vmptrld, Vmwrite, Vmxon, Wrfsbase, Wrgsbase, Xrstor,
	}},
	{"RW RW", []Mnemonic{
		Xchg, Xadd, Fxch,
	}},
	{"RW R", []Mnemonic{
		Cmpxchg,
	}},
}

// implicitRegs lists registers read or written without appearing as
// operands. Entries may override it.
var implicitRegs = map[Mnemonic]struct{ used, defined []Reg }{
	Push:       {regs(RSP), regs(RSP)},
	Pop:        {regs(RSP), regs(RSP)},
	Pusha:      {regs(RAX, RCX, RDX, RBX, RSP, RBP, RSI, RDI), regs(RSP)},
	Pushad:     {regs(RAX, RCX, RDX, RBX, RSP, RBP, RSI, RDI), regs(RSP)},
	Popa:       {regs(RSP), regs(RAX, RCX, RDX, RBX, RSP, RBP, RSI, RDI)},
	Popad:      {regs(RSP), regs(RAX, RCX, RDX, RBX, RSP, RBP, RSI, RDI)},
	Pushfw:     {regs(RSP), regs(RSP)},
	Pushfd:     {regs(RSP), regs(RSP)},
	Pushfq:     {regs(RSP), regs(RSP)},
	Popfw:      {regs(RSP), regs(RSP)},
	Popfd:      {regs(RSP), regs(RSP)},
	Popfq:      {regs(RSP), regs(RSP)},
	Call:       {regs(RSP), regs(RSP)},
	Ret:        {regs(RSP), regs(RSP)},
	Retf:       {regs(RSP), regs(RSP)},
	Iretw:      {regs(RSP), regs(RSP)},
	Iretd:      {regs(RSP), regs(RSP)},
	Iretq:      {regs(RSP), regs(RSP)},
	Enter:      {regs(RSP, RBP), regs(RSP, RBP)},
	Leave:      {regs(RSP, RBP), regs(RSP, RBP)},
	Mul:        {regs(RAX), regs(RAX, RDX)},
	Div:        {regs(RAX, RDX), regs(RAX, RDX)},
	Idiv:       {regs(RAX, RDX), regs(RAX, RDX)},
	Cbw:        {regs(RAX), regs(RAX)},
	Cwde:       {regs(RAX), regs(RAX)},
	Cdqe:       {regs(RAX), regs(RAX)},
	Cwd:        {regs(RAX), regs(RDX)},
	Cdq:        {regs(RAX), regs(RDX)},
	Cqo:        {regs(RAX), regs(RDX)},
	Movsb:      {regs(RSI, RDI), regs(RSI, RDI)},
	Movsw:      {regs(RSI, RDI), regs(RSI, RDI)},
	Movsq:      {regs(RSI, RDI), regs(RSI, RDI)},
	Cmpsb:      {regs(RSI, RDI), regs(RSI, RDI)},
	Cmpsw:      {regs(RSI, RDI), regs(RSI, RDI)},
	Cmpsq:      {regs(RSI, RDI), regs(RSI, RDI)},
	Stosb:      {regs(RAX, RDI), regs(RDI)},
	Stosw:      {regs(RAX, RDI), regs(RDI)},
	Stosd:      {regs(RAX, RDI), regs(RDI)},
	Stosq:      {regs(RAX, RDI), regs(RDI)},
	Lodsb:      {regs(RSI), regs(RAX, RSI)},
	Lodsw:      {regs(RSI), regs(RAX, RSI)},
	Lodsd:      {regs(RSI), regs(RAX, RSI)},
	Lodsq:      {regs(RSI), regs(RAX, RSI)},
	Scasb:      {regs(RAX, RDI), regs(RDI)},
	Scasw:      {regs(RAX, RDI), regs(RDI)},
	Scasd:      {regs(RAX, RDI), regs(RDI)},
	Scasq:      {regs(RAX, RDI), regs(RDI)},
	Insb:       {regs(RDX, RDI), regs(RDI)},
	Insw:       {regs(RDX, RDI), regs(RDI)},
	Insd:       {regs(RDX, RDI), regs(RDI)},
	Outsb:      {regs(RDX, RSI), regs(RSI)},
	Outsw:      {regs(RDX, RSI), regs(RSI)},
	Outsd:      {regs(RDX, RSI), regs(RSI)},
	Xlatb:      {regs(RAX, RBX), regs(RAX)},
	Loop:       {regs(RCX), regs(RCX)},
	Loope:      {regs(RCX), regs(RCX)},
	Loopne:     {regs(RCX), regs(RCX)},
	Jcxz:       {regs(RCX), nil},
	Jecxz:      {regs(RCX), nil},
	Jrcxz:      {regs(RCX), nil},
	Cpuid:      {regs(RAX, RCX), regs(RAX, RBX, RCX, RDX)},
	Rdtsc:      {nil, regs(RAX, RDX)},
	Rdtscp:     {nil, regs(RAX, RCX, RDX)},
	Rdmsr:      {regs(RCX), regs(RAX, RDX)},
	Wrmsr:      {regs(RAX, RCX, RDX), nil},
	Rdpmc:      {regs(RCX), regs(RAX, RDX)},
	Xgetbv:     {regs(RCX), regs(RAX, RDX)},
	Xsetbv:     {regs(RAX, RCX, RDX), nil},
	Syscall:    {nil, regs(RCX, R11)},
	Sysret:     {regs(RCX, R11), nil},
	Cmpxchg:    {regs(RAX), regs(RAX)},
	Cmpxchg8b:  {regs(RAX, RBX, RCX, RDX), regs(RAX, RDX)},
	Cmpxchg16b: {regs(RAX, RBX, RCX, RDX), regs(RAX, RDX)},
	Lahf:       {nil, regs(RAX)},
	Sahf:       {regs(RAX), nil},
	Salc:       {nil, regs(RAX)},
	Daa:        {regs(RAX), regs(RAX)},
	Das:        {regs(RAX), regs(RAX)},
	Aaa:        {regs(RAX), regs(RAX)},
	Aas:        {regs(RAX), regs(RAX)},
	Aam:        {regs(RAX), regs(RAX)},
	Aad:        {regs(RAX), regs(RAX)},
	Monitor:    {regs(RAX, RCX, RDX), nil},
	Mwait:      {regs(RAX, RCX), nil},
	Pcmpestri:  {regs(RAX, RDX), regs(RCX)},
	Pcmpestrm:  {regs(RAX, RDX), regs(XMM0)},
	Pcmpistri:  {nil, regs(RCX)},
	Pcmpistrm:  {nil, regs(XMM0)},
	Pblendvb:   {regs(XMM0), nil},
	Blendvps:   {regs(XMM0), nil},
	Blendvpd:   {regs(XMM0), nil},
	Maskmovq:   {regs(RDI), nil},
	Maskmovdqu: {regs(RDI), nil},
}

var (
	flagsByMnemonic  [mnemonicCount]Eflags
	accessByMnemonic [mnemonicCount]string
)

// loadMeta fills the per-mnemonic lookup arrays from the group tables.
func loadMeta(errs *[]error) {
	for _, g := range flagGroups {
		e, err := parseEflags(g.flags)
		if err != nil {
			*errs = append(*errs, err)
			continue
		}
		for _, m := range g.mnems {
			flagsByMnemonic[m] = e
		}
	}
	for _, g := range accessGroups {
		for _, m := range g.mnems {
			accessByMnemonic[m] = g.access
		}
	}
}

// MnemonicEflags returns the flag effects shared by every form of m.
func MnemonicEflags(m Mnemonic) Eflags {
	if m < mnemonicCount {
		return flagsByMnemonic[m]
	}
	return Eflags{}
}

// parseAccessPattern reads "W R R" style patterns. Missing trailing words
// default to R.
func parseAccessPattern(s string) ([4]Access, error) {
	out := [4]Access{AccessRW, AccessRead, AccessRead, AccessRead}
	if s == "" {
		return out, nil
	}
	for i, f := range strings.Fields(s) {
		if i >= len(out) {
			return out, fmt.Errorf("access %q: more than %d operands", s, len(out))
		}
		a, err := parseAccess(f)
		if err != nil {
			return out, err
		}
		out[i] = a
	}
	return out, nil
}
