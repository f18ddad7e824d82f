package optable

// Mnemonic identifies an instruction. The zero value is Invalid.
type Mnemonic uint16

const (
	Invalid Mnemonic = iota
	Aaa
	Aad
	Aam
	Aas
	Adc
	Add
	Addpd
	Addps
	Addsd
	Addss
	Addsubpd
	Addsubps
	And
	Andnpd
	Andnps
	Andpd
	Andps
	Arpl
	Blendpd
	Blendps
	Blendvpd
	Blendvps
	Bound
	Bsf
	Bsr
	Bswap
	Bt
	Btc
	Btr
	Bts
	Call
	Cbw
	Cdq
	Cdqe
	Clac
	Clc
	Cld
	Clflush
	Clgi
	Cli
	Clts
	Cmc
	Cmova
	Cmovae
	Cmovb
	Cmovbe
	Cmovg
	Cmovge
	Cmovl
	Cmovle
	Cmovno
	Cmovnp
	Cmovns
	Cmovnz
	Cmovo
	Cmovp
	Cmovs
	Cmovz
	Cmp
	Cmppd
	Cmpps
	Cmpsb
	Cmpsd
	Cmpsq
	Cmpss
	Cmpsw
	Cmpxchg
	Cmpxchg16b
	Cmpxchg8b
	Comisd
	Comiss
	Cpuid
	Cqo
	Crc32
	Cvtdq2pd
	Cvtdq2ps
	Cvtpd2dq
	Cvtpd2pi
	Cvtpd2ps
	Cvtpi2pd
	Cvtpi2ps
	Cvtps2dq
	Cvtps2pd
	Cvtps2pi
	Cvtsd2si
	Cvtsd2ss
	Cvtsi2sd
	Cvtsi2ss
	Cvtss2sd
	Cvtss2si
	Cvttpd2dq
	Cvttpd2pi
	Cvttps2dq
	Cvttps2pi
	Cvttsd2si
	Cvttss2si
	Cwd
	Cwde
	Daa
	Das
	Dec
	Div
	Divpd
	Divps
	Divsd
	Divss
	Dppd
	Dpps
	Emms
	Enter
	Extractps
	F2xm1
	Fabs
	Fadd
	Faddp
	Fbld
	Fbstp
	Fchs
	Fcmovb
	Fcmovbe
	Fcmove
	Fcmovnb
	Fcmovnbe
	Fcmovne
	Fcmovnu
	Fcmovu
	Fcom
	Fcomi
	Fcomip
	Fcomp
	Fcompp
	Fcos
	Fdecstp
	Fdiv
	Fdivp
	Fdivr
	Fdivrp
	Femms
	Ffree
	Fiadd
	Ficom
	Ficomp
	Fidiv
	Fidivr
	Fild
	Fimul
	Fincstp
	Fist
	Fistp
	Fisttp
	Fisub
	Fisubr
	Fld
	Fld1
	Fldcw
	Fldenv
	Fldl2e
	Fldl2t
	Fldlg2
	Fldln2
	Fldpi
	Fldz
	Fmul
	Fmulp
	Fnclex
	Fninit
	Fnop
	Fnsave
	Fnstcw
	Fnstenv
	Fnstsw
	Fpatan
	Fprem
	Fprem1
	Fptan
	Frndint
	Frstor
	Fscale
	Fsin
	Fsincos
	Fsqrt
	Fst
	Fstp
	Fsub
	Fsubp
	Fsubr
	Fsubrp
	Ftst
	Fucom
	Fucomi
	Fucomip
	Fucomp
	Fucompp
	Fxam
	Fxch
	Fxrstor
	Fxsave
	Fxtract
	Fyl2x
	Fyl2xp1
	Getsec
	Haddpd
	Haddps
	Hlt
	Hsubpd
	Hsubps
	Idiv
	Imul
	In
	Inc
	Insb
	Insd
	Insertps
	Insw
	Int
	Int1
	Int3
	Into
	Invd
	Invept
	Invlpg
	Invlpga
	Invvpid
	Iretd
	Iretq
	Iretw
	Ja
	Jae
	Jb
	Jbe
	Jcxz
	Jecxz
	Jg
	Jge
	Jl
	Jle
	Jmp
	Jno
	Jnp
	Jns
	Jnz
	Jo
	Jp
	Jrcxz
	Js
	Jz
	Lahf
	Lar
	Lddqu
	Ldmxcsr
	Lds
	Lea
	Leave
	Les
	Lfence
	Lfs
	Lgdt
	Lgs
	Lidt
	Lldt
	Lmsw
	Lodsb
	Lodsd
	Lodsq
	Lodsw
	Loop
	Loope
	Loopne
	Lsl
	Lss
	Ltr
	Lzcnt
	Maskmovdqu
	Maskmovq
	Maxpd
	Maxps
	Maxsd
	Maxss
	Mfence
	Minpd
	Minps
	Minsd
	Minss
	Monitor
	Mov
	Movapd
	Movaps
	Movbe
	Movd
	Movddup
	Movdq2q
	Movdqa
	Movdqu
	Movhlps
	Movhpd
	Movhps
	Movlhps
	Movlpd
	Movlps
	Movmskpd
	Movmskps
	Movntdq
	Movntdqa
	Movnti
	Movntpd
	Movntps
	Movntq
	Movq
	Movq2dq
	Movsb
	Movsd
	Movshdup
	Movsldup
	Movsq
	Movss
	Movsw
	Movsx
	Movsxd
	Movupd
	Movups
	Movzx
	Mpsadbw
	Mul
	Mulpd
	Mulps
	Mulsd
	Mulss
	Mwait
	Neg
	Nop
	Not
	Or
	Orpd
	Orps
	Out
	Outsb
	Outsd
	Outsw
	Pabsb
	Pabsd
	Pabsw
	Packssdw
	Packsswb
	Packusdw
	Packuswb
	Paddb
	Paddd
	Paddq
	Paddsb
	Paddsw
	Paddusb
	Paddusw
	Paddw
	Palignr
	Pand
	Pandn
	Pause
	Pavgb
	Pavgusb
	Pavgw
	Pblendvb
	Pblendw
	Pclmulqdq
	Pcmpeqb
	Pcmpeqd
	Pcmpeqq
	Pcmpeqw
	Pcmpestri
	Pcmpestrm
	Pcmpgtb
	Pcmpgtd
	Pcmpgtq
	Pcmpgtw
	Pcmpistri
	Pcmpistrm
	Pextrb
	Pextrd
	Pextrq
	Pextrw
	Pf2id
	Pf2iw
	Pfacc
	Pfadd
	Pfcmpeq
	Pfcmpge
	Pfcmpgt
	Pfmax
	Pfmin
	Pfmul
	Pfnacc
	Pfpnacc
	Pfrcp
	Pfrcpit1
	Pfrcpit2
	Pfrsqit1
	Pfrsqrt
	Pfsub
	Pfsubr
	Phaddd
	Phaddsw
	Phaddw
	Phminposuw
	Phsubd
	Phsubsw
	Phsubw
	Pi2fd
	Pi2fw
	Pinsrb
	Pinsrd
	Pinsrq
	Pinsrw
	Pmaddubsw
	Pmaddwd
	Pmaxsb
	Pmaxsd
	Pmaxsw
	Pmaxub
	Pmaxud
	Pmaxuw
	Pminsb
	Pminsd
	Pminsw
	Pminub
	Pminud
	Pminuw
	Pmovmskb
	Pmovsxbd
	Pmovsxbq
	Pmovsxbw
	Pmovsxdq
	Pmovsxwd
	Pmovsxwq
	Pmovzxbd
	Pmovzxbq
	Pmovzxbw
	Pmovzxdq
	Pmovzxwd
	Pmovzxwq
	Pmuldq
	Pmulhrsw
	Pmulhrw
	Pmulhuw
	Pmulhw
	Pmulld
	Pmullw
	Pmuludq
	Pop
	Popa
	Popad
	Popcnt
	Popfd
	Popfq
	Popfw
	Por
	Prefetch
	Prefetchnta
	Prefetcht0
	Prefetcht1
	Prefetcht2
	Prefetchw
	Psadbw
	Pshufb
	Pshufd
	Pshufhw
	Pshuflw
	Pshufw
	Psignb
	Psignd
	Psignw
	Pslld
	Pslldq
	Psllq
	Psllw
	Psrad
	Psraw
	Psrld
	Psrldq
	Psrlq
	Psrlw
	Psubb
	Psubd
	Psubq
	Psubsb
	Psubsw
	Psubusb
	Psubusw
	Psubw
	Pswapd
	Ptest
	Punpckhbw
	Punpckhdq
	Punpckhqdq
	Punpckhwd
	Punpcklbw
	Punpckldq
	Punpcklqdq
	Punpcklwd
	Push
	Pusha
	Pushad
	Pushfd
	Pushfq
	Pushfw
	Pxor
	Rcl
	Rcpps
	Rcpss
	Rcr
	Rdfsbase
	Rdgsbase
	Rdmsr
	Rdpmc
	Rdrand
	Rdseed
	Rdtsc
	Rdtscp
	Ret
	Retf
	Rol
	Ror
	Roundpd
	Roundps
	Roundsd
	Roundss
	Rsm
	Rsqrtps
	Rsqrtss
	Sahf
	Salc
	Sar
	Sbb
	Scasb
	Scasd
	Scasq
	Scasw
	Seta
	Setae
	Setb
	Setbe
	Setg
	Setge
	Setl
	Setle
	Setno
	Setnp
	Setns
	Setnz
	Seto
	Setp
	Sets
	Setz
	Sfence
	Sgdt
	Shl
	Shld
	Shr
	Shrd
	Shufpd
	Shufps
	Sidt
	Skinit
	Sldt
	Smsw
	Sqrtpd
	Sqrtps
	Sqrtsd
	Sqrtss
	Stac
	Stc
	Std
	Stgi
	Sti
	Stmxcsr
	Stosb
	Stosd
	Stosq
	Stosw
	Str
	Sub
	Subpd
	Subps
	Subsd
	Subss
	Swapgs
	Syscall
	Sysenter
	Sysexit
	Sysret
	Test
	Tzcnt
	Ucomisd
	Ucomiss
	Ud2
	Unpckhpd
	Unpckhps
	Unpcklpd
	Unpcklps
	Verr
	Verw
	Vmcall
	Vmclear
	Vmlaunch
	Vmload
	Vmmcall
	Vmptrld
	Vmptrst
	Vmread
	Vmresume
	Vmrun
	Vmsave
	Vmwrite
	Vmxoff
	Vmxon
	Wait
	Wbinvd
	Wrfsbase
	Wrgsbase
	Wrmsr
	Xadd
	Xchg
	Xend
	Xgetbv
	Xlatb
	Xor
	Xorpd
	Xorps
	Xrstor
	Xsave
	Xsaveopt
	Xsetbv
	Xtest

	mnemonicCount
)

var mnemonicNames = [mnemonicCount]string{
	Invalid: "invalid",
	Aaa:         "aaa",
	Aad:         "aad",
	Aam:         "aam",
	Aas:         "aas",
	Adc:         "adc",
	Add:         "add",
	Addpd:       "addpd",
	Addps:       "addps",
	Addsd:       "addsd",
	Addss:       "addss",
	Addsubpd:    "addsubpd",
	Addsubps:    "addsubps",
	And:         "and",
	Andnpd:      "andnpd",
	Andnps:      "andnps",
	Andpd:       "andpd",
	Andps:       "andps",
	Arpl:        "arpl",
	Blendpd:     "blendpd",
	Blendps:     "blendps",
	Blendvpd:    "blendvpd",
	Blendvps:    "blendvps",
	Bound:       "bound",
	Bsf:         "bsf",
	Bsr:         "bsr",
	Bswap:       "bswap",
	Bt:          "bt",
	Btc:         "btc",
	Btr:         "btr",
	Bts:         "bts",
	Call:        "call",
	Cbw:         "cbw",
	Cdq:         "cdq",
	Cdqe:        "cdqe",
	Clac:        "clac",
	Clc:         "clc",
	Cld:         "cld",
	Clflush:     "clflush",
	Clgi:        "clgi",
	Cli:         "cli",
	Clts:        "clts",
	Cmc:         "cmc",
	Cmova:       "cmova",
	Cmovae:      "cmovae",
	Cmovb:       "cmovb",
	Cmovbe:      "cmovbe",
	Cmovg:       "cmovg",
	Cmovge:      "cmovge",
	Cmovl:       "cmovl",
	Cmovle:      "cmovle",
	Cmovno:      "cmovno",
	Cmovnp:      "cmovnp",
	Cmovns:      "cmovns",
	Cmovnz:      "cmovnz",
	Cmovo:       "cmovo",
	Cmovp:       "cmovp",
	Cmovs:       "cmovs",
	Cmovz:       "cmovz",
	Cmp:         "cmp",
	Cmppd:       "cmppd",
	Cmpps:       "cmpps",
	Cmpsb:       "cmpsb",
	Cmpsd:       "cmpsd",
	Cmpsq:       "cmpsq",
	Cmpss:       "cmpss",
	Cmpsw:       "cmpsw",
	Cmpxchg:     "cmpxchg",
	Cmpxchg16b:  "cmpxchg16b",
	Cmpxchg8b:   "cmpxchg8b",
	Comisd:      "comisd",
	Comiss:      "comiss",
	Cpuid:       "cpuid",
	Cqo:         "cqo",
	Crc32:       "crc32",
	Cvtdq2pd:    "cvtdq2pd",
	Cvtdq2ps:    "cvtdq2ps",
	Cvtpd2dq:    "cvtpd2dq",
	Cvtpd2pi:    "cvtpd2pi",
	Cvtpd2ps:    "cvtpd2ps",
	Cvtpi2pd:    "cvtpi2pd",
	Cvtpi2ps:    "cvtpi2ps",
	Cvtps2dq:    "cvtps2dq",
	Cvtps2pd:    "cvtps2pd",
	Cvtps2pi:    "cvtps2pi",
	Cvtsd2si:    "cvtsd2si",
	Cvtsd2ss:    "cvtsd2ss",
	Cvtsi2sd:    "cvtsi2sd",
	Cvtsi2ss:    "cvtsi2ss",
	Cvtss2sd:    "cvtss2sd",
	Cvtss2si:    "cvtss2si",
	Cvttpd2dq:   "cvttpd2dq",
	Cvttpd2pi:   "cvttpd2pi",
	Cvttps2dq:   "cvttps2dq",
	Cvttps2pi:   "cvttps2pi",
	Cvttsd2si:   "cvttsd2si",
	Cvttss2si:   "cvttss2si",
	Cwd:         "cwd",
	Cwde:        "cwde",
	Daa:         "daa",
	Das:         "das",
	Dec:         "dec",
	Div:         "div",
	Divpd:       "divpd",
	Divps:       "divps",
	Divsd:       "divsd",
	Divss:       "divss",
	Dppd:        "dppd",
	Dpps:        "dpps",
	Emms:        "emms",
	Enter:       "enter",
	Extractps:   "extractps",
	F2xm1:       "f2xm1",
	Fabs:        "fabs",
	Fadd:        "fadd",
	Faddp:       "faddp",
	Fbld:        "fbld",
	Fbstp:       "fbstp",
	Fchs:        "fchs",
	Fcmovb:      "fcmovb",
	Fcmovbe:     "fcmovbe",
	Fcmove:      "fcmove",
	Fcmovnb:     "fcmovnb",
	Fcmovnbe:    "fcmovnbe",
	Fcmovne:     "fcmovne",
	Fcmovnu:     "fcmovnu",
	Fcmovu:      "fcmovu",
	Fcom:        "fcom",
	Fcomi:       "fcomi",
	Fcomip:      "fcomip",
	Fcomp:       "fcomp",
	Fcompp:      "fcompp",
	Fcos:        "fcos",
	Fdecstp:     "fdecstp",
	Fdiv:        "fdiv",
	Fdivp:       "fdivp",
	Fdivr:       "fdivr",
	Fdivrp:      "fdivrp",
	Femms:       "femms",
	Ffree:       "ffree",
	Fiadd:       "fiadd",
	Ficom:       "ficom",
	Ficomp:      "ficomp",
	Fidiv:       "fidiv",
	Fidivr:      "fidivr",
	Fild:        "fild",
	Fimul:       "fimul",
	Fincstp:     "fincstp",
	Fist:        "fist",
	Fistp:       "fistp",
	Fisttp:      "fisttp",
	Fisub:       "fisub",
	Fisubr:      "fisubr",
	Fld:         "fld",
	Fld1:        "fld1",
	Fldcw:       "fldcw",
	Fldenv:      "fldenv",
	Fldl2e:      "fldl2e",
	Fldl2t:      "fldl2t",
	Fldlg2:      "fldlg2",
	Fldln2:      "fldln2",
	Fldpi:       "fldpi",
	Fldz:        "fldz",
	Fmul:        "fmul",
	Fmulp:       "fmulp",
	Fnclex:      "fnclex",
	Fninit:      "fninit",
	Fnop:        "fnop",
	Fnsave:      "fnsave",
	Fnstcw:      "fnstcw",
	Fnstenv:     "fnstenv",
	Fnstsw:      "fnstsw",
	Fpatan:      "fpatan",
	Fprem:       "fprem",
	Fprem1:      "fprem1",
	Fptan:       "fptan",
	Frndint:     "frndint",
	Frstor:      "frstor",
	Fscale:      "fscale",
	Fsin:        "fsin",
	Fsincos:     "fsincos",
	Fsqrt:       "fsqrt",
	Fst:         "fst",
	Fstp:        "fstp",
	Fsub:        "fsub",
	Fsubp:       "fsubp",
	Fsubr:       "fsubr",
	Fsubrp:      "fsubrp",
	Ftst:        "ftst",
	Fucom:       "fucom",
	Fucomi:      "fucomi",
	Fucomip:     "fucomip",
	Fucomp:      "fucomp",
	Fucompp:     "fucompp",
	Fxam:        "fxam",
	Fxch:        "fxch",
	Fxrstor:     "fxrstor",
	Fxsave:      "fxsave",
	Fxtract:     "fxtract",
	Fyl2x:       "fyl2x",
	Fyl2xp1:     "fyl2xp1",
	Getsec:      "getsec",
	Haddpd:      "haddpd",
	Haddps:      "haddps",
	Hlt:         "hlt",
	Hsubpd:      "hsubpd",
	Hsubps:      "hsubps",
	Idiv:        "idiv",
	Imul:        "imul",
	In:          "in",
	Inc:         "inc",
	Insb:        "insb",
	Insd:        "insd",
	Insertps:    "insertps",
	Insw:        "insw",
	Int:         "int",
	Int1:        "int1",
	Int3:        "int3",
	Into:        "into",
	Invd:        "invd",
	Invept:      "invept",
	Invlpg:      "invlpg",
	Invlpga:     "invlpga",
	Invvpid:     "invvpid",
	Iretd:       "iretd",
	Iretq:       "iretq",
	Iretw:       "iretw",
	Ja:          "ja",
	Jae:         "jae",
	Jb:          "jb",
	Jbe:         "jbe",
	Jcxz:        "jcxz",
	Jecxz:       "jecxz",
	Jg:          "jg",
	Jge:         "jge",
	Jl:          "jl",
	Jle:         "jle",
	Jmp:         "jmp",
	Jno:         "jno",
	Jnp:         "jnp",
	Jns:         "jns",
	Jnz:         "jnz",
	Jo:          "jo",
	Jp:          "jp",
	Jrcxz:       "jrcxz",
	Js:          "js",
	Jz:          "jz",
	Lahf:        "lahf",
	Lar:         "lar",
	Lddqu:       "lddqu",
	Ldmxcsr:     "ldmxcsr",
	Lds:         "lds",
	Lea:         "lea",
	Leave:       "leave",
	Les:         "les",
	Lfence:      "lfence",
	Lfs:         "lfs",
	Lgdt:        "lgdt",
	Lgs:         "lgs",
	Lidt:        "lidt",
	Lldt:        "lldt",
	Lmsw:        "lmsw",
	Lodsb:       "lodsb",
	Lodsd:       "lodsd",
	Lodsq:       "lodsq",
	Lodsw:       "lodsw",
	Loop:        "loop",
	Loope:       "loope",
	Loopne:      "loopne",
	Lsl:         "lsl",
	Lss:         "lss",
	Ltr:         "ltr",
	Lzcnt:       "lzcnt",
	Maskmovdqu:  "maskmovdqu",
	Maskmovq:    "maskmovq",
	Maxpd:       "maxpd",
	Maxps:       "maxps",
	Maxsd:       "maxsd",
	Maxss:       "maxss",
	Mfence:      "mfence",
	Minpd:       "minpd",
	Minps:       "minps",
	Minsd:       "minsd",
	Minss:       "minss",
	Monitor:     "monitor",
	Mov:         "mov",
	Movapd:      "movapd",
	Movaps:      "movaps",
	Movbe:       "movbe",
	Movd:        "movd",
	Movddup:     "movddup",
	Movdq2q:     "movdq2q",
	Movdqa:      "movdqa",
	Movdqu:      "movdqu",
	Movhlps:     "movhlps",
	Movhpd:      "movhpd",
	Movhps:      "movhps",
	Movlhps:     "movlhps",
	Movlpd:      "movlpd",
	Movlps:      "movlps",
	Movmskpd:    "movmskpd",
	Movmskps:    "movmskps",
	Movntdq:     "movntdq",
	Movntdqa:    "movntdqa",
	Movnti:      "movnti",
	Movntpd:     "movntpd",
	Movntps:     "movntps",
	Movntq:      "movntq",
	Movq:        "movq",
	Movq2dq:     "movq2dq",
	Movsb:       "movsb",
	Movsd:       "movsd",
	Movshdup:    "movshdup",
	Movsldup:    "movsldup",
	Movsq:       "movsq",
	Movss:       "movss",
	Movsw:       "movsw",
	Movsx:       "movsx",
	Movsxd:      "movsxd",
	Movupd:      "movupd",
	Movups:      "movups",
	Movzx:       "movzx",
	Mpsadbw:     "mpsadbw",
	Mul:         "mul",
	Mulpd:       "mulpd",
	Mulps:       "mulps",
	Mulsd:       "mulsd",
	Mulss:       "mulss",
	Mwait:       "mwait",
	Neg:         "neg",
	Nop:         "nop",
	Not:         "not",
	Or:          "or",
	Orpd:        "orpd",
	Orps:        "orps",
	Out:         "out",
	Outsb:       "outsb",
	Outsd:       "outsd",
	Outsw:       "outsw",
	Pabsb:       "pabsb",
	Pabsd:       "pabsd",
	Pabsw:       "pabsw",
	Packssdw:    "packssdw",
	Packsswb:    "packsswb",
	Packusdw:    "packusdw",
	Packuswb:    "packuswb",
	Paddb:       "paddb",
	Paddd:       "paddd",
	Paddq:       "paddq",
	Paddsb:      "paddsb",
	Paddsw:      "paddsw",
	Paddusb:     "paddusb",
	Paddusw:     "paddusw",
	Paddw:       "paddw",
	Palignr:     "palignr",
	Pand:        "pand",
	Pandn:       "pandn",
	Pause:       "pause",
	Pavgb:       "pavgb",
	Pavgusb:     "pavgusb",
	Pavgw:       "pavgw",
	Pblendvb:    "pblendvb",
	Pblendw:     "pblendw",
	Pclmulqdq:   "pclmulqdq",
	Pcmpeqb:     "pcmpeqb",
	Pcmpeqd:     "pcmpeqd",
	Pcmpeqq:     "pcmpeqq",
	Pcmpeqw:     "pcmpeqw",
	Pcmpestri:   "pcmpestri",
	Pcmpestrm:   "pcmpestrm",
	Pcmpgtb:     "pcmpgtb",
	Pcmpgtd:     "pcmpgtd",
	Pcmpgtq:     "pcmpgtq",
	Pcmpgtw:     "pcmpgtw",
	Pcmpistri:   "pcmpistri",
	Pcmpistrm:   "pcmpistrm",
	Pextrb:      "pextrb",
	Pextrd:      "pextrd",
	Pextrq:      "pextrq",
	Pextrw:      "pextrw",
	Pf2id:       "pf2id",
	Pf2iw:       "pf2iw",
	Pfacc:       "pfacc",
	Pfadd:       "pfadd",
	Pfcmpeq:     "pfcmpeq",
	Pfcmpge:     "pfcmpge",
	Pfcmpgt:     "pfcmpgt",
	Pfmax:       "pfmax",
	Pfmin:       "pfmin",
	Pfmul:       "pfmul",
	Pfnacc:      "pfnacc",
	Pfpnacc:     "pfpnacc",
	Pfrcp:       "pfrcp",
	Pfrcpit1:    "pfrcpit1",
	Pfrcpit2:    "pfrcpit2",
	Pfrsqit1:    "pfrsqit1",
	Pfrsqrt:     "pfrsqrt",
	Pfsub:       "pfsub",
	Pfsubr:      "pfsubr",
	Phaddd:      "phaddd",
	Phaddsw:     "phaddsw",
	Phaddw:      "phaddw",
	Phminposuw:  "phminposuw",
	Phsubd:      "phsubd",
	Phsubsw:     "phsubsw",
	Phsubw:      "phsubw",
	Pi2fd:       "pi2fd",
	Pi2fw:       "pi2fw",
	Pinsrb:      "pinsrb",
	Pinsrd:      "pinsrd",
	Pinsrq:      "pinsrq",
	Pinsrw:      "pinsrw",
	Pmaddubsw:   "pmaddubsw",
	Pmaddwd:     "pmaddwd",
	Pmaxsb:      "pmaxsb",
	Pmaxsd:      "pmaxsd",
	Pmaxsw:      "pmaxsw",
	Pmaxub:      "pmaxub",
	Pmaxud:      "pmaxud",
	Pmaxuw:      "pmaxuw",
	Pminsb:      "pminsb",
	Pminsd:      "pminsd",
	Pminsw:      "pminsw",
	Pminub:      "pminub",
	Pminud:      "pminud",
	Pminuw:      "pminuw",
	Pmovmskb:    "pmovmskb",
	Pmovsxbd:    "pmovsxbd",
	Pmovsxbq:    "pmovsxbq",
	Pmovsxbw:    "pmovsxbw",
	Pmovsxdq:    "pmovsxdq",
	Pmovsxwd:    "pmovsxwd",
	Pmovsxwq:    "pmovsxwq",
	Pmovzxbd:    "pmovzxbd",
	Pmovzxbq:    "pmovzxbq",
	Pmovzxbw:    "pmovzxbw",
	Pmovzxdq:    "pmovzxdq",
	Pmovzxwd:    "pmovzxwd",
	Pmovzxwq:    "pmovzxwq",
	Pmuldq:      "pmuldq",
	Pmulhrsw:    "pmulhrsw",
	Pmulhrw:     "pmulhrw",
	Pmulhuw:     "pmulhuw",
	Pmulhw:      "pmulhw",
	Pmulld:      "pmulld",
	Pmullw:      "pmullw",
	Pmuludq:     "pmuludq",
	Pop:         "pop",
	Popa:        "popa",
	Popad:       "popad",
	Popcnt:      "popcnt",
	Popfd:       "popfd",
	Popfq:       "popfq",
	Popfw:       "popfw",
	Por:         "por",
	Prefetch:    "prefetch",
	Prefetchnta: "prefetchnta",
	Prefetcht0:  "prefetcht0",
	Prefetcht1:  "prefetcht1",
	Prefetcht2:  "prefetcht2",
	Prefetchw:   "prefetchw",
	Psadbw:      "psadbw",
	Pshufb:      "pshufb",
	Pshufd:      "pshufd",
	Pshufhw:     "pshufhw",
	Pshuflw:     "pshuflw",
	Pshufw:      "pshufw",
	Psignb:      "psignb",
	Psignd:      "psignd",
	Psignw:      "psignw",
	Pslld:       "pslld",
	Pslldq:      "pslldq",
	Psllq:       "psllq",
	Psllw:       "psllw",
	Psrad:       "psrad",
	Psraw:       "psraw",
	Psrld:       "psrld",
	Psrldq:      "psrldq",
	Psrlq:       "psrlq",
	Psrlw:       "psrlw",
	Psubb:       "psubb",
	Psubd:       "psubd",
	Psubq:       "psubq",
	Psubsb:      "psubsb",
	Psubsw:      "psubsw",
	Psubusb:     "psubusb",
	Psubusw:     "psubusw",
	Psubw:       "psubw",
	Pswapd:      "pswapd",
	Ptest:       "ptest",
	Punpckhbw:   "punpckhbw",
	Punpckhdq:   "punpckhdq",
	Punpckhqdq:  "punpckhqdq",
	Punpckhwd:   "punpckhwd",
	Punpcklbw:   "punpcklbw",
	Punpckldq:   "punpckldq",
	Punpcklqdq:  "punpcklqdq",
	Punpcklwd:   "punpcklwd",
	Push:        "push",
	Pusha:       "pusha",
	Pushad:      "pushad",
	Pushfd:      "pushfd",
	Pushfq:      "pushfq",
	Pushfw:      "pushfw",
	Pxor:        "pxor",
	Rcl:         "rcl",
	Rcpps:       "rcpps",
	Rcpss:       "rcpss",
	Rcr:         "rcr",
	Rdfsbase:    "rdfsbase",
	Rdgsbase:    "rdgsbase",
	Rdmsr:       "rdmsr",
	Rdpmc:       "rdpmc",
	Rdrand:      "rdrand",
	Rdseed:      "rdseed",
	Rdtsc:       "rdtsc",
	Rdtscp:      "rdtscp",
	Ret:         "ret",
	Retf:        "retf",
	Rol:         "rol",
	Ror:         "ror",
	Roundpd:     "roundpd",
	Roundps:     "roundps",
	Roundsd:     "roundsd",
	Roundss:     "roundss",
	Rsm:         "rsm",
	Rsqrtps:     "rsqrtps",
	Rsqrtss:     "rsqrtss",
	Sahf:        "sahf",
	Salc:        "salc",
	Sar:         "sar",
	Sbb:         "sbb",
	Scasb:       "scasb",
	Scasd:       "scasd",
	Scasq:       "scasq",
	Scasw:       "scasw",
	Seta:        "seta",
	Setae:       "setae",
	Setb:        "setb",
	Setbe:       "setbe",
	Setg:        "setg",
	Setge:       "setge",
	Setl:        "setl",
	Setle:       "setle",
	Setno:       "setno",
	Setnp:       "setnp",
	Setns:       "setns",
	Setnz:       "setnz",
	Seto:        "seto",
	Setp:        "setp",
	Sets:        "sets",
	Setz:        "setz",
	Sfence:      "sfence",
	Sgdt:        "sgdt",
	Shl:         "shl",
	Shld:        "shld",
	Shr:         "shr",
	Shrd:        "shrd",
	Shufpd:      "shufpd",
	Shufps:      "shufps",
	Sidt:        "sidt",
	Skinit:      "skinit",
	Sldt:        "sldt",
	Smsw:        "smsw",
	Sqrtpd:      "sqrtpd",
	Sqrtps:      "sqrtps",
	Sqrtsd:      "sqrtsd",
	Sqrtss:      "sqrtss",
	Stac:        "stac",
	Stc:         "stc",
	Std:         "std",
	Stgi:        "stgi",
	Sti:         "sti",
	Stmxcsr:     "stmxcsr",
	Stosb:       "stosb",
	Stosd:       "stosd",
	Stosq:       "stosq",
	Stosw:       "stosw",
	Str:         "str",
	Sub:         "sub",
	Subpd:       "subpd",
	Subps:       "subps",
	Subsd:       "subsd",
	Subss:       "subss",
	Swapgs:      "swapgs",
	Syscall:     "syscall",
	Sysenter:    "sysenter",
	Sysexit:     "sysexit",
	Sysret:      "sysret",
	Test:        "test",
	Tzcnt:       "tzcnt",
	Ucomisd:     "ucomisd",
	Ucomiss:     "ucomiss",
	Ud2:         "ud2",
	Unpckhpd:    "unpckhpd",
	Unpckhps:    "unpckhps",
	Unpcklpd:    "unpcklpd",
	Unpcklps:    "unpcklps",
	Verr:        "verr",
	Verw:        "verw",
	Vmcall:      "vmcall",
	Vmclear:     "vmclear",
	Vmlaunch:    "vmlaunch",
	Vmload:      "vmload",
	Vmmcall:     "vmmcall",
	Vmptrld:     "vmptrld",
	Vmptrst:     "vmptrst",
	Vmread:      "vmread",
	Vmresume:    "vmresume",
	Vmrun:       "vmrun",
	Vmsave:      "vmsave",
	Vmwrite:     "vmwrite",
	Vmxoff:      "vmxoff",
	Vmxon:       "vmxon",
	Wait:        "wait",
	Wbinvd:      "wbinvd",
	Wrfsbase:    "wrfsbase",
	Wrgsbase:    "wrgsbase",
	Wrmsr:       "wrmsr",
	Xadd:        "xadd",
	Xchg:        "xchg",
	Xend:        "xend",
	Xgetbv:      "xgetbv",
	Xlatb:       "xlatb",
	Xor:         "xor",
	Xorpd:       "xorpd",
	Xorps:       "xorps",
	Xrstor:      "xrstor",
	Xsave:       "xsave",
	Xsaveopt:    "xsaveopt",
	Xsetbv:      "xsetbv",
	Xtest:       "xtest",
}

// String returns the lowercase assembler name of m.
func (m Mnemonic) String() string {
	if m < mnemonicCount {
		return mnemonicNames[m]
	}
	return "invalid"
}

// Mnemonics returns every defined mnemonic except Invalid, in declaration order.
func Mnemonics() []Mnemonic {
	out := make([]Mnemonic, 0, mnemonicCount-1)
	for m := Invalid + 1; m < mnemonicCount; m++ {
		out = append(out, m)
	}
	return out
}

// LookupMnemonic maps an assembler name back to its Mnemonic.
func LookupMnemonic(name string) (Mnemonic, bool) {
	m, ok := mnemonicByName[name]
	return m, ok
}

var mnemonicByName = func() map[string]Mnemonic {
	byName := make(map[string]Mnemonic, mnemonicCount)
	for m := Invalid; m < mnemonicCount; m++ {
		byName[mnemonicNames[m]] = m
	}
	return byName
}()
