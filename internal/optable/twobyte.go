package optable

// twoByte is the 0f escape map. Entries without an explicit /sse selector
// are reached only when no mandatory prefix applies.
var twoByte = []def{
	d("0f 00 /reg=0", Sldt, mrwv),
	d("0f 00 /reg=1", Str, mrwv),
	d("0f 00 /reg=2", Lldt, ew),
	d("0f 00 /reg=3", Ltr, ew),
	d("0f 00 /reg=4", Verr, ew),
	d("0f 00 /reg=5", Verw, ew),
	d("0f 01 /mod=!11 /reg=0", Sgdt, mem),
	d("0f 01 /mod=!11 /reg=1", Sidt, mem),
	d("0f 01 /mod=!11 /reg=2", Lgdt, mem),
	d("0f 01 /mod=!11 /reg=3", Lidt, mem),
	d("0f 01 /mod=!11 /reg=4", Smsw, mw),
	d("0f 01 /mod=!11 /reg=6", Lmsw, mw),
	d("0f 01 /mod=!11 /reg=7", Invlpg, mem),
	d("0f 01 /mod=11 /reg=0 /rm=1 /vendor=intel", Vmcall),
	d("0f 01 /mod=11 /reg=0 /rm=2 /vendor=intel", Vmlaunch),
	d("0f 01 /mod=11 /reg=0 /rm=3 /vendor=intel", Vmresume),
	d("0f 01 /mod=11 /reg=0 /rm=4 /vendor=intel", Vmxoff),
	d("0f 01 /mod=11 /reg=1 /rm=0", Monitor),
	d("0f 01 /mod=11 /reg=1 /rm=1", Mwait),
	d("0f 01 /mod=11 /reg=1 /rm=2", Clac),
	d("0f 01 /mod=11 /reg=1 /rm=3", Stac),
	d("0f 01 /mod=11 /reg=2 /rm=0", Xgetbv),
	d("0f 01 /mod=11 /reg=2 /rm=1", Xsetbv),
	d("0f 01 /mod=11 /reg=2 /rm=5", Xend),
	d("0f 01 /mod=11 /reg=2 /rm=6", Xtest),
	d("0f 01 /mod=11 /reg=3 /rm=0 /vendor=amd", Vmrun),
	d("0f 01 /mod=11 /reg=3 /rm=1 /vendor=amd", Vmmcall),
	d("0f 01 /mod=11 /reg=3 /rm=2 /vendor=amd", Vmload),
	d("0f 01 /mod=11 /reg=3 /rm=3 /vendor=amd", Vmsave),
	d("0f 01 /mod=11 /reg=3 /rm=4 /vendor=amd", Stgi),
	d("0f 01 /mod=11 /reg=3 /rm=5 /vendor=amd", Clgi),
	d("0f 01 /mod=11 /reg=3 /rm=6 /vendor=amd", Skinit),
	d("0f 01 /mod=11 /reg=3 /rm=7 /vendor=amd", Invlpga),
	d("0f 01 /mod=11 /reg=4", Smsw, rv),
	d("0f 01 /mod=11 /reg=6", Lmsw, rw),
	d("0f 01 /mod=11 /reg=7 /rm=0", Swapgs),
	d("0f 01 /mod=11 /reg=7 /rm=1", Rdtscp),
	d("0f 02", Lar, gv, ew),
	d("0f 03", Lsl, gv, ew),
	d("0f 05 /m=!64 /vendor=amd", Syscall),
	d("0f 05 /m=64", Syscall),
	d("0f 06", Clts),
	d("0f 07 /m=!64 /vendor=amd", Sysret),
	d("0f 07 /m=64", Sysret),
	d("0f 08", Invd),
	d("0f 09", Wbinvd),
	d("0f 0b", Ud2),
	d("0f 0d /reg=0", Prefetch, mem),
	d("0f 0d /reg=1", Prefetchw, mem),
	d("0f 0e", Femms),

	d("0f 10", Movups, vx, wx),
	d("0f 10 /sse=f3", Movss, vx, wd),
	d("0f 10 /sse=66", Movupd, vx, wx),
	d("0f 10 /sse=f2", Movsd, vx, wq),
	d("0f 11", Movups, wx, vx),
	d("0f 11 /sse=f3", Movss, wd, vx),
	d("0f 11 /sse=66", Movupd, wx, vx),
	d("0f 11 /sse=f2", Movsd, wq, vx),
	d("0f 12 /mod=!11", Movlps, vx, mq),
	d("0f 12 /mod=11", Movhlps, vx, ux),
	d("0f 12 /sse=f3", Movsldup, vx, wx),
	d("0f 12 /sse=66", Movlpd, vx, mq),
	d("0f 12 /sse=f2", Movddup, vx, wq),
	d("0f 13", Movlps, mq, vx),
	d("0f 13 /sse=66", Movlpd, mq, vx),
	d("0f 14", Unpcklps, vx, wx),
	d("0f 14 /sse=66", Unpcklpd, vx, wx),
	d("0f 15", Unpckhps, vx, wx),
	d("0f 15 /sse=66", Unpckhpd, vx, wx),
	d("0f 16 /mod=!11", Movhps, vx, mq),
	d("0f 16 /mod=11", Movlhps, vx, ux),
	d("0f 16 /sse=f3", Movshdup, vx, wx),
	d("0f 16 /sse=66", Movhpd, vx, mq),
	d("0f 17", Movhps, mq, vx),
	d("0f 17 /sse=66", Movhpd, mq, vx),
	d("0f 18 /reg=0", Prefetchnta, mem),
	d("0f 18 /reg=1", Prefetcht0, mem),
	d("0f 18 /reg=2", Prefetcht1, mem),
	d("0f 18 /reg=3", Prefetcht2, mem),
	d("0f 1f /reg=0", Nop, ev),
	d("0f 20", Mov, rdq, cr),
	d("0f 21", Mov, rdq, dr),
	d("0f 22", Mov, cr, rdq),
	d("0f 23", Mov, dr, rdq),
	d("0f 28", Movaps, vx, wx),
	d("0f 28 /sse=66", Movapd, vx, wx),
	d("0f 29", Movaps, wx, vx),
	d("0f 29 /sse=66", Movapd, wx, vx),
	d("0f 2a", Cvtpi2ps, vx, qq),
	d("0f 2a /sse=f3", Cvtsi2ss, vx, ey),
	d("0f 2a /sse=66", Cvtpi2pd, vx, qq),
	d("0f 2a /sse=f2", Cvtsi2sd, vx, ey),
	d("0f 2b", Movntps, mo, vx),
	d("0f 2b /sse=66", Movntpd, mo, vx),
	d("0f 2c", Cvttps2pi, pq, wq),
	d("0f 2c /sse=f3", Cvttss2si, gy, wd),
	d("0f 2c /sse=66", Cvttpd2pi, pq, wx),
	d("0f 2c /sse=f2", Cvttsd2si, gy, wq),
	d("0f 2d", Cvtps2pi, pq, wq),
	d("0f 2d /sse=f3", Cvtss2si, gy, wd),
	d("0f 2d /sse=66", Cvtpd2pi, pq, wx),
	d("0f 2d /sse=f2", Cvtsd2si, gy, wq),
	d("0f 2e", Ucomiss, vx, wd),
	d("0f 2e /sse=66", Ucomisd, vx, wq),
	d("0f 2f", Comiss, vx, wd),
	d("0f 2f /sse=66", Comisd, vx, wq),
	d("0f 30", Wrmsr),
	d("0f 31", Rdtsc),
	d("0f 32", Rdmsr),
	d("0f 33", Rdpmc),
	d("0f 34 /m=!64", Sysenter),
	d("0f 34 /m=64 /vendor=intel", Sysenter),
	d("0f 35 /m=!64", Sysexit),
	d("0f 35 /m=64 /vendor=intel", Sysexit),
	d("0f 37", Getsec),

	d("0f 40", Cmovo, gv, ev),
	d("0f 41", Cmovno, gv, ev),
	d("0f 42", Cmovb, gv, ev),
	d("0f 43", Cmovae, gv, ev),
	d("0f 44", Cmovz, gv, ev),
	d("0f 45", Cmovnz, gv, ev),
	d("0f 46", Cmovbe, gv, ev),
	d("0f 47", Cmova, gv, ev),
	d("0f 48", Cmovs, gv, ev),
	d("0f 49", Cmovns, gv, ev),
	d("0f 4a", Cmovp, gv, ev),
	d("0f 4b", Cmovnp, gv, ev),
	d("0f 4c", Cmovl, gv, ev),
	d("0f 4d", Cmovge, gv, ev),
	d("0f 4e", Cmovle, gv, ev),
	d("0f 4f", Cmovg, gv, ev),

	d("0f 50", Movmskps, gd, ux),
	d("0f 50 /sse=66", Movmskpd, gd, ux),
	d("0f 51", Sqrtps, vx, wx),
	d("0f 51 /sse=f3", Sqrtss, vx, wd),
	d("0f 51 /sse=66", Sqrtpd, vx, wx),
	d("0f 51 /sse=f2", Sqrtsd, vx, wq),
	d("0f 52", Rsqrtps, vx, wx),
	d("0f 52 /sse=f3", Rsqrtss, vx, wd),
	d("0f 53", Rcpps, vx, wx),
	d("0f 53 /sse=f3", Rcpss, vx, wd),
	d("0f 54", Andps, vx, wx),
	d("0f 54 /sse=66", Andpd, vx, wx),
	d("0f 55", Andnps, vx, wx),
	d("0f 55 /sse=66", Andnpd, vx, wx),
	d("0f 56", Orps, vx, wx),
	d("0f 56 /sse=66", Orpd, vx, wx),
	d("0f 57", Xorps, vx, wx),
	d("0f 57 /sse=66", Xorpd, vx, wx),
	d("0f 58", Addps, vx, wx),
	d("0f 58 /sse=f3", Addss, vx, wd),
	d("0f 58 /sse=66", Addpd, vx, wx),
	d("0f 58 /sse=f2", Addsd, vx, wq),
	d("0f 59", Mulps, vx, wx),
	d("0f 59 /sse=f3", Mulss, vx, wd),
	d("0f 59 /sse=66", Mulpd, vx, wx),
	d("0f 59 /sse=f2", Mulsd, vx, wq),
	d("0f 5a", Cvtps2pd, vx, wq),
	d("0f 5a /sse=f3", Cvtss2sd, vx, wd),
	d("0f 5a /sse=66", Cvtpd2ps, vx, wx),
	d("0f 5a /sse=f2", Cvtsd2ss, vx, wq),
	d("0f 5b", Cvtdq2ps, vx, wx),
	d("0f 5b /sse=f3", Cvttps2dq, vx, wx),
	d("0f 5b /sse=66", Cvtps2dq, vx, wx),
	d("0f 5c", Subps, vx, wx),
	d("0f 5c /sse=f3", Subss, vx, wd),
	d("0f 5c /sse=66", Subpd, vx, wx),
	d("0f 5c /sse=f2", Subsd, vx, wq),
	d("0f 5d", Minps, vx, wx),
	d("0f 5d /sse=f3", Minss, vx, wd),
	d("0f 5d /sse=66", Minpd, vx, wx),
	d("0f 5d /sse=f2", Minsd, vx, wq),
	d("0f 5e", Divps, vx, wx),
	d("0f 5e /sse=f3", Divss, vx, wd),
	d("0f 5e /sse=66", Divpd, vx, wx),
	d("0f 5e /sse=f2", Divsd, vx, wq),
	d("0f 5f", Maxps, vx, wx),
	d("0f 5f /sse=f3", Maxss, vx, wd),
	d("0f 5f /sse=66", Maxpd, vx, wx),
	d("0f 5f /sse=f2", Maxsd, vx, wq),
	d("0f 60", Punpcklbw, pq, qd),
	d("0f 60 /sse=66", Punpcklbw, vx, wx),
	d("0f 61", Punpcklwd, pq, qd),
	d("0f 61 /sse=66", Punpcklwd, vx, wx),
	d("0f 62", Punpckldq, pq, qd),
	d("0f 62 /sse=66", Punpckldq, vx, wx),
	d("0f 63", Packsswb, pq, qq),
	d("0f 63 /sse=66", Packsswb, vx, wx),
	d("0f 64", Pcmpgtb, pq, qq),
	d("0f 64 /sse=66", Pcmpgtb, vx, wx),
	d("0f 65", Pcmpgtw, pq, qq),
	d("0f 65 /sse=66", Pcmpgtw, vx, wx),
	d("0f 66", Pcmpgtd, pq, qq),
	d("0f 66 /sse=66", Pcmpgtd, vx, wx),
	d("0f 67", Packuswb, pq, qq),
	d("0f 67 /sse=66", Packuswb, vx, wx),
	d("0f 68", Punpckhbw, pq, qq),
	d("0f 68 /sse=66", Punpckhbw, vx, wx),
	d("0f 69", Punpckhwd, pq, qq),
	d("0f 69 /sse=66", Punpckhwd, vx, wx),
	d("0f 6a", Punpckhdq, pq, qq),
	d("0f 6a /sse=66", Punpckhdq, vx, wx),
	d("0f 6b", Packssdw, pq, qq),
	d("0f 6b /sse=66", Packssdw, vx, wx),
	d("0f 6c /sse=66", Punpcklqdq, vx, wx),
	d("0f 6d /sse=66", Punpckhqdq, vx, wx),
	d("0f 6e", Movd, pq, ey),
	d("0f 6e /sse=66", Movd, vx, ey),
	d("0f 6f", Movq, pq, qq),
	d("0f 6f /sse=f3", Movdqu, vx, wx),
	d("0f 6f /sse=66", Movdqa, vx, wx),
	d("0f 70", Pshufw, pq, qq, ib),
	d("0f 70 /sse=f3", Pshufhw, vx, wx, ib),
	d("0f 70 /sse=66", Pshufd, vx, wx, ib),
	d("0f 70 /sse=f2", Pshuflw, vx, wx, ib),
	d("0f 71 /reg=2", Psrlw, nq, ib),
	d("0f 71 /reg=4", Psraw, nq, ib),
	d("0f 71 /reg=6", Psllw, nq, ib),
	d("0f 71 /sse=66 /reg=2", Psrlw, ux, ib),
	d("0f 71 /sse=66 /reg=4", Psraw, ux, ib),
	d("0f 71 /sse=66 /reg=6", Psllw, ux, ib),
	d("0f 72 /reg=2", Psrld, nq, ib),
	d("0f 72 /reg=4", Psrad, nq, ib),
	d("0f 72 /reg=6", Pslld, nq, ib),
	d("0f 72 /sse=66 /reg=2", Psrld, ux, ib),
	d("0f 72 /sse=66 /reg=4", Psrad, ux, ib),
	d("0f 72 /sse=66 /reg=6", Pslld, ux, ib),
	d("0f 73 /reg=2", Psrlq, nq, ib),
	d("0f 73 /reg=6", Psllq, nq, ib),
	d("0f 73 /sse=66 /reg=2", Psrlq, ux, ib),
	d("0f 73 /sse=66 /reg=3", Psrldq, ux, ib),
	d("0f 73 /sse=66 /reg=6", Psllq, ux, ib),
	d("0f 73 /sse=66 /reg=7", Pslldq, ux, ib),
	d("0f 74", Pcmpeqb, pq, qq),
	d("0f 74 /sse=66", Pcmpeqb, vx, wx),
	d("0f 75", Pcmpeqw, pq, qq),
	d("0f 75 /sse=66", Pcmpeqw, vx, wx),
	d("0f 76", Pcmpeqd, pq, qq),
	d("0f 76 /sse=66", Pcmpeqd, vx, wx),
	d("0f 77", Emms),
	d("0f 78", Vmread, erdq, grdq),
	d("0f 79", Vmwrite, grdq, erdq),
	d("0f 7c /sse=66", Haddpd, vx, wx),
	d("0f 7c /sse=f2", Haddps, vx, wx),
	d("0f 7d /sse=66", Hsubpd, vx, wx),
	d("0f 7d /sse=f2", Hsubps, vx, wx),
	d("0f 7e", Movd, ey, pq),
	d("0f 7e /sse=f3", Movq, vx, wq),
	d("0f 7e /sse=66", Movd, ey, vx),
	d("0f 7f", Movq, qq, pq),
	d("0f 7f /sse=f3", Movdqu, wx, vx),
	d("0f 7f /sse=66", Movdqa, wx, vx),

	d("0f 80", Jo, jz).p(PfxDef64),
	d("0f 81", Jno, jz).p(PfxDef64),
	d("0f 82", Jb, jz).p(PfxDef64),
	d("0f 83", Jae, jz).p(PfxDef64),
	d("0f 84", Jz, jz).p(PfxDef64),
	d("0f 85", Jnz, jz).p(PfxDef64),
	d("0f 86", Jbe, jz).p(PfxDef64),
	d("0f 87", Ja, jz).p(PfxDef64),
	d("0f 88", Js, jz).p(PfxDef64),
	d("0f 89", Jns, jz).p(PfxDef64),
	d("0f 8a", Jp, jz).p(PfxDef64),
	d("0f 8b", Jnp, jz).p(PfxDef64),
	d("0f 8c", Jl, jz).p(PfxDef64),
	d("0f 8d", Jge, jz).p(PfxDef64),
	d("0f 8e", Jle, jz).p(PfxDef64),
	d("0f 8f", Jg, jz).p(PfxDef64),
	d("0f 90", Seto, eb),
	d("0f 91", Setno, eb),
	d("0f 92", Setb, eb),
	d("0f 93", Setae, eb),
	d("0f 94", Setz, eb),
	d("0f 95", Setnz, eb),
	d("0f 96", Setbe, eb),
	d("0f 97", Seta, eb),
	d("0f 98", Sets, eb),
	d("0f 99", Setns, eb),
	d("0f 9a", Setp, eb),
	d("0f 9b", Setnp, eb),
	d("0f 9c", Setl, eb),
	d("0f 9d", Setge, eb),
	d("0f 9e", Setle, eb),
	d("0f 9f", Setg, eb),

	d("0f a0", Push, fs).p(PfxDef64),
	d("0f a1", Pop, fs).p(PfxDef64),
	d("0f a2", Cpuid),
	d("0f a3", Bt, ev, gv),
	d("0f a4", Shld, ev, gv, ib),
	d("0f a5", Shld, ev, gv, cl),
	d("0f a8", Push, gs).p(PfxDef64),
	d("0f a9", Pop, gs).p(PfxDef64),
	d("0f aa", Rsm),
	d("0f ab", Bts, ev, gv),
	d("0f ac", Shrd, ev, gv, ib),
	d("0f ad", Shrd, ev, gv, cl),
	d("0f ae /mod=!11 /reg=0", Fxsave, mem),
	d("0f ae /mod=!11 /reg=1", Fxrstor, mem),
	d("0f ae /mod=!11 /reg=2", Ldmxcsr, md),
	d("0f ae /mod=!11 /reg=3", Stmxcsr, md),
	d("0f ae /mod=!11 /reg=4", Xsave, mem),
	d("0f ae /mod=!11 /reg=5", Xrstor, mem),
	d("0f ae /mod=!11 /reg=6", Xsaveopt, mem),
	d("0f ae /mod=!11 /reg=7", Clflush, mb),
	d("0f ae /mod=11 /reg=5", Lfence),
	d("0f ae /mod=11 /reg=6", Mfence),
	d("0f ae /mod=11 /reg=7", Sfence),
	d("0f ae /sse=f3 /mod=11 /reg=0", Rdfsbase, ry),
	d("0f ae /sse=f3 /mod=11 /reg=1", Rdgsbase, ry),
	d("0f ae /sse=f3 /mod=11 /reg=2", Wrfsbase, ry),
	d("0f ae /sse=f3 /mod=11 /reg=3", Wrgsbase, ry),
	d("0f af", Imul, gv, ev),
	d("0f b0", Cmpxchg, eb, gb),
	d("0f b1", Cmpxchg, ev, gv),
	d("0f b2", Lss, gv, mem),
	d("0f b3", Btr, ev, gv),
	d("0f b4", Lfs, gz, mem),
	d("0f b5", Lgs, gz, mem),
	d("0f b6", Movzx, gv, eb),
	d("0f b7", Movzx, gv, ew),
	d("0f b8 /sse=f3", Popcnt, gv, ev),
	d("0f ba /reg=4", Bt, ev, ib),
	d("0f ba /reg=5", Bts, ev, ib),
	d("0f ba /reg=6", Btr, ev, ib),
	d("0f ba /reg=7", Btc, ev, ib),
	d("0f bb", Btc, ev, gv),
	d("0f bc", Bsf, gv, ev),
	d("0f bc /sse=f3", Tzcnt, gv, ev),
	d("0f bd", Bsr, gv, ev),
	d("0f bd /sse=f3", Lzcnt, gv, ev),
	d("0f be", Movsx, gv, eb),
	d("0f bf", Movsx, gv, ew),
	d("0f c0", Xadd, eb, gb),
	d("0f c1", Xadd, ev, gv),
	d("0f c2", Cmpps, vx, wx, ib),
	d("0f c2 /sse=f3", Cmpss, vx, wd, ib),
	d("0f c2 /sse=66", Cmppd, vx, wx, ib),
	d("0f c2 /sse=f2", Cmpsd, vx, wq, ib),
	d("0f c3", Movnti, my, gy),
	d("0f c4", Pinsrw, pq, mrwd, ib),
	d("0f c4 /sse=66", Pinsrw, vx, mrwd, ib),
	d("0f c5", Pextrw, gd, nq, ib),
	d("0f c5 /sse=66", Pextrw, gd, ux, ib),
	d("0f c6", Shufps, vx, wx, ib),
	d("0f c6 /sse=66", Shufpd, vx, wx, ib),
	d("0f c7 /mod=!11 /reg=1 /o=16", Cmpxchg8b, mq),
	d("0f c7 /mod=!11 /reg=1 /o=32", Cmpxchg8b, mq),
	d("0f c7 /mod=!11 /reg=1 /o=64", Cmpxchg16b, mo),
	d("0f c7 /mod=!11 /reg=6", Vmptrld, mq),
	d("0f c7 /mod=!11 /reg=7", Vmptrst, mq),
	d("0f c7 /mod=11 /reg=6", Rdrand, rv),
	d("0f c7 /mod=11 /reg=7", Rdseed, rv),
	d("0f c7 /sse=66 /mod=!11 /reg=6", Vmclear, mq),
	d("0f c7 /sse=f3 /mod=!11 /reg=6", Vmxon, mq),

	d("0f c8", Bswap, r0y),
	d("0f c9", Bswap, r1y),
	d("0f ca", Bswap, r2y),
	d("0f cb", Bswap, r3y),
	d("0f cc", Bswap, r4y),
	d("0f cd", Bswap, r5y),
	d("0f ce", Bswap, r6y),
	d("0f cf", Bswap, r7y),

	d("0f d0 /sse=66", Addsubpd, vx, wx),
	d("0f d0 /sse=f2", Addsubps, vx, wx),
	d("0f d1", Psrlw, pq, qq),
	d("0f d1 /sse=66", Psrlw, vx, wx),
	d("0f d2", Psrld, pq, qq),
	d("0f d2 /sse=66", Psrld, vx, wx),
	d("0f d3", Psrlq, pq, qq),
	d("0f d3 /sse=66", Psrlq, vx, wx),
	d("0f d4", Paddq, pq, qq),
	d("0f d4 /sse=66", Paddq, vx, wx),
	d("0f d5", Pmullw, pq, qq),
	d("0f d5 /sse=66", Pmullw, vx, wx),
	d("0f d6 /sse=66", Movq, wq, vx),
	d("0f d6 /sse=f3", Movq2dq, vx, nq),
	d("0f d6 /sse=f2", Movdq2q, pq, ux),
	d("0f d7", Pmovmskb, gd, nq),
	d("0f d7 /sse=66", Pmovmskb, gd, ux),
	d("0f d8", Psubusb, pq, qq),
	d("0f d8 /sse=66", Psubusb, vx, wx),
	d("0f d9", Psubusw, pq, qq),
	d("0f d9 /sse=66", Psubusw, vx, wx),
	d("0f da", Pminub, pq, qq),
	d("0f da /sse=66", Pminub, vx, wx),
	d("0f db", Pand, pq, qq),
	d("0f db /sse=66", Pand, vx, wx),
	d("0f dc", Paddusb, pq, qq),
	d("0f dc /sse=66", Paddusb, vx, wx),
	d("0f dd", Paddusw, pq, qq),
	d("0f dd /sse=66", Paddusw, vx, wx),
	d("0f de", Pmaxub, pq, qq),
	d("0f de /sse=66", Pmaxub, vx, wx),
	d("0f df", Pandn, pq, qq),
	d("0f df /sse=66", Pandn, vx, wx),
	d("0f e0", Pavgb, pq, qq),
	d("0f e0 /sse=66", Pavgb, vx, wx),
	d("0f e1", Psraw, pq, qq),
	d("0f e1 /sse=66", Psraw, vx, wx),
	d("0f e2", Psrad, pq, qq),
	d("0f e2 /sse=66", Psrad, vx, wx),
	d("0f e3", Pavgw, pq, qq),
	d("0f e3 /sse=66", Pavgw, vx, wx),
	d("0f e4", Pmulhuw, pq, qq),
	d("0f e4 /sse=66", Pmulhuw, vx, wx),
	d("0f e5", Pmulhw, pq, qq),
	d("0f e5 /sse=66", Pmulhw, vx, wx),
	d("0f e6 /sse=f3", Cvtdq2pd, vx, wq),
	d("0f e6 /sse=66", Cvttpd2dq, vx, wx),
	d("0f e6 /sse=f2", Cvtpd2dq, vx, wx),
	d("0f e7", Movntq, mq, pq),
	d("0f e7 /sse=66", Movntdq, mo, vx),
	d("0f e8", Psubsb, pq, qq),
	d("0f e8 /sse=66", Psubsb, vx, wx),
	d("0f e9", Psubsw, pq, qq),
	d("0f e9 /sse=66", Psubsw, vx, wx),
	d("0f ea", Pminsw, pq, qq),
	d("0f ea /sse=66", Pminsw, vx, wx),
	d("0f eb", Por, pq, qq),
	d("0f eb /sse=66", Por, vx, wx),
	d("0f ec", Paddsb, pq, qq),
	d("0f ec /sse=66", Paddsb, vx, wx),
	d("0f ed", Paddsw, pq, qq),
	d("0f ed /sse=66", Paddsw, vx, wx),
	d("0f ee", Pmaxsw, pq, qq),
	d("0f ee /sse=66", Pmaxsw, vx, wx),
	d("0f ef", Pxor, pq, qq),
	d("0f ef /sse=66", Pxor, vx, wx),
	d("0f f0 /sse=f2", Lddqu, vx, mo),
	d("0f f1", Psllw, pq, qq),
	d("0f f1 /sse=66", Psllw, vx, wx),
	d("0f f2", Pslld, pq, qq),
	d("0f f2 /sse=66", Pslld, vx, wx),
	d("0f f3", Psllq, pq, qq),
	d("0f f3 /sse=66", Psllq, vx, wx),
	d("0f f4", Pmuludq, pq, qq),
	d("0f f4 /sse=66", Pmuludq, vx, wx),
	d("0f f5", Pmaddwd, pq, qq),
	d("0f f5 /sse=66", Pmaddwd, vx, wx),
	d("0f f6", Psadbw, pq, qq),
	d("0f f6 /sse=66", Psadbw, vx, wx),
	d("0f f7", Maskmovq, pq, nq),
	d("0f f7 /sse=66", Maskmovdqu, vx, ux),
	d("0f f8", Psubb, pq, qq),
	d("0f f8 /sse=66", Psubb, vx, wx),
	d("0f f9", Psubw, pq, qq),
	d("0f f9 /sse=66", Psubw, vx, wx),
	d("0f fa", Psubd, pq, qq),
	d("0f fa /sse=66", Psubd, vx, wx),
	d("0f fb", Psubq, pq, qq),
	d("0f fb /sse=66", Psubq, vx, wx),
	d("0f fc", Paddb, pq, qq),
	d("0f fc /sse=66", Paddb, vx, wx),
	d("0f fd", Paddw, pq, qq),
	d("0f fd /sse=66", Paddw, vx, wx),
	d("0f fe", Paddd, pq, qq),
	d("0f fe /sse=66", Paddd, vx, wx),
}
