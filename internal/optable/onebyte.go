package optable

// oneByte is the primary opcode map, including the legacy groups.
var oneByte = []def{
	d("00", Add, eb, gb),
	d("01", Add, ev, gv),
	d("02", Add, gb, eb),
	d("03", Add, gv, ev),
	d("04", Add, al, ib),
	d("05", Add, accv, siz),
	d("06", Push, es).p(PfxInv64),
	d("07", Pop, es).p(PfxInv64),
	d("08", Or, eb, gb),
	d("09", Or, ev, gv),
	d("0a", Or, gb, eb),
	d("0b", Or, gv, ev),
	d("0c", Or, al, ib),
	d("0d", Or, accv, siz),
	d("0e", Push, cs).p(PfxInv64),
	d("10", Adc, eb, gb),
	d("11", Adc, ev, gv),
	d("12", Adc, gb, eb),
	d("13", Adc, gv, ev),
	d("14", Adc, al, ib),
	d("15", Adc, accv, siz),
	d("16", Push, ss).p(PfxInv64),
	d("17", Pop, ss).p(PfxInv64),
	d("18", Sbb, eb, gb),
	d("19", Sbb, ev, gv),
	d("1a", Sbb, gb, eb),
	d("1b", Sbb, gv, ev),
	d("1c", Sbb, al, ib),
	d("1d", Sbb, accv, siz),
	d("1e", Push, ds).p(PfxInv64),
	d("1f", Pop, ds).p(PfxInv64),
	d("20", And, eb, gb),
	d("21", And, ev, gv),
	d("22", And, gb, eb),
	d("23", And, gv, ev),
	d("24", And, al, ib),
	d("25", And, accv, siz),
	d("27", Daa).p(PfxInv64),
	d("28", Sub, eb, gb),
	d("29", Sub, ev, gv),
	d("2a", Sub, gb, eb),
	d("2b", Sub, gv, ev),
	d("2c", Sub, al, ib),
	d("2d", Sub, accv, siz),
	d("2f", Das).p(PfxInv64),
	d("30", Xor, eb, gb),
	d("31", Xor, ev, gv),
	d("32", Xor, gb, eb),
	d("33", Xor, gv, ev),
	d("34", Xor, al, ib),
	d("35", Xor, accv, siz),
	d("37", Aaa).p(PfxInv64),
	d("38", Cmp, eb, gb),
	d("39", Cmp, ev, gv),
	d("3a", Cmp, gb, eb),
	d("3b", Cmp, gv, ev),
	d("3c", Cmp, al, ib),
	d("3d", Cmp, accv, siz),
	d("3f", Aas).p(PfxInv64),

	d("40", Inc, r0v).p(PfxInv64),
	d("41", Inc, r1v).p(PfxInv64),
	d("42", Inc, r2v).p(PfxInv64),
	d("43", Inc, r3v).p(PfxInv64),
	d("44", Inc, r4v).p(PfxInv64),
	d("45", Inc, r5v).p(PfxInv64),
	d("46", Inc, r6v).p(PfxInv64),
	d("47", Inc, r7v).p(PfxInv64),
	d("48", Dec, r0v).p(PfxInv64),
	d("49", Dec, r1v).p(PfxInv64),
	d("4a", Dec, r2v).p(PfxInv64),
	d("4b", Dec, r3v).p(PfxInv64),
	d("4c", Dec, r4v).p(PfxInv64),
	d("4d", Dec, r5v).p(PfxInv64),
	d("4e", Dec, r6v).p(PfxInv64),
	d("4f", Dec, r7v).p(PfxInv64),
	d("50", Push, r0v).p(PfxDef64),
	d("51", Push, r1v).p(PfxDef64),
	d("52", Push, r2v).p(PfxDef64),
	d("53", Push, r3v).p(PfxDef64),
	d("54", Push, r4v).p(PfxDef64),
	d("55", Push, r5v).p(PfxDef64),
	d("56", Push, r6v).p(PfxDef64),
	d("57", Push, r7v).p(PfxDef64),
	d("58", Pop, r0v).p(PfxDef64),
	d("59", Pop, r1v).p(PfxDef64),
	d("5a", Pop, r2v).p(PfxDef64),
	d("5b", Pop, r3v).p(PfxDef64),
	d("5c", Pop, r4v).p(PfxDef64),
	d("5d", Pop, r5v).p(PfxDef64),
	d("5e", Pop, r6v).p(PfxDef64),
	d("5f", Pop, r7v).p(PfxDef64),

	d("60 /o=16", Pusha).p(PfxInv64),
	d("60 /o=32", Pushad).p(PfxInv64),
	d("61 /o=16", Popa).p(PfxInv64),
	d("61 /o=32", Popad).p(PfxInv64),
	d("62", Bound, gv, mem).p(PfxInv64),
	d("63 /m=!64", Arpl, ew, gw),
	d("63 /m=64", Movsxd, gv, ed),
	d("68", Push, siz).p(PfxDef64),
	d("69", Imul, gv, ev, siz),
	d("6a", Push, sib).p(PfxDef64),
	d("6b", Imul, gv, ev, sib),
	d("6c", Insb).p(PfxStr),
	d("6d /o=16", Insw).p(PfxStr),
	d("6d /o=32", Insd).p(PfxStr),
	d("6d /o=64", Insd).p(PfxStr),
	d("6e", Outsb).p(PfxStr|PfxSeg),
	d("6f /o=16", Outsw).p(PfxStr|PfxSeg),
	d("6f /o=32", Outsd).p(PfxStr|PfxSeg),
	d("6f /o=64", Outsd).p(PfxStr|PfxSeg),

	d("70", Jo, jb).p(PfxDef64),
	d("71", Jno, jb).p(PfxDef64),
	d("72", Jb, jb).p(PfxDef64),
	d("73", Jae, jb).p(PfxDef64),
	d("74", Jz, jb).p(PfxDef64),
	d("75", Jnz, jb).p(PfxDef64),
	d("76", Jbe, jb).p(PfxDef64),
	d("77", Ja, jb).p(PfxDef64),
	d("78", Js, jb).p(PfxDef64),
	d("79", Jns, jb).p(PfxDef64),
	d("7a", Jp, jb).p(PfxDef64),
	d("7b", Jnp, jb).p(PfxDef64),
	d("7c", Jl, jb).p(PfxDef64),
	d("7d", Jge, jb).p(PfxDef64),
	d("7e", Jle, jb).p(PfxDef64),
	d("7f", Jg, jb).p(PfxDef64),

	d("80 /reg=0", Add, eb, ib),
	d("80 /reg=1", Or, eb, ib),
	d("80 /reg=2", Adc, eb, ib),
	d("80 /reg=3", Sbb, eb, ib),
	d("80 /reg=4", And, eb, ib),
	d("80 /reg=5", Sub, eb, ib),
	d("80 /reg=6", Xor, eb, ib),
	d("80 /reg=7", Cmp, eb, ib),
	d("81 /reg=0", Add, ev, siz),
	d("81 /reg=1", Or, ev, siz),
	d("81 /reg=2", Adc, ev, siz),
	d("81 /reg=3", Sbb, ev, siz),
	d("81 /reg=4", And, ev, siz),
	d("81 /reg=5", Sub, ev, siz),
	d("81 /reg=6", Xor, ev, siz),
	d("81 /reg=7", Cmp, ev, siz),
	d("82 /reg=0", Add, eb, ib).p(PfxInv64),
	d("82 /reg=1", Or, eb, ib).p(PfxInv64),
	d("82 /reg=2", Adc, eb, ib).p(PfxInv64),
	d("82 /reg=3", Sbb, eb, ib).p(PfxInv64),
	d("82 /reg=4", And, eb, ib).p(PfxInv64),
	d("82 /reg=5", Sub, eb, ib).p(PfxInv64),
	d("82 /reg=6", Xor, eb, ib).p(PfxInv64),
	d("82 /reg=7", Cmp, eb, ib).p(PfxInv64),
	d("83 /reg=0", Add, ev, sib),
	d("83 /reg=1", Or, ev, sib),
	d("83 /reg=2", Adc, ev, sib),
	d("83 /reg=3", Sbb, ev, sib),
	d("83 /reg=4", And, ev, sib),
	d("83 /reg=5", Sub, ev, sib),
	d("83 /reg=6", Xor, ev, sib),
	d("83 /reg=7", Cmp, ev, sib),

	d("84", Test, eb, gb),
	d("85", Test, ev, gv),
	d("86", Xchg, eb, gb),
	d("87", Xchg, ev, gv),
	d("88", Mov, eb, gb),
	d("89", Mov, ev, gv),
	d("8a", Mov, gb, eb),
	d("8b", Mov, gv, ev),
	d("8c", Mov, ev, sw),
	d("8d", Lea, gv, mem),
	d("8e", Mov, sw, ew),
	d("8f /reg=0", Pop, ev).p(PfxDef64),

	d("90", Xchg, r0v, accv),
	d("91", Xchg, r1v, accv),
	d("92", Xchg, r2v, accv),
	d("93", Xchg, r3v, accv),
	d("94", Xchg, r4v, accv),
	d("95", Xchg, r5v, accv),
	d("96", Xchg, r6v, accv),
	d("97", Xchg, r7v, accv),

	d("98 /o=16", Cbw),
	d("98 /o=32", Cwde),
	d("98 /o=64", Cdqe),
	d("99 /o=16", Cwd),
	d("99 /o=32", Cdq),
	d("99 /o=64", Cqo),
	d("9a", Call, ap).p(PfxInv64),
	d("9b", Wait),
	d("9c /o=16", Pushfw).p(PfxDef64),
	d("9c /o=32 /m=!64", Pushfd).p(PfxDef64),
	d("9c /o=32 /m=64", Pushfq).p(PfxDef64),
	d("9c /o=64", Pushfq).p(PfxDef64),
	d("9d /o=16", Popfw).p(PfxDef64),
	d("9d /o=32 /m=!64", Popfd).p(PfxDef64),
	d("9d /o=32 /m=64", Popfq).p(PfxDef64),
	d("9d /o=64", Popfq).p(PfxDef64),
	d("9e", Sahf),
	d("9f", Lahf),
	d("a0", Mov, al, ob),
	d("a1", Mov, accv, ov),
	d("a2", Mov, ob, al),
	d("a3", Mov, ov, accv),
	d("a4", Movsb).p(PfxStr|PfxSeg),
	d("a5 /o=16", Movsw).p(PfxStr|PfxSeg),
	d("a5 /o=32", Movsd).p(PfxStr|PfxSeg),
	d("a5 /o=64", Movsq).p(PfxStr|PfxSeg),
	d("a6", Cmpsb).p(PfxSeg),
	d("a7 /o=16", Cmpsw).p(PfxSeg),
	d("a7 /o=32", Cmpsd).p(PfxSeg),
	d("a7 /o=64", Cmpsq).p(PfxSeg),
	d("a8", Test, al, ib),
	d("a9", Test, accv, siz),
	d("aa", Stosb).p(PfxStr),
	d("ab /o=16", Stosw).p(PfxStr),
	d("ab /o=32", Stosd).p(PfxStr),
	d("ab /o=64", Stosq).p(PfxStr),
	d("ac", Lodsb).p(PfxStr|PfxSeg),
	d("ad /o=16", Lodsw).p(PfxStr|PfxSeg),
	d("ad /o=32", Lodsd).p(PfxStr|PfxSeg),
	d("ad /o=64", Lodsq).p(PfxStr|PfxSeg),
	d("ae", Scasb),
	d("af /o=16", Scasw),
	d("af /o=32", Scasd),
	d("af /o=64", Scasq),

	d("b0", Mov, r0b, ib),
	d("b1", Mov, r1b, ib),
	d("b2", Mov, r2b, ib),
	d("b3", Mov, r3b, ib),
	d("b4", Mov, r4b, ib),
	d("b5", Mov, r5b, ib),
	d("b6", Mov, r6b, ib),
	d("b7", Mov, r7b, ib),
	d("b8", Mov, r0v, iv),
	d("b9", Mov, r1v, iv),
	d("ba", Mov, r2v, iv),
	d("bb", Mov, r3v, iv),
	d("bc", Mov, r4v, iv),
	d("bd", Mov, r5v, iv),
	d("be", Mov, r6v, iv),
	d("bf", Mov, r7v, iv),

	d("c0 /reg=0", Rol, eb, ib),
	d("c0 /reg=1", Ror, eb, ib),
	d("c0 /reg=2", Rcl, eb, ib),
	d("c0 /reg=3", Rcr, eb, ib),
	d("c0 /reg=4", Shl, eb, ib),
	d("c0 /reg=5", Shr, eb, ib),
	d("c0 /reg=6", Shl, eb, ib),
	d("c0 /reg=7", Sar, eb, ib),
	d("c1 /reg=0", Rol, ev, ib),
	d("c1 /reg=1", Ror, ev, ib),
	d("c1 /reg=2", Rcl, ev, ib),
	d("c1 /reg=3", Rcr, ev, ib),
	d("c1 /reg=4", Shl, ev, ib),
	d("c1 /reg=5", Shr, ev, ib),
	d("c1 /reg=6", Shl, ev, ib),
	d("c1 /reg=7", Sar, ev, ib),
	d("c2", Ret, iw).p(PfxDef64),
	d("c3", Ret).p(PfxDef64),
	d("c4", Les, gz, mem).p(PfxInv64),
	d("c5", Lds, gz, mem).p(PfxInv64),
	d("c6 /reg=0", Mov, eb, ib),
	d("c7 /reg=0", Mov, ev, siz),
	d("c8", Enter, iw, ib).p(PfxDef64),
	d("c9", Leave).p(PfxDef64),
	d("ca", Retf, iw),
	d("cb", Retf),
	d("cc", Int3),
	d("cd", Int, ib),
	d("ce", Into).p(PfxInv64),
	d("cf /o=16", Iretw),
	d("cf /o=32", Iretd),
	d("cf /o=64", Iretq),

	d("d0 /reg=0", Rol, eb, i1),
	d("d0 /reg=1", Ror, eb, i1),
	d("d0 /reg=2", Rcl, eb, i1),
	d("d0 /reg=3", Rcr, eb, i1),
	d("d0 /reg=4", Shl, eb, i1),
	d("d0 /reg=5", Shr, eb, i1),
	d("d0 /reg=6", Shl, eb, i1),
	d("d0 /reg=7", Sar, eb, i1),
	d("d1 /reg=0", Rol, ev, i1),
	d("d1 /reg=1", Ror, ev, i1),
	d("d1 /reg=2", Rcl, ev, i1),
	d("d1 /reg=3", Rcr, ev, i1),
	d("d1 /reg=4", Shl, ev, i1),
	d("d1 /reg=5", Shr, ev, i1),
	d("d1 /reg=6", Shl, ev, i1),
	d("d1 /reg=7", Sar, ev, i1),
	d("d2 /reg=0", Rol, eb, cl),
	d("d2 /reg=1", Ror, eb, cl),
	d("d2 /reg=2", Rcl, eb, cl),
	d("d2 /reg=3", Rcr, eb, cl),
	d("d2 /reg=4", Shl, eb, cl),
	d("d2 /reg=5", Shr, eb, cl),
	d("d2 /reg=6", Shl, eb, cl),
	d("d2 /reg=7", Sar, eb, cl),
	d("d3 /reg=0", Rol, ev, cl),
	d("d3 /reg=1", Ror, ev, cl),
	d("d3 /reg=2", Rcl, ev, cl),
	d("d3 /reg=3", Rcr, ev, cl),
	d("d3 /reg=4", Shl, ev, cl),
	d("d3 /reg=5", Shr, ev, cl),
	d("d3 /reg=6", Shl, ev, cl),
	d("d3 /reg=7", Sar, ev, cl),
	d("d4", Aam, ib).p(PfxInv64),
	d("d5", Aad, ib).p(PfxInv64),
	d("d6", Salc).p(PfxInv64),
	d("d7", Xlatb).p(PfxSeg|PfxAso),
	d("e0", Loopne, jb).p(PfxDef64),
	d("e1", Loope, jb).p(PfxDef64),
	d("e2", Loop, jb).p(PfxDef64),
	d("e3 /a=16", Jcxz, jb).p(PfxDef64),
	d("e3 /a=32", Jecxz, jb).p(PfxDef64),
	d("e3 /a=64", Jrcxz, jb).p(PfxDef64),
	d("e4", In, al, ib),
	d("e5", In, accz, ib),
	d("e6", Out, ib, al),
	d("e7", Out, ib, accz),
	d("e8", Call, jz).p(PfxDef64),
	d("e9", Jmp, jz).p(PfxDef64),
	d("ea", Jmp, ap).p(PfxInv64),
	d("eb", Jmp, jb).p(PfxDef64),
	d("ec", In, al, dx),
	d("ed", In, accz, dx),
	d("ee", Out, dx, al),
	d("ef", Out, dx, accz),
	d("f1", Int1),
	d("f4", Hlt),
	d("f5", Cmc),
	d("f6 /reg=0", Test, eb, ib),
	d("f6 /reg=1", Test, eb, ib),
	d("f6 /reg=2", Not, eb),
	d("f6 /reg=3", Neg, eb),
	d("f6 /reg=4", Mul, eb),
	d("f6 /reg=5", Imul, eb).acc("R").imp(regs(RAX), regs(RAX)),
	d("f6 /reg=6", Div, eb),
	d("f6 /reg=7", Idiv, eb),
	d("f7 /reg=0", Test, ev, siz),
	d("f7 /reg=1", Test, ev, siz),
	d("f7 /reg=2", Not, ev),
	d("f7 /reg=3", Neg, ev),
	d("f7 /reg=4", Mul, ev),
	d("f7 /reg=5", Imul, ev).acc("R").imp(regs(RAX), regs(RAX, RDX)),
	d("f7 /reg=6", Div, ev),
	d("f7 /reg=7", Idiv, ev),
	d("f8", Clc),
	d("f9", Stc),
	d("fa", Cli),
	d("fb", Sti),
	d("fc", Cld),
	d("fd", Std),
	d("fe /reg=0", Inc, eb),
	d("fe /reg=1", Dec, eb),
	d("ff /reg=0", Inc, ev),
	d("ff /reg=1", Dec, ev),
	d("ff /reg=2", Call, ev).p(PfxDef64),
	d("ff /reg=3", Call, fv),
	d("ff /reg=4", Jmp, ev).p(PfxDef64),
	d("ff /reg=5", Jmp, fv),
	d("ff /reg=6", Push, ev).p(PfxDef64),
}
