package optable

// x87 holds the floating point escape opcodes d8 through df. Memory forms
// are selected by ModRM.reg, register forms by the full ModRM byte.
var x87 = []def{
	d("d8 /mod=!11 /reg=0", Fadd, md),
	d("d8 /mod=!11 /reg=1", Fmul, md),
	d("d8 /mod=!11 /reg=2", Fcom, md),
	d("d8 /mod=!11 /reg=3", Fcomp, md),
	d("d8 /mod=!11 /reg=4", Fsub, md),
	d("d8 /mod=!11 /reg=5", Fsubr, md),
	d("d8 /mod=!11 /reg=6", Fdiv, md),
	d("d8 /mod=!11 /reg=7", Fdivr, md),
	d("d8 /mod=11 /x87=00", Fadd, st0, st0),
	d("d8 /mod=11 /x87=01", Fadd, st0, st1),
	d("d8 /mod=11 /x87=02", Fadd, st0, st2),
	d("d8 /mod=11 /x87=03", Fadd, st0, st3),
	d("d8 /mod=11 /x87=04", Fadd, st0, st4),
	d("d8 /mod=11 /x87=05", Fadd, st0, st5),
	d("d8 /mod=11 /x87=06", Fadd, st0, st6),
	d("d8 /mod=11 /x87=07", Fadd, st0, st7),
	d("d8 /mod=11 /x87=08", Fmul, st0, st0),
	d("d8 /mod=11 /x87=09", Fmul, st0, st1),
	d("d8 /mod=11 /x87=0a", Fmul, st0, st2),
	d("d8 /mod=11 /x87=0b", Fmul, st0, st3),
	d("d8 /mod=11 /x87=0c", Fmul, st0, st4),
	d("d8 /mod=11 /x87=0d", Fmul, st0, st5),
	d("d8 /mod=11 /x87=0e", Fmul, st0, st6),
	d("d8 /mod=11 /x87=0f", Fmul, st0, st7),
	d("d8 /mod=11 /x87=10", Fcom, st0, st0),
	d("d8 /mod=11 /x87=11", Fcom, st0, st1),
	d("d8 /mod=11 /x87=12", Fcom, st0, st2),
	d("d8 /mod=11 /x87=13", Fcom, st0, st3),
	d("d8 /mod=11 /x87=14", Fcom, st0, st4),
	d("d8 /mod=11 /x87=15", Fcom, st0, st5),
	d("d8 /mod=11 /x87=16", Fcom, st0, st6),
	d("d8 /mod=11 /x87=17", Fcom, st0, st7),
	d("d8 /mod=11 /x87=18", Fcomp, st0, st0),
	d("d8 /mod=11 /x87=19", Fcomp, st0, st1),
	d("d8 /mod=11 /x87=1a", Fcomp, st0, st2),
	d("d8 /mod=11 /x87=1b", Fcomp, st0, st3),
	d("d8 /mod=11 /x87=1c", Fcomp, st0, st4),
	d("d8 /mod=11 /x87=1d", Fcomp, st0, st5),
	d("d8 /mod=11 /x87=1e", Fcomp, st0, st6),
	d("d8 /mod=11 /x87=1f", Fcomp, st0, st7),
	d("d8 /mod=11 /x87=20", Fsub, st0, st0),
	d("d8 /mod=11 /x87=21", Fsub, st0, st1),
	d("d8 /mod=11 /x87=22", Fsub, st0, st2),
	d("d8 /mod=11 /x87=23", Fsub, st0, st3),
	d("d8 /mod=11 /x87=24", Fsub, st0, st4),
	d("d8 /mod=11 /x87=25", Fsub, st0, st5),
	d("d8 /mod=11 /x87=26", Fsub, st0, st6),
	d("d8 /mod=11 /x87=27", Fsub, st0, st7),
	d("d8 /mod=11 /x87=28", Fsubr, st0, st0),
	d("d8 /mod=11 /x87=29", Fsubr, st0, st1),
	d("d8 /mod=11 /x87=2a", Fsubr, st0, st2),
	d("d8 /mod=11 /x87=2b", Fsubr, st0, st3),
	d("d8 /mod=11 /x87=2c", Fsubr, st0, st4),
	d("d8 /mod=11 /x87=2d", Fsubr, st0, st5),
	d("d8 /mod=11 /x87=2e", Fsubr, st0, st6),
	d("d8 /mod=11 /x87=2f", Fsubr, st0, st7),
	d("d8 /mod=11 /x87=30", Fdiv, st0, st0),
	d("d8 /mod=11 /x87=31", Fdiv, st0, st1),
	d("d8 /mod=11 /x87=32", Fdiv, st0, st2),
	d("d8 /mod=11 /x87=33", Fdiv, st0, st3),
	d("d8 /mod=11 /x87=34", Fdiv, st0, st4),
	d("d8 /mod=11 /x87=35", Fdiv, st0, st5),
	d("d8 /mod=11 /x87=36", Fdiv, st0, st6),
	d("d8 /mod=11 /x87=37", Fdiv, st0, st7),
	d("d8 /mod=11 /x87=38", Fdivr, st0, st0),
	d("d8 /mod=11 /x87=39", Fdivr, st0, st1),
	d("d8 /mod=11 /x87=3a", Fdivr, st0, st2),
	d("d8 /mod=11 /x87=3b", Fdivr, st0, st3),
	d("d8 /mod=11 /x87=3c", Fdivr, st0, st4),
	d("d8 /mod=11 /x87=3d", Fdivr, st0, st5),
	d("d8 /mod=11 /x87=3e", Fdivr, st0, st6),
	d("d8 /mod=11 /x87=3f", Fdivr, st0, st7),

	d("d9 /mod=!11 /reg=0", Fld, md),
	d("d9 /mod=!11 /reg=2", Fst, md),
	d("d9 /mod=!11 /reg=3", Fstp, md),
	d("d9 /mod=!11 /reg=4", Fldenv, mem),
	d("d9 /mod=!11 /reg=5", Fldcw, mw),
	d("d9 /mod=!11 /reg=6", Fnstenv, mem),
	d("d9 /mod=!11 /reg=7", Fnstcw, mw),
	d("d9 /mod=11 /x87=00", Fld, st0),
	d("d9 /mod=11 /x87=01", Fld, st1),
	d("d9 /mod=11 /x87=02", Fld, st2),
	d("d9 /mod=11 /x87=03", Fld, st3),
	d("d9 /mod=11 /x87=04", Fld, st4),
	d("d9 /mod=11 /x87=05", Fld, st5),
	d("d9 /mod=11 /x87=06", Fld, st6),
	d("d9 /mod=11 /x87=07", Fld, st7),
	d("d9 /mod=11 /x87=08", Fxch, st0, st0),
	d("d9 /mod=11 /x87=09", Fxch, st0, st1),
	d("d9 /mod=11 /x87=0a", Fxch, st0, st2),
	d("d9 /mod=11 /x87=0b", Fxch, st0, st3),
	d("d9 /mod=11 /x87=0c", Fxch, st0, st4),
	d("d9 /mod=11 /x87=0d", Fxch, st0, st5),
	d("d9 /mod=11 /x87=0e", Fxch, st0, st6),
	d("d9 /mod=11 /x87=0f", Fxch, st0, st7),
	d("d9 /mod=11 /x87=10", Fnop),
	d("d9 /mod=11 /x87=20", Fchs),
	d("d9 /mod=11 /x87=21", Fabs),
	d("d9 /mod=11 /x87=24", Ftst),
	d("d9 /mod=11 /x87=25", Fxam),
	d("d9 /mod=11 /x87=28", Fld1),
	d("d9 /mod=11 /x87=29", Fldl2t),
	d("d9 /mod=11 /x87=2a", Fldl2e),
	d("d9 /mod=11 /x87=2b", Fldpi),
	d("d9 /mod=11 /x87=2c", Fldlg2),
	d("d9 /mod=11 /x87=2d", Fldln2),
	d("d9 /mod=11 /x87=2e", Fldz),
	d("d9 /mod=11 /x87=30", F2xm1),
	d("d9 /mod=11 /x87=31", Fyl2x),
	d("d9 /mod=11 /x87=32", Fptan),
	d("d9 /mod=11 /x87=33", Fpatan),
	d("d9 /mod=11 /x87=34", Fxtract),
	d("d9 /mod=11 /x87=35", Fprem1),
	d("d9 /mod=11 /x87=36", Fdecstp),
	d("d9 /mod=11 /x87=37", Fincstp),
	d("d9 /mod=11 /x87=38", Fprem),
	d("d9 /mod=11 /x87=39", Fyl2xp1),
	d("d9 /mod=11 /x87=3a", Fsqrt),
	d("d9 /mod=11 /x87=3b", Fsincos),
	d("d9 /mod=11 /x87=3c", Frndint),
	d("d9 /mod=11 /x87=3d", Fscale),
	d("d9 /mod=11 /x87=3e", Fsin),
	d("d9 /mod=11 /x87=3f", Fcos),

	d("da /mod=!11 /reg=0", Fiadd, md),
	d("da /mod=!11 /reg=1", Fimul, md),
	d("da /mod=!11 /reg=2", Ficom, md),
	d("da /mod=!11 /reg=3", Ficomp, md),
	d("da /mod=!11 /reg=4", Fisub, md),
	d("da /mod=!11 /reg=5", Fisubr, md),
	d("da /mod=!11 /reg=6", Fidiv, md),
	d("da /mod=!11 /reg=7", Fidivr, md),
	d("da /mod=11 /x87=00", Fcmovb, st0, st0),
	d("da /mod=11 /x87=01", Fcmovb, st0, st1),
	d("da /mod=11 /x87=02", Fcmovb, st0, st2),
	d("da /mod=11 /x87=03", Fcmovb, st0, st3),
	d("da /mod=11 /x87=04", Fcmovb, st0, st4),
	d("da /mod=11 /x87=05", Fcmovb, st0, st5),
	d("da /mod=11 /x87=06", Fcmovb, st0, st6),
	d("da /mod=11 /x87=07", Fcmovb, st0, st7),
	d("da /mod=11 /x87=08", Fcmove, st0, st0),
	d("da /mod=11 /x87=09", Fcmove, st0, st1),
	d("da /mod=11 /x87=0a", Fcmove, st0, st2),
	d("da /mod=11 /x87=0b", Fcmove, st0, st3),
	d("da /mod=11 /x87=0c", Fcmove, st0, st4),
	d("da /mod=11 /x87=0d", Fcmove, st0, st5),
	d("da /mod=11 /x87=0e", Fcmove, st0, st6),
	d("da /mod=11 /x87=0f", Fcmove, st0, st7),
	d("da /mod=11 /x87=10", Fcmovbe, st0, st0),
	d("da /mod=11 /x87=11", Fcmovbe, st0, st1),
	d("da /mod=11 /x87=12", Fcmovbe, st0, st2),
	d("da /mod=11 /x87=13", Fcmovbe, st0, st3),
	d("da /mod=11 /x87=14", Fcmovbe, st0, st4),
	d("da /mod=11 /x87=15", Fcmovbe, st0, st5),
	d("da /mod=11 /x87=16", Fcmovbe, st0, st6),
	d("da /mod=11 /x87=17", Fcmovbe, st0, st7),
	d("da /mod=11 /x87=18", Fcmovu, st0, st0),
	d("da /mod=11 /x87=19", Fcmovu, st0, st1),
	d("da /mod=11 /x87=1a", Fcmovu, st0, st2),
	d("da /mod=11 /x87=1b", Fcmovu, st0, st3),
	d("da /mod=11 /x87=1c", Fcmovu, st0, st4),
	d("da /mod=11 /x87=1d", Fcmovu, st0, st5),
	d("da /mod=11 /x87=1e", Fcmovu, st0, st6),
	d("da /mod=11 /x87=1f", Fcmovu, st0, st7),
	d("da /mod=11 /x87=29", Fucompp),

	d("db /mod=!11 /reg=0", Fild, md),
	d("db /mod=!11 /reg=1", Fisttp, md),
	d("db /mod=!11 /reg=2", Fist, md),
	d("db /mod=!11 /reg=3", Fistp, md),
	d("db /mod=!11 /reg=5", Fld, mt),
	d("db /mod=!11 /reg=7", Fstp, mt),
	d("db /mod=11 /x87=00", Fcmovnb, st0, st0),
	d("db /mod=11 /x87=01", Fcmovnb, st0, st1),
	d("db /mod=11 /x87=02", Fcmovnb, st0, st2),
	d("db /mod=11 /x87=03", Fcmovnb, st0, st3),
	d("db /mod=11 /x87=04", Fcmovnb, st0, st4),
	d("db /mod=11 /x87=05", Fcmovnb, st0, st5),
	d("db /mod=11 /x87=06", Fcmovnb, st0, st6),
	d("db /mod=11 /x87=07", Fcmovnb, st0, st7),
	d("db /mod=11 /x87=08", Fcmovne, st0, st0),
	d("db /mod=11 /x87=09", Fcmovne, st0, st1),
	d("db /mod=11 /x87=0a", Fcmovne, st0, st2),
	d("db /mod=11 /x87=0b", Fcmovne, st0, st3),
	d("db /mod=11 /x87=0c", Fcmovne, st0, st4),
	d("db /mod=11 /x87=0d", Fcmovne, st0, st5),
	d("db /mod=11 /x87=0e", Fcmovne, st0, st6),
	d("db /mod=11 /x87=0f", Fcmovne, st0, st7),
	d("db /mod=11 /x87=10", Fcmovnbe, st0, st0),
	d("db /mod=11 /x87=11", Fcmovnbe, st0, st1),
	d("db /mod=11 /x87=12", Fcmovnbe, st0, st2),
	d("db /mod=11 /x87=13", Fcmovnbe, st0, st3),
	d("db /mod=11 /x87=14", Fcmovnbe, st0, st4),
	d("db /mod=11 /x87=15", Fcmovnbe, st0, st5),
	d("db /mod=11 /x87=16", Fcmovnbe, st0, st6),
	d("db /mod=11 /x87=17", Fcmovnbe, st0, st7),
	d("db /mod=11 /x87=18", Fcmovnu, st0, st0),
	d("db /mod=11 /x87=19", Fcmovnu, st0, st1),
	d("db /mod=11 /x87=1a", Fcmovnu, st0, st2),
	d("db /mod=11 /x87=1b", Fcmovnu, st0, st3),
	d("db /mod=11 /x87=1c", Fcmovnu, st0, st4),
	d("db /mod=11 /x87=1d", Fcmovnu, st0, st5),
	d("db /mod=11 /x87=1e", Fcmovnu, st0, st6),
	d("db /mod=11 /x87=1f", Fcmovnu, st0, st7),
	d("db /mod=11 /x87=22", Fnclex),
	d("db /mod=11 /x87=23", Fninit),
	d("db /mod=11 /x87=28", Fucomi, st0, st0),
	d("db /mod=11 /x87=29", Fucomi, st0, st1),
	d("db /mod=11 /x87=2a", Fucomi, st0, st2),
	d("db /mod=11 /x87=2b", Fucomi, st0, st3),
	d("db /mod=11 /x87=2c", Fucomi, st0, st4),
	d("db /mod=11 /x87=2d", Fucomi, st0, st5),
	d("db /mod=11 /x87=2e", Fucomi, st0, st6),
	d("db /mod=11 /x87=2f", Fucomi, st0, st7),
	d("db /mod=11 /x87=30", Fcomi, st0, st0),
	d("db /mod=11 /x87=31", Fcomi, st0, st1),
	d("db /mod=11 /x87=32", Fcomi, st0, st2),
	d("db /mod=11 /x87=33", Fcomi, st0, st3),
	d("db /mod=11 /x87=34", Fcomi, st0, st4),
	d("db /mod=11 /x87=35", Fcomi, st0, st5),
	d("db /mod=11 /x87=36", Fcomi, st0, st6),
	d("db /mod=11 /x87=37", Fcomi, st0, st7),

	d("dc /mod=!11 /reg=0", Fadd, mq),
	d("dc /mod=!11 /reg=1", Fmul, mq),
	d("dc /mod=!11 /reg=2", Fcom, mq),
	d("dc /mod=!11 /reg=3", Fcomp, mq),
	d("dc /mod=!11 /reg=4", Fsub, mq),
	d("dc /mod=!11 /reg=5", Fsubr, mq),
	d("dc /mod=!11 /reg=6", Fdiv, mq),
	d("dc /mod=!11 /reg=7", Fdivr, mq),
	d("dc /mod=11 /x87=00", Fadd, st0, st0),
	d("dc /mod=11 /x87=01", Fadd, st1, st0),
	d("dc /mod=11 /x87=02", Fadd, st2, st0),
	d("dc /mod=11 /x87=03", Fadd, st3, st0),
	d("dc /mod=11 /x87=04", Fadd, st4, st0),
	d("dc /mod=11 /x87=05", Fadd, st5, st0),
	d("dc /mod=11 /x87=06", Fadd, st6, st0),
	d("dc /mod=11 /x87=07", Fadd, st7, st0),
	d("dc /mod=11 /x87=08", Fmul, st0, st0),
	d("dc /mod=11 /x87=09", Fmul, st1, st0),
	d("dc /mod=11 /x87=0a", Fmul, st2, st0),
	d("dc /mod=11 /x87=0b", Fmul, st3, st0),
	d("dc /mod=11 /x87=0c", Fmul, st4, st0),
	d("dc /mod=11 /x87=0d", Fmul, st5, st0),
	d("dc /mod=11 /x87=0e", Fmul, st6, st0),
	d("dc /mod=11 /x87=0f", Fmul, st7, st0),
	d("dc /mod=11 /x87=20", Fsubr, st0, st0),
	d("dc /mod=11 /x87=21", Fsubr, st1, st0),
	d("dc /mod=11 /x87=22", Fsubr, st2, st0),
	d("dc /mod=11 /x87=23", Fsubr, st3, st0),
	d("dc /mod=11 /x87=24", Fsubr, st4, st0),
	d("dc /mod=11 /x87=25", Fsubr, st5, st0),
	d("dc /mod=11 /x87=26", Fsubr, st6, st0),
	d("dc /mod=11 /x87=27", Fsubr, st7, st0),
	d("dc /mod=11 /x87=28", Fsub, st0, st0),
	d("dc /mod=11 /x87=29", Fsub, st1, st0),
	d("dc /mod=11 /x87=2a", Fsub, st2, st0),
	d("dc /mod=11 /x87=2b", Fsub, st3, st0),
	d("dc /mod=11 /x87=2c", Fsub, st4, st0),
	d("dc /mod=11 /x87=2d", Fsub, st5, st0),
	d("dc /mod=11 /x87=2e", Fsub, st6, st0),
	d("dc /mod=11 /x87=2f", Fsub, st7, st0),
	d("dc /mod=11 /x87=30", Fdivr, st0, st0),
	d("dc /mod=11 /x87=31", Fdivr, st1, st0),
	d("dc /mod=11 /x87=32", Fdivr, st2, st0),
	d("dc /mod=11 /x87=33", Fdivr, st3, st0),
	d("dc /mod=11 /x87=34", Fdivr, st4, st0),
	d("dc /mod=11 /x87=35", Fdivr, st5, st0),
	d("dc /mod=11 /x87=36", Fdivr, st6, st0),
	d("dc /mod=11 /x87=37", Fdivr, st7, st0),
	d("dc /mod=11 /x87=38", Fdiv, st0, st0),
	d("dc /mod=11 /x87=39", Fdiv, st1, st0),
	d("dc /mod=11 /x87=3a", Fdiv, st2, st0),
	d("dc /mod=11 /x87=3b", Fdiv, st3, st0),
	d("dc /mod=11 /x87=3c", Fdiv, st4, st0),
	d("dc /mod=11 /x87=3d", Fdiv, st5, st0),
	d("dc /mod=11 /x87=3e", Fdiv, st6, st0),
	d("dc /mod=11 /x87=3f", Fdiv, st7, st0),

	d("dd /mod=!11 /reg=0", Fld, mq),
	d("dd /mod=!11 /reg=1", Fisttp, mq),
	d("dd /mod=!11 /reg=2", Fst, mq),
	d("dd /mod=!11 /reg=3", Fstp, mq),
	d("dd /mod=!11 /reg=4", Frstor, mem),
	d("dd /mod=!11 /reg=6", Fnsave, mem),
	d("dd /mod=!11 /reg=7", Fnstsw, mw),
	d("dd /mod=11 /x87=00", Ffree, st0),
	d("dd /mod=11 /x87=01", Ffree, st1),
	d("dd /mod=11 /x87=02", Ffree, st2),
	d("dd /mod=11 /x87=03", Ffree, st3),
	d("dd /mod=11 /x87=04", Ffree, st4),
	d("dd /mod=11 /x87=05", Ffree, st5),
	d("dd /mod=11 /x87=06", Ffree, st6),
	d("dd /mod=11 /x87=07", Ffree, st7),
	d("dd /mod=11 /x87=10", Fst, st0),
	d("dd /mod=11 /x87=11", Fst, st1),
	d("dd /mod=11 /x87=12", Fst, st2),
	d("dd /mod=11 /x87=13", Fst, st3),
	d("dd /mod=11 /x87=14", Fst, st4),
	d("dd /mod=11 /x87=15", Fst, st5),
	d("dd /mod=11 /x87=16", Fst, st6),
	d("dd /mod=11 /x87=17", Fst, st7),
	d("dd /mod=11 /x87=18", Fstp, st0),
	d("dd /mod=11 /x87=19", Fstp, st1),
	d("dd /mod=11 /x87=1a", Fstp, st2),
	d("dd /mod=11 /x87=1b", Fstp, st3),
	d("dd /mod=11 /x87=1c", Fstp, st4),
	d("dd /mod=11 /x87=1d", Fstp, st5),
	d("dd /mod=11 /x87=1e", Fstp, st6),
	d("dd /mod=11 /x87=1f", Fstp, st7),
	d("dd /mod=11 /x87=20", Fucom, st0),
	d("dd /mod=11 /x87=21", Fucom, st1),
	d("dd /mod=11 /x87=22", Fucom, st2),
	d("dd /mod=11 /x87=23", Fucom, st3),
	d("dd /mod=11 /x87=24", Fucom, st4),
	d("dd /mod=11 /x87=25", Fucom, st5),
	d("dd /mod=11 /x87=26", Fucom, st6),
	d("dd /mod=11 /x87=27", Fucom, st7),
	d("dd /mod=11 /x87=28", Fucomp, st0),
	d("dd /mod=11 /x87=29", Fucomp, st1),
	d("dd /mod=11 /x87=2a", Fucomp, st2),
	d("dd /mod=11 /x87=2b", Fucomp, st3),
	d("dd /mod=11 /x87=2c", Fucomp, st4),
	d("dd /mod=11 /x87=2d", Fucomp, st5),
	d("dd /mod=11 /x87=2e", Fucomp, st6),
	d("dd /mod=11 /x87=2f", Fucomp, st7),

	d("de /mod=!11 /reg=0", Fiadd, mw),
	d("de /mod=!11 /reg=1", Fimul, mw),
	d("de /mod=!11 /reg=2", Ficom, mw),
	d("de /mod=!11 /reg=3", Ficomp, mw),
	d("de /mod=!11 /reg=4", Fisub, mw),
	d("de /mod=!11 /reg=5", Fisubr, mw),
	d("de /mod=!11 /reg=6", Fidiv, mw),
	d("de /mod=!11 /reg=7", Fidivr, mw),
	d("de /mod=11 /x87=00", Faddp, st0, st0),
	d("de /mod=11 /x87=01", Faddp, st1, st0),
	d("de /mod=11 /x87=02", Faddp, st2, st0),
	d("de /mod=11 /x87=03", Faddp, st3, st0),
	d("de /mod=11 /x87=04", Faddp, st4, st0),
	d("de /mod=11 /x87=05", Faddp, st5, st0),
	d("de /mod=11 /x87=06", Faddp, st6, st0),
	d("de /mod=11 /x87=07", Faddp, st7, st0),
	d("de /mod=11 /x87=08", Fmulp, st0, st0),
	d("de /mod=11 /x87=09", Fmulp, st1, st0),
	d("de /mod=11 /x87=0a", Fmulp, st2, st0),
	d("de /mod=11 /x87=0b", Fmulp, st3, st0),
	d("de /mod=11 /x87=0c", Fmulp, st4, st0),
	d("de /mod=11 /x87=0d", Fmulp, st5, st0),
	d("de /mod=11 /x87=0e", Fmulp, st6, st0),
	d("de /mod=11 /x87=0f", Fmulp, st7, st0),
	d("de /mod=11 /x87=20", Fsubrp, st0, st0),
	d("de /mod=11 /x87=21", Fsubrp, st1, st0),
	d("de /mod=11 /x87=22", Fsubrp, st2, st0),
	d("de /mod=11 /x87=23", Fsubrp, st3, st0),
	d("de /mod=11 /x87=24", Fsubrp, st4, st0),
	d("de /mod=11 /x87=25", Fsubrp, st5, st0),
	d("de /mod=11 /x87=26", Fsubrp, st6, st0),
	d("de /mod=11 /x87=27", Fsubrp, st7, st0),
	d("de /mod=11 /x87=28", Fsubp, st0, st0),
	d("de /mod=11 /x87=29", Fsubp, st1, st0),
	d("de /mod=11 /x87=2a", Fsubp, st2, st0),
	d("de /mod=11 /x87=2b", Fsubp, st3, st0),
	d("de /mod=11 /x87=2c", Fsubp, st4, st0),
	d("de /mod=11 /x87=2d", Fsubp, st5, st0),
	d("de /mod=11 /x87=2e", Fsubp, st6, st0),
	d("de /mod=11 /x87=2f", Fsubp, st7, st0),
	d("de /mod=11 /x87=30", Fdivrp, st0, st0),
	d("de /mod=11 /x87=31", Fdivrp, st1, st0),
	d("de /mod=11 /x87=32", Fdivrp, st2, st0),
	d("de /mod=11 /x87=33", Fdivrp, st3, st0),
	d("de /mod=11 /x87=34", Fdivrp, st4, st0),
	d("de /mod=11 /x87=35", Fdivrp, st5, st0),
	d("de /mod=11 /x87=36", Fdivrp, st6, st0),
	d("de /mod=11 /x87=37", Fdivrp, st7, st0),
	d("de /mod=11 /x87=38", Fdivp, st0, st0),
	d("de /mod=11 /x87=39", Fdivp, st1, st0),
	d("de /mod=11 /x87=3a", Fdivp, st2, st0),
	d("de /mod=11 /x87=3b", Fdivp, st3, st0),
	d("de /mod=11 /x87=3c", Fdivp, st4, st0),
	d("de /mod=11 /x87=3d", Fdivp, st5, st0),
	d("de /mod=11 /x87=3e", Fdivp, st6, st0),
	d("de /mod=11 /x87=3f", Fdivp, st7, st0),
	d("de /mod=11 /x87=19", Fcompp),

	d("df /mod=!11 /reg=0", Fild, mw),
	d("df /mod=!11 /reg=1", Fisttp, mw),
	d("df /mod=!11 /reg=2", Fist, mw),
	d("df /mod=!11 /reg=3", Fistp, mw),
	d("df /mod=!11 /reg=4", Fbld, mt),
	d("df /mod=!11 /reg=5", Fild, mq),
	d("df /mod=!11 /reg=6", Fbstp, mt),
	d("df /mod=!11 /reg=7", Fistp, mq),
	d("df /mod=11 /x87=20", Fnstsw, ax),
	d("df /mod=11 /x87=28", Fucomip, st0, st0),
	d("df /mod=11 /x87=29", Fucomip, st0, st1),
	d("df /mod=11 /x87=2a", Fucomip, st0, st2),
	d("df /mod=11 /x87=2b", Fucomip, st0, st3),
	d("df /mod=11 /x87=2c", Fucomip, st0, st4),
	d("df /mod=11 /x87=2d", Fucomip, st0, st5),
	d("df /mod=11 /x87=2e", Fucomip, st0, st6),
	d("df /mod=11 /x87=2f", Fucomip, st0, st7),
	d("df /mod=11 /x87=30", Fcomip, st0, st0),
	d("df /mod=11 /x87=31", Fcomip, st0, st1),
	d("df /mod=11 /x87=32", Fcomip, st0, st2),
	d("df /mod=11 /x87=33", Fcomip, st0, st3),
	d("df /mod=11 /x87=34", Fcomip, st0, st4),
	d("df /mod=11 /x87=35", Fcomip, st0, st5),
	d("df /mod=11 /x87=36", Fcomip, st0, st6),
	d("df /mod=11 /x87=37", Fcomip, st0, st7),
}
