package optable

// threeByte covers the 0f 38 and 0f 3a escape maps.
var threeByte = []def{
	d("0f 38 00", Pshufb, pq, qq),
	d("0f 38 00 /sse=66", Pshufb, vx, wx),
	d("0f 38 01", Phaddw, pq, qq),
	d("0f 38 01 /sse=66", Phaddw, vx, wx),
	d("0f 38 02", Phaddd, pq, qq),
	d("0f 38 02 /sse=66", Phaddd, vx, wx),
	d("0f 38 03", Phaddsw, pq, qq),
	d("0f 38 03 /sse=66", Phaddsw, vx, wx),
	d("0f 38 04", Pmaddubsw, pq, qq),
	d("0f 38 04 /sse=66", Pmaddubsw, vx, wx),
	d("0f 38 05", Phsubw, pq, qq),
	d("0f 38 05 /sse=66", Phsubw, vx, wx),
	d("0f 38 06", Phsubd, pq, qq),
	d("0f 38 06 /sse=66", Phsubd, vx, wx),
	d("0f 38 07", Phsubsw, pq, qq),
	d("0f 38 07 /sse=66", Phsubsw, vx, wx),
	d("0f 38 08", Psignb, pq, qq),
	d("0f 38 08 /sse=66", Psignb, vx, wx),
	d("0f 38 09", Psignw, pq, qq),
	d("0f 38 09 /sse=66", Psignw, vx, wx),
	d("0f 38 0a", Psignd, pq, qq),
	d("0f 38 0a /sse=66", Psignd, vx, wx),
	d("0f 38 0b", Pmulhrsw, pq, qq),
	d("0f 38 0b /sse=66", Pmulhrsw, vx, wx),
	d("0f 38 1c", Pabsb, pq, qq),
	d("0f 38 1c /sse=66", Pabsb, vx, wx),
	d("0f 38 1d", Pabsw, pq, qq),
	d("0f 38 1d /sse=66", Pabsw, vx, wx),
	d("0f 38 1e", Pabsd, pq, qq),
	d("0f 38 1e /sse=66", Pabsd, vx, wx),
	d("0f 38 10 /sse=66", Pblendvb, vx, wx),
	d("0f 38 14 /sse=66", Blendvps, vx, wx),
	d("0f 38 15 /sse=66", Blendvpd, vx, wx),
	d("0f 38 17 /sse=66", Ptest, vx, wx),
	d("0f 38 20 /sse=66", Pmovsxbw, vx, wq),
	d("0f 38 21 /sse=66", Pmovsxbd, vx, wd),
	d("0f 38 22 /sse=66", Pmovsxbq, vx, ww),
	d("0f 38 23 /sse=66", Pmovsxwd, vx, wq),
	d("0f 38 24 /sse=66", Pmovsxwq, vx, wd),
	d("0f 38 25 /sse=66", Pmovsxdq, vx, wq),
	d("0f 38 28 /sse=66", Pmuldq, vx, wx),
	d("0f 38 29 /sse=66", Pcmpeqq, vx, wx),
	d("0f 38 2a /sse=66", Movntdqa, vx, mo),
	d("0f 38 2b /sse=66", Packusdw, vx, wx),
	d("0f 38 30 /sse=66", Pmovzxbw, vx, wq),
	d("0f 38 31 /sse=66", Pmovzxbd, vx, wd),
	d("0f 38 32 /sse=66", Pmovzxbq, vx, ww),
	d("0f 38 33 /sse=66", Pmovzxwd, vx, wq),
	d("0f 38 34 /sse=66", Pmovzxwq, vx, wd),
	d("0f 38 35 /sse=66", Pmovzxdq, vx, wq),
	d("0f 38 37 /sse=66", Pcmpgtq, vx, wx),
	d("0f 38 38 /sse=66", Pminsb, vx, wx),
	d("0f 38 39 /sse=66", Pminsd, vx, wx),
	d("0f 38 3a /sse=66", Pminuw, vx, wx),
	d("0f 38 3b /sse=66", Pminud, vx, wx),
	d("0f 38 3c /sse=66", Pmaxsb, vx, wx),
	d("0f 38 3d /sse=66", Pmaxsd, vx, wx),
	d("0f 38 3e /sse=66", Pmaxuw, vx, wx),
	d("0f 38 3f /sse=66", Pmaxud, vx, wx),
	d("0f 38 40 /sse=66", Pmulld, vx, wx),
	d("0f 38 41 /sse=66", Phminposuw, vx, wx),
	d("0f 38 80 /sse=66", Invept, grdq, mo),
	d("0f 38 81 /sse=66", Invvpid, grdq, mo),
	d("0f 38 f0", Movbe, gv, mv),
	d("0f 38 f0 /sse=f2", Crc32, gy, eb),
	d("0f 38 f1", Movbe, mv, gv),
	d("0f 38 f1 /sse=f2", Crc32, gy, ev),

	d("0f 3a 0f", Palignr, pq, qq, ib),
	d("0f 3a 0f /sse=66", Palignr, vx, wx, ib),
	d("0f 3a 08 /sse=66", Roundps, vx, wx, ib),
	d("0f 3a 09 /sse=66", Roundpd, vx, wx, ib),
	d("0f 3a 0a /sse=66", Roundss, vx, wd, ib),
	d("0f 3a 0b /sse=66", Roundsd, vx, wq, ib),
	d("0f 3a 0c /sse=66", Blendps, vx, wx, ib),
	d("0f 3a 0d /sse=66", Blendpd, vx, wx, ib),
	d("0f 3a 0e /sse=66", Pblendw, vx, wx, ib),
	d("0f 3a 14 /sse=66", Pextrb, mrbd, vx, ib),
	d("0f 3a 15 /sse=66", Pextrw, mrwd, vx, ib),
	d("0f 3a 16 /sse=66 /o=16", Pextrd, ed, vx, ib),
	d("0f 3a 16 /sse=66 /o=32", Pextrd, ed, vx, ib),
	d("0f 3a 16 /sse=66 /o=64", Pextrq, eq, vx, ib),
	d("0f 3a 17 /sse=66", Extractps, ed, vx, ib),
	d("0f 3a 20 /sse=66", Pinsrb, vx, mrbd, ib),
	d("0f 3a 21 /sse=66", Insertps, vx, wd, ib),
	d("0f 3a 22 /sse=66 /o=16", Pinsrd, vx, ed, ib),
	d("0f 3a 22 /sse=66 /o=32", Pinsrd, vx, ed, ib),
	d("0f 3a 22 /sse=66 /o=64", Pinsrq, vx, eq, ib),
	d("0f 3a 40 /sse=66", Dpps, vx, wx, ib),
	d("0f 3a 41 /sse=66", Dppd, vx, wx, ib),
	d("0f 3a 42 /sse=66", Mpsadbw, vx, wx, ib),
	d("0f 3a 44 /sse=66", Pclmulqdq, vx, wx, ib),
	d("0f 3a 60 /sse=66", Pcmpestrm, vx, wx, ib),
	d("0f 3a 61 /sse=66", Pcmpestri, vx, wx, ib),
	d("0f 3a 62 /sse=66", Pcmpistrm, vx, wx, ib),
	d("0f 3a 63 /sse=66", Pcmpistri, vx, wx, ib),
}

// amd3DNow is selected by the byte following the operands of 0f 0f. Every
// entry shares the mm, mm/m64 operand form of slot 0x0c.
var amd3DNow = []def{
	d("0f 0f /3dnow=0c", Pi2fw, pq, qq),
	d("0f 0f /3dnow=0d", Pi2fd, pq, qq),
	d("0f 0f /3dnow=1c", Pf2iw, pq, qq),
	d("0f 0f /3dnow=1d", Pf2id, pq, qq),
	d("0f 0f /3dnow=8a", Pfnacc, pq, qq),
	d("0f 0f /3dnow=8e", Pfpnacc, pq, qq),
	d("0f 0f /3dnow=90", Pfcmpge, pq, qq),
	d("0f 0f /3dnow=94", Pfmin, pq, qq),
	d("0f 0f /3dnow=96", Pfrcp, pq, qq),
	d("0f 0f /3dnow=97", Pfrsqrt, pq, qq),
	d("0f 0f /3dnow=9a", Pfsub, pq, qq),
	d("0f 0f /3dnow=9e", Pfadd, pq, qq),
	d("0f 0f /3dnow=a0", Pfcmpgt, pq, qq),
	d("0f 0f /3dnow=a4", Pfmax, pq, qq),
	d("0f 0f /3dnow=a6", Pfrcpit1, pq, qq),
	d("0f 0f /3dnow=a7", Pfrsqit1, pq, qq),
	d("0f 0f /3dnow=aa", Pfsubr, pq, qq),
	d("0f 0f /3dnow=ae", Pfacc, pq, qq),
	d("0f 0f /3dnow=b0", Pfcmpeq, pq, qq),
	d("0f 0f /3dnow=b4", Pfmul, pq, qq),
	d("0f 0f /3dnow=b6", Pfrcpit2, pq, qq),
	d("0f 0f /3dnow=b7", Pmulhrw, pq, qq),
	d("0f 0f /3dnow=bb", Pswapd, pq, qq),
	d("0f 0f /3dnow=bf", Pavgusb, pq, qq),
}
