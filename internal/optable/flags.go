package optable

import (
	"fmt"
	"strings"
)

// FlagState describes what an instruction does to one status flag.
type FlagState uint8

const (
	FlagUnchanged FlagState = iota
	FlagTested
	FlagModified
	FlagReset
	FlagSet
	FlagUndefined
	FlagPrior
)

var flagLetters = [...]byte{
	FlagUnchanged: '_',
	FlagTested:    'T',
	FlagModified:  'M',
	FlagReset:     'R',
	FlagSet:       'S',
	FlagUndefined: 'U',
	FlagPrior:     'P',
}

// Letter returns the one-character code used in listings.
func (s FlagState) Letter() byte {
	if int(s) < len(flagLetters) {
		return flagLetters[s]
	}
	return '?'
}

// Flag indexes an Eflags record.
type Flag uint8

const (
	FlagOF Flag = iota
	FlagSF
	FlagZF
	FlagAF
	FlagPF
	FlagCF
	FlagTF
	FlagIF
	FlagDF
	FlagNT
	FlagRF
	numFlags
)

var flagNames = [numFlags]string{"of", "sf", "zf", "af", "pf", "cf", "tf", "if", "df", "nt", "rf"}

func (f Flag) String() string {
	if f < numFlags {
		return flagNames[f]
	}
	return "?"
}

// Eflags records the effect of an instruction on each status flag.
type Eflags [numFlags]FlagState

// String renders the record as "of:M sf:M ... rf:_".
func (e Eflags) String() string {
	var b strings.Builder
	for f := FlagOF; f < numFlags; f++ {
		if f > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(flagNames[f])
		b.WriteByte(':')
		b.WriteByte(e[f].Letter())
	}
	return b.String()
}

// Affected lists the flags whose state is not FlagUnchanged.
func (e Eflags) Affected() []Flag {
	var out []Flag
	for f := FlagOF; f < numFlags; f++ {
		if e[f] != FlagUnchanged {
			out = append(out, f)
		}
	}
	return out
}

// parseEflags reads a compact record with one letter per flag, in Flag order.
func parseEflags(s string) (Eflags, error) {
	var e Eflags
	if len(s) != int(numFlags) {
		return e, fmt.Errorf("eflags %q: want %d letters", s, numFlags)
	}
	for i := 0; i < len(s); i++ {
		st := FlagState(0)
		for ; int(st) < len(flagLetters); st++ {
			if flagLetters[st] == s[i] {
				break
			}
		}
		if int(st) == len(flagLetters) {
			return e, fmt.Errorf("eflags %q: unknown state %q", s, s[i])
		}
		e[i] = st
	}
	return e, nil
}

// Access classifies how an instruction uses an operand.
type Access uint8

const (
	AccessNone  Access = 0
	AccessRead  Access = 1 << 0
	AccessWrite Access = 1 << 1
	AccessRW           = AccessRead | AccessWrite
)

func (a Access) String() string {
	switch a {
	case AccessRead:
		return "R"
	case AccessWrite:
		return "W"
	case AccessRW:
		return "RW"
	}
	return "-"
}

func parseAccess(s string) (Access, error) {
	switch s {
	case "R":
		return AccessRead, nil
	case "W":
		return AccessWrite, nil
	case "RW":
		return AccessRW, nil
	case "-":
		return AccessNone, nil
	}
	return AccessNone, fmt.Errorf("access %q: want R, W, RW or -", s)
}
