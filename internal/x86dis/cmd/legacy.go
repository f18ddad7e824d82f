package cmd

import "strings"

// legacySwitches maps udcli's single-dash switches to their flags.
var legacySwitches = map[string]string{
	"-16":       "--mode=16",
	"-32":       "--mode=32",
	"-64":       "--mode=64",
	"-intel":    "--syntax=intel",
	"-att":      "--syntax=att",
	"-x":        "--hex",
	"-eflags":   "--eflags",
	"-access":   "--access",
	"-implicit": "--implicit",
	"-noff":     "--no-offset",
	"-nohex":    "--no-hex",
}

// legacyValues maps udcli's single-dash options that take a value.
var legacyValues = map[string]string{
	"-v": "--vendor",
	"-o": "--origin",
	"-s": "--skip",
	"-c": "--count",
}

// normalizeArgs rewrites udcli style arguments into the flag syntax
// understood by the command tree. Arguments after "--" are left alone.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			return append(out, args[i:]...)
		}
		if flag, ok := legacySwitches[a]; ok {
			out = append(out, flag)
			continue
		}
		flag, ok := legacyValues[a]
		if !ok || i+1 == len(args) {
			out = append(out, a)
			continue
		}
		i++
		v := args[i]
		if a == "-v" {
			// udcli selects Intel for any value starting with 'i'.
			if strings.HasPrefix(v, "i") {
				v = "intel"
			} else {
				v = "amd"
			}
		}
		out = append(out, flag+"="+v)
	}
	return out
}
