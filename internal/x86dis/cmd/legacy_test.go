package cmd

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalizeArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"empty", nil, []string{}},
		{"modes", []string{"-16", "-64"}, []string{"--mode=16", "--mode=64"}},
		{"syntax", []string{"-att"}, []string{"--syntax=att"}},
		{"switches", []string{"-x", "-eflags", "-access", "-implicit", "-noff", "-nohex"},
			[]string{"--hex", "--eflags", "--access", "--implicit", "--no-offset", "--no-hex"}},
		{"values", []string{"-o", "400000", "-s", "4", "-c", "16"},
			[]string{"--origin=400000", "--skip=4", "--count=16"}},
		{"vendor intel", []string{"-v", "intel"}, []string{"--vendor=intel"}},
		{"vendor i prefix", []string{"-v", "i"}, []string{"--vendor=intel"}},
		{"vendor other", []string{"-v", "amd64"}, []string{"--vendor=amd"}},
		{"missing value", []string{"-o"}, []string{"-o"}},
		{"modern flags untouched", []string{"--mode", "64", "file.bin"}, []string{"--mode", "64", "file.bin"}},
		{"after terminator", []string{"-x", "--", "-32"}, []string{"--hex", "--", "-32"}},
		{"subcommand", []string{"explain", "-64", "90"}, []string{"explain", "--mode=64", "90"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeArgs(tt.args)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("normalizeArgs(%q) mismatch (-want +got):\n%s", tt.args, diff)
			}
		})
	}
}
