package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"x86dis/internal/disasm"
	"x86dis/internal/optable"
)

// Config is the configuration of the listing command.
type Config struct {
	Mode     int    `json:"mode" jsonschema:"title=Mode,description=Decoding mode in bits,enum=16,enum=32,enum=64,default=32"`
	Syntax   string `json:"syntax" jsonschema:"title=Syntax,description=Assembly syntax,enum=intel,enum=att,enum=none,default=intel"`
	Vendor   string `json:"vendor" jsonschema:"title=Vendor,description=Vendor whose opcode assignments win where AMD and Intel differ,enum=any,enum=amd,enum=intel,default=any"`
	Origin   string `json:"origin,omitempty" jsonschema:"title=Origin,description=Program counter of the first instruction in hex"`
	Skip     int64  `json:"skip,omitempty" jsonschema:"title=Skip,description=Bytes to skip before decoding,minimum=0"`
	Count    int64  `json:"count" jsonschema:"title=Count,description=Bytes to decode including skipped ones; -1 decodes all input,default=-1"`
	Hex      bool   `json:"hex,omitempty" jsonschema:"title=Hex Input,description=Read whitespace separated hex bytes instead of raw binary"`
	Follow   bool   `json:"follow,omitempty" jsonschema:"title=Follow,description=Keep reading hex bytes appended to the input file"`
	ELF      bool   `json:"elf,omitempty" jsonschema:"title=ELF,description=Decode the .text section of an ELF binary"`
	Symbol   string `json:"symbol,omitempty" jsonschema:"title=Symbol,description=Decode only the named function of an ELF binary"`
	Strings  bool   `json:"strings,omitempty" jsonschema:"title=Strings,description=Annotate references to strings in .rodata of an ELF binary"`
	Eflags   bool   `json:"eflags,omitempty" jsonschema:"title=Eflags,description=Show the flags each instruction affects"`
	Access   bool   `json:"access,omitempty" jsonschema:"title=Access,description=Show operand access"`
	Implicit bool   `json:"implicit,omitempty" jsonschema:"title=Implicit,description=Show implicitly used and modified registers"`
	NoOffset bool   `json:"noOffset,omitempty" jsonschema:"title=No Offset,description=Hide instruction offsets"`
	NoHex    bool   `json:"noHex,omitempty" jsonschema:"title=No Hex,description=Hide instruction bytes"`
	Debug    bool   `json:"debug,omitempty" jsonschema:"title=Debug,description=Enable debug logging"`
}

func defaultConfig() Config {
	return Config{Mode: 32, Syntax: "intel", Vendor: "any", Count: -1}
}

func configFromFlags(cmd *cobra.Command) Config {
	c := defaultConfig()
	f := cmd.Flags()
	c.Mode, _ = f.GetInt("mode")
	c.Syntax, _ = f.GetString("syntax")
	c.Vendor, _ = f.GetString("vendor")
	c.Origin, _ = f.GetString("origin")
	c.Skip, _ = f.GetInt64("skip")
	c.Count, _ = f.GetInt64("count")
	c.Hex, _ = f.GetBool("hex")
	c.Follow, _ = f.GetBool("follow")
	c.ELF, _ = f.GetBool("elf")
	c.Symbol, _ = f.GetString("symbol")
	c.Strings, _ = f.GetBool("strings")
	c.Eflags, _ = f.GetBool("eflags")
	c.Access, _ = f.GetBool("access")
	c.Implicit, _ = f.GetBool("implicit")
	c.NoOffset, _ = f.GetBool("no-offset")
	c.NoHex, _ = f.GetBool("no-hex")
	c.Debug, _ = f.GetBool("debug")
	return c
}

func parseMode(bits int) (int, error) {
	switch bits {
	case 16, 32, 64:
		return bits, nil
	}
	return 0, fmt.Errorf("invalid mode %d: want 16, 32 or 64", bits)
}

func parseSyntax(s string) (disasm.Syntax, error) {
	switch strings.ToLower(s) {
	case "intel", "":
		return disasm.SyntaxIntel, nil
	case "att", "at&t":
		return disasm.SyntaxATT, nil
	case "none":
		return disasm.SyntaxNone, nil
	}
	return 0, fmt.Errorf("invalid syntax %q: want intel, att or none", s)
}

func parseVendor(s string) (optable.Vendor, error) {
	switch strings.ToLower(s) {
	case "any", "":
		return optable.VendorAny, nil
	case "amd":
		return optable.VendorAMD, nil
	case "intel":
		return optable.VendorIntel, nil
	}
	return 0, fmt.Errorf("invalid vendor %q: want any, amd or intel", s)
}

// parseOrigin reads a hex program counter, with or without a 0x prefix.
func parseOrigin(s string) (uint64, error) {
	if s == "" {
		return 0, nil
	}
	t := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	pc, err := strconv.ParseUint(t, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid origin %q: %w", s, err)
	}
	return pc, nil
}

// limit returns the number of bytes to pull from the source, or -1 when
// the input is read to its end. Skipped bytes count against the limit.
func (c *Config) limit() int64 {
	if c.Count < 0 {
		return -1
	}
	return c.Count + c.Skip
}

// configure validates c and applies it to d.
func (c *Config) configure(d *disasm.Decoder) error {
	mode, err := parseMode(c.Mode)
	if err != nil {
		return err
	}
	syntax, err := parseSyntax(c.Syntax)
	if err != nil {
		return err
	}
	vendor, err := parseVendor(c.Vendor)
	if err != nil {
		return err
	}
	pc, err := parseOrigin(c.Origin)
	if err != nil {
		return err
	}
	if c.Skip < 0 {
		return fmt.Errorf("invalid skip %d", c.Skip)
	}
	if c.Symbol != "" && !c.ELF {
		return fmt.Errorf("--symbol requires --elf")
	}
	if c.Strings && !c.ELF {
		return fmt.Errorf("--strings requires --elf")
	}
	if c.ELF && (c.Hex || c.Follow) {
		return fmt.Errorf("--elf cannot be combined with hex input")
	}
	d.SetMode(mode)
	d.SetSyntax(syntax)
	d.SetVendor(vendor)
	d.SetPC(pc)
	return nil
}
