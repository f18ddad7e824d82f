package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"x86dis/internal/disasm"
	"x86dis/internal/logging"
	"x86dis/internal/ui/colorize"
	xlog "x86dis/internal/x86dis/log"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "x86dis [file]",
		Short: "x86 disassembler",
		Long: `x86dis decodes 16, 32 and 64-bit x86 machine code into Intel or AT&T
assembly. Input is a raw binary file, whitespace separated hex text, or the
code section of an ELF binary. With no file, input is read from stdin.`,
		Example: `
# Disassemble a raw 64-bit blob
x86dis --mode 64 code.bin

# Disassemble hex text in AT&T syntax with udcli style flags
echo "55 89 e5 c3" | x86dis -x -att

# Disassemble one function of an ELF binary
x86dis --elf --symbol main ./a.out
  `,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cpuprofile, _ := cmd.Flags().GetString("cpuprofile")
			if cpuprofile != "" {
				f, err := os.Create(cpuprofile)
				if err != nil {
					return fmt.Errorf("could not create CPU profile: %v", err)
				}
				defer f.Close()
				if err := pprof.StartCPUProfile(f); err != nil {
					return fmt.Errorf("could not start CPU profile: %v", err)
				}
				defer pprof.StopCPUProfile()
			}

			memprofile, _ := cmd.Flags().GetString("memprofile")
			if memprofile != "" {
				defer func() {
					f, err := os.Create(memprofile)
					if err != nil {
						fmt.Fprintf(os.Stderr, "could not create memory profile: %v\n", err)
						return
					}
					defer f.Close()
					if err := pprof.WriteHeapProfile(f); err != nil {
						fmt.Fprintf(os.Stderr, "could not write memory profile: %v\n", err)
					}
				}()
			}

			cfg := configFromFlags(cmd)
			xlog.Setup(nil, cfg.Debug)
			if cfg.Debug {
				os.Setenv("X86DIS_LOG_LEVEL", "debug")
			}
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return runListing(cmd, &cfg, path)
		},
	}

	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Debug")
	rootCmd.Flags().BoolP("help", "h", false, "Help")
	rootCmd.Flags().Int("mode", 32, "Decoding mode: 16, 32 or 64")
	rootCmd.Flags().String("syntax", "intel", "Assembly syntax: intel, att or none")
	rootCmd.Flags().String("vendor", "any", "Vendor: any, amd or intel")
	rootCmd.Flags().String("origin", "", "Program counter of the first instruction in hex")
	rootCmd.Flags().Int64("skip", 0, "Bytes to skip before decoding")
	rootCmd.Flags().Int64("count", -1, "Bytes to decode, including skipped ones (-1 for all)")
	rootCmd.Flags().Bool("hex", false, "Read whitespace separated hex bytes")
	rootCmd.Flags().BoolP("follow", "f", false, "Keep reading hex bytes appended to the input file")
	rootCmd.Flags().Bool("elf", false, "Decode the .text section of an ELF binary")
	rootCmd.Flags().String("symbol", "", "Decode only the named function (with --elf)")
	rootCmd.Flags().Bool("strings", false, "Annotate references to strings in .rodata (with --elf)")
	rootCmd.Flags().Bool("eflags", false, "Show the flags each instruction affects")
	rootCmd.Flags().Bool("access", false, "Show operand access")
	rootCmd.Flags().Bool("implicit", false, "Show implicitly used and modified registers")
	rootCmd.Flags().Bool("no-offset", false, "Hide instruction offsets")
	rootCmd.Flags().Bool("no-hex", false, "Hide instruction bytes")
	rootCmd.Flags().String("cpuprofile", "", "Write CPU profile to file")
	rootCmd.Flags().String("memprofile", "", "Write memory profile to file")

	rootCmd.AddCommand(newExplainCmd())
	rootCmd.AddCommand(newVerifyCmd())
	rootCmd.AddCommand(newSchemaCmd())
	return rootCmd
}

func runListing(cmd *cobra.Command, cfg *Config, path string) error {
	logger := logging.NewLogger()
	defer logger.Close()

	d := disasm.New()
	if err := cfg.configure(d); err != nil {
		return err
	}
	if cfg.Follow {
		cfg.Hex = true
	}

	src, err := openSource(cmd.Context(), cfg, d, path, cmd.InOrStdin(), logger.Logger,
		cmd.Flags().Changed("mode"), cmd.Flags().Changed("origin"))
	if err != nil {
		return err
	}
	defer src.Close()

	out := cmd.OutOrStdout()
	syntax, _ := parseSyntax(cfg.Syntax)
	l := newLister(cfg, out, colorize.New(syntax, isTerminal(out) && !colorize.Disabled()))
	l.logger = logger
	l.flushEach = src.follow
	if src.labels != nil {
		l.labels = src.labels
	}
	if cfg.Strings {
		l.image = src.image
	}

	n, err := l.run(d)
	logger.Debug("Listing done", "instructions", n)
	return err
}

func Execute() {
	args := normalizeArgs(os.Args[1:])
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)

	// Bypass fang when output is being piped, so the listing stays plain
	if !term.IsTerminal(os.Stdout.Fd()) {
		if err := rootCmd.ExecuteContext(context.Background()); err != nil {
			os.Exit(1)
		}
		return
	}

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
