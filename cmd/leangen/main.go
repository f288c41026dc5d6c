// Command leangen turns equational prover traces into Lean proof
// scripts, and covers the surrounding workflow of generating TPTP
// problems and summarizing prover logs.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"example.com/leangen/internal/config"
	"example.com/leangen/internal/lean"
	"example.com/leangen/internal/logging"
	"example.com/leangen/internal/stats"
	"example.com/leangen/internal/tptp"
	"example.com/leangen/internal/trace"
)

const version = "0.2.0"

// CLI defines the command-line interface for leangen.
var CLI struct {
	Config  string `name:"config" short:"c" help:"Config file path (default: leangen.yaml if present)" type:"path"`
	Verbose bool   `name:"verbose" short:"v" help:"Enable debug logging"`

	Translate TranslateCmd `cmd:"" help:"Translate a prover trace into a Lean proof script"`
	Generate  GenerateCmd  `cmd:"" help:"Generate TPTP problems from a Lean proofs file"`
	Summarize SummarizeCmd `cmd:"" help:"Summarize Vampire/Minimized counts from prover logs"`
	Version   VersionCmd   `cmd:"" help:"Print version information"`
}

// TranslateCmd converts one prover transcript into a .lean file named
// after the input, under the configured output directory.
type TranslateCmd struct {
	Input  string `arg:"" help:"Prover trace file" type:"existingfile"`
	Output string `name:"output" short:"o" help:"Output directory (overrides config)" type:"path"`
	Tactic string `name:"tactic" help:"Justification tactic for calc steps (overrides config)"`
}

func (c *TranslateCmd) Run(cfg config.Config) error {
	outDir := cfg.OutputDir
	if c.Output != "" {
		outDir = c.Output
	}
	tactic := cfg.Tactic
	if c.Tactic != "" {
		tactic = c.Tactic
	}

	f, err := os.Open(c.Input)
	if err != nil {
		return err
	}
	defer f.Close()

	transcript, err := trace.Segment(f)
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.Input, err)
	}
	if err := transcript.Validate(); err != nil {
		return fmt.Errorf("%s: %w", c.Input, err)
	}

	resolution, err := trace.Resolve(transcript)
	if err != nil {
		return fmt.Errorf("%s: %w", c.Input, err)
	}

	doc, err := lean.Document(transcript, resolution, tactic)
	if err != nil {
		return fmt.Errorf("%s: %w", c.Input, err)
	}

	base := strings.TrimSuffix(filepath.Base(c.Input), filepath.Ext(c.Input))
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	outFile := filepath.Join(outDir, base+".lean")
	if err := os.WriteFile(outFile, []byte(doc), 0o644); err != nil {
		return err
	}

	logging.Info("generated Lean file",
		"input", c.Input,
		"output", outFile,
		"lemmas", len(transcript.Lemmas),
		"axioms", len(resolution.Retained))
	fmt.Println("✓ Generated Lean file:", outFile)
	return nil
}

// GenerateCmd writes one TPTP problem file per implication theorem in a
// Lean proofs file.
type GenerateCmd struct {
	Proofs    string `arg:"" help:"Lean proofs file with implication theorems" type:"existingfile"`
	Equations string `name:"equations" help:"Equation database directory (overrides config)" type:"path"`
	OutRoot   string `name:"out-root" help:"Root for input<N> folders (overrides config)" type:"path"`
}

func (c *GenerateCmd) Run(cfg config.Config) error {
	eqDir := cfg.EquationsDir
	if c.Equations != "" {
		eqDir = c.Equations
	}
	outRoot := cfg.BenchmarkDir
	if c.OutRoot != "" {
		outRoot = c.OutRoot
	}

	res, err := tptp.Generate(c.Proofs, eqDir, outRoot, logging.Logger())
	if err != nil {
		return err
	}
	fmt.Printf("Written: %d\n", res.Written)
	fmt.Printf("Skipped: %d\n", res.Skipped)
	return nil
}

// SummarizeCmd reports per-file and overall proof length statistics.
type SummarizeCmd struct {
	LogDir string `arg:"" help:"Directory containing .log files" type:"existingdir"`
}

func (c *SummarizeCmd) Run(cfg config.Config) error {
	return stats.Report(c.LogDir, cfg.MinSteps, os.Stdout)
}

// VersionCmd prints the tool version.
type VersionCmd struct{}

func (c *VersionCmd) Run(cfg config.Config) error {
	fmt.Printf("leangen version %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("leangen"),
		kong.Description("Lean proof script generation from equational prover traces"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	logging.Init(CLI.Verbose)

	cfg, err := config.Load(CLI.Config)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(cfg)
	ctx.FatalIfErrorf(err)
}
