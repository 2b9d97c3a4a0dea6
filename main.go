package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"prover/catalog"
	"prover/colors"
	"prover/driver"
	"prover/formula"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

type Context struct {
	Out io.Writer
}

type CheckCmd struct {
	Filter         []string `short:"f" help:"Only check the named entries."`
	FilterFeedback []string `help:"Only report feedback with these ids."`
}

func (cmd *CheckCmd) Run(ctx *Context) error {
	for _, name := range cmd.Filter {
		if _, ok := catalog.Lookup(name); !ok {
			return fmt.Errorf("unknown entry %q", name)
		}
	}

	results := driver.Check(catalog.All(), cmd.Filter)

	feedbackCount := driver.WriteFeedback(results, cmd.FilterFeedback, ctx.Out)
	if feedbackCount > 0 {
		return fmt.Errorf("checking failed with %d feedback item(s)", feedbackCount)
	}

	_, err := fmt.Fprintln(ctx.Out, colors.Success("All proofs accepted."))
	return err
}

type ListCmd struct {
	Group  string `short:"g" help:"Only list entries in this group (rule, theorem, classical or example)."`
	Format string `enum:"text,yaml" default:"text" help:"Output format."`
}

func (cmd *ListCmd) Run(ctx *Context) error {
	entries := catalog.All()
	if cmd.Group != "" {
		group := catalog.Group(cmd.Group)
		if !slices.Contains(catalog.Groups, group) {
			return fmt.Errorf("unknown group %q", cmd.Group)
		}

		entries = catalog.InGroup(group)
	}

	if cmd.Format == "yaml" {
		return driver.WriteCatalogYAML(entries, ctx.Out)
	}

	driver.WriteCatalog(entries, ctx.Out)

	return nil
}

type ShowCmd struct {
	Name string `arg:"" help:"Name of the entry."`
}

func (cmd *ShowCmd) Run(ctx *Context) error {
	entry, ok := catalog.Lookup(cmd.Name)
	if !ok {
		return fmt.Errorf("unknown entry %q", cmd.Name)
	}

	driver.WriteEntry(entry, ctx.Out)

	return nil
}

type ParseCmd struct {
	Formula string `arg:"" help:"Formula to parse, like \"~(A | B) -> ~A & ~B\"."`
}

func (cmd *ParseCmd) Run(ctx *Context) error {
	f, syntaxError := formula.Parse(cmd.Formula)
	if syntaxError != nil {
		return fmt.Errorf("syntax error: %v", syntaxError)
	}

	_, err := fmt.Fprintln(ctx.Out, formula.Render(f))
	return err
}

var cli struct {
	NoColor bool `env:"PROVER_NO_COLOR" help:"Disable colored output."`
	Verbose int  `short:"v" type:"counter" env:"PROVER_VERBOSITY" help:"Increase log verbosity."`

	Check CheckCmd `cmd:"" default:"withargs" help:"Check every proof in the catalog."`
	List  ListCmd  `cmd:"" help:"List the catalog."`
	Show  ShowCmd  `cmd:"" help:"Show a single entry."`
	Parse ParseCmd `cmd:"" help:"Parse a formula and print it in canonical form."`
}

func main() {
	godotenv.Load()

	ctx := kong.Parse(&cli, kong.Name("prover"), kong.Description("Propositional proofs as Go programs."))

	if cli.NoColor {
		color.NoColor = true
	}

	commonlog.Configure(cli.Verbose, nil)

	err := ctx.Run(&Context{Out: os.Stdout})
	ctx.FatalIfErrorf(err)
}
