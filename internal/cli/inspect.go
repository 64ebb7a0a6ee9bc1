package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/typepack/typepack/internal/syntax"
	"github.com/typepack/typepack/pack"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect EXPR",
	Short: "Show the recursive decomposition of a pack",
	Long: `Parse a type-list expression and print each position of the pack:
its index, the token at that position, and the sub-pack that starts there.
The last row's sub-pack always ends in the empty pack.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	ts, err := syntax.Parse(args[0])
	if err != nil {
		return err
	}
	p := pack.New(ts...)
	logger.Debug("parsed pack", "pack", p.String(), "size", p.Size())

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", render(SubtitleStyle, "pack"), render(TokenStyle, p.String()))
	fmt.Fprintf(out, "size %d, unique %v\n\n", p.Size(), p.Unique())

	if p.IsEmpty() {
		fmt.Fprintln(out, "(empty pack)")
		return nil
	}

	// Column widths are driven by the widest token and sub-pack strings.
	typeWidth := len("TYPE")
	for _, t := range ts {
		if w := len(t.String()); w > typeWidth {
			typeWidth = w
		}
	}

	fmt.Fprintf(out, "%-7s %-*s %s\n", "INDEX", typeWidth, "TYPE", "SUB-PACK")
	fmt.Fprintf(out, "%-7s %-*s %s\n", strings.Repeat("-", 5), typeWidth, strings.Repeat("-", typeWidth), strings.Repeat("-", 8))
	for n := uint(0); n < p.Size(); n++ {
		e := p.Element(n)
		typ := e.Type().String()
		pad := strings.Repeat(" ", typeWidth-len(typ))
		fmt.Fprintf(out, "%-7d %s%s %s\n", e.Index(), render(TokenStyle, typ), pad, e.Pack().String())
	}
	return nil
}
