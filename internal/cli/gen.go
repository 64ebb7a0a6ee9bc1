package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/typepack/typepack/internal/gen"
)

var genOutput string

var genCmd = &cobra.Command{
	Use:   "gen MANIFEST",
	Short: "Generate a Go source file of precomputed pack queries",
	Long: `Read a TOML manifest of named packs and emit a Go source file with the
query results precomputed: sizes, uniqueness, token lists, and
first-occurrence index tables. The queries run here, at generation time;
the emitted file contains only flat constants.

Manifest format:

  package = "scalars"

  [[pack]]
  name = "Scalars"
  types = "char, short, int, long, long long"`,
	Args: cobra.ExactArgs(1),
	RunE: runGen,
}

func init() {
	genCmd.Flags().StringVarP(&genOutput, "output", "o", "", "output file (default stdout)")
}

func runGen(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}

	m, err := gen.ParseManifest(data)
	if err != nil {
		return err
	}
	logger.Debug("parsed manifest", "package", m.Package, "packs", len(m.Packs))

	var buf bytes.Buffer
	if err := gen.Generate(&buf, m); err != nil {
		return err
	}

	if genOutput == "" {
		_, err = cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(genOutput, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", genOutput, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), render(SuccessStyle, "wrote ")+genOutput)
	return nil
}
