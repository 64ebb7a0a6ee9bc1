package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/typepack/typepack/internal/config"
	"github.com/typepack/typepack/internal/syntax"
	"github.com/typepack/typepack/pack"
	"github.com/typepack/typepack/token"
)

var (
	queryAt     uint
	queryHas    string
	queryFind   string
	querySize   bool
	queryUnique bool
	queryFormat string
)

var queryCmd = &cobra.Command{
	Use:   "query EXPR",
	Short: "Run pack queries against a type-list expression",
	Long: `Parse a type-list expression into a pack and run queries against it.

With no query flags, size and uniqueness are reported. An out-of-range
--at index is a hard failure: the command exits non-zero instead of
printing a sentinel.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().UintVar(&queryAt, "at", 0, "report the token at this index")
	queryCmd.Flags().StringVar(&queryHas, "has", "", "report whether the pack contains this type")
	queryCmd.Flags().StringVar(&queryFind, "find", "", "report the first index of this type")
	queryCmd.Flags().BoolVar(&querySize, "size", false, "report the pack size")
	queryCmd.Flags().BoolVar(&queryUnique, "unique", false, "report whether all tokens are unique")
	queryCmd.Flags().StringVar(&queryFormat, "format", "", "output format: text or json (default from config)")
}

// queryOptions selects which queries to run.
type queryOptions struct {
	Size   bool
	Unique bool
	At     *uint
	Has    token.Type
	Find   token.Type
}

// report is the aggregated query output. Fields are nil when the
// corresponding query was not requested.
type report struct {
	Pack   string      `json:"pack"`
	Size   *uint       `json:"size,omitempty"`
	Unique *bool       `json:"unique,omitempty"`
	At     *atReport   `json:"at,omitempty"`
	Has    *hasReport  `json:"has,omitempty"`
	Find   *findReport `json:"find,omitempty"`
}

type atReport struct {
	Index uint   `json:"index"`
	Type  string `json:"type"`
}

type hasReport struct {
	Query string `json:"query"`
	Found bool   `json:"found"`
}

type findReport struct {
	Query string `json:"query"`
	Found bool   `json:"found"`
	Index uint   `json:"index,omitempty"`
}

func runQuery(cmd *cobra.Command, args []string) error {
	ts, err := syntax.Parse(args[0])
	if err != nil {
		return err
	}
	p := pack.New(ts...)
	logger.Debug("parsed pack", "pack", p.String(), "size", p.Size())

	opts := queryOptions{Size: querySize, Unique: queryUnique}
	if cmd.Flags().Changed("at") {
		n := queryAt
		opts.At = &n
	}
	if queryHas != "" {
		x, err := parseOne(queryHas)
		if err != nil {
			return fmt.Errorf("--has: %w", err)
		}
		opts.Has = x
	}
	if queryFind != "" {
		x, err := parseOne(queryFind)
		if err != nil {
			return fmt.Errorf("--find: %w", err)
		}
		opts.Find = x
	}
	// With no explicit selection, report the argument-free queries.
	if !opts.Size && !opts.Unique && opts.At == nil && opts.Has == nil && opts.Find == nil {
		opts.Size = true
		opts.Unique = true
	}

	r, err := buildReport(p, opts)
	if err != nil {
		return err
	}

	format := queryFormat
	if format == "" {
		format = cfg.Output.Format
	}
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return err
		}
	case config.FormatText:
		fmt.Fprint(cmd.OutOrStdout(), renderReport(r))
	default:
		return fmt.Errorf("invalid format %q (want %q or %q)", format, config.FormatText, config.FormatJSON)
	}
	return nil
}

// parseOne parses an expression that must denote exactly one type token.
func parseOne(src string) (token.Type, error) {
	ts, err := syntax.Parse(src)
	if err != nil {
		return nil, err
	}
	if len(ts) != 1 {
		return nil, fmt.Errorf("expected a single type, got %d", len(ts))
	}
	return ts[0], nil
}

// buildReport runs the selected queries. An out-of-range At is surfaced as
// an error: the pack package treats it as a contract violation and panics,
// and the CLI converts that violation into a failed command.
func buildReport(p *pack.Pack, opts queryOptions) (r *report, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r = nil
			err = fmt.Errorf("%v", rec)
		}
	}()

	r = &report{Pack: p.String()}
	if opts.Size {
		n := p.Size()
		r.Size = &n
	}
	if opts.Unique {
		u := p.Unique()
		r.Unique = &u
	}
	if opts.At != nil {
		r.At = &atReport{Index: *opts.At, Type: p.At(*opts.At).String()}
	}
	if opts.Has != nil {
		r.Has = &hasReport{Query: opts.Has.String(), Found: p.Has(opts.Has)}
	}
	if opts.Find != nil {
		fr := &findReport{Query: opts.Find.String()}
		if idx := p.Find(opts.Find); idx != pack.NotFound {
			fr.Found = true
			fr.Index = idx
		}
		r.Find = fr
	}
	return r, nil
}

// renderReport renders the text form of a report.
func renderReport(r *report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", render(SubtitleStyle, "pack"), render(TokenStyle, r.Pack))
	if r.Size != nil {
		fmt.Fprintf(&b, "size    %d\n", *r.Size)
	}
	if r.Unique != nil {
		fmt.Fprintf(&b, "unique  %s\n", renderBool(*r.Unique))
	}
	if r.At != nil {
		fmt.Fprintf(&b, "at %d    %s\n", r.At.Index, render(TokenStyle, r.At.Type))
	}
	if r.Has != nil {
		fmt.Fprintf(&b, "has %s  %s\n", render(TokenStyle, r.Has.Query), renderBool(r.Has.Found))
	}
	if r.Find != nil {
		if r.Find.Found {
			fmt.Fprintf(&b, "find %s  %d\n", render(TokenStyle, r.Find.Query), r.Find.Index)
		} else {
			fmt.Fprintf(&b, "find %s  %s\n", render(TokenStyle, r.Find.Query), render(WarningStyle, "not found"))
		}
	}
	return b.String()
}

func renderBool(v bool) string {
	if v {
		return render(SuccessStyle, "true")
	}
	return render(ErrorStyle, "false")
}
