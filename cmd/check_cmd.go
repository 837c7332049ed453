package cmd

import (
	"context"
	"fmt"

	"github.com/dzjyyds666/yes/parse/yes"
	"github.com/dzjyyds666/yes/pkg"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type CheckParams struct {
	Input    string   `json:"input"`    // document to parse
	Literals []string `json:"literals"` // custom literal pairs, two bytes each
	Jobs     int      `json:"jobs"`     // parallel tokenization workers
}

var params *CheckParams

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "parse a YES document and report every line",
	Run:   checkRun,
}

func init() {
	params = &CheckParams{}
	checkCmd.Flags().StringVarP(&params.Input, "input", "i", "", "input file path")
	checkCmd.Flags().StringArrayVarP(&params.Literals, "literal", "l", nil, "custom literal pair, e.g. -l '[]'")
	checkCmd.Flags().IntVarP(&params.Jobs, "jobs", "j", 0, "parallel workers, 0 = GOMAXPROCS")
}

func checkRun(cmd *cobra.Command, args []string) {
	if len(params.Input) == 0 {
		fmt.Println("no input file path")
		return
	}
	exist, err := pkg.CheckFileExist(params.Input)
	if err != nil {
		fmt.Println("check file exist error:", err)
		return
	}
	if !exist {
		fmt.Println("input file not exist")
		return
	}

	literals, err := collectLiterals(".", params.Literals)
	if err != nil {
		fmt.Println("invalid literal:", err)
		return
	}

	body, err := pkg.ReadFileString(params.Input)
	if err != nil {
		fmt.Println("read input error:", err)
		return
	}

	results, err := yes.ParseStringParallel(context.Background(), body, params.Jobs, literals...)
	if err != nil {
		fmt.Println("parse error:", err)
		return
	}

	report(results)
}

// collectLiterals merges manifest literals with the -l flags. Each entry
// is a two-byte begin/end pair.
func collectLiterals(startDir string, flags []string) ([]yes.Literal, error) {
	pairs, err := manifestLiterals(startDir)
	if err != nil {
		return nil, err
	}
	pairs = append(pairs, flags...)

	literals := make([]yes.Literal, 0, len(pairs))
	for _, pair := range pairs {
		if len(pair) != 2 {
			return nil, fmt.Errorf("literal %q must be exactly two bytes", pair)
		}
		lit, err := yes.NewLiteral(pair[0], pair[1])
		if err != nil {
			return nil, err
		}
		literals = append(literals, lit)
	}
	return literals, nil
}

func report(results []yes.Result) {
	errCount := 0
	for _, r := range results {
		switch r.Kind {
		case yes.KindElement:
			name := r.El.Name
			if r.El.Global {
				name = "!" + name
			}
			color.Green("#%d ok: %s (%d attrs, %d args)", r.Line, name, len(r.El.Attrs), len(r.El.Args))
		case yes.KindComment:
			color.Cyan("#%d comment: %s", r.Line, r.Text)
		case yes.KindBlank:
			// nothing worth printing
		case yes.KindError:
			errCount++
			color.Red("#%d error: %s", r.Line, r.Err.Message)
		}
	}
	if errCount > 0 {
		color.Red("%d line(s) failed", errCount)
		return
	}
	fmt.Println("all lines ok")
}
