package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	fmtx "github.com/itsatony/go-fmtx"
)

// lintConfig holds parsed lint command configuration
type lintConfig struct {
	templatePath string
	nargs        int
	format       string
}

// lintIssue represents a single lint issue in JSON output
type lintIssue struct {
	Offset int    `json:"offset"`
	End    int    `json:"end"`
	Reason string `json:"reason"`
}

// lintOutput represents JSON output for lint
type lintOutput struct {
	Valid  bool        `json:"valid"`
	Issues []lintIssue `json:"issues,omitempty"`
}

func runLint(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseLintFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgMissingTemplate, err)
		return ExitCodeUsageError
	}

	templateSource, err := readInput(cfg.templatePath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	issues := fmtx.Check(string(templateSource), cfg.nargs)

	if cfg.format == OutputFormatJSON {
		outputLintJSON(issues, stdout)
	} else {
		outputLintText(issues, stdout)
	}

	if len(issues) > 0 {
		return ExitCodeLintError
	}
	return ExitCodeSuccess
}

func parseLintFlags(args []string) (*lintConfig, error) {
	fs := flag.NewFlagSet(CmdNameLint, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &lintConfig{}

	fs.StringVar(&cfg.templatePath, FlagTemplate, "", "")
	fs.StringVar(&cfg.templatePath, FlagTemplateShort, "", "")
	fs.IntVar(&cfg.nargs, FlagNArgs, 0, "")
	fs.IntVar(&cfg.nargs, FlagNArgsShort, 0, "")
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
	fs.StringVar(&cfg.format, FlagFormatShort, FlagDefaultFormat, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.templatePath == "" {
		return nil, errors.New(ErrMsgMissingTemplate)
	}
	if cfg.format != OutputFormatText && cfg.format != OutputFormatJSON {
		return nil, errors.New(ErrMsgInvalidFormat)
	}
	return cfg, nil
}

func outputLintText(issues []fmtx.Issue, stdout io.Writer) {
	if len(issues) == 0 {
		fmt.Fprintln(stdout, "ok")
		return
	}
	for _, issue := range issues {
		fmt.Fprintln(stdout, issue.String())
	}
}

func outputLintJSON(issues []fmtx.Issue, stdout io.Writer) {
	out := lintOutput{Valid: len(issues) == 0}
	for _, issue := range issues {
		out.Issues = append(out.Issues, lintIssue{
			Offset: issue.Offset,
			End:    issue.End,
			Reason: issue.Reason,
		})
	}
	jsonBytes, _ := json.MarshalIndent(out, "", "  ")
	fmt.Fprintln(stdout, string(jsonBytes))
}
