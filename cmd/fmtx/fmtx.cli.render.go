package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	fmtx "github.com/itsatony/go-fmtx"
)

// renderConfig holds parsed render command configuration
type renderConfig struct {
	templatePath string
	args         stringList
	argsFilePath string
	outputPath   string
	markerStyle  string
}

func runRender(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseRenderFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgMissingTemplate, err)
		return ExitCodeUsageError
	}

	templateSource, err := readInput(cfg.templatePath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	values, err := loadArgs(cfg.args, cfg.argsFilePath)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidArgsFile, err)
		return ExitCodeInputError
	}

	engine, err := newEngine(cfg.markerStyle)
	if err != nil {
		fmt.Fprintf(stderr, FmtError, ErrMsgInvalidMarkers)
		return ExitCodeUsageError
	}
	result := engine.Format(string(templateSource), values...)

	if err := writeOutput(cfg.outputPath, []byte(result), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}
	return ExitCodeSuccess
}

func parseRenderFlags(args []string) (*renderConfig, error) {
	fs := flag.NewFlagSet(CmdNameRender, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &renderConfig{}

	fs.StringVar(&cfg.templatePath, FlagTemplate, "", "")
	fs.StringVar(&cfg.templatePath, FlagTemplateShort, "", "")
	fs.Var(&cfg.args, FlagArg, "")
	fs.Var(&cfg.args, FlagArgShort, "")
	fs.StringVar(&cfg.argsFilePath, FlagArgsFile, "", "")
	fs.StringVar(&cfg.argsFilePath, FlagArgsFileShort, "", "")
	fs.StringVar(&cfg.outputPath, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, FlagDefaultOutput, "")
	fs.StringVar(&cfg.markerStyle, FlagMarkers, FlagDefaultMarkers, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.templatePath == "" {
		return nil, errors.New(ErrMsgMissingTemplate)
	}
	return cfg, nil
}

// newEngine maps the marker style flag onto an engine.
func newEngine(style string) (*fmtx.Engine, error) {
	switch style {
	case MarkerStyleVT:
		return fmtx.New(), nil
	case MarkerStyleBracket:
		return fmtx.New(fmtx.WithMarkers(MarkerBracketBegin, MarkerBracketEnd)), nil
	default:
		return nil, errors.New(ErrMsgInvalidMarkers)
	}
}

// loadArgs builds the argument list from repeated -a flags or a YAML
// list file. Each value is parsed as a YAML scalar, so `23` binds as an
// integer, `2.5` as a float, and anything else as a string.
func loadArgs(inline stringList, filePath string) ([]fmtx.Value, error) {
	var raw []any

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	} else {
		for _, v := range inline {
			var parsed any
			if err := yaml.Unmarshal([]byte(v), &parsed); err != nil {
				// Not valid YAML; take the text as-is.
				parsed = v
			}
			raw = append(raw, parsed)
		}
	}

	values := make([]fmtx.Value, len(raw))
	for i, v := range raw {
		values[i] = fmtx.Bind(v)
	}
	return values, nil
}
