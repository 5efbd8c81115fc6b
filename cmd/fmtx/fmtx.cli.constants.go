package main

// Command names
const (
	CmdNameRender  = "render"
	CmdNameLint    = "lint"
	CmdNameVersion = "version"
	CmdNameHelp    = "help"
)

// Flag names - long form
const (
	FlagTemplate = "template"
	FlagArg      = "arg"
	FlagArgsFile = "args-file"
	FlagNArgs    = "nargs"
	FlagOutput   = "output"
	FlagFormat   = "format"
	FlagMarkers  = "markers"
)

// Flag names - short form
const (
	FlagTemplateShort = "t"
	FlagArgShort      = "a"
	FlagArgsFileShort = "f"
	FlagNArgsShort    = "n"
	FlagOutputShort   = "o"
	FlagFormatShort   = "F"
)

// Flag default values
const (
	FlagDefaultOutput  = "-" // stdout
	FlagDefaultFormat  = "text"
	FlagDefaultMarkers = "vt" // reverse-video escapes
)

// Marker styles
const (
	MarkerStyleVT      = "vt"
	MarkerStyleBracket = "bracket"
	MarkerBracketBegin = ">>>"
	MarkerBracketEnd   = "<<<"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess    = 0
	ExitCodeError      = 1
	ExitCodeUsageError = 2
	ExitCodeLintError  = 3
	ExitCodeInputError = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// File permissions for output files
const FilePermissions = 0o644

// Error messages - ALL must be constants
const (
	ErrMsgMissingTemplate   = "template source required"
	ErrMsgReadFileFailed    = "failed to read file"
	ErrMsgWriteOutputFailed = "failed to write output"
	ErrMsgInvalidArgsFile   = "invalid args file"
	ErrMsgInvalidArg        = "invalid argument value"
	ErrMsgInvalidFormat     = "invalid output format"
	ErrMsgInvalidMarkers    = "invalid marker style"
	ErrMsgJSONMarshalFailed = "failed to marshal JSON"
	ErrMsgUnknownCommand    = "unknown command"
)

// Format strings
const (
	FmtErrorWithCause = "error: %s: %v\n"
	FmtError          = "error: %s\n"
	FmtNewline        = "\n"
)

// Version info
const VersionUnknown = "unknown"

// Help text
const (
	HelpMainUsage = `fmtx - never-fails Python-style string formatting

Usage:
  fmtx <command> [flags]

Commands:
  render    Render a template with arguments
  lint      Check a template for defects
  version   Show version information
  help      Show help for a command

Run 'fmtx help <command>' for command details.
`

	HelpRenderUsage = `Usage: fmtx render -t <template|-> [flags]

Render a template. Defects never abort the render; they are marked
inline in the output.

Flags:
  -t, -template <path>   template file, or - for stdin (required)
  -a, -arg <value>       one argument value, repeatable, bound in order
                         (parsed as a YAML scalar: 42, 2.5, text, true)
  -f, -args-file <path>  YAML file holding a list of argument values
  -o, -output <path>     output file, - for stdout (default -)
  -markers <style>       defect marker style: vt or bracket (default vt)

Examples:
  echo 'I have {} teapots' | fmtx render -t - -a 23
  fmtx render -t banner.tmpl -f args.yaml -o out.txt
`

	HelpLintUsage = `Usage: fmtx lint -t <template|-> -n <count> [flags]

Check a template for ill-formed placeholders, stray braces, and
references past the argument count. Exit code 3 when defects are found.

Flags:
  -t, -template <path>   template file, or - for stdin (required)
  -n, -nargs <count>     number of arguments to validate against
  -F, -format <fmt>      output format: text or json (default text)
`

	HelpVersionUsage = `Usage: fmtx version [-F text|json]
`
)
