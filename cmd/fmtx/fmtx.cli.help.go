package main

import (
	"fmt"
	"io"
)

func runHelp(args []string, stdout io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stdout, HelpMainUsage)
		return ExitCodeSuccess
	}

	switch args[0] {
	case CmdNameRender:
		fmt.Fprint(stdout, HelpRenderUsage)
	case CmdNameLint:
		fmt.Fprint(stdout, HelpLintUsage)
	case CmdNameVersion:
		fmt.Fprint(stdout, HelpVersionUsage)
	case CmdNameHelp:
		fmt.Fprint(stdout, HelpMainUsage)
	default:
		fmt.Fprintf(stdout, FmtError, ErrMsgUnknownCommand)
		fmt.Fprint(stdout, HelpMainUsage)
		return ExitCodeUsageError
	}
	return ExitCodeSuccess
}
