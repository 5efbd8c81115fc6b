package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test data constants
const (
	testTemplateContent = "I have {} teapots and {} kettles"
	testArgsYAML        = "- 23\n- 7\n"
	testExpectedOutput  = "I have 23 teapots and 7 kettles"
	testDefectContent   = "} {0:Z} {5}"
)

// createTempTemplate writes a template file into a temp directory
func createTempTemplate(t *testing.T, content string) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "template.tmpl")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), FilePermissions))
	return tmpFile
}

// ==================== run() dispatch tests ====================

func TestRun_NoArgs_ShowsHelp(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	stdin := strings.NewReader("")

	exitCode := run(nil, stdin, stdout, stderr)

	assert.Equal(t, ExitCodeSuccess, exitCode)
	assert.Contains(t, stdout.String(), CmdNameRender)
	assert.Contains(t, stdout.String(), CmdNameLint)
}

func TestRun_HelpCommand(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := run([]string{CmdNameHelp}, strings.NewReader(""), stdout, stderr)

	assert.Equal(t, ExitCodeSuccess, exitCode)
	assert.Contains(t, stdout.String(), CmdNameRender)
}

func TestRun_HelpForCommand(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := run([]string{CmdNameHelp, CmdNameLint}, strings.NewReader(""), stdout, stderr)

	assert.Equal(t, ExitCodeSuccess, exitCode)
	assert.Contains(t, stdout.String(), "fmtx lint")
}

func TestRun_UnknownCommand(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := run([]string{"bogus"}, strings.NewReader(""), stdout, stderr)

	assert.Equal(t, ExitCodeUsageError, exitCode)
	assert.Contains(t, stdout.String(), ErrMsgUnknownCommand)
}

func TestRun_VersionCommand(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := run([]string{CmdNameVersion}, strings.NewReader(""), stdout, stderr)

	assert.Equal(t, ExitCodeSuccess, exitCode)
	assert.Contains(t, stdout.String(), "fmtx")
}

func TestRun_VersionJSON(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := run([]string{CmdNameVersion, "-F", OutputFormatJSON}, strings.NewReader(""), stdout, stderr)

	require.Equal(t, ExitCodeSuccess, exitCode)
	var out versionOutput
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	assert.NotEmpty(t, out.Version)
	assert.NotEmpty(t, out.GoVersion)
}

// ==================== render tests ====================

func TestRender_FromFile(t *testing.T) {
	tmpFile := createTempTemplate(t, testTemplateContent)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := runRender([]string{"-t", tmpFile, "-a", "23", "-a", "7"}, nil, stdout, stderr)

	assert.Equal(t, ExitCodeSuccess, exitCode)
	assert.Equal(t, testExpectedOutput, stdout.String())
}

func TestRender_FromStdin(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	stdin := strings.NewReader(testTemplateContent)

	exitCode := runRender([]string{"-t", "-", "-a", "23", "-a", "7"}, stdin, stdout, stderr)

	assert.Equal(t, ExitCodeSuccess, exitCode)
	assert.Equal(t, testExpectedOutput, stdout.String())
}

func TestRender_ArgsFile(t *testing.T) {
	tmpFile := createTempTemplate(t, testTemplateContent)
	argsFile := filepath.Join(t.TempDir(), "args.yaml")
	require.NoError(t, os.WriteFile(argsFile, []byte(testArgsYAML), FilePermissions))

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := runRender([]string{"-t", tmpFile, "-f", argsFile}, nil, stdout, stderr)

	assert.Equal(t, ExitCodeSuccess, exitCode)
	assert.Equal(t, testExpectedOutput, stdout.String())
}

func TestRender_ScalarTyping(t *testing.T) {
	// {:08.2f} only works when the arg binds as a number, not text.
	tmpFile := createTempTemplate(t, "{:08.2f}")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := runRender([]string{"-t", tmpFile, "-a", "2.5"}, nil, stdout, stderr)

	assert.Equal(t, ExitCodeSuccess, exitCode)
	assert.Equal(t, "00002.50", stdout.String())
}

func TestRender_BracketMarkers(t *testing.T) {
	tmpFile := createTempTemplate(t, "before {5} after")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := runRender([]string{"-t", tmpFile, "-markers", MarkerStyleBracket, "-a", "x"}, nil, stdout, stderr)

	assert.Equal(t, ExitCodeSuccess, exitCode)
	assert.Equal(t, "before >>>[missing]<<< after", stdout.String())
}

func TestRender_DefectsNeverFail(t *testing.T) {
	tmpFile := createTempTemplate(t, testDefectContent)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := runRender([]string{"-t", tmpFile, "-markers", MarkerStyleBracket, "-a", "x"}, nil, stdout, stderr)

	assert.Equal(t, ExitCodeSuccess, exitCode)
	assert.Contains(t, stdout.String(), ">>>")
	assert.Empty(t, stderr.String())
}

func TestRender_OutputFile(t *testing.T) {
	tmpFile := createTempTemplate(t, "hi {}")
	outFile := filepath.Join(t.TempDir(), "out.txt")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := runRender([]string{"-t", tmpFile, "-a", "there", "-o", outFile}, nil, stdout, stderr)

	require.Equal(t, ExitCodeSuccess, exitCode)
	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Equal(t, "hi there", string(data))
	assert.Empty(t, stdout.String())
}

func TestRender_MissingTemplateFlag(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := runRender(nil, nil, stdout, stderr)

	assert.Equal(t, ExitCodeUsageError, exitCode)
	assert.Contains(t, stderr.String(), ErrMsgMissingTemplate)
}

func TestRender_UnreadableTemplate(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := runRender([]string{"-t", filepath.Join(t.TempDir(), "absent.tmpl")}, nil, stdout, stderr)

	assert.Equal(t, ExitCodeInputError, exitCode)
	assert.Contains(t, stderr.String(), ErrMsgReadFileFailed)
}

func TestRender_InvalidMarkerStyle(t *testing.T) {
	tmpFile := createTempTemplate(t, "hi")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := runRender([]string{"-t", tmpFile, "-markers", "neon"}, nil, stdout, stderr)

	assert.Equal(t, ExitCodeUsageError, exitCode)
	assert.Contains(t, stderr.String(), ErrMsgInvalidMarkers)
}

// ==================== lint tests ====================

func TestLint_CleanTemplate(t *testing.T) {
	tmpFile := createTempTemplate(t, "{0} and {1:>8}")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := runLint([]string{"-t", tmpFile, "-n", "2"}, nil, stdout, stderr)

	assert.Equal(t, ExitCodeSuccess, exitCode)
	assert.Contains(t, stdout.String(), "ok")
}

func TestLint_ReportsDefects(t *testing.T) {
	tmpFile := createTempTemplate(t, testDefectContent)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := runLint([]string{"-t", tmpFile, "-n", "1"}, nil, stdout, stderr)

	assert.Equal(t, ExitCodeLintError, exitCode)
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, stdout.String(), "offset 0")
}

func TestLint_JSONOutput(t *testing.T) {
	tmpFile := createTempTemplate(t, testDefectContent)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := runLint([]string{"-t", tmpFile, "-n", "1", "-F", OutputFormatJSON}, nil, stdout, stderr)

	require.Equal(t, ExitCodeLintError, exitCode)
	var out lintOutput
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	assert.False(t, out.Valid)
	assert.Len(t, out.Issues, 3)
	assert.Equal(t, 0, out.Issues[0].Offset)
}

func TestLint_JSONCleanTemplate(t *testing.T) {
	tmpFile := createTempTemplate(t, "plain text")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := runLint([]string{"-t", tmpFile, "-n", "0", "-F", OutputFormatJSON}, nil, stdout, stderr)

	require.Equal(t, ExitCodeSuccess, exitCode)
	var out lintOutput
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	assert.True(t, out.Valid)
	assert.Empty(t, out.Issues)
}

func TestLint_InvalidFormat(t *testing.T) {
	tmpFile := createTempTemplate(t, "hi")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	exitCode := runLint([]string{"-t", tmpFile, "-F", "xml"}, nil, stdout, stderr)

	assert.Equal(t, ExitCodeUsageError, exitCode)
}
