package driver

import (
	"errors"
	"fmt"
	"strings"

	"midlang/interpreter-go/pkg/interpreter"
	"midlang/interpreter-go/pkg/lexer"
	"midlang/interpreter-go/pkg/parser"
)

// DiagnosticSeverity captures diagnostic levels.
type DiagnosticSeverity string

const (
	SeverityError DiagnosticSeverity = "error"
)

// Stage names the pipeline stage that produced a diagnostic.
type Stage string

const (
	StageLexer   Stage = "lexer"
	StageParser  Stage = "parser"
	StageRuntime Stage = "runtime"
)

// DiagnosticLocation references a source position for diagnostics.
type DiagnosticLocation struct {
	Path      string
	Line      int
	Column    int
	EndLine   int
	EndColumn int
}

// Diagnostic is the caller-facing view of a pipeline failure.
type Diagnostic struct {
	Severity DiagnosticSeverity
	Stage    Stage
	Message  string
	Location DiagnosticLocation
}

// BuildDiagnostic classifies err by pipeline stage and extracts its
// position. path is attached to the location when non-empty; otherwise the
// path of a *SourceError in err's chain is used.
func BuildDiagnostic(err error, path string) Diagnostic {
	diag := Diagnostic{Severity: SeverityError, Stage: StageRuntime, Location: DiagnosticLocation{Path: path}}
	if err == nil {
		return diag
	}
	var srcErr *SourceError
	if errors.As(err, &srcErr) {
		if path == "" {
			diag.Location.Path = srcErr.Path
		}
		err = srcErr.Err
	}
	var (
		lexErr   *lexer.LexError
		parseErr *parser.ParseError
		evalErr  *interpreter.EvalError
	)
	switch {
	case errors.As(err, &lexErr):
		diag.Stage = StageLexer
		diag.Message = lexErr.Message
		if lexErr.Fragment != "" {
			diag.Message = fmt.Sprintf("%s: %s", lexErr.Message, lexErr.Fragment)
		}
		diag.Location.Line = lexErr.Line
		diag.Location.Column = lexErr.Column
	case errors.As(err, &parseErr):
		diag.Stage = StageParser
		diag.Message = fmt.Sprintf("%s (found %s)", parseErr.Message, parseErr.Found.Kind)
		diag.Location.Line = parseErr.Location.Line
		diag.Location.Column = parseErr.Location.Column
		diag.Location.EndLine = parseErr.Location.EndLine
		diag.Location.EndColumn = parseErr.Location.EndColumn
	case errors.As(err, &evalErr):
		diag.Message = evalErr.Message
		diag.Location.Line = evalErr.Location.Line
		diag.Location.Column = evalErr.Location.Column
	default:
		diag.Message = err.Error()
	}
	return diag
}

// Describe formats err for display to the caller.
func Describe(err error, path string) string {
	if err == nil {
		return ""
	}
	return DescribeDiagnostic(BuildDiagnostic(err, path))
}

// DescribeDiagnostic formats a diagnostic for CLI output.
func DescribeDiagnostic(diag Diagnostic) string {
	message := strings.TrimSpace(diag.Message)
	stagePrefix := string(diag.Stage) + ":"
	if strings.HasPrefix(message, stagePrefix) {
		message = strings.TrimSpace(strings.TrimPrefix(message, stagePrefix))
	}
	prefix := stagePrefix + " "
	location := formatDiagnosticLocation(diag.Location)
	if location != "" {
		return fmt.Sprintf("%s%s %s", prefix, location, message)
	}
	return fmt.Sprintf("%s%s", prefix, message)
}

func formatDiagnosticLocation(loc DiagnosticLocation) string {
	path := strings.TrimSpace(loc.Path)
	line := loc.Line
	column := loc.Column
	switch {
	case path != "" && line > 0 && column > 0:
		return fmt.Sprintf("%s:%d:%d", path, line, column)
	case path != "" && line > 0:
		return fmt.Sprintf("%s:%d", path, line)
	case path != "":
		return path
	case line > 0 && column > 0:
		return fmt.Sprintf("line %d, column %d", line, column)
	case line > 0:
		return fmt.Sprintf("line %d", line)
	default:
		return ""
	}
}
