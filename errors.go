package cssunify

import "fmt"

// ConfigError reports missing or invalid pipeline configuration.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return "config: " + e.Reason }

// PageParseError reports a page that could not be processed as HTML.
// Any occurrence aborts the run: a partially processed site is unsafe
// to publish.
type PageParseError struct {
	Path string
	Err  error
}

func (e *PageParseError) Error() string { return fmt.Sprintf("parse %s: %v", e.Path, e.Err) }

func (e *PageParseError) Unwrap() error { return e.Err }

// AnalysisError reports a failed invocation of the external analysis
// tool. Output carries the tool's own diagnostics when it produced any.
type AnalysisError struct {
	Tool   string
	Output string
	Err    error
}

func (e *AnalysisError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("analysis tool %s: %v: %s", e.Tool, e.Err, e.Output)
	}
	return fmt.Sprintf("analysis tool %s: %v", e.Tool, e.Err)
}

func (e *AnalysisError) Unwrap() error { return e.Err }

// IOError reports a filesystem failure at any pipeline stage.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string { return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err) }

func (e *IOError) Unwrap() error { return e.Err }
