package cssunify

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"strings"
)

// invokeAnalysis serializes the analysis configuration to a transient
// file, runs the external tool over the full page set, and returns its
// standard output as the consolidated CSS. The transient file is removed
// on every exit path. Page paths are passed as direct argv entries, so
// spaces and shell metacharacters in paths need no quoting.
//
// Non-zero exit or launch failure surfaces as an AnalysisError carrying
// the tool's captured diagnostic output. No retry is attempted.
func invokeAnalysis(tool string, cfg analysisConfig, pages []string) ([]byte, error) {
	tmp, err := os.CreateTemp("", "cssunify-*.json")
	if err != nil {
		return nil, &IOError{Op: "create", Path: "analysis config", Err: err}
	}
	defer os.Remove(tmp.Name())

	if err := json.NewEncoder(tmp).Encode(cfg); err != nil {
		tmp.Close()
		return nil, &IOError{Op: "write", Path: tmp.Name(), Err: err}
	}
	if err := tmp.Close(); err != nil {
		return nil, &IOError{Op: "write", Path: tmp.Name(), Err: err}
	}

	args := append([]string{"--config", tmp.Name()}, pages...)
	cmd := exec.Command(tool, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, &AnalysisError{Tool: tool, Output: strings.TrimSpace(stderr.String()), Err: err}
	}

	return stdout.Bytes(), nil
}
