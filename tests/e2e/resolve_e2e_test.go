package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alias-profiles/tests/testutil"
)

func TestResolveCommandE2E(t *testing.T) {
	root := testutil.RepoRoot(t)
	outFile := filepath.Join(t.TempDir(), "resolution.yaml")

	cmd := exec.Command("go", "run", "./cmd/alias-profiles", "resolve",
		"--deps-file", "fixtures/project/aliases.yaml",
		"--profile", "dev",
		"--profile", ":test",
		"--output", outFile,
	)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))

	assert.Contains(t, string(out), "matched aliases: dev/run")
	require.FileExists(t, outFile)
}

func TestValidateCommandE2EExitCode(t *testing.T) {
	root := testutil.RepoRoot(t)

	cmd := exec.Command("go", "run", "./cmd/alias-profiles", "validate",
		"--deps-file", "fixtures/project/aliases.yaml",
		"--profile", "opts-only",
	)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	require.Error(t, err)
	assert.Contains(t, string(out), "Error processing multi-alias profiles.")
	assert.Contains(t, string(out), "exit status 2")
}
