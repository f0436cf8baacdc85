package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	router := chi.NewRouter()
	router.Get("/api/Food/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer sk-test-123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 42, "name": "Oatmeal"})
	})
	server := httptest.NewServer(router)
	defer server.Close()
	baseURL := server.URL + "/api"

	_, stderr, err := runNCC(t, binaryPath, home, baseURL,
		"session", "set",
		"--access-token", "sk-test-123",
		"--email", "jane@example.com",
	)
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runNCC(t, binaryPath, home, baseURL, "food", "get", "42")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Oatmeal")

	stdout, stderr, err = runNCC(t, binaryPath, home, baseURL, "session", "show")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "jane@example.com")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "ncc-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/ncc")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build ncc binary: %s", string(output))
	return binaryPath
}

func runNCC(t *testing.T, binaryPath, home, baseURL string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(),
		"HOME="+home,
		"NUTRICOACH_API_BASE_URL="+baseURL,
		"NUTRICOACH_STORE_BACKEND=file",
	)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
