package cmd

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags puts every flag of the subcommand named by args back to its
// default; cobra keeps values between executions in the same process.
func resetFlags(t *testing.T, args []string) {
	t.Helper()

	sub, _, err := rootCmd.Find(args)
	require.NoError(t, err)

	sub.Flags().VisitAll(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			require.NoError(t, sv.Replace(nil))
		} else {
			require.NoError(t, f.Value.Set(f.DefValue))
		}
		f.Changed = false
	})
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(t, args)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestSubmitCommand_Success(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/compress":
			_, fh, err := r.FormFile("file")
			if assert.NoError(t, err) {
				assert.Equal(t, "upload.txt", fh.Filename)
			}
			assert.Equal(t, "ada", r.FormValue("owner"))
			_, _ = io.WriteString(w, `{"message":"Compressed","file":"/files/upload.zip"}`)
		case "/files/upload.zip":
			_, _ = io.WriteString(w, "zipdata")
		default:
			http.NotFound(w, r)
		}
	}))
	defer backend.Close()

	dir := t.TempDir()
	path := filepath.Join(dir, "upload.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))
	outDir := filepath.Join(dir, "out")

	out, err := execute(t, "submit", "--config", dir,
		"--endpoint", backend.URL+"/compress",
		"--file", path, "--field", "owner=ada",
		"--html=false", "--download-dir", outDir)
	require.NoError(t, err)

	assert.Contains(t, out, "Compressed\n")
	assert.Contains(t, out, "Download Compressed File: /files/upload.zip")

	data, err := os.ReadFile(filepath.Join(outDir, "upload.zip"))
	require.NoError(t, err)
	assert.Equal(t, "zipdata", string(data))
}

func TestSubmitCommand_ApplicationError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":"Unsupported file type"}`)
	}))
	defer backend.Close()

	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))

	out, err := execute(t, "submit", "--config", dir,
		"--endpoint", backend.URL+"/compress",
		"--file", path, "--html", "--download-dir", "")
	assert.ErrorIs(t, err, errSubmissionFailed)
	assert.Contains(t, out, `<p style="color: red;">Unsupported file type</p>`)
}

func TestSubmitCommand_RejectsEmptyForm(t *testing.T) {
	_, err := execute(t, "submit", "--config", t.TempDir(), "--endpoint", "http://127.0.0.1:1/compress",
		"--html=false", "--download-dir", "")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, errSubmissionFailed)
}

func TestConfigDebugCommand(t *testing.T) {
	out, err := execute(t, "config", "debug", "--config", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, `"Endpoint"`)
}
