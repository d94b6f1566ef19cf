package cssunify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDestination(t *testing.T) {
	tests := []struct {
		name string
		dest string
		want string
	}{
		{
			name: "unset uses default",
			dest: "",
			want: "/assets/styles.css",
		},
		{
			name: "already root-relative",
			dest: "/css/site.css",
			want: "/css/site.css",
		},
		{
			name: "missing leading slash",
			dest: "css/site.css",
			want: "/css/site.css",
		},
		{
			name: "doubled leading slashes collapse",
			dest: "//css/site.css",
			want: "/css/site.css",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, normalizeDestination(tt.dest))
		})
	}
}

func TestWriteConsolidated(t *testing.T) {
	root := t.TempDir()

	// Content written verbatim: no trailing newline appended.
	css := []byte(".a{color:red}")
	target, err := writeConsolidated(root, "/assets/styles.css", css)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "assets", "styles.css"), target)

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, css, got)
}

func TestWriteConsolidated_Overwrites(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, root, "assets/styles.css", "old")

	_, err := writeConsolidated(root, "/assets/styles.css", []byte("new"))
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(root, "assets", "styles.css"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}
