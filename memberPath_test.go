package mytar

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	cases := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"file.txt", filepath.Join(dir, "file.txt"), false},
		{"./file.txt", filepath.Join(dir, "file.txt"), false},
		{"sub/dir/../file.txt", filepath.Join(dir, "sub", "file.txt"), false},
		{"/etc/passwd", filepath.Join(dir, "etc", "passwd"), false},
		{"/../../evil", filepath.Join(dir, "evil"), false},
		{"..hidden", filepath.Join(dir, "..hidden"), false},
		{"..", "", true},
		{"../evil.txt", "", true},
		{"a/../../x", "", true},
		{"/", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := memberPath(dir, tc.name)
			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "path leaves")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMemberPathWorkingDirectory(t *testing.T) {
	got, err := memberPath(".", "notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", got)

	_, err = memberPath(".", "../notes.txt")
	assert.Error(t, err)
}
