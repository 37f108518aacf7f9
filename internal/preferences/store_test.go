package preferences

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 4, 5, 6, 7, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func TestOpen_Defaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "prefs")
	s, err := Open(dir, WithClock(fixedClock))
	require.NoError(t, err)

	assert.Equal(t, "en", s.Language())
	assert.Empty(t, s.RecentFiles())
	assert.DirExists(t, dir)
	assert.NoFileExists(t, s.Path())

	_, ok := s.Last()
	assert.False(t, ok)
}

func TestAddRecent(t *testing.T) {
	prefsDir := t.TempDir()
	s, err := Open(prefsDir, WithClock(fixedClock))
	require.NoError(t, err)

	var dirs []string
	for i := 0; i < MaxRecent+2; i++ {
		d := filepath.Join(t.TempDir(), fmt.Sprintf("d%d", i))
		require.NoError(t, os.Mkdir(d, 0o755))
		dirs = append(dirs, d)
		require.NoError(t, s.AddRecent(d, RecentConfig{}))
	}

	recent := s.RecentFiles()
	require.Len(t, recent, MaxRecent)
	assert.Equal(t, dirs[len(dirs)-1], recent[0].DirectoryPath)

	// Re-adding moves the entry to the front without duplicating it.
	require.NoError(t, s.AddRecent(dirs[3], RecentConfig{IgnoreFile: "/rules"}))
	recent = s.RecentFiles()
	require.Len(t, recent, MaxRecent)
	assert.Equal(t, dirs[3], recent[0].DirectoryPath)
	assert.Equal(t, "/rules", recent[0].Config.IgnoreFile)

	count := 0
	for _, entry := range recent {
		if entry.DirectoryPath == dirs[3] {
			count++
		}
	}
	assert.Equal(t, 1, count)

	last, ok := s.Last()
	require.True(t, ok)
	assert.Equal(t, dirs[3], last.DirectoryPath)
}

func TestPersistence(t *testing.T) {
	prefsDir := t.TempDir()
	project := t.TempDir()

	s, err := Open(prefsDir, WithClock(fixedClock))
	require.NoError(t, err)
	require.NoError(t, s.SetLanguage("es"))
	require.NoError(t, s.AddRecent(project, RecentConfig{IgnoreFile: "x.ignore"}))

	reopened, err := Open(prefsDir)
	require.NoError(t, err)
	assert.Equal(t, "es", reopened.Language())
	require.Len(t, reopened.RecentFiles(), 1)
	assert.Equal(t, project, reopened.RecentFiles()[0].DirectoryPath)
	assert.True(t, fixedNow.Equal(reopened.RecentFiles()[0].CreatedAt.Time))

	var raw map[string]interface{}
	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "language")
	assert.Contains(t, raw, "recent_files")
	assert.Contains(t, raw, "created_at")
	assert.Contains(t, raw, "updated_at")
}

func TestClearRecent(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.AddRecent(t.TempDir(), RecentConfig{}))
	require.NoError(t, s.ClearRecent())
	assert.Empty(t, s.RecentFiles())
}

func TestOpen_PrunesMissingDirectories(t *testing.T) {
	prefsDir := t.TempDir()
	existing := t.TempDir()
	content := fmt.Sprintf(`{
  "language": "zh",
  "recent_files": [
    {"directory_path": %q, "config": {}, "created_at": "2024-01-02T03:04:05.123456"},
    {"directory_path": %q, "config": {"ignore_file": "a"}, "created_at": "2024-01-02T03:04:05"}
  ]
}`, filepath.Join(prefsDir, "gone"), existing)
	require.NoError(t, os.WriteFile(filepath.Join(prefsDir, FileName), []byte(content), 0o644))

	s, err := Open(prefsDir, WithClock(fixedClock))
	require.NoError(t, err)
	assert.Equal(t, "zh", s.Language())
	recent := s.RecentFiles()
	require.Len(t, recent, 1)
	assert.Equal(t, existing, recent[0].DirectoryPath)
	assert.Equal(t, "a", recent[0].Config.IgnoreFile)
	assert.Equal(t, 2024, recent[0].CreatedAt.Year())
}

func TestOpen_CorruptFileIsBackedUp(t *testing.T) {
	prefsDir := t.TempDir()
	path := filepath.Join(prefsDir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s, err := Open(prefsDir, WithClock(fixedClock))
	require.NoError(t, err)
	assert.Equal(t, "en", s.Language())

	backup := path + ".20240304_050607.backup"
	data, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(data))

	require.NoError(t, s.SetLanguage("es"))
	reopened, err := Open(prefsDir)
	require.NoError(t, err)
	assert.Equal(t, "es", reopened.Language())
}

func TestTimestamp_RoundTrip(t *testing.T) {
	data, err := json.Marshal(Timestamp{fixedNow})
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-04T05:06:07Z"`, string(data))

	var ts Timestamp
	require.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
}
