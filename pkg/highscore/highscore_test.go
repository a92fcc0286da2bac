package highscore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Al,ice\n", "Alice"},
		{"Bob", "Bob"},
		{"  Carol \r\n", "Carol"},
		{"", DefaultLabel},
		{" , \n", DefaultLabel},
		{"abcdefghijklmnopqrstuvwxyz", "abcdefghijklmnopqrst"},
		{"ÄÖÜäöüßÄÖÜäöüßÄÖÜäöüß", "ÄÖÜäöüßÄÖÜäöüßÄÖÜäöü"},
	}
	for _, c := range cases {
		got := Sanitize(c.in)
		assert.Equal(t, c.want, got, "in=%q", c.in)
		assert.NotContains(t, got, ",")
		assert.NotContains(t, got, "\n")
	}
}

// exerciseStore runs the behaviour every backend shares
func exerciseStore(t *testing.T, s Store) {
	ctx := context.Background()

	empty, err := s.TopN(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)

	for i := 0; i <= MaxEntries; i++ {
		require.NoError(t, s.Record(ctx, fmt.Sprintf("p%d", i), i*10))
	}
	require.NoError(t, s.Record(ctx, "Al,ice\n", 10000))

	all, err := s.TopN(ctx, 100)
	require.NoError(t, err)
	require.Len(t, all, MaxEntries)
	assert.Equal(t, Entry{Label: "Alice", Score: 10000}, all[0])
	for i := 1; i < len(all); i++ {
		assert.GreaterOrEqual(t, all[i-1].Score, all[i].Score)
	}
	// the two lowest scores fell off the end
	assert.Equal(t, 20, all[len(all)-1].Score)

	top, err := s.TopN(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []Entry{{"Alice", 10000}, {"p50", 500}, {"p49", 490}}, top)

	none, err := s.TopN(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores", "highscores.txt")
	s := NewFileStore(path)
	exerciseStore(t, s)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, MaxEntries)
	assert.Equal(t, "Alice,10000", lines[0])
}

func TestFileStoreSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscores.txt")
	content := "Ann,300\ngarbage\nBen,abc\n\nCat,100\nDan, 200 \n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s := NewFileStore(path)
	top, err := s.TopN(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, []Entry{{"Ann", 300}, {"Dan", 200}, {"Cat", 100}}, top)

	require.NoError(t, s.Record(context.Background(), "Eve", 250))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Ann,300\nEve,250\nDan,200\nCat,100\n", string(data))
}

func TestFileStoreLabelWithCommaSurvivesRoundTrip(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "hs.txt"))
	ctx := context.Background()
	require.NoError(t, s.Record(ctx, "a,b,c", 5))

	top, err := s.TopN(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []Entry{{"abc", 5}}, top)
}

func TestFileStoreReplacesFileWithoutLeftovers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hs.txt")
	require.NoError(t, os.WriteFile(path, []byte("Old,1\n"), 0o644))

	s := NewFileStore(path)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Record(ctx, fmt.Sprintf("p%d", i), i))
	}

	names, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, names, 1, "temp files must be renamed over the list")
	assert.Equal(t, "hs.txt", names[0].Name())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "p4,4\np3,3\np2,2\nOld,1\np1,1\np0,0\n", string(data))
}

func TestSQLiteStore(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "db", "scores.db"))
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	defer s.Close()
	exerciseStore(t, s)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(BackendMemory, "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	s, err = Open(BackendFile, filepath.Join(dir, "hs.txt"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "hs.txt"), s.(*FileStore).Path())

	_, err = Open(BackendSQLite, "")
	assert.ErrorIs(t, err, ErrMissingPath)

	_, err = Open("redis", "")
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

type failingStore struct{ recorded int }

func (f *failingStore) Record(context.Context, string, int) error {
	f.recorded++
	return errors.New("disk full")
}

func (f *failingStore) TopN(context.Context, int) ([]Entry, error) {
	return nil, errors.New("disk gone")
}

func TestBoardSwallowsErrors(t *testing.T) {
	fs := &failingStore{}
	b := NewBoard(fs)

	assert.NotPanics(t, func() { b.Record("Alice", 10) })
	assert.Equal(t, 1, fs.recorded)

	top := b.Top(10)
	assert.NotNil(t, top)
	assert.Empty(t, top)
	assert.NoError(t, b.Close())
}

func TestBoard(t *testing.T) {
	b := NewBoard(NewMemoryStore())
	b.Record("Alice", 30)
	b.Record("", 20)
	assert.Equal(t, []Entry{{"Alice", 30}, {DefaultLabel, 20}}, b.Top(10))
}
