package fileman

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeOpener struct {
	opened []string
	err    error
}

func (o *fakeOpener) Open(_ context.Context, path string) error {
	if o.err != nil {
		return o.err
	}
	o.opened = append(o.opened, path)
	return nil
}

// newTestDir creates:
//
//	docs/a.txt
//	src/main.go
//	.hidden
//	notes.md
func newTestDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "docs"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "src"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docs", "a.txt"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "main.go"), []byte("package main\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("hello"), 0644))
	return dir
}

func newNavigatorForTest(t *testing.T) (*Navigator, *MockApp, *fakeOpener) {
	t.Helper()
	ctrl := gomock.NewController(t)
	app := NewMockApp(ctrl)
	fo := &fakeOpener{}
	log, _ := test.NewNullLogger()
	nav := NewNavigator(app, Options{
		StartDir:   newTestDir(t),
		ShowHidden: true,
		Mouse:      true,
		Log:        log,
		Opener:     fo,
	})
	return nav, app, fo
}

func entryNames(nav *Navigator) []string {
	names := make([]string, len(nav.rows.Entries))
	for i, e := range nav.rows.Entries {
		names[i] = e.Name
	}
	return names
}
