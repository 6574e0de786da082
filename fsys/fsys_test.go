package fsys_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/argyle-sh/argyle/fsys"
)

func TestOSOpenFile(t *testing.T) {
	t.Parallel()

	t.Run("OpensARelativePathBeneathTheRoot", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		dir := t.TempDir()
		g.Expect(os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hi"), 0o600)).To(Succeed())

		f, err := fsys.OS(dir).OpenFile(context.Background(), "a.txt")
		g.Expect(err).NotTo(HaveOccurred())

		defer func() { g.Expect(f.Reader.Close()).To(Succeed()) }()

		data, err := io.ReadAll(f.Reader)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(string(data)).To(Equal("hi"))
		g.Expect(f.Path).To(Equal(filepath.Join(dir, "a.txt")))
	})

	t.Run("RejectsADirectory", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		dir := t.TempDir()

		_, err := fsys.OS(dir).OpenFile(context.Background(), ".")
		g.Expect(err).To(MatchError(fsys.ErrNotFile))
	})

	t.Run("PropagatesMissingPaths", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		_, err := fsys.OS(t.TempDir()).OpenFile(context.Background(), "nope.txt")
		g.Expect(err).To(HaveOccurred())
	})

	t.Run("HonorsACancelledContext", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fsys.OS(t.TempDir()).OpenFile(ctx, "a.txt")
		g.Expect(err).To(MatchError(context.Canceled))
	})
}

func TestOSOpenFolder(t *testing.T) {
	t.Parallel()

	t.Run("ListsEntries", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		dir := t.TempDir()
		g.Expect(os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0o600)).To(Succeed())
		g.Expect(os.Mkdir(filepath.Join(dir, "sub"), 0o750)).To(Succeed())

		folder, err := fsys.OS(dir).OpenFolder(context.Background(), ".")
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(folder.Entries).To(HaveLen(2))
	})

	t.Run("RejectsARegularFile", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		dir := t.TempDir()
		g.Expect(os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0o600)).To(Succeed())

		_, err := fsys.OS(dir).OpenFolder(context.Background(), "a.txt")
		g.Expect(err).To(MatchError(fsys.ErrNotFolder))
	})
}
