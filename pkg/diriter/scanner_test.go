//nolint:varnamelen // Test files use idiomatic short variable names (t, g, etc.)
package diriter_test

import (
	"io/fs"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/dir-iterator/pkg/diriter"
	"github.com/joe/dir-iterator/pkg/filesystem"
)

func TestScanner_YieldsEveryEntry(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	mem := memTree(g, "/r/a/b.txt", "/r/c.txt")
	it, err := diriter.Begin(filesystem.NewAferoFileSystem(mem), "/r", diriter.DirsBefore)
	g.Expect(err).ShouldNot(HaveOccurred())

	scanner := diriter.NewScanner(it)
	defer scanner.Close()

	var (
		paths []string
		dirs  []string
	)

	for entry, ok := scanner.Next(); ok; entry, ok = scanner.Next() {
		paths = append(paths, entry.RelativePath)

		if entry.IsDir() {
			dirs = append(dirs, entry.Basename)
		}
	}

	g.Expect(scanner.Err()).ShouldNot(HaveOccurred())
	g.Expect(paths).To(ConsistOf("a", "a/b.txt", "c.txt"))
	g.Expect(dirs).To(ConsistOf("a"))

	_, ok := scanner.Next()
	g.Expect(ok).To(BeFalse())
}

func TestScanner_ReportsStrictFailure(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	mem := memTree(g, "/r/locked/x.txt")
	fault := newFaultFS(filesystem.NewAferoFileSystem(mem))
	fault.openErr["/r/locked"] = fs.ErrPermission

	it, err := diriter.Begin(fault, "/r", diriter.Strict, diriter.WithSink(&recordingSink{}))
	g.Expect(err).ShouldNot(HaveOccurred())

	scanner := diriter.NewScanner(it)
	defer scanner.Close()

	for _, ok := scanner.Next(); ok; _, ok = scanner.Next() {
	}

	g.Expect(scanner.Err()).To(MatchError(fs.ErrPermission))
}

func TestScanner_CloseAbortsRunningWalk(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	mem := memTree(g, "/r/a/b/c.txt", "/r/d.txt")
	tracking := filesystem.NewTrackingFileSystem(filesystem.NewAferoFileSystem(mem))

	it, err := diriter.Begin(tracking, "/r", 0)
	g.Expect(err).ShouldNot(HaveOccurred())

	scanner := diriter.NewScanner(it)

	_, ok := scanner.Next()
	g.Expect(ok).To(BeTrue())

	scanner.Close()
	scanner.Close()

	g.Expect(tracking.OpenHandles()).To(BeZero())

	_, ok = scanner.Next()
	g.Expect(ok).To(BeFalse())
	g.Expect(scanner.Err()).ShouldNot(HaveOccurred())
}
