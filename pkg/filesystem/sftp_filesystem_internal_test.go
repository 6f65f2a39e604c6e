//nolint:varnamelen,testpackage // Test files use idiomatic short variable names
package filesystem

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"testing"
	"time"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers
)

type fakeInfo struct {
	name string
	dir  bool
}

func (f fakeInfo) Name() string       { return f.name }
func (f fakeInfo) Size() int64        { return 0 }
func (f fakeInfo) Mode() os.FileMode  { return 0o644 }
func (f fakeInfo) ModTime() time.Time { return time.Time{} }
func (f fakeInfo) IsDir() bool        { return f.dir }
func (f fakeInfo) Sys() any           { return nil }

// fakeSFTPClient serves a fixed remote tree.
type fakeSFTPClient struct {
	dirs  map[string][]os.FileInfo
	stats map[string]os.FileInfo
}

func (c *fakeSFTPClient) ReadDir(path string) ([]os.FileInfo, error) {
	infos, ok := c.dirs[path]
	if !ok {
		return nil, os.ErrNotExist
	}

	return infos, nil
}

func (c *fakeSFTPClient) Stat(path string) (os.FileInfo, error) {
	info, ok := c.stats[path]
	if !ok {
		return nil, os.ErrNotExist
	}

	return info, nil
}

func (c *fakeSFTPClient) Lstat(path string) (os.FileInfo, error) {
	return c.Stat(path)
}

func TestSFTPFileSystem_OpenDirYieldsListingOneNameAtATime(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	client := &fakeSFTPClient{
		dirs: map[string][]os.FileInfo{
			"data": {fakeInfo{name: "a.txt"}, fakeInfo{name: "sub", dir: true}},
		},
	}
	sftpFS := &SFTPFileSystem{client: client}

	handle, err := sftpFS.OpenDir("data")
	g.Expect(err).ShouldNot(HaveOccurred())

	name, err := handle.ReadName()
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(name).To(Equal("a.txt"))

	name, err = handle.ReadName()
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(name).To(Equal("sub"))

	_, err = handle.ReadName()
	g.Expect(err).To(MatchError(io.EOF))

	g.Expect(handle.Close()).To(Succeed())
	g.Expect(handle.Close()).To(MatchError(os.ErrClosed))

	_, err = handle.ReadName()
	g.Expect(err).To(MatchError(os.ErrClosed))
}

func TestSFTPFileSystem_ErrorsKeepNotExist(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	sftpFS := &SFTPFileSystem{client: &fakeSFTPClient{}}

	_, err := sftpFS.OpenDir("gone")
	g.Expect(errors.Is(err, fs.ErrNotExist)).To(BeTrue())
	g.Expect(err.Error()).To(ContainSubstring("remote directory gone"))

	_, err = sftpFS.Stat("gone")
	g.Expect(errors.Is(err, fs.ErrNotExist)).To(BeTrue())

	_, err = sftpFS.Lstat("gone")
	g.Expect(errors.Is(err, fs.ErrNotExist)).To(BeTrue())
}

func TestSFTPConnection_ConnectFailsFastForUnresolvableHost(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	// Fails either for lack of credentials or at DNS resolution.
	conn, err := Connect("nonexistent.invalid", 22, "walker")
	g.Expect(conn).To(BeNil())
	g.Expect(err).To(HaveOccurred())
}
