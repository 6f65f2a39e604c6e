//nolint:varnamelen // Test files use idiomatic short variable names (t, g, etc.)
package diriter

import (
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers
)

func TestTrimTrailingSeparators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "/", want: "/"},
		{in: "////", want: "/"},
		{in: "a", want: "a"},
		{in: "a/", want: "a"},
		{in: "a//b//", want: "a//b"},
		{in: ".", want: "."},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			g.Expect(trimTrailingSeparators(tt.in)).To(Equal(tt.want))
		})
	}
}

func TestPathBuffer_AppendAndViews(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	buf := newPathBuffer("/")
	root := buf.len()

	buf.appendName("etc")
	g.Expect(buf.String()).To(Equal("/etc"))
	g.Expect(buf.nameStart(root)).To(Equal(1))

	dir := buf.len()
	buf.appendName("hosts")
	g.Expect(buf.String()).To(Equal("/etc/hosts"))
	g.Expect(buf.view(span{start: buf.nameStart(dir), end: buf.len()})).To(Equal("hosts"))
	g.Expect(buf.view(span{start: buf.nameStart(root), end: buf.len()})).To(Equal("etc/hosts"))

	buf.truncate(dir)
	g.Expect(buf.String()).To(Equal("/etc"))
	g.Expect(buf.view(span{start: 0, end: 99})).To(BeEmpty())
}

func TestFlags_String(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(Flags(0).String()).To(Equal("none"))
	g.Expect((Strict | DirsAfter).String()).To(Equal("strict|dirs-after"))
	g.Expect((FollowSymlinks | DirsBefore).Has(DirsBefore)).To(BeTrue())
	g.Expect(DirsBefore.Has(DirsBefore | DirsAfter)).To(BeFalse())
	g.Expect(After.String()).To(Equal("after"))
	g.Expect(StatusError.String()).To(Equal("error"))
}
