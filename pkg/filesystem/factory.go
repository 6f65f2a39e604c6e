package filesystem

import (
	"fmt"
)

// CreateFileSystem creates a FileSystem for the given walk root.
// Returns (filesystem, basePath, closer, error).
// - filesystem: The FileSystem to walk with
// - basePath: The path to hand to the walker (stripped of URL prefix)
// - closer: A function to call when done (closes SFTP connections), or nil for local
func CreateFileSystem(pathStr string) (FileSystem, string, func(), error) {
	parsed, err := ParsePath(pathStr)
	if err != nil {
		return nil, "", nil, err
	}

	if !parsed.IsRemote {
		return NewRealFileSystem(), parsed.LocalPath, nil, nil
	}

	conn, err := Connect(parsed.Host, parsed.Port, parsed.User)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to connect to %s@%s:%d: %w",
			parsed.User, parsed.Host, parsed.Port, err)
	}

	closer := func() {
		_ = conn.Close()
	}

	return NewSFTPFileSystem(conn), parsed.Path, closer, nil
}
