package curl

import "time"

// FileType enumerates the entry kinds a wildcard transfer can report.
type FileType int32

const (
	FileTypeFile FileType = iota
	FileTypeDirectory
	FileTypeSymlink
	FileTypeDevBlock
	FileTypeDevChar
	FileTypeNamedPipe
	FileTypeSocket
	FileTypeDoor
	FileTypeUnknown
)

// FileInfo describes one remote directory entry, passed to the chunk-begin
// callback during wildcard transfers. String forms are optional; an absent
// form is the empty string.
type FileInfo struct {
	Filename  string
	Filetype  FileType
	Time      time.Time
	Perm      uint32
	UID       int32
	GID       int32
	Size      int64
	Hardlinks int32

	// Textual forms as the remote listing reported them.
	Strings FileInfoStrings
}

type FileInfoStrings struct {
	Time   string
	Perm   string
	User   string
	Group  string
	Target string
}
