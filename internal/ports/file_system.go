package ports

// AccessMode selects the permissions of files written through FileSystem.
type AccessMode int

const (
	// ReadWrite is owner read/write, used for the configuration file.
	ReadWrite AccessMode = iota
	ReadWriteExecute
	// ReadAllWriteOwner is used for cipher output files.
	ReadAllWriteOwner
)

// FileSystem reads and writes the configuration file and cipher input/output.
// Paths starting with "~" are relative to the user's home directory.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, content []byte, accessMode AccessMode) error
	EnsureDirExists(path string) error
	FileExists(path string) (bool, error)
}
