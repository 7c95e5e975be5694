package rootfolder

import (
	"errors"
	"time"
)

var (
	ErrInvalidFolderPath   = errors.New("invalid root folder path")
	ErrFolderNotFound      = errors.New("folder not found")
	ErrRootFolderNotFound  = errors.New("root folder not found")
	ErrDuplicateRootFolder = errors.New("root folder already exists")
	ErrFolderNotWritable   = errors.New("root folder is not writable")
)

// RootFolder is a top level directory the library scans for media.
type RootFolder struct {
	ID   uint   `json:"id"`
	Path string `json:"path"`

	// UnmappedFolders is computed on request and never persisted.
	UnmappedFolders []UnmappedFolder `json:"unmappedFolders,omitempty"`
}

// UnmappedFolder is an immediate subdirectory of a root folder that no
// tracked media file lives under.
type UnmappedFolder struct {
	Name string `json:"name"`
	Path string `json:"path"`

	// LastModified is best effort. A zero value means it was unavailable.
	LastModified time.Time `json:"lastModified,omitempty"`
}

//go:generate mockgen -source=rootfolder.go -destination=mock/providers.go -package=mock

// DiskProvider answers questions about the real filesystem.
type DiskProvider interface {
	FolderExists(path string) bool
	FolderWritable(path string) bool

	// GetDirectories lists the absolute paths of the immediate
	// subdirectories of path.
	GetDirectories(path string) ([]string, error)
	FolderLastModified(path string) (time.Time, error)
}

// Repository stores root folder records.
type Repository interface {
	All() ([]RootFolder, error)

	// Get returns an error satisfying errors.Is(err, ErrRootFolderNotFound)
	// when no record has the id.
	Get(id uint) (RootFolder, error)

	// Insert assigns an id and returns the stored record.
	Insert(folder RootFolder) (RootFolder, error)
	Delete(id uint) error
}

// Inventory lists the file paths already tracked as library media,
// keyed by media file id.
type Inventory interface {
	AllPaths() (map[uint]string, error)
}

// RecycleBinProvider returns the configured recycle bin directory,
// or an empty string when none is configured.
type RecycleBinProvider interface {
	RecycleBinPath() string
}
