package mediafile

import (
	"fmt"

	"github.com/wjohnson5/Radarr/internal/db"
)

// Reader exposes the media file inventory the root folder scan checks
// candidates against.
type Reader struct {
	dbClient *db.Client
}

func NewReader(dbClient *db.Client) *Reader {
	return &Reader{
		dbClient: dbClient,
	}
}

// AllPaths returns the absolute path of every tracked media file, keyed by id.
func (reader *Reader) AllPaths() (map[uint]string, error) {
	paths, err := reader.dbClient.MediaFile().AllPaths()
	if err != nil {
		return nil, fmt.Errorf("db.AllPaths: %w", err)
	}
	return paths, nil
}

// ReadByRootFolderID returns the media files tracked under one root folder.
func (reader *Reader) ReadByRootFolderID(rootFolderID uint) ([]db.MediaFile, error) {
	mediaFiles, err := reader.dbClient.MediaFile().FindByRootFolderID(rootFolderID)
	if err != nil {
		return nil, fmt.Errorf("db.FindByRootFolderID: %w", err)
	}
	return mediaFiles, nil
}
