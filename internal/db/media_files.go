package db

type MediaFile struct {
	ID           uint
	RootFolderID uint   `gorm:"index"`
	Path         string `gorm:"uniqueIndex"`
	Size         int64
	CreatedAt    uint `gorm:"autoCreateTime"`
	UpdatedAt    uint `gorm:"autoUpdateTime"`
}

type MediaFileClient ORMClient[MediaFile]

func (client *Client) MediaFile() *MediaFileClient {
	return &MediaFileClient{
		connection: client.connection,
	}
}

// AllPaths returns the absolute path of every tracked media file, keyed by id.
func (client *MediaFileClient) AllPaths() (map[uint]string, error) {
	var mediaFiles []MediaFile
	err := client.connection.
		Select("id", "path").
		Find(&mediaFiles).
		Error
	if err != nil {
		return nil, err
	}

	paths := make(map[uint]string, len(mediaFiles))
	for _, mediaFile := range mediaFiles {
		paths[mediaFile.ID] = mediaFile.Path
	}
	return paths, nil
}

func (client *MediaFileClient) FindByRootFolderID(rootFolderID uint) ([]MediaFile, error) {
	var mediaFiles []MediaFile
	err := client.connection.
		Order("id").
		Find(&mediaFiles, MediaFile{RootFolderID: rootFolderID}).
		Error
	return mediaFiles, err
}
