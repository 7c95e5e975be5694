package db

type RootFolder struct {
	ID        uint
	Path      string `gorm:"uniqueIndex"`
	CreatedAt uint   `gorm:"autoCreateTime"`
	UpdatedAt uint   `gorm:"autoUpdateTime"`
}

type RootFolderClient ORMClient[RootFolder]

func (client *Client) RootFolder() *RootFolderClient {
	return &RootFolderClient{
		connection: client.connection,
	}
}

func (client *RootFolderClient) All() ([]RootFolder, error) {
	var folders []RootFolder
	err := client.connection.
		Order("id").
		Find(&folders).
		Error
	return folders, err
}

func (client *RootFolderClient) Get(id uint) (RootFolder, error) {
	var folder RootFolder
	err := client.connection.
		Take(&folder, RootFolder{ID: id}).
		Error
	return folder, err
}

// Insert stores the folder and sets its assigned id on the argument.
func (client *RootFolderClient) Insert(folder *RootFolder) error {
	return client.connection.Create(folder).Error
}

func (client *RootFolderClient) Delete(id uint) error {
	return client.connection.
		Delete(&RootFolder{}, id).
		Error
}
