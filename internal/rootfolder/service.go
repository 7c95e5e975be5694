package rootfolder

import (
	"fmt"
	"log/slog"
	"path/filepath"
)

// Service owns root folder registration and the unmapped folder scan.
// It keeps no state of its own between calls.
type Service struct {
	logger     *slog.Logger
	disk       DiskProvider
	repository Repository
	inventory  Inventory
	recycleBin RecycleBinProvider
}

func NewService(
	logger *slog.Logger,
	disk DiskProvider,
	repository Repository,
	inventory Inventory,
	recycleBin RecycleBinProvider,
) *Service {
	return &Service{
		logger:     logger,
		disk:       disk,
		repository: repository,
		inventory:  inventory,
		recycleBin: recycleBin,
	}
}

// Add validates and stores a new root folder. The id of the argument is
// ignored; the stored record with its assigned id is returned.
func (service *Service) Add(folder RootFolder) (RootFolder, error) {
	if folder.Path == "" || !filepath.IsAbs(folder.Path) {
		return RootFolder{}, fmt.Errorf("%w: %q", ErrInvalidFolderPath, folder.Path)
	}
	if !service.disk.FolderExists(folder.Path) {
		return RootFolder{}, fmt.Errorf("%w: %s", ErrFolderNotFound, folder.Path)
	}

	storedFolders, err := service.repository.All()
	if err != nil {
		return RootFolder{}, fmt.Errorf("repository.All: %w", err)
	}
	for _, stored := range storedFolders {
		if stored.Path == folder.Path {
			return RootFolder{}, fmt.Errorf("%w: %s", ErrDuplicateRootFolder, folder.Path)
		}
	}

	if !service.disk.FolderWritable(folder.Path) {
		return RootFolder{}, fmt.Errorf("%w: %s", ErrFolderNotWritable, folder.Path)
	}

	created, err := service.repository.Insert(RootFolder{
		Path: folder.Path,
	})
	if err != nil {
		return RootFolder{}, fmt.Errorf("repository.Insert: %w", err)
	}
	service.logger.Info("Added a root folder", "id", created.ID, "path", created.Path)
	return created, nil
}

// Remove deletes the root folder record. Nothing on disk is touched.
func (service *Service) Remove(id uint) error {
	if err := service.repository.Delete(id); err != nil {
		return fmt.Errorf("repository.Delete: %w", err)
	}
	service.logger.Info("Removed a root folder", "id", id)
	return nil
}

func (service *Service) Get(id uint, includeUnmapped bool) (RootFolder, error) {
	folder, err := service.repository.Get(id)
	if err != nil {
		return RootFolder{}, fmt.Errorf("repository.Get: %w", err)
	}
	if !includeUnmapped {
		return folder, nil
	}

	unmappedFolders, err := service.unmappedFolders(folder)
	if err != nil {
		return RootFolder{}, fmt.Errorf("service.unmappedFolders: %w", err)
	}
	folder.UnmappedFolders = unmappedFolders
	return folder, nil
}

func (service *Service) GetAll(includeUnmapped bool) ([]RootFolder, error) {
	folders, err := service.repository.All()
	if err != nil {
		return nil, fmt.Errorf("repository.All: %w", err)
	}
	if !includeUnmapped {
		return folders, nil
	}

	for index, folder := range folders {
		unmappedFolders, err := service.unmappedFolders(folder)
		if err != nil {
			return nil, fmt.Errorf("service.unmappedFolders: %w", err)
		}
		folders[index].UnmappedFolders = unmappedFolders
	}
	return folders, nil
}
