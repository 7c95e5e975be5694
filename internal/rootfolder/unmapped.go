package rootfolder

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Special folders operating systems and NAS appliances drop into shares.
// Compared against lowercased folder names.
var specialFolderNames = map[string]struct{}{
	"$recycle.bin":              {},
	"system volume information": {},
	"recycler":                  {},
	"lost+found":                {},
	".appledb":                  {},
	".appledesktop":             {},
	".appledouble":              {},
	"@eadir":                    {},
	".grab":                     {},
}

// unmappedFolders lists the immediate subdirectories of folder that are not
// covered by any tracked media file, skipping special folders and the
// configured recycle bin. The order of the disk listing is preserved.
func (service *Service) unmappedFolders(folder RootFolder) ([]UnmappedFolder, error) {
	directories, err := service.disk.GetDirectories(folder.Path)
	if err != nil {
		return nil, fmt.Errorf("disk.GetDirectories: %w", err)
	}
	inventoryPaths, err := service.inventory.AllPaths()
	if err != nil {
		return nil, fmt.Errorf("inventory.AllPaths: %w", err)
	}
	recycleBinPath := service.recycleBin.RecycleBinPath()

	result := make([]UnmappedFolder, 0, len(directories))
	for _, directoryPath := range directories {
		name := filepath.Base(directoryPath)
		if _, ok := specialFolderNames[strings.ToLower(name)]; ok {
			continue
		}
		if recycleBinPath != "" && directoryPath == recycleBinPath {
			continue
		}
		if isMapped(directoryPath, inventoryPaths) {
			continue
		}

		unmapped := UnmappedFolder{
			Name: name,
			Path: directoryPath,
		}
		if lastModified, err := service.disk.FolderLastModified(directoryPath); err == nil {
			unmapped.LastModified = lastModified
		}
		result = append(result, unmapped)
	}
	return result, nil
}

// isMapped reports whether some tracked media file lives at or under
// directoryPath.
func isMapped(directoryPath string, inventoryPaths map[uint]string) bool {
	prefix := directoryPath + string(filepath.Separator)
	for _, mediaFilePath := range inventoryPaths {
		if mediaFilePath == directoryPath || strings.HasPrefix(mediaFilePath, prefix) {
			return true
		}
	}
	return false
}
