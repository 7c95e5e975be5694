package rootfolder

import (
	"errors"
	"fmt"

	"github.com/wjohnson5/Radarr/internal/db"
	"github.com/wjohnson5/Radarr/internal/xslices"
)

// DBRepository is the sqlite backed Repository.
type DBRepository struct {
	dbClient *db.Client
}

func NewDBRepository(dbClient *db.Client) *DBRepository {
	return &DBRepository{
		dbClient: dbClient,
	}
}

func (repository *DBRepository) All() ([]RootFolder, error) {
	folders, err := repository.dbClient.RootFolder().All()
	if err != nil {
		return nil, fmt.Errorf("db.All: %w", err)
	}
	return xslices.Map(folders, func(folder db.RootFolder) RootFolder {
		return RootFolder{
			ID:   folder.ID,
			Path: folder.Path,
		}
	}), nil
}

func (repository *DBRepository) Get(id uint) (RootFolder, error) {
	folder, err := repository.dbClient.RootFolder().Get(id)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return RootFolder{}, fmt.Errorf("%w: %d", ErrRootFolderNotFound, id)
		}
		return RootFolder{}, fmt.Errorf("db.Get: %w", err)
	}
	return RootFolder{
		ID:   folder.ID,
		Path: folder.Path,
	}, nil
}

func (repository *DBRepository) Insert(folder RootFolder) (RootFolder, error) {
	record := db.RootFolder{
		Path: folder.Path,
	}
	if err := repository.dbClient.RootFolder().Insert(&record); err != nil {
		return RootFolder{}, fmt.Errorf("db.Insert: %w", err)
	}
	return RootFolder{
		ID:   record.ID,
		Path: record.Path,
	}, nil
}

func (repository *DBRepository) Delete(id uint) error {
	if err := repository.dbClient.RootFolder().Delete(id); err != nil {
		return fmt.Errorf("db.Delete: %w", err)
	}
	return nil
}
