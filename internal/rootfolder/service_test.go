package rootfolder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wjohnson5/Radarr/internal/config"
	"github.com/wjohnson5/Radarr/internal/db"
	"github.com/wjohnson5/Radarr/internal/rootfolder"
	"github.com/wjohnson5/Radarr/internal/rootfolder/mock"
	"go.uber.org/mock/gomock"
)

func TestService_Add(t *testing.T) {
	testCases := []struct {
		name          string
		folderPath    string
		insertFolders []db.RootFolder
		setupDisk     func(*mock.MockDiskProvider)
		want          rootfolder.RootFolder
		wantErr       error
	}{
		{
			name:       "adds a valid folder",
			folderPath: "/mnt/media",
			setupDisk: func(disk *mock.MockDiskProvider) {
				disk.EXPECT().FolderExists("/mnt/media").Return(true)
				disk.EXPECT().FolderWritable("/mnt/media").Return(true)
			},
			want: rootfolder.RootFolder{
				ID:   1,
				Path: "/mnt/media",
			},
		},
		{
			name:       "rejects an empty path",
			folderPath: "",
			wantErr:    rootfolder.ErrInvalidFolderPath,
		},
		{
			name:       "rejects a relative path",
			folderPath: "BAD PATH",
			wantErr:    rootfolder.ErrInvalidFolderPath,
		},
		{
			name:       "rejects a directory that does not exist",
			folderPath: "/mnt/media",
			setupDisk: func(disk *mock.MockDiskProvider) {
				disk.EXPECT().FolderExists("/mnt/media").Return(false)
			},
			wantErr: rootfolder.ErrFolderNotFound,
		},
		{
			name:       "rejects a duplicate path",
			folderPath: "/mnt/media",
			insertFolders: []db.RootFolder{
				{Path: "/mnt/media"},
			},
			setupDisk: func(disk *mock.MockDiskProvider) {
				disk.EXPECT().FolderExists("/mnt/media").Return(true)
			},
			wantErr: rootfolder.ErrDuplicateRootFolder,
		},
		{
			name:       "rejects a directory that is not writable",
			folderPath: "/mnt/media",
			setupDisk: func(disk *mock.MockDiskProvider) {
				disk.EXPECT().FolderExists("/mnt/media").Return(true)
				disk.EXPECT().FolderWritable("/mnt/media").Return(false)
			},
			wantErr: rootfolder.ErrFolderNotWritable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tester := newTester(t)
			if len(tc.insertFolders) > 0 {
				require.NoError(t, db.BatchCreate(tester.dbClient, tc.insertFolders))
			}

			ctrl := gomock.NewController(t)
			disk := mock.NewMockDiskProvider(ctrl)
			if tc.setupDisk != nil {
				tc.setupDisk(disk)
			}
			service := tester.getService(disk, mock.NewMockInventory(ctrl), config.Config{})

			got, gotErr := service.Add(rootfolder.RootFolder{
				Path: tc.folderPath,
			})
			assert.ErrorIs(t, gotErr, tc.wantErr)

			storedFolders, err := db.FindAllByValue(tester.dbClient, db.RootFolder{
				Path: tc.folderPath,
			})
			require.NoError(t, err)
			if tc.wantErr != nil {
				assert.Len(t, storedFolders, len(tc.insertFolders))
				return
			}
			assert.Equal(t, tc.want, got)
			assert.Len(t, storedFolders, 1)
		})
	}
}

func TestService_Remove(t *testing.T) {
	tester := newTester(t)
	require.NoError(t, db.BatchCreate(tester.dbClient, []db.RootFolder{
		{ID: 1, Path: "/mnt/media"},
		{ID: 2, Path: "/mnt/tv"},
	}))

	ctrl := gomock.NewController(t)
	service := tester.getService(
		mock.NewMockDiskProvider(ctrl),
		mock.NewMockInventory(ctrl),
		config.Config{},
	)

	require.NoError(t, service.Remove(1))

	storedFolders, err := db.GetAll[db.RootFolder](tester.dbClient)
	require.NoError(t, err)
	require.Len(t, storedFolders, 1)
	assert.Equal(t, "/mnt/tv", storedFolders[0].Path)

	// deleting an unknown id is a no-op for the sqlite repository
	assert.NoError(t, service.Remove(999))
}

func TestService_Get(t *testing.T) {
	tester := newTester(t)
	require.NoError(t, db.BatchCreate(tester.dbClient, []db.RootFolder{
		{ID: 1, Path: "/mnt/media"},
	}))

	ctrl := gomock.NewController(t)
	service := tester.getService(
		mock.NewMockDiskProvider(ctrl),
		mock.NewMockInventory(ctrl),
		config.Config{},
	)

	got, gotErr := service.Get(1, false)
	require.NoError(t, gotErr)
	assert.Equal(t, rootfolder.RootFolder{
		ID:   1,
		Path: "/mnt/media",
	}, got)

	_, gotErr = service.Get(999, false)
	assert.ErrorIs(t, gotErr, rootfolder.ErrRootFolderNotFound)
}

func TestService_GetAll(t *testing.T) {
	tester := newTester(t)
	require.NoError(t, db.BatchCreate(tester.dbClient, []db.RootFolder{
		{ID: 1, Path: "/mnt/media"},
		{ID: 2, Path: "/mnt/tv"},
	}))

	ctrl := gomock.NewController(t)
	disk := mock.NewMockDiskProvider(ctrl)
	inventory := mock.NewMockInventory(ctrl)
	service := tester.getService(disk, inventory, config.Config{})

	got, gotErr := service.GetAll(false)
	require.NoError(t, gotErr)
	assert.Equal(t, []rootfolder.RootFolder{
		{ID: 1, Path: "/mnt/media"},
		{ID: 2, Path: "/mnt/tv"},
	}, got)

	disk.EXPECT().GetDirectories("/mnt/media").Return([]string{"/mnt/media/Movie1"}, nil)
	disk.EXPECT().GetDirectories("/mnt/tv").Return(nil, nil)
	disk.EXPECT().FolderLastModified(gomock.Any()).Return(lastModified, nil).AnyTimes()
	inventory.EXPECT().AllPaths().Return(nil, nil).Times(2)

	got, gotErr = service.GetAll(true)
	require.NoError(t, gotErr)
	require.Len(t, got, 2)
	assert.Equal(t, []rootfolder.UnmappedFolder{
		{Name: "Movie1", Path: "/mnt/media/Movie1", LastModified: lastModified},
	}, got[0].UnmappedFolders)
	assert.Empty(t, got[1].UnmappedFolders)
}
