package repository

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnaumov/person-api/internal/server"
	"github.com/dnaumov/person-api/internal/store"
	"github.com/dnaumov/person-api/internal/storeerr"
)

func newTestRepo() *PersonRepository {
	log := zerolog.Nop()
	s := &server.Server{Store: store.New(&log)}
	return NewRepositories(s).Persons
}

func TestGetAll_InsertionOrder(t *testing.T) {
	repo := newTestRepo()

	all := repo.GetAll()
	require.Len(t, all, 5)
	assert.Equal(t, "Tanya", all[0].FirstName)
	assert.Equal(t, "Ferdy", all[1].FirstName)
	assert.Equal(t, 5, repo.Count())
}

func TestFindByName(t *testing.T) {
	repo := newTestRepo()

	testCases := []struct {
		desc     string
		fragment string
		want     []string
	}{
		{"exact first name", "Abdel", []string{"Abdel"}},
		{"case-insensitive", "abdel", []string{"Abdel"}},
		{"substring of first name", "bde", []string{"Abdel"}},
		{"matches last name too", "duke", []string{"Abdel"}},
		{"fragment across records", "rr", []string{"Ferdy"}},
		{"no match yields empty, not error", "Zzzzz", []string{}},
	}

	for i, tc := range testCases {
		got := repo.FindByName(tc.fragment)

		require.NotNil(t, got, "TEST[%d] %s", i, tc.desc)
		require.Len(t, got, len(tc.want), "TEST[%d] %s", i, tc.desc)
		for j, first := range tc.want {
			assert.Equal(t, first, got[j].FirstName, "TEST[%d] %s", i, tc.desc)
		}
	}
}

func TestFindByID(t *testing.T) {
	repo := newTestRepo()

	p, err := repo.FindByID("66c09925-589a-43b6-9a5d-d1601cf53287")
	require.NoError(t, err)
	assert.Equal(t, "Lilla", p.FirstName)

	_, err = repo.FindByID("b9e8b381-1775-4b5c-b624-46d90cfe1a9a")
	require.Error(t, err)
	assert.Equal(t, storeerr.NoRecord, storeerr.ErrCode(err))
}

func TestInsert_DuplicateIDIsConflict(t *testing.T) {
	repo := newTestRepo()

	dup := store.Person{ID: "3b58aade-8415-49dd-88db-8d7bce14932a", FirstName: "Shadow", LastName: "Copy"}

	err := repo.Insert(dup)
	require.Error(t, err)
	assert.Equal(t, storeerr.DuplicateKey, storeerr.ErrCode(err))

	// The failed insert must leave the record count unchanged.
	assert.Equal(t, 5, repo.Count())
}

func TestDelete(t *testing.T) {
	repo := newTestRepo()

	id := "d64efd92-ca8e-40da-b234-47e6403eb167"

	require.NoError(t, repo.Delete(id))
	assert.Equal(t, 4, repo.Count())

	err := repo.Delete(id)
	require.Error(t, err)
	assert.Equal(t, storeerr.NoRecord, storeerr.ErrCode(err))
	assert.Equal(t, 4, repo.Count())
}
