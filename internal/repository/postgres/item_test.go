package postgres

import (
	"fmt"
	"testing"
	"time"

	"lingolist/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func testItem(ownerID, listID, wordID string) domain.Item {
	return domain.Item{
		OwnerID:        ownerID,
		ListID:         listID,
		WordID:         wordID,
		OriginalWord:   "table",
		TranslatedWord: "tavolo",
		TranslatedLang: "it",
		CaptureID:      "cap_table_it_" + ownerID,
		AddedAt:        time.Now().UTC(),
	}
}

func TestItemRepo_Insert(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewItemRepo(db)

	item := testItem("uid1", "travel_uid1", "id_table")
	mock.ExpectExec("INSERT INTO list_items").
		WithArgs(item.OwnerID, item.ListID, item.WordID, item.OriginalWord, item.TranslatedWord,
			item.TranslatedLang, item.CaptureID, item.Note, item.AddedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Insert(&item)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepo_Insert_Duplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewItemRepo(db)

	item := testItem("uid1", "travel_uid1", "id_table")
	mock.ExpectExec("INSERT INTO list_items").
		WillReturnError(&pq.Error{Code: "23505"})

	err = repo.Insert(&item)

	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepo_Delete(t *testing.T) {
	tests := []struct {
		name          string
		rowsAffected  int64
		expectedError error
	}{
		{
			name:         "item deleted",
			rowsAffected: 1,
		},
		{
			name:          "item missing",
			rowsAffected:  0,
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewItemRepo(db)

			mock.ExpectExec("DELETE FROM list_items WHERE owner_id = \\$1 AND list_id = \\$2 AND word_id = \\$3").
				WithArgs("uid1", "travel_uid1", "id_table").
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			err = repo.Delete("uid1", "travel_uid1", "id_table")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestItemRepo_DeleteAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewItemRepo(db)

	mock.ExpectExec("DELETE FROM list_items WHERE owner_id = \\$1 AND list_id = \\$2").
		WithArgs("uid1", "travel_uid1").
		WillReturnResult(sqlmock.NewResult(0, 5))

	err = repo.DeleteAll("uid1", "travel_uid1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepo_ListByList(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewItemRepo(db)

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"owner_id", "list_id", "word_id", "original_word", "translated_word",
		"translated_lang", "capture_id", "note", "added_at",
	}).
		AddRow("uid1", "travel_uid1", "id_table", "table", "tavolo", "it", "cap1", "", now).
		AddRow("uid1", "travel_uid1", "id_chair", "chair", "sedia", "it", "", "seen in Rome", now)

	mock.ExpectQuery("SELECT (.+) FROM list_items WHERE owner_id = \\$1 AND list_id = \\$2 ORDER BY added_at").
		WithArgs("uid1", "travel_uid1").
		WillReturnRows(rows)

	items, err := repo.ListByList("uid1", "travel_uid1")

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "id_table", items[0].WordID)
	assert.Equal(t, "seen in Rome", items[1].Note)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepo_ListByList_ScanError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewItemRepo(db)

	rows := sqlmock.NewRows([]string{
		"owner_id", "list_id", "word_id", "original_word", "translated_word",
		"translated_lang", "capture_id", "note", "added_at",
	}).AddRow("uid1", "travel_uid1", "id_table", "table", "tavolo", "it", "cap1", "", "not a time")

	mock.ExpectQuery("SELECT (.+) FROM list_items").
		WithArgs("uid1", "travel_uid1").
		WillReturnRows(rows)

	items, err := repo.ListByList("uid1", "travel_uid1")

	assert.Error(t, err)
	assert.Nil(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepo_Count(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewItemRepo(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM list_items").
		WithArgs("uid1", "travel_uid1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.Count("uid1", "travel_uid1")

	assert.NoError(t, err)
	assert.Equal(t, 7, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepo_InsertBatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewItemRepo(db)

	items := []domain.Item{
		testItem("uid2", "import_travel_uid1", "id_table"),
		testItem("uid2", "import_travel_uid1", "id_chair"),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO list_items").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO list_items").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = repo.InsertBatch(items)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepo_InsertBatch_RollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewItemRepo(db)

	items := []domain.Item{
		testItem("uid2", "import_travel_uid1", "id_table"),
		testItem("uid2", "import_travel_uid1", "id_chair"),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO list_items").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO list_items").WillReturnError(fmt.Errorf("connection reset"))
	mock.ExpectRollback()

	err = repo.InsertBatch(items)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepo_InsertBatch_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewItemRepo(db)

	assert.NoError(t, repo.InsertBatch(nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}
