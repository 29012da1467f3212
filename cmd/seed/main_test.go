package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const membersJSON = `[{"name":"Alice","email":"alice@example.com","join_date":"15/03/2024"},{"name":"Bob","email":"bob@example.com"}]`

func TestLoadRecordsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "members.json")
	require.NoError(t, os.WriteFile(path, []byte(membersJSON), 0o600))

	records, err := loadRecords(context.Background(), path, "")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "alice@example.com", records[0].Email)
	assert.Equal(t, "15/03/2024", records[0].JoinDate)
}

func TestLoadRecordsFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(membersJSON))
	}))
	defer srv.Close()

	records, err := loadRecords(context.Background(), "", srv.URL)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestLoadRecordsErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer srv.Close()

	_, err := loadRecords(context.Background(), "", srv.URL)
	assert.ErrorContains(t, err, "410")

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
	_, err = loadRecords(context.Background(), path, "")
	assert.ErrorContains(t, err, "parse JSON")

	_, err = loadRecords(context.Background(), filepath.Join(t.TempDir(), "missing.json"), "")
	assert.Error(t, err)
}
