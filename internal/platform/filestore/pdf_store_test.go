package filestore_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/apperrors"
	"github.com/jvbartk0/orbisx-sistema-final-v2/internal/platform/filestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func newStore(t *testing.T) (*filestore.PDFStore, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "uploads", "contratos")
	return filestore.NewPDFStore(dir, 0, filestore.WithClock(func() time.Time { return fixedNow })), dir
}

func TestStore_WritesTimestampedFileAndCreatesDir(t *testing.T) {
	store, dir := newStore(t)
	_, err := os.Stat(dir)
	require.True(t, os.IsNotExist(err))

	stored, err := store.Store([]byte("%PDF-1.4 test"), "Contrato Final.pdf")
	require.NoError(t, err)

	assert.Equal(t, "Contrato_Final.pdf", stored.Name)
	assert.Equal(t, filepath.Join(dir, "20250314_092653_Contrato_Final.pdf"), stored.Path)
	content, err := os.ReadFile(stored.Path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 test", string(content))
	assert.True(t, store.Exists(stored.Path))
}

func TestStore_SameSecondDoesNotOverwrite(t *testing.T) {
	store, _ := newStore(t)

	first, err := store.Store([]byte("one"), "a.pdf")
	require.NoError(t, err)
	second, err := store.Store([]byte("two"), "a.pdf")
	require.NoError(t, err)

	assert.NotEqual(t, first.Path, second.Path)
	content, err := os.ReadFile(first.Path)
	require.NoError(t, err)
	assert.Equal(t, "one", string(content))
}

func TestStore_RejectsNonPDFWithoutWriting(t *testing.T) {
	store, dir := newStore(t)

	_, err := store.Store([]byte("data"), "proposta.docx")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedFileType)
	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr), "upload dir must not be created on rejection")
}

func TestCheckName_CaseInsensitive(t *testing.T) {
	store, _ := newStore(t)
	assert.NoError(t, store.CheckName("CONTRATO.PDF"))
	assert.NoError(t, store.CheckName("a.b.pdf"))
	assert.ErrorIs(t, store.CheckName("contrato.pdf.exe"), apperrors.ErrUnsupportedFileType)
	assert.ErrorIs(t, store.CheckName("pdf"), apperrors.ErrUnsupportedFileType)
}

func TestReadUpload_RejectsOversizedByActualBytes(t *testing.T) {
	store, dir := newStore(t)

	oversized := bytes.NewReader(make([]byte, 17<<20))
	_, err := store.ReadUpload(oversized)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Arquivo muito grande. Máximo 16MB", appErr.Message)
	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestReadUpload_AcceptsExactLimit(t *testing.T) {
	store := filestore.NewPDFStore(t.TempDir(), 1024)

	data, err := store.ReadUpload(bytes.NewReader(make([]byte, 1024)))
	require.NoError(t, err)
	assert.Len(t, data, 1024)

	_, err = store.ReadUpload(bytes.NewReader(make([]byte, 1025)))
	assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)
}

func TestStore_RejectsOversizedData(t *testing.T) {
	store := filestore.NewPDFStore(filepath.Join(t.TempDir(), "x"), 10)
	_, err := store.Store(make([]byte, 11), "a.pdf")
	assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)
}

func TestRemove(t *testing.T) {
	store, _ := newStore(t)
	stored, err := store.Store([]byte("x"), "a.pdf")
	require.NoError(t, err)

	require.NoError(t, store.Remove(stored.Path))
	assert.False(t, store.Exists(stored.Path))
	assert.NoError(t, store.Remove(stored.Path), "removing a missing file is not an error")
}

func TestSanitizeFilename(t *testing.T) {
	tests := map[string]string{
		"contrato.pdf":              "contrato.pdf",
		"Meu Contrato Ação.pdf":     "Meu_Contrato_Acao.pdf",
		"../../etc/passwd.pdf":      "etc_passwd.pdf",
		`C:\docs\contrato 2025.pdf`: "C_docs_contrato_2025.pdf",
		".hidden.pdf":               "hidden.pdf",
		"contrato (1).pdf":          "contrato_1.pdf",
	}
	for in, want := range tests {
		assert.Equal(t, want, filestore.SanitizeFilename(in), in)
	}
}
