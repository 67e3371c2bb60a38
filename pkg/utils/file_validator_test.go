package utils

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"epi-tracker/pkg/config"
)

func zipLike() []byte {
	return append([]byte("PK\x03\x04"), bytes.Repeat([]byte{0}, 64)...)
}

func TestValidateFile_AcceptsXLSX(t *testing.T) {
	content := zipLike()
	header := &multipart.FileHeader{Filename: "catalogo.XLSX", Size: int64(len(content))}
	reader := bytes.NewReader(content)

	require.NoError(t, ValidateFile(header, reader, config.UploadContextEPICatalog))

	pos, err := reader.Seek(0, 1)
	require.NoError(t, err)
	assert.Zero(t, pos, "указатель файла возвращается в начало")
}

func TestValidateFile_Rejects(t *testing.T) {
	content := zipLike()

	err := ValidateFile(&multipart.FileHeader{Filename: "catalogo.csv", Size: int64(len(content))}, bytes.NewReader(content), config.UploadContextEPICatalog)
	assert.ErrorContains(t, err, "расширение")

	text := []byte("name,code\nCapacete,CAP001\n")
	err = ValidateFile(&multipart.FileHeader{Filename: "catalogo.xlsx", Size: int64(len(text))}, bytes.NewReader(text), config.UploadContextEPICatalog)
	assert.ErrorContains(t, err, "тип файла")

	err = ValidateFile(&multipart.FileHeader{Filename: "catalogo.xlsx", Size: 11 * 1024 * 1024}, bytes.NewReader(content), config.UploadContextEPICatalog)
	assert.ErrorContains(t, err, "превышает лимит")

	err = ValidateFile(&multipart.FileHeader{Filename: "catalogo.xlsx"}, bytes.NewReader(content), "avatars")
	assert.ErrorContains(t, err, "неизвестный контекст")
}
