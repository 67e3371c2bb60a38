package config

// UploadConfig - правила для загружаемых файлов.
type UploadConfig struct {
	AllowedMimeTypes  []string
	AllowedExtensions []string
	MaxSizeMB         int64
}

const UploadContextEPICatalog = "epi_catalog"

var UploadContexts = map[string]UploadConfig{
	// xlsx - это zip-архив, DetectContentType видит его как application/zip
	UploadContextEPICatalog: {
		AllowedMimeTypes:  []string{"application/zip", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
		AllowedExtensions: []string{".xlsx"},
		MaxSizeMB:         10,
	},
}
