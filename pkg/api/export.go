package api

// Методы шифрования экспортируемого бандла (шифрует сервер)
const (
	EncryptionNone      = "none"
	EncryptionPassword  = "password"
	EncryptionGenerated = "generated" // сервер генерирует пароль и возвращает его
)

// Режимы импорта проекта
const (
	ImportModeNew   = "new"   // создать новый проект
	ImportModeMerge = "merge" // влить в существующий проект
)

// ExportEncryption описывает, как сервер должен зашифровать бандл
type ExportEncryption struct {
	Method   string `json:"method"`
	Password string `json:"password,omitempty"` // обязателен при method=password
}

// ExportOptions описывает, что включать в экспорт проекта
type ExportOptions struct {
	IncludeVariables bool `json:"include_variables"`
	IncludeScope     bool `json:"include_scope"`
}

// ProjectExportRequest представляет запрос на экспорт проекта
type ProjectExportRequest struct {
	Encryption ExportEncryption `json:"encryption"`
	Options    ExportOptions    `json:"options"`
}

// TemplateExportRequest представляет запрос на экспорт шаблона
type TemplateExportRequest struct {
	Encryption ExportEncryption `json:"encryption"`
}

// ExportJobResponse представляет результат постановки экспорта
type ExportJobResponse struct {
	JobID             string `json:"job_id"`
	Status            string `json:"status"`
	DownloadURL       string `json:"download_url,omitempty"`
	GeneratedPassword string `json:"generated_password,omitempty"` // только при method=generated
}

// ProjectImportResponse представляет результат импорта проекта
type ProjectImportResponse struct {
	ProjectID string `json:"project_id"`
	Message   string `json:"message"`
	Success   bool   `json:"success"`
}

// ImportPreviewResponse представляет предпросмотр импортируемого бандла.
// Возвращается до каких-либо изменений на сервере.
type ImportPreviewResponse struct {
	Type            string `json:"type"` // project или template
	Name            string `json:"name"`
	Description     string `json:"description"`
	ExportedAt      string `json:"exported_at"`
	FormatVersion   string `json:"format_version"`
	NodeCount       int    `json:"node_count"`
	ContextCount    int    `json:"context_count"`
	CommandCount    int    `json:"command_count"`
	VariableCount   int    `json:"variable_count"`
	TagCount        int    `json:"tag_count"`
	ScopeAssetCount int    `json:"scope_asset_count"`
}
