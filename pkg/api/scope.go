package api

import "time"

// Статусы тестирования scope-актива
const (
	AssetStatusNotTested   = "not_tested"
	AssetStatusTesting     = "testing"
	AssetStatusClean       = "clean"
	AssetStatusVulnerable  = "vulnerable"
	AssetStatusExploitable = "exploitable"
)

// ScopeTag представляет тег scope-актива
type ScopeTag struct {
	ID           string `json:"id"`            // идентификатор тега
	Name         string `json:"name"`          // имя тега
	Color        string `json:"color"`         // css-класс цвета
	IsPredefined bool   `json:"is_predefined"` // предопределенный тег
}

// ScopeAsset представляет актив в скоупе проекта: сервис ip:port
type ScopeAsset struct {
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	ID            string     `json:"id"`             // UUID актива
	IP            string     `json:"ip"`             // IP адрес
	Protocol      string     `json:"protocol"`       // tcp или udp
	Status        string     `json:"status"`         // один из AssetStatus* статусов
	DiscoveredVia string     `json:"discovered_via"` // nmap, ssl-cert, http-vhosts, manual
	Notes         string     `json:"notes"`          // заметки (могут быть пустыми)
	Hostnames     []string   `json:"hostnames"`      // DNS имена
	Vhosts        []string   `json:"vhosts"`         // виртуальные хосты
	Tags          []ScopeTag `json:"tags"`           // теги актива
	Port          int        `json:"port"`           // порт 1..65535
}

// ScopeAssetCreateRequest представляет создание scope-актива
type ScopeAssetCreateRequest struct {
	IP            string   `json:"ip"`
	Protocol      string   `json:"protocol,omitempty"` // по умолчанию tcp
	Status        string   `json:"status,omitempty"`   // по умолчанию not_tested
	DiscoveredVia string   `json:"discovered_via,omitempty"`
	Notes         string   `json:"notes,omitempty"`
	Hostnames     []string `json:"hostnames,omitempty"`
	Vhosts        []string `json:"vhosts,omitempty"`
	Port          int      `json:"port"`
}

// ScopeAssetUpdateRequest представляет частичное обновление scope-актива
type ScopeAssetUpdateRequest struct {
	Protocol  *string    `json:"protocol,omitempty"`
	Status    *string    `json:"status,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
	Hostnames []string   `json:"hostnames,omitempty"`
	Vhosts    []string   `json:"vhosts,omitempty"`
	Tags      []ScopeTag `json:"tags,omitempty"`
}

// BulkStatusUpdate представляет массовую смену статуса активов
type BulkStatusUpdate struct {
	NewStatus string   `json:"new_status"`
	AssetIDs  []string `json:"asset_ids"`
}

// BulkTagOperation представляет массовое добавление/удаление тега
type BulkTagOperation struct {
	Tag       ScopeTag `json:"tag"`
	Operation string   `json:"operation"` // add или remove
	AssetIDs  []string `json:"asset_ids"`
}

// NmapImportRequest представляет импорт результатов сканирования nmap
type NmapImportRequest struct {
	XMLContent    string `json:"xml_content"`
	DefaultStatus string `json:"default_status,omitempty"` // статус для новых активов
	OpenPortsOnly bool   `json:"open_ports_only"`
}

// ImportStats представляет статистику импорта nmap
type ImportStats struct {
	Errors          []string `json:"errors"`
	HostsProcessed  int      `json:"hosts_processed"`
	ServicesCreated int      `json:"services_created"`
	ServicesUpdated int      `json:"services_updated"`
	HostnamesLinked int      `json:"hostnames_linked"`
	VhostsDetected  int      `json:"vhosts_detected"`
}

// ScopeStats представляет сводную статистику по скоупу проекта
type ScopeStats struct {
	AssetsByStatus       map[string]int `json:"assets_by_status"`
	TotalAssets          int            `json:"total_assets"`
	TotalHosts           int            `json:"total_hosts"`
	CompletionPercentage int            `json:"completion_percentage"`
}
