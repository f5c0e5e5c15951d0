package models

import "time"

// WalletExportRow is one line of the admin wallet export
type WalletExportRow struct {
	Rank      int       `json:"rank" jsonschema:"minimum=1"`
	Username  string    `json:"username"`
	Wallet    string    `json:"wallet" jsonschema:"pattern=^0x[0-9a-fA-F]{40}$"`
	Score     int       `json:"score" jsonschema:"minimum=0"`
	Timestamp time.Time `json:"timestamp"`
}

// WalletExport is the document produced by the admin export action
type WalletExport struct {
	GeneratedAt time.Time         `json:"generatedAt"`
	Rows        []WalletExportRow `json:"rows"`
}
