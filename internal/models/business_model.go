package models

import "time"

type Business struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type MediaAsset struct {
	ID        int64     `db:"id" json:"id"`
	FileName  string    `db:"file_name" json:"file_name"`
	FileType  string    `db:"file_type" json:"file_type"`
	FileSize  int64     `db:"file_size" json:"file_size"`
	FileURL   string    `db:"file_url" json:"file_url"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type ApiKey struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	ApiKey    string    `db:"api_key" json:"api_key"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
