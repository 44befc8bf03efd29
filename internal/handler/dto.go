package handler

import "github.com/chensirou3/marketnewsanaylzer/internal/model"

type AssetResponse struct {
	Key         string   `json:"key"`
	DisplayName string   `json:"display_name"`
	AssetTypes  []string `json:"asset_types"`
}

type AssetsResponse struct {
	Assets []AssetResponse `json:"assets"`
}

type NewsResponse struct {
	Asset   string             `json:"asset"`
	Date    string             `json:"date"`
	Count   int                `json:"count"`
	Records []model.NewsRecord `json:"records"`
}
