package handler

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chensirou3/marketnewsanaylzer/internal/asset"
	"github.com/chensirou3/marketnewsanaylzer/internal/model"
)

// ArtifactStore reads saved pipeline artifacts for serving.
type ArtifactStore interface {
	LoadRecords(assetDir, assetKey, date string) ([]model.NewsRecord, error)
	LoadReport(prefix, date string) (*model.AnalysisReport, error)
}

type ReportHandler struct {
	store ArtifactStore
}

func NewReportHandler(store ArtifactStore) *ReportHandler {
	return &ReportHandler{store: store}
}

func (h *ReportHandler) GetAssets(c *gin.Context) {
	var assets []AssetResponse
	for _, key := range asset.Keys() {
		cfg, err := asset.Lookup(key)
		if err != nil {
			continue
		}
		assets = append(assets, AssetResponse{
			Key:         key,
			DisplayName: cfg.DisplayName,
			AssetTypes:  cfg.AssetTypes,
		})
	}
	c.JSON(http.StatusOK, AssetsResponse{Assets: assets})
}

func (h *ReportHandler) GetNews(c *gin.Context) {
	key := c.Param("asset")
	date := c.Param("date")

	cfg, err := asset.Lookup(key)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown asset"})
		return
	}
	if !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, want YYYYMMDD"})
		return
	}

	records, err := h.store.LoadRecords(cfg.DataDir, key, date)
	if errors.Is(err, fs.ErrNotExist) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No news for this asset and date"})
		return
	}
	if err != nil {
		slog.Error("error loading news records", "asset", key, "date", date, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage error"})
		return
	}

	c.JSON(http.StatusOK, NewsResponse{
		Asset:   key,
		Date:    date,
		Count:   len(records),
		Records: records,
	})
}

func (h *ReportHandler) GetReport(c *gin.Context) {
	key := c.Param("asset")
	date := c.Param("date")

	cfg, err := asset.Lookup(key)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown asset"})
		return
	}
	if !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, want YYYYMMDD"})
		return
	}

	report, err := h.store.LoadReport(cfg.ReportPrefix, date)
	if errors.Is(err, fs.ErrNotExist) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No report for this asset and date"})
		return
	}
	if err != nil {
		slog.Error("error loading report", "asset", key, "date", date, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage error"})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func validDate(date string) bool {
	_, err := time.Parse("20060102", date)
	return err == nil
}
