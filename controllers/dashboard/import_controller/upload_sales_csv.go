package import_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/Platewise-Analytics/platewise-dashboard-backend/cache/report_cache"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/config"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/middleware"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/models"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	maxUploadBytes  = 20 << 20 // 20MB
	insertBatchSize = 500
)

// UploadSalesCSV godoc
// @Summary Import a POS sales export
// @Description Parses a CSV of sales rows and loads them as orders. Rows with
// @Description problems are skipped and reported; duplicate receipts are ignored.
// @Tags Dashboard - Imports
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "CSV file (receipt_ref,ordered_at,item_name,category,quantity,unit_price)"
// @Success 201 {object} models.ApiResponse{data=models.ImportJob}
// @Failure 400 {object} models.ApiResponse
// @Failure 413 {object} models.ApiResponse
// @Router /imports [post]
func UploadSalesCSV(c *gin.Context) {
	restaurantID, _ := middleware.GetRestaurantIDFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "file is required"))
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse(c, "CSV must be under 20MB"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to read upload"))
		return
	}
	defer file.Close()

	// parsing can chew on a few hundred thousand rows
	ctx, cancel := config.WithCustomTimeout(60 * time.Second)
	defer cancel()

	result, err := services.GetImportService().ParseSalesCSV(ctx, file)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid CSV: "+err.Error()))
		return
	}

	job := models.ImportJob{
		ID:           uuid.New().String(),
		RestaurantID: restaurantID,
		Filename:     fileHeader.Filename,
		Status:       models.ImportStatusCompleted,
		RowCount:     result.RowCount,
		ErrorCount:   len(result.Errors),
		Errors:       result.Errors,
		UploadedBy:   userID,
		CreatedAt:    time.Now().UTC(),
	}
	if len(result.Errors) > 0 {
		job.Status = models.ImportStatusPartial
	}
	if len(result.Orders) == 0 {
		job.Status = models.ImportStatusFailed
	}

	orders, items := buildRows(restaurantID, job.ID, result)
	job.OrderCount = len(orders)
	job.ItemCount = len(items)

	err = config.DashboardGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(orders) > 0 {
			// re-uploading the same export must not duplicate tickets
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
				CreateInBatches(orders, insertBatchSize).Error; err != nil {
				return err
			}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
				CreateInBatches(items, insertBatchSize).Error; err != nil {
				return err
			}
		}
		now := time.Now().UTC()
		job.CompletedAt = &now
		return tx.Create(&job).Error
	})
	if err != nil {
		log.Printf("[import.upload] ERROR persist import err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to store imported sales"))
		return
	}

	report_cache.Invalidate(restaurantID)
	c.Set("auditResourceName", fileHeader.Filename)

	log.Printf("[import.upload] restaurant=%s file=%s rows=%d orders=%d errors=%d",
		restaurantID, fileHeader.Filename, job.RowCount, job.OrderCount, job.ErrorCount)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Import finished", job))
}

// buildRows turns parsed orders into insertable rows
func buildRows(restaurantID, jobID string, result *services.ParseResult) ([]models.Order, []models.OrderItem) {
	now := time.Now().UTC()
	orders := make([]models.Order, 0, len(result.Orders))
	items := make([]models.OrderItem, 0, result.RowCount)

	for _, parsed := range result.Orders {
		order := models.Order{
			ID:           uuid.New().String(),
			RestaurantID: restaurantID,
			ReceiptRef:   parsed.ReceiptRef,
			OrderedAt:    parsed.OrderedAt,
			TotalCents:   parsed.TotalCents,
			ImportJobID:  jobID,
			CreatedAt:    now,
		}
		orders = append(orders, order)

		for _, row := range parsed.Items {
			items = append(items, models.OrderItem{
				ID:             uuid.New().String(),
				OrderID:        order.ID,
				RestaurantID:   restaurantID,
				ItemName:       row.ItemName,
				Category:       row.Category,
				Quantity:       row.Quantity,
				UnitPriceCents: row.UnitPriceCents,
				SubtotalCents:  row.UnitPriceCents * int64(row.Quantity),
				OrderedAt:      parsed.OrderedAt,
				CreatedAt:      now,
			})
		}
	}
	return orders, items
}
