package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Youssef-M-Salama/E-Commerce-Website/controllers/web"
	"github.com/Youssef-M-Salama/E-Commerce-Website/services"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"go.uber.org/zap"
)

// POST /Admin/ImportProducts
// Rows use the export layout. A row whose ID exists updates that product,
// a row without one creates a product, anything unusable is skipped.
func ImportProductsFromExcel(env *web.Env, catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]
			if row == nil || len(row.Cells) < len(ExportHeaders) {
				skippedCount++
				continue
			}

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			var id uint64
			if idStr := get(0); idStr != "" {
				id, err = strconv.ParseUint(idStr, 10, 64)
				if err != nil {
					skippedCount++
					continue
				}
			}
			price, err1 := strconv.ParseFloat(get(2), 64)
			categoryID, err2 := strconv.ParseUint(get(5), 10, 64)
			if err1 != nil || err2 != nil {
				skippedCount++
				continue
			}

			input := services.ProductInput{
				Name:        get(1),
				Price:       price,
				Description: get(3),
				CategoryID:  uint(categoryID),
			}
			created, err := catalog.UpsertProduct(c.Request.Context(), uint(id), input, get(4))
			if err != nil {
				if web.Status(err) >= http.StatusInternalServerError {
					env.Logger.Warn("import row failed", zap.Int("row", i+1), zap.Error(err))
				}
				skippedCount++
				continue
			}
			if created {
				createdCount++
			} else {
				updatedCount++
			}
		}

		env.Logger.Info("products imported",
			zap.Int("created", createdCount),
			zap.Int("updated", updatedCount),
			zap.Int("skipped", skippedCount))

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}
