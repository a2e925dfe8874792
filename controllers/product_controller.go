package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cargoflow/cargo/imdg"
	"cargoflow/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ProductController struct {
	DB *gorm.DB
}

var productInput struct {
	ProductCode       string  `json:"product_code" validate:"required,min=3"`
	ProductName       string  `json:"product_name" validate:"required,min=3"`
	SupplierCode      string  `json:"supplier_code" validate:"required"`
	UnitPrice         float64 `json:"unit_price"`
	WeightKg          float64 `json:"weight_kg"`
	VolumeM3          float64 `json:"volume_m3"`
	UnitsPerPackage   int     `json:"units_per_package"`
	PackagesPerCarton int     `json:"packages_per_carton"`
	CartonsPerPalette int     `json:"cartons_per_palette"`
	Dangerous         bool    `json:"dangerous"`
	ImdgClass         string  `json:"imdg_class"`
	Remarks           string  `json:"remarks"`
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

func (c *ProductController) CreateProduct(ctx *fiber.Ctx) error {
	if err := ctx.BodyParser(&productInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(productInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var supplier models.Supplier
	if err := c.DB.First(&supplier, "supplier_code = ?", productInput.SupplierCode).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Supplier not found"})
	}

	if productInput.Dangerous && !isKnownImdgClass(productInput.ImdgClass) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown IMDG class: " + productInput.ImdgClass})
	}

	product := models.Product{
		ProductCode:       productInput.ProductCode,
		ProductName:       productInput.ProductName,
		SupplierID:        supplier.ID,
		UnitPrice:         productInput.UnitPrice,
		WeightKg:          productInput.WeightKg,
		VolumeM3:          productInput.VolumeM3,
		UnitsPerPackage:   productInput.UnitsPerPackage,
		PackagesPerCarton: productInput.PackagesPerCarton,
		CartonsPerPalette: productInput.CartonsPerPalette,
		Dangerous:         productInput.Dangerous,
		ImdgClass:         productInput.ImdgClass,
		Remarks:           productInput.Remarks,
		CreatedBy:         int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Create(&product).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Product created successfully", "data": product})
}

func (c *ProductController) GetAllProducts(ctx *fiber.Ctx) error {
	var products []models.Product
	if err := c.DB.Preload("Supplier").Find(&products).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Products found", "data": products})
}

func (c *ProductController) GetProductByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var product models.Product
	if err := c.DB.Preload("Supplier").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Product found", "data": product})
}

func (c *ProductController) UpdateProduct(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := ctx.BodyParser(&productInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(productInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var supplier models.Supplier
	if err := c.DB.First(&supplier, "supplier_code = ?", productInput.SupplierCode).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Supplier not found"})
	}

	if productInput.Dangerous && !isKnownImdgClass(productInput.ImdgClass) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown IMDG class: " + productInput.ImdgClass})
	}

	updates := map[string]interface{}{
		"product_code":        productInput.ProductCode,
		"product_name":        productInput.ProductName,
		"supplier_id":         supplier.ID,
		"unit_price":          productInput.UnitPrice,
		"weight_kg":           productInput.WeightKg,
		"volume_m3":           productInput.VolumeM3,
		"units_per_package":   productInput.UnitsPerPackage,
		"packages_per_carton": productInput.PackagesPerCarton,
		"cartons_per_palette": productInput.CartonsPerPalette,
		"dangerous":           productInput.Dangerous,
		"imdg_class":          productInput.ImdgClass,
		"remarks":             productInput.Remarks,
		"updated_by":          int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Model(&models.Product{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Product updated successfully"})
}

func (c *ProductController) DeleteProduct(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var product models.Product
	if err := c.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	product.DeletedBy = int(ctx.Locals("userID").(float64))
	if err := c.DB.Select("deleted_by").Where("id = ?", id).Updates(&product).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&product).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Product deleted successfully", "data": product})
}

// GetImdgClasses feeds the product form's hazard class dropdown.
func (c *ProductController) GetImdgClasses(ctx *fiber.Ctx) error {
	classes := imdg.Classes()
	data := make([]fiber.Map, 0, len(classes))
	for _, class := range classes {
		data = append(data, fiber.Map{
			"class":             class,
			"description":       imdg.DescriptionFor(class),
			"incompatible_with": imdg.IncompatibleClassesFor(class),
		})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "IMDG classes", "data": data})
}

func isKnownImdgClass(class string) bool {
	for _, c := range imdg.Classes() {
		if c == class {
			return true
		}
	}
	return false
}

type ProductUploadResult struct {
	TotalRows     int      `json:"total_rows"`
	SuccessCount  int      `json:"success_count"`
	SkippedCount  int      `json:"skipped_count"`
	ErrorCount    int      `json:"error_count"`
	SkippedItems  []string `json:"skipped_items"`
	ErrorMessages []string `json:"error_messages"`
}

// CreateProductFromExcel loads the catalog from an uploaded workbook.
// Expected columns: CODE, NAME, SUPPLIER_CODE, UNIT_PRICE, WEIGHT_KG,
// VOLUME_M3, UNITS_PER_PACKAGE, PACKAGES_PER_CARTON, CARTONS_PER_PALETTE,
// DANGEROUS (Y/N), IMDG_CLASS.
func (c *ProductController) CreateProductFromExcel(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "File is required"})
	}

	if !strings.HasSuffix(strings.ToLower(file.Filename), ".xlsx") &&
		!strings.HasSuffix(strings.ToLower(file.Filename), ".xls") {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Only Excel files (.xlsx, .xls) are allowed"})
	}

	fileContent, err := file.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to open file"})
	}
	defer fileContent.Close()

	f, err := excelize.OpenReader(fileContent)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Failed to read Excel file"})
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "No sheets found in Excel file"})
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to read rows"})
	}

	if len(rows) < 2 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Excel file must contain header and at least one data row"})
	}

	result := ProductUploadResult{
		TotalRows:     len(rows) - 1,
		SkippedItems:  []string{},
		ErrorMessages: []string{},
	}

	userID := int(ctx.Locals("userID").(float64))
	supplierCache := make(map[string]uint)

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for i, row := range rows[1:] {
		rowNum := i + 2

		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		if len(row) < 11 {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Insufficient columns (expected 11)", rowNum))
			continue
		}

		productCode := strings.ToUpper(strings.TrimSpace(row[0]))
		productName := strings.TrimSpace(row[1])
		supplierCode := strings.ToUpper(strings.TrimSpace(row[2]))

		if productCode == "" || productName == "" || supplierCode == "" {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: CODE, NAME and SUPPLIER_CODE are required", rowNum))
			continue
		}

		supplierID, cached := supplierCache[supplierCode]
		if !cached {
			var supplier models.Supplier
			if err := tx.Where("supplier_code = ?", supplierCode).First(&supplier).Error; err != nil {
				result.ErrorCount++
				result.ErrorMessages = append(result.ErrorMessages,
					fmt.Sprintf("Row %d: Supplier '%s' not found", rowNum, supplierCode))
				continue
			}
			supplierID = supplier.ID
			supplierCache[supplierCode] = supplierID
		}

		var existing models.Product
		if err := tx.Where("product_code = ?", productCode).First(&existing).Error; err == nil {
			result.SkippedCount++
			result.SkippedItems = append(result.SkippedItems, productCode)
			continue
		}

		unitPrice, _ := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
		weightKg, _ := strconv.ParseFloat(strings.TrimSpace(row[4]), 64)
		volumeM3, _ := strconv.ParseFloat(strings.TrimSpace(row[5]), 64)
		unitsPerPackage, _ := strconv.Atoi(strings.TrimSpace(row[6]))
		packagesPerCarton, _ := strconv.Atoi(strings.TrimSpace(row[7]))
		cartonsPerPalette, _ := strconv.Atoi(strings.TrimSpace(row[8]))
		dangerous := strings.EqualFold(strings.TrimSpace(row[9]), "Y")
		imdgClass := strings.TrimSpace(row[10])

		if dangerous && !isKnownImdgClass(imdgClass) {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Unknown IMDG class '%s'", rowNum, imdgClass))
			continue
		}

		product := models.Product{
			ProductCode:       productCode,
			ProductName:       productName,
			SupplierID:        supplierID,
			UnitPrice:         unitPrice,
			WeightKg:          weightKg,
			VolumeM3:          volumeM3,
			UnitsPerPackage:   unitsPerPackage,
			PackagesPerCarton: packagesPerCarton,
			CartonsPerPalette: cartonsPerPalette,
			Dangerous:         dangerous,
			ImdgClass:         imdgClass,
			CreatedBy:         userID,
		}

		if err := tx.Create(&product).Error; err != nil {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Failed to create product - %s", rowNum, err.Error()))
			continue
		}

		result.SuccessCount++
	}

	if err := tx.Commit().Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to commit transaction"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": fmt.Sprintf("Upload completed: %d success, %d skipped, %d errors",
			result.SuccessCount, result.SkippedCount, result.ErrorCount),
		"data": result,
	})
}

// ExportProducts writes the catalog to a workbook.
func (c *ProductController) ExportProducts(ctx *fiber.Ctx) error {
	var products []models.Product
	if err := c.DB.Preload("Supplier").Find(&products).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []string{"CODE", "NAME", "SUPPLIER", "UNIT_PRICE", "WEIGHT_KG", "VOLUME_M3", "DANGEROUS", "IMDG_CLASS"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for r, p := range products {
		dangerous := "N"
		if p.Dangerous {
			dangerous = "Y"
		}
		values := []interface{}{p.ProductCode, p.ProductName, p.Supplier.SupplierCode, p.UnitPrice, p.WeightKg, p.VolumeM3, dangerous, p.ImdgClass}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, r+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", "attachment; filename=products.xlsx")
	return ctx.Send(buf.Bytes())
}
