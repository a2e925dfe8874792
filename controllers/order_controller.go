package controllers

import (
	"errors"

	"cargoflow/controllers/idgen"
	"cargoflow/models"
	"cargoflow/repositories"
	"cargoflow/types"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type OrderController struct {
	DB *gorm.DB
}

type orderLineInput struct {
	ProductCode string  `json:"product_code" validate:"required"`
	Quantity    int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" validate:"gte=0"`
}

var orderInput struct {
	OrderDate       string           `json:"order_date" validate:"required"`
	SupplierCode    string           `json:"supplier_code" validate:"required"`
	TransitaireCode string           `json:"transitaire_code" validate:"required"`
	WeightKg        float64          `json:"weight_kg" validate:"gte=0"`
	VolumeM3        float64          `json:"volume_m3" validate:"gte=0"`
	CartonCount     int              `json:"carton_count" validate:"gte=0"`
	Remarks         string           `json:"remarks"`
	Lines           []orderLineInput `json:"lines" validate:"required,min=1,dive"`
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

func (c *OrderController) CreateOrder(ctx *fiber.Ctx) error {
	if err := ctx.BodyParser(&orderInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(orderInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var supplier models.Supplier
	if err := c.DB.First(&supplier, "supplier_code = ?", orderInput.SupplierCode).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Supplier not found"})
	}

	var transitaire models.Transitaire
	if err := c.DB.First(&transitaire, "transitaire_code = ?", orderInput.TransitaireCode).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Transitaire not found"})
	}

	userID := int(ctx.Locals("userID").(float64))

	orderNo, err := repositories.NewSequenceRepository(c.DB).NextNumber(repositories.PrefixOrder)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	order := models.Order{
		OrderNo:       orderNo,
		OrderDate:     orderInput.OrderDate,
		SupplierID:    supplier.ID,
		TransitaireID: transitaire.ID,
		WeightKg:      orderInput.WeightKg,
		VolumeM3:      orderInput.VolumeM3,
		CartonCount:   orderInput.CartonCount,
		Remarks:       orderInput.Remarks,
		CreatedBy:     userID,
	}

	err = c.DB.Transaction(func(tx *gorm.DB) error {
		for _, lineIn := range orderInput.Lines {
			var product models.Product
			if err := tx.First(&product, "product_code = ?", lineIn.ProductCode).Error; err != nil {
				return errors.New("Product not found: " + lineIn.ProductCode)
			}

			unitPrice := lineIn.UnitPrice
			if unitPrice == 0 {
				unitPrice = product.UnitPrice
			}

			order.Lines = append(order.Lines, models.OrderLine{
				LineID:    types.SnowflakeID(idgen.GenerateID()),
				ProductID: product.ID,
				Quantity:  lineIn.Quantity,
				UnitPrice: unitPrice,
				CreatedBy: userID,
			})
			order.TotalValue += float64(lineIn.Quantity) * unitPrice
		}

		return tx.Create(&order).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Order created successfully", "data": order})
}

func (c *OrderController) GetAllOrders(ctx *fiber.Ctx) error {
	query := c.DB.Preload("Supplier").Preload("Transitaire")

	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if unassigned := ctx.Query("unassigned"); unassigned == "true" {
		query = query.Where("container_id IS NULL AND groupage_id IS NULL")
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Orders found", "data": orders})
}

func (c *OrderController) GetOrderByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var order models.Order
	if err := c.DB.Preload("Supplier").Preload("Transitaire").Preload("Lines.Product").
		First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Order found", "data": order})
}

func (c *OrderController) UpdateOrder(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var order models.Order
	if err := c.DB.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if order.ContainerID != nil || order.GroupageID != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Order is assigned to a shipping unit, unassign it first"})
	}

	var input struct {
		OrderDate   string  `json:"order_date"`
		WeightKg    float64 `json:"weight_kg" validate:"gte=0"`
		VolumeM3    float64 `json:"volume_m3" validate:"gte=0"`
		CartonCount int     `json:"carton_count" validate:"gte=0"`
		Status      string  `json:"status"`
		Remarks     string  `json:"remarks"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	updates := map[string]interface{}{
		"order_date":   input.OrderDate,
		"weight_kg":    input.WeightKg,
		"volume_m3":    input.VolumeM3,
		"carton_count": input.CartonCount,
		"status":       input.Status,
		"remarks":      input.Remarks,
		"updated_by":   int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Model(&models.Order{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Order updated successfully"})
}

// ReceiveOrder marks the cargo as physically present at the transitaire,
// which is a precondition for loading.
func (c *OrderController) ReceiveOrder(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	res := c.DB.Model(&models.Order{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_received": true,
		"status":      "reçue",
		"updated_by":  int(ctx.Locals("userID").(float64)),
	})
	if res.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Order marked as received"})
}

func (c *OrderController) DeleteOrder(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var order models.Order
	if err := c.DB.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if order.ContainerID != nil || order.GroupageID != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Order is assigned to a shipping unit, unassign it first"})
	}

	order.DeletedBy = int(ctx.Locals("userID").(float64))
	if err := c.DB.Select("deleted_by").Where("id = ?", id).Updates(&order).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&order).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Order deleted successfully", "data": order})
}

// ExportOrders writes the order book to a workbook.
func (c *OrderController) ExportOrders(ctx *fiber.Ctx) error {
	var orders []models.Order
	if err := c.DB.Preload("Supplier").Preload("Transitaire").Find(&orders).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []string{"ORDER_NO", "DATE", "STATUS", "SUPPLIER", "TRANSITAIRE", "WEIGHT_KG", "VOLUME_M3", "CARTONS", "VALUE", "RECEIVED"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for r, o := range orders {
		received := "N"
		if o.IsReceived {
			received = "Y"
		}
		values := []interface{}{
			o.OrderNo, o.OrderDate, o.Status,
			o.Supplier.SupplierCode, o.Transitaire.TransitaireCode,
			o.WeightKg, o.VolumeM3, o.CartonCount, o.TotalValue, received,
		}
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
	ctx.Set("Content-Disposition", "attachment; filename=orders.xlsx")
	return ctx.Send(buf.Bytes())
}
