package controllers

import (
	"cargoflow/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TrashController struct {
	DB *gorm.DB
}

func NewTrashController(db *gorm.DB) *TrashController {
	return &TrashController{DB: db}
}

// trashTables maps the URL segment to the model whose soft-deleted rows
// can be inspected, restored or purged.
func trashModel(table string) interface{} {
	switch table {
	case "products":
		return &models.Product{}
	case "orders":
		return &models.Order{}
	case "containers":
		return &models.Container{}
	case "groupages":
		return &models.Groupage{}
	case "suppliers":
		return &models.Supplier{}
	case "clients":
		return &models.Client{}
	case "transitaires":
		return &models.Transitaire{}
	case "projects":
		return &models.Project{}
	case "tasks":
		return &models.Task{}
	case "users":
		return &models.User{}
	default:
		return nil
	}
}

func (c *TrashController) GetTrash(ctx *fiber.Ctx) error {
	table := ctx.Params("table")
	model := trashModel(table)
	if model == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown table: " + table})
	}

	var rows []map[string]interface{}
	if err := c.DB.Unscoped().Model(model).
		Where("deleted_at IS NOT NULL").
		Find(&rows).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Trash found", "data": rows})
}

// RestoreItem clears deleted_at and deleted_by so the row reappears.
func (c *TrashController) RestoreItem(ctx *fiber.Ctx) error {
	table := ctx.Params("table")
	model := trashModel(table)
	if model == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown table: " + table})
	}

	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	res := c.DB.Unscoped().Model(model).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Updates(map[string]interface{}{
			"deleted_at": nil,
			"deleted_by": 0,
			"updated_by": int(ctx.Locals("userID").(float64)),
		})
	if res.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item not found in trash"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Item restored successfully"})
}

// PurgeItem removes the row permanently. Only for rows already in the trash.
func (c *TrashController) PurgeItem(ctx *fiber.Ctx) error {
	table := ctx.Params("table")
	model := trashModel(table)
	if model == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown table: " + table})
	}

	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	res := c.DB.Unscoped().
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Delete(model)
	if res.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Item not found in trash"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Item purged successfully"})
}
