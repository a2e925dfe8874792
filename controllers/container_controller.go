package controllers

import (
	"errors"

	"cargoflow/cargo/imdg"
	"cargoflow/models"
	"cargoflow/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ContainerController struct {
	DB *gorm.DB
}

var containerInput struct {
	ContainerType         string  `json:"container_type" validate:"required,oneof=20GP 40GP 40HC"`
	TransitaireCode       string  `json:"transitaire_code" validate:"required"`
	MaxPallets            int     `json:"max_pallets" validate:"required,gt=0"`
	MaxWeightKg           float64 `json:"max_weight_kg" validate:"required,gt=0"`
	MaxVolumeM3           float64 `json:"max_volume_m3" validate:"required,gt=0"`
	DangerousGoodsAllowed bool    `json:"dangerous_goods_allowed"`
	Etd                   string  `json:"etd"`
	Eta                   string  `json:"eta"`
	Remarks               string  `json:"remarks"`
}

func NewContainerController(db *gorm.DB) *ContainerController {
	return &ContainerController{DB: db}
}

func (c *ContainerController) CreateContainer(ctx *fiber.Ctx) error {
	if err := ctx.BodyParser(&containerInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(containerInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var transitaire models.Transitaire
	if err := c.DB.First(&transitaire, "transitaire_code = ?", containerInput.TransitaireCode).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Transitaire not found"})
	}

	containerNo, err := repositories.NewSequenceRepository(c.DB).NextNumber(repositories.PrefixContainer)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	container := models.Container{
		ContainerNo:           containerNo,
		ContainerType:         containerInput.ContainerType,
		TransitaireID:         transitaire.ID,
		MaxPallets:            containerInput.MaxPallets,
		MaxWeightKg:           containerInput.MaxWeightKg,
		MaxVolumeM3:           containerInput.MaxVolumeM3,
		DangerousGoodsAllowed: containerInput.DangerousGoodsAllowed,
		Etd:                   containerInput.Etd,
		Eta:                   containerInput.Eta,
		Remarks:               containerInput.Remarks,
		CreatedBy:             int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Create(&container).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Container created successfully", "data": container})
}

func (c *ContainerController) GetAllContainers(ctx *fiber.Ctx) error {
	query := c.DB.Preload("Transitaire")
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var containers []models.Container
	if err := query.Find(&containers).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Containers found", "data": containers})
}

func (c *ContainerController) GetContainerByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var container models.Container
	if err := c.DB.Preload("Transitaire").Preload("Orders.Supplier").Preload("Orders.Lines.Product").
		First(&container, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Container not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	load, err := repositories.NewAssignmentRepository(c.DB).Load(container.ID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Container found",
		"data":    fiber.Map{"container": container, "load": load},
	})
}

func (c *ContainerController) UpdateContainer(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var input struct {
		Status  string `json:"status" validate:"omitempty,oneof=planning loading departed arrived completed"`
		Etd     string `json:"etd"`
		Eta     string `json:"eta"`
		Remarks string `json:"remarks"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	updates := map[string]interface{}{
		"etd":        input.Etd,
		"eta":        input.Eta,
		"remarks":    input.Remarks,
		"updated_by": int(ctx.Locals("userID").(float64)),
	}
	if input.Status != "" {
		updates["status"] = input.Status
	}

	res := c.DB.Model(&models.Container{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Container not found"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Container updated successfully"})
}

func (c *ContainerController) DeleteContainer(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var container models.Container
	if err := c.DB.First(&container, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Container not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var assigned int64
	c.DB.Model(&models.Order{}).Where("container_id = ?", id).Count(&assigned)
	if assigned > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Container still has assigned orders"})
	}

	container.DeletedBy = int(ctx.Locals("userID").(float64))
	if err := c.DB.Select("deleted_by").Where("id = ?", id).Updates(&container).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&container).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Container deleted successfully", "data": container})
}

// GetCandidateOrders lists the transitaire's unassigned orders with a
// per-order verdict and refusal reason.
func (c *ContainerController) GetCandidateOrders(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	candidates, err := repositories.NewAssignmentRepository(c.DB).Candidates(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Container not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Candidates evaluated", "data": candidates})
}

var assignInput struct {
	OrderID uint `json:"order_id" validate:"required"`
}

func (c *ContainerController) AssignOrder(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := ctx.BodyParser(&assignInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(assignInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	userID := int(ctx.Locals("userID").(float64))
	repo := repositories.NewAssignmentRepository(c.DB)

	if err := repo.Assign(uint(id), assignInput.OrderID, userID); err != nil {
		var refusal *repositories.Refusal
		if errors.As(err, &refusal) {
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"success": false,
				"message": "Order cannot be assigned",
				"data":    fiber.Map{"reason": refusal.Reason},
			})
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Container or order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Order assigned successfully"})
}

func (c *ContainerController) UnassignOrder(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}
	orderID, err := ctx.ParamsInt("order_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	userID := int(ctx.Locals("userID").(float64))
	if err := repositories.NewAssignmentRepository(c.DB).Unassign(uint(id), uint(orderID), userID); err != nil {
		var refusal *repositories.Refusal
		if errors.As(err, &refusal) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": refusal.Reason})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Order unassigned successfully"})
}

// CheckCompatibility previews the hazard verdict for an arbitrary set of
// classes, without touching any container.
func (c *ContainerController) CheckCompatibility(ctx *fiber.Ctx) error {
	var input struct {
		Classes []string `json:"classes"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result := imdg.CheckGroupCompatibility(input.Classes)
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Compatibility checked", "data": result})
}
