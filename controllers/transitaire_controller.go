package controllers

import (
	"errors"

	"cargoflow/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TransitaireController struct {
	DB *gorm.DB
}

var transitaireInput struct {
	TransitaireCode string `json:"transitaire_code" validate:"required,min=2"`
	TransitaireName string `json:"transitaire_name" validate:"required,min=2"`
	Address         string `json:"address"`
	City            string `json:"city"`
	Country         string `json:"country"`
	PortOfLoading   string `json:"port_of_loading"`
	ContactName     string `json:"contact_name"`
	ContactPhone    string `json:"contact_phone"`
	ContactEmail    string `json:"contact_email" validate:"omitempty,email"`
}

func NewTransitaireController(db *gorm.DB) *TransitaireController {
	return &TransitaireController{DB: db}
}

func (c *TransitaireController) CreateTransitaire(ctx *fiber.Ctx) error {
	if err := ctx.BodyParser(&transitaireInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(transitaireInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	transitaire := models.Transitaire{
		TransitaireCode: transitaireInput.TransitaireCode,
		TransitaireName: transitaireInput.TransitaireName,
		Address:         transitaireInput.Address,
		City:            transitaireInput.City,
		Country:         transitaireInput.Country,
		PortOfLoading:   transitaireInput.PortOfLoading,
		ContactName:     transitaireInput.ContactName,
		ContactPhone:    transitaireInput.ContactPhone,
		ContactEmail:    transitaireInput.ContactEmail,
		CreatedBy:       int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Create(&transitaire).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Transitaire created successfully", "data": transitaire})
}

func (c *TransitaireController) GetAllTransitaires(ctx *fiber.Ctx) error {
	var transitaires []models.Transitaire
	if err := c.DB.Find(&transitaires).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Transitaires found", "data": transitaires})
}

func (c *TransitaireController) GetTransitaireByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var transitaire models.Transitaire
	if err := c.DB.First(&transitaire, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Transitaire not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Transitaire found", "data": transitaire})
}

func (c *TransitaireController) UpdateTransitaire(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	if err := ctx.BodyParser(&transitaireInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	transitaire := models.Transitaire{
		TransitaireCode: transitaireInput.TransitaireCode,
		TransitaireName: transitaireInput.TransitaireName,
		Address:         transitaireInput.Address,
		City:            transitaireInput.City,
		Country:         transitaireInput.Country,
		PortOfLoading:   transitaireInput.PortOfLoading,
		ContactName:     transitaireInput.ContactName,
		ContactPhone:    transitaireInput.ContactPhone,
		ContactEmail:    transitaireInput.ContactEmail,
		UpdatedBy:       int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Model(&transitaire).Where("id = ?", id).Updates(transitaire).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Transitaire updated successfully", "data": transitaire})
}

func (c *TransitaireController) DeleteTransitaire(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var transitaire models.Transitaire
	if err := c.DB.First(&transitaire, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Transitaire not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// A transitaire with planned units cannot disappear from under them.
	var containers int64
	c.DB.Model(&models.Container{}).Where("transitaire_id = ?", id).Count(&containers)
	var groupages int64
	c.DB.Model(&models.Groupage{}).Where("transitaire_id = ?", id).Count(&groupages)
	if containers > 0 || groupages > 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Transitaire has active containers or groupages"})
	}

	transitaire.DeletedBy = int(ctx.Locals("userID").(float64))
	if err := c.DB.Select("deleted_by").Where("id = ?", id).Updates(&transitaire).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.DB.Delete(&transitaire).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Transitaire deleted successfully", "data": transitaire})
}
