package middleware

import (
	"reflect"

	"cargoflow/database"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// InjectDBMiddleware sets the shared connection on the controller's DB field
// before each request.
func InjectDBMiddleware(controller interface{}) fiber.Handler {
	return func(c *fiber.Ctx) error {
		db, err := database.GetDBConnection()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "error connecting to database")
		}

		val := reflect.ValueOf(controller)
		if val.Kind() != reflect.Ptr || val.IsNil() {
			return fiber.NewError(fiber.StatusInternalServerError, "controller must be a non-nil pointer")
		}

		dbField := val.Elem().FieldByName("DB")
		if !dbField.IsValid() || !dbField.CanSet() {
			return fiber.NewError(fiber.StatusInternalServerError, "DB field not found or cannot be set in controller")
		}

		if dbField.Type() != reflect.TypeOf((*gorm.DB)(nil)) {
			return fiber.NewError(fiber.StatusInternalServerError, "DB field has wrong type")
		}

		dbField.Set(reflect.ValueOf(db))

		return c.Next()
	}
}
