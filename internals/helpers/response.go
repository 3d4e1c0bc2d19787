package helper

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validate = validator.New()

// Validator devuelve la instancia compartida (validator cachea los structs, conviene reutilizarla).
func Validator() *validator.Validate {
	return validate
}

// ParseAndValidate parsea el body y valida las etiquetas `validate`.
// Si falla ya ha escrito la respuesta; el caller solo debe retornar el error devuelto.
func ParseAndValidate(c *fiber.Ctx, out any) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, JsonError(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(out); err != nil {
		return false, ValidationError(c, err)
	}
	return true, nil
}

// ValidationError convierte validator.ValidationErrors en errores por campo.
func ValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return JsonError(c, fiber.StatusBadRequest, "Datos inválidos")
	}

	fields := make(map[string][]string, len(ve))
	for _, fe := range ve {
		key := strings.ToLower(fe.Field())
		msg := fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		fields[key] = append(fields[key], msg)
	}
	return JsonValidationError(c, fields)
}

// ParamUUID lee un parámetro de ruta como UUID.
func ParamUUID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params(name))
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" requerido")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" inválido")
	}
	return id, nil
}
