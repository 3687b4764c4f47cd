package errors

import "fmt"

const (
	MsgOperationFailed = "No se pudo realizar la operación"
	MsgUnexpected      = "Ha ocurrido un error inesperado"
)

func ExistsMessage(entity, attribute, value string) string {
	return fmt.Sprintf("Ya existe %s con %s %s", entity, attribute, value)
}

func BlankMessage(entity, attribute string) string {
	return fmt.Sprintf("%s de %s no puede estar vacío", attribute, entity)
}

func NullMessage(entity, attribute string) string {
	return fmt.Sprintf("%s de %s no puede ser nulo", attribute, entity)
}

func NotFoundMessage(entity string) string {
	return "No se encontró " + entity
}

func NonNegativeMessage(attribute string) string {
	return fmt.Sprintf("Valor de %s no puede ser negativo", attribute)
}

func InvalidFormatMessage(attribute string) string {
	return fmt.Sprintf("Valor de %s no es válido", attribute)
}
