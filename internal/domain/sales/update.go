package sales

import (
	"github.com/shopspring/decimal"

	"github.com/hipnotik-level/ventas-api/internal/domain"
	"github.com/hipnotik-level/ventas-api/internal/domain/entity"
)

// Update parche tipado de una venta. Los punteros a nil (y MobileLines nil)
// significan "campo no informado, conservar el valor actual".
type Update struct {
	Company     *string
	PackType    *string
	PackID      *string
	PackName    *string
	PackPrice   *decimal.Decimal
	MobileLines []entity.MobileLine
	Fiber       *entity.FiberInfo
	Notes       *string
	Status      *string
}

// hasFieldChanges indica si el parche toca algún campo distinto de Status.
func (u Update) hasFieldChanges() bool {
	return u.Company != nil || u.PackType != nil || u.PackID != nil ||
		u.PackName != nil || u.PackPrice != nil || u.MobileLines != nil ||
		u.Fiber != nil || u.Notes != nil
}

// Apply produce una nueva venta con el parche aplicado sobre la actual.
// No muta la venta recibida ni recalcula Score; el caller puntúa el resultado.
//
// Regla de transición implícita (la única del sistema): si el parche no trae
// estado explícito pero sí otros campos, el estado pasa a "Modificado".
// Un estado fuera de la enumeración devuelve ErrInvalidStatus.
func Apply(current entity.Sale, u Update) (entity.Sale, error) {
	if u.Status != nil && !entity.ValidSaleStatus(*u.Status) {
		return entity.Sale{}, domain.ErrInvalidStatus
	}

	next := current
	if u.Company != nil {
		next.Company = *u.Company
	}
	if u.PackType != nil {
		next.PackType = *u.PackType
	}
	if u.PackID != nil {
		next.PackID = *u.PackID
	}
	if u.PackName != nil {
		next.PackName = *u.PackName
	}
	if u.PackPrice != nil {
		next.PackPrice = *u.PackPrice
	}
	if u.MobileLines != nil {
		next.MobileLines = u.MobileLines
	}
	if u.Fiber != nil {
		next.Fiber = u.Fiber
	}
	if u.Notes != nil {
		next.Notes = *u.Notes
	}

	switch {
	case u.Status != nil:
		next.Status = *u.Status
	case u.hasFieldChanges():
		next.Status = entity.StatusModificado
	}

	return next, nil
}

// ChangeStatus produce una nueva venta con solo el estado cambiado.
// Valida pertenencia a la enumeración; el caller recalcula Score.
func ChangeStatus(current entity.Sale, status string) (entity.Sale, error) {
	if !entity.ValidSaleStatus(status) {
		return entity.Sale{}, domain.ErrInvalidStatus
	}
	next := current
	next.Status = status
	return next, nil
}
