package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MobileLineDTO una línea móvil de la venta.
type MobileLineDTO struct {
	Number        string `json:"number" validate:"required"`
	Type          string `json:"type" validate:"required,oneof=Postpago Prepago"`
	GBData        int    `json:"gb_data" validate:"min=0"`
	ICCID         string `json:"iccid,omitempty"`
	OriginCompany string `json:"origin_company,omitempty"`
}

// FiberDTO datos de fibra de la venta.
type FiberDTO struct {
	Address   string `json:"address,omitempty"`
	SpeedMbps int    `json:"speed_mbps" validate:"min=0"`
}

// CreateSaleRequest entrada para crear una venta. Se acepta client_id de un
// cliente existente o client_data para darlo de alta en la misma petición.
type CreateSaleRequest struct {
	ClientID    string               `json:"client_id"`
	ClientData  *CreateClientRequest `json:"client_data"`
	Company     string               `json:"company" validate:"required,min=1,max=100"`
	PackType    string               `json:"pack_type" validate:"required"`
	PackID      string               `json:"pack_id"`
	PackName    string               `json:"pack_name"`
	PackPrice   decimal.Decimal      `json:"pack_price"` // cero = sin precio
	MobileLines []MobileLineDTO      `json:"mobile_lines"`
	Fiber       *FiberDTO            `json:"fiber"`
	Notes       string               `json:"notes"`
}

// UpdateSaleRequest actualización completa estilo PUT; nil = sin cambio.
// Si no trae status pero sí otros campos, la venta pasa a "Modificado".
type UpdateSaleRequest struct {
	Company     *string          `json:"company"`
	PackType    *string          `json:"pack_type"`
	PackID      *string          `json:"pack_id"`
	PackName    *string          `json:"pack_name"`
	PackPrice   *decimal.Decimal `json:"pack_price"`
	MobileLines []MobileLineDTO  `json:"mobile_lines"`
	Fiber       *FiberDTO        `json:"fiber"`
	Notes       *string          `json:"notes"`
	Status      *string          `json:"status"`
}

// UpdateSaleStatusRequest cambio de estado (PATCH).
type UpdateSaleStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID          string          `json:"id"`
	ClientID    string          `json:"client_id"`
	Company     string          `json:"company"`
	PackType    string          `json:"pack_type"`
	PackID      string          `json:"pack_id,omitempty"`
	PackName    string          `json:"pack_name,omitempty"`
	PackPrice   decimal.Decimal `json:"pack_price"`
	MobileLines []MobileLineDTO `json:"mobile_lines"`
	Fiber       *FiberDTO       `json:"fiber,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	Status      string          `json:"status"`
	Score       int             `json:"score"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// SaleDetailResponse venta con su contexto resuelto.
type SaleDetailResponse struct {
	Sale     SaleResponse    `json:"sale"`
	Client   *ClientResponse `json:"client,omitempty"`
	Pack     *PackResponse   `json:"pack,omitempty"`
	Employee *UserResponse   `json:"employee,omitempty"`
}

// StatusListResponse enumeración de estados válidos de venta.
type StatusListResponse struct {
	Statuses []string `json:"statuses"`
}
