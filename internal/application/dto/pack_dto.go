package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePackRequest entrada para crear un pack del catálogo (admin).
type CreatePackRequest struct {
	Company       string          `json:"company" validate:"required,min=1,max=100"`
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Type          string          `json:"type" validate:"required"`
	Price         decimal.Decimal `json:"price" validate:"required"`
	Features      string          `json:"features"`
	ValidityStart *time.Time      `json:"validity_start"`
	ValidityEnd   *time.Time      `json:"validity_end"`
	Active        *bool           `json:"active"` // nil = activo por defecto
	Observations  string          `json:"observations"`

	Category                 string `json:"category" validate:"omitempty,oneof=mobile_only fiber_only bundle bundle_tv"`
	FiberSpeedMbps           int    `json:"fiber_speed_mbps" validate:"min=0"`
	MobileGB                 int    `json:"mobile_gb" validate:"min=0"`
	MinutesType              string `json:"minutes_type"`
	LinesIncluded            int    `json:"lines_included" validate:"min=0"`
	AdditionalLinesSupported bool   `json:"additional_lines_supported"`
	TVSupported              bool   `json:"tv_supported"`
	TVPackageType            string `json:"tv_package_type"`
	Restrictions             string `json:"restrictions"`
}

// UpdatePackRequest actualización parcial de un pack; nil = sin cambio.
type UpdatePackRequest struct {
	Company       *string          `json:"company"`
	Name          *string          `json:"name"`
	Type          *string          `json:"type"`
	Price         *decimal.Decimal `json:"price"`
	Features      *string          `json:"features"`
	ValidityStart *time.Time       `json:"validity_start"`
	ValidityEnd   *time.Time       `json:"validity_end"`
	Active        *bool            `json:"active"`
	Observations  *string          `json:"observations"`

	Category                 *string `json:"category"`
	FiberSpeedMbps           *int    `json:"fiber_speed_mbps"`
	MobileGB                 *int    `json:"mobile_gb"`
	MinutesType              *string `json:"minutes_type"`
	LinesIncluded            *int    `json:"lines_included"`
	AdditionalLinesSupported *bool   `json:"additional_lines_supported"`
	TVSupported              *bool   `json:"tv_supported"`
	TVPackageType            *string `json:"tv_package_type"`
	Restrictions             *string `json:"restrictions"`
}

// PackResponse salida de un pack. IsNew es derivado (edad < 7 días en el
// listado de catálogo), nunca persistido.
type PackResponse struct {
	ID            string          `json:"id"`
	Company       string          `json:"company"`
	Name          string          `json:"name"`
	Type          string          `json:"type"`
	Price         decimal.Decimal `json:"price"`
	Features      string          `json:"features,omitempty"`
	ValidityStart *time.Time      `json:"validity_start,omitempty"`
	ValidityEnd   *time.Time      `json:"validity_end,omitempty"`
	Active        bool            `json:"active"`
	Observations  string          `json:"observations,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	IsNew         bool            `json:"is_new"`

	Category                 string `json:"category,omitempty"`
	FiberSpeedMbps           int    `json:"fiber_speed_mbps,omitempty"`
	MobileGB                 int    `json:"mobile_gb,omitempty"`
	MinutesType              string `json:"minutes_type,omitempty"`
	LinesIncluded            int    `json:"lines_included,omitempty"`
	AdditionalLinesSupported bool   `json:"additional_lines_supported"`
	TVSupported              bool   `json:"tv_supported"`
	TVPackageType            string `json:"tv_package_type,omitempty"`
	Restrictions             string `json:"restrictions,omitempty"`
}
