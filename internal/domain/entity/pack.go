package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Umbrales de novedad de un pack. El listado de catálogo marca "nuevo" a los
// packs de menos de 7 días; el configurador usa 30 días para la insignia "Nueva".
const (
	CatalogNewDays      = 7
	ConfiguratorNewDays = 30
)

// Pack representa una tarifa/paquete del catálogo (gestión de admin).
type Pack struct {
	ID            string
	Company       string
	Name          string
	Type          string // misma enumeración que Sale.PackType
	Price         decimal.Decimal
	Features      string
	ValidityStart *time.Time
	ValidityEnd   *time.Time
	Active        bool
	Observations  string
	CreatedAt     time.Time
	IsDemo        bool

	// Atributos del configurador
	Category                 string // mobile_only, fiber_only, bundle, bundle_tv
	FiberSpeedMbps           int
	MobileGB                 int
	MinutesType              string // ilimitadas, limitadas
	LinesIncluded            int
	AdditionalLinesSupported bool
	TVSupported              bool
	TVPackageType            string // basic, sports, streaming, other
	Restrictions             string
}

// IsNewInCatalog indica si el pack lleva menos de 7 días en el catálogo.
// Es un campo derivado, nunca se persiste.
func (p Pack) IsNewInCatalog(now time.Time) bool {
	return now.Sub(p.CreatedAt) < CatalogNewDays*24*time.Hour
}

// IsFresh indica si el pack lleva menos de 30 días en el catálogo
// (umbral del configurador, distinto del listado).
func (p Pack) IsFresh(now time.Time) bool {
	return now.Sub(p.CreatedAt) < ConfiguratorNewDays*24*time.Hour
}
