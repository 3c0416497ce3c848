package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de pack válidos (compartidos entre Sale y Pack).
const (
	PackTypeSoloMovil     = "Solo Móvil"
	PackTypeSoloFibra     = "Solo Fibra"
	PackTypeFibraMovil    = "Pack Fibra + Móvil"
	PackTypeFibraMovilTV  = "Pack Fibra + Móvil + TV"
)

// PackTypes lista cerrada de tipos de pack.
var PackTypes = []string{
	PackTypeSoloMovil,
	PackTypeSoloFibra,
	PackTypeFibraMovil,
	PackTypeFibraMovilTV,
}

// ValidPackType verifica pertenencia a la enumeración de tipos de pack.
func ValidPackType(t string) bool {
	for _, pt := range PackTypes {
		if pt == t {
			return true
		}
	}
	return false
}

// Estados válidos de una venta. No hay grafo de transiciones: cualquier estado
// es alcanzable desde cualquier otro; solo se valida pertenencia.
const (
	StatusRegistrado = "Registrado"
	StatusEnProceso  = "En proceso"
	StatusIncidencia = "Incidencia"
	StatusInstalado  = "Instalado"
	StatusModificado = "Modificado"
	StatusCancelado  = "Cancelado"
	StatusFinalizado = "Finalizado"
)

// SaleStatuses lista cerrada de estados, en el orden que expone la API.
var SaleStatuses = []string{
	StatusRegistrado,
	StatusEnProceso,
	StatusIncidencia,
	StatusInstalado,
	StatusModificado,
	StatusCancelado,
	StatusFinalizado,
}

// ValidSaleStatus verifica pertenencia a la enumeración de estados.
func ValidSaleStatus(s string) bool {
	for _, st := range SaleStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// Tipos de línea móvil.
const (
	LineTypePostpago = "Postpago"
	LineTypePrepago  = "Prepago"
)

// MobileLine una línea móvil incluida en la venta.
type MobileLine struct {
	Number        string `json:"number"`
	Type          string `json:"type"` // Postpago, Prepago
	GBData        int    `json:"gb_data,omitempty"`
	ICCID         string `json:"iccid,omitempty"`
	OriginCompany string `json:"origin_company,omitempty"`
}

// FiberInfo datos de fibra de la venta.
type FiberInfo struct {
	Address   string `json:"address,omitempty"`
	SpeedMbps int    `json:"speed_mbps,omitempty"`
}

// Sale representa una venta registrada por un empleado.
//
// Score es un campo derivado: siempre se recalcula a partir de los valores
// persistidos (estado, fibra, líneas, precio) en cada escritura; nunca lo
// escribe directamente una petición de cliente.
type Sale struct {
	ID          string
	ClientID    string
	Company     string
	PackType    string
	PackID      string
	PackName    string
	PackPrice   decimal.Decimal // cero = sin precio informado
	MobileLines []MobileLine
	Fiber       *FiberInfo
	Notes       string
	Status      string
	Score       int // [0,100], derivado
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	IsDemo      bool
}
