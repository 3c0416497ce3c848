package dto

// RecommendRequest entrada del recomendador simple.
type RecommendRequest struct {
	PackType      string `query:"pack_type" validate:"required"`
	OriginCompany string `query:"origin_company"`
}

// RecommendationDTO pack recomendado con su puntuación de afinidad.
type RecommendationDTO struct {
	PackResponse
	Score int `json:"score"`
}

// ConfigureRequest entrada del configurador de packs.
type ConfigureRequest struct {
	PackType            string `json:"pack_type" validate:"required"`
	OriginCompany       string `json:"origin_company"`
	Priority            string `json:"priority" validate:"required,oneof=Ahorrar Equilibrado 'Máxima calidad'"`
	MobileGB            int    `json:"mobile_gb" validate:"min=0"`
	FiberSpeedMbps      int    `json:"fiber_speed_mbps" validate:"min=0"`
	MinutesType         string `json:"minutes_type"`
	AdditionalLines     int    `json:"additional_lines" validate:"min=0"`
	TVRequired          bool   `json:"tv_required"`
	TVPackageType       string `json:"tv_package_type"`
	RespectRestrictions *bool  `json:"respect_restrictions"` // nil = true
}

// ConfiguredPackDTO pack puntuado por el configurador, con detalle e insignias.
type ConfiguredPackDTO struct {
	PackResponse
	Score      float64  `json:"score"`
	FitDetails []string `json:"fit_details"`
	Badges     []string `json:"badges"`
}
