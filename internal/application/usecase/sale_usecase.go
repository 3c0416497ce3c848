package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hipnotik-level/ventas-api/internal/application/dto"
	"github.com/hipnotik-level/ventas-api/internal/domain"
	"github.com/hipnotik-level/ventas-api/internal/domain/entity"
	"github.com/hipnotik-level/ventas-api/internal/domain/repository"
	"github.com/hipnotik-level/ventas-api/internal/domain/sales"
)

// SaleUseCase casos de uso de ventas. El score es siempre derivado: se
// recalcula sobre el estado fusionado en cada escritura, nunca lo fija
// la petición.
type SaleUseCase struct {
	sales   repository.SaleRepository
	clients repository.ClientRepository
	packs   repository.PackRepository
	users   repository.UserRepository
	notifs  repository.NotificationRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	saleRepo repository.SaleRepository,
	clientRepo repository.ClientRepository,
	packRepo repository.PackRepository,
	userRepo repository.UserRepository,
	notifRepo repository.NotificationRepository,
) *SaleUseCase {
	return &SaleUseCase{
		sales:   saleRepo,
		clients: clientRepo,
		packs:   packRepo,
		users:   userRepo,
		notifs:  notifRepo,
	}
}

// Create registra una venta. Acepta client_id existente o client_data para
// alta inline; estado inicial Registrado; emite notificación de difusión
// para los SuperAdmin.
func (uc *SaleUseCase) Create(actorID, actorName string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.Company == "" || !entity.ValidPackType(in.PackType) {
		return nil, domain.ErrInvalidInput
	}

	clientID := in.ClientID
	switch {
	case in.ClientData != nil:
		client, err := uc.createInlineClient(actorID, *in.ClientData)
		if err != nil {
			return nil, err
		}
		clientID = client.ID
	case clientID != "":
		existing, err := uc.clients.GetByID(clientID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, domain.ErrNotFound
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	sale := &entity.Sale{
		ID:          uuid.New().String(),
		ClientID:    clientID,
		Company:     in.Company,
		PackType:    in.PackType,
		PackID:      in.PackID,
		PackName:    in.PackName,
		PackPrice:   in.PackPrice,
		MobileLines: fromMobileLineDTOs(in.MobileLines),
		Fiber:       fromFiberDTO(in.Fiber),
		Notes:       in.Notes,
		Status:      entity.StatusRegistrado,
		CreatedBy:   actorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	sale.Score = sales.Score(*sale)

	if err := uc.sales.Create(sale); err != nil {
		return nil, err
	}

	notif := &entity.Notification{
		ID:          uuid.New().String(),
		UserID:      entity.NotificationBroadcast,
		Title:       "Nueva venta registrada",
		Message:     fmt.Sprintf("%s ha registrado una venta de %s", actorName, sale.Company),
		Type:        entity.NotifNewSale,
		RelatedID:   sale.ID,
		RelatedType: entity.RelatedSale,
		CreatedAt:   now,
	}
	// La venta ya está persistida; un fallo al notificar no la revierte.
	_ = uc.notifs.Create(notif)

	return toSaleResponse(sale), nil
}

// List lista ventas. Un Empleado solo ve las suyas; el filtro por estado y
// operadora es opcional.
func (uc *SaleUseCase) List(actorID, actorRole, status, company string, page dto.PageRequest) ([]*dto.SaleResponse, error) {
	page.DefaultPage()
	filter := repository.SaleFilter{Status: status, Company: company}
	if actorRole == entity.RoleEmpleado {
		filter.CreatedBy = actorID
	}
	list, err := uc.sales.List(filter, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSaleResponse(s))
	}
	return out, nil
}

// Detail devuelve la venta con cliente, pack y empleado resueltos.
func (uc *SaleUseCase) Detail(actorID, actorRole, saleID string) (*dto.SaleDetailResponse, error) {
	sale, err := uc.ownedSale(actorID, actorRole, saleID)
	if err != nil {
		return nil, err
	}

	resp := &dto.SaleDetailResponse{Sale: *toSaleResponse(sale)}

	if client, err := uc.clients.GetByID(sale.ClientID); err == nil && client != nil {
		resp.Client = toClientResponse(client)
	}
	if sale.PackID != "" {
		if pack, err := uc.packs.GetByID(sale.PackID); err == nil && pack != nil {
			resp.Pack = toPackResponse(pack, time.Now().UTC())
		}
	}
	if emp, err := uc.users.GetByID(sale.CreatedBy); err == nil && emp != nil {
		resp.Employee = &dto.UserResponse{ID: emp.ID, Name: emp.Name}
	}
	return resp, nil
}

// UpdateStatus cambia el estado (PATCH) y recalcula el score.
func (uc *SaleUseCase) UpdateStatus(actorID, actorRole, saleID, status string) (*dto.SaleResponse, error) {
	sale, err := uc.ownedSale(actorID, actorRole, saleID)
	if err != nil {
		return nil, err
	}
	updated, err := sales.ChangeStatus(*sale, status)
	if err != nil {
		return nil, err
	}
	updated.Score = sales.Score(updated)
	updated.UpdatedAt = time.Now().UTC()
	if err := uc.sales.Update(&updated); err != nil {
		return nil, err
	}
	return toSaleResponse(&updated), nil
}

// Update aplica una actualización completa (PUT): fusiona los campos
// presentes sobre la venta persistida, aplica la regla implícita de
// "Modificado" y puntúa el resultado fusionado. Todo o nada.
func (uc *SaleUseCase) Update(actorID, actorRole, saleID string, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	sale, err := uc.ownedSale(actorID, actorRole, saleID)
	if err != nil {
		return nil, err
	}
	if in.PackType != nil && !entity.ValidPackType(*in.PackType) {
		return nil, domain.ErrInvalidInput
	}

	patch := sales.Update{
		Company:   in.Company,
		PackType:  in.PackType,
		PackID:    in.PackID,
		PackName:  in.PackName,
		PackPrice: in.PackPrice,
		Notes:     in.Notes,
		Status:    in.Status,
	}
	if in.MobileLines != nil {
		patch.MobileLines = fromMobileLineDTOs(in.MobileLines)
	}
	if in.Fiber != nil {
		patch.Fiber = fromFiberDTO(in.Fiber)
	}

	updated, err := sales.Apply(*sale, patch)
	if err != nil {
		return nil, err
	}
	updated.Score = sales.Score(updated)
	updated.UpdatedAt = time.Now().UTC()
	if err := uc.sales.Update(&updated); err != nil {
		return nil, err
	}
	return toSaleResponse(&updated), nil
}

// Statuses devuelve la enumeración de estados válidos, en orden de la API.
func (uc *SaleUseCase) Statuses() dto.StatusListResponse {
	return dto.StatusListResponse{Statuses: entity.SaleStatuses}
}

// ownedSale carga la venta y aplica el control de acceso: un Empleado solo
// puede operar sobre sus propias ventas.
func (uc *SaleUseCase) ownedSale(actorID, actorRole, saleID string) (*entity.Sale, error) {
	sale, err := uc.sales.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if actorRole == entity.RoleEmpleado && sale.CreatedBy != actorID {
		return nil, domain.ErrForbidden
	}
	return sale, nil
}

func (uc *SaleUseCase) createInlineClient(createdBy string, in dto.CreateClientRequest) (*entity.Client, error) {
	if in.Name == "" || in.Phone == "" {
		return nil, domain.ErrInvalidInput
	}
	// Si el teléfono ya existe se reutiliza el cliente en lugar de duplicarlo.
	if existing, _ := uc.clients.GetByPhone(in.Phone); existing != nil {
		return existing, nil
	}
	now := time.Now().UTC()
	client := &entity.Client{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Phone:         in.Phone,
		Email:         in.Email,
		City:          in.City,
		Address:       in.Address,
		DNI:           in.DNI,
		InternalNotes: in.InternalNotes,
		CreatedBy:     createdBy,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.clients.Create(client); err != nil {
		return nil, err
	}
	return client, nil
}

func fromMobileLineDTOs(in []dto.MobileLineDTO) []entity.MobileLine {
	if in == nil {
		return nil
	}
	lines := make([]entity.MobileLine, 0, len(in))
	for _, l := range in {
		lines = append(lines, entity.MobileLine{
			Number:        l.Number,
			Type:          l.Type,
			GBData:        l.GBData,
			ICCID:         l.ICCID,
			OriginCompany: l.OriginCompany,
		})
	}
	return lines
}

func fromFiberDTO(in *dto.FiberDTO) *entity.FiberInfo {
	if in == nil {
		return nil
	}
	return &entity.FiberInfo{Address: in.Address, SpeedMbps: in.SpeedMbps}
}

func toMobileLineDTOs(in []entity.MobileLine) []dto.MobileLineDTO {
	if in == nil {
		return nil
	}
	lines := make([]dto.MobileLineDTO, 0, len(in))
	for _, l := range in {
		lines = append(lines, dto.MobileLineDTO{
			Number:        l.Number,
			Type:          l.Type,
			GBData:        l.GBData,
			ICCID:         l.ICCID,
			OriginCompany: l.OriginCompany,
		})
	}
	return lines
}

func toFiberDTO(in *entity.FiberInfo) *dto.FiberDTO {
	if in == nil {
		return nil
	}
	return &dto.FiberDTO{Address: in.Address, SpeedMbps: in.SpeedMbps}
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:          s.ID,
		ClientID:    s.ClientID,
		Company:     s.Company,
		PackType:    s.PackType,
		PackID:      s.PackID,
		PackName:    s.PackName,
		PackPrice:   s.PackPrice,
		MobileLines: toMobileLineDTOs(s.MobileLines),
		Fiber:       toFiberDTO(s.Fiber),
		Notes:       s.Notes,
		Status:      s.Status,
		Score:       s.Score,
		CreatedBy:   s.CreatedBy,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
