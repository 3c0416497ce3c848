package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/hipnotik-level/ventas-api/internal/application/dto"
	"github.com/hipnotik-level/ventas-api/internal/domain"
	"github.com/hipnotik-level/ventas-api/internal/domain/entity"
	"github.com/hipnotik-level/ventas-api/internal/domain/repository"
)

// ClientUseCase casos de uso de clientes finales.
type ClientUseCase struct {
	clients repository.ClientRepository
	sales   repository.SaleRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(clients repository.ClientRepository, sales repository.SaleRepository) *ClientUseCase {
	return &ClientUseCase{clients: clients, sales: sales}
}

// Create crea un cliente. Deduplica por teléfono: si ya existe uno con el
// mismo número devuelve ErrDuplicate.
func (uc *ClientUseCase) Create(createdBy string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" || in.Phone == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.clients.GetByPhone(in.Phone)
	if existing != nil {
		return nil, domain.ErrDuplicate
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
	return toClientResponse(client), nil
}

// List lista clientes, con búsqueda opcional sobre nombre y teléfono.
func (uc *ClientUseCase) List(search string, page dto.PageRequest) ([]*dto.ClientResponse, error) {
	page.DefaultPage()
	clients, err := uc.clients.List(search, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, toClientResponse(c))
	}
	return out, nil
}

// Get obtiene un cliente por ID.
func (uc *ClientUseCase) Get(id string) (*dto.ClientResponse, error) {
	client, err := uc.clients.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

// Update aplica una actualización parcial sobre el cliente.
func (uc *ClientUseCase) Update(id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.clients.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		client.Name = *in.Name
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	if in.Email != nil {
		client.Email = *in.Email
	}
	if in.City != nil {
		client.City = *in.City
	}
	if in.Address != nil {
		client.Address = *in.Address
	}
	if in.DNI != nil {
		client.DNI = *in.DNI
	}
	if in.InternalNotes != nil {
		client.InternalNotes = *in.InternalNotes
	}
	client.UpdatedAt = time.Now().UTC()
	if err := uc.clients.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Sales devuelve las ventas del cliente con el total de puntuación y recuento.
func (uc *ClientUseCase) Sales(clientID string) (*dto.ClientSalesResponse, error) {
	client, err := uc.clients.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	sales, err := uc.sales.List(repository.SaleFilter{ClientID: clientID}, 1000, 0)
	if err != nil {
		return nil, err
	}
	resp := &dto.ClientSalesResponse{Sales: make([]dto.SaleResponse, 0, len(sales))}
	for _, s := range sales {
		resp.Sales = append(resp.Sales, *toSaleResponse(s))
		resp.TotalScore += s.Score
	}
	resp.Count = len(sales)
	return resp, nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	if c == nil {
		return nil
	}
	return &dto.ClientResponse{
		ID:            c.ID,
		Name:          c.Name,
		Phone:         c.Phone,
		Email:         c.Email,
		City:          c.City,
		Address:       c.Address,
		DNI:           c.DNI,
		InternalNotes: c.InternalNotes,
		CreatedBy:     c.CreatedBy,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
