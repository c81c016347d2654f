package repository

// Factory describes access to the different domain repositories.
type Factory interface {
	Items() ItemRepository
	Orders() OrderRepository
	Clients() ClientRepository
	ConsignTypes() ConsignTypeRepository
	ConsignMovements() ConsignMovementRepository
	Users() UserRepository
}
