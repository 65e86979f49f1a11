package customer

import "context"

type CustomerRepository interface {
	Create(ctx context.Context, customer *Customer) error
	GetByID(ctx context.Context, id uint) (*Customer, error)
	GetByCode(ctx context.Context, code string) (*Customer, error)
	Update(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, id uint) error

	List(ctx context.Context, filter CustomerFilter) ([]*Customer, int64, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	// MaxCodeSequence returns the highest numeric suffix among existing
	// customer codes, 0 when there are none. Used to mint the next code.
	MaxCodeSequence(ctx context.Context) (uint, error)
}

type CustomerFilter struct {
	Role     *string
	Search   string
	Page     int
	PageSize int
	SortBy   string
	SortDesc bool
}
