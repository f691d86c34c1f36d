package doctor

import (
	"context"
)

type Repository interface {
	List(ctx context.Context, f Filter, limit, offset int) ([]*Listing, int, error)
	CreateProfile(ctx context.Context, p *Profile) error
}
