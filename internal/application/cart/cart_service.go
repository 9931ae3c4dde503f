package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sunset/storefront/internal/domain/cart"
	"github.com/sunset/storefront/internal/domain/catalog"
	"github.com/sunset/storefront/internal/domain/shared"
	"go.uber.org/zap"
)

// Service handles cart business operations. All operations are scoped
// to an explicit owner reference resolved by the HTTP layer.
type Service struct {
	lines            cart.LineRepository
	products         catalog.ProductRepository
	tx               shared.TxManager
	atomicIncrements bool
	logger           *zap.Logger
}

// Option configures the Service
type Option func(*Service)

// WithAtomicIncrements makes repeat adds clamp quantity store-side in a
// single UPDATE instead of read-then-write.
func WithAtomicIncrements(enabled bool) Option {
	return func(s *Service) {
		s.atomicIncrements = enabled
	}
}

// WithLogger sets the service logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a new cart Service
func NewService(lines cart.LineRepository, products catalog.ProductRepository, tx shared.TxManager, opts ...Option) *Service {
	s := &Service{
		lines:    lines,
		products: products,
		tx:       tx,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns the owner's cart with product details and totals
func (s *Service) List(ctx context.Context, owner cart.OwnerRef) (*CartResponse, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}
	details, err := s.lines.ListLines(ctx, owner)
	if err != nil {
		return nil, err
	}

	resp := &CartResponse{
		Items: make([]LineResponse, len(details)),
		Total: decimal.Zero,
	}
	for i, d := range details {
		resp.Items[i] = toLineResponse(d)
		resp.Count += d.Quantity
		resp.Total = resp.Total.Add(resp.Items[i].Subtotal)
	}
	return resp, nil
}

// Count returns the total unit count in the owner's cart
func (s *Service) Count(ctx context.Context, owner cart.OwnerRef) (int, error) {
	if err := owner.Validate(); err != nil {
		return 0, err
	}
	return s.lines.CountItems(ctx, owner)
}

// Add puts a product into the cart. A repeat add for the same product
// and variant folds into the existing line, clamped by the per-item cap
// and the current stock snapshot. A first add of an out-of-stock but
// active product persists a zero-quantity line.
func (s *Service) Add(ctx context.Context, owner cart.OwnerRef, req AddRequest) error {
	if err := owner.Validate(); err != nil {
		return err
	}
	if req.Quantity < 1 {
		return shared.ErrInvalidInput
	}

	product, err := s.products.FindByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.ErrProductUnavailable
		}
		return err
	}
	if !product.IsAvailable() {
		return shared.ErrProductUnavailable
	}
	if !product.HasVariant(req.Size, req.Color) {
		return shared.ErrInvalidInput
	}

	if s.atomicIncrements {
		// Fold into an existing line store-side; fall through to insert
		// when the owner has no such line yet.
		_, err := s.lines.IncrementClamped(ctx, owner, req.ProductID, req.Size, req.Color, req.Quantity, product.Stock)
		if err == nil {
			return nil
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return err
		}
		return s.insertLine(ctx, owner, product, req)
	}

	line, err := s.lines.FindLine(ctx, owner, req.ProductID, req.Size, req.Color)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return s.insertLine(ctx, owner, product, req)
		}
		return err
	}

	if err := line.Increment(req.Quantity, product.Stock); err != nil {
		return err
	}
	return s.lines.Save(ctx, line)
}

// insertLine creates a fresh line, enforcing the distinct-product cap
func (s *Service) insertLine(ctx context.Context, owner cart.OwnerRef, product *catalog.Product, req AddRequest) error {
	distinct, err := s.lines.CountDistinctProducts(ctx, owner)
	if err != nil {
		return err
	}
	if distinct >= cart.MaxDistinctItems {
		return shared.ErrTooManyDistinctItems
	}

	line, err := cart.NewLine(owner, product.ID, req.Quantity, product.Stock)
	if err != nil {
		return err
	}
	line.Size = req.Size
	line.Color = req.Color

	s.logger.Debug("cart line added",
		zap.String("owner_kind", string(owner.Kind)),
		zap.String("product_id", product.ID.String()),
		zap.Int("quantity", line.Quantity),
	)
	return s.lines.Save(ctx, line)
}

// UpdateQuantity sets a line to an absolute quantity, clamped by stock
// and the per-item cap. Requested quantities below one are coerced to one.
func (s *Service) UpdateQuantity(ctx context.Context, owner cart.OwnerRef, lineID uuid.UUID, quantity int) error {
	if err := owner.Validate(); err != nil {
		return err
	}

	line, err := s.lines.FindLineByID(ctx, owner, lineID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.ErrLineNotFound
		}
		return err
	}

	product, err := s.products.FindByID(ctx, line.ProductID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.ErrProductUnavailable
		}
		return err
	}

	line.SetQuantity(quantity, product.Stock)
	return s.lines.Save(ctx, line)
}

// Remove deletes a line from the owner's cart
func (s *Service) Remove(ctx context.Context, owner cart.OwnerRef, lineID uuid.UUID) error {
	if err := owner.Validate(); err != nil {
		return err
	}
	if err := s.lines.Delete(ctx, owner, lineID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.ErrLineNotFound
		}
		return err
	}
	return nil
}

// MigrateGuestCart folds a locally held guest cart into the customer's
// server-side cart in a single transaction. Entries referencing unknown
// or inactive products are skipped; any storage failure rolls the whole
// migration back. Returns the number of entries migrated.
func (s *Service) MigrateGuestCart(ctx context.Context, owner cart.OwnerRef, entries []cart.GuestEntry) (int, error) {
	if err := owner.Validate(); err != nil {
		return 0, err
	}
	if !owner.IsCustomer() {
		return 0, shared.ErrUnauthorized
	}

	migrated := 0
	err := s.tx.Transaction(ctx, func(tx any) error {
		lines := s.lines.WithTx(tx)
		products := s.products.WithTx(tx)

		for _, entry := range entries {
			if entry.Quantity < 1 {
				continue
			}

			product, err := products.FindByID(ctx, entry.ProductID)
			if err != nil {
				if errors.Is(err, shared.ErrNotFound) {
					continue
				}
				return err
			}
			if !product.IsAvailable() {
				continue
			}

			line, err := lines.FindLine(ctx, owner, entry.ProductID, entry.Size, entry.Color)
			switch {
			case err == nil:
				if err := line.Increment(entry.Quantity, product.Stock); err != nil {
					return err
				}
			case errors.Is(err, shared.ErrNotFound):
				distinct, err := lines.CountDistinctProducts(ctx, owner)
				if err != nil {
					return err
				}
				if distinct >= cart.MaxDistinctItems {
					// Remaining entries cannot fit; keep what merged so far.
					continue
				}
				line, err = cart.NewLine(owner, product.ID, entry.Quantity, product.Stock)
				if err != nil {
					return err
				}
				line.Size = entry.Size
				line.Color = entry.Color
			default:
				return err
			}

			if err := lines.Save(ctx, line); err != nil {
				return err
			}
			migrated++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("guest cart migrated",
		zap.String("customer_id", owner.Key),
		zap.Int("migrated", migrated),
	)
	return migrated, nil
}
