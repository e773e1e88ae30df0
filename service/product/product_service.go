package product

import (
	"context"
	"log/slog"

	"product.GO/service/catalog"
)

// Service answers "describe product X" by loading the catalog record,
// merging its price and projecting the result.
type Service struct {
	loader    *catalog.Loader
	assembler *Assembler
}

func NewService(loader *catalog.Loader, assembler *Assembler) *Service {
	return &Service{loader: loader, assembler: assembler}
}

// GetProduct always describes the single bundled product; requestedID is
// only logged.
func (s *Service) GetProduct(ctx context.Context, requestedID string) Response {
	res := s.loader.Load()
	if res.Degraded() {
		slog.WarnContext(ctx, "serving degraded catalog record", "requested_id", requestedID)
	}
	p := s.assembler.Assemble(ctx, res.Record)
	slog.DebugContext(ctx, "product assembled",
		"requested_id", requestedID,
		"product_id", p.Information.ProductID,
		"priced", !p.Price.IsZero(),
	)
	return Project(p)
}
