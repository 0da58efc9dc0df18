package renderer

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// renderRows calls renderRow for every row index in [0, rows) using at most
// workers goroutines. With one worker rows run strictly in raster order.
// Cancellation is checked between rows.
func renderRows(ctx context.Context, rows, workers int, renderRow func(row int) error) error {
	if workers < 1 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for j := 0; j < rows; j++ {
		if gctx.Err() != nil {
			break
		}
		j := j
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return renderRow(j)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	// The group context is always canceled after Wait; only the caller's matters
	return ctx.Err()
}
