package rates

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/vatsync/internal/fetcher"
)

// Options configures a pipeline run. URLs and the output path are injected
// here rather than read from globals so tests can point at mock sources.
type Options struct {
	SalesTaxURL string
	EUVATURL    string
	OutputPath  string

	// RawDir, when non-empty, keeps a copy of each raw upstream payload
	// under this directory.
	RawDir string
}

// Pipeline runs the fetch -> normalize -> merge -> write sequence. Any step
// failing aborts the run; there is no retry and no partial output.
type Pipeline struct {
	fetcher fetcher.Fetcher
}

// NewPipeline creates a pipeline using the given fetcher.
func NewPipeline(f fetcher.Fetcher) *Pipeline {
	return &Pipeline{fetcher: f}
}

// Run executes the full pipeline and returns the merged mapping after it has
// been written to opts.OutputPath.
func (p *Pipeline) Run(ctx context.Context, opts Options) (map[string]Record, error) {
	log := zap.L()

	var salesRaw, vatRaw []byte

	// The two sources have no ordering dependency until merge time.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		salesRaw, err = p.fetch(gctx, opts.SalesTaxURL, opts.RawDir, "sales_tax_rates.json")
		return err
	})
	g.Go(func() error {
		var err error
		vatRaw, err = p.fetch(gctx, opts.EUVATURL, opts.RawDir, "eu_vat_rates.json")
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "pipeline: fetch")
	}

	salesRecords, err := NormalizeSalesTax(salesRaw)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: normalize sales tax")
	}
	vatRecords, err := NormalizeEUVAT(vatRaw)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: normalize eu vat")
	}

	// EU VAT wins on collision.
	merged := Merge(salesRecords, vatRecords)

	if err := Write(opts.OutputPath, merged); err != nil {
		return nil, eris.Wrap(err, "pipeline: write output")
	}

	log.Info("pipeline complete",
		zap.Int("sales_tax_countries", len(salesRecords)),
		zap.Int("eu_vat_countries", len(vatRecords)),
		zap.Int("merged_countries", len(merged)),
		zap.String("output", opts.OutputPath),
	)

	return merged, nil
}

func (p *Pipeline) fetch(ctx context.Context, url, rawDir, name string) ([]byte, error) {
	body, err := p.fetcher.Download(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close() //nolint:errcheck

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, eris.Wrapf(err, "read body from %s", url)
	}

	if rawDir != "" {
		path := filepath.Join(rawDir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, eris.Wrapf(err, "keep raw copy %s", path)
		}
	}

	zap.L().Debug("fetched source",
		zap.String("url", url),
		zap.Int("bytes", len(data)),
	)

	return data, nil
}
