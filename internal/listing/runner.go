package listing

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/alecearnshaw-coder/fotosaves-NT/internal/config"
	"github.com/alecearnshaw-coder/fotosaves-NT/internal/discovery"
	"github.com/alecearnshaw-coder/fotosaves-NT/internal/export"
	"github.com/alecearnshaw-coder/fotosaves-NT/internal/gallery"
	"github.com/alecearnshaw-coder/fotosaves-NT/internal/logging"
)

// Runner drives the discover → parse → export pipeline for one folder.
type Runner struct {
	cfg *config.Config
	log *logging.Logger
}

// NewRunner creates a pipeline runner.
func NewRunner(cfg *config.Config, log *logging.Logger) *Runner {
	return &Runner{cfg: cfg, log: log}
}

// Run processes dir and writes the listing workbook. It returns the output
// path and the number of records written. A run that finds no pages or no
// records is clean: ("", 0, nil). Unreadable or non-HTML files are logged
// and skipped.
func (r *Runner) Run(dir string) (string, int, error) {
	inputs, err := discovery.Find(dir, r.cfg.Pattern)
	if err != nil {
		return "", 0, err
	}
	if len(inputs) == 0 {
		r.log.Info("no matching gallery pages",
			zap.String("dir", dir),
			zap.String("pattern", r.cfg.Pattern))
		return "", 0, nil
	}
	r.log.Info("processing gallery pages", zap.Int("files", len(inputs)))

	var records []Record
	for _, in := range inputs {
		if !discovery.IsHTML(in.Path) {
			r.log.Warn("skipping non-HTML file", zap.String("file", in.Path))
			continue
		}

		res, err := gallery.ParseFile(in.Path)
		if err != nil {
			r.log.Error("skipping unreadable file",
				zap.String("file", in.Path),
				zap.Error(err))
			continue
		}

		recs := FromResult(in.Species, res)
		r.log.Info("parsed gallery page",
			zap.String("species", in.Species),
			zap.Int("records", len(recs)),
			zap.String("threat_status", res.ThreatStatus))
		records = append(records, recs...)
	}

	if len(records) == 0 {
		r.log.Info("no image records found")
		return "", 0, nil
	}

	out := r.cfg.Output
	if out == "" {
		out = filepath.Join(dir, OutputName(dir))
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, rec.Values())
	}
	if err := export.WriteWorkbook(out, r.cfg.Sheet, Headers, rows); err != nil {
		return "", 0, err
	}

	r.log.Info("wrote image listing",
		zap.String("output", out),
		zap.Int("records", len(records)))
	return out, len(records), nil
}
