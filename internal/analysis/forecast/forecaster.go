package forecast

import (
	"log/slog"

	"github.com/seenimoa/supplywatch/internal/config"
)

// Forecaster runs the full training pass over one demand history:
// load, split, fit, evaluate, persist.
type Forecaster struct {
	cfg    config.ForecastConfig
	logger *slog.Logger
}

// NewForecaster returns a forecaster with the given settings.
func NewForecaster(cfg config.ForecastConfig, logger *slog.Logger) *Forecaster {
	if cfg.TestFraction <= 0 || cfg.TestFraction >= 1 {
		cfg.TestFraction = 0.2
	}
	if cfg.ModelPath == "" {
		cfg.ModelPath = "demand_forecasting_model.json"
	}
	return &Forecaster{cfg: cfg, logger: logger}
}

// Run trains on the CSV at path and returns the fitted model and its
// mean squared error on the held-out rows. The model is also written
// to the configured model path.
func (f *Forecaster) Run(path string) (*Model, float64, error) {
	ds, err := LoadCSV(path)
	if err != nil {
		return nil, 0, err
	}
	f.logger.Info("loaded demand history", "rows", ds.Len(), "features", len(ds.FeatureNames))

	train, test := ds.Split(f.cfg.TestFraction, f.cfg.Seed)

	model, err := Fit(train)
	if err != nil {
		return nil, 0, err
	}

	mse, err := model.Evaluate(test)
	if err != nil {
		return nil, 0, err
	}
	f.logger.Info("demand model trained", "mse", mse, "train_rows", train.Len(), "test_rows", test.Len())

	if err := model.Save(f.cfg.ModelPath); err != nil {
		return nil, 0, err
	}
	f.logger.Info("model saved", "path", f.cfg.ModelPath)

	return model, mse, nil
}
