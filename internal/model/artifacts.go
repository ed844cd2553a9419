package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mlops-lab/churn-predictor/internal/logger"
)

// Artifact file names inside the model directory.
const (
	ClassifierFile = "churn_model.json"
	ScalerFile     = "scaler.json"
	FeaturesFile   = "feature_names.json"
)

// Artifacts are the pre-fitted training outputs the service scores with:
// the classifier, the feature scaler, and the ordered feature name list.
// Loaded once at startup and treated as immutable read-only state, so they
// are safe for unsynchronized concurrent reads.
type Artifacts struct {
	Classifier   *LogisticClassifier
	Scaler       *StandardScaler
	FeatureNames []string
}

// Load reads the three artifact files from dir and checks that they agree on
// the feature schema. Any missing or corrupt file fails the whole load; the
// caller is expected to run degraded rather than retry per request.
func Load(dir string) (*Artifacts, error) {
	var classifier LogisticClassifier
	if err := readJSON(filepath.Join(dir, ClassifierFile), &classifier); err != nil {
		return nil, fmt.Errorf("load classifier: %w", err)
	}
	logger.Infof("Classifier loaded (%s, %d coefficients)", classifier.ModelType, len(classifier.Coefficients))

	var scaler StandardScaler
	if err := readJSON(filepath.Join(dir, ScalerFile), &scaler); err != nil {
		return nil, fmt.Errorf("load scaler: %w", err)
	}
	logger.Infof("Scaler loaded (%d features)", len(scaler.Mean))

	var featureNames []string
	if err := readJSON(filepath.Join(dir, FeaturesFile), &featureNames); err != nil {
		return nil, fmt.Errorf("load feature names: %w", err)
	}
	logger.Infof("Feature names loaded (%d features)", len(featureNames))

	a := &Artifacts{
		Classifier:   &classifier,
		Scaler:       &scaler,
		FeatureNames: featureNames,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate checks internal consistency of the loaded artifacts.
func (a *Artifacts) Validate() error {
	if len(a.FeatureNames) == 0 {
		return fmt.Errorf("feature name list is empty")
	}
	if err := a.Scaler.validate(); err != nil {
		return fmt.Errorf("invalid scaler: %w", err)
	}
	if err := a.Classifier.validate(); err != nil {
		return fmt.Errorf("invalid classifier: %w", err)
	}
	if len(a.Scaler.Mean) != len(a.FeatureNames) {
		return fmt.Errorf("scaler covers %d features, feature list has %d", len(a.Scaler.Mean), len(a.FeatureNames))
	}
	if len(a.Classifier.Coefficients) != len(a.FeatureNames) {
		return fmt.Errorf("classifier covers %d features, feature list has %d", len(a.Classifier.Coefficients), len(a.FeatureNames))
	}
	return nil
}

// Score applies the scaler and classifier to an aligned feature vector,
// returning the churn probability and the classifier's native hard label.
func (a *Artifacts) Score(vec []float64) (probability float64, label int, err error) {
	scaled, err := a.Scaler.Transform(vec)
	if err != nil {
		return 0, 0, fmt.Errorf("scale features: %w", err)
	}

	probability, err = a.Classifier.PredictProba(scaled)
	if err != nil {
		return 0, 0, fmt.Errorf("predict probability: %w", err)
	}

	label, err = a.Classifier.Predict(scaled)
	if err != nil {
		return 0, 0, fmt.Errorf("predict label: %w", err)
	}
	return probability, label, nil
}

// ModelType reports the classifier's algorithm name for /model/info.
func (a *Artifacts) ModelType() string {
	return a.Classifier.ModelType
}

// FeatureCount returns the size of the training feature schema.
func (a *Artifacts) FeatureCount() int {
	return len(a.FeatureNames)
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}
