package features

import (
	"errors"
	"fmt"

	"github.com/mlops-lab/churn-predictor/pkg/models"
)

// ErrBadRecord indicates a record that cannot be encoded into features.
var ErrBadRecord = errors.New("bad customer record")

// binaryMappings are the fixed {0,1} encodings applied at training time.
var binaryMappings = map[string]map[string]float64{
	"gender":           {"Male": 1, "Female": 0},
	"Partner":          {"Yes": 1, "No": 0},
	"Dependents":       {"Yes": 1, "No": 0},
	"PhoneService":     {"Yes": 1, "No": 0},
	"PaperlessBilling": {"Yes": 1, "No": 0},
}

// Transformer converts a raw customer record into the ordered numeric feature
// vector the trained model expects. The feature name list comes from the
// training artifacts and defines both the column set and the column order.
type Transformer struct {
	featureNames []string
}

func NewTransformer(featureNames []string) *Transformer {
	return &Transformer{featureNames: featureNames}
}

// Transform encodes a record and aligns it against the training feature list.
func (t *Transformer) Transform(rec *models.CustomerRecord) ([]float64, error) {
	cols, err := t.Encode(rec)
	if err != nil {
		return nil, err
	}
	return t.Align(cols), nil
}

// Encode produces the named feature columns for one record: binary-encoded
// yes/no fields, one-hot indicators for the multi-valued service fields, the
// raw numerics, and the two engineered interaction features.
//
// Records normally arrive pre-validated; the numeric guards below exist for
// callers that reach the pipeline directly (batch items are isolated
// per-record, so a bad record fails alone).
func (t *Transformer) Encode(rec *models.CustomerRecord) (map[string]float64, error) {
	if rec == nil {
		return nil, fmt.Errorf("%w: record is nil", ErrBadRecord)
	}
	if rec.Tenure < 0 {
		return nil, fmt.Errorf("%w: tenure is negative", ErrBadRecord)
	}
	if rec.MonthlyCharges < 0 {
		return nil, fmt.Errorf("%w: MonthlyCharges is negative", ErrBadRecord)
	}
	if rec.TotalCharges < 0 {
		return nil, fmt.Errorf("%w: TotalCharges is negative", ErrBadRecord)
	}

	cols := make(map[string]float64, len(t.featureNames))

	binaryValues := map[string]string{
		"gender":           rec.Gender,
		"Partner":          rec.Partner,
		"Dependents":       rec.Dependents,
		"PhoneService":     rec.PhoneService,
		"PaperlessBilling": rec.PaperlessBilling,
	}
	for field, value := range binaryValues {
		encoded, ok := binaryMappings[field][value]
		if !ok {
			return nil, fmt.Errorf("%w: unrecognized %s value %q", ErrBadRecord, field, value)
		}
		cols[field] = encoded
	}

	// One-hot indicators, named {field}_{value}. An unseen category simply
	// produces an indicator column the training list does not contain, which
	// Align drops; the trained indicators for that field all stay at zero.
	oneHotValues := map[string]string{
		"MultipleLines":    rec.MultipleLines,
		"InternetService":  rec.InternetService,
		"OnlineSecurity":   rec.OnlineSecurity,
		"OnlineBackup":     rec.OnlineBackup,
		"DeviceProtection": rec.DeviceProtection,
		"TechSupport":      rec.TechSupport,
		"StreamingTV":      rec.StreamingTV,
		"StreamingMovies":  rec.StreamingMovies,
		"Contract":         rec.Contract,
		"PaymentMethod":    rec.PaymentMethod,
	}
	for field, value := range oneHotValues {
		cols[field+"_"+value] = 1
	}

	cols["SeniorCitizen"] = float64(rec.SeniorCitizen)
	cols["tenure"] = float64(rec.Tenure)
	cols["MonthlyCharges"] = rec.MonthlyCharges
	cols["TotalCharges"] = rec.TotalCharges

	// Engineered features, computed after encoding just as at training time.
	// The +1 denominator keeps zero-tenure customers finite.
	cols["tenure_MonthlyCharges"] = float64(rec.Tenure) * rec.MonthlyCharges
	cols["TotalCharges_per_Month"] = rec.TotalCharges / (float64(rec.Tenure) + 1)

	return cols, nil
}

// Align reconciles encoded columns against the training feature list: any
// expected column missing from the record is filled with 0, any column the
// training list does not contain is dropped, and the output order is exactly
// the training order.
func (t *Transformer) Align(cols map[string]float64) []float64 {
	vec := make([]float64, len(t.featureNames))
	for i, name := range t.featureNames {
		vec[i] = cols[name]
	}
	return vec
}

// FeatureNames returns the training-time feature list backing this transformer.
func (t *Transformer) FeatureNames() []string {
	return t.featureNames
}
