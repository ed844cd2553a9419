package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlops-lab/churn-predictor/pkg/models"
)

var testFeatureNames = []string{
	"gender", "SeniorCitizen", "Partner", "Dependents", "tenure",
	"PhoneService", "PaperlessBilling", "MonthlyCharges", "TotalCharges",
	"InternetService_DSL", "InternetService_Fiber optic", "InternetService_No",
	"Contract_Month-to-month", "Contract_One year", "Contract_Two year",
	"tenure_MonthlyCharges", "TotalCharges_per_Month",
}

func validRecord() *models.CustomerRecord {
	return &models.CustomerRecord{
		Gender:           "Male",
		SeniorCitizen:    0,
		Partner:          "Yes",
		Dependents:       "No",
		Tenure:           12,
		PhoneService:     "Yes",
		MultipleLines:    "No",
		InternetService:  "Fiber optic",
		OnlineSecurity:   "No",
		OnlineBackup:     "Yes",
		DeviceProtection: "No",
		TechSupport:      "No",
		StreamingTV:      "No",
		StreamingMovies:  "No",
		Contract:         "Month-to-month",
		PaperlessBilling: "Yes",
		PaymentMethod:    "Electronic check",
		MonthlyCharges:   70.35,
		TotalCharges:     844.20,
	}
}

func TestTransformer_Transform(t *testing.T) {
	tr := NewTransformer(testFeatureNames)

	vec, err := tr.Transform(validRecord())
	require.NoError(t, err)
	require.Len(t, vec, len(testFeatureNames))

	at := func(name string) float64 {
		for i, n := range testFeatureNames {
			if n == name {
				return vec[i]
			}
		}
		t.Fatalf("feature %s not in test list", name)
		return 0
	}

	assert.Equal(t, 1.0, at("gender"))
	assert.Equal(t, 1.0, at("Partner"))
	assert.Equal(t, 0.0, at("Dependents"))
	assert.Equal(t, 12.0, at("tenure"))
	assert.Equal(t, 1.0, at("InternetService_Fiber optic"))
	assert.Equal(t, 0.0, at("InternetService_DSL"))
	assert.Equal(t, 0.0, at("InternetService_No"))
	assert.Equal(t, 1.0, at("Contract_Month-to-month"))
	assert.InDelta(t, 12*70.35, at("tenure_MonthlyCharges"), 1e-9)
	assert.InDelta(t, 844.20/13, at("TotalCharges_per_Month"), 1e-9)
}

func TestTransformer_OutputAlwaysMatchesFeatureList(t *testing.T) {
	tr := NewTransformer(testFeatureNames)

	variants := []*models.CustomerRecord{validRecord()}

	unseen := validRecord()
	unseen.InternetService = "Satellite"
	unseen.Contract = "Decade"
	variants = append(variants, unseen)

	for _, rec := range variants {
		vec, err := tr.Transform(rec)
		require.NoError(t, err)
		assert.Len(t, vec, len(testFeatureNames))
	}
}

func TestTransformer_UnseenCategoryEncodesToZeros(t *testing.T) {
	tr := NewTransformer(testFeatureNames)

	rec := validRecord()
	rec.InternetService = "Satellite"

	vec, err := tr.Transform(rec)
	require.NoError(t, err)

	for i, name := range testFeatureNames {
		switch name {
		case "InternetService_DSL", "InternetService_Fiber optic", "InternetService_No":
			assert.Equal(t, 0.0, vec[i], "indicator %s should stay zero for unseen value", name)
		}
	}
}

func TestTransformer_ZeroTenure(t *testing.T) {
	tr := NewTransformer(testFeatureNames)

	rec := validRecord()
	rec.Tenure = 0
	rec.TotalCharges = 50.0

	cols, err := tr.Encode(rec)
	require.NoError(t, err)

	// Denominator is tenure+1, so zero tenure must stay finite.
	assert.Equal(t, 50.0, cols["TotalCharges_per_Month"])
	assert.Equal(t, 0.0, cols["tenure_MonthlyCharges"])
}

func TestTransformer_EncodeErrors(t *testing.T) {
	tr := NewTransformer(testFeatureNames)

	tests := []struct {
		name   string
		mutate func(*models.CustomerRecord)
	}{
		{"negative tenure", func(r *models.CustomerRecord) { r.Tenure = -5 }},
		{"negative monthly charges", func(r *models.CustomerRecord) { r.MonthlyCharges = -1 }},
		{"negative total charges", func(r *models.CustomerRecord) { r.TotalCharges = -1 }},
		{"unknown gender", func(r *models.CustomerRecord) { r.Gender = "Other" }},
		{"unknown partner value", func(r *models.CustomerRecord) { r.Partner = "Maybe" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validRecord()
			tt.mutate(rec)

			_, err := tr.Encode(rec)
			assert.ErrorIs(t, err, ErrBadRecord)
		})
	}

	_, err := tr.Encode(nil)
	assert.ErrorIs(t, err, ErrBadRecord)
}

func TestTransformer_AlignFillsMissingAndDropsExtra(t *testing.T) {
	tr := NewTransformer([]string{"a", "b", "c"})

	vec := tr.Align(map[string]float64{"b": 2, "z": 9})
	assert.Equal(t, []float64{0, 2, 0}, vec)
}
