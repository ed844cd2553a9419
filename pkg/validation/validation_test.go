package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mlops-lab/churn-predictor/pkg/models"
)

func validCustomer() models.CustomerRecord {
	return models.CustomerRecord{
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

func TestValidateCustomer(t *testing.T) {
	c := validCustomer()
	assert.NoError(t, ValidateCustomer(&c))
}

func TestValidateCustomer_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.CustomerRecord)
	}{
		{"bad gender", func(c *models.CustomerRecord) { c.Gender = "Unknown" }},
		{"bad partner", func(c *models.CustomerRecord) { c.Partner = "Sometimes" }},
		{"bad dependents", func(c *models.CustomerRecord) { c.Dependents = "2" }},
		{"bad phone service", func(c *models.CustomerRecord) { c.PhoneService = "Landline" }},
		{"bad paperless billing", func(c *models.CustomerRecord) { c.PaperlessBilling = "yes" }},
		{"bad contract", func(c *models.CustomerRecord) { c.Contract = "Three year" }},
		{"bad senior citizen", func(c *models.CustomerRecord) { c.SeniorCitizen = 2 }},
		{"negative tenure", func(c *models.CustomerRecord) { c.Tenure = -1 }},
		{"tenure too large", func(c *models.CustomerRecord) { c.Tenure = 101 }},
		{"zero monthly charges", func(c *models.CustomerRecord) { c.MonthlyCharges = 0 }},
		{"zero total charges", func(c *models.CustomerRecord) { c.TotalCharges = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCustomer()
			tt.mutate(&c)
			assert.ErrorIs(t, ValidateCustomer(&c), ErrInvalidInput)
		})
	}

	assert.ErrorIs(t, ValidateCustomer(nil), ErrInvalidInput)
}

func TestValidateCustomer_UnseenServiceValuesAllowed(t *testing.T) {
	// The multi-valued service fields are not enum-checked; unseen values
	// must pass validation and encode to zero indicators downstream.
	c := validCustomer()
	c.InternetService = "Satellite"
	c.MultipleLines = "Several"
	assert.NoError(t, ValidateCustomer(&c))
}

func TestValidateBatch(t *testing.T) {
	assert.ErrorIs(t, ValidateBatch(nil), ErrInvalidInput)

	good := validCustomer()
	bad := validCustomer()
	bad.Gender = "Unknown"

	assert.NoError(t, ValidateBatch([]models.CustomerRecord{good, good}))

	err := ValidateBatch([]models.CustomerRecord{good, bad})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "customer 1")
}
