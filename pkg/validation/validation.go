package validation

import (
	"errors"
	"fmt"

	"github.com/mlops-lab/churn-predictor/pkg/models"
)

// ErrInvalidInput indicates the input failed validation
var ErrInvalidInput = errors.New("invalid input")

var validContracts = []string{"Month-to-month", "One year", "Two year"}

// ValidateCustomer checks the enumerated and numeric domains of a customer
// record. Structural presence is already enforced by the binding layer; this
// covers the value sets that the feature encoder depends on.
//
// The ten multi-valued service fields (MultipleLines, InternetService, ...)
// are intentionally not checked here: unseen category values must pass
// through and encode to zero indicator columns.
func ValidateCustomer(c *models.CustomerRecord) error {
	if c == nil {
		return fmt.Errorf("%w: customer record is nil", ErrInvalidInput)
	}

	if c.Gender != "Male" && c.Gender != "Female" {
		return fmt.Errorf("%w: gender must be Male or Female", ErrInvalidInput)
	}

	yesNoFields := map[string]string{
		"Partner":          c.Partner,
		"Dependents":       c.Dependents,
		"PhoneService":     c.PhoneService,
		"PaperlessBilling": c.PaperlessBilling,
	}
	for field, value := range yesNoFields {
		if value != "Yes" && value != "No" {
			return fmt.Errorf("%w: %s must be Yes or No", ErrInvalidInput, field)
		}
	}

	if !isValidContract(c.Contract) {
		return fmt.Errorf("%w: Contract must be one of: Month-to-month, One year, Two year", ErrInvalidInput)
	}

	if c.SeniorCitizen != 0 && c.SeniorCitizen != 1 {
		return fmt.Errorf("%w: SeniorCitizen must be 0 or 1", ErrInvalidInput)
	}
	if c.Tenure < 0 || c.Tenure > 100 {
		return fmt.Errorf("%w: tenure must be between 0 and 100", ErrInvalidInput)
	}
	if c.MonthlyCharges <= 0 {
		return fmt.Errorf("%w: MonthlyCharges must be positive", ErrInvalidInput)
	}
	if c.TotalCharges <= 0 {
		return fmt.Errorf("%w: TotalCharges must be positive", ErrInvalidInput)
	}

	return nil
}

// ValidateBatch validates every record in a batch request. The whole batch is
// rejected if any record is out of domain; per-item isolation only applies to
// failures inside the prediction pipeline itself.
func ValidateBatch(customers []models.CustomerRecord) error {
	if len(customers) == 0 {
		return fmt.Errorf("%w: customers list is empty", ErrInvalidInput)
	}
	for i := range customers {
		if err := ValidateCustomer(&customers[i]); err != nil {
			return fmt.Errorf("customer %d: %w", i, err)
		}
	}
	return nil
}

func isValidContract(contract string) bool {
	for _, c := range validContracts {
		if contract == c {
			return true
		}
	}
	return false
}
