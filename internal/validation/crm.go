package validation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/contaflow/contaflow/internal/model"
)

// CampaignInput is the campaign form payload.
type CampaignInput struct {
	Name      string `validate:"required,max=255"`
	Type      string `validate:"required"`
	Status    string
	StartDate string `validate:"required"`
	EndDate   string
	Budget    string
}

// ValidateCampaign checks a campaign payload, including the date-order
// rule (endDate must not precede startDate).
func ValidateCampaign(in CampaignInput) Errors {
	errs := Errors{}

	in.Name = strings.TrimSpace(in.Name)

	if err := validate.Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				switch fe.StructField() {
				case "Name":
					if fe.Tag() == "max" {
						errs.Add("name", "name cannot exceed 255 characters")
					} else {
						errs.Add("name", "name is required")
					}
				case "Type":
					errs.Add("type", "campaign type is required")
				case "StartDate":
					errs.Add("startDate", "start date is required")
				}
			}
		}
	}

	if in.Type != "" && !model.CampaignType(in.Type).Valid() {
		errs.Add("type", fmt.Sprintf("invalid campaign type '%s'", in.Type))
	}
	if in.Status != "" && !model.CampaignStatus(in.Status).Valid() {
		errs.Add("status", fmt.Sprintf("invalid status '%s'", in.Status))
	}

	start, startErr := parseDate(in.StartDate)
	if in.StartDate != "" && startErr != nil {
		errs.Add("startDate", "start date must be in YYYY-MM-DD format")
	}
	if in.EndDate != "" {
		end, endErr := parseDate(in.EndDate)
		if endErr != nil {
			errs.Add("endDate", "end date must be in YYYY-MM-DD format")
		} else if startErr == nil && end.Before(start) {
			errs.Add("endDate", "end date cannot be before start date")
		}
	}

	return errs
}

// LeadInput is the lead form payload.
type LeadInput struct {
	Name           string `validate:"required,max=255"`
	Email          string `validate:"omitempty,email"`
	Status         string
	Rating         string
	EstimatedValue string
}

// ValidateLead checks a lead payload.
func ValidateLead(in LeadInput) Errors {
	errs := Errors{}

	in.Name = strings.TrimSpace(in.Name)

	if err := validate.Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				switch fe.StructField() {
				case "Name":
					if fe.Tag() == "max" {
						errs.Add("name", "name cannot exceed 255 characters")
					} else {
						errs.Add("name", "name is required")
					}
				case "Email":
					errs.Add("email", "email is not a valid address")
				}
			}
		}
	}

	if in.Status != "" && !model.LeadStatus(in.Status).Valid() {
		errs.Add("status", fmt.Sprintf("invalid lead status '%s'", in.Status))
	}
	if in.Rating != "" && !model.LeadRating(in.Rating).Valid() {
		errs.Add("rating", fmt.Sprintf("invalid rating '%s' (must be hot, warm or cold)", in.Rating))
	}

	return errs
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(model.DateFormat, strings.TrimSpace(s))
}
