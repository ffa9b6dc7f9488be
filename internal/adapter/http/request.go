package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"offerchain/internal/core/domain"
)

type recordActionRequest struct {
	LeadID        string         `json:"leadId" validate:"required"`
	ActionType    string         `json:"actionType" validate:"required"`
	SessionID     *string        `json:"sessionId"`
	OfferID       *string        `json:"offerId" validate:"omitempty,uuid"`
	OfferPosition *int           `json:"offerPosition" validate:"omitempty,gt=0"`
	Metadata      map[string]any `json:"metadata"`
}

type createOfferRequest struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description" validate:"required"`
	SavingsText  string `json:"savingsText" validate:"required"`
	AffiliateURL string `json:"affiliateUrl" validate:"required,url"`
	Position     int    `json:"position" validate:"omitempty,gt=0"`
}

type updateOfferRequest struct {
	Title        *string `json:"title" validate:"omitempty,min=1"`
	Description  *string `json:"description" validate:"omitempty,min=1"`
	SavingsText  *string `json:"savingsText" validate:"omitempty,min=1"`
	AffiliateURL *string `json:"affiliateUrl" validate:"omitempty,url"`
	Position     *int    `json:"position" validate:"omitempty,gt=0"`
	IsActive     *bool   `json:"isActive"`
}

type reorderOffersRequest struct {
	OfferIDs []string `json:"offerIds" validate:"required,min=1,dive,required"`
}

// newValidator builds the request validator with json tag names, so
// failure messages name fields the way callers spell them.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decode unmarshals the body into v and runs struct validation. Failures
// come back as domain validation errors so the envelope mapping stays
// uniform.
func (h *Handler) decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Validationf("request body is required")
		}
		return domain.Validationf("invalid JSON in request body")
	}
	if err := h.validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return domain.Validationf("%s", validationMessage(verrs[0]))
		}
		return domain.Validationf("invalid request")
	}
	return nil
}

func validationMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must not be empty", field)
	}
	return fmt.Sprintf("%s is invalid", field)
}
