package mandap

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"mandapdash/api"
	"mandapdash/models"
)

const imagesField = "venueImages"

// Create lists a new venue. Field names follow the backend contract, which
// differs from the input names for description, pincode and payment options.
func (s *DefaultMandapService) Create(ctx context.Context, input models.MandapInput, venueImages []api.File) (*models.Mandap, error) {
	form, err := createForm(input)
	if err != nil {
		return nil, err
	}
	form.AddFiles(imagesField, venueImages...)

	data, err := s.client.Do(ctx, http.MethodPost, "/mandap", form)
	if err != nil {
		return nil, err
	}
	var out models.Mandap
	if err := api.DecodeRecord(data, "mandap", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func createForm(in models.MandapInput) (*api.Form, error) {
	form := api.NewForm()
	fields := []struct {
		key   string
		value any
	}{
		{"mandapName", in.MandapName},
		{"mandapDesc", in.Description},
		{"city", in.City},
		{"state", in.State},
		{"pinCode", in.Pincode},
		{"availableDates", nonNil(in.AvailableDates)},
		{"venueType", nonNil(in.VenueType)},
		{"penaltyChargesPerHour", in.PenaltyChargesPerHour},
		{"cancellationPolicy", in.CancellationPolicy},
		{"guestCapacity", in.GuestCapacity},
		{"venuePricing", in.VenuePricing},
		{"securityDeposit", in.SecurityDeposit},
		{"securityDepositType", in.SecurityDepositType},
		{"amenities", nonNil(in.Amenities)},
		{"outdoorFacilities", nonNil(in.OutdoorFacilities)},
		{"paymentOptions", nonNil(in.PaymentMethods)},
		{"isExternalCateringAllowed", in.IsExternalCateringAllowed},
	}
	for _, f := range fields {
		if err := form.Set(f.key, f.value); err != nil {
			return nil, err
		}
	}
	if in.FullAddress != "" {
		if err := form.Set("fullAddress", in.FullAddress); err != nil {
			return nil, err
		}
	}
	if err := form.Set("advancePayment", in.AdvancePayment); err != nil {
		return nil, err
	}
	return form, nil
}

// nonNil keeps absent lists encoded as [] rather than null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// List returns the provider's venues.
func (s *DefaultMandapService) List(ctx context.Context) ([]models.Mandap, error) {
	data, err := s.client.Do(ctx, http.MethodGet, "/get-mandap", nil)
	if err != nil {
		return nil, err
	}
	var out []models.Mandap
	if err := api.DecodeKey(data, "mandaps", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *DefaultMandapService) GetByID(ctx context.Context, id string) (*models.Mandap, error) {
	pid, err := api.PathID(id)
	if err != nil {
		return nil, err
	}
	data, err := s.client.Do(ctx, http.MethodGet, "/mandap/get-mandap/"+pid, nil)
	if err != nil {
		return nil, err
	}
	var out models.Mandap
	if err := api.DecodeRecord(data, "mandap", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update applies a partial field set. Structured values are JSON encoded.
func (s *DefaultMandapService) Update(ctx context.Context, id string, fields map[string]any, venueImages []api.File) (*models.Mandap, error) {
	pid, err := api.PathID(id)
	if err != nil {
		return nil, err
	}
	form := api.NewForm()
	if err := form.SetAll(fields); err != nil {
		return nil, fmt.Errorf("mandap update: %w", err)
	}
	form.AddFiles(imagesField, venueImages...)

	data, err := s.client.Do(ctx, http.MethodPut, "/update-mandap/"+pid, form)
	if err != nil {
		return nil, err
	}
	var out models.Mandap
	if err := api.DecodeRecord(data, "mandap", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a venue and returns the backend's confirmation payload.
// A missing id is reported by the backend and not suppressed here.
func (s *DefaultMandapService) Delete(ctx context.Context, id string) (json.RawMessage, error) {
	pid, err := api.PathID(id)
	if err != nil {
		return nil, err
	}
	return s.client.Do(ctx, http.MethodDelete, "/delete-mandap/"+pid, nil)
}
