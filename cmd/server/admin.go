package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/amirhostwordpress/OnlineQuotationLUX-sub000/internal/catalog"
	"github.com/amirhostwordpress/OnlineQuotationLUX-sub000/internal/quote"
)

func (s *server) handleAdminMaterialsList(w http.ResponseWriter, r *http.Request) {
	entries, err := s.catalog.List(r.Context())
	if err != nil {
		http.Error(w, "failed to load materials", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

func (s *server) handleAdminMaterialsCreate(w http.ResponseWriter, r *http.Request) {
	var entry catalog.Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		writeError(w, http.StatusBadRequest, "invalid material payload")
		return
	}

	if err := validateMaterial(entry); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := s.catalog.Create(r.Context(), entry)
	if err != nil {
		http.Error(w, "failed to create material", http.StatusInternalServerError)
		return
	}

	entry.ID = id
	entry.Active = true
	writeJSON(w, http.StatusCreated, entry)
}

func (s *server) handleAdminMaterialsUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid material id")
		return
	}

	var entry catalog.Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		writeError(w, http.StatusBadRequest, "invalid material payload")
		return
	}
	entry.ID = id

	if err := validateMaterial(entry); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	switch err := s.catalog.Update(r.Context(), entry); {
	case errors.Is(err, catalog.ErrNotFound):
		http.NotFound(w, r)
		return
	case err != nil:
		http.Error(w, "failed to update material", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

func validateMaterial(e catalog.Entry) error {
	if e.ColorName == "" {
		return fmt.Errorf("colorName is required")
	}
	if e.PricePerSqm <= 0 {
		return fmt.Errorf("pricePerSqm must be greater than 0")
	}
	return nil
}

type rateConfigPayload struct {
	CuttingPerSqm         float64 `json:"cuttingPerSqm"`
	TopPolishingPerSqm    float64 `json:"topPolishingPerSqm"`
	PolishingPerSqm       float64 `json:"polishingPerSqm"`
	ButtJointPolishPerSqm float64 `json:"buttJointPolishPerSqm"`

	CustomEdgeFlat   float64 `json:"customEdgeFlat"`
	HobCutOutFlat    float64 `json:"hobCutOutFlat"`
	DrainGroovesFlat float64 `json:"drainGroovesFlat"`
	SmallHolePerUnit float64 `json:"smallHolePerUnit"`

	SinkClientUnderMounted float64 `json:"sinkClientUnderMounted"`
	SinkClientTopMounted   float64 `json:"sinkClientTopMounted"`
	SinkLuxone             float64 `json:"sinkLuxone"`

	DeliveryDubai      float64 `json:"deliveryDubai"`
	DeliveryOtherUAE   float64 `json:"deliveryOtherUae"`
	InstallationPerSqm float64 `json:"installationPerSqm"`

	MarginRate float64 `json:"marginRate"`
	VATRate    float64 `json:"vatRate"`

	SlabAreaSqm       float64 `json:"slabAreaSqm"`
	IslandAreaSqm     float64 `json:"islandAreaSqm"`
	BacksplashAreaSqm float64 `json:"backsplashAreaSqm"`

	Currency string `json:"currency"`
}

func payloadFromRates(r quote.Rates) rateConfigPayload {
	return rateConfigPayload{
		CuttingPerSqm:          r.CuttingPerSqm,
		TopPolishingPerSqm:     r.TopPolishingPerSqm,
		PolishingPerSqm:        r.PolishingPerSqm,
		ButtJointPolishPerSqm:  r.ButtJointPolishPerSqm,
		CustomEdgeFlat:         r.CustomEdgeFlat,
		HobCutOutFlat:          r.HobCutOutFlat,
		DrainGroovesFlat:       r.DrainGroovesFlat,
		SmallHolePerUnit:       r.SmallHolePerUnit,
		SinkClientUnderMounted: r.SinkClientUnderMounted,
		SinkClientTopMounted:   r.SinkClientTopMounted,
		SinkLuxone:             r.SinkLuxone,
		DeliveryDubai:          r.DeliveryDubai,
		DeliveryOtherUAE:       r.DeliveryOtherUAE,
		InstallationPerSqm:     r.InstallationPerSqm,
		MarginRate:             r.MarginRate,
		VATRate:                r.VATRate,
		SlabAreaSqm:            r.SlabAreaSqm,
		IslandAreaSqm:          r.IslandAreaSqm,
		BacksplashAreaSqm:      r.BacksplashAreaSqm,
		Currency:               "AED",
	}
}

func (p rateConfigPayload) toRates() quote.Rates {
	return quote.Rates{
		CuttingPerSqm:          p.CuttingPerSqm,
		TopPolishingPerSqm:     p.TopPolishingPerSqm,
		PolishingPerSqm:        p.PolishingPerSqm,
		ButtJointPolishPerSqm:  p.ButtJointPolishPerSqm,
		CustomEdgeFlat:         p.CustomEdgeFlat,
		HobCutOutFlat:          p.HobCutOutFlat,
		DrainGroovesFlat:       p.DrainGroovesFlat,
		SmallHolePerUnit:       p.SmallHolePerUnit,
		SinkClientUnderMounted: p.SinkClientUnderMounted,
		SinkClientTopMounted:   p.SinkClientTopMounted,
		SinkLuxone:             p.SinkLuxone,
		DeliveryDubai:          p.DeliveryDubai,
		DeliveryOtherUAE:       p.DeliveryOtherUAE,
		InstallationPerSqm:     p.InstallationPerSqm,
		MarginRate:             p.MarginRate,
		VATRate:                p.VATRate,
		SlabAreaSqm:            p.SlabAreaSqm,
		IslandAreaSqm:          p.IslandAreaSqm,
		BacksplashAreaSqm:      p.BacksplashAreaSqm,
	}
}

func validateRateConfig(p rateConfigPayload) error {
	perSqm := map[string]float64{
		"cuttingPerSqm":          p.CuttingPerSqm,
		"topPolishingPerSqm":     p.TopPolishingPerSqm,
		"polishingPerSqm":        p.PolishingPerSqm,
		"buttJointPolishPerSqm":  p.ButtJointPolishPerSqm,
		"customEdgeFlat":         p.CustomEdgeFlat,
		"hobCutOutFlat":          p.HobCutOutFlat,
		"drainGroovesFlat":       p.DrainGroovesFlat,
		"smallHolePerUnit":       p.SmallHolePerUnit,
		"sinkClientUnderMounted": p.SinkClientUnderMounted,
		"sinkClientTopMounted":   p.SinkClientTopMounted,
		"sinkLuxone":             p.SinkLuxone,
		"deliveryDubai":          p.DeliveryDubai,
		"deliveryOtherUae":       p.DeliveryOtherUAE,
		"installationPerSqm":     p.InstallationPerSqm,
	}
	for field, value := range perSqm {
		if value < 0 {
			return fmt.Errorf("%s must be greater than or equal to 0", field)
		}
	}

	if p.MarginRate < 0 || p.MarginRate > 1 {
		return fmt.Errorf("marginRate must be between 0 and 1")
	}
	if p.VATRate < 0 || p.VATRate > 1 {
		return fmt.Errorf("vatRate must be between 0 and 1")
	}
	if p.SlabAreaSqm <= 0 {
		return fmt.Errorf("slabAreaSqm must be greater than 0")
	}
	if p.IslandAreaSqm < 0 || p.BacksplashAreaSqm < 0 {
		return fmt.Errorf("fixed product areas must be greater than or equal to 0")
	}
	return nil
}

func (s *server) handleAdminRatesGet(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, payloadFromRates(s.currentRates()))
}

func (s *server) handleAdminRatesUpdate(w http.ResponseWriter, r *http.Request) {
	var payload rateConfigPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid rate config payload")
		return
	}

	if err := validateRateConfig(payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rates := payload.toRates()
	if err := s.updateRateConfig(rates); err != nil {
		http.Error(w, "failed to save rate config", http.StatusInternalServerError)
		return
	}
	s.setRates(rates)

	writeJSON(w, http.StatusOK, payloadFromRates(rates))
}
