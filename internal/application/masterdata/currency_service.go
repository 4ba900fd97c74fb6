package masterdata

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/procure/backend/internal/domain/masterdata"
	"github.com/procure/backend/internal/domain/shared"
)

// CurrencyService handles currency operations, including the exchange rates
// registered between currencies
type CurrencyService struct {
	currencyRepo masterdata.CurrencyRepository
	rateRepo     masterdata.ExchangeRateRepository
}

// NewCurrencyService creates a new CurrencyService
func NewCurrencyService(currencyRepo masterdata.CurrencyRepository, rateRepo masterdata.ExchangeRateRepository) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo, rateRepo: rateRepo}
}

// Create creates a new currency
func (s *CurrencyService) Create(ctx context.Context, tenantID uuid.UUID, req CreateCurrencyRequest) (*CurrencyResponse, error) {
	existing, err := s.currencyRepo.FindByCode(ctx, tenantID, req.Code)
	if err != nil && err != shared.ErrNotFound {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Currency with this code already exists")
	}

	currency, err := masterdata.NewCurrency(tenantID, req.Code, req.Name, req.DecimalPlaces)
	if err != nil {
		return nil, err
	}
	currency.Symbol = req.Symbol

	if err := s.currencyRepo.Save(ctx, currency); err != nil {
		return nil, err
	}

	response := ToCurrencyResponse(currency)
	return &response, nil
}

// GetByID retrieves a currency scoped to the caller's tenant
func (s *CurrencyService) GetByID(ctx context.Context, tenantID, currencyID uuid.UUID) (*CurrencyResponse, error) {
	currency, err := s.currencyRepo.FindByIDForTenant(ctx, tenantID, currencyID)
	if err != nil {
		return nil, err
	}
	response := ToCurrencyResponse(currency)
	return &response, nil
}

// List returns the currencies of a tenant
func (s *CurrencyService) List(ctx context.Context, tenantID uuid.UUID, req ListFilter) (*shared.Paginated[CurrencyResponse], error) {
	filter := buildFilter(req)
	currencies, total, err := s.currencyRepo.FindAllForTenant(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		responses[i] = ToCurrencyResponse(&currencies[i])
	}
	result := shared.NewPaginated(responses, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Delete removes a currency
func (s *CurrencyService) Delete(ctx context.Context, tenantID, currencyID uuid.UUID) error {
	return s.currencyRepo.Delete(ctx, tenantID, currencyID)
}

// CreateExchangeRate registers an exchange rate between two currencies. Both
// currencies must exist for the tenant. Existing rates are never modified, a
// newer effective date supersedes them.
func (s *CurrencyService) CreateExchangeRate(ctx context.Context, tenantID uuid.UUID, req CreateExchangeRateRequest) (*ExchangeRateResponse, error) {
	if _, err := s.currencyRepo.FindByIDForTenant(ctx, tenantID, req.BaseCurrencyID); err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("NOT_FOUND", "Base currency not found")
		}
		return nil, err
	}
	if _, err := s.currencyRepo.FindByIDForTenant(ctx, tenantID, req.TargetCurrencyID); err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("NOT_FOUND", "Target currency not found")
		}
		return nil, err
	}

	var effectiveDate time.Time
	if req.EffectiveDate != nil {
		effectiveDate = *req.EffectiveDate
	}

	rate, err := masterdata.NewExchangeRate(tenantID, req.BaseCurrencyID, req.TargetCurrencyID, req.Rate, effectiveDate)
	if err != nil {
		return nil, err
	}

	if err := s.rateRepo.Save(ctx, rate); err != nil {
		return nil, err
	}

	response := ToExchangeRateResponse(rate)
	return &response, nil
}

// GetLatestExchangeRate retrieves the most recently effective rate for a
// (base, target) currency pair
func (s *CurrencyService) GetLatestExchangeRate(ctx context.Context, tenantID, baseCurrencyID, targetCurrencyID uuid.UUID) (*ExchangeRateResponse, error) {
	rate, err := s.rateRepo.FindLatest(ctx, tenantID, baseCurrencyID, targetCurrencyID)
	if err != nil {
		return nil, err
	}
	response := ToExchangeRateResponse(rate)
	return &response, nil
}

// ListExchangeRatesForCurrency returns the rates a currency participates in,
// newest effective date first
func (s *CurrencyService) ListExchangeRatesForCurrency(ctx context.Context, tenantID, currencyID uuid.UUID) ([]ExchangeRateResponse, error) {
	if _, err := s.currencyRepo.FindByIDForTenant(ctx, tenantID, currencyID); err != nil {
		return nil, err
	}

	rates, err := s.rateRepo.FindAllForCurrency(ctx, tenantID, currencyID)
	if err != nil {
		return nil, err
	}

	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses, nil
}
