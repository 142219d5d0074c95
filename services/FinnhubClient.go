package services

import (
	"context"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"

	"wealthtracker.com/dto"
	"wealthtracker.com/shared"
)

// MarketDataAPI is the external provider surface the service depends on.
// Implementations raise transport failures as errors; degradation policy
// lives in MarketDataService, not here.
type MarketDataAPI interface {
	Quote(symbol string) (dto.StockQuote, error)
	CompanyProfile(symbol string) (dto.StockProfile, error)
	ForexRates(base string) (map[string]float64, error)
}

type FinnhubClient struct {
	api *finnhub.DefaultApiService
}

func NewFinnhubClient(apiKey string) *FinnhubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	cfg.HTTPClient = shared.HttpClient()
	return &FinnhubClient{api: finnhub.NewAPIClient(cfg).DefaultApi}
}

func (f *FinnhubClient) Quote(symbol string) (dto.StockQuote, error) {
	quote, _, err := f.api.Quote(context.Background()).Symbol(symbol).Execute()
	if err != nil {
		return dto.StockQuote{}, err
	}
	return dto.StockQuote{
		C:  float64(quote.GetC()),
		H:  float64(quote.GetH()),
		L:  float64(quote.GetL()),
		O:  float64(quote.GetO()),
		Pc: float64(quote.GetPc()),
	}, nil
}

func (f *FinnhubClient) CompanyProfile(symbol string) (dto.StockProfile, error) {
	profile, _, err := f.api.CompanyProfile2(context.Background()).Symbol(symbol).Execute()
	if err != nil {
		return dto.StockProfile{}, err
	}
	return dto.StockProfile{
		Country:  profile.GetCountry(),
		Currency: profile.GetCurrency(),
		Exchange: profile.GetExchange(),
		Name:     profile.GetName(),
		Ticker:   profile.GetTicker(),
		Logo:     profile.GetLogo(),
		WebURL:   profile.GetWeburl(),
	}, nil
}

func (f *FinnhubClient) ForexRates(base string) (map[string]float64, error) {
	result, _, err := f.api.ForexRates(context.Background()).Base(base).Execute()
	if err != nil {
		return nil, err
	}
	rates := make(map[string]float64)
	for currency, value := range result.GetQuote() {
		if rate, ok := value.(float64); ok {
			rates[currency] = rate
		}
	}
	return rates, nil
}
