package asset

import (
	"errors"
	"fmt"
)

// ErrUnknownAsset is returned when an asset key is not in the registry.
var ErrUnknownAsset = errors.New("unknown asset")

// Config describes one tradable asset category. Immutable after process start.
type Config struct {
	Keywords     string
	DataDir      string
	ReportPrefix string
	DisplayName  string
	AssetTypes   []string
}

var keyOrder = []string{"oil", "gold", "stock", "crypto", "forex"}

var registry = map[string]Config{
	"oil": {
		Keywords:     "oil,crude oil,petroleum,WTI,Brent,OPEC,barrel,energy,gasoline,fuel",
		DataDir:      "oil_data",
		ReportPrefix: "oil_analysis",
		DisplayName:  "Crude Oil",
		AssetTypes:   []string{"WTI", "BRENT"},
	},
	"gold": {
		Keywords:     "gold,precious metal,bullion,XAU,ounce,troy,karat,carat,jewelry,mining",
		DataDir:      "gold_data",
		ReportPrefix: "gold_analysis",
		DisplayName:  "Gold",
		AssetTypes:   []string{"GOLD"},
	},
	"stock": {
		Keywords:     "stock market,equity,shares,nasdaq,nyse,dow jones,s&p 500,index,etf,dividend",
		DataDir:      "stock_data",
		ReportPrefix: "stock_analysis",
		DisplayName:  "Equities",
		AssetTypes:   []string{"STOCK"},
	},
	"crypto": {
		Keywords:     "bitcoin,ethereum,cryptocurrency,blockchain,crypto,altcoin,token,defi,nft,mining",
		DataDir:      "crypto_data",
		ReportPrefix: "crypto_analysis",
		DisplayName:  "Cryptocurrency",
		AssetTypes:   []string{"BTC", "ETH"},
	},
	"forex": {
		Keywords:     "forex,currency,exchange rate,USD,EUR,JPY,GBP,CHF,central bank,monetary policy",
		DataDir:      "forex_data",
		ReportPrefix: "forex_analysis",
		DisplayName:  "Forex",
		AssetTypes:   []string{"USD/EUR", "USD/JPY", "USD/GBP"},
	},
}

// Lookup resolves an asset key to its configuration.
func Lookup(key string) (Config, error) {
	cfg, ok := registry[key]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownAsset, key)
	}
	return cfg, nil
}

// Keys returns all asset keys in menu order.
func Keys() []string {
	out := make([]string, len(keyOrder))
	copy(out, keyOrder)
	return out
}
