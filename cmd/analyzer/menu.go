package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"

	"github.com/chensirou3/marketnewsanaylzer/internal/asset"
	"github.com/chensirou3/marketnewsanaylzer/internal/config"
)

const quitOption = "Quit"

func interactiveMode() {
	fmt.Println("Welcome to the market news analyzer!")

	cfg := config.Load()

	for {
		assetKey, ok := promptAsset()
		if !ok {
			fmt.Println("Goodbye")
			return
		}

		date, ok := promptDate()
		if !ok {
			continue
		}

		assetCfg, err := asset.Lookup(assetKey)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		confirmed := false
		survey.AskOne(&survey.Confirm{
			Message: fmt.Sprintf("Analyze %s news for %s?", assetCfg.DisplayName, date),
			Default: true,
		}, &confirmed)
		if !confirmed {
			continue
		}

		if err := runAnalysis(cfg, assetKey, date, false); err != nil {
			fmt.Printf("Analysis failed: %v\n", err)
		}

		again := false
		survey.AskOne(&survey.Confirm{
			Message: "Analyze another asset?",
			Default: false,
		}, &again)
		if !again {
			fmt.Println("Goodbye")
			return
		}
	}
}

func promptAsset() (string, bool) {
	keys := asset.Keys()
	options := make([]string, 0, len(keys)+1)
	byLabel := make(map[string]string, len(keys))
	for _, key := range keys {
		cfg, err := asset.Lookup(key)
		if err != nil {
			continue
		}
		label := fmt.Sprintf("%s (%s)", cfg.DisplayName, key)
		options = append(options, label)
		byLabel[label] = key
	}
	options = append(options, quitOption)

	var choice string
	err := survey.AskOne(&survey.Select{
		Message: "Which asset do you want to analyze?",
		Options: options,
	}, &choice)
	if err != nil || choice == quitOption {
		return "", false
	}
	return byLabel[choice], true
}

func promptDate() (string, bool) {
	const (
		optToday     = "Today"
		optYesterday = "Yesterday"
		optCustom    = "Custom date"
		optBack      = "Back"
	)

	var choice string
	err := survey.AskOne(&survey.Select{
		Message: "Which date?",
		Options: []string{optToday, optYesterday, optCustom, optBack},
	}, &choice)
	if err != nil {
		return "", false
	}

	switch choice {
	case optToday:
		return time.Now().Format("20060102"), true
	case optYesterday:
		return time.Now().AddDate(0, 0, -1).Format("20060102"), true
	case optCustom:
		var date string
		err := survey.AskOne(&survey.Input{
			Message: "Enter the date (YYYYMMDD):",
			Help:    "For example 20250307",
		}, &date, survey.WithValidator(func(val interface{}) error {
			str := strings.TrimSpace(val.(string))
			if _, err := time.Parse("20060102", str); err != nil {
				return fmt.Errorf("invalid date, use YYYYMMDD")
			}
			return nil
		}))
		if err != nil {
			return "", false
		}
		return strings.TrimSpace(date), true
	default:
		return "", false
	}
}
