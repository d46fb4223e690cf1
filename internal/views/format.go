package views

import (
	"strconv"
	"strings"

	"github.com/zra-sdk/zra-demo/internal/constants"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatAmount renders a currency amount with digit grouping, e.g. "ZMW 12,500.5".
func FormatAmount(v float64) string {
	p := message.NewPrinter(language.English)
	return constants.ZMWCurrency + " " + p.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(2)))
}

// FormatRate renders a percentage exactly as the service reported it.
func FormatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

// FormatScore renders a compliance score out of 100.
func FormatScore(score int) string {
	return strconv.Itoa(score) + "/100"
}

// humanize turns a wire key such as "base_tax" into "Base Tax".
// Casers are stateful, so each call gets its own.
func humanize(key string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}
