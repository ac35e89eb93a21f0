package util

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

func Pprint(i interface{}) {
	bytes, err := json.MarshalIndent(i, "", "    ")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(bytes))
}

// RoundDollars rounds to whole dollars so large float figures don't
// leak representation noise into responses and exports.
func RoundDollars(v float64) float64 {
	return decimal.NewFromFloat(v).Round(0).InexactFloat64()
}

// RoundTo rounds to the given number of decimal places.
func RoundTo(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

func FloatPointer(v float64) *float64 {
	return &v
}
