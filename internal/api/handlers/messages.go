package handlers

import (
	domain "github.com/akbarovs/uybaho/pkg/types"
)

// fieldLabels maps listing JSON field names to their Uzbek display names.
var fieldLabels = map[string]string{
	"transaction_type": "bitim turi",
	"price":            "narx",
	"area":             "maydon",
	"city":             "shahar",
	"rooms":            "xonalar soni",
	"floor":            "qavat",
	"total_floors":     "qavatlar soni",
	"property_type":    "uy-joy turi",
	"condition":        "holati",
	"year_built":       "qurilgan yil",
	"description":      "tavsif",
}

// reasonMessages maps validation reasons to Uzbek sentence tails.
var reasonMessages = map[string]string{
	domain.ReasonRequired:    "to'ldirilishi shart",
	domain.ReasonNotPositive: "musbat son bo'lishi kerak",
	domain.ReasonOutOfRange:  "ruxsat etilgan oraliqdan tashqarida",
	domain.ReasonUnknown:     "noma'lum qiymatga ega",
}

const genericValidationMessage = "Kiritilgan ma'lumotlar noto'g'ri, qayta tekshirib ko'ring"

// validationMessage builds the localized error message for a rejected
// listing field.
func validationMessage(ve *domain.ValidationError) string {
	label, ok := fieldLabels[ve.Field]
	if !ok {
		return genericValidationMessage
	}

	tail, ok := reasonMessages[ve.Reason]
	if !ok {
		return genericValidationMessage
	}

	return "Xatolik: " + label + " " + tail
}
