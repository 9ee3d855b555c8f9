package parser

import (
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

// draftSchema constrains the model output for a single transaction draft.
// Keys match the JSON tags of smartledger.Draft.
var draftSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"amount": {
			Type:        genai.TypeInteger,
			Description: "amount in minor currency units (cents), always positive",
		},
		"kind": {
			Type: genai.TypeString,
			Enum: []string{"EXPENSE", "INCOME", "TRANSFER"},
		},
		"category": {
			Type:        genai.TypeString,
			Description: "one of Food, Transport, Shopping, Housing, Salary, Investment, Other; a short free label if none fits",
		},
		"note": {
			Type:        genai.TypeString,
			Description: "short human description, e.g. the merchant",
		},
		"tags": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString, Enum: []string{"reimbursable", "refund"}},
		},
		"date": {
			Type:        genai.TypeString,
			Description: "transaction date as YYYY-MM-DD, omit if unknown",
		},
		"confidence": {
			Type:        genai.TypeNumber,
			Description: "extraction confidence between 0 and 1",
		},
	},
	Required: []string{"amount", "kind", "category"},
}

// draftListSchema constrains the model output for image extraction.
var draftListSchema = &genai.Schema{
	Type:  genai.TypeArray,
	Items: draftSchema,
}

func textPrompt(input string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Today is %s.\n", time.Now().Format("2006-01-02"))
	b.WriteString(`You are the entry assistant of a personal expense ledger.
Extract the single transaction described by the user's sentence.
Amounts are in minor currency units: "coffee 12.5" means amount 1250.
Relative dates ("yesterday") resolve against today's date.
Mark a transaction "reimbursable" when the user says the money will be
claimed back, "refund" when money already came back.
If the sentence describes no transaction at all, return null.

User sentence:
`)
	b.WriteString(input)
	return b.String()
}

func imagePrompt() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Today is %s.\n", time.Now().Format("2006-01-02"))
	b.WriteString(`You are the entry assistant of a personal expense ledger.
The attached image is a receipt, a bill or a payment screenshot.
Extract every distinct transaction visible in it as an array.
Amounts are in minor currency units: ¥12.50 means amount 1250.
Use the printed date when one is visible, otherwise omit the date.
Return an empty array if no transaction is recognizable.`)
	return b.String()
}
