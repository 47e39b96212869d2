package coupon

// Kind tells how a coupon's value turns into a discount.
type Kind string

const (
	KindPercent      Kind = "PERCENT"
	KindFixedAmount  Kind = "FIXED_AMOUNT"
	KindFreeShipping Kind = "FREE_SHIPPING"
)

// Coupon is one entry of the static catalog. Amounts are in rupiah.
type Coupon struct {
	Code        string
	Kind        Kind
	Value       int
	MinSubtotal int
	Label       string
}

// Result is a successful (or declined-with-zero) coupon application.
type Result struct {
	Coupon   Coupon
	Discount int
}

// catalog is read-only at runtime; codes are canonical uppercase alphanumeric.
var catalog = map[string]Coupon{
	"FF10": {
		Code:        "FF10",
		Kind:        KindPercent,
		Value:       10,
		MinSubtotal: 50000,
		Label:       "Flash Friday 10%",
	},
	"HEMAT25": {
		Code:        "HEMAT25",
		Kind:        KindPercent,
		Value:       25,
		MinSubtotal: 200000,
		Label:       "Hemat 25%",
	},
	"SAVE50K": {
		Code:        "SAVE50K",
		Kind:        KindFixedAmount,
		Value:       50000,
		MinSubtotal: 300000,
		Label:       "Potongan Rp50.000",
	},
	"FREESHIP": {
		Code:        "FREESHIP",
		Kind:        KindFreeShipping,
		Value:       0,
		MinSubtotal: 100000,
		Label:       "Gratis ongkir",
	},
}
