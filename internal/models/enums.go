package models

// Every status/role/category axis used across entities lives here so the
// entity files and the services agree on a single value set.

// Business subscription tiers.
const (
	SubscriptionFree    = "Free"
	SubscriptionBasic   = "Basic"
	SubscriptionPremium = "Premium"
)

var Subscriptions = []string{SubscriptionFree, SubscriptionBasic, SubscriptionPremium}

// Operational staff roles.
var UserRoles = []string{
	"Manager",
	"Bartender",
	"Waiter",
	"Head Chef",
	"Sous Chef",
	"Line Cooks",
	"Kitchen Porter",
	"Cleaner",
	"Security",
	"Host",
	"Runner",
	"Supervisor",
	"Client",
}

// Pos (table session) statuses. Closed is terminal: a closed table is never
// reopened, a new Pos is created instead.
const (
	PosStatusOccupied = "Occupied"
	PosStatusReserved = "Reserved"
	PosStatusBill     = "Bill"
	PosStatusClosed   = "Closed"
)

var PosStatuses = []string{PosStatusOccupied, PosStatusReserved, PosStatusBill, PosStatusClosed}

// Order billing statuses. An Open order blocks closing or deleting its Pos.
const (
	BillingStatusOpen       = "Open"
	BillingStatusPayed      = "Payed"
	BillingStatusWasted     = "Wasted"
	BillingStatusCancelled  = "Cancelled"
	BillingStatusInvitation = "Invitation"
)

var BillingStatuses = []string{
	BillingStatusOpen,
	BillingStatusPayed,
	BillingStatusWasted,
	BillingStatusCancelled,
	BillingStatusInvitation,
}

// Order fulfilment statuses.
const (
	OrderStatusSent     = "Sent"
	OrderStatusDone     = "Done"
	OrderStatusDontMake = "Dont Make"
	OrderStatusHold     = "Hold"
)

var OrderStatuses = []string{OrderStatusSent, OrderStatusDone, OrderStatusDontMake, OrderStatusHold}

// Supplier good categories.
var GoodCategories = []string{"Food", "Beverage", "Merchandise", "Service"}

// Measurement axes for supplier goods. The unit must belong to the unit set of
// the declared measurement type.
const (
	MeasurementSolid    = "Solid"
	MeasurementLiquid   = "Liquid"
	MeasurementSize     = "Size"
	MeasurementDistance = "Distance"
	MeasurementWeight   = "Weight"
	MeasurementService  = "Service"
)

var MeasurementUnits = map[string][]string{
	MeasurementSolid: {
		"Unit", "Dozen", "Case", "Slice", "Portion", "Piece", "Packet", "Bag",
		"Box", "Can", "Jar", "Bunch", "Bundle", "Roll", "Bottle", "Container", "Crate",
	},
	MeasurementLiquid: {
		"Milliliter", "Liter", "Bottles", "Gallon", "Fluid Ounce", "Pint", "Quart", "Cup",
	},
	MeasurementSize: {
		"Small", "Medium", "Large", "Extra large", "Double extra large",
		"Triple extra large", "Child sizes",
	},
	MeasurementDistance: {
		"Meter", "Kilometer", "Inch", "Foot", "Yard", "Mile", "Millimeter", "Centimeter",
	},
	MeasurementWeight: {
		"Gram", "Kilogram", "Ounce", "Pound", "Milligram", "Centigram", "Decigram",
	},
	MeasurementService: {
		"Minute", "Hour", "Day", "Week", "Month", "Task",
	},
}

// Menu categories for business goods.
var BusinessGoodCategories = []string{
	"Starter", "Appertizer", "Main", "Salad", "Desert", "Addon",
	"Coffee", "Soft Drink", "Juice", "Beer", "Wine", "Spirit",
	"Coktail", "Mixer", "Upgrade", "Merchandise",
}

// OneOf reports whether v is a member of the given value set.
func OneOf(v string, set []string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// ValidMeasurement reports whether unit belongs to the unit set of typ.
func ValidMeasurement(typ, unit string) bool {
	units, ok := MeasurementUnits[typ]
	if !ok {
		return false
	}
	return OneOf(unit, units)
}
