package entity

import "errors"

// ServiceType is the fixed category of repair work requested.
type ServiceType string

const (
	ServiceOilChange ServiceType = "oil-change"
	ServiceBattery   ServiceType = "battery"
	ServiceBrakes    ServiceType = "brakes"
	ServiceEngine    ServiceType = "engine"
	ServiceCooling   ServiceType = "cooling"
	ServiceEmergency ServiceType = "emergency"
	ServiceOther     ServiceType = "other"
)

var ErrUnknownService = errors.New("unknown service type")

// PriceQuote is the advertised price range and the deposit collected to
// secure a slot. Amounts are whole US dollars.
type PriceQuote struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Deposit int `json:"deposit"`
}

// Pricing is the process-wide constant price table. Every booking and quote
// must reference a key present here.
var Pricing = map[ServiceType]PriceQuote{
	ServiceOilChange: {Min: 75, Max: 120, Deposit: 25},
	ServiceBattery:   {Min: 150, Max: 250, Deposit: 50},
	ServiceBrakes:    {Min: 200, Max: 500, Deposit: 75},
	ServiceEngine:    {Min: 100, Max: 150, Deposit: 50},
	ServiceCooling:   {Min: 120, Max: 300, Deposit: 50},
	ServiceEmergency: {Min: 150, Max: 400, Deposit: 100},
	ServiceOther:     {Min: 100, Max: 300, Deposit: 50},
}

// LookupPrice resolves the price quote for a service type. Callers must treat
// ErrUnknownService as a client input error, never a crash.
func LookupPrice(service ServiceType) (PriceQuote, error) {
	pq, ok := Pricing[service]
	if !ok {
		return PriceQuote{}, ErrUnknownService
	}
	return pq, nil
}
