// Package entity contains the core business objects of the project.
package entity

// Shop is a registered merchant that posts offers.
type Shop struct {
	ID             int64    `json:"id"`
	ShopName       string   `json:"shopName"`       // Display name shown next to every offer.
	NID            string   `json:"nid"`            // National ID of the owner.
	TradeLicense   string   `json:"tradeLicense"`   // Trade license number.
	ProductDetails string   `json:"productDetails"` // General description of the products sold.
	Location       string   `json:"location"`       // City or area.
	Address        string   `json:"address"`        // Street address.
	ShopType       string   `json:"shopType"`       // e.g. Retail, Online, Service.
	Offers         []*Offer `json:"offers"`         // Never loaded by shop reads; empty on registration.
}
