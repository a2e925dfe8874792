package models

import "gorm.io/gorm"

type Supplier struct {
	gorm.Model
	SupplierCode string `json:"supplier_code" gorm:"unique"`
	SupplierName string `json:"supplier_name" gorm:"unique"`
	SuppAddr1    string `json:"supp_addr1"`
	SuppCity     string `json:"supp_city"`
	SuppCountry  string `json:"supp_country"`
	SuppPhone    string `json:"supp_phone"`
	SuppEmail    string `json:"supp_email"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int
}

type Client struct {
	gorm.Model
	ClientCode    string `json:"client_code" gorm:"unique"`
	ClientName    string `json:"client_name" gorm:"unique"`
	ClientAddress string `json:"client_address"`
	ClientCity    string `json:"client_city"`
	ClientCountry string `json:"client_country"`
	ClientPhone   string `json:"client_phone"`
	ClientEmail   string `json:"client_email"`
	CreatedBy     int
	UpdatedBy     int
	DeletedBy     int
}

// Transitaire is the freight forwarder holding cargo before loading. Orders
// can only be assigned to containers or groupages managed by the same
// transitaire.
type Transitaire struct {
	gorm.Model
	TransitaireCode string `json:"transitaire_code" gorm:"unique"`
	TransitaireName string `json:"transitaire_name" gorm:"unique"`
	Address         string `json:"address"`
	City            string `json:"city"`
	Country         string `json:"country"`
	PortOfLoading   string `json:"port_of_loading"`
	ContactName     string `json:"contact_name"`
	ContactPhone    string `json:"contact_phone"`
	ContactEmail    string `json:"contact_email"`
	CreatedBy       int
	UpdatedBy       int
	DeletedBy       int
}
