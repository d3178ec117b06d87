package generator

type supplierSeed struct {
	name     string
	location string
	leadTime int
}

type productSeed struct {
	name     string
	category string
}

type warehouseSeed struct {
	name     string
	location string
}

var supplierCatalog = []supplierSeed{
	{"Global Tech Parts", "San Jose, CA", 5},
	{"Precision Manufacturing", "Detroit, MI", 10},
	{"Asia Logistics Hub", "Singapore", 15},
	{"Euro Component Co", "Berlin, Germany", 12},
	{"Coastal Supplies", "Seattle, WA", 7},
	{"Northern Iron & Steel", "Chicago, IL", 20},
	{"South Sea Electronics", "Shenzhen, China", 25},
	{"Latin America Freight", "Mexico City", 18},
	{"Mountain Raw Materials", "Denver, CO", 14},
	{"Island Precision", "Tokyo, Japan", 22},
}

var productCatalog = []productSeed{
	{"Microprocessor X1", "Electronics"},
	{"Industrial Grade Steel", "Raw Materials"},
	{"LCD Display Panel", "Electronics"},
	{"Aluminum Casing", "Components"},
	{"Lithium Battery Pack", "Components"},
	{"Hydraulic Valve", "Industrial"},
	{"Copper Wiring 500m", "Raw Materials"},
	{"Control Circuit Board", "Electronics"},
	{"High-Torque Motor", "Industrial"},
	{"Graphite Electrode", "Raw Materials"},
}

var warehouseCatalog = []warehouseSeed{
	{"East Coast Distribution Center", "Newark, NJ"},
	{"West Coast Hub", "Long Beach, CA"},
	{"Central Logistics Base", "Memphis, TN"},
	{"European Gateway", "Rotterdam, Netherlands"},
	{"Asia-Pacific Depot", "Hong Kong"},
}
