package catalog

import "github.com/shopspring/decimal"

func price(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

// seedProducts is the demo inventory: staples, fresh produce, spices,
// dairy and snacks. Barcodes starting with FRESH/FRUIT mark loose
// weighable goods without a manufacturer EAN.
func seedProducts() []Product {
	return []Product{
		{Name: "Basmati Rice Premium", NameHindi: "बासमती चावल", Barcode: "8901030724569", Category: "grains", Subcategory: "rice", Price: price("450.00"), Unit: "5kg", Brand: "India Gate", Description: "Premium aged basmati rice", StockQuantity: 50},
		{Name: "Toor Dal", NameHindi: "तूर दाल", Barcode: "8901030724570", Category: "grains", Subcategory: "dal", Price: price("120.00"), Unit: "1kg", Brand: "Organic Valley", Description: "Pure toor dal", StockQuantity: 30},
		{Name: "Moong Dal", NameHindi: "मूंग दाल", Barcode: "8901030724571", Category: "grains", Subcategory: "dal", Price: price("140.00"), Unit: "1kg", Brand: "Patanjali", Description: "Yellow moong dal", StockQuantity: 25},
		{Name: "Sunflower Oil", NameHindi: "सूरजमुखी तेल", Barcode: "8901030724572", Category: "oils", Subcategory: "cooking-oil", Price: price("165.00"), Unit: "1L", Brand: "Fortune", Description: "Refined sunflower oil", StockQuantity: 40},
		{Name: "Mustard Oil", NameHindi: "सरसों का तेल", Barcode: "8901030724573", Category: "oils", Subcategory: "cooking-oil", Price: price("180.00"), Unit: "1L", Brand: "Emami", Description: "Pure mustard oil", StockQuantity: 35},
		{Name: "Pure Ghee", NameHindi: "शुद्ध घी", Barcode: "8901030724574", Category: "dairy", Subcategory: "ghee", Price: price("580.00"), Unit: "1kg", Brand: "Amul", Description: "Pure cow ghee", StockQuantity: 20},
		{Name: "Fresh Tomatoes", NameHindi: "ताजा टमाटर", Barcode: "FRESH001", Category: "vegetables", Subcategory: "fresh", Price: price("40.00"), Unit: "kg", Description: "Fresh red tomatoes", StockQuantity: 100, IsWeighable: true},
		{Name: "Fresh Onions", NameHindi: "ताजा प्याज", Barcode: "FRESH002", Category: "vegetables", Subcategory: "fresh", Price: price("25.00"), Unit: "kg", Description: "Fresh red onions", StockQuantity: 120, IsWeighable: true},
		{Name: "Fresh Potatoes", NameHindi: "ताजा आलू", Barcode: "FRESH003", Category: "vegetables", Subcategory: "fresh", Price: price("30.00"), Unit: "kg", Description: "Fresh potatoes", StockQuantity: 80, IsWeighable: true},
		{Name: "Fresh Spinach", NameHindi: "ताजा पालक", Barcode: "FRESH006", Category: "vegetables", Subcategory: "leafy", Price: price("20.00"), Unit: "bunch", Description: "Fresh green spinach", StockQuantity: 40},
		{Name: "Fresh Apples", NameHindi: "ताजा सेब", Barcode: "FRUIT001", Category: "fruits", Subcategory: "fresh", Price: price("120.00"), Unit: "kg", Description: "Fresh red apples", StockQuantity: 50, IsWeighable: true},
		{Name: "Fresh Bananas", NameHindi: "ताजा केला", Barcode: "FRUIT002", Category: "fruits", Subcategory: "fresh", Price: price("60.00"), Unit: "kg", Description: "Fresh bananas", StockQuantity: 40, IsWeighable: true},
		{Name: "Fresh Mangoes", NameHindi: "ताजा आम", Barcode: "FRUIT005", Category: "fruits", Subcategory: "fresh", Price: price("150.00"), Unit: "kg", Description: "Fresh sweet mangoes", StockQuantity: 25, IsWeighable: true},
		{Name: "Turmeric Powder", NameHindi: "हल्दी पाउडर", Barcode: "8901030724580", Category: "spices", Subcategory: "powder", Price: price("45.00"), Unit: "200g", Brand: "MDH", Description: "Pure turmeric powder", StockQuantity: 60},
		{Name: "Red Chili Powder", NameHindi: "लाल मिर्च पाउडर", Barcode: "8901030724581", Category: "spices", Subcategory: "powder", Price: price("55.00"), Unit: "200g", Brand: "Everest", Description: "Spicy red chili powder", StockQuantity: 45},
		{Name: "Garam Masala", NameHindi: "गरम मसाला", Barcode: "8901030724582", Category: "spices", Subcategory: "blend", Price: price("65.00"), Unit: "100g", Brand: "MDH", Description: "Aromatic garam masala", StockQuantity: 35},
		{Name: "Fresh Milk", NameHindi: "ताजा दूध", Barcode: "8901030724590", Category: "dairy", Subcategory: "milk", Price: price("60.00"), Unit: "1L", Brand: "Amul", Description: "Fresh full cream milk", StockQuantity: 30},
		{Name: "Paneer", NameHindi: "पनीर", Barcode: "8901030724591", Category: "dairy", Subcategory: "cheese", Price: price("90.00"), Unit: "200g", Brand: "Amul", Description: "Fresh cottage cheese", StockQuantity: 25},
		{Name: "Greek Yogurt", NameHindi: "ग्रीक दही", Barcode: "8901030724592", Category: "dairy", Subcategory: "yogurt", Price: price("80.00"), Unit: "500g", Brand: "Epigamia", Description: "Thick Greek yogurt", StockQuantity: 20},
		{Name: "Namkeen Mix", NameHindi: "नमकीन मिक्स", Barcode: "8901030724600", Category: "snacks", Subcategory: "savory", Price: price("45.00"), Unit: "200g", Brand: "Haldiram's", Description: "Spicy namkeen mix", StockQuantity: 40},
		{Name: "Biscuits", NameHindi: "बिस्कुट", Barcode: "8901030724601", Category: "snacks", Subcategory: "sweet", Price: price("35.00"), Unit: "200g", Brand: "Parle-G", Description: "Glucose biscuits", StockQuantity: 50},
		{Name: "Potato Chips", NameHindi: "आलू चिप्स", Barcode: "8901030724602", Category: "snacks", Subcategory: "chips", Price: price("40.00"), Unit: "150g", Brand: "Lays", Description: "Crispy potato chips", StockQuantity: 60},
	}
}
