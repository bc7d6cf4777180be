package gen

// Product is a catalog entry with an inclusive price range in rupees.
type Product struct {
	Name     string
	MinPrice int
	MaxPrice int
}

// Catalog maps category to its products. Prices are sampled uniformly from
// [MinPrice, MaxPrice].
var Catalog = map[string][]Product{
	"Electronics": {
		{"Dell Laptop", 55000, 65000},
		{"HP Laptop", 45000, 55000},
		{"MacBook Air", 95000, 120000},
		{"iPhone 15", 79900, 89900},
		{"Samsung Galaxy S24", 69999, 79999},
		{"iPad Pro", 89900, 99900},
		{"Samsung TV 55\"", 45000, 55000},
		{"LG TV 43\"", 30000, 35000},
		{"Sony Headphones", 8999, 12999},
		{"JBL Speaker", 5999, 8999},
		{"Canon Camera", 45000, 65000},
		{"Nikon Camera", 55000, 75000},
		{"Apple Watch", 42900, 49900},
		{"Fire TV Stick", 3999, 4999},
		{"Kindle", 8999, 10999},
		{"Gaming Console PS5", 49990, 54990},
		{"Wireless Mouse", 899, 1499},
		{"Mechanical Keyboard", 3999, 5999},
		{"Monitor 27\"", 15000, 20000},
		{"Printer HP", 8999, 12999},
	},
	"Clothing": {
		{"Nike Shoes", 4999, 7999},
		{"Adidas Sneakers", 5999, 8999},
		{"Levis Jeans", 2499, 3999},
		{"Formal Shirt", 999, 1999},
		{"T-Shirt Pack (3)", 899, 1499},
		{"Casual Dress", 1499, 2999},
		{"Winter Jacket", 3999, 5999},
		{"Sports Track Pants", 1299, 2499},
		{"Saree", 1999, 4999},
		{"Kurta Set", 1499, 2999},
		{"Leather Belt", 499, 999},
		{"Watch Fastrack", 1999, 3999},
		{"Sunglasses", 799, 1999},
		{"Handbag", 1999, 3999},
		{"Backpack", 1499, 2999},
	},
	"Home": {
		{"Office Chair", 5999, 12000},
		{"Study Table", 4999, 8999},
		{"Bed Queen Size", 15000, 25000},
		{"Sofa 3-Seater", 20000, 35000},
		{"Dining Table Set", 18000, 30000},
		{"Mattress", 8999, 15999},
		{"Curtains", 1499, 2999},
		{"Bedsheet Set", 899, 1999},
		{"Table Lamp", 799, 1499},
		{"Wall Clock", 499, 999},
		{"Carpet 6x4", 2999, 4999},
		{"Bean Bag", 2499, 3999},
		{"Bookshelf", 3999, 6999},
		{"Mirror Large", 1999, 3499},
		{"Kitchen Utensil Set", 1499, 2499},
	},
	"Stationery": {
		{"Python Programming Book", 499, 799},
		{"Data Science Book", 599, 899},
		{"Novel Set", 999, 1499},
		{"Notebook Pack (10)", 299, 499},
		{"Pen Set Premium", 499, 799},
		{"Art Supplies Kit", 1499, 2499},
		{"Calculator Scientific", 599, 999},
		{"File Folders (20)", 299, 599},
		{"Whiteboard", 1499, 2499},
		{"Pencil Box", 199, 399},
	},
	"Sports": {
		{"Yoga Mat Premium", 999, 1999},
		{"Dumbbell Set 20kg", 2999, 4999},
		{"Resistance Bands", 799, 1299},
		{"Cricket Bat", 1999, 3999},
		{"Football", 799, 1499},
		{"Badminton Racket", 1499, 2999},
		{"Gym Bag", 999, 1999},
		{"Cycling Gloves", 499, 899},
		{"Running Shoes", 3999, 6999},
		{"Treadmill", 25000, 45000},
	},
}

var firstNames = []string{
	"Rahul", "Priya", "Amit", "Sneha", "Vikram", "Anjali", "Rohan", "Neha",
	"Karan", "Pooja", "Arjun", "Divya", "Sanjay", "Kavita", "Rajesh", "Meera",
	"Aditya", "Riya", "Manish", "Shreya", "Nikhil", "Ananya", "Suresh", "Preeti",
	"Deepak", "Sakshi", "Anil", "Swati", "Harsh", "Nikita",
}

var lastNames = []string{
	"Sharma", "Patel", "Kumar", "Reddy", "Singh", "Verma", "Gupta", "Agarwal",
	"Mehta", "Joshi", "Desai", "Rao", "Iyer", "Nair", "Malhotra", "Kapoor",
	"Chauhan", "Pandey", "Mishra", "Tripathi",
}

var cities = []string{
	"Mumbai", "Delhi", "Bangalore", "Hyderabad", "Chennai", "Kolkata",
	"Pune", "Ahmedabad", "Jaipur", "Lucknow", "Chandigarh", "Indore",
	"Kochi", "Visakhapatnam", "Nagpur", "Vadodara", "Surat", "Coimbatore",
}

var paymentMethods = []string{
	"Credit Card", "Debit Card", "UPI", "Net Banking", "Cash on Delivery", "Wallet",
}

// quantityWeights skew order quantities toward 1 (index i is the weight of
// quantity i+1).
var quantityWeights = []int{60, 25, 10, 3, 2}
