package catalog

import "github.com/shopspring/decimal"

// Seed returns the fixed book list the store opens with.
func Seed() []Book {
	return []Book{
		{Title: "The Great Gatsby", Category: "Fiction", Price: decimal.NewFromFloat(10.99), ImageURL: "/images/gatsby.jpg"},
		{Title: "To Kill a Mockingbird", Category: "Fiction", Price: decimal.NewFromFloat(12.99), ImageURL: "/images/mockingbird.jpg"},
		{Title: "1984", Category: "Science Fiction", Price: decimal.NewFromFloat(13.99), ImageURL: "/images/1984.jpg"},
		{Title: "Pride and Prejudice", Category: "Romance", Price: decimal.NewFromFloat(9.99), ImageURL: "/images/pride.jpg"},
		{Title: "The Catcher in the Rye", Category: "Fiction", Price: decimal.NewFromFloat(11.99), ImageURL: "/images/catcher.jpg"},
		{Title: "Brave New World", Category: "Science Fiction", Price: decimal.NewFromFloat(12.50), ImageURL: "/images/brave.jpg"},
	}
}
