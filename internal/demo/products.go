// Package demo holds the sample data and screens that show the slider off.
package demo

import "fmt"

// Product is the sample item rendered by every story.
type Product struct {
	ID          int
	Title       string
	Description string
	ImageURL    string
}

// Products returns n sample products. n <= 0 returns the base five.
func Products(n int) []Product {
	if n <= 0 {
		n = 5
	}
	out := make([]Product, n)
	for i := range out {
		id := i + 1
		out[i] = Product{
			ID:          id,
			Title:       fmt.Sprintf("Product %d", id),
			Description: fmt.Sprintf("Description of the product %d", id),
			ImageURL:    fmt.Sprintf("https://picsum.photos/200/300?random=%d", id+3),
		}
	}
	return out
}
