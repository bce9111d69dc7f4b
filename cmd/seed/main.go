// Package main provides the seed command-line tool. It writes a small pair
// of sample extracts for smoke-testing the pipeline end to end, including
// rows that exercise the documented drop policies.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

const productsCSV = `product_id,brand_id,favorites_count,rating,reviews,variation_count,category
P0001,7,1200,4.3,215,3,Skincare
P0002,7,800,3.9,88,1,Skincare
P0003,12,,,,,
P0404,9,50,4.9,10,2,Fragrance
`

const reviewsCSV = `product_id,reviewer_id,rating,submission_time,review_text,review_title,skin_tone,eye_color,skin_type,hair_color,product_name,brand_name,price_usd
P0001,100,5,2023-02-01,Great moisturizer that lasts all day,Love it,light,brown,dry,black,Hydra Cream,GlowCo,29.99
P0001,101,4,2023-02-01,Good but a little greasy,,medium,,dry,brown,Hydra Cream,GlowCo,29.99
P0002,102,3,2023-02-03,Did not work for my skin,Meh,,green,oily,blonde,Night Serum,GlowCo,45.00
P0002,abc17,5,2023-02-03,Amazing results in a week,Wow,deep,brown,combination,black,Night Serum,GlowCo,45.00
P0003,103,2,2023-02-04,,Empty text gets dropped,light,blue,normal,red,Clay Mask,TerraSkin,19.50
P0003,104,4,2023-02-05,Nice clay mask for weekly use,,tan,hazel,,brown,Clay Mask,TerraSkin,19.50
P9999,105,1,2023-02-06,Product is not in the catalog,Orphan,light,brown,dry,black,Ghost Item,NoBrand,9.99
`

func main() {
	dir := flag.String("dir", "data", "Directory to write the sample extracts into")
	flag.Parse()

	if err := os.MkdirAll(*dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "[SEEDER] mkdir failed: %v\n", err)
		os.Exit(1)
	}

	files := map[string]string{
		"products.csv": productsCSV,
		"reviews.csv":  reviewsCSV,
	}

	for name, content := range files {
		path := filepath.Join(*dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "[SEEDER] write %s failed: %v\n", path, err)
			os.Exit(1)
		}

		fmt.Printf("[SEEDER] wrote %s\n", path)
	}

	fmt.Println("[SEEDER] done - P0404 has no reviews, P9999 has no product, one empty text, one non-numeric reviewer")
}
