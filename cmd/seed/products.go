// File: cmd/seed/products.go
package main

import "storefront/internal/service"

// sampleImage 所有範例商品共用的圖片
const sampleImage = "https://placehold.co/600x600/png?text=storefront"

func f64(v float64) *float64 { return &v }
func intp(v int) *int { return &v }

func images(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = sampleImage
	}
	return out
}

// sampleProducts 內建的動漫主題商品目錄
var sampleProducts = []service.ProductInput{
	// T 恤
	{
		Title:            "Anime Rock Star T-Shirt",
		Description:      "Stylish T-shirt featuring a cute anime girl with electric guitar",
		LongDescription:  "This premium quality T-shirt showcases an anime girl rocking an electric guitar with a stunning purple backdrop. Perfect for anime enthusiasts who love rock music. Made from 100% cotton for maximum comfort.",
		Price:            f64(299),
		Currency:         "NOK",
		Category:         "tskjorte",
		ImageURL:         sampleImage,
		AdditionalImages: images(2),
		Stock:            intp(25),
		Sizes:            []string{"S", "M", "L", "XL"},
		Colors:           []string{"Black", "White", "Purple"},
		Featured:         true,
		Rating:           4.7,
		NumReviews:       23,
	},
	{
		Title:            "Sakura Metal Concert T-Shirt",
		Description:      "Black T-shirt with anime girl in cherry blossom design",
		LongDescription:  "Rock out with this limited edition black T-shirt featuring an anime girl surrounded by cherry blossoms with a metal-inspired design. The contrast between soft cherry blossoms and hard rock aesthetics makes this shirt truly unique.",
		Price:            f64(349),
		DiscountPrice:    f64(299),
		Currency:         "NOK",
		Category:         "tskjorte",
		ImageURL:         sampleImage,
		AdditionalImages: images(1),
		Stock:            intp(15),
		Sizes:            []string{"S", "M", "L"},
		Colors:           []string{"Black", "Blue"},
		Featured:         false,
		Rating:           4.5,
		NumReviews:       12,
	},
	{
		Title:            "Neon Anime Drummer T-Shirt",
		Description:      "Glow-in-dark T-shirt with anime drummer girl",
		LongDescription:  "Stand out from the crowd with this eye-catching T-shirt featuring an anime girl drummer with neon accents that actually glow in the dark! The vibrant design captures the energy and excitement of a live rock performance.",
		Price:            f64(399),
		Currency:         "NOK",
		Category:         "tskjorte",
		ImageURL:         sampleImage,
		AdditionalImages: images(1),
		Stock:            intp(8),
		Sizes:            []string{"S", "M", "XL"},
		Colors:           []string{"Black", "Purple"},
		Featured:         true,
		Rating:           5.0,
		NumReviews:       7,
	},
	{
		Title:            "Anime Rock Festival T-Shirt",
		Description:      "Limited edition anime girl rock festival commemorative tee",
		LongDescription:  "Celebrate your love for anime and rock music with this commemorative T-shirt featuring a cute anime girl at a rock festival. The detailed artwork captures the excitement and energy of live music events.",
		Price:            f64(329),
		Currency:         "NOK",
		Category:         "tskjorte",
		ImageURL:         sampleImage,
		AdditionalImages: images(0),
		Stock:            intp(12),
		Sizes:            []string{"S", "M", "L", "XL"},
		Colors:           []string{"Black", "Red", "White"},
		Featured:         false,
		Rating:           4.2,
		NumReviews:       9,
	},
	{
		Title:            "Punk Anime Bassist T-Shirt",
		Description:      "Edgy T-shirt with punk anime girl bass player",
		LongDescription:  "This edgy T-shirt features a punk anime girl bass player with an attitude. The high-quality print ensures the vibrant colors won't fade even after multiple washes. Perfect for showing off your alternative style.",
		Price:            f64(349),
		Currency:         "NOK",
		Category:         "tskjorte",
		ImageURL:         sampleImage,
		AdditionalImages: images(1),
		Stock:            intp(20),
		Sizes:            []string{"S", "L", "XL"},
		Colors:           []string{"Black", "Gray"},
		Featured:         true,
		Rating:           4.8,
		NumReviews:       14,
	},

	// 帽T與毛衣
	{
		Title:            "Anime Guitar Soloist Hoodie",
		Description:      "Cozy hoodie with anime girl performing a guitar solo",
		LongDescription:  "Stay warm and stylish with this premium hoodie featuring an anime girl performing an epic guitar solo. The inner fleece lining provides extra warmth for those cool evening concerts, while the adjustable hood ensures a perfect fit.",
		Price:            f64(599),
		DiscountPrice:    f64(499),
		Currency:         "NOK",
		Category:         "genser",
		ImageURL:         sampleImage,
		AdditionalImages: images(1),
		Stock:            intp(15),
		Sizes:            []string{"S", "M", "L", "XL"},
		Colors:           []string{"Black", "Purple", "Blue"},
		Featured:         true,
		Rating:           4.9,
		NumReviews:       31,
	},
	{
		Title:            "Kawaii Rock Star Sweater",
		Description:      "Adorable anime girl rock star sweater with glitter details",
		LongDescription:  "This absolutely adorable sweater features a kawaii anime girl rock star with subtle glitter details that catch the light. Made from a soft cotton blend that's both comfortable and durable, perfect for everyday wear or concerts.",
		Price:            f64(549),
		Currency:         "NOK",
		Category:         "genser",
		ImageURL:         sampleImage,
		AdditionalImages: images(1),
		Stock:            intp(22),
		Sizes:            []string{"S", "M", "L"},
		Colors:           []string{"Pink", "Black", "White"},
		Featured:         false,
		Rating:           4.6,
		NumReviews:       17,
	},
	{
		Title:            "Anisong Concert Hoodie",
		Description:      "Premium hoodie featuring anime girl vocalist design",
		LongDescription:  "Celebrate your love for anime music with this premium hoodie featuring a talented anime girl vocalist. The high-quality embroidery and print will maintain their vibrant appearance wash after wash. The kangaroo pocket keeps your hands warm.",
		Price:            f64(649),
		Currency:         "NOK",
		Category:         "genser",
		ImageURL:         sampleImage,
		AdditionalImages: images(2),
		Stock:            intp(10),
		Sizes:            []string{"M", "L", "XL"},
		Colors:           []string{"Black", "Navy"},
		Featured:         true,
		Rating:           4.8,
		NumReviews:       26,
	},
	{
		Title:            "Anime DJ Pullover",
		Description:      "Stylish pullover with anime girl DJ print",
		LongDescription:  "This trendy pullover features a cool anime girl DJ design that showcases your love for music and anime in one stylish package. The comfortable fit and durable fabric make it perfect for everyday wear or heading to your next concert.",
		Price:            f64(499),
		DiscountPrice:    f64(429),
		Currency:         "NOK",
		Category:         "genser",
		ImageURL:         sampleImage,
		AdditionalImages: images(1),
		Stock:            intp(18),
		Sizes:            []string{"S", "M", "L", "XL"},
		Colors:           []string{"Black", "Gray", "Blue"},
		Featured:         false,
		Rating:           4.4,
		NumReviews:       12,
	},
	{
		Title:            "Electric Guitar Anime Zip Hoodie",
		Description:      "Zip-up hoodie with anime girl electric guitarist",
		LongDescription:  "This versatile zip-up hoodie features a stunning anime girl electric guitarist design on the back. The convenient front zipper makes it easy to put on and take off, while the adjustable hood and ribbed cuffs provide extra warmth.",
		Price:            f64(599),
		Currency:         "NOK",
		Category:         "genser",
		ImageURL:         sampleImage,
		AdditionalImages: images(1),
		Stock:            intp(14),
		Sizes:            []string{"S", "M", "L"},
		Colors:           []string{"Black", "Purple"},
		Featured:         true,
		Rating:           4.7,
		NumReviews:       19,
	},
	{
		Title:            "Anime Rocker Backpack T-Shirt",
		Description:      "Stylish T-shirt with anime girl rock band backpack design",
		LongDescription:  "This unique T-shirt features an anime girl carrying a rock-themed backpack. The vibrant print showcases amazing detail and the shirt is made from premium cotton for comfort and durability.",
		Price:            f64(299),
		Currency:         "NOK",
		Category:         "tskjorte",
		ImageURL:         sampleImage,
		AdditionalImages: images(1),
		Stock:            intp(15),
		Sizes:            []string{"S", "M", "L", "XL"},
		Colors:           []string{"Black", "Purple"},
		Featured:         true,
		Rating:           4.8,
		NumReviews:       14,
	},
	{
		Title:            "Anime Guitarist Beanie T-Shirt",
		Description:      "T-shirt featuring anime girl wearing guitarist beanie",
		LongDescription:  "This cool T-shirt shows an anime girl wearing a cozy beanie with a guitar motif. Perfect for rock music enthusiasts who want to show their style. Made from high-quality cotton that stays comfortable all day.",
		Price:            f64(249),
		Currency:         "NOK",
		Category:         "tskjorte",
		ImageURL:         sampleImage,
		AdditionalImages: images(0),
		Stock:            intp(30),
		Sizes:            []string{"S", "M", "L", "XL"},
		Colors:           []string{"Black", "Purple", "Red"},
		Featured:         false,
		Rating:           4.6,
		NumReviews:       9,
	},
	{
		Title:            "Anime Band Pins Hoodie",
		Description:      "Hoodie with anime girl rock band pin designs",
		LongDescription:  "This premium hoodie features designs inspired by collectible anime girl rock band pins. Each character represents a different band role in amazing detail. The soft inner lining keeps you warm while the sturdy construction ensures it will last for years.",
		Price:            f64(499),
		Currency:         "NOK",
		Category:         "genser",
		ImageURL:         sampleImage,
		AdditionalImages: images(1),
		Stock:            intp(25),
		Sizes:            []string{"S", "M", "L", "XL"},
		Colors:           []string{"Black", "Purple"},
		Featured:         true,
		Rating:           5.0,
		NumReviews:       11,
	},
}
